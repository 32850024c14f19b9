package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestParseContributionInterval(t *testing.T) {
	testCases := []struct {
		in       string
		expected ContributionInterval
		periods  int
	}{
		{"", IntervalAnnually, 1},
		{"annually", IntervalAnnually, 1},
		{"Quarterly", IntervalQuarterly, 4},
		{" monthly ", IntervalMonthly, 12},
	}

	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseContributionInterval(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, got)
			assert.Equal(t, tc.periods, got.PeriodsPerYear())
		})
	}

	_, err := ParseContributionInterval("fortnightly")
	assert.Error(t, err)
	assert.False(t, ContributionInterval("fortnightly").Valid())
}

func TestParseInvestmentStrategy(t *testing.T) {
	testCases := map[string]InvestmentStrategy{
		"":           StrategyBalanced,
		"Balanced":   StrategyBalanced,
		"Worst Case": StrategyWorstCase,
		"worst":      StrategyWorstCase,
		"worst-case": StrategyWorstCase,
		"BEST_CASE":  StrategyBestCase,
		"best":       StrategyBestCase,
	}

	for in, expected := range testCases {
		got, err := ParseInvestmentStrategy(in)
		require.NoError(t, err, in)
		assert.Equal(t, expected, got, in)
	}

	_, err := ParseInvestmentStrategy("aggressive")
	assert.Error(t, err)
}

func TestParseWithdrawalMode(t *testing.T) {
	m, err := ParseWithdrawalMode("")
	require.NoError(t, err)
	assert.Equal(t, WithdrawalFixedAmount, m)

	m, err = ParseWithdrawalMode("Percent")
	require.NoError(t, err)
	assert.Equal(t, WithdrawalPercentage, m)

	_, err = ParseWithdrawalMode("all")
	assert.Error(t, err)
}

func TestProjectionInputs_YAMLEnums(t *testing.T) {
	src := `
current_age: 30
retirement_age: 65
life_expectancy: 90
contribution_interval: Monthly
investment_strategy: best-case
withdrawal_mode: percent
`
	var in ProjectionInputs
	require.NoError(t, yaml.Unmarshal([]byte(src), &in))
	assert.Equal(t, IntervalMonthly, in.ContributionInterval)
	assert.Equal(t, StrategyBestCase, in.InvestmentStrategy)
	assert.Equal(t, WithdrawalPercentage, in.WithdrawalMode)
	assert.Equal(t, 60, in.Years())

	bad := "investment_strategy: yolo\n"
	assert.Error(t, yaml.Unmarshal([]byte(bad), &in))
}

func TestProjectionInputs_AnnualContribution(t *testing.T) {
	in := ProjectionInputs{ContributionAmount: 500, ContributionInterval: IntervalMonthly}
	assert.Equal(t, 6000.0, in.AnnualContribution())

	in.ContributionInterval = IntervalQuarterly
	assert.Equal(t, 2000.0, in.AnnualContribution())

	in.ContributionInterval = ""
	assert.Equal(t, 500.0, in.AnnualContribution())
}

func TestProjectionResult_Record(t *testing.T) {
	pr := &ProjectionResult{YearlyResults: []YearRecord{{Age: 40}, {Age: 41, Balance: -1}}}

	rec, ok := pr.Record(41)
	require.True(t, ok)
	assert.True(t, rec.IsDepleted())

	_, ok = pr.Record(39)
	assert.False(t, ok)
	_, ok = pr.Record(42)
	assert.False(t, ok)
	_, ok = (&ProjectionResult{}).Record(40)
	assert.False(t, ok)
}

func TestStrategyComparison_Outcome(t *testing.T) {
	sc := &StrategyComparison{Outcomes: []StrategyOutcome{{Strategy: StrategyWorstCase}, {Strategy: StrategyBestCase}}}
	o, ok := sc.Outcome(StrategyBestCase)
	require.True(t, ok)
	assert.Equal(t, StrategyBestCase, o.Strategy)

	_, ok = sc.Outcome(StrategyBalanced)
	assert.False(t, ok)

	sc.Outcomes = append(sc.Outcomes, StrategyOutcome{Strategy: StrategyBalanced})
	o, ok = sc.Outcome("")
	require.True(t, ok)
	assert.Equal(t, StrategyBalanced, o.Strategy)
}
