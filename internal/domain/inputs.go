package domain

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// ContributionInterval is the period a contribution amount is stated in.
type ContributionInterval string

const (
	IntervalAnnually  ContributionInterval = "annually"
	IntervalQuarterly ContributionInterval = "quarterly"
	IntervalMonthly   ContributionInterval = "monthly"
)

// ParseContributionInterval resolves user text to a ContributionInterval.
// An empty string means annually.
func ParseContributionInterval(s string) (ContributionInterval, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "annually", "annual", "yearly":
		return IntervalAnnually, nil
	case "quarterly", "quarter":
		return IntervalQuarterly, nil
	case "monthly", "month":
		return IntervalMonthly, nil
	}
	return "", fmt.Errorf("unknown contribution interval %q (want annually, quarterly or monthly)", s)
}

// PeriodsPerYear returns the multiplier that turns one contribution into an annual total.
func (ci ContributionInterval) PeriodsPerYear() int {
	switch ci {
	case IntervalMonthly:
		return 12
	case IntervalQuarterly:
		return 4
	default:
		return 1
	}
}

// Valid reports whether ci is one of the known intervals (empty counts as annually).
func (ci ContributionInterval) Valid() bool {
	switch ci {
	case "", IntervalAnnually, IntervalQuarterly, IntervalMonthly:
		return true
	}
	return false
}

func (ci *ContributionInterval) UnmarshalText(text []byte) error {
	v, err := ParseContributionInterval(string(text))
	if err != nil {
		return err
	}
	*ci = v
	return nil
}

func (ci *ContributionInterval) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	return ci.UnmarshalText([]byte(s))
}

// InvestmentStrategy perturbs the base return rate for a whole projection.
type InvestmentStrategy string

const (
	StrategyWorstCase InvestmentStrategy = "Worst Case"
	StrategyBestCase  InvestmentStrategy = "Best Case"
	StrategyBalanced  InvestmentStrategy = "Balanced"
)

// Strategies lists every strategy from least to most optimistic.
var Strategies = []InvestmentStrategy{StrategyWorstCase, StrategyBalanced, StrategyBestCase}

// ParseInvestmentStrategy accepts the display names plus short and dashed forms
// ("worst", "best-case", "BALANCED"). An empty string means Balanced.
func ParseInvestmentStrategy(s string) (InvestmentStrategy, error) {
	n := strings.ToLower(strings.TrimSpace(s))
	n = strings.NewReplacer("-", " ", "_", " ").Replace(n)
	switch n {
	case "", "balanced":
		return StrategyBalanced, nil
	case "worst", "worst case", "worstcase":
		return StrategyWorstCase, nil
	case "best", "best case", "bestcase":
		return StrategyBestCase, nil
	}
	return "", fmt.Errorf("unknown investment strategy %q (want Worst Case, Best Case or Balanced)", s)
}

// Valid reports whether s is a known strategy (empty counts as Balanced).
func (s InvestmentStrategy) Valid() bool {
	switch s {
	case "", StrategyWorstCase, StrategyBestCase, StrategyBalanced:
		return true
	}
	return false
}

func (s *InvestmentStrategy) UnmarshalText(text []byte) error {
	v, err := ParseInvestmentStrategy(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

func (s *InvestmentStrategy) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	return s.UnmarshalText([]byte(raw))
}

// WithdrawalMode selects how the base retirement withdrawal is derived.
type WithdrawalMode string

const (
	// WithdrawalFixedAmount withdraws WithdrawalAmount each retired year.
	WithdrawalFixedAmount WithdrawalMode = "amount"
	// WithdrawalPercentage withdraws WithdrawalRate of the start-of-year balance.
	WithdrawalPercentage WithdrawalMode = "percentage"
)

// ParseWithdrawalMode resolves user text; empty means a fixed amount.
func ParseWithdrawalMode(s string) (WithdrawalMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "amount", "fixed":
		return WithdrawalFixedAmount, nil
	case "percentage", "percent", "pct":
		return WithdrawalPercentage, nil
	}
	return "", fmt.Errorf("unknown withdrawal mode %q (want amount or percentage)", s)
}

func (m WithdrawalMode) Valid() bool {
	switch m {
	case "", WithdrawalFixedAmount, WithdrawalPercentage:
		return true
	}
	return false
}

func (m *WithdrawalMode) UnmarshalText(text []byte) error {
	v, err := ParseWithdrawalMode(string(text))
	if err != nil {
		return err
	}
	*m = v
	return nil
}

func (m *WithdrawalMode) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	return m.UnmarshalText([]byte(raw))
}

// ProjectionInputs holds every parameter of one projection run.
// Rates are fractions (0.07 = 7%). Amounts are plain numbers already stripped of
// any display formatting.
type ProjectionInputs struct {
	CurrentAge     int `yaml:"current_age" json:"current_age"`
	RetirementAge  int `yaml:"retirement_age" json:"retirement_age"`
	LifeExpectancy int `yaml:"life_expectancy" json:"life_expectancy"`

	ReturnRate    float64 `yaml:"return_rate" json:"return_rate"`
	InflationRate float64 `yaml:"inflation_rate" json:"inflation_rate"`

	InitialInvestment    float64              `yaml:"initial_investment" json:"initial_investment"`
	ContributionAmount   float64              `yaml:"contribution_amount" json:"contribution_amount"`
	ContributionInterval ContributionInterval `yaml:"contribution_interval" json:"contribution_interval"`

	WithdrawalAmount            float64 `yaml:"withdrawal_amount" json:"withdrawal_amount"`
	InflationAdjustedWithdrawal bool    `yaml:"inflation_adjusted_withdrawal" json:"inflation_adjusted_withdrawal"`
	// WithdrawalIncreaseRate grows the withdrawal by a fixed yearly rate counted from
	// retirement. Zero disables it; it cannot be combined with inflation adjustment.
	WithdrawalIncreaseRate float64 `yaml:"withdrawal_increase_rate,omitempty" json:"withdrawal_increase_rate,omitempty"`

	// Optional percentage-of-balance withdrawals (WithdrawalRate is a fraction).
	WithdrawalMode WithdrawalMode `yaml:"withdrawal_mode,omitempty" json:"withdrawal_mode,omitempty"`
	WithdrawalRate float64        `yaml:"withdrawal_rate,omitempty" json:"withdrawal_rate,omitempty"`

	InvestmentStrategy InvestmentStrategy `yaml:"investment_strategy" json:"investment_strategy"`
}

// Years returns the number of growth steps in the projection.
func (in ProjectionInputs) Years() int {
	return in.LifeExpectancy - in.CurrentAge
}

// AnnualContribution normalizes ContributionAmount to a yearly figure.
func (in ProjectionInputs) AnnualContribution() float64 {
	return in.ContributionAmount * float64(in.ContributionInterval.PeriodsPerYear())
}

// WithStrategy returns a copy of the inputs using strategy s.
func (in ProjectionInputs) WithStrategy(s InvestmentStrategy) ProjectionInputs {
	in.InvestmentStrategy = s
	return in
}
