package calculation

import (
	"math"

	"github.com/rpgo/retirement-projector/internal/domain"
)

const (
	// StrategySpread is the return perturbation applied by the worst and best case strategies.
	StrategySpread = 0.03
	// WorstCaseFloor is the lowest effective return the worst case strategy will use.
	WorstCaseFloor = 0.02
)

// EffectiveReturnRate resolves the annual return used for every year of a projection.
func EffectiveReturnRate(returnRate float64, strategy domain.InvestmentStrategy) float64 {
	switch strategy {
	case domain.StrategyWorstCase:
		return math.Max(returnRate-StrategySpread, WorstCaseFloor)
	case domain.StrategyBestCase:
		return returnRate + StrategySpread
	default:
		return returnRate
	}
}

// Project computes the year-by-year balance from CurrentAge through LifeExpectancy.
//
// It is pure and does not validate; callers that accept untrusted inputs should go
// through ProjectionEngine.RunProjection. Year 0 reports the initial investment with
// no flows. Each later year applies the contribution (working years) or withdrawal
// (retired years) first and then compounds the net at the effective rate. Balances
// are not clamped and may go negative.
func Project(inputs domain.ProjectionInputs) domain.ProjectionResult {
	years := inputs.Years()
	if years < 0 {
		years = 0
	}

	annualContribution := inputs.AnnualContribution()
	rate := EffectiveReturnRate(inputs.ReturnRate, inputs.InvestmentStrategy)
	growth := 1 + rate
	inflation := 1 + inputs.InflationRate

	records := make([]domain.YearRecord, 0, years+1)
	balance := inputs.InitialInvestment
	records = append(records, domain.YearRecord{
		Age:                      inputs.CurrentAge,
		Balance:                  balance,
		InflationAdjustedBalance: balance,
		Retired:                  inputs.CurrentAge >= inputs.RetirementAge,
	})

	for year := 1; year <= years; year++ {
		age := inputs.CurrentAge + year
		retired := age >= inputs.RetirementAge
		discount := math.Pow(inflation, float64(year))

		contribution := annualContribution
		withdrawal := 0.0
		if retired {
			contribution = 0
			withdrawal = yearWithdrawal(inputs, age, balance, discount)
		}

		balance = (balance + contribution - withdrawal) * growth

		records = append(records, domain.YearRecord{
			Age:                         age,
			AnnualContribution:          contribution,
			Withdrawal:                  withdrawal,
			Balance:                     balance,
			InflationAdjustedBalance:    balance / discount,
			InflationAdjustedWithdrawal: withdrawal / discount,
			Retired:                     retired,
		})
	}

	result := domain.ProjectionResult{
		YearlyResults:       records,
		EffectiveReturnRate: rate,
	}
	for _, r := range records {
		if r.Age == inputs.RetirementAge {
			result.RetirementSavings = &domain.Savings{Nominal: r.Balance, Adjusted: r.InflationAdjustedBalance}
			break
		}
	}
	last := records[len(records)-1]
	result.EndOfLifeSavings = domain.Savings{Nominal: last.Balance, Adjusted: last.InflationAdjustedBalance}

	return result
}

// yearWithdrawal returns the withdrawal for a retired year: the base (a fixed amount or
// a share of the start-of-year balance) times the growth factor. Inflation growth is
// measured from the first year of the projection, a fixed increase rate from the
// retirement age. inflationFactor is (1+inflation)^year.
func yearWithdrawal(inputs domain.ProjectionInputs, age int, startBalance, inflationFactor float64) float64 {
	base := inputs.WithdrawalAmount
	if inputs.WithdrawalMode == domain.WithdrawalPercentage {
		base = math.Max(0, startBalance*inputs.WithdrawalRate)
	}

	switch {
	case inputs.InflationAdjustedWithdrawal:
		return base * inflationFactor
	case inputs.WithdrawalIncreaseRate != 0:
		return base * math.Pow(1+inputs.WithdrawalIncreaseRate, float64(age-inputs.RetirementAge))
	default:
		return base
	}
}
