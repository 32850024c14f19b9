package output

import (
	"github.com/rpgo/retirement-projector/internal/domain"
)

// Recommendation summarizes a strategy comparison.
type Recommendation struct {
	// SafestFunded is the most conservative strategy whose balance never goes negative.
	// Empty when every strategy runs out of money.
	SafestFunded domain.InvestmentStrategy
	// Spread is the best-case minus worst-case end-of-life nominal balance.
	Spread float64
	// Depleted lists the strategies that run out of money.
	Depleted []domain.InvestmentStrategy
}

// AnalyzeStrategies walks the outcomes from least to most optimistic.
func AnalyzeStrategies(comparison *domain.StrategyComparison) Recommendation {
	var rec Recommendation
	if comparison == nil || len(comparison.Outcomes) == 0 {
		return rec
	}

	for _, o := range comparison.Outcomes {
		if o.Analysis.DepletionAge != nil {
			rec.Depleted = append(rec.Depleted, o.Strategy)
			continue
		}
		if rec.SafestFunded == "" {
			rec.SafestFunded = o.Strategy
		}
	}

	worst, okW := comparison.Outcome(domain.StrategyWorstCase)
	best, okB := comparison.Outcome(domain.StrategyBestCase)
	if okW && okB {
		rec.Spread = best.Result.EndOfLifeSavings.Nominal - worst.Result.EndOfLifeSavings.Nominal
	}
	return rec
}
