package calculation

import (
	"context"
	"fmt"
	"math"

	"github.com/rpgo/retirement-projector/internal/domain"
)

// ProjectionEngine validates inputs before handing them to Project.
// It holds no per-run state and is safe for concurrent use once configured.
type ProjectionEngine struct {
	Logger Logger
}

// NewProjectionEngine creates an engine that logs nothing
func NewProjectionEngine() *ProjectionEngine {
	return &ProjectionEngine{Logger: NopLogger{}}
}

// SetLogger sets the logger for the engine. If nil is provided, a no-op logger is used.
func (pe *ProjectionEngine) SetLogger(l Logger) {
	if l == nil {
		pe.Logger = NopLogger{}
		return
	}
	pe.Logger = l
}

func (pe *ProjectionEngine) logger() Logger {
	if pe.Logger == nil {
		return NopLogger{}
	}
	return pe.Logger
}

// RunProjection validates inputs and runs a single projection.
func (pe *ProjectionEngine) RunProjection(ctx context.Context, inputs domain.ProjectionInputs) (*domain.ProjectionResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := ValidateInputs(inputs); err != nil {
		pe.logger().Warnf("rejected projection inputs: %v", err)
		return nil, fmt.Errorf("projection not run: %w", err)
	}

	result := Project(inputs)
	if age, ok := firstNonFinite(result); ok {
		pe.logger().Warnf("projection overflows at age %d", age)
		return nil, fmt.Errorf("projection not run: %w (at age %d)", ErrNonFiniteResult, age)
	}

	log := pe.logger()
	log.Debugf("projected ages %d-%d (%d records), strategy=%q effective return=%.4f",
		inputs.CurrentAge, inputs.LifeExpectancy, len(result.YearlyResults), inputs.InvestmentStrategy, result.EffectiveReturnRate)
	if result.RetirementSavings != nil {
		log.Debugf("balance at retirement age %d: %.2f (adjusted %.2f)",
			inputs.RetirementAge, result.RetirementSavings.Nominal, result.RetirementSavings.Adjusted)
	}
	log.Debugf("balance at end of life: %.2f (adjusted %.2f)", result.EndOfLifeSavings.Nominal, result.EndOfLifeSavings.Adjusted)

	return &result, nil
}

// firstNonFinite returns the first age whose figures are infinite or NaN.
func firstNonFinite(result domain.ProjectionResult) (int, bool) {
	for _, yr := range result.YearlyResults {
		for _, v := range []float64{yr.Balance, yr.InflationAdjustedBalance, yr.Withdrawal, yr.InflationAdjustedWithdrawal, yr.AnnualContribution} {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return yr.Age, true
			}
		}
	}
	return 0, false
}

// CompareStrategies runs the same inputs under every investment strategy.
// The strategy set on inputs is ignored.
func (pe *ProjectionEngine) CompareStrategies(ctx context.Context, inputs domain.ProjectionInputs) (*domain.StrategyComparison, error) {
	comparison := &domain.StrategyComparison{
		Inputs:   inputs,
		Outcomes: make([]domain.StrategyOutcome, 0, len(domain.Strategies)),
	}

	for _, strategy := range domain.Strategies {
		result, err := pe.RunProjection(ctx, inputs.WithStrategy(strategy))
		if err != nil {
			return nil, fmt.Errorf("strategy %s: %w", strategy, err)
		}
		comparison.Outcomes = append(comparison.Outcomes, domain.StrategyOutcome{
			Strategy: strategy,
			Result:   *result,
			Analysis: Analyze(result),
		})
	}

	return comparison, nil
}
