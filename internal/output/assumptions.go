package output

import (
	"fmt"

	"github.com/rpgo/retirement-projector/internal/calculation"
	"github.com/rpgo/retirement-projector/internal/domain"
)

// GenerateAssumptions lists the modeling assumptions behind a projection, for display
// alongside the results.
func GenerateAssumptions(in domain.ProjectionInputs) []string {
	strategy := strategyName(in.InvestmentStrategy)
	rate := calculation.EffectiveReturnRate(in.ReturnRate, in.InvestmentStrategy)

	assumptions := []string{
		fmt.Sprintf("Investment return: %s annually (%s strategy applied to %s base)", FormatPercentage(rate), strategy, FormatPercentage(in.ReturnRate)),
		fmt.Sprintf("Inflation: %s annually; adjusted figures are in age-%d dollars", FormatPercentage(in.InflationRate), in.CurrentAge),
		fmt.Sprintf("Contributions: %s %s (%s per year) until age %d", FormatCurrency(in.ContributionAmount), intervalName(in.ContributionInterval), FormatCurrency(in.AnnualContribution()), in.RetirementAge),
	}

	base := fmt.Sprintf("%s per year", FormatCurrency(in.WithdrawalAmount))
	if in.WithdrawalMode == domain.WithdrawalPercentage {
		base = fmt.Sprintf("%s of the start-of-year balance", FormatPercentage(in.WithdrawalRate))
	}
	switch {
	case in.InflationAdjustedWithdrawal:
		assumptions = append(assumptions, fmt.Sprintf("Withdrawals: %s from age %d, grown with inflation from age %d", base, in.RetirementAge, in.CurrentAge))
	case in.WithdrawalIncreaseRate != 0:
		assumptions = append(assumptions, fmt.Sprintf("Withdrawals: %s from age %d, grown %s a year from retirement", base, in.RetirementAge, FormatPercentage(in.WithdrawalIncreaseRate)))
	case in.WithdrawalMode == domain.WithdrawalPercentage:
		assumptions = append(assumptions, fmt.Sprintf("Withdrawals: %s from age %d", base, in.RetirementAge))
	default:
		assumptions = append(assumptions, fmt.Sprintf("Withdrawals: %s from age %d, fixed in nominal terms", base, in.RetirementAge))
	}

	return append(assumptions, "Flows are applied at the start of each year, before that year's growth")
}

func intervalName(ci domain.ContributionInterval) string {
	if ci == "" {
		return string(domain.IntervalAnnually)
	}
	return string(ci)
}
