package calculation

import (
	"github.com/rpgo/retirement-projector/internal/domain"
)

// Analyze derives totals, the peak balance and the depletion age from a projection.
func Analyze(result *domain.ProjectionResult) domain.ProjectionAnalysis {
	var analysis domain.ProjectionAnalysis
	if result == nil || len(result.YearlyResults) == 0 {
		return analysis
	}

	first := result.YearlyResults[0]
	analysis.PeakBalance = first.Balance
	analysis.PeakBalanceAge = first.Age

	for _, yr := range result.YearlyResults {
		analysis.TotalContributions += yr.AnnualContribution
		analysis.TotalWithdrawals += yr.Withdrawal

		if yr.Balance > analysis.PeakBalance {
			analysis.PeakBalance = yr.Balance
			analysis.PeakBalanceAge = yr.Age
		}
		if yr.IsDepleted() && analysis.DepletionAge == nil {
			age := yr.Age
			analysis.DepletionAge = &age
		}
		if yr.Retired && yr.Withdrawal > 0 && !yr.IsDepleted() {
			analysis.YearsFunded++
		}
	}

	return analysis
}
