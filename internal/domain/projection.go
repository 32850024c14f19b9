package domain

// YearRecord is one row of a projection, for a single age
type YearRecord struct {
	Age                         int     `json:"age"`
	AnnualContribution          float64 `json:"annual_contribution"`
	Withdrawal                  float64 `json:"withdrawal"`
	Balance                     float64 `json:"balance"`                       // nominal, end of year
	InflationAdjustedBalance    float64 `json:"inflation_adjusted_balance"`    // in current-age dollars
	InflationAdjustedWithdrawal float64 `json:"inflation_adjusted_withdrawal"` // in current-age dollars
	Retired                     bool    `json:"retired"`
}

// IsDepleted reports whether the balance has gone negative
func (yr YearRecord) IsDepleted() bool {
	return yr.Balance < 0
}

// Savings is a balance snapshot in nominal and inflation-adjusted terms
type Savings struct {
	Nominal  float64 `json:"nominal"`
	Adjusted float64 `json:"adjusted"`
}

// ProjectionResult is the output of one projection run
type ProjectionResult struct {
	YearlyResults       []YearRecord `json:"yearly_results"`
	RetirementSavings   *Savings     `json:"retirement_savings,omitempty"` // nil when retirement age is outside the projected range
	EndOfLifeSavings    Savings      `json:"end_of_life_savings"`
	EffectiveReturnRate float64      `json:"effective_return_rate"`
}

// Record returns the year record for age, if it was projected
func (pr *ProjectionResult) Record(age int) (YearRecord, bool) {
	if len(pr.YearlyResults) == 0 {
		return YearRecord{}, false
	}
	idx := age - pr.YearlyResults[0].Age
	if idx < 0 || idx >= len(pr.YearlyResults) {
		return YearRecord{}, false
	}
	return pr.YearlyResults[idx], true
}

// ProjectionAnalysis holds figures derived from a finished projection
type ProjectionAnalysis struct {
	TotalContributions float64 `json:"total_contributions"`
	TotalWithdrawals   float64 `json:"total_withdrawals"`
	PeakBalance        float64 `json:"peak_balance"`
	PeakBalanceAge     int     `json:"peak_balance_age"`
	DepletionAge       *int    `json:"depletion_age,omitempty"` // first age with a negative balance
	YearsFunded        int     `json:"years_funded"`            // retired years ending with a non-negative balance
}

// StrategyOutcome is the projection of one investment strategy
type StrategyOutcome struct {
	Strategy InvestmentStrategy `json:"strategy"`
	Result   ProjectionResult   `json:"result"`
	Analysis ProjectionAnalysis `json:"analysis"`
}

// StrategyComparison runs the same inputs under every strategy
type StrategyComparison struct {
	Inputs   ProjectionInputs  `json:"inputs"`
	Outcomes []StrategyOutcome `json:"outcomes"` // worst, balanced, best
}

// Outcome returns the outcome for strategy s; the empty strategy means Balanced.
func (sc *StrategyComparison) Outcome(s InvestmentStrategy) (StrategyOutcome, bool) {
	if s == "" {
		s = StrategyBalanced
	}
	for _, o := range sc.Outcomes {
		if o.Strategy == s {
			return o, true
		}
	}
	return StrategyOutcome{}, false
}
