package output

import "github.com/rpgo/retirement-projector/internal/domain"

// ChartSeries is one line of a time-series chart.
type ChartSeries struct {
	Label  string    `json:"label"`
	Color  string    `json:"borderColor"`
	Values []float64 `json:"data"`
}

// Chart is a line chart keyed by age.
type Chart struct {
	ID     string        `json:"id"`
	Title  string        `json:"title"`
	Labels []int         `json:"labels"`
	Series []ChartSeries `json:"datasets"`
}

// BuildCharts returns the balance-over-time and withdrawal-over-time charts, each with
// a nominal and an inflation-adjusted series.
func BuildCharts(result *domain.ProjectionResult) []Chart {
	if result == nil {
		return nil
	}
	n := len(result.YearlyResults)
	labels := make([]int, n)
	balance := make([]float64, n)
	adjBalance := make([]float64, n)
	withdrawal := make([]float64, n)
	adjWithdrawal := make([]float64, n)
	for i, yr := range result.YearlyResults {
		labels[i] = yr.Age
		balance[i] = yr.Balance
		adjBalance[i] = yr.InflationAdjustedBalance
		withdrawal[i] = yr.Withdrawal
		adjWithdrawal[i] = yr.InflationAdjustedWithdrawal
	}

	return []Chart{
		{
			ID:     "balance-chart",
			Title:  "Balance Over Time",
			Labels: labels,
			Series: []ChartSeries{
				{Label: "Balance", Color: "blue", Values: balance},
				{Label: "Inflation-Adjusted Balance", Color: "green", Values: adjBalance},
			},
		},
		{
			ID:     "withdrawal-chart",
			Title:  "Withdrawals Over Time",
			Labels: labels,
			Series: []ChartSeries{
				{Label: "Withdrawal", Color: "red", Values: withdrawal},
				{Label: "Inflation-Adjusted Withdrawal", Color: "orange", Values: adjWithdrawal},
			},
		},
	}
}
