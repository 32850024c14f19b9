package output

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
)

// ConsoleFormatter renders a plain-text report: assumptions, summary and the yearly table.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string      { return "console" }
func (c ConsoleFormatter) Extension() string { return "txt" }

func (c ConsoleFormatter) Format(report *Report) ([]byte, error) {
	if report == nil || report.Result == nil {
		return nil, errors.New("report has no projection result")
	}
	var buf bytes.Buffer
	result := report.Result

	fmt.Fprintln(&buf, "RETIREMENT PROJECTION")
	fmt.Fprintln(&buf, strings.Repeat("=", 96))
	if report.Name != "" {
		fmt.Fprintf(&buf, "Plan: %s\n", report.Name)
	}
	fmt.Fprintln(&buf)
	fmt.Fprintln(&buf, "KEY ASSUMPTIONS:")
	for _, a := range GenerateAssumptions(report.Inputs) {
		fmt.Fprintf(&buf, "• %s\n", a)
	}
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "SUMMARY")
	fmt.Fprintln(&buf, strings.Repeat("-", 40))
	if result.RetirementSavings != nil {
		fmt.Fprintf(&buf, "Savings at retirement (age %d): %s (%s adjusted)\n", report.Inputs.RetirementAge,
			FormatCurrency(result.RetirementSavings.Nominal), FormatCurrency(result.RetirementSavings.Adjusted))
	}
	fmt.Fprintf(&buf, "Savings at end of life (age %d): %s (%s adjusted)\n", report.Inputs.LifeExpectancy,
		FormatCurrency(result.EndOfLifeSavings.Nominal), FormatCurrency(result.EndOfLifeSavings.Adjusted))
	fmt.Fprintf(&buf, "Total contributions: %s\n", FormatCurrency(report.Analysis.TotalContributions))
	fmt.Fprintf(&buf, "Total withdrawals:   %s\n", FormatCurrency(report.Analysis.TotalWithdrawals))
	fmt.Fprintf(&buf, "Peak balance:        %s at age %d\n", FormatCurrency(report.Analysis.PeakBalance), report.Analysis.PeakBalanceAge)
	if report.Analysis.DepletionAge != nil {
		fmt.Fprintf(&buf, "WARNING: savings run out at age %d\n", *report.Analysis.DepletionAge)
	}
	fmt.Fprintln(&buf)

	fmt.Fprintf(&buf, "%-5s %18s %18s %18s %18s %18s\n", "Age", "Contribution", "Withdrawal", "Adj. Withdrawal", "Balance", "Adj. Balance")
	fmt.Fprintln(&buf, strings.Repeat("-", 100))
	for _, yr := range result.YearlyResults {
		fmt.Fprintf(&buf, "%-5d %18s %18s %18s %18s %18s\n",
			yr.Age,
			FormatCurrency(yr.AnnualContribution),
			FormatCurrency(yr.Withdrawal),
			FormatCurrency(yr.InflationAdjustedWithdrawal),
			FormatCurrency(yr.Balance),
			FormatCurrency(yr.InflationAdjustedBalance),
		)
	}

	if report.Comparison != nil {
		fmt.Fprintln(&buf)
		writeStrategyComparison(&buf, report)
	}
	return buf.Bytes(), nil
}

func writeStrategyComparison(buf *bytes.Buffer, report *Report) {
	fmt.Fprintln(buf, "STRATEGY COMPARISON")
	fmt.Fprintln(buf, strings.Repeat("-", 40))
	fmt.Fprintf(buf, "%-12s %8s %18s %18s %10s\n", "Strategy", "Return", "At Retirement", "End of Life", "Depletes")
	for _, o := range report.Comparison.Outcomes {
		atRetirement := "-"
		if o.Result.RetirementSavings != nil {
			atRetirement = FormatCompactCurrency(o.Result.RetirementSavings.Nominal)
		}
		depletes := "never"
		if o.Analysis.DepletionAge != nil {
			depletes = fmt.Sprintf("age %d", *o.Analysis.DepletionAge)
		}
		fmt.Fprintf(buf, "%-12s %8s %18s %18s %10s\n",
			strategyName(o.Strategy),
			FormatPercentage(o.Result.EffectiveReturnRate),
			atRetirement,
			FormatCompactCurrency(o.Result.EndOfLifeSavings.Nominal),
			depletes,
		)
	}
	rec := AnalyzeStrategies(report.Comparison)
	if rec.SafestFunded != "" {
		fmt.Fprintf(buf, "Most conservative fully funded strategy: %s\n", rec.SafestFunded)
	} else {
		fmt.Fprintln(buf, "No strategy keeps the balance positive through end of life")
	}
	fmt.Fprintf(buf, "Best/worst end-of-life spread: %s\n", FormatCurrency(rec.Spread))
}
