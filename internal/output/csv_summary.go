package output

import (
	"bytes"
	"encoding/csv"
	"errors"

	"github.com/rpgo/retirement-projector/internal/domain"
)

// CSVSummarizer writes one summary row per strategy, or a single row when the report
// has no strategy comparison.
type CSVSummarizer struct{}

func (c CSVSummarizer) Name() string      { return "csv-summary" }
func (c CSVSummarizer) Extension() string { return "csv" }

func (c CSVSummarizer) Format(report *Report) ([]byte, error) {
	if report == nil || report.Result == nil {
		return nil, errors.New("report has no projection result")
	}
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Strategy", "EffectiveReturnRate", "RetirementNominal", "RetirementAdjusted", "EndOfLifeNominal", "EndOfLifeAdjusted", "TotalContributions", "TotalWithdrawals", "DepletionAge"}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	outcomes := []domain.StrategyOutcome{{Strategy: report.Inputs.InvestmentStrategy, Result: *report.Result, Analysis: report.Analysis}}
	if report.Comparison != nil {
		outcomes = report.Comparison.Outcomes
	}
	for _, o := range outcomes {
		var retNominal, retAdjusted string
		if o.Result.RetirementSavings != nil {
			retNominal = formatAmount(o.Result.RetirementSavings.Nominal)
			retAdjusted = formatAmount(o.Result.RetirementSavings.Adjusted)
		}
		depletion := ""
		if o.Analysis.DepletionAge != nil {
			depletion = intToString(*o.Analysis.DepletionAge)
		}
		row := []string{
			strategyName(o.Strategy),
			FormatPercentage(o.Result.EffectiveReturnRate),
			retNominal,
			retAdjusted,
			formatAmount(o.Result.EndOfLifeSavings.Nominal),
			formatAmount(o.Result.EndOfLifeSavings.Adjusted),
			formatAmount(o.Analysis.TotalContributions),
			formatAmount(o.Analysis.TotalWithdrawals),
			depletion,
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

// strategyName renders the empty strategy as Balanced.
func strategyName(s domain.InvestmentStrategy) string {
	if s == "" {
		return string(domain.StrategyBalanced)
	}
	return string(s)
}
