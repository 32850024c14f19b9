package output

import (
	"bytes"
	"encoding/csv"
	"errors"
)

// CSVYearlyExporter writes one row per projected age.
type CSVYearlyExporter struct{}

func (c CSVYearlyExporter) Name() string      { return "csv" }
func (c CSVYearlyExporter) Extension() string { return "csv" }

func (c CSVYearlyExporter) Format(report *Report) ([]byte, error) {
	if report == nil || report.Result == nil {
		return nil, errors.New("report has no projection result")
	}
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Age", "AnnualContribution", "Withdrawal", "InflationAdjustedWithdrawal", "Balance", "InflationAdjustedBalance", "Retired"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, yr := range report.Result.YearlyResults {
		row := []string{
			intToString(yr.Age),
			formatAmount(yr.AnnualContribution),
			formatAmount(yr.Withdrawal),
			formatAmount(yr.InflationAdjustedWithdrawal),
			formatAmount(yr.Balance),
			formatAmount(yr.InflationAdjustedBalance),
			boolToString(yr.Retired),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
