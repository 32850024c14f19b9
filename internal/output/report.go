package output

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rpgo/retirement-projector/internal/calculation"
	"github.com/rpgo/retirement-projector/internal/domain"
)

// ErrUnsupportedFormat is returned for unknown output format names.
var ErrUnsupportedFormat = errors.New("unsupported output format")

// Report is everything a formatter renders for one projection run.
type Report struct {
	ID          string                     `json:"id"`
	GeneratedAt time.Time                  `json:"generated_at"`
	Name        string                     `json:"name,omitempty"`
	Inputs      domain.ProjectionInputs    `json:"inputs"`
	Result      *domain.ProjectionResult   `json:"result"`
	Analysis    domain.ProjectionAnalysis  `json:"analysis"`
	Comparison  *domain.StrategyComparison `json:"comparison,omitempty"`
}

// NewReport wraps a projection result with its analysis. comparison may be nil.
func NewReport(name string, inputs domain.ProjectionInputs, result *domain.ProjectionResult, comparison *domain.StrategyComparison) *Report {
	return &Report{
		ID:          idFunc(),
		GeneratedAt: nowFunc().UTC(),
		Name:        name,
		Inputs:      inputs,
		Result:      result,
		Analysis:    calculation.Analyze(result),
		Comparison:  comparison,
	}
}

// GenerateReport renders report with the named format and writes it to a timestamped
// file in dir. It returns the written path.
func GenerateReport(report *Report, format, dir string) (string, error) {
	f := GetFormatterByName(format)
	if f == nil {
		return "", fmt.Errorf("%w: %q. Try one of: %s (aliases: %s)", ErrUnsupportedFormat, format, strings.Join(AvailableFormatterNames(), ", "), strings.Join(AvailableFormatAliases(), ", "))
	}
	return WriteFormatted(f, report, dir)
}

// WriteFormatted runs a formatter and writes output to a timestamped file in dir.
func WriteFormatted(f Formatter, report *Report, dir string) (string, error) {
	data, err := f.Format(report)
	if err != nil {
		return "", fmt.Errorf("%s formatter: %w", f.Name(), err)
	}
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	filename := filepath.Join(dir, fmt.Sprintf("retirement_projection_%s.%s", nowFunc().Format("20060102_150405"), f.Extension()))
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return "", err
	}
	return filename, nil
}
