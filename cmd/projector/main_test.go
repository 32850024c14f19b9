package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rpgo/retirement-projector/internal/calculation"
	"github.com/rpgo/retirement-projector/internal/output"
)

var baselineFlags = []string{
	"--current-age", "30",
	"--retirement-age", "65",
	"--life-expectancy", "90",
	"--return-rate", "7",
	"--inflation-rate", "2",
	"--initial", "$10,000",
	"--contribution", "5000",
	"--withdrawal", "50,000",
}

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestProjectCommand_Console(t *testing.T) {
	stdout, _, err := run(t, append([]string{"project"}, baselineFlags...)...)
	require.NoError(t, err)

	assert.Contains(t, stdout, "RETIREMENT PROJECTION")
	assert.Contains(t, stdout, "Savings at retirement (age 65)")
	assert.NotContains(t, stdout, "STRATEGY COMPARISON")
}

func TestProjectCommand_CSV(t *testing.T) {
	stdout, _, err := run(t, append([]string{"project", "--format", "csv-yearly", "--interval", "monthly"}, baselineFlags...)...)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	require.Len(t, lines, 62)
	assert.True(t, strings.HasPrefix(lines[1], "30,0.00,0.00,0.00,10000.00,10000.00,false"))
	// 5000 monthly is 60000 a year
	assert.True(t, strings.HasPrefix(lines[2], "31,60000.00,"), lines[2])
}

func TestProjectCommand_WithdrawalIncreaseRate(t *testing.T) {
	stdout, _, err := run(t, append([]string{"project", "--format", "csv", "--withdrawal-increase-rate", "3"}, baselineFlags...)...)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	require.Len(t, lines, 62)
	assert.True(t, strings.HasPrefix(lines[36], "65,0.00,50000.00,"), lines[36])
	assert.True(t, strings.HasPrefix(lines[37], "66,0.00,51500.00,"), lines[37])
}

func TestProjectCommand_Verbose(t *testing.T) {
	_, stderr, err := run(t, append([]string{"project", "--verbose", "--format", "json"}, baselineFlags...)...)
	require.NoError(t, err)
	assert.Contains(t, stderr, "DEBUG projected ages 30-90 (61 records)")
}

func TestProjectCommand_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "plan.yaml")
	_, _, err := run(t, "example", path)
	require.NoError(t, err)

	stdout, _, err := run(t, "project", "--config", path, "--format", "text")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Plan: Example Saver")
}

func TestProjectCommand_OutputDir(t *testing.T) {
	dir := t.TempDir()
	stdout, _, err := run(t, append([]string{"project", "--format", "html", "--output-dir", dir}, baselineFlags...)...)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Report written to ")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.True(t, strings.HasSuffix(entries[0].Name(), ".html"))
}

func TestProjectCommand_Errors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		message string
	}{
		{"bad amount", []string{"--initial", "ten grand"}, "initial-investment"},
		{"retirement before current age", []string{"--retirement-age", "20"}, "retirement_age"},
		{"unknown strategy", []string{"--strategy", "yolo"}, "investment-strategy"},
		{"unknown format", []string{"--format", "pdf"}, output.ErrUnsupportedFormat.Error()},
		{"missing config", []string{"--config", "does-not-exist.yaml"}, "failed to read file"},
		{"bad increase rate", []string{"--withdrawal-increase-rate", "fast"}, "withdrawal-increase-rate"},
		{"increase rate with inflation", []string{"--withdrawal-increase-rate", "3", "--inflation-adjusted"}, "withdrawal_increase_rate"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"project"}, baselineFlags...)
			args = append(args, tt.args...)
			_, stderr, err := run(t, args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.message)
			assert.Contains(t, stderr, "Error:")
		})
	}
}

func TestProjectCommand_ValidationErrorIsTyped(t *testing.T) {
	_, _, err := run(t, append([]string{"project"}, append(baselineFlags, "--life-expectancy", "60")...)...)
	require.Error(t, err)
	assert.ErrorIs(t, err, calculation.ErrInvalidInputs)
}

func TestCompareCommand(t *testing.T) {
	stdout, _, err := run(t, append([]string{"compare"}, baselineFlags...)...)
	require.NoError(t, err)

	assert.Contains(t, stdout, "STRATEGY COMPARISON")
	assert.Contains(t, stdout, "Worst Case")
	assert.Contains(t, stdout, "Best Case")

	stdout, _, err = run(t, append([]string{"compare", "--format", "csv-summary"}, baselineFlags...)...)
	require.NoError(t, err)
	assert.Len(t, strings.Split(strings.TrimSpace(stdout), "\n"), 4)
}

func TestExampleCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "example.yaml")
	stdout, _, err := run(t, "example", path)
	require.NoError(t, err)
	assert.Contains(t, stdout, path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "current_age: 30")
}

func TestFormatsCommand(t *testing.T) {
	stdout, _, err := run(t, "formats")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Formats: console, csv, csv-summary, html, json")
	assert.Contains(t, stdout, "table")
}
