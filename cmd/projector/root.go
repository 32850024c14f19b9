package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/rpgo/retirement-projector/internal/calculation"
	"github.com/rpgo/retirement-projector/internal/config"
	"github.com/rpgo/retirement-projector/internal/domain"
	"github.com/rpgo/retirement-projector/internal/output"
)

// inputFlags collects projection inputs from either a YAML file or individual flags.
type inputFlags struct {
	configFile        string
	form              config.FormInput
	inflationAdjusted bool
}

func (f *inputFlags) register(cmd *cobra.Command) {
	fl := cmd.Flags()
	fl.StringVarP(&f.configFile, "config", "c", "", "YAML configuration file (overrides the input flags)")
	fl.StringVar(&f.form.CurrentAge, "current-age", "", "current age in years")
	fl.StringVar(&f.form.RetirementAge, "retirement-age", "", "age at which contributions stop and withdrawals start")
	fl.StringVar(&f.form.LifeExpectancy, "life-expectancy", "", "last projected age")
	fl.StringVar(&f.form.ReturnRate, "return-rate", "", "expected annual return in percent, e.g. 7")
	fl.StringVar(&f.form.InflationRate, "inflation-rate", "", "annual inflation in percent, e.g. 2")
	fl.StringVar(&f.form.InitialInvestment, "initial", "", "initial investment, e.g. \"$10,000\"")
	fl.StringVar(&f.form.ContributionAmount, "contribution", "", "contribution per interval")
	fl.StringVar(&f.form.ContributionInterval, "interval", "annually", "contribution interval: annually, quarterly or monthly")
	fl.StringVar(&f.form.WithdrawalAmount, "withdrawal", "", "annual withdrawal in retirement")
	fl.BoolVar(&f.inflationAdjusted, "inflation-adjusted", false, "grow the withdrawal with inflation")
	fl.StringVar(&f.form.WithdrawalIncreaseRate, "withdrawal-increase-rate", "", "grow the withdrawal by this percent a year from retirement (instead of inflation)")
	fl.StringVar(&f.form.InvestmentStrategy, "strategy", "balanced", "investment strategy: worst, balanced or best")
	fl.StringVar(&f.form.WithdrawalMode, "withdrawal-mode", "amount", "withdrawal mode: amount or percentage")
	fl.StringVar(&f.form.WithdrawalRate, "withdrawal-rate", "", "percent of the balance withdrawn each year in percentage mode")
}

// load returns the plan name and validated inputs.
func (f *inputFlags) load() (string, domain.ProjectionInputs, error) {
	if f.configFile != "" {
		cfg, err := config.NewInputParser().LoadFromFile(f.configFile)
		if err != nil {
			return "", domain.ProjectionInputs{}, err
		}
		return cfg.Name, cfg.Inputs(), nil
	}

	form := f.form
	form.InflationAdjustedWithdrawal = fmt.Sprint(f.inflationAdjusted)
	inputs, err := form.ToInputs()
	if err != nil {
		return "", domain.ProjectionInputs{}, fmt.Errorf("invalid input: %w", err)
	}
	return "", inputs, nil
}

func newEngine(verbose bool, stderr io.Writer) *calculation.ProjectionEngine {
	engine := calculation.NewProjectionEngine()
	if verbose {
		engine.SetLogger(calculation.NewWriterLogger(stderr, true))
	}
	return engine
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "projector",
		Short:        "Project retirement savings year by year",
		Long:         "projector computes a year-by-year retirement savings projection with contributions, withdrawals, inflation and investment strategy.",
		SilenceUsage: true,
	}
	root.PersistentFlags().BoolP("verbose", "v", false, "log engine details to stderr")

	root.AddCommand(
		newProjectCmd(),
		newCompareCmd(),
		newExampleCmd(),
		newFormatsCmd(),
		newServeCmd(),
	)
	return root
}

// emit renders report to stdout, or to a timestamped file when outputDir is set.
func emit(cmd *cobra.Command, report *output.Report, format, outputDir string) error {
	if outputDir != "" {
		path, err := output.GenerateReport(report, format, outputDir)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", path)
		return nil
	}

	f := output.GetFormatterByName(format)
	if f == nil {
		return fmt.Errorf("%w: %q (run \"projector formats\" for the list)", output.ErrUnsupportedFormat, format)
	}
	data, err := f.Format(report)
	if err != nil {
		return fmt.Errorf("%s formatter: %w", f.Name(), err)
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
