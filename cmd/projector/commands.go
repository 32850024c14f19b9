package main

import (
	"fmt"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/rpgo/retirement-projector/internal/calculation"
	"github.com/rpgo/retirement-projector/internal/config"
	"github.com/rpgo/retirement-projector/internal/output"
	"github.com/rpgo/retirement-projector/internal/server"
)

func newProjectCmd() *cobra.Command {
	var (
		in        inputFlags
		format    string
		outputDir string
	)
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Run a single projection",
		Example: `  projector project --config plan.yaml
  projector project --current-age 30 --retirement-age 65 --life-expectancy 90 \
    --return-rate 7 --inflation-rate 2 --initial '$10,000' --contribution 5000 --withdrawal 50000`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			name, inputs, err := in.load()
			if err != nil {
				return err
			}
			verbose, _ := cmd.Flags().GetBool("verbose")
			engine := newEngine(verbose, cmd.ErrOrStderr())

			result, err := engine.RunProjection(cmd.Context(), inputs)
			if err != nil {
				return err
			}
			return emit(cmd, output.NewReport(name, inputs, result, nil), format, outputDir)
		},
	}
	in.register(cmd)
	cmd.Flags().StringVarP(&format, "format", "f", "console", "output format (see \"projector formats\")")
	cmd.Flags().StringVarP(&outputDir, "output-dir", "o", "", "write the report to a file in this directory instead of stdout")
	return cmd
}

func newCompareCmd() *cobra.Command {
	var (
		in        inputFlags
		format    string
		outputDir string
	)
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Compare the worst case, balanced and best case strategies",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			name, inputs, err := in.load()
			if err != nil {
				return err
			}
			verbose, _ := cmd.Flags().GetBool("verbose")
			engine := newEngine(verbose, cmd.ErrOrStderr())

			comparison, err := engine.CompareStrategies(cmd.Context(), inputs)
			if err != nil {
				return err
			}
			selected, _ := comparison.Outcome(inputs.InvestmentStrategy)
			return emit(cmd, output.NewReport(name, inputs, &selected.Result, comparison), format, outputDir)
		},
	}
	in.register(cmd)
	cmd.Flags().StringVarP(&format, "format", "f", "console", "output format (see \"projector formats\")")
	cmd.Flags().StringVarP(&outputDir, "output-dir", "o", "", "write the report to a file in this directory instead of stdout")
	return cmd
}

func newExampleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "example [file]",
		Short: "Write an example YAML configuration",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filename := "example_config.yaml"
			if len(args) == 1 {
				filename = args[0]
			}
			parser := config.NewInputParser()
			if err := parser.SaveConfiguration(parser.CreateExampleConfiguration(), filename); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Example configuration written to %s\n", filename)
			return nil
		},
	}
}

func newFormatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "formats",
		Short: "List output formats and their aliases",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Formats: %s\n", strings.Join(output.AvailableFormatterNames(), ", "))
			fmt.Fprintf(out, "Aliases: %s\n", strings.Join(output.AvailableFormatAliases(), ", "))
		},
	}
}

func newServeCmd() *cobra.Command {
	var (
		addr         string
		readTimeout  time.Duration
		writeTimeout time.Duration
		debug        bool
	)
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the calculator form and JSON API over HTTP",
		Long:  "Serve the calculator form and JSON API over HTTP. Settings come from PROJECTOR_ADDR, PROJECTOR_READ_TIMEOUT, PROJECTOR_WRITE_TIMEOUT and PROJECTOR_DEBUG; flags override them.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadServerConfig()
			if err != nil {
				return err
			}
			fl := cmd.Flags()
			if fl.Changed("addr") {
				cfg.Addr = addr
			}
			if fl.Changed("read-timeout") {
				cfg.ReadTimeout = readTimeout
			}
			if fl.Changed("write-timeout") {
				cfg.WriteTimeout = writeTimeout
			}
			if fl.Changed("debug") {
				cfg.Debug = debug
			}
			if verbose, _ := fl.GetBool("verbose"); verbose {
				cfg.Debug = true
			}

			logger := calculation.NewWriterLogger(cmd.ErrOrStderr(), cfg.Debug)
			engine := calculation.NewProjectionEngine()
			engine.SetLogger(logger)

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return server.New(engine, logger).ListenAndServe(ctx, cfg)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().DurationVar(&readTimeout, "read-timeout", 10*time.Second, "HTTP read timeout")
	cmd.Flags().DurationVar(&writeTimeout, "write-timeout", 10*time.Second, "HTTP write timeout")
	cmd.Flags().BoolVar(&debug, "debug", false, "log debug output")
	return cmd
}
