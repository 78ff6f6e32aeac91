package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/charmingruby/functional/internal/config"
	"github.com/charmingruby/functional/internal/demo"
	"github.com/charmingruby/functional/internal/logging"
)

var (
	logLevel  string
	logFormat string
)

var runCmd = &cobra.Command{
	Use:   "run [suite...]",
	Short: "Run demonstration suites",
	Long: `Run the named suites, or the suites listed in the config file, or every
suite when neither names one. Each step is logged with its result.`,
	RunE: runRun,
}

func init() {
	runCmd.Flags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")
	runCmd.Flags().StringVar(&logFormat, "log-format", "", "log format (json, console, auto)")
	rootCmd.AddCommand(runCmd)
}

func runRun(_ *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := logging.New(cfg.Logging)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := closeLog(); cerr != nil {
			logger.Warn().Err(cerr).Msg("failed to close log output")
		}
	}()

	report, err := demo.NewRunner(logger, cfg.Demo).Run(args)
	if err != nil {
		return fmt.Errorf("demo run failed: %w", err)
	}
	logger.Debug().Str("run_id", report.RunID).Int("suites", len(report.Results)).Msg("done")
	return nil
}

func loadConfig() (*config.Config, error) {
	cfg := config.Default()
	if cfgFile != "" {
		loaded, err := config.Load(cfgFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if logLevel != "" {
		cfg.Logging.Level = logLevel
	}
	if logFormat != "" {
		cfg.Logging.Format = logFormat
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
