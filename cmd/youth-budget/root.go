package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/iwvelando/youth-budget/internal/budget"
	"github.com/iwvelando/youth-budget/internal/config"
	"github.com/iwvelando/youth-budget/pkg/constants"
	"github.com/iwvelando/youth-budget/pkg/validation"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	flagConfig       string
	flagLogLevel     string
	flagOutputFormat string

	// Populated by PersistentPreRunE for every subcommand.
	conf   *config.Configuration
	logger = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:           "youth-budget",
	Short:         "Youth program budget calculator",
	Long:          "Estimate the cost of a youth program and list the safety and employment steps it requires.",
	SilenceUsage:  true,
	SilenceErrors: true,

	PersistentPreRunE: setup,
	PersistentPostRun: func(_ *cobra.Command, _ []string) {
		_ = logger.Sync()
	},
	RunE: runEstimate,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "{\"op\": \"main\", \"level\": \"fatal\", \"error\": %q}\n", err.Error())
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagConfig, "config", "c", constants.DefaultConfigFile, "path to configuration file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "log level override (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVarP(&flagOutputFormat, "output-format", "o", "", "type of output override: pretty, csv, json")
}

// setup loads .env, the configuration file and the logger.
func setup(cmd *cobra.Command, _ []string) error {
	_ = godotenv.Load()

	loaded, err := loadConfig(flagConfig, cmd.Flags().Changed("config"))
	if err != nil {
		return err
	}
	conf = loaded

	l, err := initializeLogger(conf.Logging, flagLogLevel)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	logger = l

	for _, warning := range conf.ValidateConfiguration() {
		logger.Warn("Configuration warning: "+warning,
			zap.String("op", "main"),
		)
	}
	return nil
}

// loadConfig reads the configuration at path. A missing file is only an error
// when the path was given explicitly; otherwise defaults and environment
// overrides apply.
func loadConfig(path string, explicit bool) (*config.Configuration, error) {
	if !explicit {
		if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
			return config.LoadConfigurationFromReader(strings.NewReader(""))
		}
	}

	loaded, err := config.LoadConfiguration(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration at %s: %w", path, err)
	}
	return loaded, nil
}

// outputFormat resolves the output format, with the CLI flag taking precedence.
func outputFormat() (string, error) {
	format := conf.Output.Format
	if flagOutputFormat != "" {
		format = flagOutputFormat
	}
	if format == "" {
		format = constants.OutputFormatPretty
	}
	if err := validation.ValidateOutputFormat(format); err != nil {
		return "", err
	}
	return format, nil
}

// newSession builds a session from the loaded configuration and applies any
// field=value overrides in order.
func newSession(sets []string) (*budget.Session, error) {
	session := budget.NewSession(conf.Program, conf.Rates, budget.WithLogger(logger))
	if err := applySets(session, sets); err != nil {
		return nil, err
	}
	return session, nil
}

func applySets(session *budget.Session, sets []string) error {
	for _, set := range sets {
		field, value, ok := strings.Cut(set, "=")
		if !ok {
			return fmt.Errorf("invalid --set %q: expected field=value", set)
		}
		if err := session.Set(strings.TrimSpace(field), strings.TrimSpace(value)); err != nil {
			return fmt.Errorf("invalid --set %q: %w", set, err)
		}
	}
	return nil
}
