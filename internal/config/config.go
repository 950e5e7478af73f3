// Package config defines the data structures related to configuration and
// includes functions for loading and validating the config.
package config

import (
	"fmt"
	"io"
	"strings"

	"github.com/iwvelando/youth-budget/internal/budget"
	"github.com/iwvelando/youth-budget/pkg/constants"
	"github.com/iwvelando/youth-budget/pkg/validation"
	"github.com/spf13/viper"
)

// Configuration holds all configuration for youth-budget.
type Configuration struct {
	Program budget.Program `yaml:"program" mapstructure:"program"`
	Rates   budget.Rates   `yaml:"rates" mapstructure:"rates"`
	Budget  BudgetConfig   `yaml:"budget,omitempty" mapstructure:"budget"`
	Logging LoggingConfig  `yaml:"logging,omitempty" mapstructure:"logging"`
	Output  OutputConfig   `yaml:"output,omitempty" mapstructure:"output"`
}

// BudgetConfig holds planning limits.
type BudgetConfig struct {
	Ceiling     float64 `yaml:"ceiling,omitempty" mapstructure:"ceiling"`         // capacity planning target, 0 = unset
	SearchLimit int     `yaml:"searchLimit,omitempty" mapstructure:"searchLimit"` // largest participant count considered
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty" mapstructure:"level"`           // debug, info, warn, error
	Format     string `yaml:"format,omitempty" mapstructure:"format"`         // json, console
	OutputFile string `yaml:"outputFile,omitempty" mapstructure:"outputFile"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty" mapstructure:"format"` // pretty, csv, json
}

// Default returns the configuration used when no file is present.
func Default() Configuration {
	return Configuration{
		Program: budget.DefaultProgram(),
		Rates:   budget.DefaultRates(),
	}
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there. Sections missing from the file keep their defaults and
// any key can be overridden from the environment, e.g.
// YOUTH_BUDGET_PROGRAM_PROGRAMDAYS=45.
func LoadConfiguration(configPath string) (*Configuration, error) {
	v := newViper()
	v.SetConfigFile(configPath)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %w", err)
	}

	return decode(v)
}

// LoadConfigurationFromReader loads YAML configuration from r, applying the same
// defaults and environment overrides as LoadConfiguration.
func LoadConfigurationFromReader(r io.Reader) (*Configuration, error) {
	v := newViper()

	if err := v.ReadConfig(r); err != nil {
		return nil, fmt.Errorf("error reading config data, %w", err)
	}

	return decode(v)
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yml")
	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)
	return v
}

// setDefaults registers every key so that environment overrides apply even
// when the file omits a section.
func setDefaults(v *viper.Viper) {
	p := budget.DefaultProgram()
	v.SetDefault("program.numberOfParticipants", p.Participants)
	v.SetDefault("program.programDays", p.ProgramDays)
	v.SetDefault("program.hoursPerDay", p.HoursPerDay)
	v.SetDefault("program.isPaid", p.Paid)
	v.SetDefault("program.hasMinors", p.HasMinors)
	v.SetDefault("program.isStationary", p.Stationary)
	v.SetDefault("program.needsFoodProgram", p.NeedsFoodProgram)
	v.SetDefault("program.qualifiesForYouthPrize", p.QualifiesForYouthPrize)
	v.SetDefault("program.dailyTransportNeeded", p.DailyTransportNeeded)

	r := budget.DefaultRates()
	v.SetDefault("rates.internHourlyRate", r.InternHourlyRate)
	v.SetDefault("rates.coordinatorHourlyRate", r.CoordinatorHourlyRate)
	v.SetDefault("rates.dailyFoodCost", r.DailyFoodCost)
	v.SetDefault("rates.dailySupplies", r.DailySupplies)
	v.SetDefault("rates.laptopCost", r.LaptopCost)
	v.SetDefault("rates.trainingMaterials", r.TrainingMaterials)
	v.SetDefault("rates.vanCost", r.VanCost)
	v.SetDefault("rates.busCostPerHour", r.BusCostPerHour)

	v.SetDefault("budget.ceiling", 0.0)
	v.SetDefault("budget.searchLimit", constants.DefaultCapacitySearchLimit)

	v.SetDefault("logging.level", "")
	v.SetDefault("logging.format", "")
	v.SetDefault("logging.outputFile", "")
	v.SetDefault("output.format", "")
}

func decode(v *viper.Viper) (*Configuration, error) {
	var configuration Configuration
	if err := v.Unmarshal(&configuration); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %w", err)
	}
	configuration.Program.Normalize()
	return &configuration, nil
}

// ValidateConfiguration performs general validation of the configuration and returns warnings
func (c *Configuration) ValidateConfiguration() []string {
	var warnings []string
	warnings = append(warnings, validation.ValidateProgram(c.Program)...)
	warnings = append(warnings, validation.ValidateRates(c.Rates)...)
	warnings = append(warnings, validation.ValidateCeiling(c.Budget.Ceiling)...)
	return warnings
}
