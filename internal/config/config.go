// Package config defines the data structures related to configuration and
// includes functions for loading, validating and converting the config into
// planner inputs.
package config

import (
	"fmt"
	"io"
	"reflect"
	"strconv"
	"strings"

	"github.com/iwvelando/pieces-planner/internal/planner"
	"github.com/iwvelando/pieces-planner/pkg/constants"
	"github.com/iwvelando/pieces-planner/pkg/validation"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

// Configuration holds all configuration for pieces-planner.
type Configuration struct {
	Planner    planner.Config               `yaml:"planner"`
	Categories []planner.CategoryAssumption `yaml:"categories"`
	Logging    LoggingConfig                `yaml:"logging,omitempty"`
	Output     OutputConfig                 `yaml:"output,omitempty"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, csv
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there. Environment variables prefixed with PIECES_ override
// file values, e.g. PIECES_PLANNER_DAYSINMONTH=31.
func LoadConfiguration(configPath string) (*Configuration, error) {
	v := newViper(true)
	v.SetConfigFile(configPath)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %w", err)
	}

	return decode(v)
}

// LoadDefaults builds the default configuration with PIECES_ environment
// overrides applied. It is used when no configuration file exists.
func LoadDefaults() (*Configuration, error) {
	return decode(newViper(true))
}

// LoadConfigurationFromReader loads a YAML-formatted configuration from r.
// Only the values in r and the built-in defaults are used; the process
// environment is ignored.
func LoadConfigurationFromReader(r io.Reader) (*Configuration, error) {
	v := newViper(false)

	if err := v.ReadConfig(r); err != nil {
		return nil, fmt.Errorf("error reading config data, %w", err)
	}

	return decode(v)
}

// Default returns the configuration used when no file is supplied.
func Default() *Configuration {
	return &Configuration{
		Planner:    DefaultPlanner(),
		Categories: DefaultCategories(),
	}
}

func newViper(withEnv bool) *viper.Viper {
	v := viper.New()
	v.SetConfigType("yml")
	if withEnv {
		v.SetEnvPrefix(constants.EnvPrefix)
		v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		v.AutomaticEnv()
	}

	defaults := DefaultPlanner()
	v.SetDefault("planner.monthlyRevenueTarget", defaults.MonthlyRevenueTarget)
	v.SetDefault("planner.daysInMonth", defaults.DaysInMonth)
	v.SetDefault("planner.laborPercent", defaults.LaborPercent)
	v.SetDefault("planner.normalizeMix", defaults.NormalizeMix)
	v.SetDefault("logging.level", "")
	v.SetDefault("logging.format", "")
	v.SetDefault("logging.outputFile", "")
	v.SetDefault("output.format", "")
	return v
}

func decode(v *viper.Viper) (*Configuration, error) {
	var configuration Configuration
	hook := viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		lenientNumberHookFunc(),
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	))
	if err := v.Unmarshal(&configuration, hook); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %w", err)
	}

	// An explicit empty list is kept; only a missing list gets the defaults.
	if !v.IsSet("categories") {
		configuration.Categories = DefaultCategories()
	}

	return &configuration, nil
}

// lenientNumberHookFunc turns strings destined for numeric fields into
// float64 values. Text that does not parse as a number becomes 0.
func lenientNumberHookFunc() mapstructure.DecodeHookFuncType {
	return func(f reflect.Type, t reflect.Type, data interface{}) (interface{}, error) {
		if f.Kind() != reflect.String {
			return data, nil
		}
		switch t.Kind() {
		case reflect.Float32, reflect.Float64,
			reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		default:
			return data, nil
		}

		n, err := strconv.ParseFloat(strings.TrimSpace(reflect.ValueOf(data).String()), 64)
		if err != nil {
			return 0.0, nil
		}
		return n, nil
	}
}

// Validate reports configuration errors that make a plan impossible to
// calculate.
func (c *Configuration) Validate() error {
	days := c.Planner.DaysInMonth
	if days < constants.MinDaysInMonth || days > constants.MaxDaysInMonth {
		return fmt.Errorf("daysInMonth must be between %d and %d, got %d",
			constants.MinDaysInMonth, constants.MaxDaysInMonth, days)
	}

	seen := make(map[string]int, len(c.Categories))
	for i, category := range c.Categories {
		name := strings.TrimSpace(category.Name)
		if name == "" {
			return fmt.Errorf("category %d has no name", i+1)
		}
		if first, ok := seen[name]; ok {
			return fmt.Errorf("category %q is listed more than once (entries %d and %d)", name, first+1, i+1)
		}
		seen[name] = i
	}

	return nil
}

// ValidateConfiguration performs general validation of the configuration and
// returns warnings. Warnings never block a calculation.
func (c *Configuration) ValidateConfiguration() []string {
	var warnings []string

	warnings = append(warnings, validation.ValidatePlanner(c.Planner)...)
	for _, category := range c.Categories {
		warnings = append(warnings, validation.ValidateCategory(category)...)
	}

	if len(warnings) == 0 {
		return nil
	}
	return warnings
}

// PlannerConfig returns the plan-wide inputs.
func (c *Configuration) PlannerConfig() planner.Config {
	return c.Planner
}

// Assumptions returns a copy of the configured category assumptions in
// configuration order.
func (c *Configuration) Assumptions() []planner.CategoryAssumption {
	assumptions := make([]planner.CategoryAssumption, len(c.Categories))
	copy(assumptions, c.Categories)
	return assumptions
}
