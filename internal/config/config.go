// Package config provides configuration loading and validation for the lvstat CLI.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/katalvlaran/lvstat/latex"
)

// Sentinel validation errors.
var (
	ErrInvalidAlpha     = errors.New("hotelling alpha must be in (0, 1)")
	ErrInvalidPrecision = errors.New("latex precision must be >= -1")
	ErrInvalidFormat    = errors.New("output format must be one of text, table, yaml")
	ErrInvalidLevel     = errors.New("logging level must be one of debug, info, warn, error")
)

// Output formats understood by the hotelling command.
const (
	FormatText  = "text"
	FormatTable = "table"
	FormatYAML  = "yaml"
)

// Default configuration values.
const (
	DefaultEnvironment = string(latex.DefaultEnvironment)
	DefaultPrecision   = latex.DefaultPrecision
	DefaultAlpha       = 0.05
	DefaultFormat      = FormatText
	DefaultLogLevel    = "warn"

	envPrefix = "LVSTAT"
)

// Config holds all configuration for the lvstat CLI.
type Config struct {
	Latex     LatexConfig     `mapstructure:"latex"`
	Hotelling HotellingConfig `mapstructure:"hotelling"`
	Output    OutputConfig    `mapstructure:"output"`
	Logging   LoggingConfig   `mapstructure:"logging"`
}

// LatexConfig holds matrix formatter settings.
type LatexConfig struct {
	Environment string `mapstructure:"environment"`
	Precision   int    `mapstructure:"precision"`
}

// HotellingConfig holds test settings.
type HotellingConfig struct {
	Alpha float64 `mapstructure:"alpha"`
}

// OutputConfig selects how results are rendered.
type OutputConfig struct {
	Format string `mapstructure:"format"`
}

// LoggingConfig holds logging-specific configuration.
type LoggingConfig struct {
	Level string `mapstructure:"level"`
}

// LoadConfig loads configuration from an optional file and LVSTAT_* environment variables.
// An empty configPath looks for lvstat.yaml in the working directory and
// $HOME/.config/lvstat; a missing file is not an error.
func LoadConfig(configPath string) (*Config, error) {
	return Load(viper.New(), configPath)
}

// Load is LoadConfig on a caller-supplied viper instance, so command flags
// bound with BindPFlag take precedence over file and environment values.
func Load(viperCfg *viper.Viper, configPath string) (*Config, error) {
	setDefaults(viperCfg)

	if configPath != "" {
		viperCfg.SetConfigFile(configPath)
	} else {
		viperCfg.SetConfigName("lvstat")
		viperCfg.SetConfigType("yaml")
		viperCfg.AddConfigPath(".")
		viperCfg.AddConfigPath("$HOME/.config/lvstat")
	}

	viperCfg.SetEnvPrefix(envPrefix)
	viperCfg.AutomaticEnv()
	viperCfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	readErr := viperCfg.ReadInConfig()
	if readErr != nil {
		var notFoundErr viper.ConfigFileNotFoundError
		if !errors.As(readErr, &notFoundErr) {
			return nil, fmt.Errorf("failed to read config file: %w", readErr)
		}
	}

	var config Config

	unmarshalErr := viperCfg.Unmarshal(&config)
	if unmarshalErr != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", unmarshalErr)
	}

	validateErr := validateConfig(&config)
	if validateErr != nil {
		return nil, fmt.Errorf("invalid configuration: %w", validateErr)
	}

	return &config, nil
}

// setDefaults sets default configuration values.
func setDefaults(viperCfg *viper.Viper) {
	viperCfg.SetDefault("latex.environment", DefaultEnvironment)
	viperCfg.SetDefault("latex.precision", DefaultPrecision)
	viperCfg.SetDefault("hotelling.alpha", DefaultAlpha)
	viperCfg.SetDefault("output.format", DefaultFormat)
	viperCfg.SetDefault("logging.level", DefaultLogLevel)
}

func validateConfig(config *Config) error {
	if _, err := latex.ParseEnvironment(config.Latex.Environment); err != nil {
		return err
	}

	if config.Latex.Precision < -1 {
		return ErrInvalidPrecision
	}

	if config.Hotelling.Alpha <= 0 || config.Hotelling.Alpha >= 1 {
		return ErrInvalidAlpha
	}

	switch config.Output.Format {
	case FormatText, FormatTable, FormatYAML:
	default:
		return ErrInvalidFormat
	}

	switch strings.ToLower(config.Logging.Level) {
	case "debug", "info", "warn", "error":
	default:
		return ErrInvalidLevel
	}

	return nil
}
