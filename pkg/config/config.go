// Package config loads seqstat settings from a YAML file, SEQSTAT_*
// environment variables and built-in defaults.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/viper"

	"github.com/Sumatoshi-tech/seqstat/pkg/alg/rank"
	"github.com/Sumatoshi-tech/seqstat/pkg/alg/seq"
)

// Sentinel validation errors.
var (
	ErrInvalidFormat      = errors.New("invalid percentile format")
	ErrInvalidTrimPercent = errors.New("invalid summary trim percent")
	ErrInvalidQuantile    = errors.New("invalid summary quantile")
	ErrInvalidLogLevel    = errors.New("invalid logging level")
)

const envPrefix = "SEQSTAT"

// Config holds all configuration for seqstat.
type Config struct {
	Percentiles PercentilesConfig `mapstructure:"percentiles"`
	Search      SearchConfig      `mapstructure:"search"`
	Summary     SummaryConfig     `mapstructure:"summary"`
	Logging     LoggingConfig     `mapstructure:"logging"`
}

// PercentilesConfig selects the output shape of percentile assignments.
type PercentilesConfig struct {
	Format string `mapstructure:"format"`
}

// SearchConfig controls search preconditions.
type SearchConfig struct {
	// CheckSorted verifies the ascending precondition before every binary search.
	CheckSorted bool `mapstructure:"check_sorted"`
}

// SummaryConfig controls the descriptive summary of a sample.
type SummaryConfig struct {
	TrimPercent float64   `mapstructure:"trim_percent"`
	Quantiles   []float64 `mapstructure:"quantiles"`
}

// LoggingConfig holds logging-specific configuration.
type LoggingConfig struct {
	Level string `mapstructure:"level"`
	JSON  bool   `mapstructure:"json"`
}

// Format returns the parsed percentile format. Valid after Load.
func (c *Config) Format() rank.Format {
	f, err := rank.ParseFormat(c.Percentiles.Format)
	if err != nil {
		return DefaultPercentilesFormat
	}

	return f
}

// Load reads configuration from configPath, or from seqstat.yaml in the
// working directory, ./config or /etc/seqstat when configPath is empty.
// A missing file is only an error when configPath names it explicitly.
func Load(configPath string) (*Config, error) {
	viperCfg := viper.New()

	setDefaults(viperCfg)

	if configPath != "" {
		viperCfg.SetConfigFile(configPath)
	} else {
		viperCfg.SetConfigName("seqstat")
		viperCfg.SetConfigType("yaml")
		viperCfg.AddConfigPath(".")
		viperCfg.AddConfigPath("./config")
		viperCfg.AddConfigPath("/etc/seqstat")
	}

	viperCfg.SetEnvPrefix(envPrefix)
	viperCfg.AutomaticEnv()
	viperCfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	readErr := viperCfg.ReadInConfig()
	if readErr != nil {
		var notFoundErr viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(readErr, &notFoundErr) {
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

func setDefaults(viperCfg *viper.Viper) {
	viperCfg.SetDefault("percentiles.format", string(DefaultPercentilesFormat))
	viperCfg.SetDefault("search.check_sorted", DefaultSearchCheckSorted)
	viperCfg.SetDefault("summary.trim_percent", DefaultSummaryTrimPercent)
	viperCfg.SetDefault("summary.quantiles", DefaultSummaryQuantiles())
	viperCfg.SetDefault("logging.level", DefaultLoggingLevel)
	viperCfg.SetDefault("logging.json", DefaultLoggingJSON)
}

// ParseLogLevel converts a logging.level name to an [slog.Level]. An empty
// name is info; "warning" is accepted as an alias of "warn".
func ParseLogLevel(name string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("%w: %q", ErrInvalidLogLevel, name)
	}
}

func validateConfig(config *Config) error {
	_, err := rank.ParseFormat(config.Percentiles.Format)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidFormat, config.Percentiles.Format)
	}

	if seq.CheckPercent(config.Summary.TrimPercent) != nil {
		return fmt.Errorf("%w: %v", ErrInvalidTrimPercent, config.Summary.TrimPercent)
	}

	for _, q := range config.Summary.Quantiles {
		if seq.CheckPercent(q) != nil {
			return fmt.Errorf("%w: %v", ErrInvalidQuantile, q)
		}
	}

	_, err = ParseLogLevel(config.Logging.Level)

	return err
}
