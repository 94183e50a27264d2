package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/viper"
)

// Config represents application configuration
type Config struct {
	Ranges []RangeConfig `mapstructure:"ranges"`
	UI     UIConfig      `mapstructure:"ui"`
	Log    LogConfig     `mapstructure:"log"`
}

// RangeConfig represents one predefined range shortcut
type RangeConfig struct {
	Name string `mapstructure:"name"`
	Days int    `mapstructure:"days"`
}

// UIConfig represents calendar UI configuration
type UIConfig struct {
	YearWindow int `mapstructure:"year_window"` // Number of years in the year selector
	YearOffset int `mapstructure:"year_offset"` // Center of the window relative to the current year
}

// LogConfig represents logging configuration
type LogConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// DefaultRanges returns the shortcuts used when the config lists none
func DefaultRanges() []RangeConfig {
	return []RangeConfig{
		{Name: "Last 7 Days", Days: 7},
		{Name: "Last 30 Days", Days: 30},
	}
}

// Load loads configuration from file. A missing config file is only an
// error when an explicit path was given; the picker works with zero
// configuration.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.weekday-picker")
		v.AddConfigPath("/etc/weekday-picker")
	}

	v.SetDefault("ui.year_window", 50)
	v.SetDefault("ui.year_offset", -10)
	v.SetDefault("log.level", "info")

	// Read environment variables
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		missing := errors.As(err, &notFound) || errors.Is(err, os.ErrNotExist)
		if configPath != "" || !missing {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if len(config.Ranges) == 0 {
		config.Ranges = DefaultRanges()
	}

	// Validate config
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	seen := make(map[string]bool)
	for i, r := range c.Ranges {
		if r.Name == "" {
			return fmt.Errorf("ranges[%d].name is required", i)
		}
		if r.Days <= 0 {
			return fmt.Errorf("ranges[%d].days must be positive", i)
		}
		if seen[r.Name] {
			return fmt.Errorf("duplicate range name %q", r.Name)
		}
		seen[r.Name] = true
	}

	if c.UI.YearWindow <= 0 {
		return fmt.Errorf("ui.year_window must be positive")
	}

	switch c.Log.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level must be debug, info, warn or error, got %q", c.Log.Level)
	}

	return nil
}
