// Package config loads and validates go-sleep-monitor settings.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	toml "github.com/pelletier/go-toml/v2"

	"github.com/penwyp/go-sleep-monitor/internal/acquire"
	"github.com/penwyp/go-sleep-monitor/internal/core/timeline"
	"github.com/penwyp/go-sleep-monitor/internal/util"
)

// Output formats
const (
	OutputTable    = "table"
	OutputJSON     = "json"
	OutputCSV      = "csv"
	OutputSummary  = "summary"
	OutputTimeline = "timeline"
)

const (
	DefaultConfigPath = "~/.go-sleep-monitor/config.toml"
	DefaultLogFile    = "~/.go-sleep-monitor/logs/app.log"
	DefaultDays       = 7

	// EnvConfigPath names the config file when --config is not given; it may come from .env.
	EnvConfigPath = "SLEEP_MONITOR_CONFIG"
)

// Config holds every user-tunable setting.
type Config struct {
	Days               int     `toml:"days" json:"days"`
	Timezone           string  `toml:"timezone" json:"timezone"`
	Output             string  `toml:"output" json:"output"`
	Source             string  `toml:"source" json:"source"` // "pmset", a file path, or "-" for stdin
	MinVisibleFraction float64 `toml:"min_visible_fraction" json:"min_visible_fraction"`
	Limit              int     `toml:"limit" json:"limit"` // max days shown, 0 = unlimited
	LogLevel           string  `toml:"log_level" json:"log_level"`
	LogFormat          string  `toml:"log_format" json:"log_format"`
	LogFile            string  `toml:"log_file" json:"log_file"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Days:               DefaultDays,
		Timezone:           "Local",
		Output:             OutputTable,
		Source:             acquire.DefaultCommand,
		MinVisibleFraction: timeline.DefaultMinVisibleFraction,
		LogLevel:           "info",
		LogFormat:          string(util.FormatText),
		LogFile:            DefaultLogFile,
	}
}

// Load reads the TOML file at path on top of the defaults.
// A missing file at the default location is not an error; an explicitly given one is.
func Load(path string) (Config, error) {
	cfg := Default()

	if strings.TrimSpace(path) == "" {
		path = os.Getenv(EnvConfigPath)
	}
	explicit := strings.TrimSpace(path) != ""
	if !explicit {
		path = DefaultConfigPath
	}
	resolved := ExpandPath(path)

	data, err := os.ReadFile(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !explicit {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", resolved, err)
	}
	cfg.normalize()
	return cfg, nil
}

func (c *Config) normalize() {
	c.Timezone = strings.TrimSpace(c.Timezone)
	if c.Timezone == "" {
		c.Timezone = "Local"
	}
	c.Output = strings.ToLower(strings.TrimSpace(c.Output))
	if c.Output == "" {
		c.Output = OutputTable
	}
	c.Source = strings.TrimSpace(c.Source)
	if c.Source == "" {
		c.Source = acquire.DefaultCommand
	}
	c.LogFormat = strings.ToLower(strings.TrimSpace(c.LogFormat))
	if c.LogFormat == "" {
		c.LogFormat = string(util.FormatText)
	}
	if strings.TrimSpace(c.LogFile) == "" {
		c.LogFile = DefaultLogFile
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	c.normalize()
	return validation.ValidateStruct(c,
		validation.Field(&c.Days, validation.Required, validation.Min(1)),
		validation.Field(&c.Output, validation.Required,
			validation.In(OutputTable, OutputJSON, OutputCSV, OutputSummary, OutputTimeline)),
		validation.Field(&c.MinVisibleFraction, validation.Required,
			validation.Min(0.0).Exclusive(), validation.Max(1.0).Exclusive()),
		validation.Field(&c.Limit, validation.Min(0)),
		validation.Field(&c.LogLevel, validation.In("debug", "info", "warn", "warning", "error")),
		validation.Field(&c.LogFormat, validation.In(string(util.FormatText), string(util.FormatJSON))),
		validation.Field(&c.Timezone, validation.By(validTimezone)),
	)
}

func validTimezone(value interface{}) error {
	tz, _ := value.(string)
	if _, err := util.LoadLocation(tz); err != nil {
		return errors.New("must be a valid IANA timezone or Local")
	}
	return nil
}

// ExpandPath expands a leading ~ and makes path absolute.
func ExpandPath(path string) string {
	if strings.HasPrefix(path, "~/") || path == "~" {
		home, err := os.UserHomeDir()
		if err == nil {
			path = filepath.Join(home, strings.TrimPrefix(path, "~"))
		}
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return absPath
}
