// Package config loads runtime settings for the taskdeck CLI.
//
// Sources are applied in order: defaults, then an optional JSON file
// (-c/-config), then command-line flags. Later sources take precedence.
package config

import "time"

// Config holds runtime settings.
//
// Fields:
//   - DBPath: path of the local SQLite database file.
//   - StatsWindowDays: length of the rolling usage-statistics window.
type Config struct {
	DBPath          string
	StatsWindowDays int
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DBPath = "taskdeck.db"
	c.StatsWindowDays = 7
}

// StatsWindow returns the rolling window as a duration.
func (c *Config) StatsWindow() time.Duration {
	return time.Duration(c.StatsWindowDays) * 24 * time.Hour
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present).
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
