// Package config provides TOML and YAML configuration for tickcard.
package config

import (
	"fmt"
	"log/slog"
	"strings"

	"gitlab.com/tinyland/lab/tickcard/pkg/clock"
	"gitlab.com/tinyland/lab/tickcard/pkg/location"
	"gitlab.com/tinyland/lab/tickcard/pkg/theme"
)

// AutoTheme selects the variant's dark or light default preset from the
// terminal background.
const AutoTheme = "auto"

// Config is the top-level configuration.
type Config struct {
	Variant         string            `toml:"variant" yaml:"variant"`
	Theme           string            `toml:"theme" yaml:"theme"`
	ColorFields     []string          `toml:"color_fields" yaml:"color_fields"`
	Colors          map[string]string `toml:"colors" yaml:"colors"`
	HourFormat      string            `toml:"hour_format" yaml:"hour_format"`
	DateFormat      string            `toml:"date_format" yaml:"date_format"`
	IdleTimeout     Duration          `toml:"idle_timeout" yaml:"idle_timeout"`
	StartFullscreen bool              `toml:"start_fullscreen" yaml:"start_fullscreen"`
	PresetsDir      string            `toml:"presets_dir" yaml:"presets_dir"`
	LogLevel        string            `toml:"log_level" yaml:"log_level"`
	LogFile         string            `toml:"log_file" yaml:"log_file"`

	Location    LocationConfig `toml:"location" yaml:"location"`
	WorldClocks []ClockConfig  `toml:"world_clocks" yaml:"world_clocks"`
	Catalog     []ClockConfig  `toml:"catalog" yaml:"catalog"`
}

// LocationConfig controls the reverse geocoded place line.
type LocationConfig struct {
	Enabled   bool     `toml:"enabled" yaml:"enabled"`
	Latitude  float64  `toml:"latitude" yaml:"latitude"`
	Longitude float64  `toml:"longitude" yaml:"longitude"`
	Endpoint  string   `toml:"endpoint" yaml:"endpoint"`
	Timeout   Duration `toml:"timeout" yaml:"timeout"`
}

// ClockConfig names a timezone with an optional display label. It is used
// both for world clocks shown at startup and for extra catalog entries.
type ClockConfig struct {
	Timezone string `toml:"timezone" yaml:"timezone"`
	Label    string `toml:"label" yaml:"label"`
}

// Validate checks every enumerated value and range in the configuration.
func (c *Config) Validate() error {
	v, err := theme.ParseVariant(c.Variant)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if _, err := clock.ParseHourFormat(c.HourFormat); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if _, err := clock.ParseDateFormat(c.DateFormat); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if _, err := parseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if c.IdleTimeout.Duration < 0 {
		return fmt.Errorf("config: idle_timeout must not be negative")
	}

	fields := c.Fields(v)
	known := make(map[string]bool, len(fields))
	for _, f := range fields {
		known[f] = true
	}
	for f := range c.Colors {
		if !known[f] {
			return fmt.Errorf("config: colors.%s is not a color field of %s", f, v)
		}
	}

	if c.Location.Enabled && !location.ValidCoordinates(c.Location.Latitude, c.Location.Longitude) {
		return fmt.Errorf("config: location %v,%v out of range", c.Location.Latitude, c.Location.Longitude)
	}
	if c.Location.Timeout.Duration < 0 {
		return fmt.Errorf("config: location.timeout must not be negative")
	}

	for i, wc := range c.WorldClocks {
		if !clock.ValidZone(wc.Timezone) {
			return fmt.Errorf("config: world_clocks[%d]: %w: %q", i, clock.ErrInvalidTimezone, wc.Timezone)
		}
	}
	for i, ce := range c.Catalog {
		if !clock.ValidZone(ce.Timezone) {
			return fmt.Errorf("config: catalog[%d]: %w: %q", i, clock.ErrInvalidTimezone, ce.Timezone)
		}
	}
	return nil
}

// Fields returns the color field set: color_fields when set, otherwise the
// variant's own fields.
func (c *Config) Fields(v theme.Variant) []string {
	if len(c.ColorFields) > 0 {
		out := make([]string, len(c.ColorFields))
		copy(out, c.ColorFields)
		return out
	}
	return v.Fields()
}

// SlogLevel returns the configured log level, Info when unset or invalid.
func (c *Config) SlogLevel() slog.Level {
	lvl, err := parseLevel(c.LogLevel)
	if err != nil {
		return slog.LevelInfo
	}
	return lvl
}

func parseLevel(s string) (slog.Level, error) {
	if strings.TrimSpace(s) == "" {
		return slog.LevelInfo, nil
	}
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log_level %q", s)
	}
	return lvl, nil
}
