package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"gitlab.com/tinyland/lab/tickcard/pkg/location"
)

const appName = "tickcard"

// Load reads configuration from the first file found on SearchPaths. If no
// file exists, it returns DefaultConfig with environment overrides applied.
func Load() (*Config, error) {
	if p, ok := FindConfigFile(); ok {
		return LoadFromFile(p)
	}
	cfg := DefaultConfig()
	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFromFile reads configuration from path. Files ending in .yaml or .yml
// are decoded as YAML, anything else as TOML. A missing file yields the
// defaults.
func LoadFromFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg := DefaultConfig()
			if err := applyEnvOverrides(cfg); err != nil {
				return nil, err
			}
			return cfg, nil
		}
		return nil, fmt.Errorf("config: %w", err)
	}
	defer f.Close()

	if isYAML(path) {
		cfg, err := LoadYAMLFromReader(f)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		return cfg, nil
	}
	cfg, err := LoadFromReader(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// LoadFromReader reads TOML configuration from r over the defaults.
func LoadFromReader(r io.Reader) (*Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.NewDecoder(r).Decode(cfg); err != nil {
		return nil, fmt.Errorf("config: parse TOML: %w", err)
	}
	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadYAMLFromReader reads YAML configuration from r over the defaults.
func LoadYAMLFromReader(r io.Reader) (*Config, error) {
	cfg := DefaultConfig()
	if err := yaml.NewDecoder(r).Decode(cfg); err != nil && err != io.EOF {
		return nil, fmt.Errorf("config: parse YAML: %w", err)
	}
	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() *Config {
	home, _ := os.UserHomeDir()
	return &Config{
		Variant:     "classic",
		Theme:       AutoTheme,
		HourFormat:  "24h",
		DateFormat:  "iso",
		IdleTimeout: Duration{3 * time.Second},
		LogLevel:    "info",
		LogFile:     filepath.Join(xdgStateHome(home), appName, appName+".log"),
		Location: LocationConfig{
			Endpoint: location.DefaultEndpoint,
			Timeout:  Duration{5 * time.Second},
		},
	}
}

// envOverrides holds TICKCARD_* variables; nil fields were not set.
type envOverrides struct {
	Theme           *string        `env:"THEME"`
	Variant         *string        `env:"VARIANT"`
	HourFormat      *string        `env:"HOUR_FORMAT"`
	DateFormat      *string        `env:"DATE_FORMAT"`
	LogLevel        *string        `env:"LOG_LEVEL"`
	LogFile         *string        `env:"LOG_FILE"`
	IdleTimeout     *time.Duration `env:"IDLE_TIMEOUT"`
	StartFullscreen *bool          `env:"FULLSCREEN"`
	LocationEnabled *bool          `env:"LOCATION_ENABLED"`
	Latitude        *float64       `env:"LATITUDE"`
	Longitude       *float64       `env:"LONGITUDE"`
	GeocoderURL     *string        `env:"GEOCODER_URL"`
}

// applyEnvOverrides copies set TICKCARD_* variables over cfg.
func applyEnvOverrides(cfg *Config) error {
	var ov envOverrides
	if err := env.ParseWithOptions(&ov, env.Options{Prefix: "TICKCARD_"}); err != nil {
		return fmt.Errorf("config: environment: %w", err)
	}

	setString(&cfg.Theme, ov.Theme)
	setString(&cfg.Variant, ov.Variant)
	setString(&cfg.HourFormat, ov.HourFormat)
	setString(&cfg.DateFormat, ov.DateFormat)
	setString(&cfg.LogLevel, ov.LogLevel)
	setString(&cfg.LogFile, ov.LogFile)
	setString(&cfg.Location.Endpoint, ov.GeocoderURL)
	if ov.IdleTimeout != nil {
		cfg.IdleTimeout = Duration{*ov.IdleTimeout}
	}
	if ov.StartFullscreen != nil {
		cfg.StartFullscreen = *ov.StartFullscreen
	}
	if ov.LocationEnabled != nil {
		cfg.Location.Enabled = *ov.LocationEnabled
	}
	if ov.Latitude != nil {
		cfg.Location.Latitude = *ov.Latitude
	}
	if ov.Longitude != nil {
		cfg.Location.Longitude = *ov.Longitude
	}
	return nil
}

func setString(dst *string, v *string) {
	if v != nil && *v != "" {
		*dst = *v
	}
}

// FindConfigFile returns the first existing path from SearchPaths.
func FindConfigFile() (string, bool) {
	for _, p := range SearchPaths() {
		if _, err := os.Stat(p); err == nil {
			return p, true
		}
	}
	return "", false
}

// SearchPaths returns the ordered list of config file paths to try:
//  1. $XDG_CONFIG_HOME/tickcard/config.{toml,yaml,yml}
//  2. ~/.config/tickcard/config.{toml,yaml,yml}
func SearchPaths() []string {
	home, _ := os.UserHomeDir()
	dirs := []string{filepath.Join(xdgConfigHome(home), appName)}

	// If XDG_CONFIG_HOME was explicitly set, also try the fallback default.
	if def := filepath.Join(home, ".config", appName); def != dirs[0] {
		dirs = append(dirs, def)
	}

	var paths []string
	for _, d := range dirs {
		for _, name := range []string{"config.toml", "config.yaml", "config.yml"} {
			paths = append(paths, filepath.Join(d, name))
		}
	}
	return paths
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

// xdgConfigHome returns XDG_CONFIG_HOME or ~/.config as fallback.
func xdgConfigHome(home string) string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return v
	}
	return filepath.Join(home, ".config")
}

// xdgStateHome returns XDG_STATE_HOME or ~/.local/state as fallback.
func xdgStateHome(home string) string {
	if v := os.Getenv("XDG_STATE_HOME"); v != "" {
		return v
	}
	return filepath.Join(home, ".local", "state")
}
