package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/muesli/termenv"

	"gitlab.com/tinyland/lab/tickcard/pkg/app"
	"gitlab.com/tinyland/lab/tickcard/pkg/clock"
	"gitlab.com/tinyland/lab/tickcard/pkg/config"
	"gitlab.com/tinyland/lab/tickcard/pkg/location"
	"gitlab.com/tinyland/lab/tickcard/pkg/terminal"
	"gitlab.com/tinyland/lab/tickcard/pkg/theme"
	"gitlab.com/tinyland/lab/tickcard/pkg/worldclock"
)

// loadConfig reads --config or the default search path, applies flag
// overrides and validates the result.
func loadConfig() (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if cfgFile != "" {
		cfg, err = config.LoadFromFile(cfgFile)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if flagTheme != "" {
		cfg.Theme = flagTheme
	}
	if flagVar != "" {
		cfg.Variant = flagVar
	}
	if flag12h {
		cfg.HourFormat = "12h"
	}
	if flagLong {
		cfg.DateFormat = "long"
	}
	if flagFull {
		cfg.StartFullscreen = true
	}
	if flagLocate {
		cfg.Location.Enabled = true
	}
	if verbose {
		cfg.LogLevel = "debug"
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// setupLogger opens the log file; the TUI owns stdout and stderr. When the
// file cannot be opened logging is discarded.
func setupLogger(cfg *config.Config) (*slog.Logger, func()) {
	opts := &slog.HandlerOptions{Level: cfg.SlogLevel()}
	if cfg.LogFile == "" {
		return slog.New(slog.NewTextHandler(io.Discard, opts)), func() {}
	}
	if err := os.MkdirAll(filepath.Dir(cfg.LogFile), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "failed to create log directory: %v\n", err)
		return slog.New(slog.NewTextHandler(io.Discard, opts)), func() {}
	}
	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to open log file: %v\n", err)
		return slog.New(slog.NewTextHandler(io.Discard, opts)), func() {}
	}
	return slog.New(slog.NewTextHandler(f, opts)), func() { _ = f.Close() }
}

// buildOptions turns configuration into model options. interactive enables
// terminal queries and the location lookup.
func buildOptions(cfg *config.Config, logger *slog.Logger, interactive bool) (app.Options, error) {
	opts := app.DefaultOptions()
	opts.Logger = logger

	variant, err := theme.ParseVariant(cfg.Variant)
	if err != nil {
		return opts, err
	}
	opts.Variant = variant
	opts.ColorFieldNames = cfg.ColorFields
	opts.ColorOverrides = cfg.Colors

	caps := terminal.DetectCapabilities()
	logger.Debug("terminal", "term", caps.Term, "depth", caps.ColorDepth,
		"interactive", caps.Interactive, "ssh", caps.SSH, "mux", caps.Mux)
	opts.ColorDepth = caps.ColorDepth
	opts.CanFullscreen = func() bool { return caps.Interactive }
	opts.DarkBackground = true
	if interactive && caps.Interactive && cfg.Theme == config.AutoTheme {
		opts.DarkBackground = termenv.NewOutput(os.Stdout).HasDarkBackground()
	}
	if cfg.Theme != config.AutoTheme {
		opts.Preset = cfg.Theme
	}

	themes := theme.NewCatalog()
	loaded, errs := theme.LoadPresetDir(themes, cfg.PresetsDir)
	for _, e := range errs {
		logger.Warn("skipping preset file", "error", e)
	}
	if len(loaded) > 0 {
		logger.Info("loaded presets", "dir", cfg.PresetsDir, "names", loaded)
	}
	opts.Themes = themes

	if opts.HourFormat, err = clock.ParseHourFormat(cfg.HourFormat); err != nil {
		return opts, err
	}
	if opts.DateFormat, err = clock.ParseDateFormat(cfg.DateFormat); err != nil {
		return opts, err
	}
	opts.IdleAfter = cfg.IdleTimeout.Duration
	opts.StartFullscreen = cfg.StartFullscreen

	if opts.Catalog, err = catalogFromConfig(cfg); err != nil {
		return opts, err
	}
	for _, wc := range cfg.WorldClocks {
		opts.WorldClocks = append(opts.WorldClocks, worldclock.CatalogEntry{Timezone: wc.Timezone, Label: wc.Label})
	}

	if interactive && cfg.Location.Enabled {
		opts.EnableLocationLookup = true
		opts.Latitude = cfg.Location.Latitude
		opts.Longitude = cfg.Location.Longitude
		opts.LocationTimeout = cfg.Location.Timeout.Duration
		opts.Geocoder = location.NewClient(cfg.Location.Endpoint, cfg.Location.Timeout.Duration)
	}
	return opts, nil
}

// catalogFromConfig returns the built-in catalog extended with the config's
// [[catalog]] entries.
func catalogFromConfig(cfg *config.Config) (worldclock.Catalog, error) {
	extra := make([]worldclock.CatalogEntry, 0, len(cfg.Catalog))
	for _, c := range cfg.Catalog {
		extra = append(extra, worldclock.CatalogEntry{Timezone: c.Timezone, Label: c.Label})
	}
	return worldclock.DefaultCatalog().Extend(extra...)
}
