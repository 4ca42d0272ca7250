package app

import (
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/mattn/go-isatty"

	"gitlab.com/tinyland/lab/tickcard/pkg/clock"
	"gitlab.com/tinyland/lab/tickcard/pkg/location"
	"gitlab.com/tinyland/lab/tickcard/pkg/theme"
	"gitlab.com/tinyland/lab/tickcard/pkg/worldclock"
)

// Options configures a Model. The zero value of each field selects its
// default; DefaultOptions spells the defaults out.
type Options struct {
	Variant theme.Variant
	// ColorFieldNames overrides the variant's color field set. Every preset
	// applied to the card must then cover these names.
	ColorFieldNames []string
	// Preset is the initial preset name; empty selects the variant default
	// for DarkBackground.
	Preset         string
	DarkBackground bool
	ColorOverrides map[string]string
	// ColorDepth is the terminal color depth in bits (24 for true color).
	ColorDepth int
	Themes     *theme.Catalog

	HourFormat clock.HourFormat
	DateFormat clock.DateFormat

	IdleAfter       time.Duration
	StartFullscreen bool

	Catalog     worldclock.Catalog
	WorldClocks []worldclock.CatalogEntry
	IDGenerator func() string

	EnableLocationLookup bool
	Latitude             float64
	Longitude            float64
	LocationTimeout      time.Duration
	Geocoder             location.Geocoder
	// LocalZone names the viewer's IANA zone for the location fallback.
	LocalZone string

	Logger        *slog.Logger
	Now           func() time.Time
	CanFullscreen func() bool
}

// DefaultOptions returns the options of a plain classic card.
func DefaultOptions() Options {
	return Options{
		Variant:        theme.VariantClassic,
		DarkBackground: true,
		ColorDepth:     24,
		HourFormat:     clock.Hour24,
		DateFormat:     clock.DateISO,
		Catalog:        worldclock.DefaultCatalog(),
	}
}

func (o Options) withDefaults() Options {
	if o.Variant == "" {
		o.Variant = theme.VariantClassic
	}
	if o.ColorDepth == 0 {
		o.ColorDepth = 24
	}
	if o.Themes == nil {
		o.Themes = theme.NewCatalog()
	}
	if o.Catalog.Len() == 0 {
		o.Catalog = worldclock.DefaultCatalog()
	}
	if o.LocationTimeout <= 0 {
		o.LocationTimeout = 5 * time.Second
	}
	if o.LocalZone == "" {
		o.LocalZone = clock.LocalZoneName()
	}
	if o.Logger == nil {
		o.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	if o.CanFullscreen == nil {
		o.CanFullscreen = StdoutIsTerminal
	}
	return o
}

// StdoutIsTerminal reports whether stdout can host the alternate screen.
func StdoutIsTerminal() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
