// Package worldclock keeps the ordered set of secondary clocks shown under
// the main card and the fixed catalog they are chosen from.
package worldclock

import (
	"fmt"
	"strings"

	"gitlab.com/tinyland/lab/tickcard/pkg/clock"
)

// CatalogEntry is a selectable zone with its display label.
type CatalogEntry struct {
	Timezone string `toml:"timezone" yaml:"timezone"`
	Label    string `toml:"label" yaml:"label"`
}

// Catalog is an immutable, ordered list of selectable zones. Timezones are
// unique within a catalog.
type Catalog struct {
	entries []CatalogEntry
}

// DefaultCatalog returns the built-in list of major cities.
func DefaultCatalog() Catalog {
	c, _ := NewCatalog(
		CatalogEntry{Timezone: "America/Los_Angeles", Label: "Los Angeles"},
		CatalogEntry{Timezone: "America/Denver", Label: "Denver"},
		CatalogEntry{Timezone: "America/Chicago", Label: "Chicago"},
		CatalogEntry{Timezone: "America/New_York", Label: "New York"},
		CatalogEntry{Timezone: "America/Sao_Paulo", Label: "São Paulo"},
		CatalogEntry{Timezone: "Europe/London", Label: "London"},
		CatalogEntry{Timezone: "Europe/Paris", Label: "Paris"},
		CatalogEntry{Timezone: "Europe/Berlin", Label: "Berlin"},
		CatalogEntry{Timezone: "Europe/Moscow", Label: "Moscow"},
		CatalogEntry{Timezone: "Africa/Cairo", Label: "Cairo"},
		CatalogEntry{Timezone: "Asia/Dubai", Label: "Dubai"},
		CatalogEntry{Timezone: "Asia/Kolkata", Label: "Mumbai"},
		CatalogEntry{Timezone: "Asia/Singapore", Label: "Singapore"},
		CatalogEntry{Timezone: "Asia/Shanghai", Label: "Shanghai"},
		CatalogEntry{Timezone: "Asia/Hong_Kong", Label: "Hong Kong"},
		CatalogEntry{Timezone: "Asia/Seoul", Label: "Seoul"},
		CatalogEntry{Timezone: "Asia/Tokyo", Label: "Tokyo"},
		CatalogEntry{Timezone: "Australia/Sydney", Label: "Sydney"},
		CatalogEntry{Timezone: "Pacific/Auckland", Label: "Auckland"},
		CatalogEntry{Timezone: "Pacific/Honolulu", Label: "Honolulu"},
	)
	return c
}

// NewCatalog builds a catalog from entries. Every timezone must resolve;
// later duplicates of a timezone are dropped. Empty labels are derived
// from the zone name.
func NewCatalog(entries ...CatalogEntry) (Catalog, error) {
	var c Catalog
	return c.Extend(entries...)
}

// Extend returns a new catalog with extra entries appended. The receiver is
// not modified.
func (c Catalog) Extend(extra ...CatalogEntry) (Catalog, error) {
	out := Catalog{entries: make([]CatalogEntry, 0, len(c.entries)+len(extra))}
	out.entries = append(out.entries, c.entries...)

	seen := make(map[string]bool, cap(out.entries))
	for _, e := range out.entries {
		seen[e.Timezone] = true
	}

	for _, e := range extra {
		e.Timezone = strings.TrimSpace(e.Timezone)
		if !clock.ValidZone(e.Timezone) {
			return c, fmt.Errorf("worldclock: catalog entry %q: %w", e.Timezone, clock.ErrInvalidTimezone)
		}
		if seen[e.Timezone] {
			continue
		}
		if strings.TrimSpace(e.Label) == "" {
			e.Label = LabelFor(e.Timezone)
		}
		seen[e.Timezone] = true
		out.entries = append(out.entries, e)
	}
	return out, nil
}

// Entries returns a copy of the catalog in order.
func (c Catalog) Entries() []CatalogEntry {
	out := make([]CatalogEntry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Len returns the number of entries.
func (c Catalog) Len() int {
	return len(c.entries)
}

// Lookup finds the entry for tz.
func (c Catalog) Lookup(tz string) (CatalogEntry, bool) {
	for _, e := range c.entries {
		if e.Timezone == tz {
			return e, true
		}
	}
	return CatalogEntry{}, false
}

// LabelFor derives a display label from a zone name:
// "America/Argentina/Buenos_Aires" becomes "Buenos Aires".
func LabelFor(tz string) string {
	name := tz
	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}
	return strings.ReplaceAll(name, "_", " ")
}
