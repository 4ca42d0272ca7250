package worldclock

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"gitlab.com/tinyland/lab/tickcard/pkg/clock"
)

// ErrDuplicateTimezone is returned by Add when the zone is already shown.
var ErrDuplicateTimezone = errors.New("worldclock: timezone already added")

// Entry is one world clock the user added.
type Entry struct {
	ID       string
	Timezone string
	Label    string
}

// Registry is the ordered list of world clocks. Insertion order is display
// order and no two entries share a timezone. A Registry belongs to one
// running card; it is not safe for concurrent mutation.
type Registry struct {
	catalog Catalog
	entries []Entry
	newID   func() string
}

// Option configures a Registry.
type Option func(*Registry)

// WithIDGenerator replaces the uuid-based id source.
func WithIDGenerator(fn func() string) Option {
	return func(r *Registry) {
		if fn != nil {
			r.newID = fn
		}
	}
}

// NewRegistry returns an empty registry backed by catalog.
func NewRegistry(catalog Catalog, opts ...Option) *Registry {
	r := &Registry{
		catalog: catalog,
		newID:   uuid.NewString,
	}
	for _, o := range opts {
		o(r)
	}
	return r
}

// Add appends a clock for tz. It fails with ErrInvalidTimezone for zones
// that do not resolve and ErrDuplicateTimezone when tz is already present.
func (r *Registry) Add(tz, label string) (Entry, error) {
	if !clock.ValidZone(tz) {
		return Entry{}, fmt.Errorf("worldclock: add %q: %w", tz, clock.ErrInvalidTimezone)
	}
	if r.Has(tz) {
		return Entry{}, fmt.Errorf("worldclock: add %q: %w", tz, ErrDuplicateTimezone)
	}
	if label == "" {
		label = LabelFor(tz)
	}
	e := Entry{ID: r.newID(), Timezone: tz, Label: label}
	r.entries = append(r.entries, e)
	return e, nil
}

// Remove deletes the entry with id and reports whether one was removed.
// Unknown ids are a no-op.
func (r *Registry) Remove(id string) bool {
	for i, e := range r.entries {
		if e.ID == id {
			r.entries = append(r.entries[:i:i], r.entries[i+1:]...)
			return true
		}
	}
	return false
}

// Entries returns a copy of the clocks in display order.
func (r *Registry) Entries() []Entry {
	out := make([]Entry, len(r.entries))
	copy(out, r.entries)
	return out
}

// Len returns the number of clocks.
func (r *Registry) Len() int {
	return len(r.entries)
}

// Has reports whether tz is already shown.
func (r *Registry) Has(tz string) bool {
	for _, e := range r.entries {
		if e.Timezone == tz {
			return true
		}
	}
	return false
}

// Catalog returns the catalog the registry chooses from.
func (r *Registry) Catalog() Catalog {
	return r.catalog
}

// Available returns the catalog entries whose timezone is not yet shown,
// in catalog order. It is recomputed on every call.
func (r *Registry) Available() []CatalogEntry {
	present := make(map[string]bool, len(r.entries))
	for _, e := range r.entries {
		present[e.Timezone] = true
	}
	out := make([]CatalogEntry, 0, r.catalog.Len())
	for _, c := range r.catalog.entries {
		if !present[c.Timezone] {
			out = append(out, c)
		}
	}
	return out
}
