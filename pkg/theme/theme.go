// Package theme holds the card's color record, the named presets that can
// replace it wholesale, and helpers that turn the record into render-ready
// colors for the current terminal.
package theme

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Variant selects the color field set of the card.
type Variant string

const (
	// VariantClassic colors the background, clock face, date line and accent.
	VariantClassic Variant = "classic"
	// VariantCard draws the clock on a card over a background with one text color.
	VariantCard Variant = "card"
)

var variantFields = map[Variant][]string{
	VariantClassic: {"background", "clock", "date", "accent"},
	VariantCard:    {"background", "card", "text"},
}

// ParseVariant parses a variant name; empty means classic.
func ParseVariant(s string) (Variant, error) {
	switch v := Variant(strings.ToLower(strings.TrimSpace(s))); v {
	case "":
		return VariantClassic, nil
	case VariantClassic, VariantCard:
		return v, nil
	default:
		return "", fmt.Errorf("theme: unknown variant %q (want classic or card)", s)
	}
}

// Fields returns the variant's color field names in display order.
func (v Variant) Fields() []string {
	f := variantFields[v]
	out := make([]string, len(f))
	copy(out, f)
	return out
}

// DefaultPreset returns the preset used when none is configured. dark
// selects between the dark and light built-ins.
func (v Variant) DefaultPreset(dark bool) string {
	switch {
	case v == VariantCard && dark:
		return "slate"
	case v == VariantCard:
		return "paper"
	case dark:
		return "midnight"
	default:
		return "daylight"
	}
}

// Preset is a read-only named bundle of color values.
type Preset struct {
	Name        string
	Description string
	Variant     Variant
	Colors      map[string]string
}

// Covers reports whether the preset defines every one of fields.
func (p Preset) Covers(fields []string) bool {
	for _, f := range fields {
		if _, ok := p.Colors[f]; !ok {
			return false
		}
	}
	return true
}

// clone returns a deep copy so callers cannot mutate registered presets.
func (p Preset) clone() Preset {
	colors := make(map[string]string, len(p.Colors))
	for k, v := range p.Colors {
		colors[k] = v
	}
	p.Colors = colors
	return p
}

// Catalog is the set of presets available to one card, keyed by variant
// and lowercase name.
type Catalog struct {
	mu       sync.RWMutex
	registry map[Variant]map[string]Preset
}

// NewCatalog returns a catalog holding the built-in presets.
func NewCatalog() *Catalog {
	c := &Catalog{registry: map[Variant]map[string]Preset{}}
	for _, p := range thBuiltinPresets() {
		// Built-ins always cover their variant.
		_ = c.RegisterPreset(p)
	}
	return c
}

// RegisterPreset adds or replaces a preset. Presets for a known variant must
// define all of that variant's fields.
func (c *Catalog) RegisterPreset(p Preset) error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("theme: preset has no name")
	}
	if p.Variant == "" {
		p.Variant = VariantClassic
	}
	if fields, ok := variantFields[p.Variant]; ok && !p.Covers(fields) {
		return fmt.Errorf("theme: preset %q: %w", p.Name, ErrIncompletePreset)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	byName, ok := c.registry[p.Variant]
	if !ok {
		byName = map[string]Preset{}
		c.registry[p.Variant] = byName
	}
	byName[strings.ToLower(p.Name)] = p.clone()
	return nil
}

// LookupPreset returns the named preset for a variant.
func (c *Catalog) LookupPreset(v Variant, name string) (Preset, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	p, ok := c.registry[v][strings.ToLower(name)]
	if !ok {
		return Preset{}, false
	}
	return p.clone(), true
}

// PresetNames returns the preset names of a variant sorted alphabetically.
func (c *Catalog) PresetNames(v Variant) []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	names := make([]string, 0, len(c.registry[v]))
	for name := range c.registry[v] {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Presets returns the presets of a variant sorted by name.
func (c *Catalog) Presets(v Variant) []Preset {
	names := c.PresetNames(v)
	out := make([]Preset, 0, len(names))
	for _, n := range names {
		if p, ok := c.LookupPreset(v, n); ok {
			out = append(out, p)
		}
	}
	return out
}
