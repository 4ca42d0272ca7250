package theme

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
)

// thTOMLPreset is the on-disk form of a preset:
//
//	name = "harbor"
//	description = "Foggy harbor"
//	variant = "classic"
//
//	[colors]
//	background = "#0b1020"
//	clock = "#e6edf3"
type thTOMLPreset struct {
	Name        string            `toml:"name"`
	Description string            `toml:"description,omitempty"`
	Variant     string            `toml:"variant,omitempty"`
	Colors      map[string]string `toml:"colors"`
}

var thHexColorRegex = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// LoadPresetTOML parses a preset from raw TOML bytes. Every color must be
// #RRGGBB and a known variant's fields must all be present.
func LoadPresetTOML(data []byte) (Preset, error) {
	var tp thTOMLPreset
	if err := toml.Unmarshal(data, &tp); err != nil {
		return Preset{}, fmt.Errorf("theme: parse TOML: %w", err)
	}
	if strings.TrimSpace(tp.Name) == "" {
		return Preset{}, fmt.Errorf("theme: missing required field %q", "name")
	}

	v, err := ParseVariant(tp.Variant)
	if err != nil {
		return Preset{}, err
	}

	p := Preset{
		Name:        tp.Name,
		Description: tp.Description,
		Variant:     v,
		Colors:      make(map[string]string, len(tp.Colors)),
	}
	for field, value := range tp.Colors {
		if !thHexColorRegex.MatchString(value) {
			return Preset{}, fmt.Errorf("%w %q for field %q (expected #RRGGBB)", ErrInvalidColor, value, field)
		}
		p.Colors[field] = value
	}
	if !p.Covers(v.Fields()) {
		return Preset{}, fmt.Errorf("theme: preset %q: %w", p.Name, ErrIncompletePreset)
	}
	return p, nil
}

// SavePresetTOML serializes a preset to TOML bytes.
func SavePresetTOML(p Preset) ([]byte, error) {
	tp := thTOMLPreset{
		Name:        p.Name,
		Description: p.Description,
		Variant:     string(p.Variant),
		Colors:      p.Colors,
	}

	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	if err := enc.Encode(tp); err != nil {
		return nil, fmt.Errorf("theme: encode TOML: %w", err)
	}
	return buf.Bytes(), nil
}

// LoadPresetDir registers every *.toml preset in dir with the catalog and
// returns the names loaded. A missing directory is not an error. Files that
// fail to parse are skipped and reported in the returned error list.
func LoadPresetDir(c *Catalog, dir string) ([]string, []error) {
	if dir == "" {
		return nil, nil
	}
	matches, err := filepath.Glob(filepath.Join(dir, "*.toml"))
	if err != nil {
		return nil, []error{fmt.Errorf("theme: scan %s: %w", dir, err)}
	}
	sort.Strings(matches)

	var (
		loaded []string
		errs   []error
	)
	for _, path := range matches {
		data, err := os.ReadFile(path)
		if err != nil {
			errs = append(errs, fmt.Errorf("theme: read %s: %w", path, err))
			continue
		}
		p, err := LoadPresetTOML(data)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", filepath.Base(path), err))
			continue
		}
		if err := c.RegisterPreset(p); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", filepath.Base(path), err))
			continue
		}
		loaded = append(loaded, p.Name)
	}
	return loaded, errs
}
