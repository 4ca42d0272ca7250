package theme

import (
	"errors"
	"fmt"
	"sync"
)

var (
	// ErrIncompletePreset reports a preset that does not define every field
	// of the store or variant it is applied to.
	ErrIncompletePreset = errors.New("theme: preset does not cover every color field")
	// ErrUnknownField reports an edit to a field the store does not hold.
	ErrUnknownField = errors.New("theme: unknown color field")
	// ErrInvalidColor reports a preset file value that is not #RRGGBB.
	ErrInvalidColor = errors.New("theme: invalid hex color")
)

// CustomPresetName is reported by Store.PresetName once a field has been
// edited by hand.
const CustomPresetName = "custom"

// Store is the live color record of a card. The field set is fixed at
// construction; values change only through ApplyPreset and SetField.
type Store struct {
	mu     sync.RWMutex
	fields []string
	values map[string]string
	preset string
}

// NewStore creates a store over fields initialized from initial, which must
// cover every field.
func NewStore(fields []string, initial Preset) (*Store, error) {
	if len(fields) == 0 {
		return nil, fmt.Errorf("theme: store needs at least one color field")
	}
	seen := make(map[string]bool, len(fields))
	own := make([]string, 0, len(fields))
	for _, f := range fields {
		if f == "" || seen[f] {
			return nil, fmt.Errorf("theme: invalid or duplicate color field %q", f)
		}
		seen[f] = true
		own = append(own, f)
	}

	s := &Store{fields: own, values: make(map[string]string, len(own))}
	if err := s.ApplyPreset(initial); err != nil {
		return nil, err
	}
	return s, nil
}

// ApplyPreset replaces every field with the preset's value. A preset missing
// any field is rejected and the store is left as it was. Keys the store does
// not hold are ignored.
func (s *Store) ApplyPreset(p Preset) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, f := range s.fields {
		if _, ok := p.Colors[f]; !ok {
			return fmt.Errorf("%w: %q lacks %q", ErrIncompletePreset, p.Name, f)
		}
	}
	for _, f := range s.fields {
		s.values[f] = p.Colors[f]
	}
	s.preset = p.Name
	return nil
}

// SetField sets a single field. The value is stored as given.
func (s *Store) SetField(name, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.values[name]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownField, name)
	}
	s.values[name] = value
	s.preset = CustomPresetName
	return nil
}

// Get returns a field's value, or "" for an unknown field.
func (s *Store) Get(name string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.values[name]
}

// Fields returns the field names in construction order.
func (s *Store) Fields() []string {
	out := make([]string, len(s.fields))
	copy(out, s.fields)
	return out
}

// Snapshot returns a copy of every field value.
func (s *Store) Snapshot() map[string]string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]string, len(s.values))
	for k, v := range s.values {
		out[k] = v
	}
	return out
}

// PresetName returns the name of the last applied preset, or
// CustomPresetName after a field edit.
func (s *Store) PresetName() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.preset
}
