package theme

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestBuiltinPresetsCoverVariants(t *testing.T) {
	c := NewCatalog()
	for _, v := range []Variant{VariantClassic, VariantCard} {
		presets := c.Presets(v)
		if len(presets) < 5 {
			t.Errorf("variant %s has %d presets, want at least 5", v, len(presets))
		}
		for _, p := range presets {
			if !p.Covers(v.Fields()) {
				t.Errorf("preset %s/%s does not cover %v", v, p.Name, v.Fields())
			}
			for field, value := range p.Colors {
				if !thHexColorRegex.MatchString(value) {
					t.Errorf("preset %s field %s = %q, not hex", p.Name, field, value)
				}
			}
		}
	}
}

func TestDefaultPresetsExist(t *testing.T) {
	c := NewCatalog()
	for _, v := range []Variant{VariantClassic, VariantCard} {
		for _, dark := range []bool{true, false} {
			name := v.DefaultPreset(dark)
			if _, ok := c.LookupPreset(v, name); !ok {
				t.Errorf("default preset %q for %s (dark=%v) not registered", name, v, dark)
			}
		}
	}
}

func TestParseVariant(t *testing.T) {
	tests := []struct {
		in   string
		want Variant
		err  bool
	}{
		{"", VariantClassic, false},
		{"classic", VariantClassic, false},
		{" CARD ", VariantCard, false},
		{"poster", "", true},
	}
	for _, tt := range tests {
		got, err := ParseVariant(tt.in)
		if (err != nil) != tt.err {
			t.Errorf("ParseVariant(%q) err = %v, want err=%v", tt.in, err, tt.err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseVariant(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestCatalogIsolation(t *testing.T) {
	a := NewCatalog()
	b := NewCatalog()

	custom := Preset{Name: "harbor", Variant: VariantCard, Colors: map[string]string{
		"background": "#000000", "card": "#111111", "text": "#eeeeee",
	}}
	if err := a.RegisterPreset(custom); err != nil {
		t.Fatalf("RegisterPreset: %v", err)
	}
	if _, ok := b.LookupPreset(VariantCard, "harbor"); ok {
		t.Error("preset registered on one catalog leaked into another")
	}

	got, _ := a.LookupPreset(VariantCard, "HARBOR")
	got.Colors["text"] = "#ff0000"
	again, _ := a.LookupPreset(VariantCard, "harbor")
	if again.Colors["text"] != "#eeeeee" {
		t.Errorf("mutating a looked-up preset changed the catalog: text = %q", again.Colors["text"])
	}
}

func TestRegisterPresetRejectsIncomplete(t *testing.T) {
	c := NewCatalog()
	err := c.RegisterPreset(Preset{Name: "half", Variant: VariantClassic, Colors: map[string]string{"background": "#000000"}})
	if !errors.Is(err, ErrIncompletePreset) {
		t.Errorf("RegisterPreset err = %v, want ErrIncompletePreset", err)
	}
}

func TestPresetNamesSorted(t *testing.T) {
	names := NewCatalog().PresetNames(VariantClassic)
	for i := 1; i < len(names); i++ {
		if names[i-1] > names[i] {
			t.Fatalf("PresetNames not sorted: %v", names)
		}
	}
}

func TestStoreApplyPresetAtomic(t *testing.T) {
	c := NewCatalog()
	midnight, _ := c.LookupPreset(VariantClassic, "midnight")
	s, err := NewStore(VariantClassic.Fields(), midnight)
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	before := s.Snapshot()

	partial := Preset{Name: "partial", Colors: map[string]string{
		"background": "#ffffff",
		"clock":      "#000000",
	}}
	if err := s.ApplyPreset(partial); !errors.Is(err, ErrIncompletePreset) {
		t.Fatalf("ApplyPreset(partial) err = %v, want ErrIncompletePreset", err)
	}
	after := s.Snapshot()
	for k, v := range before {
		if after[k] != v {
			t.Errorf("field %s changed from %q to %q after rejected preset", k, v, after[k])
		}
	}
	if s.PresetName() != "midnight" {
		t.Errorf("PresetName = %q, want midnight", s.PresetName())
	}

	daylight, _ := c.LookupPreset(VariantClassic, "daylight")
	if err := s.ApplyPreset(daylight); err != nil {
		t.Fatalf("ApplyPreset(daylight): %v", err)
	}
	for _, f := range s.Fields() {
		if s.Get(f) != daylight.Colors[f] {
			t.Errorf("Get(%s) = %q, want %q", f, s.Get(f), daylight.Colors[f])
		}
	}
}

func TestStoreIgnoresExtraPresetKeys(t *testing.T) {
	s, err := NewStore([]string{"background"}, Preset{Name: "x", Colors: map[string]string{
		"background": "#101010",
		"glow":       "#ffffff",
	}})
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	if _, ok := s.Snapshot()["glow"]; ok {
		t.Error("extra preset key leaked into the store")
	}
}

func TestStoreSetField(t *testing.T) {
	c := NewCatalog()
	slate, _ := c.LookupPreset(VariantCard, "slate")
	s, err := NewStore(VariantCard.Fields(), slate)
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}

	if err := s.SetField("card", "tomato"); err != nil {
		t.Fatalf("SetField: %v", err)
	}
	if got := s.Get("card"); got != "tomato" {
		t.Errorf("Get(card) = %q, want %q", got, "tomato")
	}
	if got := s.Get("text"); got != slate.Colors["text"] {
		t.Errorf("Get(text) = %q, want unchanged %q", got, slate.Colors["text"])
	}
	if got := s.PresetName(); got != CustomPresetName {
		t.Errorf("PresetName = %q, want %q", got, CustomPresetName)
	}

	if err := s.SetField("clock", "#ffffff"); !errors.Is(err, ErrUnknownField) {
		t.Errorf("SetField(clock) err = %v, want ErrUnknownField", err)
	}
}

func TestNewStoreValidation(t *testing.T) {
	if _, err := NewStore(nil, Preset{}); err == nil {
		t.Error("NewStore(nil) should fail")
	}
	if _, err := NewStore([]string{"a", "a"}, Preset{Colors: map[string]string{"a": "#000000"}}); err == nil {
		t.Error("NewStore with duplicate fields should fail")
	}
	if _, err := NewStore([]string{"a", "b"}, Preset{Colors: map[string]string{"a": "#000000"}}); !errors.Is(err, ErrIncompletePreset) {
		t.Errorf("NewStore with incomplete initial err = %v, want ErrIncompletePreset", err)
	}
}

func TestStoreFieldsOrder(t *testing.T) {
	fields := []string{"text", "card", "background"}
	s, err := NewStore(fields, thSlatePreset())
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	got := s.Fields()
	for i := range fields {
		if got[i] != fields[i] {
			t.Fatalf("Fields = %v, want %v", got, fields)
		}
	}
	got[0] = "mutated"
	if s.Fields()[0] != "text" {
		t.Error("Fields returned the internal slice")
	}
}

func TestPresetTOMLRoundTrip(t *testing.T) {
	orig := thNordPreset()
	data, err := SavePresetTOML(orig)
	if err != nil {
		t.Fatalf("SavePresetTOML: %v", err)
	}
	if !strings.Contains(string(data), "[colors]") {
		t.Errorf("encoded preset lacks [colors] table:\n%s", data)
	}

	got, err := LoadPresetTOML(data)
	if err != nil {
		t.Fatalf("LoadPresetTOML: %v", err)
	}
	if got.Name != orig.Name || got.Variant != orig.Variant {
		t.Errorf("round trip = %s/%s, want %s/%s", got.Variant, got.Name, orig.Variant, orig.Name)
	}
	for k, v := range orig.Colors {
		if got.Colors[k] != v {
			t.Errorf("Colors[%s] = %q, want %q", k, got.Colors[k], v)
		}
	}
}

func TestLoadPresetTOMLErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		want error
	}{
		{
			name: "bad hex",
			data: "name = \"x\"\nvariant = \"card\"\n[colors]\nbackground = \"red\"\ncard = \"#000000\"\ntext = \"#ffffff\"\n",
			want: ErrInvalidColor,
		},
		{
			name: "missing field",
			data: "name = \"x\"\nvariant = \"card\"\n[colors]\nbackground = \"#000000\"\n",
			want: ErrIncompletePreset,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadPresetTOML([]byte(tt.data))
			if !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
		})
	}

	if _, err := LoadPresetTOML([]byte("[colors]\nbackground = \"#000000\"\n")); err == nil {
		t.Error("preset without name should fail")
	}
	if _, err := LoadPresetTOML([]byte("name = \"x\"\nvariant = \"poster\"\n")); err == nil {
		t.Error("preset with unknown variant should fail")
	}
	if _, err := LoadPresetTOML([]byte("name = [")); err == nil {
		t.Error("malformed TOML should fail")
	}
}

func TestLoadPresetDir(t *testing.T) {
	dir := t.TempDir()
	good := "name = \"harbor\"\nvariant = \"classic\"\n[colors]\nbackground = \"#0a0a0a\"\nclock = \"#fafafa\"\ndate = \"#999999\"\naccent = \"#33aaff\"\n"
	bad := "name = \"broken\"\n[colors]\nbackground = \"nope\"\n"
	if err := os.WriteFile(filepath.Join(dir, "harbor.toml"), []byte(good), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "broken.toml"), []byte(bad), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0o644); err != nil {
		t.Fatal(err)
	}

	c := NewCatalog()
	loaded, errs := LoadPresetDir(c, dir)
	if len(loaded) != 1 || loaded[0] != "harbor" {
		t.Errorf("loaded = %v, want [harbor]", loaded)
	}
	if len(errs) != 1 {
		t.Errorf("errs = %v, want one error", errs)
	}
	if _, ok := c.LookupPreset(VariantClassic, "harbor"); !ok {
		t.Error("harbor not registered")
	}

	loaded, errs = LoadPresetDir(c, filepath.Join(dir, "missing"))
	if len(loaded) != 0 || len(errs) != 0 {
		t.Errorf("missing dir: loaded=%v errs=%v, want none", loaded, errs)
	}
}

func TestAdapt(t *testing.T) {
	colors := map[string]string{
		"red":   "#ff0000",
		"black": "#000000",
		"gray":  "#808080",
		"named": "tomato",
	}

	same := Adapt(colors, 24)
	for k, v := range colors {
		if same[k] != v {
			t.Errorf("Adapt(24)[%s] = %q, want unchanged %q", k, same[k], v)
		}
	}

	got := Adapt(colors, 8)
	want := map[string]string{
		"red":   "196",
		"black": "16",
		"gray":  "244",
		"named": "tomato",
	}
	for k, v := range want {
		if got[k] != v {
			t.Errorf("Adapt(8)[%s] = %q, want %q", k, got[k], v)
		}
	}
	if colors["red"] != "#ff0000" {
		t.Error("Adapt mutated its input")
	}
}

func TestResolvePalette(t *testing.T) {
	card := ResolvePalette(thSlatePreset().Colors, 24)
	if card.Surface != "#1e293b" {
		t.Errorf("card Surface = %q, want #1e293b", card.Surface)
	}
	if card.Clock != "#f8fafc" || card.Date != "#f8fafc" {
		t.Errorf("card text should drive clock and date, got %q / %q", card.Clock, card.Date)
	}

	classic := ResolvePalette(thMidnightPreset().Colors, 24)
	if classic.Surface != classic.Background {
		t.Errorf("classic Surface = %q, want background %q", classic.Surface, classic.Background)
	}
	if classic.Accent != "#58a6ff" {
		t.Errorf("classic Accent = %q, want #58a6ff", classic.Accent)
	}
	if classic.Muted != "#8b949e" {
		t.Errorf("classic Muted = %q, want date color", classic.Muted)
	}
}

func TestIsDark(t *testing.T) {
	if !IsDark("#0b1020") {
		t.Error("midnight background should be dark")
	}
	if IsDark("#f6f8fa") {
		t.Error("daylight background should be light")
	}
}
