package termtest

import (
	"fmt"
	"strings"
	"testing"

	"gitlab.com/tinyland/lab/tickcard/pkg/terminal"
)

// --- Profile Tests ---

func TestProfiles_UniqueNamesAndSizes(t *testing.T) {
	seen := map[string]bool{}
	for _, p := range Profiles() {
		if p.Name == "" {
			t.Error("profile with empty name")
		}
		if seen[p.Name] {
			t.Errorf("duplicate profile %q", p.Name)
		}
		seen[p.Name] = true
		if p.Cols < 80 || p.Rows < 24 {
			t.Errorf("%s: window %dx%d smaller than 80x24", p.Name, p.Cols, p.Rows)
		}
		if len(p.EnvVars) == 0 {
			t.Errorf("%s: no environment", p.Name)
		}
	}
}

func TestProfileByName(t *testing.T) {
	if p := ProfileByName("tmux"); p == nil || p.Term != terminal.TermTmux {
		t.Errorf("ProfileByName(tmux) = %+v", p)
	}
	if p := ProfileByName("nope"); p != nil {
		t.Errorf("ProfileByName(nope) = %+v, want nil", p)
	}
}

func TestProfiles_Detection(t *testing.T) {
	for _, p := range Profiles() {
		t.Run(p.Name, func(t *testing.T) {
			p.Apply(t)
			got := terminal.Detect()
			if got != p.Term {
				t.Errorf("Detect() = %v, want %v", got, p.Term)
			}
			if got.SupportsMouseMotion() != p.MouseMotion {
				t.Errorf("SupportsMouseMotion() = %v, want %v", got.SupportsMouseMotion(), p.MouseMotion)
			}
		})
	}
}

func TestProfiles_DetectedDepthWithinProfile(t *testing.T) {
	for _, p := range Profiles() {
		t.Run(p.Name, func(t *testing.T) {
			p.Apply(t)
			caps := terminal.Inspect()
			if err := ValidateColorDepth(p, caps.ColorDepth); err != nil && caps.Interactive {
				t.Error(err)
			}
		})
	}
}

// --- Validation Tests ---

func TestValidateFrame(t *testing.T) {
	frame := strings.Repeat("x", 10) + "\n" + "\x1b[31m" + strings.Repeat("y", 10) + "\x1b[0m"
	if err := ValidateFrame(frame, 10, 2); err != nil {
		t.Errorf("ValidateFrame(fitting) = %v", err)
	}
	if err := ValidateFrame(frame, 9, 2); err == nil {
		t.Error("ValidateFrame should reject a line wider than the window")
	}
	if err := ValidateFrame(frame, 10, 1); err == nil {
		t.Error("ValidateFrame should reject more lines than rows")
	}
}

func TestValidateFrame_WideRunes(t *testing.T) {
	if err := ValidateFrame("時計", 3, 1); err == nil {
		t.Error("two double-width runes should not fit in 3 columns")
	}
	if err := ValidateFrame("時計", 4, 1); err != nil {
		t.Errorf("ValidateFrame = %v", err)
	}
}

func TestValidateColorDepth(t *testing.T) {
	p := ttTmuxProfile()
	if err := ValidateColorDepth(p, 8); err != nil {
		t.Errorf("ValidateColorDepth(8) = %v", err)
	}
	if err := ValidateColorDepth(p, 4); err != nil {
		t.Errorf("ValidateColorDepth(4) = %v", err)
	}
	if err := ValidateColorDepth(p, 24); err == nil {
		t.Error("true color on tmux profile should be rejected")
	}
}

// --- Snapshot Tests ---

func TestCaptureSnapshot_CapturesContent(t *testing.T) {
	renderFn := func(w, h int) string {
		return fmt.Sprintf("\x1b[1mwidth=%d height=%d\x1b[0m", w, h)
	}

	snap := CaptureSnapshot("test-snap", ttGhosttyProfile(), renderFn)

	if snap.Name != "test-snap" {
		t.Errorf("snap.Name = %q, want \"test-snap\"", snap.Name)
	}
	if snap.Terminal != "Ghostty" {
		t.Errorf("snap.Terminal = %q, want \"Ghostty\"", snap.Terminal)
	}
	if snap.Width != 160 || snap.Height != 48 {
		t.Errorf("snap size = %dx%d, want 160x48", snap.Width, snap.Height)
	}
	if snap.Content != "width=160 height=48" {
		t.Errorf("snap.Content = %q, want escape sequences stripped", snap.Content)
	}
	if !snap.Contains("height=48") {
		t.Error("Contains(height=48) = false")
	}
}

func TestCompareSnapshots_IdenticalNoDiffs(t *testing.T) {
	s := Snapshot{Name: "test", Content: "line1\nline2\nline3"}

	if diffs := CompareSnapshots(s, s); len(diffs) != 0 {
		t.Errorf("CompareSnapshots(identical) returned %d diffs, want 0", len(diffs))
	}
}

func TestCompareSnapshots_DifferentContent(t *testing.T) {
	expected := Snapshot{Name: "expected", Content: "line1\nline2\nline3"}
	actual := Snapshot{Name: "actual", Content: "line1\nchanged\nline3"}

	diffs := CompareSnapshots(expected, actual)
	if len(diffs) != 1 {
		t.Fatalf("CompareSnapshots returned %d diffs, want 1", len(diffs))
	}
	if diffs[0].Line != 2 || diffs[0].Expected != "line2" || diffs[0].Actual != "changed" {
		t.Errorf("diff = %+v", diffs[0])
	}
}

func TestCompareSnapshots_DifferentLineCounts(t *testing.T) {
	expected := Snapshot{Name: "expected", Content: "line1\nline2\nline3"}
	actual := Snapshot{Name: "actual", Content: "line1\nline2"}

	diffs := CompareSnapshots(expected, actual)
	if len(diffs) != 1 {
		t.Fatalf("CompareSnapshots(different line counts) returned %d diffs, want 1", len(diffs))
	}
	if diffs[0].Line != 3 || diffs[0].Expected != "line3" || diffs[0].Actual != "" {
		t.Errorf("diff = %+v", diffs[0])
	}
}
