package app

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"gitlab.com/tinyland/lab/tickcard/pkg/termtest"
	"gitlab.com/tinyland/lab/tickcard/pkg/worldclock"
)

func renderAt(t *testing.T, m Model, w, h int) (Model, string) {
	t.Helper()
	m, _ = update(m, tea.WindowSizeMsg{Width: w, Height: h})
	return m, m.View()
}

func TestView_FitsEveryTerminalProfile(t *testing.T) {
	for _, p := range termtest.Profiles() {
		t.Run(p.Name, func(t *testing.T) {
			opts := testOptions()
			opts.ColorDepth = p.ColorDepth
			opts.WorldClocks = []worldclock.CatalogEntry{
				{Timezone: "Asia/Tokyo"},
				{Timezone: "America/New_York"},
			}
			m := newTestModel(t, opts)

			m, frame := renderAt(t, m, p.Cols, p.Rows)
			if err := termtest.ValidateFrame(frame, p.Cols, p.Rows); err != nil {
				t.Errorf("normal view: %v", err)
			}

			snap := termtest.CaptureSnapshot("normal", p, func(w, h int) string { return frame })
			for _, want := range []string{"2026-07-04", "Tokyo", "New York", "settings"} {
				if !snap.Contains(want) {
					t.Errorf("normal view missing %q", want)
				}
			}
		})
	}
}

func TestView_FullscreenIdleHidesControls(t *testing.T) {
	p := termtest.ProfileByName("GNOME Terminal")
	if p == nil {
		t.Fatal("profile missing")
	}
	m := newTestModel(t, testOptions())
	m, _ = update(m, FullscreenChangedEvent{On: true})
	d, ok := m.Visibility().PendingDeadline()
	if !ok {
		t.Fatal("fullscreen should arm the idle timer")
	}
	m, _ = update(m, IdleTimeoutEvent{Deadline: d})

	_, frame := renderAt(t, m, p.Cols, p.Rows)
	if err := termtest.ValidateFrame(frame, p.Cols, p.Rows); err != nil {
		t.Error(err)
	}
	snap := termtest.CaptureSnapshot("fullscreen-idle", *p, func(w, h int) string { return frame })
	if snap.Contains("settings") {
		t.Error("controls rendered in fullscreen idle")
	}
	if !snap.Contains("2026-07-04") {
		t.Error("date missing in fullscreen idle")
	}
}

func TestView_SameFrameTwice(t *testing.T) {
	p := termtest.ProfileByName("Kitty")
	if p == nil {
		t.Fatal("profile missing")
	}
	m := newTestModel(t, testOptions())
	m, first := renderAt(t, m, p.Cols, p.Rows)
	_, second := renderAt(t, m, p.Cols, p.Rows)

	a := termtest.CaptureSnapshot("first", *p, func(w, h int) string { return first })
	b := termtest.CaptureSnapshot("second", *p, func(w, h int) string { return second })
	if diffs := termtest.CompareSnapshots(a, b); len(diffs) != 0 {
		t.Errorf("rendering is not stable: %+v", diffs[0])
	}
}

func TestView_StatusWrapsToWidth(t *testing.T) {
	m := newTestModel(t, testOptions())
	m, _ = update(m, FullscreenRequestFailedEvent{Want: true})

	_, frame := renderAt(t, m, 32, 40)
	const msg = "fullscreen unavailable: output is not a terminal"
	if strings.Contains(frame, msg) {
		t.Error("status should wrap at the window width")
	}
	if !strings.Contains(frame, "fullscreen unavailable:") {
		t.Errorf("frame is missing the status:\n%s", frame)
	}
}
