package app

import (
	"context"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"gitlab.com/tinyland/lab/tickcard/pkg/location"
	"gitlab.com/tinyland/lab/tickcard/pkg/visibility"
)

var lastTickerID int64

func nextTickerID() int {
	return int(atomic.AddInt64(&lastTickerID, 1))
}

// Ticker samples the wall clock once per interval. Samples are aligned to
// the system clock so the seconds field changes on the second boundary.
type Ticker struct {
	id       int
	tag      int
	interval time.Duration
	running  bool
	now      func() time.Time
}

// NewTicker returns a stopped ticker. now defaults to time.Now.
func NewTicker(interval time.Duration, now func() time.Time) *Ticker {
	if interval <= 0 {
		interval = time.Second
	}
	if now == nil {
		now = time.Now
	}
	return &Ticker{id: nextTickerID(), interval: interval, now: now}
}

// ID returns the ticker's unique id.
func (t *Ticker) ID() int { return t.id }

// Start invalidates any earlier schedule and returns a command that samples
// the clock immediately.
func (t *Ticker) Start() tea.Cmd {
	t.tag++
	t.running = true
	id, tag, now := t.id, t.tag, t.now
	return func() tea.Msg {
		return TickEvent{ID: id, Tag: tag, Time: now()}
	}
}

// Stop drops every sample already in flight.
func (t *Ticker) Stop() {
	t.tag++
	t.running = false
}

// Accept reports whether ev belongs to the current schedule of this ticker.
func (t *Ticker) Accept(ev TickEvent) bool {
	return t.running && ev.ID == t.id && ev.Tag == t.tag
}

// Next schedules the following sample.
func (t *Ticker) Next() tea.Cmd {
	id, tag, now := t.id, t.tag, t.now
	return tea.Every(t.interval, func(time.Time) tea.Msg {
		return TickEvent{ID: id, Tag: tag, Time: now()}
	})
}

// IdleCmd fires d back as an IdleTimeoutEvent once its delay has passed.
func IdleCmd(d visibility.Deadline) tea.Cmd {
	return tea.Tick(d.After, func(time.Time) tea.Msg {
		return IdleTimeoutEvent{Deadline: d}
	})
}

// LocationCmd resolves the place label off the event loop.
func LocationCmd(g location.Geocoder, lat, lon float64, tz string, timeout time.Duration) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		if timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, timeout)
			defer cancel()
		}
		label, err := location.Resolve(ctx, g, lat, lon, tz)
		return LocationEvent{Label: label, Err: err}
	}
}

// clearStatusCmd expires status message seq after d.
func clearStatusCmd(seq int, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return statusClearEvent{seq: seq}
	})
}
