// Package app is the Bubbletea model of the clock card: it owns the world
// clock registry, the theme store and the visibility machine, turns timer
// and terminal events into transitions, and renders the card.
package app

import (
	"time"

	"gitlab.com/tinyland/lab/tickcard/pkg/visibility"
)

// TickEvent carries a wall-clock sample from a Ticker. ID and Tag let the
// ticker drop samples scheduled before it was stopped or restarted.
type TickEvent struct {
	ID   int
	Tag  int
	Time time.Time
}

// IdleTimeoutEvent delivers an idle deadline back to the visibility machine.
type IdleTimeoutEvent struct {
	Deadline visibility.Deadline
}

// FullscreenChangedEvent confirms that the terminal entered or left the
// alternate screen.
type FullscreenChangedEvent struct {
	On bool
}

// FullscreenRequestFailedEvent reports that a fullscreen request could not
// be issued.
type FullscreenRequestFailedEvent struct {
	Want bool
	Err  error
}

// LocationEvent carries the result of a place lookup. Label is always set;
// it is the fallback label when Err is non-nil.
type LocationEvent struct {
	Label string
	Err   error
}

// statusClearEvent expires a status message if it is still the latest.
type statusClearEvent struct {
	seq int
}
