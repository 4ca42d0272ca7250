// Package visibility tracks whether the card is fullscreen and whether the
// transient controls are shown or faded out after pointer inactivity.
//
// The machine owns no timers. Operations that arm the idle timer return a
// Deadline; the caller schedules it (a tea.Tick in the app) and hands it
// back to IdleElapsed when it fires. Only the most recently issued Deadline
// is honored, which gives debounce semantics and makes cancellation a
// matter of bumping the sequence.
package visibility

import "time"

// DefaultIdleAfter is the pointer inactivity period that hides controls.
const DefaultIdleAfter = 3000 * time.Millisecond

// State is the visibility state.
type State int

const (
	// Normal is windowed mode; controls are always visible.
	Normal State = iota
	// FullscreenActive is fullscreen with controls visible.
	FullscreenActive
	// FullscreenIdle is fullscreen with controls hidden.
	FullscreenIdle
)

var stateNames = [...]string{
	Normal:           "normal",
	FullscreenActive: "fullscreen-active",
	FullscreenIdle:   "fullscreen-idle",
}

// String returns the state's name.
func (s State) String() string {
	if int(s) >= 0 && int(s) < len(stateNames) {
		return stateNames[s]
	}
	return "unknown"
}

// Deadline identifies one armed idle timer.
type Deadline struct {
	Seq   uint64
	After time.Duration
}

// Machine is the visibility state machine for one card.
type Machine struct {
	state     State
	idleAfter time.Duration
	seq       uint64
	pending   bool
	modalOpen bool
}

// New returns a machine in Normal with controls visible. A non-positive
// idleAfter selects DefaultIdleAfter.
func New(idleAfter time.Duration) *Machine {
	if idleAfter <= 0 {
		idleAfter = DefaultIdleAfter
	}
	return &Machine{state: Normal, idleAfter: idleAfter}
}

// State returns the current state.
func (m *Machine) State() State { return m.state }

// Fullscreen reports the last host-confirmed fullscreen status.
func (m *Machine) Fullscreen() bool { return m.state != Normal }

// ControlsVisible reports whether transient controls should be drawn.
func (m *Machine) ControlsVisible() bool { return m.state != FullscreenIdle }

// ModalOpen reports whether a modal dialog is recorded as open.
func (m *Machine) ModalOpen() bool { return m.modalOpen }

// IdleAfter returns the configured inactivity period.
func (m *Machine) IdleAfter() time.Duration { return m.idleAfter }

// PendingDeadline returns the armed deadline, if any.
func (m *Machine) PendingDeadline() (Deadline, bool) {
	if !m.pending {
		return Deadline{}, false
	}
	return Deadline{Seq: m.seq, After: m.idleAfter}, true
}

// RequestToggle returns the fullscreen value a toggle request should ask
// the host for. The state itself only changes once FullscreenChanged
// confirms the request.
func (m *Machine) RequestToggle() bool { return m.state == Normal }

// FullscreenChanged applies the host's authoritative fullscreen signal.
// Leaving fullscreen cancels any pending deadline and shows controls from
// any state. Entering arms a fresh deadline, which is returned.
func (m *Machine) FullscreenChanged(on bool) (Deadline, bool) {
	if !on {
		m.state = Normal
		m.cancel()
		return Deadline{}, false
	}
	m.state = FullscreenActive
	return m.arm(), true
}

// MouseMoved records pointer activity. In fullscreen it shows controls and
// re-arms the deadline, superseding the previous one. In Normal it is a
// no-op.
func (m *Machine) MouseMoved() (Deadline, bool) {
	if m.state == Normal {
		return Deadline{}, false
	}
	m.state = FullscreenActive
	return m.arm(), true
}

// IdleElapsed handles a fired deadline and reports whether controls were
// hidden. Superseded deadlines are ignored. A fire while a modal is open is
// consumed without hiding.
func (m *Machine) IdleElapsed(d Deadline) bool {
	if !m.pending || d.Seq != m.seq {
		return false
	}
	m.pending = false
	if m.state != FullscreenActive || m.modalOpen {
		return false
	}
	m.state = FullscreenIdle
	return true
}

// SetModalOpen records whether a modal dialog is up. Closing a modal while
// fullscreen restarts the idle deadline fresh and returns it. Opening one
// is not a transition; it only suppresses hiding.
func (m *Machine) SetModalOpen(open bool) (Deadline, bool) {
	wasOpen := m.modalOpen
	m.modalOpen = open
	if open || !wasOpen || m.state == Normal {
		return Deadline{}, false
	}
	m.state = FullscreenActive
	return m.arm(), true
}

func (m *Machine) arm() Deadline {
	m.seq++
	m.pending = true
	return Deadline{Seq: m.seq, After: m.idleAfter}
}

func (m *Machine) cancel() {
	m.seq++
	m.pending = false
}
