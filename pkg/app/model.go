package app

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"gitlab.com/tinyland/lab/tickcard/pkg/clock"
	"gitlab.com/tinyland/lab/tickcard/pkg/theme"
	"gitlab.com/tinyland/lab/tickcard/pkg/visibility"
	"gitlab.com/tinyland/lab/tickcard/pkg/worldclock"
)

const statusTTL = 4 * time.Second

type modalKind int

const (
	modalNone modalKind = iota
	modalSettings
	modalAddClock
)

// Model is the root Bubbletea model of the card.
type Model struct {
	opts Options
	log  *slog.Logger

	now    time.Time
	ticker *Ticker

	registry *worldclock.Registry
	store    *theme.Store
	vis      *visibility.Machine
	zones    *zone.Manager

	keys keyMap
	help help.Model

	modal    modalKind
	settings settingsPanel
	addClock addClockPanel

	place     string
	statusMsg string
	statusSeq int

	width    int
	height   int
	quitting bool
}

// NewModel builds a card from opts. It fails when the color field set and
// the chosen preset or overrides disagree.
func NewModel(opts Options) (Model, error) {
	opts = opts.withDefaults()
	log := opts.Logger.With("component", "app")

	fields := opts.ColorFieldNames
	if len(fields) == 0 {
		fields = opts.Variant.Fields()
	}

	// An explicit background override decides between the dark and light
	// defaults, over whatever the terminal reported.
	if bg, ok := opts.ColorOverrides["background"]; ok && opts.Preset == "" {
		opts.DarkBackground = theme.IsDark(bg)
	}
	name := opts.Preset
	if name == "" {
		name = opts.Variant.DefaultPreset(opts.DarkBackground)
	}
	preset, ok := opts.Themes.LookupPreset(opts.Variant, name)
	if !ok {
		fallback := opts.Variant.DefaultPreset(opts.DarkBackground)
		log.Warn("unknown preset, using default", "preset", name, "default", fallback)
		if preset, ok = opts.Themes.LookupPreset(opts.Variant, fallback); !ok {
			return Model{}, fmt.Errorf("app: no preset %q for variant %s", fallback, opts.Variant)
		}
	}

	store, err := theme.NewStore(fields, preset)
	if err != nil {
		return Model{}, fmt.Errorf("app: %w", err)
	}
	for field, value := range opts.ColorOverrides {
		if err := store.SetField(field, value); err != nil {
			return Model{}, fmt.Errorf("app: color override: %w", err)
		}
	}

	var regOpts []worldclock.Option
	if opts.IDGenerator != nil {
		regOpts = append(regOpts, worldclock.WithIDGenerator(opts.IDGenerator))
	}
	registry := worldclock.NewRegistry(opts.Catalog, regOpts...)
	for _, wc := range opts.WorldClocks {
		if _, err := registry.Add(wc.Timezone, wc.Label); err != nil {
			log.Warn("skipping world clock", "timezone", wc.Timezone, "error", err)
		}
	}

	m := Model{
		opts:     opts,
		log:      log,
		now:      opts.Now(),
		ticker:   NewTicker(time.Second, opts.Now),
		registry: registry,
		store:    store,
		vis:      visibility.New(opts.IdleAfter),
		zones:    zone.New(),
		keys:     defaultKeyMap(),
		help:     help.New(),
		settings: newSettingsPanel(),
	}
	if opts.EnableLocationLookup {
		m.place = "…"
	}
	return m, nil
}

// Init starts the ticker and the optional startup requests.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.ticker.Start()}
	if m.opts.StartFullscreen {
		cmds = append(cmds, m.requestFullscreen(true))
	}
	if m.opts.EnableLocationLookup {
		cmds = append(cmds, LocationCmd(m.opts.Geocoder, m.opts.Latitude, m.opts.Longitude, m.opts.LocalZone, m.opts.LocationTimeout))
	}
	return tea.Batch(cmds...)
}

// Update handles one message.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickEvent:
		if !m.ticker.Accept(msg) {
			m.log.Debug("stale tick dropped", "ticker", m.ticker.ID(), "from", msg.ID, "tag", msg.Tag)
			return m, nil
		}
		m.now = msg.Time
		return m, m.ticker.Next()

	case IdleTimeoutEvent:
		if m.vis.IdleElapsed(msg.Deadline) {
			m.log.Debug("controls hidden", "state", m.vis.State())
		}
		return m, nil

	case FullscreenChangedEvent:
		d, ok := m.vis.FullscreenChanged(msg.On)
		m.log.Info("fullscreen changed", "on", msg.On, "state", m.vis.State(), "idle_after", m.vis.IdleAfter())
		if ok {
			return m, IdleCmd(d)
		}
		return m, nil

	case FullscreenRequestFailedEvent:
		m.log.Warn("fullscreen request failed", "want", msg.Want, "error", msg.Err)
		cmd := m.setStatus("fullscreen unavailable: output is not a terminal")
		return m, cmd

	case LocationEvent:
		m.place = msg.Label
		if msg.Err != nil {
			m.log.Warn("location lookup failed, using timezone", "label", msg.Label, "error", msg.Err)
		}
		return m, nil

	case statusClearEvent:
		if msg.seq == m.statusSeq {
			m.statusMsg = ""
		}
		return m, nil

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if m.modal == modalSettings && m.settings.editing {
		var cmd tea.Cmd
		m.settings.input, cmd = m.settings.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m.quit()
	}

	switch m.modal {
	case modalSettings:
		return m.updateSettings(msg)
	case modalAddClock:
		return m.updateAddClock(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()
	case key.Matches(msg, m.keys.Settings):
		return m.openModal(modalSettings)
	case key.Matches(msg, m.keys.AddClock):
		return m.openModal(modalAddClock)
	case key.Matches(msg, m.keys.Fullscreen):
		return m, m.toggleFullscreen()
	case key.Matches(msg, m.keys.RemoveClock):
		return m.removeLastClock()
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}
	return m, nil
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	if d, ok := m.vis.MouseMoved(); ok {
		cmds = append(cmds, IdleCmd(d))
	}
	if msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft {
		return m, tea.Batch(cmds...)
	}

	var (
		next tea.Model = m
		cmd  tea.Cmd
	)
	switch m.modal {
	case modalSettings:
		next, cmd = m.clickSettings(msg)
	case modalAddClock:
		next, cmd = m.clickAddClock(msg)
	default:
		next, cmd = m.clickCard(msg)
	}
	return next, tea.Batch(append(cmds, cmd)...)
}

func (m Model) clickCard(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch {
	case m.inZone(zoneSettings, msg):
		return m.openModal(modalSettings)
	case m.inZone(zoneAddClock, msg):
		return m.openModal(modalAddClock)
	case m.inZone(zoneFullscreen, msg):
		return m, m.toggleFullscreen()
	case m.inZone(zoneHelp, msg):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}
	for _, e := range m.registry.Entries() {
		if m.inZone(chipRemoveZone(e.ID), msg) {
			return m.removeClock(e)
		}
	}
	return m, nil
}

func (m Model) inZone(id string, msg tea.MouseMsg) bool {
	z := m.zones.Get(id)
	return z != nil && z.InBounds(msg)
}

func (m Model) openModal(kind modalKind) (tea.Model, tea.Cmd) {
	m.modal = kind
	m.vis.SetModalOpen(true)
	switch kind {
	case modalSettings:
		m.settings.reset(m.opts.Themes.PresetNames(m.opts.Variant), m.store.PresetName())
	case modalAddClock:
		m.addClock.cursor = 0
	}
	return m, nil
}

func (m Model) closeModal() (Model, tea.Cmd) {
	m.modal = modalNone
	m.settings.stopEditing()
	if d, ok := m.vis.SetModalOpen(false); ok {
		return m, IdleCmd(d)
	}
	return m, nil
}

func (m Model) removeLastClock() (tea.Model, tea.Cmd) {
	entries := m.registry.Entries()
	if len(entries) == 0 {
		cmd := m.setStatus("no world clocks to remove")
		return m, cmd
	}
	return m.removeClock(entries[len(entries)-1])
}

func (m Model) removeClock(e worldclock.Entry) (tea.Model, tea.Cmd) {
	if m.registry.Remove(e.ID) {
		m.log.Info("world clock removed", "timezone", e.Timezone)
	}
	return m, nil
}

// addWorldClock adds a catalog entry and closes the panel on success.
func (m Model) addWorldClock(ce worldclock.CatalogEntry) (tea.Model, tea.Cmd) {
	e, err := m.registry.Add(ce.Timezone, ce.Label)
	switch {
	case errors.Is(err, worldclock.ErrDuplicateTimezone):
		m.log.Info("duplicate world clock refused", "timezone", ce.Timezone)
		cmd := m.setStatus(fmt.Sprintf("%s is already shown", ce.Label))
		return m, cmd
	case err != nil:
		m.log.Warn("world clock add failed", "timezone", ce.Timezone, "error", err)
		cmd := m.setStatus(fmt.Sprintf("cannot add %s", ce.Label))
		return m, cmd
	}
	m.log.Info("world clock added", "timezone", e.Timezone, "id", e.ID)
	return m.closeModal()
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	m.ticker.Stop()
	return m, tea.Quit
}

func (m *Model) setStatus(s string) tea.Cmd {
	m.statusSeq++
	m.statusMsg = s
	return clearStatusCmd(m.statusSeq, statusTTL)
}

// Close releases the click zone manager. Call it once the program exits.
func (m Model) Close() {
	m.zones.Close()
}

// Now returns the last sampled instant.
func (m Model) Now() time.Time { return m.now }

// Registry returns the card's world clocks.
func (m Model) Registry() *worldclock.Registry { return m.registry }

// Theme returns the card's color store.
func (m Model) Theme() *theme.Store { return m.store }

// Visibility returns the card's visibility machine.
func (m Model) Visibility() *visibility.Machine { return m.vis }

// Place returns the location line, empty when lookup is disabled.
func (m Model) Place() string { return m.place }

// Status returns the transient status message.
func (m Model) Status() string { return m.statusMsg }

// Quitting reports whether the model has asked the program to exit.
func (m Model) Quitting() bool { return m.quitting }

// ClockOptions returns the main card's formatting options.
func (m Model) ClockOptions() clock.Options {
	return clock.Options{Hour: m.opts.HourFormat, Date: m.opts.DateFormat}
}
