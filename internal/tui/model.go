// Package tui provides the interactive Gantt viewer.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/javiermolinar/planning/internal/config"
	"github.com/javiermolinar/planning/internal/gantt"
	"github.com/javiermolinar/planning/internal/locale"
	"github.com/javiermolinar/planning/internal/pill"
	"github.com/javiermolinar/planning/internal/planning"
	"github.com/javiermolinar/planning/internal/theme"
	"github.com/javiermolinar/planning/internal/tui/commands"
)

// Mode represents the current interaction mode.
type Mode int

const (
	ModeNormal Mode = iota
	ModePrompt
	ModeConfirmDelete
)

// Model is the main TUI model.
type Model struct {
	// Dependencies
	repo   planning.Repository
	config *config.Config
	logger *zap.Logger

	locale   locale.Locale
	location *time.Location
	palette  *theme.Palette

	// State
	scale    pill.Scale
	focus    time.Time
	mode     Mode
	loading  bool
	slots    []*planning.Slot
	view     gantt.View
	selected int // index into visiblePills, -1 for none
	prompt   textinput.Model
	keys     keyMap
	help     help.Model

	statusMsg string
	err       error

	width  int
	height int

	nowFunc func() time.Time
}

// ModelOption configures a Model.
type ModelOption func(*Model)

// WithNow overrides the clock used for "today".
func WithNow(now func() time.Time) ModelOption {
	return func(m *Model) {
		m.nowFunc = now
		m.focus = now().In(m.location)
	}
}

// WithLogger sets the logger used for key presses and load events.
func WithLogger(logger *zap.Logger) ModelOption {
	return func(m *Model) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// New creates a new TUI model.
func New(repo planning.Repository, cfg *config.Config, opts ...ModelOption) *Model {
	ti := textinput.New()
	ti.Placeholder = "/goto tomorrow"
	ti.Prompt = "> "
	ti.CharLimit = 64

	t, err := theme.Load(cfg.UI.Theme)
	if err != nil {
		t, _ = theme.Load("mocha")
	}

	m := &Model{
		repo:     repo,
		config:   cfg,
		logger:   zap.NewNop(),
		locale:   cfg.Locale(),
		location: cfg.Location(),
		palette:  theme.NewPalette(t),
		scale:    cfg.Scale(),
		mode:     ModeNormal,
		loading:  repo != nil,
		selected: -1,
		prompt:   ti,
		keys:     newKeyMap(),
		help:     newHelp(t),
		nowFunc:  time.Now,
		width:    100,
	}
	m.focus = time.Now().In(m.location)

	for _, opt := range opts {
		opt(m)
	}
	m.rebuildView()
	return m
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return m.load()
}

// load fetches the slots of the current window.
func (m *Model) load() tea.Cmd {
	if m.repo == nil {
		return nil
	}
	m.loading = true
	start, end := m.window()
	m.logger.Debug("loading window",
		zap.String("scale", m.scale.String()),
		zap.Time("start", start),
		zap.Time("end", end))
	return commands.LoadWindow(m.repo, start, end)
}

func (m Model) window() (start, end time.Time) {
	return planning.Window(m.scale, m.focus, m.locale.FirstWeekday)
}

// rebuildView relabels the loaded slots for the current scale and focus.
func (m *Model) rebuildView() {
	rows := planning.Rows(m.slots)
	m.view = gantt.NewView(rows, m.scale, m.focus, m.locale, m.location)
	if n := len(m.visiblePills()); m.selected >= n {
		m.selected = n - 1
	}
}

// visiblePills returns the labeled pills of the view in display order.
func (m Model) visiblePills() []pill.Pill {
	var out []pill.Pill
	for _, r := range m.view.Rows {
		out = append(out, r.Pills...)
	}
	return out
}

// selectedPill returns the selected pill, if any.
func (m Model) selectedPill() (pill.Pill, bool) {
	pills := m.visiblePills()
	if m.selected < 0 || m.selected >= len(pills) {
		return pill.Pill{}, false
	}
	return pills[m.selected], true
}

// slotByID finds a loaded slot.
func (m Model) slotByID(id int64) *planning.Slot {
	for _, s := range m.slots {
		if s.ID == id {
			return s
		}
	}
	return nil
}

// Run starts the TUI.
func Run(repo planning.Repository, cfg *config.Config, logger *zap.Logger) error {
	model := New(repo, cfg, WithLogger(logger))
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
