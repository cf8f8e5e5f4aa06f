package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/javiermolinar/planning/internal/dateutil"
	"github.com/javiermolinar/planning/internal/pill"
	"github.com/javiermolinar/planning/internal/planning"
	"github.com/javiermolinar/planning/internal/tui/commands"
	"github.com/javiermolinar/planning/internal/tui/input"
)

// handleKeyMsg handles keyboard input.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.logger.Debug("key press", zap.String("key", msg.String()), zap.Int("mode", int(m.mode)))

	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.mode {
	case ModePrompt:
		return m.handlePromptKeys(msg)
	case ModeConfirmDelete:
		return m.handleConfirmKeys(msg)
	}
	return m.handleNormalKeys(msg)
}

func (m Model) handleNormalKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.Day):
		return m.setScale(pill.ScaleDay)
	case key.Matches(msg, m.keys.Week):
		return m.setScale(pill.ScaleWeek)
	case key.Matches(msg, m.keys.Month):
		return m.setScale(pill.ScaleMonth)
	case key.Matches(msg, m.keys.Year):
		return m.setScale(pill.ScaleYear)
	case key.Matches(msg, m.keys.Prev):
		return m.shift(-1)
	case key.Matches(msg, m.keys.Next):
		return m.shift(1)
	case key.Matches(msg, m.keys.Today):
		return m.jumpTo(m.nowFunc().In(m.location))
	case key.Matches(msg, m.keys.Down):
		m.moveSelection(1)
		return m, nil
	case key.Matches(msg, m.keys.Up):
		m.moveSelection(-1)
		return m, nil
	case key.Matches(msg, m.keys.Clear):
		m.selected = -1
		m.err = nil
		m.help.ShowAll = false
		return m, nil
	case key.Matches(msg, m.keys.Copy):
		return m, commands.CopyLabels(m.view.Labels())
	case key.Matches(msg, m.keys.Delete):
		if _, ok := m.selectedPill(); !ok {
			m.statusMsg = "Select a slot first"
			return m, commands.ClearStatusAfter()
		}
		m.mode = ModeConfirmDelete
		return m, nil
	case key.Matches(msg, m.keys.Reload):
		cmd := m.load()
		return m, cmd
	case key.Matches(msg, m.keys.Goto), key.Matches(msg, m.keys.Prompt):
		m.mode = ModePrompt
		m.prompt.SetValue("")
		if key.Matches(msg, m.keys.Prompt) {
			m.prompt.SetValue("/")
			m.prompt.CursorEnd()
		}
		cmd := m.prompt.Focus()
		return m, cmd
	}
	return m, nil
}

func (m Model) handleConfirmKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.mode = ModeNormal
	switch msg.String() {
	case "y", "Y", "enter":
		p, ok := m.selectedPill()
		if !ok || m.repo == nil {
			return m, nil
		}
		return m, commands.DeleteSlot(m.repo, p.ID)
	}
	return m, nil
}

func (m Model) handlePromptKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = ModeNormal
		m.prompt.Blur()
		return m, nil
	case "tab":
		if completed, ok := input.PromptAutocomplete(m.prompt.Value(), input.Commands); ok {
			m.prompt.SetValue(completed)
			m.prompt.CursorEnd()
		}
		return m, nil
	case "enter":
		line := m.prompt.Value()
		m.mode = ModeNormal
		m.prompt.Blur()
		m.prompt.SetValue("")
		return m.executePrompt(line)
	}

	var cmd tea.Cmd
	m.prompt, cmd = m.prompt.Update(msg)
	return m, cmd
}

// executePrompt runs a prompt line such as "/scale month" or "tomorrow".
func (m Model) executePrompt(line string) (tea.Model, tea.Cmd) {
	name, arg := input.ParsePrompt(line)
	switch name {
	case "":
		return m, nil
	case "/today":
		return m.jumpTo(m.nowFunc().In(m.location))
	case "/copy":
		return m, commands.CopyLabels(m.view.Labels())
	case "/scale":
		s, err := pill.ParseScale(arg)
		if err != nil {
			m.statusMsg = err.Error()
			return m, commands.ClearStatusAfter()
		}
		return m.setScale(s)
	case "/goto":
		t, err := dateutil.ParseRelativeDate(arg, m.nowFunc().In(m.location))
		if err != nil {
			m.statusMsg = err.Error()
			return m, commands.ClearStatusAfter()
		}
		return m.jumpTo(t)
	}
	m.statusMsg = fmt.Sprintf("Unknown command %s", name)
	return m, commands.ClearStatusAfter()
}

func (m Model) setScale(s pill.Scale) (tea.Model, tea.Cmd) {
	if s == m.scale {
		return m, nil
	}
	m.scale = s
	m.selected = -1
	m.rebuildView()
	cmd := m.load()
	return m, cmd
}

func (m Model) shift(n int) (tea.Model, tea.Cmd) {
	return m.jumpTo(planning.Shift(m.scale, m.focus, n))
}

// jumpTo moves the focus. A reload is only needed when the window changes.
func (m Model) jumpTo(t time.Time) (tea.Model, tea.Cmd) {
	before, _ := m.window()
	m.focus = t
	after, _ := m.window()
	if before.Equal(after) {
		return m, nil
	}
	m.selected = -1
	m.rebuildView()
	cmd := m.load()
	return m, cmd
}

func (m *Model) moveSelection(delta int) {
	n := len(m.visiblePills())
	if n == 0 {
		m.selected = -1
		return
	}
	if m.selected < 0 {
		if delta > 0 {
			m.selected = 0
		} else {
			m.selected = n - 1
		}
		return
	}
	m.selected = (m.selected + delta + n) % n
}
