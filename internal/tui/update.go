package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/javiermolinar/planning/internal/tui/commands"
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.prompt.Width = max(msg.Width-4, 10)
		m.help.Width = msg.Width
		return m, nil

	case commands.WindowLoadedMsg:
		start, end := m.window()
		if !msg.Start.Equal(start) || !msg.End.Equal(end) {
			// A newer load is in flight.
			m.logger.Debug("dropping stale window", zap.Time("start", msg.Start))
			return m, nil
		}
		m.loading = false
		m.err = nil
		m.slots = msg.Slots
		m.rebuildView()
		m.logger.Debug("window loaded", zap.Int("slots", len(msg.Slots)))
		return m, nil

	case commands.SlotDeletedMsg:
		m.logger.Info("slot deleted", zap.Int64("id", msg.ID))
		m.statusMsg = fmt.Sprintf("Deleted slot %d", msg.ID)
		cmd := m.load()
		return m, tea.Batch(cmd, commands.ClearStatusAfter())

	case commands.CopiedMsg:
		m.statusMsg = fmt.Sprintf("Copied %d labels", msg.Count)
		return m, commands.ClearStatusAfter()

	case commands.StatusMsgCmd:
		m.statusMsg = msg.Msg
		return m, commands.ClearStatusAfter()

	case commands.ClearStatusMsg:
		m.statusMsg = ""
		return m, nil

	case commands.ErrMsg:
		m.loading = false
		m.err = msg.Err
		m.logger.Error("tui command failed", zap.Error(msg.Err))
		return m, nil
	}

	if m.mode == ModePrompt {
		var cmd tea.Cmd
		m.prompt, cmd = m.prompt.Update(msg)
		return m, cmd
	}
	return m, nil
}
