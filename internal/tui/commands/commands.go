// Package commands provides TUI command constructors and message types.
package commands

import (
	"context"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/planning/internal/planning"
)

// statusTimeout is how long a status message stays in the footer.
const statusTimeout = 3 * time.Second

// WindowLoadedMsg is sent when the slots of a window are loaded.
type WindowLoadedMsg struct {
	Start time.Time
	End   time.Time
	Slots []*planning.Slot
}

// SlotDeletedMsg is sent after a slot has been removed.
type SlotDeletedMsg struct {
	ID int64
}

// CopiedMsg is sent when labels were written to the clipboard.
type CopiedMsg struct {
	Count int
}

// ErrMsg is sent when an error occurs.
type ErrMsg struct {
	Err error
}

// StatusMsgCmd is sent for temporary status messages.
type StatusMsgCmd struct {
	Msg string
}

// ClearStatusMsg is sent to clear the status message.
type ClearStatusMsg struct{}

// LoadWindow loads the slots overlapping [start, end).
func LoadWindow(repo planning.Repository, start, end time.Time) tea.Cmd {
	return func() tea.Msg {
		slots, err := repo.ListSlotsInRange(context.Background(), start, end)
		if err != nil {
			return ErrMsg{Err: err}
		}
		return WindowLoadedMsg{Start: start, End: end, Slots: slots}
	}
}

// DeleteSlot removes a slot from the repository.
func DeleteSlot(repo planning.Repository, id int64) tea.Cmd {
	return func() tea.Msg {
		if err := repo.DeleteSlot(context.Background(), id); err != nil {
			return ErrMsg{Err: err}
		}
		return SlotDeletedMsg{ID: id}
	}
}

// writeClipboard is replaced in tests.
var writeClipboard = clipboard.WriteAll

// CopyLabels writes labels to the clipboard, one per line.
func CopyLabels(labels []string) tea.Cmd {
	return func() tea.Msg {
		if len(labels) == 0 {
			return StatusMsgCmd{Msg: "No labels to copy"}
		}
		if err := writeClipboard(strings.Join(labels, "\n")); err != nil {
			return ErrMsg{Err: err}
		}
		return CopiedMsg{Count: len(labels)}
	}
}

// ClearStatusAfter clears the status message after a short delay.
func ClearStatusAfter() tea.Cmd {
	return tea.Tick(statusTimeout, func(time.Time) tea.Msg {
		return ClearStatusMsg{}
	})
}
