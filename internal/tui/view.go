package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/planning/internal/gantt"
	"github.com/javiermolinar/planning/internal/pill"
	"github.com/javiermolinar/planning/internal/theme"
	"github.com/javiermolinar/planning/internal/tui/input"
)

// View renders the model.
func (m Model) View() string {
	var b strings.Builder

	var selectedID int64
	p, hasSelection := m.selectedPill()
	if hasSelection {
		selectedID = p.ID
	}

	b.WriteString(gantt.RenderView(m.view, gantt.Options{
		Width:        m.width,
		Locale:       m.locale,
		Location:     m.location,
		Palette:      m.palette,
		Now:          m.nowFunc(),
		ShowTotals:   true,
		SelectedSlot: selectedID,
	}))
	b.WriteString("\n")

	if hasSelection {
		b.WriteString(m.renderSelection(p))
		b.WriteString("\n")
	}

	b.WriteString(m.renderFooter())
	return b.String()
}

// renderSelection shows the full label and details of the selected pill,
// which the chart may have truncated.
func (m Model) renderSelection(p pill.Pill) string {
	accent := lipgloss.NewStyle().Foreground(m.palette.Accent).Bold(true)
	muted := lipgloss.NewStyle().Foreground(m.palette.FgMuted)

	label := p.Label
	if label == "" {
		label = p.Interval.DisplayName
	}
	details := fmt.Sprintf("%s → %s · %s allocated",
		m.locale.FormatDate(p.Interval.Start)+" "+m.locale.FormatTime(p.Interval.Start),
		m.locale.FormatDate(p.Interval.End)+" "+m.locale.FormatTime(p.Interval.End),
		pill.Duration(p.Interval.AllocatedHours))
	if s := m.slotByID(p.ID); s != nil {
		details = s.RowName() + " · " + details
	}
	return accent.Render(label) + "\n" + muted.Render(details)
}

func (m Model) renderFooter() string {
	muted := lipgloss.NewStyle().Foreground(m.palette.FgMuted)
	errStyle := lipgloss.NewStyle().Foreground(m.palette.Today)

	switch m.mode {
	case ModePrompt:
		var b strings.Builder
		b.WriteString(m.prompt.View())
		for _, c := range input.PromptMatchingCommands(m.prompt.Value(), input.Commands) {
			b.WriteString("\n")
			b.WriteString(muted.Render(fmt.Sprintf("  %-28s %s", c.Usage, c.Description)))
		}
		return b.String()
	case ModeConfirmDelete:
		p, _ := m.selectedPill()
		return errStyle.Render(fmt.Sprintf("Delete %q? (y/n)", p.Interval.DisplayName))
	}

	if m.err != nil {
		return errStyle.Render("Error: " + m.err.Error())
	}
	if m.loading {
		return muted.Render("Loading…")
	}
	if m.statusMsg != "" {
		return muted.Render(m.statusMsg)
	}
	if m.help.ShowAll {
		var b strings.Builder
		b.WriteString(m.help.View(m.keys))
		b.WriteString("\n\n")
		for _, c := range input.Commands {
			b.WriteString(muted.Render(fmt.Sprintf("%-28s %s", c.Usage, c.Description)))
			b.WriteString("\n")
		}
		return strings.TrimRight(b.String(), "\n")
	}
	return m.help.View(m.keys)
}

// newHelp styles the key help with theme colors.
func newHelp(t *theme.Theme) help.Model {
	h := help.New()
	keyStyle := lipgloss.NewStyle().Foreground(theme.Color(t.Accent))
	descStyle := lipgloss.NewStyle().Foreground(theme.Color(t.FgMuted))
	sepStyle := lipgloss.NewStyle().Foreground(theme.Color(t.Border))
	h.Styles.ShortKey = keyStyle
	h.Styles.ShortDesc = descStyle
	h.Styles.ShortSeparator = sepStyle
	h.Styles.FullKey = keyStyle
	h.Styles.FullDesc = descStyle
	h.Styles.FullSeparator = sepStyle
	h.Styles.Ellipsis = sepStyle
	return h
}
