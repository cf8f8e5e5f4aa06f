package ui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// Color definitions for consistent styling across the UI.
var (
	// Row names: bold cyan
	colorRow = color.New(color.FgCyan, color.Bold)

	// Open shifts: yellow so unassigned work stands out
	colorOpen = color.New(color.FgYellow, color.Bold)

	// Headers: bold
	colorHeader = color.New(color.Bold)

	// Hours: green
	colorHours = color.New(color.FgGreen)

	// Warnings: bold red
	colorWarning = color.New(color.FgRed, color.Bold)

	// Muted: for secondary information
	colorMuted = color.New(color.FgWhite, color.Faint)
)

// termWidth returns the terminal width, or a default if detection fails.
func termWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80 // sensible default
	}
	return width
}

// DisableColor disables all color output, charts included.
func DisableColor() {
	color.NoColor = true
	lipgloss.SetColorProfile(termenv.Ascii)
}

// formatRow formats a row name, highlighting open shifts.
func formatRow(name string, open bool) string {
	if open {
		return colorOpen.Sprint(name)
	}
	return colorRow.Sprint(name)
}

// formatHeader formats text as a header.
func formatHeader(s string) string {
	return colorHeader.Sprint(s)
}

// formatHours formats an allocated hours total.
func formatHours(s string) string {
	return colorHours.Sprint(s)
}

// formatMuted formats text as secondary/muted.
func formatMuted(s string) string {
	return colorMuted.Sprint(s)
}

// formatWarning formats text as a warning.
func formatWarning(s string) string {
	return colorWarning.Sprint(s)
}
