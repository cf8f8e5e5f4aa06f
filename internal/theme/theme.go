// Package theme provides color themes for the Gantt views.
package theme

import (
	"embed"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/pelletier/go-toml/v2"
)

//go:embed embedded/*.toml
var embeddedThemes embed.FS

// Theme holds all colors for a Gantt theme.
type Theme struct {
	Name        string `toml:"name"`
	Bg          string `toml:"bg"`           // Base background
	BgHighlight string `toml:"bg_highlight"` // Header and alternating rows
	Fg          string `toml:"fg"`           // Primary foreground
	FgMuted     string `toml:"fg_muted"`     // Grid lines, empty rows
	Accent      string `toml:"accent"`       // Title, row names
	Pill        string `toml:"pill"`         // Assigned slots
	Open        string `toml:"open"`         // Open shifts
	Today       string `toml:"today"`        // Today marker
	Border      string `toml:"border"`
}

// Color returns a lipgloss.Color for the given hex string.
func Color(hex string) lipgloss.Color {
	return lipgloss.Color(hex)
}

// Load loads a theme by name from embedded files.
// Falls back to mocha if the theme is not found.
func Load(name string) (*Theme, error) {
	if name == "" {
		name = "mocha"
	}
	name = strings.ToLower(name)

	data, err := embeddedThemes.ReadFile("embedded/" + name + ".toml")
	if err != nil {
		if name != "mocha" {
			return Load("mocha")
		}
		return nil, fmt.Errorf("loading theme %q: %w", name, err)
	}
	return parse(name, data)
}

// LoadFile loads a custom theme from a TOML file. Missing colors are taken
// from mocha.
func LoadFile(path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading theme file: %w", err)
	}
	return parse(path, data)
}

func parse(name string, data []byte) (*Theme, error) {
	var t Theme
	if err := toml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("parsing theme %q: %w", name, err)
	}
	if t.Name != "mocha" {
		base, err := Load("mocha")
		if err != nil {
			return nil, err
		}
		t.fillFrom(base)
	}
	if t.Name == "" {
		t.Name = name
	}
	return &t, nil
}

func (t *Theme) fillFrom(base *Theme) {
	t.Bg = coalesce(t.Bg, base.Bg)
	t.BgHighlight = coalesce(t.BgHighlight, base.BgHighlight)
	t.Fg = coalesce(t.Fg, base.Fg)
	t.FgMuted = coalesce(t.FgMuted, base.FgMuted)
	t.Accent = coalesce(t.Accent, base.Accent)
	t.Pill = coalesce(t.Pill, base.Pill)
	t.Open = coalesce(t.Open, base.Open)
	t.Today = coalesce(t.Today, base.Today)
	t.Border = coalesce(t.Border, base.Border, base.FgMuted)
}

func coalesce(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// Available returns a list of available theme names.
func Available() []string {
	return []string{"mocha", "latte"}
}

// IsAvailable reports whether a theme name is available.
func IsAvailable(name string) bool {
	name = strings.ToLower(name)
	for _, themeName := range Available() {
		if themeName == name {
			return true
		}
	}
	return false
}
