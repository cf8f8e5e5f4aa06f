package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap holds the bindings of normal mode.
type keyMap struct {
	Day    key.Binding
	Week   key.Binding
	Month  key.Binding
	Year   key.Binding
	Prev   key.Binding
	Next   key.Binding
	Today  key.Binding
	Down   key.Binding
	Up     key.Binding
	Delete key.Binding
	Copy   key.Binding
	Reload key.Binding
	Goto   key.Binding
	Prompt key.Binding
	Clear  key.Binding
	Help   key.Binding
	Quit   key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Day:    key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "day")),
		Week:   key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "week")),
		Month:  key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "month")),
		Year:   key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "year")),
		Prev:   key.NewBinding(key.WithKeys("h", "left"), key.WithHelp("h/←", "previous")),
		Next:   key.NewBinding(key.WithKeys("l", "right"), key.WithHelp("l/→", "next")),
		Today:  key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "today")),
		Down:   key.NewBinding(key.WithKeys("j", "down", "tab"), key.WithHelp("j/↓", "select next")),
		Up:     key.NewBinding(key.WithKeys("k", "up", "shift+tab"), key.WithHelp("k/↑", "select previous")),
		Delete: key.NewBinding(key.WithKeys("x", "delete"), key.WithHelp("x", "delete slot")),
		Copy:   key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "copy labels")),
		Reload: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
		Goto:   key.NewBinding(key.WithKeys("g", ":"), key.WithHelp("g", "go to date")),
		Prompt: key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "command")),
		Clear:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "clear")),
		Help:   key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Week, k.Prev, k.Next, k.Today, k.Copy, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Day, k.Week, k.Month, k.Year},
		{k.Prev, k.Next, k.Today, k.Goto},
		{k.Down, k.Up, k.Delete, k.Clear},
		{k.Copy, k.Reload, k.Prompt, k.Help, k.Quit},
	}
}
