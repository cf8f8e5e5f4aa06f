package input

import "testing"

func TestPromptMatchingCommands(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{name: "no_slash", input: "goto", want: 0},
		{name: "empty", input: "", want: 0},
		{name: "slash_only", input: "/", want: len(Commands)},
		{name: "full", input: "/scale", want: 1},
		{name: "prefix", input: "/g", want: 1},
		{name: "case_insensitive", input: "/SC", want: 1},
		{name: "with_space", input: "/scale week", want: 0},
		{name: "unknown", input: "/plan", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PromptMatchingCommands(tt.input, Commands)
			if len(got) != tt.want {
				t.Fatalf("matches = %d, want %d", len(got), tt.want)
			}
		})
	}
}

func TestPromptAutocomplete(t *testing.T) {
	tests := []struct {
		input string
		want  string
		ok    bool
	}{
		{input: "/g", want: "/goto ", ok: true},
		{input: "/to", want: "/today", ok: true},
		{input: "/x", ok: false},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := PromptAutocomplete(tt.input, Commands)
			if ok != tt.ok || got != tt.want {
				t.Fatalf("PromptAutocomplete(%q) = %q, %v; want %q, %v", tt.input, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestParsePrompt(t *testing.T) {
	tests := []struct {
		line, name, arg string
	}{
		{line: "", name: "", arg: ""},
		{line: "  /Scale  Month ", name: "/scale", arg: "Month"},
		{line: "/today", name: "/today", arg: ""},
		{line: "2024-03-14", name: "/goto", arg: "2024-03-14"},
		{line: "/goto next-monday", name: "/goto", arg: "next-monday"},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			name, arg := ParsePrompt(tt.line)
			if name != tt.name || arg != tt.arg {
				t.Fatalf("ParsePrompt(%q) = %q, %q; want %q, %q", tt.line, name, arg, tt.name, tt.arg)
			}
		})
	}
}
