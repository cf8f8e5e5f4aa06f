// Package input parses the command prompt of the Gantt viewer.
package input

import "strings"

// PromptCommand describes a command suggestion entry.
type PromptCommand struct {
	Name        string
	Usage       string
	Description string
}

// Commands lists the prompt commands the viewer understands.
var Commands = []PromptCommand{
	{Name: "/goto", Usage: "/goto <date>", Description: "Jump to a date (today, next-monday, 2024-03-14)"},
	{Name: "/scale", Usage: "/scale <day|week|month|year>", Description: "Change the scale"},
	{Name: "/today", Usage: "/today", Description: "Jump to today"},
	{Name: "/copy", Usage: "/copy", Description: "Copy visible labels"},
}

// PromptMatchingCommands returns commands that match the current input prefix.
func PromptMatchingCommands(input string, commands []PromptCommand) []PromptCommand {
	if !strings.HasPrefix(strings.TrimSpace(input), "/") {
		return nil
	}
	if strings.Contains(input, " ") {
		return nil
	}

	prefix := strings.ToLower(strings.TrimSpace(input))
	matches := make([]PromptCommand, 0, len(commands))
	for _, cmd := range commands {
		if strings.HasPrefix(cmd.Name, prefix) {
			matches = append(matches, cmd)
		}
	}
	return matches
}

// PromptAutocomplete returns the first matching command and whether it exists.
func PromptAutocomplete(input string, commands []PromptCommand) (string, bool) {
	matches := PromptMatchingCommands(input, commands)
	if len(matches) == 0 {
		return "", false
	}
	if matches[0].Usage == matches[0].Name {
		return matches[0].Name, true
	}
	return matches[0].Name + " ", true
}

// ParsePrompt splits a prompt line into a lowercase command name and its
// argument. Input without a leading slash is treated as a /goto argument.
func ParsePrompt(line string) (name, arg string) {
	line = strings.TrimSpace(line)
	if line == "" {
		return "", ""
	}
	if !strings.HasPrefix(line, "/") {
		return "/goto", line
	}
	name, arg, _ = strings.Cut(line, " ")
	return strings.ToLower(name), strings.TrimSpace(arg)
}
