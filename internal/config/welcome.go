package config

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"apprepl/pkg/repltypes"
)

var (
	dim       = lipgloss.NewStyle().Faint(true)
	dimBold   = dim.Bold(true)
	dimItalic = dim.Italic(true)
)

// DefaultWelcome is the banner written when no welcome text is configured.
// Every styled fragment is a single line so lipgloss never pads lines.
func DefaultWelcome(name string, locals repltypes.Locals) string {
	lines := []string{
		"",
		dim.Render("Welcome to ") + dimBold.Render(name) + dim.Render("’s REPL."),
		"",
		dim.Render("- Async operations hold the output until result"),
		dim.Render("- Result of previous command (sync or async) is stored in ") + dimItalic.Render("_"),
		dim.Render("- ") + dimItalic.Render("fs") + dim.Render(" gives access to the filesystem (try ") + dimItalic.Render("fs.ls") + dim.Render(")"),
	}
	if names := sortedNames(locals); len(names) > 0 {
		lines = append(lines, dim.Render("- Additional variables: "+strings.Join(names, ", ")))
	}
	lines = append(lines, "")
	return strings.Join(lines, "\n")
}

// DefaultPrompt renders prefix and suffix the way the default prompt does.
func DefaultPrompt(prefix, suffix string) string {
	return dim.Render(prefix) + dimBold.Render(suffix) + " "
}
