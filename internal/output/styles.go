package output

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Styles maps semantic types to text styles.
type Styles map[SemanticType]TextStyle

// DefaultStyles returns the colored styles used on capable terminals.
func DefaultStyles() Styles {
	return Styles{
		SemanticResult: lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
		SemanticError:  lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
	}
}

// plainStyle prefixes text so errors stay recognizable without color.
type plainStyle struct {
	prefix string
}

func (p plainStyle) Render(strs ...string) string {
	out := p.prefix
	for _, s := range strs {
		out += s
	}
	return out
}

// PlainStyles returns the styles used when color is unavailable.
func PlainStyles() Styles {
	return Styles{
		SemanticResult: plainStyle{},
		SemanticError:  plainStyle{prefix: "✗ "},
	}
}

// colorAvailable reports whether the detected color profile can render
// styles.
func colorAvailable() bool {
	return lipgloss.ColorProfile() != termenv.Ascii
}
