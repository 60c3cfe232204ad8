// Package output prints evaluation results and errors to the session's
// output stream, styled with lipgloss when the terminal supports color.
package output

// SemanticType names the role of a piece of output so it can be styled
// consistently.
type SemanticType string

const (
	// SemanticResult is an evaluation result.
	SemanticResult SemanticType = "result"
	// SemanticError is an evaluation error.
	SemanticError SemanticType = "error"
)

// TextStyle renders text. lipgloss.Style satisfies it.
type TextStyle interface {
	Render(strs ...string) string
}
