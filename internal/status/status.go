// Package status renders the pending / succeeded / failed indicators shown
// while an asynchronous evaluation is awaited.
package status

import (
	"io"
	"os"

	"github.com/abiosoft/ishell/v2"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Indicator texts.
const (
	PendingText   = "Pending async operation…"
	SucceededText = "Value available as _"
	FailedText    = "Operation failed"
)

// Indicator receives the lifecycle of one awaited computation: Pending once,
// then exactly one of Succeeded or Failed.
type Indicator interface {
	Pending()
	Succeeded()
	Failed()
}

var (
	textStyle    = lipgloss.NewStyle().Faint(true)
	pendingMark  = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Render("…")
	succeedMark  = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Render("✔")
	failedMark   = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Render("✖")
	noopInstance = Noop{}
)

// Auto picks an animated indicator on the shell's progress bar when w is an
// interactive terminal, and a line-per-state indicator otherwise.
func Auto(w io.Writer, bar ishell.ProgressBar) Indicator {
	if bar != nil && isTerminal(w) {
		return NewSpinner(bar)
	}
	return NewLine(w)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Noop discards every state change.
type Noop struct{}

// Pending implements Indicator.
func (Noop) Pending() {}

// Succeeded implements Indicator.
func (Noop) Succeeded() {}

// Failed implements Indicator.
func (Noop) Failed() {}

// Discard returns an Indicator that emits nothing.
func Discard() Indicator { return noopInstance }
