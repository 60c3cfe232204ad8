package status

import (
	"bytes"
	"strings"
	"testing"

	"github.com/abiosoft/ishell/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
)

// fakeBar records the progress bar calls made by Spinner. Methods Spinner
// never uses are left to the embedded nil interface.
type fakeBar struct {
	ishell.ProgressBar
	calls []string
	final string
}

func (f *fakeBar) Indeterminate(b bool) {
	if b {
		f.calls = append(f.calls, "indeterminate")
	}
}
func (f *fakeBar) Prefix(string) {}
func (f *fakeBar) Suffix(s string) { f.calls = append(f.calls, "suffix:"+ansi.Strip(s)) }
func (f *fakeBar) Final(s string) { f.final = ansi.Strip(s) }
func (f *fakeBar) Start() { f.calls = append(f.calls, "start") }
func (f *fakeBar) Stop() { f.calls = append(f.calls, "stop:"+f.final) }

func TestLine(t *testing.T) {
	var buf bytes.Buffer
	l := NewLine(&buf)

	l.Pending()
	l.Succeeded()
	l.Failed()

	lines := strings.Split(strings.TrimRight(ansi.Strip(buf.String()), "\n"), "\n")
	assert.Equal(t, []string{
		"… " + PendingText,
		"✔ " + SucceededText,
		"✖ " + FailedText,
	}, lines)
}

func TestSpinner(t *testing.T) {
	tests := []struct {
		name   string
		settle func(s *Spinner)
		final  string
	}{
		{name: "succeeded", settle: (*Spinner).Succeeded, final: "✔ " + SucceededText},
		{name: "failed", settle: (*Spinner).Failed, final: "✖ " + FailedText},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bar := &fakeBar{}
			s := NewSpinner(bar)

			s.Pending()
			tt.settle(s)
			tt.settle(s)

			assert.Equal(t, []string{
				"indeterminate",
				"suffix: " + PendingText,
				"start",
				"stop:" + tt.final,
			}, bar.calls)
		})
	}
}

func TestSpinner_SettleWithoutPendingIsIgnored(t *testing.T) {
	bar := &fakeBar{}
	NewSpinner(bar).Succeeded()

	assert.Empty(t, bar.calls)
}

func TestAuto_NonTerminalUsesLine(t *testing.T) {
	var buf bytes.Buffer

	assert.IsType(t, &Line{}, Auto(&buf, &fakeBar{}))
	assert.IsType(t, &Line{}, Auto(&buf, nil))
}

func TestDiscard(t *testing.T) {
	ind := Discard()
	ind.Pending()
	ind.Succeeded()
	ind.Failed()
}
