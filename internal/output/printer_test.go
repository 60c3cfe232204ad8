package output

import (
	"bytes"
	"errors"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
)

func TestPrinter_PlainText(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(WithWriter(&buf), PlainText())

	p.Result("42")
	p.Result("")
	p.Error(errors.New("nope"))
	p.Error(nil)

	assert.Equal(t, "42\n✗ nope\n", buf.String())
}

func TestPrinter_Styled(t *testing.T) {
	lipgloss.SetColorProfile(termenv.ANSI256)
	defer lipgloss.SetColorProfile(termenv.Ascii)

	var buf bytes.Buffer
	p := NewPrinter(WithWriter(&buf), WithStyles(DefaultStyles()))

	p.Result("value")
	p.Error(errors.New("failure"))

	assert.NotEqual(t, "value\nfailure\n", buf.String(), "expected escape sequences")
	assert.Equal(t, "value\nfailure\n", ansi.Strip(buf.String()))
}

func TestPrinter_MultilineResult(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(WithWriter(&buf), PlainText())

	p.Result("- a\n- b")

	assert.Equal(t, "- a\n- b\n", buf.String())
}

func TestNewPrinter_AsciiProfileIsPlain(t *testing.T) {
	lipgloss.SetColorProfile(termenv.Ascii)

	var buf bytes.Buffer
	NewPrinter(WithWriter(&buf)).Error(errors.New("x"))

	assert.Equal(t, "✗ x\n", buf.String())
}
