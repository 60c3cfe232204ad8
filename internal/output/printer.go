package output

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
)

// Printer writes semantic output. It is safe for concurrent use.
type Printer struct {
	mu     sync.Mutex
	writer io.Writer
	styles Styles
}

// Option configures a Printer.
type Option func(*Printer)

// WithWriter sets the destination. The default is os.Stdout.
func WithWriter(w io.Writer) Option {
	return func(p *Printer) {
		if w != nil {
			p.writer = w
		}
	}
}

// WithStyles replaces the style table.
func WithStyles(styles Styles) Option {
	return func(p *Printer) {
		if styles != nil {
			p.styles = styles
		}
	}
}

// PlainText disables styling.
func PlainText() Option {
	return WithStyles(PlainStyles())
}

// NewPrinter returns a Printer, colored when the terminal supports it.
func NewPrinter(options ...Option) *Printer {
	p := &Printer{writer: os.Stdout}
	if colorAvailable() {
		p.styles = DefaultStyles()
	} else {
		p.styles = PlainStyles()
	}
	for _, opt := range options {
		opt(p)
	}
	return p
}

// Result writes an evaluation result. Empty results print nothing.
func (p *Printer) Result(text string) {
	if text == "" {
		return
	}
	p.output(SemanticResult, text)
}

// Error writes an evaluation error.
func (p *Printer) Error(err error) {
	if err == nil {
		return
	}
	p.output(SemanticError, err.Error())
}

func (p *Printer) output(semantic SemanticType, text string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	style, ok := p.styles[semantic]
	if !ok {
		style = plainStyle{}
	}
	rendered := style.Render(text)
	if !strings.HasSuffix(rendered, "\n") {
		rendered += "\n"
	}
	_, _ = fmt.Fprint(p.writer, rendered) // output errors are not actionable
}
