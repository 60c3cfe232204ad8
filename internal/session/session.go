// Package session composes the interactive loop, the async evaluation wrapper
// and the history store into one running REPL session.
package session

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/spf13/afero"

	"apprepl/internal/config"
	"apprepl/internal/evaluator"
	"apprepl/internal/history"
	"apprepl/internal/host"
	"apprepl/internal/locals"
	"apprepl/internal/logger"
	"apprepl/internal/output"
	"apprepl/internal/status"
	"apprepl/pkg/repltypes"
)

// SourceLabel identifies interactive input in evaluation requests.
const SourceLabel = "repl"

// Session is one run of the shell from startup to teardown.
type Session struct {
	id      string
	cfg     config.Config
	fs      afero.Fs
	loop    Host
	scope   *host.Scope
	eval    repltypes.EvalFunc
	history *history.Buffer
	printer *output.Printer
	status  status.Indicator
	log     *log.Logger

	newHost    HostFactory
	newID      func() string
	saveOnExit bool
	closeOnce  sync.Once
	closeErr   error
}

// Option customizes a Session before it starts.
type Option func(*Session)

// WithFs sets the filesystem used for history and the fs local.
func WithFs(fs afero.Fs) Option {
	return func(s *Session) { s.fs = fs }
}

// WithIDGenerator replaces the random session id source.
func WithIDGenerator(newID func() string) Option {
	return func(s *Session) { s.newID = newID }
}

// WithHostFactory replaces the ishell loop.
func WithHostFactory(factory HostFactory) Option {
	return func(s *Session) { s.newHost = factory }
}

// WithEvaluator replaces the built-in interpreter's evaluate hook. The hook
// is still wrapped so deferred outcomes are awaited.
func WithEvaluator(eval repltypes.EvalFunc) Option {
	return func(s *Session) { s.eval = eval }
}

// WithIndicator sets the pending/settled status indicator.
func WithIndicator(ind status.Indicator) Option {
	return func(s *Session) { s.status = ind }
}

// WithPrinter sets where results and errors are printed.
func WithPrinter(p *output.Printer) Option {
	return func(s *Session) { s.printer = p }
}

// New starts a session for cfg. In order it writes the welcome text, starts
// the host loop, wraps the evaluate hook, loads history when enabled and
// injects the locals. Any failure aborts startup.
func New(cfg config.Config, opts ...Option) (*Session, error) {
	if cfg.Stdout == nil {
		cfg.Stdout = io.Discard
	}

	s := &Session{
		cfg:     cfg,
		fs:      afero.NewOsFs(),
		scope:   host.NewScope(),
		history: history.NewBuffer(),
		newHost: NewIShellHost,
		newID:   uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.id = s.newID()
	s.log = logger.NewStyledLogger("session").With("session", s.id)
	if s.printer == nil {
		s.printer = output.NewPrinter(output.WithWriter(cfg.Stdout))
	}

	if _, err := fmt.Fprintln(s.cfg.Stdout, s.cfg.Welcome); err != nil {
		return nil, fmt.Errorf("failed to write welcome text: %w", err)
	}

	h, err := s.newHost(cfg.ReplOptions)
	if err != nil {
		return nil, err
	}
	s.loop = h

	if s.eval == nil {
		s.eval = host.New(s.scope).Evaluate
	}
	if s.status == nil {
		s.status = status.Auto(cfg.Stdout, h.ProgressBar())
	}
	s.eval = evaluator.Wrap(s.eval, s.status)

	if cfg.HistoryEnabled() {
		if err := s.loadHistory(); err != nil {
			h.Close()
			return nil, err
		}
		s.saveOnExit = true
	}

	s.scope.Inject(host.Builtins())
	s.scope.Inject(repltypes.Locals{locals.FSName: locals.FS(s.fs)})
	s.scope.Inject(cfg.Locals)

	s.log.Debug("Session started", "name", cfg.Name, "history", cfg.HistoryFilePath, "locals", cfg.LocalNames())
	return s, nil
}

func (s *Session) loadHistory() error {
	entries, err := history.Load(s.fs, s.cfg.HistoryFilePath)
	if err != nil {
		return fmt.Errorf("failed to load history %s: %w", s.cfg.HistoryFilePath, err)
	}

	for _, entry := range entries {
		s.history.Append(entry)
	}
	// readline keeps its history oldest-first.
	for i := len(entries) - 1; i >= 0; i-- {
		if err := s.loop.PushHistory(entries[i]); err != nil {
			return fmt.Errorf("failed to restore history: %w", err)
		}
	}
	s.log.Debug("History loaded", "path", s.cfg.HistoryFilePath, "entries", len(entries))
	return nil
}

// Run drives the loop until the user exits, then closes the session.
func (s *Session) Run(ctx context.Context) error {
	s.loop.Run(func(line string) {
		s.Eval(ctx, line)
	})
	return s.Close()
}

// Eval handles one input line: the command is recorded in the live history
// and evaluated through the wrapped hook, whose single result is delivered to
// report.
func (s *Session) Eval(ctx context.Context, line string) {
	command := strings.TrimSpace(line)
	if command == "" {
		return
	}
	s.history.Add(command)

	req := repltypes.Request{Command: command, Scope: s.scope, Source: SourceLabel}
	evaluator.Invoke(ctx, s.eval, req, func(value any, err error) {
		s.report(command, value, err)
	})
}

// report stores a successful value in _ and prints it. Errors are printed and
// leave _ untouched.
func (s *Session) report(command string, value any, err error) {
	if err != nil {
		s.log.Debug("Evaluation failed", "command", command, "error", err)
		s.printer.Error(err)
		return
	}
	s.scope.Set(host.LastResultName, value)
	s.printer.Result(host.Format(value))
}

// Close ends the session once: history is saved when enabled and the loop is
// closed. A failed save is logged and returned but never prevents the close.
func (s *Session) Close() error {
	s.closeOnce.Do(func() {
		if s.saveOnExit {
			err := history.Save(s.fs, s.cfg.HistoryFilePath, s.history.Entries(), s.cfg.HistorySize)
			if err != nil {
				s.log.Error("Failed to save history", "path", s.cfg.HistoryFilePath, "error", err)
				s.closeErr = fmt.Errorf("failed to save history: %w", err)
			} else {
				s.log.Debug("History saved", "path", s.cfg.HistoryFilePath, "entries", s.history.Len())
			}
		}
		s.loop.Close()
	})
	return s.closeErr
}

// ID returns the session identifier used in logs.
func (s *Session) ID() string { return s.id }

// Config returns the resolved configuration.
func (s *Session) Config() config.Config { return s.cfg }

// Scope returns the variable context commands are evaluated against.
func (s *Session) Scope() *host.Scope { return s.scope }

// History returns the live history buffer.
func (s *Session) History() *history.Buffer { return s.history }
