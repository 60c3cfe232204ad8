// Package config resolves a session's configuration in two phases: raw
// overrides are collected into Options, then Resolve computes an immutable
// Config from them before any component runs.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/abiosoft/readline"

	"apprepl/internal/history"
	"apprepl/pkg/repltypes"
)

// DefaultPromptSuffix follows the prompt prefix.
const DefaultPromptSuffix = "❯"

// ErrMissingOption matches every MissingOptionError.
var ErrMissingOption = errors.New("missing option")

// MissingOptionError reports an absent mandatory option.
type MissingOptionError struct {
	Option string
}

func (e *MissingOptionError) Error() string {
	return fmt.Sprintf("missing option %q", e.Option)
}

// Is makes errors.Is(err, ErrMissingOption) hold.
func (e *MissingOptionError) Is(target error) bool {
	return target == ErrMissingOption
}

// Platform carries process-wide facts resolved once at startup.
type Platform struct {
	HomeDir string
}

// DetectPlatform resolves the platform defaults of the current process.
func DetectPlatform() (Platform, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return Platform{}, fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return Platform{HomeDir: home}, nil
}

// Options are raw overrides. Zero values mean "use the default"; the pointer
// fields distinguish an explicit zero from an absent value.
type Options struct {
	Name            string
	HistoryFileName string
	HistoryFileDir  string
	// HistoryFilePath overrides HistoryFileDir/HistoryFileName. An explicit
	// empty string disables history persistence.
	HistoryFilePath *string
	// HistorySize of zero or less disables history persistence.
	HistorySize  *int
	Locals       repltypes.Locals
	Welcome      *string
	PromptPrefix string
	PromptSuffix *string
	Prompt       string
	ReplOptions  *readline.Config
	Stdout       io.Writer
}

// Config is the fully resolved session configuration. It is built by Resolve
// and must be treated as read-only.
type Config struct {
	Name            string
	HistoryFileName string
	HistoryFileDir  string
	HistoryFilePath string
	HistorySize     int
	Locals          repltypes.Locals
	Welcome         string
	PromptPrefix    string
	PromptSuffix    string
	Prompt          string
	ReplOptions     *readline.Config
	Stdout          io.Writer
}

// Resolve computes the Config for opts. Name is mandatory.
func Resolve(opts Options, platform Platform) (Config, error) {
	if opts.Name == "" {
		return Config{}, &MissingOptionError{Option: "name"}
	}

	cfg := Config{
		Name:            opts.Name,
		HistoryFileName: opts.HistoryFileName,
		HistoryFileDir:  opts.HistoryFileDir,
		HistorySize:     history.DefaultSize,
		PromptPrefix:    opts.PromptPrefix,
		PromptSuffix:    DefaultPromptSuffix,
		Prompt:          opts.Prompt,
		Stdout:          opts.Stdout,
	}

	if cfg.HistoryFileName == "" {
		cfg.HistoryFileName = DefaultHistoryFileName(cfg.Name)
	}
	if cfg.HistoryFileDir == "" {
		cfg.HistoryFileDir = platform.HomeDir
	}
	if opts.HistoryFilePath != nil {
		cfg.HistoryFilePath = *opts.HistoryFilePath
	} else {
		cfg.HistoryFilePath = filepath.Join(cfg.HistoryFileDir, cfg.HistoryFileName)
	}
	if opts.HistorySize != nil {
		cfg.HistorySize = *opts.HistorySize
	}

	cfg.Locals = make(repltypes.Locals, len(opts.Locals))
	for name, value := range opts.Locals {
		cfg.Locals[name] = value
	}

	if opts.Welcome != nil {
		cfg.Welcome = *opts.Welcome
	} else {
		cfg.Welcome = DefaultWelcome(cfg.Name, cfg.Locals)
	}

	if cfg.PromptPrefix == "" {
		cfg.PromptPrefix = cfg.Name
	}
	if opts.PromptSuffix != nil {
		cfg.PromptSuffix = *opts.PromptSuffix
	}
	if cfg.Prompt == "" {
		cfg.Prompt = DefaultPrompt(cfg.PromptPrefix, cfg.PromptSuffix)
	}

	if opts.ReplOptions != nil {
		replOptions := *opts.ReplOptions
		cfg.ReplOptions = &replOptions
	} else {
		cfg.ReplOptions = &readline.Config{}
	}
	if cfg.ReplOptions.Prompt == "" {
		cfg.ReplOptions.Prompt = cfg.Prompt
	}

	if cfg.Stdout == nil {
		cfg.Stdout = os.Stdout
	}

	return cfg, nil
}

// HistoryEnabled reports whether history is loaded at startup and saved at
// session end.
func (c Config) HistoryEnabled() bool {
	return c.HistoryFilePath != "" && c.HistorySize > 0
}

// LocalNames returns the configured local names in sorted order.
func (c Config) LocalNames() []string {
	return sortedNames(c.Locals)
}

// DefaultHistoryFileName is the history file name used when none is given.
func DefaultHistoryFileName(name string) string {
	return "." + name + "_repl_history"
}

func sortedNames(locals repltypes.Locals) []string {
	names := make([]string, 0, len(locals))
	for name := range locals {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
