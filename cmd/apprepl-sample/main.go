// Package main is a sample session exposing one synchronous and two
// asynchronous commands.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"apprepl/internal/config"
	"apprepl/internal/logger"
	"apprepl/internal/session"
	"apprepl/pkg/repltypes"
)

const sampleName = "sample"

var (
	logLevel string
	delay    time.Duration
)

var rootCmd = &cobra.Command{
	Use:   "apprepl-sample",
	Short: "Sample apprepl session with sync and async commands",
	Args:  cobra.NoArgs,
	Run:   runSample,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().StringVar(&logLevel, "log-level", "", "Set log level (debug|info|warn|error) [default: warn]")
	rootCmd.Flags().DurationVar(&delay, "delay", 5*time.Second, "How long the async commands take")
}

// sampleLocals returns the commands of the sample session. The async ones
// settle after d.
func sampleLocals(d time.Duration) repltypes.Locals {
	return repltypes.Locals{
		"hello": repltypes.Sync(func(call repltypes.Call) (any, error) {
			return greeting(call.Args), nil
		}),
		"asyncHello": repltypes.Async(func(ctx context.Context, call repltypes.Call) (any, error) {
			if err := wait(ctx, d); err != nil {
				return nil, err
			}
			return greeting(call.Args), nil
		}),
		"asyncFail": repltypes.Async(func(ctx context.Context, _ repltypes.Call) (any, error) {
			if err := wait(ctx, d); err != nil {
				return nil, err
			}
			return nil, errors.New("async operation failed on purpose")
		}),
	}
}

func greeting(args []string) string {
	who := "world"
	if len(args) > 0 {
		who = strings.Join(args, " ")
	}
	return "Hello, " + who + "!"
}

func wait(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func sampleWelcome(locals repltypes.Locals, d time.Duration) string {
	hint := lipgloss.NewStyle().Faint(true).Italic(true)
	return config.DefaultWelcome(sampleName, locals) + "\n" +
		hint.Render("Try: hello, asyncHello you, asyncFail (async commands take "+d.String()+")")
}

func runSample(_ *cobra.Command, _ []string) {
	if err := logger.Configure(logLevel, ""); err != nil {
		fmt.Fprintf(os.Stderr, "Error configuring logger: %v\n", err)
		os.Exit(1)
	}

	platform, err := config.DetectPlatform()
	if err != nil {
		logger.Fatal("Failed to detect platform", "error", err)
	}

	locals := sampleLocals(delay)
	welcome := sampleWelcome(locals, delay)
	cfg, err := config.Resolve(config.Options{
		Name:    sampleName,
		Locals:  locals,
		Welcome: &welcome,
	}, platform)
	if err != nil {
		logger.Fatal("Invalid configuration", "error", err)
	}

	s, err := session.New(cfg)
	if err != nil {
		logger.Fatal("Failed to start session", "error", err)
	}
	_ = s.Run(context.Background())
}
