// Package main provides the apprepl CLI entry point: an interactive shell
// over the variables of a module file, with persisted history and awaited
// asynchronous results.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"apprepl/internal/config"
	"apprepl/internal/locals"
	"apprepl/internal/logger"
	"apprepl/internal/project"
	"apprepl/internal/session"
	"apprepl/internal/version"
	"apprepl/pkg/repltypes"
)

var (
	logLevel   string
	logFile    string
	configFile string
)

// rootCmd starts the interactive shell.
var rootCmd = &cobra.Command{
	Use:   "apprepl [module-path] [name]",
	Short: "apprepl - interactive shell for an application's variables",
	Long: `apprepl starts an interactive shell. The optional module file (YAML, JSON
or .env) is loaded and exposed as "api". The shell name defaults to the
module path of the nearest go.mod.`,
	Args: cobra.MaximumNArgs(2),
	Run:  runRepl,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Println(version.GetFormattedVersion())
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Set log level (debug|info|warn|error) [default: warn]")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Write logs to file instead of stderr")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Config file [default: ./apprepl.yaml or ~/.config/apprepl/apprepl.yaml]")

	flags := rootCmd.Flags()
	flags.String(config.KeyHistoryFilePath, "", "History file path (empty disables history)")
	flags.String(config.KeyHistoryFileDir, "", "Directory of the history file [default: home directory]")
	flags.Int(config.KeyHistorySize, 0, "Number of history entries to keep (0 disables history) [default: 20]")
	flags.String(config.KeyPromptPrefix, "", "Prompt prefix [default: name]")
	flags.String(config.KeyPromptSuffix, "", "Prompt suffix [default: "+config.DefaultPromptSuffix+"]")
	flags.String(config.KeyWelcome, "", "Welcome text")

	rootCmd.AddCommand(versionCmd)

	cobra.OnInitialize(initConfig)
}

func initConfig() {
	if err := logger.Configure(logLevel, logFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error configuring logger: %v\n", err)
		os.Exit(1)
	}
}

func runRepl(cmd *cobra.Command, args []string) {
	platform, err := config.DetectPlatform()
	if err != nil {
		logger.Fatal("Failed to detect platform", "error", err)
	}

	v, err := config.NewViper(configFile, platform)
	if err != nil {
		logger.Fatal("Failed to load configuration", "error", err)
	}
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		logger.Fatal("Failed to bind flags", "error", err)
	}

	wd, err := os.Getwd()
	if err != nil {
		logger.Fatal("Failed to get working directory", "error", err)
	}

	fs := afero.NewOsFs()
	opts, err := buildOptions(fs, v, args, wd)
	if err != nil {
		logger.Fatal("Failed to prepare session", "error", err)
	}

	cfg, err := config.Resolve(opts, platform)
	if err != nil {
		logger.Fatal("Invalid configuration", "error", err)
	}

	logger.Info("Starting apprepl", "version", version.GetBaseVersion(), "name", cfg.Name)

	s, err := session.New(cfg, session.WithFs(fs))
	if err != nil {
		logger.Fatal("Failed to start session", "error", err)
	}

	// Save failures are already logged by the session and never block exit.
	_ = s.Run(context.Background())
}

// buildOptions collects raw options from v and the positional arguments
// [module-path] [name]. When no name is given it falls back to the module
// path of the go.mod nearest to wd.
func buildOptions(fs afero.Fs, v *viper.Viper, args []string, wd string) (config.Options, error) {
	opts := config.OptionsFromViper(v)

	if len(args) > 0 && args[0] != "" {
		module, err := locals.LoadModule(fs, args[0])
		if err != nil {
			return config.Options{}, err
		}
		opts.Locals = repltypes.Locals{locals.ModuleName: module}
	}

	if len(args) > 1 && args[1] != "" {
		opts.Name = args[1]
	}
	if opts.Name == "" {
		name, err := project.Name(fs, wd)
		if err != nil {
			logger.Debug("No project name found", "dir", wd, "error", err)
		} else {
			opts.Name = name
		}
	}

	return opts, nil
}
