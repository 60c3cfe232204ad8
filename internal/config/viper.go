package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment variables read as overrides.
const EnvPrefix = "APPREPL"

// Keys understood in config files, environment variables and bound flags.
const (
	KeyName            = "name"
	KeyHistoryFileName = "history-file-name"
	KeyHistoryFileDir  = "history-file-dir"
	KeyHistoryFilePath = "history-file-path"
	KeyHistorySize     = "history-size"
	KeyWelcome         = "welcome"
	KeyPromptPrefix    = "prompt-prefix"
	KeyPromptSuffix    = "prompt-suffix"
	KeyPrompt          = "prompt"
)

// NewViper returns a viper instance reading APPREPL_* environment variables
// and, if present, a config file. An explicit configFile must exist; otherwise
// apprepl.yaml is looked up in the working directory, then in
// <home>/.config/apprepl.
func NewViper(configFile string, platform Platform) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", configFile, err)
		}
		return v, nil
	}

	v.SetConfigName("apprepl")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if platform.HomeDir != "" {
		v.AddConfigPath(filepath.Join(platform.HomeDir, ".config", "apprepl"))
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}
	return v, nil
}

// OptionsFromViper collects the raw overrides present in v. Locals, streams
// and readline options cannot come from viper and are left unset.
func OptionsFromViper(v *viper.Viper) Options {
	opts := Options{
		Name:            v.GetString(KeyName),
		HistoryFileName: v.GetString(KeyHistoryFileName),
		HistoryFileDir:  v.GetString(KeyHistoryFileDir),
		PromptPrefix:    v.GetString(KeyPromptPrefix),
		Prompt:          v.GetString(KeyPrompt),
	}
	if v.IsSet(KeyHistoryFilePath) {
		path := v.GetString(KeyHistoryFilePath)
		opts.HistoryFilePath = &path
	}
	if v.IsSet(KeyHistorySize) {
		size := v.GetInt(KeyHistorySize)
		opts.HistorySize = &size
	}
	if v.IsSet(KeyWelcome) {
		welcome := v.GetString(KeyWelcome)
		opts.Welcome = &welcome
	}
	if v.IsSet(KeyPromptSuffix) {
		suffix := v.GetString(KeyPromptSuffix)
		opts.PromptSuffix = &suffix
	}
	return opts
}
