package app

import (
	"errors"
	"os"
)

// DefaultChannel is the channel processed when none is configured.
const DefaultChannel = "ch0"

// Config captures runtime parameters shared by the example helpers.
type Config struct {
	TemplateDir string
	TempDirBase string
	Channel     string
	Verbose     bool
	Version     string
}

// ConfigOption mutates a Config during construction.
type ConfigOption func(*Config)

// NewConfig creates a Config with defaults and applies provided options.
func NewConfig(templateDir string, opts ...ConfigOption) (Config, error) {
	if templateDir == "" {
		return Config{}, errors.New("template directory must be provided")
	}

	cfg := Config{
		TemplateDir: templateDir,
		TempDirBase: os.TempDir(),
		Channel:     DefaultChannel,
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg, nil
}

// WithTempDirBase overrides the base directory project directories are created in.
func WithTempDirBase(path string) ConfigOption {
	return func(cfg *Config) {
		if path != "" {
			cfg.TempDirBase = path
		}
	}
}

// WithChannel selects the channel whose outputs are collected.
func WithChannel(channel string) ConfigOption {
	return func(cfg *Config) {
		if channel != "" {
			cfg.Channel = channel
		}
	}
}

// WithVerbose toggles logging of the extracted statistics.
func WithVerbose(enabled bool) ConfigOption {
	return func(cfg *Config) {
		cfg.Verbose = enabled
	}
}

// WithVersion sets the application version reported when a project directory is initialized.
func WithVersion(version string) ConfigOption {
	return func(cfg *Config) {
		cfg.Version = version
	}
}
