package config

import (
	"path/filepath"

	"github.com/alexisbeaulieu97/uihelper/internal/logger"
	"github.com/alexisbeaulieu97/uihelper/internal/logging"
)

// Config is the application configuration document.
type Config struct {
	Name        string            `yaml:"name" validate:"required,max=100"`
	CSS         string            `yaml:"css,omitempty"`
	Markup      string            `yaml:"markup,omitempty" validate:"omitempty,file_path"`
	Log         LogConfig         `yaml:"log"`
	Dialogs     DialogConfig      `yaml:"dialogs"`
	Diagnostics DiagnosticsConfig `yaml:"diagnostics"`
}

// LogConfig selects the sinks of the logging bridge.
type LogConfig struct {
	File       string `yaml:"file,omitempty" validate:"omitempty,file_path"`
	Console    bool   `yaml:"console"`
	Level      string `yaml:"level,omitempty" validate:"omitempty,log_level"`
	Structured string `yaml:"structured,omitempty" validate:"omitempty,file_path"`
	MaxSizeMB  int    `yaml:"max_size_mb,omitempty" validate:"omitempty,min=1,max=10240"`
}

// DialogConfig configures file dialogs.
type DialogConfig struct {
	// Native browses the file system; otherwise dialogs prompt for a path.
	Native bool `yaml:"native"`
}

// DiagnosticsConfig configures the toolkit's own log.
type DiagnosticsConfig struct {
	Level         string `yaml:"level,omitempty" validate:"omitempty,oneof=debug info warn error disabled"`
	HumanReadable bool   `yaml:"human_readable"`
}

// Default returns the configuration used for absent keys.
func Default() Config {
	return Config{
		Name:    "[MAIN]",
		Log:     LogConfig{Console: true, Level: "debug"},
		Dialogs: DialogConfig{Native: true},
		Diagnostics: DiagnosticsConfig{
			Level:         "warn",
			HumanReadable: true,
		},
	}
}

// Logging converts the log section to a bridge configuration. The level
// must have been validated.
func (c *Config) Logging() logging.Config {
	level, _ := logging.ParseLevel(c.Log.Level)
	return logging.Config{
		FilePath:       c.Log.File,
		MaxSizeMB:      c.Log.MaxSizeMB,
		Console:        c.Log.Console,
		StructuredPath: c.Log.Structured,
		Level:          level,
	}
}

// LoggerOptions converts the diagnostics section.
func (c *Config) LoggerOptions() logger.Options {
	return logger.Options{Level: c.Diagnostics.Level, HumanReadable: c.Diagnostics.HumanReadable}
}

// ResolvePaths makes relative file paths relative to base.
func (c *Config) ResolvePaths(base string) {
	for _, p := range []*string{&c.Markup, &c.Log.File, &c.Log.Structured} {
		if *p != "" && !filepath.IsAbs(*p) {
			*p = filepath.Join(base, *p)
		}
	}
}
