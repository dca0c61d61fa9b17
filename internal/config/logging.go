package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/rshade/recordgrid/internal/logging"
)

const (
	defaultLogLevel  = "info"
	defaultLogFormat = logging.FormatConsole
)

//nolint:gochecknoglobals // Compile-time constant lookup tables.
var (
	validLogLevels  = []string{"trace", "debug", "info", "warn", "error"}
	validLogFormats = []string{logging.FormatConsole, logging.FormatJSON}
)

// LoggingConfig is the logging section.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	// File, when set, sends logs to this path instead of stderr.
	File string `yaml:"file,omitempty"`
}

// Validate checks the level and format names.
func (lc *LoggingConfig) Validate() error {
	if !slices.Contains(validLogLevels, strings.ToLower(lc.Level)) {
		return fmt.Errorf("%w: got %q", ErrInvalidLogLevel, lc.Level)
	}
	if !slices.Contains(validLogFormats, strings.ToLower(lc.Format)) {
		return fmt.Errorf("%w: got %q", ErrInvalidLogFormat, lc.Format)
	}
	return nil
}

// ToLoggingConfig converts the section to a logging.Config.
//
// The conversion applies these rules:
//   - Level and Format are copied directly
//   - If File is set, Output becomes "file" and File is passed through
//   - If File is empty, Output defaults to "stderr"
func (lc *LoggingConfig) ToLoggingConfig() logging.Config {
	output := logging.OutputStderr
	if lc.File != "" {
		output = logging.OutputFile
	}

	return logging.Config{
		Level:  lc.Level,
		Format: lc.Format,
		Output: output,
		File:   lc.File,
	}
}
