// Package config handles meshconv configuration loading and management.
package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/Faultbox/meshconv/pkg/formats"
)

// ErrInvalid is returned by Validate for settings that cannot be used.
var ErrInvalid = errors.New("invalid config")

// DefaultOutput is the output path used when none is given.
const DefaultOutput = "./out.stl"

// Config holds all meshconv settings.
type Config struct {
	Convert  ConvertConfig  `yaml:"convert"`
	Geometry GeometryConfig `yaml:"geometry"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// ConvertConfig holds output settings for the convert command.
type ConvertConfig struct {
	Output string `yaml:"output"` // Used when the command line names no output
	Format string `yaml:"format"` // Printer name, see formats.PrinterNames
	Header string `yaml:"header"` // STL header text or ASCII solid name
}

// GeometryConfig holds settings for mesh queries.
type GeometryConfig struct {
	// Workers is the number of goroutines used for area and containment
	// queries. 0 or 1 runs them on the calling goroutine.
	Workers int `yaml:"workers"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Convert: ConvertConfig{
			Output: DefaultOutput,
			Format: formats.FormatSTL,
		},
		Geometry: GeometryConfig{
			Workers: 1,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

var levels = []string{"debug", "info", "warn", "warning", "error"}

// Validate reports the first setting that cannot be used.
func (c *Config) Validate() error {
	if c.Convert.Output == "" {
		return fmt.Errorf("%w: convert.output is empty", ErrInvalid)
	}
	if !slices.Contains(formats.PrinterNames(), strings.ToLower(c.Convert.Format)) {
		return fmt.Errorf("%w: convert.format %q (want one of %s)",
			ErrInvalid, c.Convert.Format, strings.Join(formats.PrinterNames(), ", "))
	}
	if c.Geometry.Workers < 0 {
		return fmt.Errorf("%w: geometry.workers %d is negative", ErrInvalid, c.Geometry.Workers)
	}
	if !slices.Contains(levels, strings.ToLower(c.Logging.Level)) {
		return fmt.Errorf("%w: logging.level %q", ErrInvalid, c.Logging.Level)
	}
	return nil
}
