// Package config holds runtime configuration: defaults, CLI flag parsing,
// and validation.
package config

import (
	"errors"
	"strings"
	"time"
)

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stdout is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// Config holds all runtime settings. It is populated by [DefaultConfig] and
// then mutated by [ParseFlags] before being passed (by pointer) to packages
// that need it.
type Config struct {
	// Root directory to process (positional arg; default ".").
	Root string

	// Behavior flags.
	DryRun    bool
	Recursive bool

	// Fixed bound on each ffprobe invocation. A hung probe degrades to the
	// filesystem timestamp fallback instead of stalling the batch.
	ProbeTimeout time.Duration

	// Display and logging.
	Verbose   bool
	ColorMode ColorMode
	LogFile   string // Optional log file path.
	CheckOnly bool   // Run --check diagnostics and exit.
}

// DefaultConfig returns a Config with all defaults. Used as the base before
// [ParseFlags] applies CLI overrides.
func DefaultConfig() Config {
	return Config{
		Root:         ".",
		DryRun:       false,
		Recursive:    false,
		ProbeTimeout: 30 * time.Second,
		Verbose:      false,
		ColorMode:    ColorAuto,
		CheckOnly:    false,
	}
}

// NormalizeDirArg strips trailing slashes from a directory path.
// The filesystem root "/" is returned unchanged so we don't produce an
// empty string.
func NormalizeDirArg(path string) string {
	if path == "/" {
		return "/"
	}
	return strings.TrimRight(path, "/")
}

// Validate checks enum fields and that a target directory is set.
func (c *Config) Validate() error {
	switch c.ColorMode {
	case ColorAuto, ColorAlways, ColorNever:
		// valid
	default:
		return errors.New("invalid color mode (use 'auto', 'always' or 'never')")
	}
	if c.ProbeTimeout <= 0 {
		return errors.New("probe timeout must be positive")
	}
	if c.CheckOnly {
		return nil
	}
	if c.Root == "" {
		return errors.New("target directory must not be empty")
	}
	return nil
}
