// Package config holds runtime configuration: defaults, CLI flag
// registration, and validation.
package config

import (
	"errors"
	"path/filepath"
	"strings"
	"time"

	homedir "github.com/mitchellh/go-homedir"
)

// ConflictPolicy controls what happens when a rename target already exists.
type ConflictPolicy string

const (
	ConflictAsk    ConflictPolicy = "ask"    // Prompt the operator per conflict (default).
	ConflictSkip   ConflictPolicy = "skip"   // Always leave the candidate untouched.
	ConflictRename ConflictPolicy = "rename" // Always disambiguate with a numeric suffix.
)

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stdout is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// Config holds all runtime settings. It is populated by [DefaultConfig],
// mutated by flag parsing, and passed by pointer to packages that need it.
type Config struct {
	// Root directory to scan (positional argument, resolved by the CLI).
	RootDir string

	// Behavior.
	DryRun        bool           // Preview only; never touch the filesystem.
	AssumeYes     bool           // Skip confirmation prompts, execute directly.
	OnConflict    ConflictPolicy // Default: "ask".
	PromptTimeout time.Duration  // Wait per conflict prompt before defaulting to skip. Default: 60s.

	// Display and logging.
	Verbose   bool
	ColorMode ColorMode // Default: "auto".
	LogFile   string    // Optional plain-text log file path.
}

// DefaultConfig returns a Config with all defaults applied. Used as the base
// before CLI flags override individual fields.
func DefaultConfig() Config {
	return Config{
		OnConflict:    ConflictAsk,
		PromptTimeout: 60 * time.Second,
		ColorMode:     ColorAuto,
	}
}

// NormalizeDirArg strips trailing slashes from a directory path.
// The filesystem root "/" is returned unchanged so we don't produce an empty string.
func NormalizeDirArg(path string) string {
	if path == string(filepath.Separator) {
		return path
	}
	return strings.TrimRight(path, string(filepath.Separator))
}

// ResolveRoot expands a leading "~", normalizes trailing slashes, and makes
// the root argument absolute. Existence is checked by the caller.
func ResolveRoot(raw string) (string, error) {
	expanded, err := homedir.Expand(raw)
	if err != nil {
		return "", err
	}
	return filepath.Abs(NormalizeDirArg(expanded))
}

// Validate checks that enum fields hold valid values and that a root
// directory was supplied.
func (c *Config) Validate() error {
	switch c.OnConflict {
	case ConflictAsk, ConflictSkip, ConflictRename:
		// valid
	default:
		return errors.New("invalid conflict policy (use 'ask', 'skip' or 'rename')")
	}

	switch c.ColorMode {
	case ColorAuto, ColorAlways, ColorNever:
		// valid
	default:
		return errors.New("invalid color mode (use 'auto', 'always' or 'never')")
	}

	if c.PromptTimeout < 0 {
		return errors.New("timeout must not be negative")
	}
	if c.RootDir == "" {
		return errors.New("need a directory to scan")
	}
	return nil
}
