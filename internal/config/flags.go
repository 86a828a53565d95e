package config

// This file registers CLI flags on the cobra command. Enum fields use
// pflag.Value adapters so invalid values are rejected at parse time.

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// RegisterFlags binds cfg fields to flags on cmd. Defaults come from the
// Config passed in, so [DefaultConfig] values hold unless the user sets a flag.
func RegisterFlags(cmd *cobra.Command, cfg *Config) {
	f := cmd.Flags()
	f.BoolVarP(&cfg.DryRun, "dry-run", "d", false, "preview renames without touching the filesystem")
	f.BoolVarP(&cfg.AssumeYes, "yes", "y", false, "skip confirmation prompts and execute directly")
	f.Var(&conflictPolicyValue{&cfg.OnConflict}, "on-conflict", "existing-target handling: ask | skip | rename")
	f.DurationVar(&cfg.PromptTimeout, "timeout", cfg.PromptTimeout, "how long to wait on a conflict prompt before skipping")
	f.Var(&colorModeValue{&cfg.ColorMode}, "color", "colored output: auto | always | never")
	f.StringVarP(&cfg.LogFile, "log", "l", "", "append plain-text logs to a file")
	f.BoolVarP(&cfg.Verbose, "verbose", "v", false, "verbose output")
}

// pflag.Value adapters for the enum config types.

type conflictPolicyValue struct{ p *ConflictPolicy }

func (v *conflictPolicyValue) String() string { return string(*v.p) }
func (v *conflictPolicyValue) Type() string   { return "policy" }
func (v *conflictPolicyValue) Set(s string) error {
	switch strings.ToLower(s) {
	case "ask":
		*v.p = ConflictAsk
	case "skip":
		*v.p = ConflictSkip
	case "rename":
		*v.p = ConflictRename
	default:
		return fmt.Errorf("invalid conflict policy %q (use 'ask', 'skip' or 'rename')", s)
	}
	return nil
}

type colorModeValue struct{ p *ColorMode }

func (v *colorModeValue) String() string { return string(*v.p) }
func (v *colorModeValue) Type() string   { return "mode" }
func (v *colorModeValue) Set(s string) error {
	switch strings.ToLower(s) {
	case "auto":
		*v.p = ColorAuto
	case "always":
		*v.p = ColorAlways
	case "never":
		*v.p = ColorNever
	default:
		return fmt.Errorf("invalid color mode %q (use 'auto', 'always' or 'never')", s)
	}
	return nil
}
