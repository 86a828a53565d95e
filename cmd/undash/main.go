// Command undash renames files and directories whose names begin with the
// literal " - " prefix to begin with "_" instead, walking the given
// directory tree bottom-up and resolving name collisions interactively.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/backmassage/undash/internal/config"
	"github.com/backmassage/undash/internal/display"
	"github.com/backmassage/undash/internal/logging"
	"github.com/backmassage/undash/internal/pipeline"
	"github.com/backmassage/undash/internal/prompt"
)

// version is injected at build time via -ldflags.
var version = "1.0.0-dev"

func main() {
	os.Exit(run())
}

func run() int {
	cfg := config.DefaultConfig()
	exit := 0

	root := &cobra.Command{
		Use:   "undash [flags] <directory>",
		Short: "Rename ' - ' prefixed files and directories to '_' prefixed ones",
		Long: `undash walks a directory tree and renames every file and directory whose
name begins with the literal " - " prefix so it begins with "_" instead.
Nested entries are renamed before their parent directories, and existing
target names can be skipped or disambiguated with a numeric suffix.`,
		Version:       version,
		Args:          cobra.ExactArgs(1),
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg.RootDir = args[0]
			exit = runRename(&cfg)
			return nil
		},
	}
	config.RegisterFlags(root, &cfg)

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "undash: %v\n", err)
		return 1
	}
	return exit
}

func runRename(cfg *config.Config) int {
	// Bootstrap: the logger doesn't exist yet, so errors go directly to
	// stderr. Once NewLogger succeeds, all output goes through it.
	rootAbs, err := config.ResolveRoot(cfg.RootDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "undash: %v\n", err)
		return 1
	}
	cfg.RootDir = rootAbs

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "undash: %v\n", err)
		return 1
	}

	log, err := logging.NewLogger(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "undash: %v\n", err)
		return 1
	}
	defer log.Close()

	display.PrintBanner()

	// The root must exist before anything runs; nothing is mutated on this
	// path.
	fi, err := os.Stat(cfg.RootDir)
	if err != nil {
		log.Error("Path %q does not exist", cfg.RootDir)
		return 1
	}
	if !fi.IsDir() {
		log.Error("Path %q is not a directory", cfg.RootDir)
		return 1
	}

	log.Info("=== undash v%s ===", version)
	log.Info("Root: %s", cfg.RootDir)
	if cfg.DryRun {
		log.Warn("DRY RUN — nothing will be renamed")
	}

	// Cancel the context on SIGINT/SIGTERM so the rename loop stops between
	// items.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		log.Warn("Received interrupt, stopping…")
		cancel()
	}()

	pr := prompt.New(os.Stdin, os.Stdout, cfg.PromptTimeout)
	stats := pipeline.Run(ctx, cfg, log, pr)

	if stats.Failed > 0 {
		return 1
	}
	return 0
}
