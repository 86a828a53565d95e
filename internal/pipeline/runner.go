package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/backmassage/undash/internal/config"
	"github.com/backmassage/undash/internal/display"
	"github.com/backmassage/undash/internal/logging"
	"github.com/backmassage/undash/internal/naming"
	"github.com/backmassage/undash/internal/planner"
	"github.com/backmassage/undash/internal/prompt"
)

// Run is the top-level batch entry point. It discovers candidates under
// cfg.RootDir, drives the dry-run / execute flow, and returns aggregate
// stats. The root is assumed to exist (validated by the CLI).
func Run(ctx context.Context, cfg *config.Config, log *logging.Logger, pr *prompt.Prompter) RunStats {
	var stats RunStats

	candidates, err := Discover(cfg.RootDir)
	if err != nil {
		log.Error("Discovery failed: %v", err)
		stats.Failed++
		return stats
	}

	if len(candidates) == 0 {
		log.Info("No files or directories found starting with %q", naming.CandidatePrefix)
		return stats
	}

	stats.Total = len(candidates)
	plans := planner.Build(candidates)
	log.Info("Found %d item(s) to rename", stats.Total)

	doDryRun := cfg.DryRun
	if !cfg.DryRun && !cfg.AssumeYes {
		doDryRun = pr.YesNo(ctx, "Do you want to do a dry run first?")
	}

	if doDryRun {
		log.Info("=== DRY RUN ===")
		reportDryRun(log, plans, &stats)
		if cfg.DryRun {
			log.Info("Dry run complete. Run without --dry-run to rename.")
			return stats
		}
		if !pr.YesNo(ctx, "Proceed with actual renaming?") {
			log.Info("Cancelled.")
			return stats
		}
		// Execution re-checks targets itself; reset the dry-run tally.
		stats.Conflicts = 0
	}

	log.Info("=== EXECUTING RENAMES ===")
	for i, p := range plans {
		stats.Current = i + 1
		if ctx.Err() != nil {
			log.Warn("Interrupted")
			break
		}
		processPlan(ctx, cfg, log, pr, p, &stats)
	}

	logSummary(log, &stats)
	return stats
}

// reportDryRun renders the plan table and flags plans whose target already
// exists, without resolving or touching anything.
func reportDryRun(log *logging.Logger, plans []planner.Plan, stats *RunStats) {
	rows := make([]display.PlanRow, len(plans))
	for i, p := range plans {
		status := display.StatusOK
		if p.TargetExists() {
			status = display.StatusConflict
			stats.Conflicts++
		}
		rows[i] = display.PlanRow{Current: p.Path, New: p.Target, Status: status}
	}
	display.WritePlanTable(os.Stdout, rows)
	if stats.Conflicts > 0 {
		log.Warn("%d target(s) already exist and will need skip/rename decisions", stats.Conflicts)
	}
	fmt.Println()
}

// processPlan applies one rename: resolve a conflict if the target exists,
// then rename. A filesystem error is logged and counted; it never aborts
// the run.
func processPlan(
	ctx context.Context,
	cfg *config.Config,
	log *logging.Logger,
	pr *prompt.Prompter,
	p planner.Plan,
	stats *RunStats,
) {
	target := p.Target

	if p.TargetExists() {
		stats.Conflicts++
		choice := prompt.ChoiceSkip
		switch cfg.OnConflict {
		case config.ConflictRename:
			choice = prompt.ChoiceRename
		case config.ConflictAsk:
			choice = pr.Conflict(ctx, p.NewName)
		}
		if choice == prompt.ChoiceSkip {
			log.Warn("[%d/%d] Skip (exists): %s", stats.Current, stats.Total, p.NewName)
			stats.Skipped++
			return
		}
		target = naming.NextAvailable(p.Target)
		log.Debug("Conflict on %s, using %s", p.NewName, filepath.Base(target))
	}

	if err := os.Rename(p.Path, target); err != nil {
		log.Error("[%d/%d] Rename failed for %s: %v", stats.Current, stats.Total, p.Path, err)
		stats.Failed++
		return
	}

	log.Success("[%d/%d] Renamed: %s -> %s", stats.Current, stats.Total, p.Name, filepath.Base(target))
	stats.Renamed++
}

func logSummary(log *logging.Logger, stats *RunStats) {
	log.Info("==============================")
	log.Info("Done: %d renamed, %d skipped, %d failed", stats.Renamed, stats.Skipped, stats.Failed)
	if stats.Conflicts > 0 {
		log.Info("  Conflicts encountered: %d", stats.Conflicts)
	}
}
