// Package pipeline orchestrates discovery, timestamp resolution, plan
// building, and rename execution, one directory batch at a time.
package pipeline

import (
	"context"
	"os"
	"path/filepath"

	"github.com/backmassage/snapdate/internal/config"
	"github.com/backmassage/snapdate/internal/display"
	"github.com/backmassage/snapdate/internal/logging"
	"github.com/backmassage/snapdate/internal/naming"
	"github.com/backmassage/snapdate/internal/planner"
	"github.com/backmassage/snapdate/internal/probe"
	"github.com/backmassage/snapdate/internal/resolve"
)

// Run is the top-level batch entry point. It checks probe availability once,
// discovers the directories to process, runs each as an independent batch,
// and returns aggregate stats. Per-file and per-directory errors are
// reported and counted; only the caller's setup validation is fatal.
func Run(ctx context.Context, cfg *config.Config, log *logging.Logger) RunStats {
	var stats RunStats

	probeAvailable := probe.Available()
	if !probeAvailable {
		log.Warn("ffprobe not found; video capture dates unavailable, using filesystem timestamps")
	}
	resolver := resolve.New(probeAvailable, cfg.ProbeTimeout)

	dirs := []string{cfg.Root}
	if cfg.Recursive {
		var err error
		dirs, err = DiscoverDirs(cfg.Root)
		if err != nil {
			log.Error("Directory walk failed: %v", err)
			return stats
		}
		if len(dirs) == 0 {
			log.Info("No media files found under %s", cfg.Root)
			return stats
		}
		log.Info("Found media in %s", display.Pluralize(len(dirs), "directory", "directories"))
	}

	for _, dir := range dirs {
		if ctx.Err() != nil {
			log.Warn("Interrupted")
			break
		}
		processDirectory(ctx, cfg, log, resolver, dir, &stats)
	}

	logSummary(cfg, log, &stats)
	return stats
}

// processDirectory runs one directory as an independent batch:
// list → resolve → sequence → execute. Nothing here is shared with other
// directories; numbering always restarts.
func processDirectory(
	ctx context.Context,
	cfg *config.Config,
	log *logging.Logger,
	resolver *resolve.Resolver,
	dir string,
	stats *RunStats,
) {
	files, err := ListMedia(dir)
	if err != nil {
		log.Error("Cannot list %s: %v", dir, err)
		return
	}
	if len(files) == 0 {
		log.Info("No media files found in %s", dir)
		return
	}

	stats.Dirs++
	log.Info("Processing %s (%s)", dir, display.Pluralize(len(files), "media file", "media files"))

	media := make([]planner.MediaFile, 0, len(files))
	for _, path := range files {
		if ctx.Err() != nil {
			log.Warn("Interrupted")
			return
		}
		cat, _ := naming.CategoryForExt(filepath.Ext(path))
		taken, source := resolver.Resolve(ctx, path, cat)

		base := filepath.Base(path)
		if parsed, ok := naming.ParseTargetName(base); ok {
			log.Debug("  %s already follows the scheme (index %d)", base, parsed.Index)
		}
		log.Debug("  %s: %s via %s", base, display.FormatTimestamp(taken), source)

		media = append(media, planner.MediaFile{
			Path:     path,
			Category: cat,
			Taken:    taken,
			Source:   source,
		})
	}

	plans := planner.BuildPlans(media, func(path string) bool {
		_, err := os.Lstat(path)
		return err == nil
	})
	stats.Total += len(plans)

	for _, plan := range plans {
		if ctx.Err() != nil {
			log.Warn("Interrupted")
			return
		}
		executePlan(cfg, log, plan, stats)
	}
}

// executePlan performs (or previews) one rename. Every failure mode is
// converted into a counter here so a single bad file never stops the batch.
func executePlan(cfg *config.Config, log *logging.Logger, plan planner.RenamePlan, stats *RunStats) {
	base := filepath.Base(plan.SourcePath)
	targetBase := filepath.Base(plan.TargetPath)

	if plan.NoOp {
		log.Info("  %s (already correctly named)", base)
		stats.Unchanged++
		return
	}

	if cfg.DryRun {
		log.Info("  [DRY] %s -> %s", base, targetBase)
		stats.Renamed++
		return
	}

	// Re-check at execution time: a file created after planning must never
	// be overwritten.
	if _, err := os.Lstat(plan.TargetPath); err == nil {
		log.Warn("  %s -> %s (target exists, skipped)", base, targetBase)
		stats.Skipped++
		return
	}

	if err := os.Rename(plan.SourcePath, plan.TargetPath); err != nil {
		log.Error("  %s -> %s: %v", base, targetBase, err)
		stats.Failed++
		return
	}

	log.Success("  %s -> %s", base, targetBase)
	stats.Renamed++
}

func logSummary(cfg *config.Config, log *logging.Logger, stats *RunStats) {
	log.Info("==============================")
	if cfg.DryRun {
		log.Info("Dry run: %d would be renamed, %d already named, %d skipped, %d failed",
			stats.Renamed, stats.Unchanged, stats.Skipped, stats.Failed)
	} else {
		log.Info("Done: %d renamed, %d unchanged, %d skipped, %d failed",
			stats.Renamed, stats.Unchanged, stats.Skipped, stats.Failed)
	}
	if cfg.Recursive {
		log.Info("Processed %s", display.Pluralize(stats.Dirs, "directory", "directories"))
	}
}
