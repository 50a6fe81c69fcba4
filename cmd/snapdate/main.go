// Command snapdate is the CLI entrypoint for the SnapDate media renamer.
//
// It parses flags, validates configuration and the target directory, and
// either runs system diagnostics (--check) or the rename pipeline.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/backmassage/snapdate/internal/check"
	"github.com/backmassage/snapdate/internal/config"
	"github.com/backmassage/snapdate/internal/display"
	"github.com/backmassage/snapdate/internal/logging"
	"github.com/backmassage/snapdate/internal/pipeline"
)

// version and commit are injected at build time via -ldflags.
// When built with plain "go build" (no make), these retain their defaults.
var (
	version = "1.0.0"
	commit  = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Phase 1: Bootstrap — the logger doesn't exist yet, so errors go
	// directly to stderr via fmt. Once NewLogger succeeds, all output goes
	// through the logger for consistent formatting and log-file capture.
	cfg := config.DefaultConfig()
	if err := config.ParseFlags(&cfg, version); err != nil {
		fmt.Fprintf(os.Stderr, "snapdate: %v\n", err)
		return 1
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "snapdate: %v\n", err)
		return 1
	}

	log, err := logging.NewLogger(&cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "snapdate: %v\n", err)
		return 1
	}
	defer log.Close()

	// Phase 2: Logger available — all output goes through log from here on.
	display.PrintBanner()

	if cfg.CheckOnly {
		check.RunCheck(log)
		return 0
	}

	// The root must exist and be a directory; this is the only class of
	// error that fails the whole run. Everything past this point is
	// reported per file and summarized.
	rootAbs, err := absPath(cfg.Root)
	if err != nil {
		log.Error("Directory not found: %s", cfg.Root)
		return 1
	}
	fi, err := os.Stat(rootAbs)
	if err != nil || !fi.IsDir() {
		log.Error("Not a directory: %s", cfg.Root)
		return 1
	}
	cfg.Root = rootAbs

	log.Info("=== SnapDate v%s (%s) ===", version, commit)
	log.Info("Target: %s", cfg.Root)
	if cfg.Recursive {
		log.Info("Recursive: each subdirectory is an independent batch")
	}
	if cfg.DryRun {
		log.Warn("DRY RUN — no files will be renamed")
	}
	log.Info("")

	// Phase 3: Signal handling — cancel context on SIGINT/SIGTERM so the
	// pipeline stops between files. Each rename is atomic, so a partially
	// processed directory is safe to re-run.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		log.Warn("Received interrupt, finishing current file…")
		cancel()
	}()

	// Phase 4: Run pipeline (discover → resolve → sequence → execute).
	// Per-file failures are carried in the summary, not the exit code.
	pipeline.Run(ctx, &cfg, log)
	return 0
}

// absPath returns the absolute, symlink-resolved path of the target
// directory.
func absPath(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	return filepath.EvalSymlinks(abs)
}
