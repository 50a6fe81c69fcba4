package config

// This file implements CLI flag parsing and help text.
// Flags are grouped into behavior, display, and utility. Override flags
// (e.g. --no-color) are applied after Parse so Config defaults hold unless
// the user passes the flag.

import (
	"flag"
	"fmt"
	"os"
)

// ParseFlags parses os.Args into cfg. On --help or --version it prints and
// exits. On error it returns non-nil (e.g. unknown flag, too many
// positional args).
func ParseFlags(cfg *Config, version string) error {
	fs := flag.NewFlagSet("snapdate", flag.ContinueOnError)
	fs.Usage = func() { printUsage(version) }

	var overrides overrideFlags

	defineBehaviorFlags(fs, cfg)
	defineDisplayFlags(fs, cfg, &overrides)
	defineUtilityFlags(fs, &overrides)

	if err := fs.Parse(os.Args[1:]); err != nil {
		return err
	}

	applyOverrideFlags(cfg, &overrides)

	if overrides.showHelp {
		printUsage(version)
		os.Exit(0)
	}
	if overrides.showVersion {
		fmt.Fprintln(os.Stdout, "snapdate v"+version)
		os.Exit(0)
	}

	return parsePositionalArgs(fs, cfg)
}

// overrideFlags holds boolean flags applied after Parse. These either
// invert a default (e.g. noColor -> ColorMode=never) or trigger exit
// (showHelp, showVersion).
type overrideFlags struct {
	forceColor  bool
	noColor     bool
	showVersion bool
	showHelp    bool
}

// defineBehaviorFlags registers -d/--dry-run and -r/--recursive.
func defineBehaviorFlags(fs *flag.FlagSet, cfg *Config) {
	fs.BoolVar(&cfg.DryRun, "dry-run", false, "Preview only; do not rename anything")
	fs.BoolVar(&cfg.DryRun, "d", false, "Same as --dry-run")
	fs.BoolVar(&cfg.Recursive, "recursive", false, "Process each subdirectory as its own batch")
	fs.BoolVar(&cfg.Recursive, "r", false, "Same as --recursive")
}

// defineDisplayFlags registers --color, --no-color, verbose, --check, --log.
func defineDisplayFlags(fs *flag.FlagSet, cfg *Config, o *overrideFlags) {
	fs.BoolVar(&o.forceColor, "color", false, "Force colored logs")
	fs.BoolVar(&o.noColor, "no-color", false, "Disable colored logs")
	fs.BoolVar(&cfg.Verbose, "verbose", false, "Per-file timestamp-source diagnostics")
	fs.BoolVar(&cfg.Verbose, "v", false, "Same as --verbose")
	fs.BoolVar(&cfg.CheckOnly, "check", false, "Run system diagnostics and exit")
	fs.BoolVar(&cfg.CheckOnly, "c", false, "Same as --check")
	fs.StringVar(&cfg.LogFile, "log", "", "Append logs to file")
	fs.StringVar(&cfg.LogFile, "l", "", "Same as --log")
}

// defineUtilityFlags registers --version and --help (exit after printing).
func defineUtilityFlags(fs *flag.FlagSet, o *overrideFlags) {
	fs.BoolVar(&o.showVersion, "version", false, "Print version and exit")
	fs.BoolVar(&o.showVersion, "V", false, "Same as --version")
	fs.BoolVar(&o.showHelp, "help", false, "Show this help and exit")
	fs.BoolVar(&o.showHelp, "h", false, "Same as --help")
}

// applyOverrideFlags copies override flag values into cfg.
func applyOverrideFlags(cfg *Config, o *overrideFlags) {
	if o.noColor {
		cfg.ColorMode = ColorNever
	} else if o.forceColor {
		cfg.ColorMode = ColorAlways
	}
}

// parsePositionalArgs sets Root from the optional positional argument.
// The current directory is processed when none is given.
func parsePositionalArgs(fs *flag.FlagSet, cfg *Config) error {
	args := fs.Args()
	switch len(args) {
	case 0:
		// keep default
	case 1:
		cfg.Root = NormalizeDirArg(args[0])
	default:
		return fmt.Errorf("expected at most one directory argument, got %d", len(args))
	}
	return nil
}

// printUsage writes the help text to stderr. Column-aligned for readability.
func printUsage(version string) {
	const col1 = 26 // width of "  -x, --long-name <arg>  "
	lines := []struct {
		flags string
		desc  string
	}{
		{"", "SnapDate v" + version + " — date-based photo and video renamer"},
		{"", ""},
		{"  snapdate [OPTIONS] [directory]", ""},
		{"", ""},
		{"", "Renames media files to \"yyyy-mm-dd - Phone Photos (N).ext\" based on"},
		{"", "capture metadata, falling back to filesystem timestamps."},
		{"", ""},
		{"Behavior", ""},
		{"  -d, --dry-run", "Preview only; do not rename anything"},
		{"  -r, --recursive", "Process each subdirectory as its own batch"},
		{"", ""},
		{"Display", ""},
		{"  -v, --verbose", "Per-file timestamp-source diagnostics"},
		{"  --color", "Force colored logs"},
		{"  --no-color", "Disable colored logs"},
		{"", ""},
		{"Utility", ""},
		{"  -l, --log <path>", "Append logs to file"},
		{"  -c, --check", "System diagnostics (ffprobe, extension tables)"},
		{"  -V, --version", "Print version and exit"},
		{"  -h, --help", "Show this help and exit"},
	}

	for _, l := range lines {
		if l.flags == "" && l.desc == "" {
			fmt.Fprintln(os.Stderr)
			continue
		}
		if l.desc == "" {
			fmt.Fprintln(os.Stderr, l.flags)
			continue
		}
		if l.flags == "" {
			fmt.Fprintln(os.Stderr, l.desc)
			continue
		}
		padding := col1 - len(l.flags)
		if padding < 1 {
			padding = 1
		}
		fmt.Fprintf(os.Stderr, "%s%*s%s\n", l.flags, padding, "", l.desc)
	}
}
