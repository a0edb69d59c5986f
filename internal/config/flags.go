package config

// This file implements CLI flag parsing and help text.
// Flags are grouped into benchmark, display, and utility concerns. The two
// positional args (input_dir, output_dir) are required unless --check is set.

import (
	"flag"
	"fmt"
	"os"
)

// ParseFlags parses os.Args into cfg. On --help or --version it prints and
// exits. On error it returns non-nil (e.g. unknown flag, missing positional
// args).
func ParseFlags(cfg *Config, version string) error {
	fs := flag.NewFlagSet("pixelbench", flag.ContinueOnError)
	fs.Usage = func() { printUsage(fs) }

	var showHelp, showVersion bool

	// Benchmark flags.
	fs.Var(&variantValue{&cfg.Variant}, "variant", "Runs to execute: serial | parallel | both")
	fs.IntVar(&cfg.Workers, "workers", cfg.Workers, "Parallel worker count (default: logical CPUs)")
	fs.IntVar(&cfg.Workers, "w", cfg.Workers, "Same as --workers")
	fs.StringVar(&cfg.ResultsDir, "results-dir", cfg.ResultsDir, "Directory for JSON metric reports")

	// Display flags.
	fs.BoolVar(&cfg.Verbose, "verbose", false, "Enable debug output")
	fs.Var(&colorModeValue{&cfg.ColorMode}, "color", "Color output: auto | always | never")
	fs.StringVar(&cfg.LogFile, "log-file", "", "Append log output to this file")

	// Utility flags.
	fs.BoolVar(&cfg.CheckOnly, "check", false, "Print system diagnostics and exit")
	fs.BoolVar(&showVersion, "version", false, "Print version and exit")
	fs.BoolVar(&showHelp, "help", false, "Print this help and exit")
	fs.BoolVar(&showHelp, "h", false, "Same as --help")

	if err := fs.Parse(os.Args[1:]); err != nil {
		return err
	}

	if showHelp {
		printUsage(fs)
		os.Exit(0)
	}
	if showVersion {
		fmt.Fprintln(os.Stdout, "pixelbench v"+version)
		os.Exit(0)
	}

	return parsePositionalArgs(fs, cfg)
}

// parsePositionalArgs consumes input_dir and output_dir. Both are required
// unless --check is set, in which case they are optional.
func parsePositionalArgs(fs *flag.FlagSet, cfg *Config) error {
	args := fs.Args()
	if cfg.CheckOnly && len(args) == 0 {
		return nil
	}
	if len(args) != 2 {
		return fmt.Errorf("expected input_dir and output_dir, got %d positional args", len(args))
	}
	cfg.InputDir = NormalizeDirArg(args[0])
	cfg.OutputDir = NormalizeDirArg(args[1])
	return nil
}

// variantValue adapts Variant to flag.Value with validation at parse time.
type variantValue struct{ v *Variant }

func (f *variantValue) String() string {
	if f.v == nil {
		return ""
	}
	return string(*f.v)
}

func (f *variantValue) Set(s string) error {
	switch Variant(s) {
	case VariantSerial, VariantParallel, VariantBoth:
		*f.v = Variant(s)
		return nil
	}
	return fmt.Errorf("invalid variant %q (use 'serial', 'parallel', or 'both')", s)
}

// colorModeValue adapts ColorMode to flag.Value with validation at parse time.
type colorModeValue struct{ v *ColorMode }

func (f *colorModeValue) String() string {
	if f.v == nil {
		return ""
	}
	return string(*f.v)
}

func (f *colorModeValue) Set(s string) error {
	switch ColorMode(s) {
	case ColorAuto, ColorAlways, ColorNever:
		*f.v = ColorMode(s)
		return nil
	}
	return fmt.Errorf("invalid color mode %q (use 'auto', 'always', or 'never')", s)
}

func printUsage(fs *flag.FlagSet) {
	fmt.Fprint(os.Stderr, `Usage: pixelbench [options] input_dir output_dir

Runs the fixed image filter pipeline (grayscale, box blur, Sobel) over every
image in input_dir, writes the filtered PNGs to output_dir, and emits JSON
performance reports comparing serial and parallel execution.

Options:
`)
	fs.PrintDefaults()
}
