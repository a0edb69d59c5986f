// Package config holds runtime configuration: defaults, CLI flag parsing,
// and validation.
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"runtime"
	"strings"
)

// --- Enum types for validated string fields ---

// Variant selects which benchmark runs to execute.
type Variant string

const (
	VariantSerial   Variant = "serial"   // Single-worker baseline only.
	VariantParallel Variant = "parallel" // Parallel run only.
	VariantBoth     Variant = "both"     // Baseline, then parallel, then comparison (default).
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
	// Paths (set from positional args).
	InputDir  string
	OutputDir string

	// ResultsDir receives the JSON metric reports. Default: "results/logs",
	// which is where the dashboard expects them.
	ResultsDir string

	// Benchmark settings.
	Variant Variant
	Workers int // Parallel worker count. Default: runtime.NumCPU().

	// Display and logging.
	Verbose   bool
	ColorMode ColorMode
	LogFile   string // Optional log file path.
	CheckOnly bool   // Run --check diagnostics and exit.
}

// DefaultConfig returns a Config with all defaults applied, used as the base
// before [ParseFlags] applies CLI overrides.
func DefaultConfig() Config {
	return Config{
		ResultsDir: filepath.Join("results", "logs"),
		Variant:    VariantBoth,
		Workers:    runtime.NumCPU(),
		ColorMode:  ColorAuto,
	}
}

// NormalizeDirArg strips trailing slashes from a directory path.
// The filesystem root "/" is returned unchanged so we don't produce an empty string.
func NormalizeDirArg(path string) string {
	if path == "/" {
		return "/"
	}
	return strings.TrimRight(path, "/")
}

// Validate checks that enum fields hold valid values and the worker count is
// usable. When not in CheckOnly mode, it also requires that both input and
// output directory paths are non-empty.
func (c *Config) Validate() error {
	switch c.Variant {
	case VariantSerial, VariantParallel, VariantBoth:
		// valid
	default:
		return errors.New("invalid variant (use 'serial', 'parallel', or 'both')")
	}

	switch c.ColorMode {
	case ColorAuto, ColorAlways, ColorNever:
		// valid
	default:
		return errors.New("invalid color mode (use 'auto', 'always', or 'never')")
	}

	if c.Workers < 1 {
		return fmt.Errorf("invalid worker count %d (must be >= 1)", c.Workers)
	}

	if c.CheckOnly {
		return nil
	}
	if c.InputDir == "" || c.OutputDir == "" {
		return errors.New("need exactly input_dir and output_dir")
	}
	return nil
}

// ValidatePaths rejects an output directory nested inside the input
// directory, which would feed previous outputs back into the benchmark.
// Both arguments must be absolute, symlink-resolved paths.
func (c *Config) ValidatePaths(inputAbs, outputAbs string) error {
	if outputAbs == inputAbs {
		return errors.New("output directory must not equal input directory")
	}
	if strings.HasPrefix(outputAbs, inputAbs+string(filepath.Separator)) {
		return errors.New("output directory must not be inside input directory")
	}
	return nil
}
