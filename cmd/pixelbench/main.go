// Command pixelbench benchmarks the fixed image filter pipeline (grayscale,
// box blur, Sobel) over a directory of images, comparing single-worker and
// parallel execution.
//
// It parses flags, validates configuration and paths, and either runs system
// diagnostics (--check) or the requested benchmark variants, persisting JSON
// metric reports for the dashboard.
package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/backmassage/pixelbench/internal/check"
	"github.com/backmassage/pixelbench/internal/config"
	"github.com/backmassage/pixelbench/internal/display"
	"github.com/backmassage/pixelbench/internal/logging"
	"github.com/backmassage/pixelbench/internal/metrics"
	"github.com/backmassage/pixelbench/internal/pipeline"
	"github.com/backmassage/pixelbench/internal/report"
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
	// directly to stderr via fmt. Once NewLogger succeeds, all output
	// goes through the logger for consistent formatting and log-file capture.
	cfg := config.DefaultConfig()
	if err := config.ParseFlags(&cfg, version); err != nil {
		fmt.Fprintf(os.Stderr, "pixelbench: %v\n", err)
		return 1
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "pixelbench: %v\n", err)
		return 1
	}

	log, err := logging.NewLogger(&cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "pixelbench: %v\n", err)
		return 1
	}
	defer log.Close()

	// Phase 2: Logger available — all output goes through log from here on.
	display.PrintBanner()

	if cfg.CheckOnly {
		check.RunCheck(&cfg, log)
		return 0
	}

	// Resolve and validate paths: input must exist, output is created if
	// needed, and output must not be inside input (prevents feeding
	// previous runs' output back into the benchmark).
	inputAbs, err := absPath(cfg.InputDir)
	if err != nil {
		log.Error("Input not found: %s", cfg.InputDir)
		return 1
	}
	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		log.Error("Cannot create output directory: %s", cfg.OutputDir)
		return 1
	}
	outputAbs, err := absPath(cfg.OutputDir)
	if err != nil {
		log.Error("Cannot resolve output path: %s", cfg.OutputDir)
		return 1
	}
	if err := cfg.ValidatePaths(inputAbs, outputAbs); err != nil {
		log.Error("%v", err)
		log.Error("Choose an output path outside: %s", cfg.InputDir)
		return 1
	}

	log.Info("=== PixelBench v%s (%s) ===", version, commit)
	log.Info("In:      %s", cfg.InputDir)
	log.Info("Out:     %s", cfg.OutputDir)
	log.Info("Reports: %s", cfg.ResultsDir)
	log.Info("")

	// Discovery failure (missing/unreadable input directory) is fatal and
	// happens before any timing starts. Both variants run over the exact
	// same path list so their counters describe the same workload.
	files, err := pipeline.Discover(cfg.InputDir)
	if err != nil {
		log.Error("Input discovery failed: %v", err)
		return 1
	}
	log.Info("Found %d images", len(files))
	log.Info("")

	// Phase 3: Signal handling — cancel context on SIGINT/SIGTERM so a run
	// can stop between images. An interrupted run writes no report.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		log.Warn("Received interrupt, finishing current image…")
		cancel()
	}()

	// Phase 4: Run the requested variants.
	if cfg.Variant == config.VariantSerial || cfg.Variant == config.VariantBoth {
		if rep := runVariant(ctx, &cfg, log, files, report.VariantBaseline); rep == nil {
			return 1
		}
	}

	if cfg.Variant == config.VariantParallel || cfg.Variant == config.VariantBoth {
		// The baseline is loaded from disk before the parallel run starts;
		// comparison is skipped (not an error) when no parsable baseline
		// report exists.
		baseline := loadBaseline(&cfg, log)

		rep := runVariant(ctx, &cfg, log, files, report.VariantParallel)
		if rep == nil {
			return 1
		}

		if baseline != nil {
			if !writeComparison(&cfg, log, baseline, rep) {
				return 1
			}
		}
	}

	log.Success("Done")
	return 0
}

// runVariant executes one benchmark run (baseline = one worker, parallel =
// configured worker count), persists its report, and logs the metric
// summary. Returns nil when the run was interrupted or the report could not
// be written.
func runVariant(ctx context.Context, cfg *config.Config, log *logging.Logger, files []string, variant report.Variant) *report.Report {
	workers := 1
	filename := report.SerialFile
	if variant == report.VariantParallel {
		workers = cfg.Workers
		filename = report.ParallelFile
	}

	log.Info("--- %s run: %d images, %d worker(s) ---", variant, len(files), workers)

	runner := pipeline.NewRunner(cfg, log, workers)
	counters, snap := runner.Run(ctx, files)

	if ctx.Err() != nil {
		log.Warn("Interrupted after %d images; no report written", counters.ImagesProcessed)
		return nil
	}

	var set metrics.Set
	if variant == report.VariantParallel {
		set = metrics.ComputeParallel(counters, snap, runner.Workers())
	} else {
		set = metrics.Compute(counters, snap)
	}

	rep := &report.Report{
		Variant:     variant,
		InputDir:    cfg.InputDir,
		OutputDir:   cfg.OutputDir,
		CycleSource: snap.Source,
		Metrics:     set,
	}

	path := filepath.Join(cfg.ResultsDir, filename)
	if err := report.Write(path, rep); err != nil {
		log.Error("%v", err)
		return nil
	}

	logRunSummary(log, set)
	log.Success("Report written: %s", path)
	log.Info("")
	return rep
}

// loadBaseline reads the serial report if one exists. Missing file → nil
// with a debug line; unparsable file → nil with a warning. Either way the
// parallel run proceeds, just without a comparison.
func loadBaseline(cfg *config.Config, log *logging.Logger) *report.Report {
	path := filepath.Join(cfg.ResultsDir, report.SerialFile)
	baseline, err := report.Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		log.Debug(cfg.Verbose, "No baseline report at %s; skipping comparison", path)
		return nil
	}
	if err != nil {
		log.Warn("Baseline report unusable, skipping comparison: %v", err)
		return nil
	}
	return baseline
}

// writeComparison builds and persists compare_metrics.json. Returns false
// only on a report write failure (fatal, like any report I/O error).
func writeComparison(cfg *config.Config, log *logging.Logger, baseline, parallel *report.Report) bool {
	cmp, err := report.BuildCompare(baseline, parallel)
	if err != nil {
		log.Warn("Skipping comparison: %v", err)
		return true
	}

	path := filepath.Join(cfg.ResultsDir, report.CompareFile)
	if err := report.Write(path, cmp); err != nil {
		log.Error("%v", err)
		return false
	}

	if cmp.Comparison.SpeedupWallTime != nil {
		log.Timing("Speedup (wall): %.2fx", *cmp.Comparison.SpeedupWallTime)
	}
	if cmp.Comparison.ParallelEfficiency != nil {
		log.Timing("Parallel efficiency: %.2f", *cmp.Comparison.ParallelEfficiency)
	}
	log.Success("Report written: %s", path)
	return true
}

// logRunSummary prints the headline numbers for one run.
func logRunSummary(log *logging.Logger, set metrics.Set) {
	log.Timing("Wall time: %s", display.FormatDuration(time.Duration(set.WallTimeSec*float64(time.Second))))
	log.Timing("CPU time:  %.3fs user / %.3fs system", set.CPUUserTimeSec, set.CPUSystemTimeSec)
	log.Timing("Processed: %s images, %s", display.FormatCount(set.ImagesProcessed), display.FormatPixels(set.TotalPixels))
	if set.PixelsPerSec != nil {
		log.Timing("Throughput: %s/s", display.FormatPixels(uint64(*set.PixelsPerSec)))
	}
	if set.AvgTimePerImageMs != nil {
		log.Timing("Avg per image: %.2fms", *set.AvgTimePerImageMs)
	}
}

// absPath returns the absolute, symlink-resolved path for safe comparison
// of input vs output directory hierarchies.
func absPath(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	return filepath.EvalSymlinks(abs)
}
