package pipeline

import (
	"context"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/backmassage/pixelbench/internal/codec"
	"github.com/backmassage/pixelbench/internal/config"
	"github.com/backmassage/pixelbench/internal/filter"
	"github.com/backmassage/pixelbench/internal/logging"
	"github.com/backmassage/pixelbench/internal/naming"
	"github.com/backmassage/pixelbench/internal/timing"
)

// Runner executes the filter pipeline over a set of input images with a
// fixed number of workers. Workers==1 is the serial baseline.
type Runner struct {
	cfg     *config.Config
	log     *logging.Logger
	workers int
}

// NewRunner builds a runner; workers below 1 are clamped to 1.
func NewRunner(cfg *config.Config, log *logging.Logger, workers int) *Runner {
	if workers < 1 {
		workers = 1
	}
	return &Runner{cfg: cfg, log: log, workers: workers}
}

// Workers returns the worker count this runner was built with.
func (r *Runner) Workers() int { return r.workers }

// Run processes every path and returns the merged counters plus the timing
// snapshot. Paths are partitioned into contiguous chunks, one per worker;
// each worker owns its image buffers and a local Counters merged only after
// all workers have joined. The snapshot's start and end samples are taken by
// this goroutine, outside the worker region.
//
// A single image failing to decode, filter, or encode is logged and skipped.
// Run only returns early when ctx is cancelled.
func (r *Runner) Run(ctx context.Context, paths []string) (Counters, timing.Snapshot) {
	// Resolve output paths up front, in sorted input order, so the mapping
	// (including collision suffixes) is identical for any worker count.
	outputs := make([]string, len(paths))
	resolver := naming.NewCollisionResolver()
	for i, p := range paths {
		outputs[i] = resolver.Resolve(p, naming.OutputPath(p, r.cfg.InputDir, r.cfg.OutputDir))
	}

	locals := make([]Counters, r.workers)
	probe := timing.Start()

	var g errgroup.Group
	for w := 0; w < r.workers; w++ {
		lo := w * len(paths) / r.workers
		hi := (w + 1) * len(paths) / r.workers
		local := &locals[w]
		g.Go(func() error {
			for i := lo; i < hi; i++ {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				r.processOne(paths[i], outputs[i], local)
			}
			return nil
		})
	}
	// Worker errors are only context cancellation; item failures never
	// propagate. The partial counters are still merged so an interrupted
	// run logs what it managed to do.
	_ = g.Wait()

	snap := probe.Stop()

	var total Counters
	for _, l := range locals {
		total.Merge(l)
	}
	return total, snap
}

// processOne runs decode → filter → encode for a single image and records
// it into local on success. Failures are logged and skipped; they must never
// abort the batch.
func (r *Runner) processOne(path, output string, local *Counters) {
	basename := filepath.Base(path)

	buf, err := codec.Decode(path)
	if err != nil {
		r.log.Warn("Skip (decode failed): %s: %v", basename, err)
		return
	}

	if err := filter.Apply(buf); err != nil {
		r.log.Warn("Skip (filter failed): %s: %v", basename, err)
		return
	}

	if err := os.MkdirAll(filepath.Dir(output), 0o755); err != nil {
		r.log.Warn("Skip (cannot create output dir): %s: %v", basename, err)
		return
	}
	if err := codec.EncodePNG(output, buf); err != nil {
		r.log.Warn("Skip (encode failed): %s: %v", basename, err)
		return
	}

	local.Record(buf.Pixels(), buf.Width, buf.Height)
	r.log.Debug(r.cfg.Verbose, "ok: %s (%dx%d)", basename, buf.Width, buf.Height)
}
