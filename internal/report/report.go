// Package report reads and writes the persisted JSON benchmark reports.
//
// Three files live in the results directory: serial_metrics.json,
// parallel_metrics.json, and compare_metrics.json. Their schema is consumed
// by an external dashboard, which only ever reads them; nothing outside this
// package ever mutates a written report.
package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/backmassage/pixelbench/internal/metrics"
	"github.com/backmassage/pixelbench/internal/timing"
)

// Report file names within the results directory.
const (
	SerialFile   = "serial_metrics.json"
	ParallelFile = "parallel_metrics.json"
	CompareFile  = "compare_metrics.json"
)

// Variant tags a report as the baseline or the parallel run.
type Variant string

const (
	VariantBaseline Variant = "baseline"
	VariantParallel Variant = "parallel"
)

// Report is one persisted run. CycleSource records whether the cycle fields
// are hardware TSC reads or monotonic-clock estimates; cross-machine
// comparison of estimated cycles is not meaningful.
type Report struct {
	Variant     Variant            `json:"variant"`
	InputDir    string             `json:"input_dir"`
	OutputDir   string             `json:"output_dir"`
	CycleSource timing.CycleSource `json:"cycle_source"`
	Metrics     metrics.Set        `json:"metrics"`
}

// CompareReport relates a baseline and a parallel report over the same
// workload. It embeds full copies of both metric sets so the file is
// self-contained.
type CompareReport struct {
	Comparison metrics.Comparison `json:"comparison"`
	Serial     metrics.Set        `json:"serial"`
	Parallel   metrics.Set        `json:"parallel"`
}

// BuildCompare derives the comparison report. It refuses mismatched inputs:
// swapped variants, or cycle values measured by different counter
// implementations (mixing hardware and pseudo cycles would make the cycle
// comparisons meaningless).
func BuildCompare(serial, parallel *Report) (*CompareReport, error) {
	if serial.Variant != VariantBaseline || parallel.Variant != VariantParallel {
		return nil, fmt.Errorf("comparison needs a %q and a %q report, got %q and %q",
			VariantBaseline, VariantParallel, serial.Variant, parallel.Variant)
	}
	if serial.CycleSource != parallel.CycleSource {
		return nil, fmt.Errorf("cycle sources differ (%s vs %s); refusing to compare cycle counts",
			serial.CycleSource, parallel.CycleSource)
	}
	return &CompareReport{
		Comparison: metrics.Compare(serial.Metrics, parallel.Metrics),
		Serial:     serial.Metrics,
		Parallel:   parallel.Metrics,
	}, nil
}

// Write persists v (a *Report or *CompareReport) as indented JSON at path,
// creating the results directory if needed. A write failure is fatal for the
// run.
func Write(path string, v any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("write report %s: %w", path, err)
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("write report %s: %w", path, err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write report %s: %w", path, err)
	}
	return nil
}

// Load reads a run report from path. A missing file surfaces as an
// fs.ErrNotExist-wrapped error so callers can skip comparison gracefully.
func Load(path string) (*Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load report %s: %w", path, err)
	}
	var r Report
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("load report %s: %w", path, err)
	}
	return &r, nil
}
