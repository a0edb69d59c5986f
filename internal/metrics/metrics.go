// Package metrics derives benchmark metrics from raw run measurements.
//
// Everything here is a pure function of counters and timing snapshots. Any
// metric whose denominator is zero (no images processed, degenerate wall
// time) is represented as a nil pointer, which serializes to JSON null; the
// engine never divides by zero and never silently reports 0 for an
// undefined value.
package metrics

import (
	"github.com/backmassage/pixelbench/internal/pipeline"
	"github.com/backmassage/pixelbench/internal/timing"
)

// Set is the derived metric block for one run. Pointer fields are null when
// undefined. The parallel-only fields are omitted entirely on baseline runs.
type Set struct {
	ImagesProcessed uint64 `json:"images_processed"`
	TotalPixels     uint64 `json:"total_pixels"`
	MaxWidth        int    `json:"max_width"`
	MaxHeight       int    `json:"max_height"`

	WallTimeSec      float64 `json:"wall_time_sec"`
	CPUUserTimeSec   float64 `json:"cpu_user_time_sec"`
	CPUSystemTimeSec float64 `json:"cpu_system_time_sec"`
	CPUCyclesTSC     uint64  `json:"cpu_cycles_tsc"`

	AvgTimePerImageMs *float64 `json:"avg_time_per_image_ms"`
	AvgTimePerPixelNs *float64 `json:"avg_time_per_pixel_ns"`
	CyclesPerImageTSC *float64 `json:"cycles_per_image_tsc"`
	CyclesPerPixelTSC *float64 `json:"cycles_per_pixel_tsc"`
	PixelsPerSec      *float64 `json:"pixels_per_sec"`

	// Parallel-only fields. The all-threads cycle numbers are estimates: a
	// single-core cycle reading scaled by the ratio of total CPU time to
	// wall time. They are not hardware counter reads.
	CPUTotalTimeSec                   *float64 `json:"cpu_total_time_sec,omitempty"`
	EstimatedTotalCyclesAllThreads    *float64 `json:"estimated_total_cycles_all_threads,omitempty"`
	EstimatedCyclesPerImageAllThreads *float64 `json:"estimated_cycles_per_image_all_threads,omitempty"`
	EstimatedCyclesPerPixelAllThreads *float64 `json:"estimated_cycles_per_pixel_all_threads,omitempty"`
	ThreadsUsed                       int      `json:"threads_used,omitempty"`
}

// Compute derives the baseline metric set from one run's counters and
// timing snapshot.
func Compute(c pipeline.Counters, snap timing.Snapshot) Set {
	wall := snap.WallSeconds()
	cycles := snap.ElapsedCycles()
	images := float64(c.ImagesProcessed)
	pixels := float64(c.TotalPixels)

	return Set{
		ImagesProcessed:   c.ImagesProcessed,
		TotalPixels:       c.TotalPixels,
		MaxWidth:          c.MaxWidth,
		MaxHeight:         c.MaxHeight,
		WallTimeSec:       wall,
		CPUUserTimeSec:    snap.CPUUserSeconds(),
		CPUSystemTimeSec:  snap.CPUSystemSeconds(),
		CPUCyclesTSC:      cycles,
		AvgTimePerImageMs: ratio(wall*1000, images),
		AvgTimePerPixelNs: ratio(wall*1e9, pixels),
		CyclesPerImageTSC: ratio(float64(cycles), images),
		CyclesPerPixelTSC: ratio(float64(cycles), pixels),
		PixelsPerSec:      ratio(pixels, wall),
	}
}

// ComputeParallel derives the parallel metric set: the baseline set plus the
// all-threads cycle estimates and the worker count.
func ComputeParallel(c pipeline.Counters, snap timing.Snapshot, workers int) Set {
	s := Compute(c, snap)

	cpuTotal := s.CPUUserTimeSec + s.CPUSystemTimeSec
	s.CPUTotalTimeSec = &cpuTotal
	s.ThreadsUsed = workers

	// One core's cycle reading scaled by CPU-time/wall-time approximates
	// aggregate cycles across all active cores.
	estTotal := mul(ratio(cpuTotal, s.WallTimeSec), float64(s.CPUCyclesTSC))
	s.EstimatedTotalCyclesAllThreads = estTotal
	s.EstimatedCyclesPerImageAllThreads = div(estTotal, float64(c.ImagesProcessed))
	s.EstimatedCyclesPerPixelAllThreads = div(estTotal, float64(c.TotalPixels))
	return s
}

// cpuTotal returns user+system CPU seconds for a computed set.
func (s Set) cpuTotal() float64 {
	if s.CPUTotalTimeSec != nil {
		return *s.CPUTotalTimeSec
	}
	return s.CPUUserTimeSec + s.CPUSystemTimeSec
}

// estTotalCycles returns the all-threads cycle estimate, computing it for
// baseline sets that don't carry the field.
func (s Set) estTotalCycles() *float64 {
	if s.EstimatedTotalCyclesAllThreads != nil {
		return s.EstimatedTotalCyclesAllThreads
	}
	return mul(ratio(s.cpuTotal(), s.WallTimeSec), float64(s.CPUCyclesTSC))
}

// ratio returns num/den, or nil when den is zero.
func ratio(num, den float64) *float64 {
	if den == 0 {
		return nil
	}
	v := num / den
	return &v
}

// div divides a possibly-nil numerator by den, nil when either is undefined.
func div(num *float64, den float64) *float64 {
	if num == nil || den == 0 {
		return nil
	}
	v := *num / den
	return &v
}

// mul scales a possibly-nil value, propagating nil.
func mul(v *float64, by float64) *float64 {
	if v == nil {
		return nil
	}
	out := *v * by
	return &out
}
