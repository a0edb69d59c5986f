package report

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/backmassage/pixelbench/internal/metrics"
	"github.com/backmassage/pixelbench/internal/timing"
)

func f64(v float64) *float64 { return &v }

func sampleReport(variant Variant) *Report {
	return &Report{
		Variant:     variant,
		InputDir:    "testdata/in",
		OutputDir:   "testdata/out",
		CycleSource: timing.SourceTSC,
		Metrics: metrics.Set{
			ImagesProcessed: 3,
			TotalPixels:     30000,
			MaxWidth:        200,
			MaxHeight:       100,
			WallTimeSec:     1.5,
			CPUUserTimeSec:  1.2,
			CPUCyclesTSC:    42000,
			PixelsPerSec:    f64(20000),
		},
	}
}

func TestWriteLoad_Roundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", SerialFile)
	want := sampleReport(VariantBaseline)

	require.NoError(t, Write(path, want))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestWrite_SchemaFieldNames(t *testing.T) {
	// The dashboard reads these exact keys; lock them down.
	path := filepath.Join(t.TempDir(), ParallelFile)
	rep := sampleReport(VariantParallel)
	rep.Metrics.ThreadsUsed = 8
	rep.Metrics.EstimatedTotalCyclesAllThreads = f64(84000)
	require.NoError(t, Write(path, rep))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Equal(t, "parallel", raw["variant"])
	assert.Equal(t, "tsc", raw["cycle_source"])

	m, ok := raw["metrics"].(map[string]any)
	require.True(t, ok, "metrics must be an object")
	for _, key := range []string{
		"images_processed", "total_pixels", "wall_time_sec",
		"cpu_user_time_sec", "cpu_system_time_sec",
		"avg_time_per_image_ms", "avg_time_per_pixel_ns",
		"cpu_cycles_tsc", "cycles_per_image_tsc", "cycles_per_pixel_tsc",
		"max_width", "max_height", "pixels_per_sec",
		"estimated_total_cycles_all_threads", "threads_used",
	} {
		assert.Contains(t, m, key)
	}

	// Undefined metrics serialize as null, never as a crash or a zero lie.
	assert.Nil(t, m["avg_time_per_image_ms"])
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), SerialFile))
	require.Error(t, err)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestLoad_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), SerialFile)
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))
	_, err := Load(path)
	assert.Error(t, err)
}

func TestBuildCompare(t *testing.T) {
	serial := sampleReport(VariantBaseline)
	parallel := sampleReport(VariantParallel)
	parallel.Metrics.WallTimeSec = 0.5
	parallel.Metrics.ThreadsUsed = 4

	cmp, err := BuildCompare(serial, parallel)
	require.NoError(t, err)

	require.NotNil(t, cmp.Comparison.SpeedupWallTime)
	assert.InDelta(t, 3.0, *cmp.Comparison.SpeedupWallTime, 1e-9)
	assert.Equal(t, serial.Metrics, cmp.Serial)
	assert.Equal(t, parallel.Metrics, cmp.Parallel)
}

func TestBuildCompare_VariantMismatch(t *testing.T) {
	_, err := BuildCompare(sampleReport(VariantParallel), sampleReport(VariantParallel))
	assert.Error(t, err)
}

func TestBuildCompare_MixedCycleSources(t *testing.T) {
	serial := sampleReport(VariantBaseline)
	parallel := sampleReport(VariantParallel)
	parallel.CycleSource = timing.SourceMonotonic

	_, err := BuildCompare(serial, parallel)
	assert.Error(t, err)
}

func TestBuildCompare_CompareFileShape(t *testing.T) {
	serial := sampleReport(VariantBaseline)
	parallel := sampleReport(VariantParallel)
	parallel.Metrics.ThreadsUsed = 2

	cmp, err := BuildCompare(serial, parallel)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), CompareFile)
	require.NoError(t, Write(path, cmp))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	require.Contains(t, raw, "comparison")
	require.Contains(t, raw, "serial")
	require.Contains(t, raw, "parallel")

	c, ok := raw["comparison"].(map[string]any)
	require.True(t, ok)
	for _, key := range []string{
		"speedup_wall_time", "speedup_cpu_user", "speedup_cpu_system",
		"speedup_pixels_per_sec", "parallel_efficiency",
		"serial_pixels_per_sec", "parallel_pixels_per_sec",
		"serial_cpu_utilization", "parallel_cpu_utilization",
		"serial_est_total_cycles_all_threads", "parallel_est_total_cycles_all_threads",
	} {
		assert.Contains(t, c, key)
	}
}
