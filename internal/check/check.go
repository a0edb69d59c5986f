// Package check provides system diagnostics (--check mode): CPU identity and
// topology, cycle-counter capability, and supported image formats.
package check

import (
	"runtime"

	"github.com/klauspost/cpuid/v2"

	"github.com/backmassage/pixelbench/internal/config"
	"github.com/backmassage/pixelbench/internal/timing"
)

// Logger is the minimal logging interface needed by RunCheck.
// Defined here (rather than importing the logging package) so that check
// remains dependency-light and testable with a mock logger.
type Logger interface {
	Info(string, ...interface{})
	Success(string, ...interface{})
	Warn(string, ...interface{})
	Error(string, ...interface{})
	Debug(bool, string, ...interface{})
}

// RunCheck runs the interactive --check flow: prints the CPU model, core
// counts, clock, and which cycle counter implementation will back the
// benchmark's cycle metrics. Informational only; never fails the process.
func RunCheck(cfg *config.Config, log Logger) {
	log.Info("=== System Check ===")
	log.Info("Go: %s on %s/%s", runtime.Version(), runtime.GOOS, runtime.GOARCH)

	brand := cpuid.CPU.BrandName
	if brand == "" {
		brand = "unknown"
	}
	log.Info("CPU: %s", brand)
	log.Info("Cores: %d logical / %d physical", runtime.NumCPU(), cpuid.CPU.PhysicalCores)

	if hz := cpuid.CPU.Hz; hz > 0 {
		log.Info("Base clock: %.2f GHz", float64(hz)/1e9)
	} else {
		log.Info("Base clock: not reported")
	}

	switch timing.Source() {
	case timing.SourceTSC:
		log.Success("Cycle counter: hardware TSC")
	default:
		log.Warn("Cycle counter: monotonic fallback (pseudo cycles; not comparable across machines)")
	}

	log.Info("Formats: decode png/jpeg/bmp, encode png")
	log.Info("Default workers: %d", cfg.Workers)
}
