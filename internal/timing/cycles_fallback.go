package timing

import (
	"time"

	"github.com/klauspost/cpuid/v2"
)

// assumedHz is used when the CPU does not report a base clock. The absolute
// rate only affects pseudo-cycle magnitudes, not any ratio derived from
// them, since start and end samples use the same scale.
const assumedHz = 1e9

var (
	cycleHz   = detectCycleRate()
	cycleBase = time.Now()
)

// detectCycleRate picks the monotonic-to-pseudo-cycle scale: the CPU's
// reported base frequency when known, an assumed 1 GHz otherwise.
func detectCycleRate() float64 {
	if hz := cpuid.CPU.Hz; hz > 0 {
		return float64(hz)
	}
	return assumedHz
}

// pseudoCycles estimates a cycle count from the monotonic clock. Values are
// only meaningful relative to other pseudoCycles reads in the same process.
func pseudoCycles() uint64 {
	return uint64(time.Since(cycleBase).Seconds() * cycleHz)
}
