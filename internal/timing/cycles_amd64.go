//go:build amd64

package timing

import "github.com/klauspost/cpuid/v2"

// Hardware reads are only trusted when the CPU advertises RDTSCP, which on
// current hardware accompanies an invariant (constant-rate) TSC. Anything
// older falls back to the monotonic pseudo-cycle clock.
var hasTSC = cpuid.CPU.Has(cpuid.RDTSCP)

// rdtsc is implemented in cycles_amd64.s.
func rdtsc() uint64

func readCycles() uint64 {
	if hasTSC {
		return rdtsc()
	}
	return pseudoCycles()
}

// Source reports which cycle counter implementation is active.
func Source() CycleSource {
	if hasTSC {
		return SourceTSC
	}
	return SourceMonotonic
}
