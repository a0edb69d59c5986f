//go:build !amd64

package timing

// No direct cycle register read on this architecture; all cycle values are
// monotonic-clock estimates.
func readCycles() uint64 {
	return pseudoCycles()
}

// Source reports which cycle counter implementation is active.
func Source() CycleSource {
	return SourceMonotonic
}
