// Package timing provides the run-level measurement probe: monotonic wall
// time, accumulated user/system CPU time, and a cycle counter.
//
// The cycle counter is a hardware TSC read where the platform exposes one,
// and otherwise a pseudo-cycle value derived from the monotonic clock scaled
// by the CPU's reported base frequency. Reports carry the [CycleSource] tag
// so pseudo-cycle numbers are never compared across machines as if they were
// hardware counts.
package timing

import "time"

// CycleSource identifies how cycle values were obtained.
type CycleSource string

const (
	// SourceTSC means cycles are direct hardware time-stamp-counter reads.
	SourceTSC CycleSource = "tsc"
	// SourceMonotonic means cycles are estimated from the monotonic clock.
	SourceMonotonic CycleSource = "monotonic"
)

// Sample is one instantaneous reading of all three probes.
type Sample struct {
	Wall      time.Time
	CPUUser   time.Duration
	CPUSystem time.Duration
	Cycles    uint64
}

// Snapshot is a completed start/stop measurement pair. It is captured
// exactly once per run, by the coordinating goroutine, outside the worker
// region, and never mutated afterwards.
type Snapshot struct {
	Start  Sample
	End    Sample
	Source CycleSource
}

// Probe holds the start sample between Start and Stop.
type Probe struct {
	start Sample
}

// Start takes the run-start sample.
func Start() *Probe {
	return &Probe{start: sample()}
}

// Stop takes the run-end sample and returns the completed snapshot.
func (p *Probe) Stop() Snapshot {
	return Snapshot{
		Start:  p.start,
		End:    sample(),
		Source: Source(),
	}
}

func sample() Sample {
	user, system := cpuTimes()
	return Sample{
		Wall:      time.Now(),
		CPUUser:   user,
		CPUSystem: system,
		Cycles:    readCycles(),
	}
}

// WallSeconds returns the elapsed wall time using the monotonic reading.
func (s Snapshot) WallSeconds() float64 {
	return s.End.Wall.Sub(s.Start.Wall).Seconds()
}

// CPUUserSeconds returns user CPU time accumulated during the run.
func (s Snapshot) CPUUserSeconds() float64 {
	return (s.End.CPUUser - s.Start.CPUUser).Seconds()
}

// CPUSystemSeconds returns system CPU time accumulated during the run.
func (s Snapshot) CPUSystemSeconds() float64 {
	return (s.End.CPUSystem - s.Start.CPUSystem).Seconds()
}

// ElapsedCycles returns the cycle delta, guarding against a counter that
// moved backwards (possible across core migrations on broken TSCs).
func (s Snapshot) ElapsedCycles() uint64 {
	if s.End.Cycles < s.Start.Cycles {
		return 0
	}
	return s.End.Cycles - s.Start.Cycles
}
