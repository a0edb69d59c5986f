package metrics

// Comparison relates a baseline run to a parallel run of the same workload.
// Every field is null when its denominator run reported zero (or null).
type Comparison struct {
	SpeedupWallTime     *float64 `json:"speedup_wall_time"`
	SpeedupCPUUser      *float64 `json:"speedup_cpu_user"`
	SpeedupCPUSystem    *float64 `json:"speedup_cpu_system"`
	SpeedupPixelsPerSec *float64 `json:"speedup_pixels_per_sec"`
	ParallelEfficiency  *float64 `json:"parallel_efficiency"`

	SerialPixelsPerSec   *float64 `json:"serial_pixels_per_sec"`
	ParallelPixelsPerSec *float64 `json:"parallel_pixels_per_sec"`

	SerialCPUUtilization   *float64 `json:"serial_cpu_utilization"`
	ParallelCPUUtilization *float64 `json:"parallel_cpu_utilization"`

	SerialEstTotalCyclesAllThreads   *float64 `json:"serial_est_total_cycles_all_threads"`
	ParallelEstTotalCyclesAllThreads *float64 `json:"parallel_est_total_cycles_all_threads"`
}

// Compare derives the comparison block from a baseline and a parallel metric
// set. Callers are responsible for ensuring both sets describe the same
// logical workload.
func Compare(serial, parallel Set) Comparison {
	speedupWall := ratio(serial.WallTimeSec, parallel.WallTimeSec)

	return Comparison{
		SpeedupWallTime:     speedupWall,
		SpeedupCPUUser:      ratio(serial.CPUUserTimeSec, parallel.CPUUserTimeSec),
		SpeedupCPUSystem:    ratio(serial.CPUSystemTimeSec, parallel.CPUSystemTimeSec),
		SpeedupPixelsPerSec: divPtr(parallel.PixelsPerSec, serial.PixelsPerSec),
		ParallelEfficiency:  div(speedupWall, float64(parallel.ThreadsUsed)),

		SerialPixelsPerSec:   serial.PixelsPerSec,
		ParallelPixelsPerSec: parallel.PixelsPerSec,

		SerialCPUUtilization:   ratio(serial.cpuTotal(), serial.WallTimeSec),
		ParallelCPUUtilization: ratio(parallel.cpuTotal(), parallel.WallTimeSec),

		SerialEstTotalCyclesAllThreads:   serial.estTotalCycles(),
		ParallelEstTotalCyclesAllThreads: parallel.estTotalCycles(),
	}
}

// divPtr divides two possibly-nil values, nil when either is undefined or
// the denominator is zero.
func divPtr(num, den *float64) *float64 {
	if num == nil || den == nil || *den == 0 {
		return nil
	}
	v := *num / *den
	return &v
}
