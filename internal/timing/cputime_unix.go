//go:build unix

package timing

import (
	"time"

	"golang.org/x/sys/unix"
)

// cpuTimes reads the process's accumulated user and system CPU time from
// getrusage(RUSAGE_SELF). Both values are non-decreasing over the process
// lifetime; a failed syscall yields zeros rather than an error since the
// probe must never abort a run.
func cpuTimes() (user, system time.Duration) {
	var ru unix.Rusage
	if err := unix.Getrusage(unix.RUSAGE_SELF, &ru); err != nil {
		return 0, 0
	}
	return timevalDuration(ru.Utime), timevalDuration(ru.Stime)
}

func timevalDuration(tv unix.Timeval) time.Duration {
	return time.Duration(tv.Sec)*time.Second + time.Duration(tv.Usec)*time.Microsecond
}
