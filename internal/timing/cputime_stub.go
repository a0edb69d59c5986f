//go:build !unix

package timing

import "time"

// cpuTimes has no rusage equivalent on this platform; user/system CPU time
// reports as zero.
func cpuTimes() (user, system time.Duration) {
	return 0, 0
}
