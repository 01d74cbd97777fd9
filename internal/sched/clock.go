package sched

import (
	"golang.org/x/sys/unix"
)

// MonotonicMillis returns CLOCK_MONOTONIC in milliseconds, the same clock
// source the scheduler's deadlines are expressed in.
func MonotonicMillis() int64 {
	var ts unix.Timespec
	if err := unix.ClockGettime(unix.CLOCK_MONOTONIC, &ts); err != nil {
		// CLOCK_MONOTONIC is always available on Linux; a failure here
		// means something is badly wrong with the process, not a
		// recoverable runtime condition.
		panic("sched: clock_gettime(CLOCK_MONOTONIC): " + err.Error())
	}
	return ts.Nano() / int64(1_000_000)
}
