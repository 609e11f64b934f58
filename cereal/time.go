package cereal

import (
	"golang.org/x/sys/unix"
)

// GetTime returns the monotonic clock in nanoseconds, the time base used for
// logMonoTime.
func GetTime() uint64 {
	var ts unix.Timespec
	if err := unix.ClockGettime(unix.CLOCK_MONOTONIC, &ts); err != nil {
		panic(err)
	}
	return uint64(ts.Nano())
}
