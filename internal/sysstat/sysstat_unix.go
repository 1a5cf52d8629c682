//go:build unix || linux || darwin || freebsd || openbsd || netbsd

package sysstat

import (
	"runtime"
	"time"

	"golang.org/x/sys/unix"
)

// Snapshot reads the current process resource usage via getrusage(2).
// Returns the zero Usage if the syscall fails.
func Snapshot() Usage {
	var ru unix.Rusage
	if err := unix.Getrusage(unix.RUSAGE_SELF, &ru); err != nil {
		return Usage{}
	}

	maxRSS := ru.Maxrss
	// Linux reports ru_maxrss in kilobytes, darwin in bytes.
	if runtime.GOOS != "darwin" {
		maxRSS *= 1024
	}

	return Usage{
		UserTime:    timevalDuration(ru.Utime),
		SystemTime:  timevalDuration(ru.Stime),
		MaxRSSBytes: maxRSS,
	}
}

func timevalDuration(tv unix.Timeval) time.Duration {
	return time.Duration(tv.Sec)*time.Second + time.Duration(tv.Usec)*time.Microsecond
}
