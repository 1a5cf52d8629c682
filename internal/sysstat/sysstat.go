// Package sysstat captures process resource usage around a measured section.
package sysstat

import "time"

// Usage is a point-in-time process resource snapshot.
type Usage struct {
	// UserTime is CPU time spent in user mode.
	UserTime time.Duration
	// SystemTime is CPU time spent in kernel mode.
	SystemTime time.Duration
	// MaxRSSBytes is the peak resident set size.
	MaxRSSBytes int64
}

// Delta returns the resource usage accumulated since an earlier snapshot.
// MaxRSS is a high-water mark rather than a counter, so the later value is
// reported as-is.
func Delta(before, after Usage) Usage {
	return Usage{
		UserTime:    after.UserTime - before.UserTime,
		SystemTime:  after.SystemTime - before.SystemTime,
		MaxRSSBytes: after.MaxRSSBytes,
	}
}
