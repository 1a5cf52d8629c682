//go:build !(unix || linux || darwin || freebsd || openbsd || netbsd)

package sysstat

// Snapshot returns the zero Usage on platforms without getrusage.
func Snapshot() Usage {
	return Usage{}
}
