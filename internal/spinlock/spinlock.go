// Package spinlock provides a minimal test-and-set spin lock.
//
// The lock busy-waits on acquisition instead of parking the goroutine. It is
// an experimental primitive for contention studies, not a replacement for
// sync.Mutex: under heavy contention the spin loop burns CPU, and fairness is
// whatever the hardware gives you. Go's asynchronous preemption keeps an
// uncooperative spin from starving the scheduler, so the loop never yields.
package spinlock

import (
	"sync/atomic"
	"unsafe"
)

// cacheLineSize is a reasonable default for current CPUs. The runtime keeps
// its own value unexported; 64 works well in practice.
const cacheLineSize = 64

// Lock is a test-and-set spin lock. The zero value is unlocked.
type Lock struct {
	state atomic.Uint32
}

// Lock acquires the lock, spinning until it succeeds.
func (l *Lock) Lock() {
	for !l.state.CompareAndSwap(0, 1) {
		// Optimistic reload keeps the CAS off the bus while contended.
		for l.state.Load() != 0 {
		}
	}
}

// TryLock acquires the lock without spinning. Returns true on success.
func (l *Lock) TryLock() bool {
	return l.state.CompareAndSwap(0, 1)
}

// Unlock releases the lock. Calling Unlock on an unlocked Lock leaves it
// unlocked; there is no owner tracking.
func (l *Lock) Unlock() {
	l.state.Store(0)
}

// PaddedLock is a Lock padded to one cache line. Use in dense lock tables so
// adjacent locks do not false-share a line.
type PaddedLock struct {
	l Lock
	_ [cacheLineSize - unsafe.Sizeof(Lock{})]byte
}

// Lock acquires the lock, spinning until it succeeds.
func (p *PaddedLock) Lock() { p.l.Lock() }

// TryLock acquires the lock without spinning. Returns true on success.
func (p *PaddedLock) TryLock() bool { return p.l.TryLock() }

// Unlock releases the lock.
func (p *PaddedLock) Unlock() { p.l.Unlock() }
