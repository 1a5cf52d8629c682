package sieve

import "sync"

// Mutex is the lock-based strategy: a table of sync.Mutex, each guarding a
// contiguous block of cells. Test and Mark hold the block's lock for the
// duration of the access, giving per-block mutual exclusion and sequentially
// consistent visibility of marks within the block.
type Mutex struct {
	cells       []byte
	locks       []sync.Mutex
	granularity int64
}

// NewMutex constructs the Mutex strategy. opts must have defaults applied or
// non-zero fields.
func NewMutex(opts Options) *Mutex {
	opts.withDefaults()
	return &Mutex{
		cells:       make([]byte, opts.Limit),
		locks:       make([]sync.Mutex, lockCount(opts.Limit, opts.LockGranularity)),
		granularity: opts.LockGranularity,
	}
}

// Test reports whether cell i is marked composite.
func (s *Mutex) Test(i int64) bool {
	mu := &s.locks[i/s.granularity]
	mu.Lock()
	v := s.cells[i]
	mu.Unlock()
	return v != 0
}

// Mark sets cell i to composite.
func (s *Mutex) Mark(i int64) {
	mu := &s.locks[i/s.granularity]
	mu.Lock()
	s.cells[i] = 1
	mu.Unlock()
}

// Kind returns KindMutex.
func (s *Mutex) Kind() Kind { return KindMutex }

// Len returns the number of cells.
func (s *Mutex) Len() int64 { return int64(len(s.cells)) }
