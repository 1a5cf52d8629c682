package sieve

// Unsafe is the deliberately unsynchronized strategy: plain shared-memory
// reads and writes with no atomicity, ordering, or exclusion. Concurrent use
// is a data race by construction — `go test -race` will report it, and the
// Go memory model makes no promise that one worker's marks are ever visible
// to another. The race is the phenomenon under study; do not "fix" this
// variant with atomics.
//
// The eventual cell values still tend toward the correct sieve because the
// only write is idempotent, but nothing guarantees it, and intermediate
// reads may be arbitrarily stale.
type Unsafe struct {
	cells []byte
}

// NewUnsafe constructs the Unsafe strategy.
func NewUnsafe(opts Options) *Unsafe {
	opts.withDefaults()
	return &Unsafe{cells: make([]byte, opts.Limit)}
}

// Test reports whether cell i is observed as composite.
func (s *Unsafe) Test(i int64) bool {
	return s.cells[i] != 0
}

// Mark sets cell i to composite.
func (s *Unsafe) Mark(i int64) {
	s.cells[i] = 1
}

// Kind returns KindUnsafe.
func (s *Unsafe) Kind() Kind { return KindUnsafe }

// Len returns the number of cells.
func (s *Unsafe) Len() int64 { return int64(len(s.cells)) }
