package sieve

const (
	// DefaultLimit is the sieve array size used by the original experiment.
	DefaultLimit = 100_000_000

	// DefaultLockGranularity is the number of cells guarded by one lock in
	// the Mutex and Spinlock variants.
	DefaultLockGranularity = 256
)

// Strategy mediates concurrent access to the shared sieve array.
//
// Test reports whether cell i is currently observed as composite; Mark sets
// it. Both require 0 <= i < Len(); indices are always derived from bounded
// prime multiples, so the contract is not runtime-checked beyond the slice's
// own bounds check.
//
// Implementations are safe for concurrent use by any number of goroutines,
// with one exception: the Unsafe variant provides no guarantees at all. That
// is its purpose.
type Strategy interface {
	Test(i int64) bool
	Mark(i int64)
	Kind() Kind
	Len() int64
}

// Tester is the read-only view of a sieve result. The verify and snapshot
// packages accept this instead of a full Strategy.
type Tester interface {
	Test(i int64) bool
	Len() int64
}

// Options configures strategy construction.
type Options struct {
	// Limit is the sieve array size (number of cells).
	Limit int64

	// LockGranularity is the cells-per-lock ratio for the lock-based
	// variants. Ignored by Atomic and Unsafe. Zero means
	// DefaultLockGranularity.
	LockGranularity int64
}

func (o *Options) withDefaults() {
	if o.Limit == 0 {
		o.Limit = DefaultLimit
	}
	if o.LockGranularity == 0 {
		o.LockGranularity = DefaultLockGranularity
	}
}

// New constructs the strategy variant for kind. Storage is allocated eagerly;
// for the default limit that is roughly 100 MB (400 MB for Atomic, which needs
// 32-bit cells because Go has no byte-granular atomics).
func New(kind Kind, opts Options) (Strategy, error) {
	opts.withDefaults()

	switch kind {
	case KindMutex:
		return NewMutex(opts), nil
	case KindSpinlock:
		return NewSpinlock(opts), nil
	case KindAtomic:
		return NewAtomic(opts), nil
	case KindUnsafe:
		return NewUnsafe(opts), nil
	default:
		return nil, &ErrUnknownKind{Name: kind.String()}
	}
}

// lockCount returns the lock table size for a limit/granularity pair.
func lockCount(limit, granularity int64) int64 {
	return (limit + granularity - 1) / granularity
}
