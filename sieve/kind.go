package sieve

import "fmt"

// Kind identifies a synchronization strategy.
type Kind uint8

const (
	// KindMutex guards cell blocks with sync.Mutex.
	KindMutex Kind = iota
	// KindSpinlock guards cell blocks with a busy-wait test-and-set lock.
	KindSpinlock
	// KindAtomic uses per-cell atomic loads and stores.
	KindAtomic
	// KindUnsafe uses plain unsynchronized loads and stores.
	KindUnsafe
)

// Kinds lists all strategy kinds in declaration order.
func Kinds() []Kind {
	return []Kind{KindMutex, KindSpinlock, KindAtomic, KindUnsafe}
}

// String returns the canonical lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case KindMutex:
		return "mutex"
	case KindSpinlock:
		return "spinlock"
	case KindAtomic:
		return "atomic"
	case KindUnsafe:
		return "unsafe"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Title returns the capitalized display name of the kind.
func (k Kind) Title() string {
	switch k {
	case KindMutex:
		return "Mutex"
	case KindSpinlock:
		return "Spinlock"
	case KindAtomic:
		return "Atomic"
	case KindUnsafe:
		return "Unsafe"
	default:
		return k.String()
	}
}

// ErrUnknownKind indicates a strategy name outside the recognized set.
type ErrUnknownKind struct {
	Name string
}

func (e *ErrUnknownKind) Error() string {
	return fmt.Sprintf("unknown strategy: %q", e.Name)
}

// ParseKind parses a canonical strategy name.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "mutex":
		return KindMutex, nil
	case "spinlock":
		return KindSpinlock, nil
	case "atomic":
		return KindAtomic, nil
	case "unsafe":
		return KindUnsafe, nil
	default:
		return 0, &ErrUnknownKind{Name: s}
	}
}
