// Package sievebench benchmarks a parallel Sieve of Eratosthenes under four
// synchronization disciplines.
//
// The experiment: T workers share one composite-marker array of 100 million
// cells and concurrently strike out multiples of every prime candidate below
// 10,000. The only difference between runs is how access to the shared array
// is mediated:
//
//   - mutex:    a table of sync.Mutex, one per 256-cell block
//   - spinlock: the same table discipline over a busy-wait test-and-set lock
//   - atomic:   per-cell atomic loads and stores, no locks
//   - unsafe:   plain loads and stores — a deliberate data race
//
// The unsafe variant exists to be observed, not fixed: its result may be
// wrong in ways the others never are, and `go test -race` will flag it.
//
// # Quick Start
//
//	b, err := sievebench.New(sieve.KindAtomic).
//	    Threads(8).
//	    Build()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	result, err := b.Run(context.Background())
//	fmt.Printf("%s: %.3fs\n", result.Kind, result.Seconds())
//
// Small instances for tests and exploration:
//
//	b, _ := sievebench.New(sieve.KindMutex).
//	    Threads(2).
//	    SieveLimit(30).
//	    PrimeLimit(6).
//	    Build()
//
// The verify package checks a result against a single-threaded reference
// run, and the snapshot package persists results for offline comparison.
package sievebench
