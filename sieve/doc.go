// Package sieve provides the shared composite-marker array and its four
// synchronization strategies.
//
// Architecture:
//   - One cell per integer in [0, limit), zero = not yet known composite
//   - Strategy variants differ only in how concurrent cell access is mediated
//   - Mutex/Spinlock: block-granular lock table (one lock per 256 cells)
//   - Atomic: per-cell atomic load/store, no cross-cell ordering
//   - Unsafe: plain loads and stores, a deliberate data race
//
// Cells transition at most once, unknown -> composite. The transition is
// idempotent, which is what keeps the Atomic variant well-defined without
// any synchronization between racing writers.
package sieve
