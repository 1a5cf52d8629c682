// Package sievebench benchmarks a parallel sieve under four synchronization
// disciplines.
//
// This file implements the fluent builder API for configuring benchmarks.
// The builder is immutable - each method returns a copy with the updated
// configuration, so a partially configured builder can be reused safely.
package sievebench

import (
	"fmt"
	"time"

	"github.com/hupe1980/sievebench/sieve"
)

// New creates a benchmark builder for the given strategy kind.
//
// Example:
//
//	b, err := sievebench.New(sieve.KindSpinlock).
//	    Threads(4).
//	    SieveLimit(100_000_000).
//	    PrimeLimit(10_000).
//	    Build()
func New(kind sieve.Kind) Builder {
	return Builder{
		kind:        kind,
		threads:     1,
		sieveLimit:  sieve.DefaultLimit,
		primeLimit:  DefaultPrimeLimit,
		granularity: sieve.DefaultLockGranularity,
	}
}

// Builder is an immutable fluent builder for Benchmark instances.
type Builder struct {
	kind             sieve.Kind
	threads          int
	sieveLimit       int64
	primeLimit       int64
	granularity      int64
	logger           *Logger
	collector        Collector
	progressInterval time.Duration
}

// Threads sets the worker count. Default: 1.
func (b Builder) Threads(n int) Builder {
	b.threads = n
	return b
}

// SieveLimit sets the sieve array size (the range of composites being
// marked). Default: 100,000,000.
func (b Builder) SieveLimit(n int64) Builder {
	b.sieveLimit = n
	return b
}

// PrimeLimit sets the exclusive upper bound of the prime candidate range
// scanned by the workers. Default: 10,000.
func (b Builder) PrimeLimit(p int64) Builder {
	b.primeLimit = p
	return b
}

// LockGranularity sets the cells-per-lock ratio for the lock-based
// strategies. Ignored by atomic and unsafe. Default: 256.
func (b Builder) LockGranularity(g int64) Builder {
	b.granularity = g
	return b
}

// Logger sets the logger. Default: a no-op logger.
func (b Builder) Logger(l *Logger) Builder {
	b.logger = l
	return b
}

// Collector sets the metrics collector. Default: NoopCollector.
func (b Builder) Collector(c Collector) Builder {
	b.collector = c
	return b
}

// ProgressEvery enables rate-limited progress logging at the given interval.
// Progress lines are emitted at debug level, so they are invisible unless
// the configured logger is that verbose.
func (b Builder) ProgressEvery(d time.Duration) Builder {
	b.progressInterval = d
	return b
}

// Build validates the configuration, allocates the strategy and its backing
// storage, and returns a ready-to-run Benchmark.
func (b Builder) Build() (*Benchmark, error) {
	if b.threads < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidThreadCount, b.threads)
	}
	if b.sieveLimit < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSieveLimit, b.sieveLimit)
	}
	if b.primeLimit < 2 || b.primeLimit > b.sieveLimit {
		return nil, fmt.Errorf("%w: got %d with sieve limit %d", ErrInvalidPrimeLimit, b.primeLimit, b.sieveLimit)
	}
	if b.granularity < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidLockGranularity, b.granularity)
	}

	strategy, err := sieve.New(b.kind, sieve.Options{
		Limit:           b.sieveLimit,
		LockGranularity: b.granularity,
	})
	if err != nil {
		return nil, err
	}

	logger := b.logger
	if logger == nil {
		logger = NoopLogger()
	}
	collector := b.collector
	if collector == nil {
		collector = NoopCollector{}
	}

	bench := &Benchmark{
		strategy:   strategy,
		threads:    b.threads,
		primeLimit: b.primeLimit,
		logger:     logger,
		collector:  collector,
	}
	if b.progressInterval > 0 {
		bench.progress = newProgressTracker(b.primeLimit-2, b.progressInterval, logger)
	}
	return bench, nil
}
