package sievebench

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/sievebench/internal/partition"
	"github.com/hupe1980/sievebench/internal/sysstat"
	"github.com/hupe1980/sievebench/sieve"
)

// DefaultPrimeLimit bounds the prime candidate range [2, P) scanned by the
// workers in the original experiment. Note that it is distinct from and much
// smaller than the sieve limit: P bounds the prime seeds, the sieve limit
// bounds the composites being marked.
const DefaultPrimeLimit = 10_000

// Benchmark runs the sieve-marking workload against one strategy instance.
// Construct it with New(...).Build(); a Benchmark is intended for a single
// Run, since the shared array carries marks between runs.
type Benchmark struct {
	strategy   sieve.Strategy
	threads    int
	primeLimit int64
	logger     *Logger
	collector  Collector
	progress   *progressTracker
}

// Strategy exposes the underlying strategy, e.g. to verify or snapshot the
// result after Run.
func (b *Benchmark) Strategy() sieve.Strategy { return b.strategy }

// Result is the observable output of one benchmark run.
type Result struct {
	// Kind is the strategy that produced the result.
	Kind sieve.Kind

	// Threads is the worker count.
	Threads int

	// Elapsed is the wall-clock duration of the spawn-to-completion window.
	// Strategy and storage construction happen before timing starts.
	Elapsed time.Duration

	// Usage is the process CPU time and peak RSS accumulated over the run.
	// Zero on platforms without getrusage.
	Usage sysstat.Usage
}

// Seconds returns the elapsed wall-clock time in seconds.
func (r *Result) Seconds() float64 {
	return r.Elapsed.Seconds()
}

// Run executes the benchmark: split [2, primeLimit) into one contiguous
// range per worker, spawn the workers against the shared array, join them,
// and report elapsed wall-clock time. No partial results are inspected.
//
// ctx cancellation abandons the run between prime candidates; with a
// background context every worker runs its range to completion.
func (b *Benchmark) Run(ctx context.Context) (*Result, error) {
	ranges := partition.Split(2, b.primeLimit, b.threads)

	b.logger.DebugContext(ctx, "starting workers",
		"strategy", b.strategy.Kind().String(),
		"threads", b.threads,
		"sieve_limit", b.strategy.Len(),
		"prime_limit", b.primeLimit,
	)

	before := sysstat.Snapshot()
	start := time.Now()

	g, ctx := errgroup.WithContext(ctx)
	for _, r := range ranges {
		r := r
		g.Go(func() error {
			return b.runWorker(ctx, r)
		})
	}
	if err := g.Wait(); err != nil {
		b.collector.RecordRun(b.strategy.Kind(), b.threads, time.Since(start), err)
		return nil, err
	}

	result := &Result{
		Kind:    b.strategy.Kind(),
		Threads: b.threads,
		Elapsed: time.Since(start),
		Usage:   sysstat.Delta(before, sysstat.Snapshot()),
	}
	b.collector.RecordRun(result.Kind, result.Threads, result.Elapsed, nil)
	b.logger.LogRun(ctx, result, nil)
	return result, nil
}

// runWorker marks multiples of every prime candidate in [r.Start, r.End)
// against the shared array. The Test guard before Mark skips redundant
// writes; it is an optimization, not a correctness requirement — except for
// the unsafe strategy, where even redundant writes participate in the race.
func (b *Benchmark) runWorker(ctx context.Context, r partition.Range) error {
	s := b.strategy
	n := s.Len()

	for p := r.Start; p < r.End; p++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		b.progress.step()

		if s.Test(p) {
			continue
		}
		for i := p * p; i < n; i += p {
			if !s.Test(i) {
				s.Mark(i)
			}
		}
	}
	return nil
}
