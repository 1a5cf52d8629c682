package sievebench

import (
	"sync/atomic"
	"time"

	"github.com/hupe1980/sievebench/sieve"
)

// Collector receives the outcome of benchmark runs. Implement this to feed
// results into an external monitoring or results-tracking system.
type Collector interface {
	// RecordRun is called once per completed (or failed) benchmark run.
	RecordRun(kind sieve.Kind, threads int, elapsed time.Duration, err error)
}

// NoopCollector discards all observations.
type NoopCollector struct{}

func (NoopCollector) RecordRun(sieve.Kind, int, time.Duration, error) {}

// BasicCollector keeps simple in-memory run counters. Safe for concurrent use.
type BasicCollector struct {
	Runs       atomic.Int64
	Failures   atomic.Int64
	TotalNanos atomic.Int64
}

func (c *BasicCollector) RecordRun(_ sieve.Kind, _ int, elapsed time.Duration, err error) {
	c.Runs.Add(1)
	if err != nil {
		c.Failures.Add(1)
		return
	}
	c.TotalNanos.Add(int64(elapsed))
}
