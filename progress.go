package sievebench

import (
	"sync/atomic"
	"time"

	"golang.org/x/time/rate"
)

// progressTracker counts scanned prime candidates across all workers and
// logs a rate-limited progress line. One shared instance per run; the
// counter is the only cross-worker state and it is atomic.
type progressTracker struct {
	scanned atomic.Int64
	total   int64
	logger  *Logger
	emit    rate.Sometimes
}

func newProgressTracker(total int64, every time.Duration, logger *Logger) *progressTracker {
	return &progressTracker{
		total:  total,
		logger: logger,
		emit:   rate.Sometimes{Interval: every},
	}
}

// step records one scanned candidate. Called on every worker iteration, so
// the non-logging path is a single atomic add.
func (p *progressTracker) step() {
	if p == nil {
		return
	}
	n := p.scanned.Add(1)
	p.emit.Do(func() {
		p.logger.Debug("progress",
			"scanned", n,
			"total", p.total,
		)
	})
}
