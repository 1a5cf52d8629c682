// Package verify checks a concurrent sieve result against a single-threaded
// reference run.
//
// The reference executes the exact marking algorithm the workers run, just
// sequentially, so for the synchronized strategies the observed set must
// match it bit for bit on every run. For the Unsafe strategy the report is
// informational: divergence is tolerated, never asserted.
//
// Composite sets are held as 32-bit roaring bitmaps; sieve limits above
// 2^32 cells are not supported (the experiment uses 10^8).
package verify

import (
	"github.com/RoaringBitmap/roaring/v2"

	"github.com/hupe1980/sievebench/sieve"
)

// maxSamples bounds the mismatch indices retained in a Report.
const maxSamples = 10

// Report summarizes how an observed sieve result compares to the reference.
type Report struct {
	// Composites is the number of cells marked in the observed result.
	Composites uint64

	// Missing counts cells composite in the reference but unmarked in the
	// observed result (lost marks).
	Missing uint64

	// Extra counts cells marked in the observed result that the reference
	// does not consider composite (phantom marks).
	Extra uint64

	// Samples holds up to the first ten mismatched indices.
	Samples []int64
}

// Clean reports whether the observed result matches the reference exactly.
func (r Report) Clean() bool {
	return r.Missing == 0 && r.Extra == 0
}

// Reference computes the composite bitmap for [0, limit) by running the
// marking algorithm sequentially over prime candidates [2, primeLimit).
// Cells 0 and 1 are trivially non-prime but are never marked, matching the
// concurrent algorithm.
func Reference(limit, primeLimit int64) *roaring.Bitmap {
	composites := roaring.New()
	for p := int64(2); p < primeLimit; p++ {
		if composites.Contains(uint32(p)) {
			continue
		}
		for i := p * p; i < limit; i += p {
			composites.Add(uint32(i))
		}
	}
	return composites
}

// Collect builds a bitmap of the marked cells in t.
func Collect(t sieve.Tester) *roaring.Bitmap {
	marks := roaring.New()
	for i := int64(0); i < t.Len(); i++ {
		if t.Test(i) {
			marks.Add(uint32(i))
		}
	}
	return marks
}

// Run collects the marks in t and diffs them against the reference for the
// same limits.
func Run(t sieve.Tester, primeLimit int64) Report {
	return Diff(Collect(t), Reference(t.Len(), primeLimit))
}

// Diff compares an observed composite bitmap against a reference bitmap.
func Diff(observed, reference *roaring.Bitmap) Report {
	missing := roaring.AndNot(reference, observed)
	extra := roaring.AndNot(observed, reference)

	r := Report{
		Composites: observed.GetCardinality(),
		Missing:    missing.GetCardinality(),
		Extra:      extra.GetCardinality(),
	}

	mismatched := roaring.Or(missing, extra)
	it := mismatched.Iterator()
	for it.HasNext() && len(r.Samples) < maxSamples {
		r.Samples = append(r.Samples, int64(it.Next()))
	}
	return r
}
