// Package partition splits an integer interval into contiguous worker ranges.
package partition

// Range is a half-open interval [Start, End).
type Range struct {
	Start int64
	End   int64
}

// Len returns the number of values in the range.
func (r Range) Len() int64 {
	return r.End - r.Start
}

// Split divides [lo, hi) into n contiguous, non-overlapping ranges whose
// union is exactly [lo, hi). Every range gets floor((hi-lo)/n) values except
// the last, which extends to hi and absorbs the division remainder. The
// remainder is deliberately concentrated on the final range rather than
// spread out; callers that care about balance should pick n accordingly.
//
// n must be >= 1 and hi >= lo; both are caller-enforced.
func Split(lo, hi int64, n int) []Range {
	base := (hi - lo) / int64(n)

	ranges := make([]Range, n)
	for i := range ranges {
		start := lo + int64(i)*base
		end := start + base
		if i == n-1 {
			end = hi
		}
		ranges[i] = Range{Start: start, End: end}
	}
	return ranges
}
