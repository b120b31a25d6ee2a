package warehouse

import "math"

// finiteOrZero is the single numeric coercion point for loosely-typed price
// data: a value that is not a finite number counts as zero, so one malformed
// record cannot corrupt a pool total or a report sum.
func finiteOrZero(f float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}
