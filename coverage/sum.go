package coverage

import "math"

// accumulator is a Neumaier (improved Kahan–Babuška) compensated sum.
// The zero value is an empty sum.
type accumulator struct {
	sum  float64
	comp float64 // running compensation for lost low-order bits
}

// add folds x into the running sum.
// Complexity: O(1).
func (a *accumulator) add(x float64) {
	t := a.sum + x
	if math.Abs(a.sum) >= math.Abs(x) {
		a.comp += (a.sum - t) + x
	} else {
		a.comp += (x - t) + a.sum
	}
	a.sum = t
}

// value returns the compensated total.
func (a *accumulator) value() float64 {
	return a.sum + a.comp
}

// neumaierSum returns the compensated sum of xs in slice order.
// Complexity: O(len(xs)).
func neumaierSum(xs []float64) float64 {
	var acc accumulator
	for _, x := range xs {
		acc.add(x)
	}

	return acc.value()
}

// finite reports whether v is neither NaN nor ±Inf.
func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
