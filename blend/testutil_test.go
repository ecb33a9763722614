// Package blend_test provides lightweight helpers shared across the
// *_test.go files in this package: sample constructors and result
// accessors. Kept minimal and stdlib-only.
package blend_test

import (
	"github.com/katalvlaran/mixopt/blend"
)

const (
	// epsSolve matches the numerical tolerance of the simplex backend;
	// conservation and bound checks accept drift up to this much.
	epsSolve = 1e-6
)

// sample builds a Sample with the given name, remaining capacity and
// measured profile. Pass nil for a sample with nothing measured.
func sample(name string, remaining float64, profile map[blend.Nutrient]float64) blend.Sample {
	return blend.Sample{Name: name, Profile: profile, Remaining: remaining}
}

// cpSample builds a Sample measuring only crude protein.
func cpSample(name string, remaining, cp float64) blend.Sample {
	return sample(name, remaining, map[blend.Nutrient]float64{blend.CP: cp})
}

// usageOf returns the quantity allocated to snapshot index i, 0 when the
// result omits it.
func usageOf(res blend.Result, i int) float64 {
	for _, u := range res.Usages {
		if u.Sample == i {
			return u.Quantity
		}
	}

	return 0
}

// totalUsed sums all reported allocations.
func totalUsed(res blend.Result) float64 {
	var sum float64
	for _, u := range res.Usages {
		sum += u.Quantity
	}

	return sum
}
