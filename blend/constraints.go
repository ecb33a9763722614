package blend

import (
	"math"

	"github.com/katalvlaran/mixopt/solver"
)

// Constraint construction for the blending programs.
//
// Variable layout of the soft-constraint program, matching the row
// formulas below:
//
//	[ x_0 … x_{n-1} | over_0 … over_{m-1} | under_0 … under_{m-1} ]
//
// where n = len(samples), m = len(nutrients). x_i is the quantity of
// sample i, bounded by its remaining capacity; over_j/under_j are the
// nonnegative excess variables of targeted nutrient j above and below
// its band. The basic-mix and range programs use only the x block.

// buildProgram assembles the soft-constraint program for the given
// target nutrients, in the order of `nutrients`.
//
// With band=true each nutrient j with target t and tolerance tol yields
// the pair
//
//	 Σ(v_{j,i}·x_i) − over_j  ≤  (t + tol) · totalQuantity
//	−Σ(v_{j,i}·x_i) − under_j ≤ −(t − tol) · totalQuantity
//
// so over/under only grow when the weighted sum leaves the band. With
// band=false the tolerance collapses to 0 and the pair measures distance
// from the target itself (the closest-feasible formulation).
//
// Samples that never measured nutrient j contribute 0 to row j; they
// stay in the variable set regardless.
//
// The objective charges 1 per unit of every over/under variable and 0
// for sample usage, so the solver returns an in-band blend whenever one
// exists and the least-total-excess blend otherwise.
func buildProgram(samples []Sample, totalQuantity float64, fixed map[string]float64,
	nutrients []Nutrient, targets map[Nutrient]float64, band bool) solver.Problem {
	n := len(samples)
	m := len(nutrients)
	cols := n + 2*m

	c := make([]float64, cols)
	bounds := make([]solver.Bound, cols)
	for i, s := range samples {
		bounds[i] = solver.UpTo(s.capacity())
	}
	for j := n; j < cols; j++ {
		c[j] = 1
		bounds[j] = solver.Unbounded()
	}

	p := solver.Problem{C: c, Bounds: bounds}
	p.AEq, p.BEq = equalityRows(samples, totalQuantity, fixed, cols)

	for j, nut := range nutrients {
		var tol float64
		if band {
			tol = Tolerance(nut)
		}
		t := targets[nut]

		over := make([]float64, cols)
		under := make([]float64, cols)
		for i, s := range samples {
			if v, ok := s.Value(nut); ok {
				over[i] = v
				under[i] = -v
			}
		}
		over[n+j] = -1
		under[n+m+j] = -1

		p.AUb = append(p.AUb, over, under)
		p.BUb = append(p.BUb, (t+tol)*totalQuantity, -(t-tol)*totalQuantity)
	}

	return p
}

// basicProgram assembles the target-free program: total and fixed
// equalities over the x block alone, zero objective.
func basicProgram(samples []Sample, totalQuantity float64, fixed map[string]float64) solver.Problem {
	n := len(samples)

	bounds := make([]solver.Bound, n)
	for i, s := range samples {
		bounds[i] = solver.UpTo(s.capacity())
	}

	p := solver.Problem{C: make([]float64, n), Bounds: bounds}
	p.AEq, p.BEq = equalityRows(samples, totalQuantity, fixed, n)

	return p
}

// equalityRows builds the total-quantity row plus one row per fixed
// category that matches at least one sample. A key matching nothing is
// silently skipped. Each requested quantity is capped at the matching
// samples' combined remaining capacity, so a request authored before
// stock was depleted cannot by itself make the program infeasible.
func equalityRows(samples []Sample, totalQuantity float64, fixed map[string]float64, cols int) ([][]float64, []float64) {
	total := make([]float64, cols)
	for i := range samples {
		total[i] = 1
	}
	aEq := [][]float64{total}
	bEq := []float64{totalQuantity}

	for _, key := range sortedKeys(fixed) {
		idx := matchCategory(samples, key)
		if len(idx) == 0 {
			continue
		}

		row := make([]float64, cols)
		var avail float64
		for _, i := range idx {
			row[i] = 1
			avail += samples[i].capacity()
		}
		aEq = append(aEq, row)
		bEq = append(bEq, math.Min(fixed[key], avail))
	}

	return aEq, bEq
}
