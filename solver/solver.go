package solver

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize/convex/lp"
)

// Solve finds an optimal point of p, or reports why none exists.
//
// Algorithm outline:
//  1. Validate dimensions and bound pairs.
//  2. Shift every variable by its lower bound, so the shifted variables
//     live in [0, Upper−Lower].
//  3. Append one slack variable per inequality row (AUb·x + s = BUb) and
//     one per finite upper bound (xᵢ + t = Upperᵢ−Lowerᵢ).
//  4. Run Dantzig simplex (lp.Simplex) on the resulting standard form.
//  5. Un-shift the solution and recover the original objective value.
//
// Errors: ErrNoVariables, ErrDimensionMismatch, ErrBadBound on malformed
// input; ErrInfeasible / ErrUnbounded from the simplex phase; any other
// backend failure is forwarded as-is (its message is the diagnostic).
//
// Complexity: simplex on (eq+ineq+finite-bound) rows × (vars+slacks) columns.
func Solve(p Problem) (Solution, error) {
	n := len(p.C)
	if n == 0 {
		return Solution{}, ErrNoVariables
	}
	if err := validate(p, n); err != nil {
		return Solution{}, err
	}

	// Redundant equality rows (a category pinning every variable, two
	// categories partitioning them) make the simplex basis singular;
	// reduce the system to independent rows first.
	aEq, bEq, err := independentEqualities(p.AEq, p.BEq)
	if err != nil {
		return Solution{}, err
	}

	// Lower-bound shift: y = x − L, solved over y ≥ 0.
	lower := make([]float64, n)
	for i, b := range p.Bounds {
		lower[i] = b.Lower
	}

	// Count slack columns for finite upper bounds.
	finite := make([]int, 0, n)
	for i, b := range p.Bounds {
		if !math.IsInf(b.Upper, 1) {
			finite = append(finite, i)
		}
	}

	var (
		nEq  = len(bEq)
		nUb  = len(p.BUb)
		rows = nEq + nUb + len(finite)
		cols = n + nUb + len(finite)
	)
	if rows == 0 {
		return solveUnconstrained(p, lower)
	}

	a := mat.NewDense(rows, cols, nil)
	b := make([]float64, rows)
	c := make([]float64, cols)
	copy(c, p.C)

	// Equality rows: AEq·y = BEq − AEq·L.
	for r, row := range aEq {
		for j, v := range row {
			a.Set(r, j, v)
		}
		b[r] = bEq[r] - floats.Dot(row, lower)
	}

	// Inequality rows become equalities with a slack column:
	// AUb·y + s = BUb − AUb·L, s ≥ 0.
	for i, row := range p.AUb {
		r := nEq + i
		for j, v := range row {
			a.Set(r, j, v)
		}
		a.Set(r, n+i, 1)
		b[r] = p.BUb[i] - floats.Dot(row, lower)
	}

	// Finite upper bounds: yᵢ + t = Upperᵢ − Lowerᵢ, t ≥ 0.
	for k, i := range finite {
		r := nEq + nUb + k
		a.Set(r, i, 1)
		a.Set(r, n+nUb+k, 1)
		b[r] = p.Bounds[i].Upper - p.Bounds[i].Lower
	}

	optF, y, err := lp.Simplex(c, a, b, SimplexTol, nil)
	if err != nil {
		return Solution{}, mapSimplexError(err)
	}

	x := make([]float64, n)
	for i := range x {
		x[i] = y[i] + lower[i]
	}

	return Solution{X: x, Objective: optF + floats.Dot(p.C, lower)}, nil
}

// validate checks dimensional consistency and bound sanity.
func validate(p Problem, n int) error {
	if len(p.Bounds) != n {
		return ErrDimensionMismatch
	}
	if len(p.AEq) != len(p.BEq) || len(p.AUb) != len(p.BUb) {
		return ErrDimensionMismatch
	}
	for _, row := range p.AEq {
		if len(row) != n {
			return ErrDimensionMismatch
		}
	}
	for _, row := range p.AUb {
		if len(row) != n {
			return ErrDimensionMismatch
		}
	}
	for _, bd := range p.Bounds {
		if math.IsInf(bd.Lower, 0) || math.IsNaN(bd.Lower) || math.IsNaN(bd.Upper) {
			return ErrBadBound
		}
		if bd.Lower > bd.Upper {
			return ErrBadBound
		}
	}

	return nil
}

// solveUnconstrained handles the degenerate box-only problem: with no
// equality or inequality rows each variable independently sits at the
// bound its cost prefers.
func solveUnconstrained(p Problem, lower []float64) (Solution, error) {
	x := make([]float64, len(p.C))
	for i, ci := range p.C {
		switch {
		case ci >= 0:
			x[i] = lower[i]
		case math.IsInf(p.Bounds[i].Upper, 1):
			return Solution{}, ErrUnbounded
		default:
			x[i] = p.Bounds[i].Upper
		}
	}

	return Solution{X: x, Objective: floats.Dot(p.C, x)}, nil
}

// rankTol is the threshold below which an eliminated coefficient or
// right-hand-side residual counts as zero during row reduction.
const rankTol = 1e-9

// pivotRow is one reduced equality row, normalized so row[col] == 1.
type pivotRow struct {
	col int
	row []float64
	rhs float64
}

// independentEqualities drops equality rows that are linear combinations
// of earlier ones, keeping the original rows of a maximal independent
// subset. The simplex basis cannot tolerate a singular equality system,
// but redundant rows are legitimate input (e.g. a category constraint
// pinning every variable to the already-pinned total).
//
// A dependent row whose right-hand side disagrees with what the earlier
// rows imply makes the system contradictory: ErrInfeasible.
func independentEqualities(aEq [][]float64, bEq []float64) ([][]float64, []float64, error) {
	if len(aEq) < 2 {
		return aEq, bEq, nil
	}

	var (
		pivots []pivotRow
		keptA  [][]float64
		keptB  []float64
	)
	for r, orig := range aEq {
		work := append([]float64(nil), orig...)
		rhs := bEq[r]

		// Eliminate against every pivot found so far.
		for _, p := range pivots {
			if f := work[p.col]; f != 0 {
				floats.AddScaled(work, -f, p.row)
				rhs -= f * p.rhs
			}
		}

		col := -1
		for j, v := range work {
			if math.Abs(v) > rankTol {
				col = j
				break
			}
		}
		if col < 0 {
			// Fully eliminated: either implied by earlier rows, or
			// contradicting them.
			if math.Abs(rhs) > rankTol {
				return nil, nil, ErrInfeasible
			}
			continue
		}

		scale := work[col]
		floats.Scale(1/scale, work)
		pivots = append(pivots, pivotRow{col: col, row: work, rhs: rhs / scale})
		keptA = append(keptA, orig)
		keptB = append(keptB, bEq[r])
	}

	return keptA, keptB, nil
}

// mapSimplexError converts gonum lp sentinels into package sentinels so
// callers never depend on the backend.
func mapSimplexError(err error) error {
	switch err {
	case lp.ErrInfeasible:
		return ErrInfeasible
	case lp.ErrUnbounded:
		return ErrUnbounded
	}

	return err
}
