// Package solver defines the bounded linear-program contract and its
// sentinel errors.
package solver

import (
	"errors"
	"math"
)

// Sentinel errors returned by Solve.
var (
	// ErrNoVariables indicates an empty objective vector: there is nothing
	// to solve for.
	ErrNoVariables = errors.New("solver: problem has no variables")

	// ErrDimensionMismatch indicates that a constraint row, the bound slice
	// or a right-hand-side vector disagrees with the variable count.
	ErrDimensionMismatch = errors.New("solver: constraint dimensions do not match variable count")

	// ErrBadBound indicates a bound pair with Lower > Upper, or a
	// non-finite lower bound.
	ErrBadBound = errors.New("solver: invalid variable bound")

	// ErrInfeasible indicates that no point satisfies the bounds,
	// equalities and inequalities simultaneously.
	ErrInfeasible = errors.New("solver: no feasible point satisfies the constraints")

	// ErrUnbounded indicates that the objective can be decreased without
	// limit inside the feasible region.
	ErrUnbounded = errors.New("solver: objective is unbounded below")
)

// SimplexTol is the numerical tolerance handed to the simplex backend.
const SimplexTol = 1e-7

// Bound is a closed interval [Lower, Upper] for one variable.
// Upper may be math.Inf(1) for a variable with no upper limit.
type Bound struct {
	Lower float64
	Upper float64
}

// Unbounded returns a [0, +Inf) bound, the common case for quantities
// and deviation variables.
func Unbounded() Bound { return Bound{Lower: 0, Upper: math.Inf(1)} }

// UpTo returns a [0, u] bound.
func UpTo(u float64) Bound { return Bound{Lower: 0, Upper: u} }

// Problem is a bounded linear program in general form:
//
//	minimize    Cᵀ·x
//	subject to  AEq·x  = BEq
//	            AUb·x ≤ BUb
//	            Bounds[i].Lower ≤ x[i] ≤ Bounds[i].Upper
//
// All rows of AEq and AUb must have len(C) columns. AUb/BUb and AEq/BEq
// may each be empty.
type Problem struct {
	C      []float64
	Bounds []Bound
	AEq    [][]float64
	BEq    []float64
	AUb    [][]float64
	BUb    []float64
}

// Solution is an optimal point of a Problem.
type Solution struct {
	// X holds one value per variable, in Problem order.
	X []float64

	// Objective is Cᵀ·X at the optimum.
	Objective float64
}
