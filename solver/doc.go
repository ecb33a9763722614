// Package solver exposes a narrow interface over a bounded linear-program
// solver: an objective vector, per-variable bound pairs, an equality system
// and an inequality system go in; an optimal variable vector and objective
// value (or a sentinel failure) come out.
//
// 🚀 What does it solve?
//
//	minimize    Cᵀ·x
//	subject to  AEq·x  = BEq
//	            AUb·x ≤ BUb
//	            Lᵢ ≤ xᵢ ≤ Uᵢ   (Uᵢ may be +Inf)
//
// ✨ Key properties:
//   - Pure Go — Dantzig simplex via gonum.org/v1/gonum/optimize/convex/lp,
//     no cgo, no system solver installation
//   - Deterministic — same problem, same answer; no randomized pivoting
//   - Strict sentinels — ErrInfeasible, ErrUnbounded, ErrNoVariables,
//     ErrDimensionMismatch, ErrBadBound; match with errors.Is
//
// Under the hood, Solve converts the bounded general form into the standard
// form gonum's simplex expects: variables are shifted by their lower bounds,
// each inequality row and each finite upper bound gains a slack column, and
// the resulting min cᵀx s.t. Ax=b, x≥0 is handed to lp.Simplex.
//
// ⚙️ Usage:
//
//	p := solver.Problem{
//	  C:      []float64{1, 1},
//	  Bounds: []solver.Bound{{0, 10}, {0, 10}},
//	  AEq:    [][]float64{{1, 1}},
//	  BEq:    []float64{6},
//	}
//	sol, err := solver.Solve(p)
//	if err != nil {
//	  // ErrInfeasible, ErrUnbounded, ...
//	}
//	fmt.Println(sol.X, sol.Objective)
//
// Complexity: one simplex run — exponential worst case, fast in practice for
// the small dense programs blending produces (tens of variables and rows).
package solver
