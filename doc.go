// Package mixopt formulates and solves constrained blending problems:
// given raw-material batches with sparse nutrient profiles and finite
// remaining stock, compute how many units of each batch to blend so the
// averaged nutrients land inside fixed tolerance bands of the requested
// targets — without overdrawing any batch.
//
// 🚀 What is mixopt?
//
//	A small, pure computation library built around a soft-constraint
//	linear program:
//		• Blend optimization: exact match when possible, least-total-excess otherwise
//		• Basic mix: any feasible allocation when no targets are given
//		• Achievable range: min/max average of one nutrient over current stock
//		• Closest feasible targets: the nutrient profile nearest an infeasible request
//		• Fixed allocations: pin named material categories to requested quantities
//
// ✨ Why choose mixopt?
//
//   - Pure functions – no state between calls, safe for concurrent callers
//   - Strict sentinels – every failure mode is a documented error or diagnostic
//   - Pure Go – simplex via gonum, no cgo, no system solver installs
//   - Honest results – out-of-tolerance blends are returned for inspection,
//     never silently discarded
//
// Everything is organized under two subpackages:
//
//	blend/  — samples, targets, constraint construction and the optimizers
//	solver/ — the narrow bounded-LP interface and its gonum simplex backend
//
// Quick sketch:
//
//	samples ──▶ blend.Optimize ──▶ constraint program ──▶ solver.Solve
//	                 │                                        │
//	                 └──── allocations + achieved averages ◀──┘
//
// Stock bookkeeping (subtracting used quantities for the next blend) is the
// caller's job, executed after a solve returns; see blend's package docs for
// the read-solve-commit contract.
//
//	go get github.com/katalvlaran/mixopt/blend
package mixopt
