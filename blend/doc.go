// Package blend turns a snapshot of raw-material samples and a set of
// nutrient targets into a concrete blending plan: how many units of each
// sample to use so the blended averages land within fixed tolerance bands
// of the targets, without using more of any sample than remains in stock.
//
// 🚀 What is blend?
//
//	The optimization core of mixopt. It offers four operations:
//		• Optimize        — the soft-constraint blend: exact match inside the
//		                    tolerance bands when one exists, otherwise the
//		                    feasible blend with least total excess
//		• basic mix       — Optimize with no targets: any feasible allocation
//		                    honoring the total and the fixed categories
//		• AchievableRange — min/max average of one nutrient over current stock
//		• ClosestFeasible — the nutrient profile nearest an infeasible target set
//
// ✨ Key behaviors:
//   - Soft constraints: a blend outside tolerance is still returned, with
//     Success=false and the out-of-band excess in TotalViolation
//   - Sparse profiles: a sample that never measured a nutrient contributes
//     nothing to that nutrient's constraint — absent is not zero
//   - Fixed allocations: category keys ("F/M", "HYPRO", or any substring)
//     pin the combined usage of matching samples, capped at their remaining
//     stock so a stale request cannot poison feasibility
//   - Determinism: constraint rows follow sorted key order, never map order
//
// ⚙️ Usage:
//
//	res, err := blend.Optimize(samples, blend.Request{
//	  TotalQuantity: 100,
//	  Targets:       map[blend.Nutrient]float64{blend.CP: 55},
//	  Fixed:         map[string]float64{"F/M": 40},
//	})
//	if err != nil {
//	  // malformed input (see sentinels in types.go)
//	}
//	if !res.Success {
//	  // infeasible (res.Reason) or out of tolerance (res.TotalViolation > 0)
//	}
//
// Concurrency contract: every function here is pure — no state survives a
// call, so concurrent callers are safe inside this package. The hazard is
// at the boundary: two callers reading the same Remaining values can
// together oversell a sample. Whoever persists stock must serialize
// "read capacities → solve → commit usage" as one atomic unit (transaction
// with re-validation, or per-sample optimistic locking).
//
// All reported quantities and averages are rounded to 2 decimal places at
// the result boundary only; internal arithmetic runs in full precision.
package blend
