package blend

import (
	"github.com/katalvlaran/mixopt/solver"
)

// ClosestFeasible computes the nutrient profile nearest the requested
// targets that some blend can actually reach under the same stock and
// fixed-allocation constraints as Optimize.
//
// The program mirrors the soft-constraint blend but with no tolerance
// band: each targeted nutrient gets a deviation pair measuring distance
// from the target itself, and the objective minimizes the summed
// deviation. The return value is the achieved average per targeted
// nutrient of the minimizing blend — not the blend itself — rounded to
// 2 decimals. Present it to the caller as an alternative target set when
// the original request cannot be met.
//
// Fixed-allocation requests are capped at matching remaining stock,
// exactly as in Optimize.
//
// Errors: ErrNoSamples, ErrNegativeQuantity, ErrUnknownNutrient on bad
// input; the solver sentinel when no blend satisfies the equalities and
// capacity bounds at all.
func ClosestFeasible(samples []Sample, totalQuantity float64, targets map[Nutrient]float64,
	fixed map[string]float64) (map[Nutrient]float64, error) {
	if err := validateInput(samples, Request{TotalQuantity: totalQuantity, Targets: targets}); err != nil {
		return nil, err
	}

	nutrients := sortedNutrients(targets)
	p := buildProgram(samples, totalQuantity, fixed, nutrients, targets, false)
	sol, err := solver.Solve(p)
	if err != nil {
		return nil, err
	}

	usage := sol.X[:len(samples)]

	// Averages against the requested total: the equality row guarantees
	// Σx equals it. A zero total degenerates to all-zero averages.
	out := make(map[Nutrient]float64, len(nutrients))
	for _, nut := range nutrients {
		if totalQuantity == 0 {
			out[nut] = 0
			continue
		}
		var weighted float64
		for i, s := range samples {
			if v, ok := s.Value(nut); ok {
				weighted += v * usage[i]
			}
		}
		out[nut] = round2(weighted / totalQuantity)
	}

	return out, nil
}
