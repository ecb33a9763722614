package blend

import "github.com/katalvlaran/mixopt/solver"

// AchievableRange computes the minimum and maximum average of one
// nutrient achievable across the snapshot at the given total quantity,
// honoring per-sample remaining capacity and nothing else (no targets,
// no fixed allocations).
//
// Two solves over the basic-mix variables: minimize and maximize
// Σ(v_i·x_i) subject to Σx = totalQuantity, 0 ≤ x_i ≤ capacity_i; each
// optimum is divided by the total. Both solves must succeed or the range
// is undefined and the solver's error (typically solver.ErrInfeasible)
// is returned. Bounds are clamped at 0 — an average cannot be negative —
// and rounded to 2 decimals.
//
// Callers use the range to validate a target before paying for the full
// optimization, and to report an actionable interval when a target is
// out of reach.
//
// Errors: ErrNoSamples, ErrNegativeQuantity, ErrUnknownNutrient on bad
// input; the solver sentinel when either sub-solve fails.
func AchievableRange(samples []Sample, nutrient Nutrient, totalQuantity float64) (min, max float64, err error) {
	if len(samples) == 0 {
		return 0, 0, ErrNoSamples
	}
	if totalQuantity < 0 {
		return 0, 0, ErrNegativeQuantity
	}
	if !Known(nutrient) {
		return 0, 0, ErrUnknownNutrient
	}

	// Unmeasured values weigh 0, exactly as in the blend constraints.
	values := make([]float64, len(samples))
	negated := make([]float64, len(samples))
	for i, s := range samples {
		if v, ok := s.Value(nutrient); ok {
			values[i] = v
			negated[i] = -v
		}
	}

	p := basicProgram(samples, totalQuantity, nil)

	p.C = values
	low, err := solver.Solve(p)
	if err != nil {
		return 0, 0, err
	}

	p.C = negated
	high, err := solver.Solve(p)
	if err != nil {
		return 0, 0, err
	}

	// Zero total quantity forces the all-zero blend; averages are
	// defined as 0 rather than dividing by zero.
	if totalQuantity == 0 {
		return 0, 0, nil
	}

	min = clampZero(low.Objective / totalQuantity)
	max = clampZero(-high.Objective / totalQuantity)

	return round2(min), round2(max), nil
}

// clampZero floors v at 0.
func clampZero(v float64) float64 {
	if v < 0 {
		return 0
	}

	return v
}
