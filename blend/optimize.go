package blend

import (
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/mixopt/solver"
)

// violationEps absorbs simplex round-off: violation sums below the
// solver tolerance count as a perfect in-band match.
const violationEps = solver.SimplexTol

// Optimize computes the blend for req over the sample snapshot.
//
// Behavior:
//   - Empty req.Targets routes to the basic mix: only the total and
//     fixed-category equalities apply, a zero objective picks any
//     feasible allocation, TotalViolation is 0 by definition and Success
//     reflects feasibility alone.
//   - Otherwise the full soft-constraint program runs. A feasible blend
//     is always returned, but Success is true only when every target
//     landed inside its tolerance band (TotalViolation == 0) — an
//     out-of-band blend comes back with Success=false for inspection.
//   - When not even the soft program is feasible (fixed requests above
//     the total, stock below the total, …), Success is false, Reason
//     carries the solver diagnostic and no allocation is returned.
//
// Errors are reserved for malformed input: ErrNoSamples,
// ErrNegativeQuantity, ErrUnknownNutrient. Infeasibility is never a Go
// error; it is a Result.
//
// Optimize is pure: it performs no I/O and keeps no state between calls.
func Optimize(samples []Sample, req Request) (Result, error) {
	if err := validateInput(samples, req); err != nil {
		return Result{}, err
	}

	nutrients := sortedNutrients(req.Targets)
	if len(nutrients) == 0 {
		return basicMix(samples, req), nil
	}

	p := buildProgram(samples, req.TotalQuantity, req.Fixed, nutrients, req.Targets, true)
	sol, err := solver.Solve(p)
	if err != nil {
		// Infeasible even with soft constraints: the totals themselves
		// cannot be met. Surface the diagnostic, allocate nothing.
		return Result{Reason: err.Error()}, nil
	}

	n := len(samples)
	usage := sol.X[:n]
	violation := floats.Sum(sol.X[n:])
	if violation < violationEps {
		violation = 0
	}

	return Result{
		Success:        violation == 0,
		Usages:         collectUsages(samples, usage),
		Achieved:       achievedAverages(samples, nutrients, usage),
		TotalViolation: round2(violation),
	}, nil
}

// basicMix solves the target-free program: any allocation meeting the
// total and the fixed categories within capacity.
func basicMix(samples []Sample, req Request) Result {
	sol, err := solver.Solve(basicProgram(samples, req.TotalQuantity, req.Fixed))
	if err != nil {
		return Result{Reason: err.Error()}
	}

	return Result{
		Success:  true,
		Usages:   collectUsages(samples, sol.X),
		Achieved: map[Nutrient]float64{},
	}
}

// validateInput rejects inputs no program can be built from.
func validateInput(samples []Sample, req Request) error {
	if len(samples) == 0 {
		return ErrNoSamples
	}
	if req.TotalQuantity < 0 {
		return ErrNegativeQuantity
	}
	for n := range req.Targets {
		if !Known(n) {
			return ErrUnknownNutrient
		}
	}

	return nil
}

// collectUsages converts the raw usage vector into the nonzero, rounded
// allocation list. Quantities that round to 0.00 are omitted.
func collectUsages(samples []Sample, usage []float64) []Usage {
	var out []Usage
	for i, q := range usage {
		rounded := round2(q)
		if rounded <= 0 {
			continue
		}
		out = append(out, Usage{Sample: i, Name: samples[i].Name, Quantity: rounded})
	}

	return out
}

// achievedAverages computes the weighted mean of each targeted nutrient
// over the raw (unrounded) usage vector:
//
//	Σ(v_{j,i}·x_i) / Σ(x_i)
//
// defined as 0 when Σ(x_i) = 0, which is only reachable for a zero total
// quantity. Unmeasured values contribute nothing to the numerator.
func achievedAverages(samples []Sample, nutrients []Nutrient, usage []float64) map[Nutrient]float64 {
	used := floats.Sum(usage)

	out := make(map[Nutrient]float64, len(nutrients))
	for _, nut := range nutrients {
		if used == 0 {
			out[nut] = 0
			continue
		}
		var weighted float64
		for i, s := range samples {
			if v, ok := s.Value(nut); ok {
				weighted += v * usage[i]
			}
		}
		out[nut] = round2(weighted / used)
	}

	return out
}
