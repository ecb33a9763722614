package blend_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mixopt/blend"
	"github.com/katalvlaran/mixopt/solver"
)

// TestClosestFeasible_UnreachableTarget completes the canonical
// scenario: with batches at CP 40 and 70, a target of 80 is out of
// reach and the closest feasible profile sits at the achievable
// maximum, 70.
func TestClosestFeasible_UnreachableTarget(t *testing.T) {
	samples := []blend.Sample{
		cpSample("Low", 100, 40),
		cpSample("High", 100, 70),
	}

	got, err := blend.ClosestFeasible(samples, 100,
		map[blend.Nutrient]float64{blend.CP: 80}, nil)
	require.NoError(t, err)

	assert.InDelta(t, 70, got[blend.CP], epsSolve, "closest profile saturates the high batch")
}

// TestClosestFeasible_ReachableTargetIsReturnedAsIs leaves achievable
// targets untouched: deviation can reach 0, so the answer echoes the
// request.
func TestClosestFeasible_ReachableTargetIsReturnedAsIs(t *testing.T) {
	samples := []blend.Sample{
		cpSample("Low", 100, 40),
		cpSample("High", 100, 70),
	}

	got, err := blend.ClosestFeasible(samples, 100,
		map[blend.Nutrient]float64{blend.CP: 55}, nil)
	require.NoError(t, err)

	assert.InDelta(t, 55, got[blend.CP], epsSolve, "an in-range target maps to itself")
}

// TestClosestFeasible_RespectsFixedAllocations keeps the category
// equalities in force: pinning 60 units of the low batch drags the best
// reachable CP down to (40·60 + 70·40)/100 = 52.
func TestClosestFeasible_RespectsFixedAllocations(t *testing.T) {
	samples := []blend.Sample{
		cpSample("Fish Meal Low", 100, 40),
		cpSample("High", 100, 70),
	}

	got, err := blend.ClosestFeasible(samples, 100,
		map[blend.Nutrient]float64{blend.CP: 70},
		map[string]float64{"F/M": 60})
	require.NoError(t, err)

	assert.InDelta(t, 52, got[blend.CP], epsSolve, "the pinned 60 low-CP units cap the average")
}

// TestClosestFeasible_CapsFixedRequests applies the same stock cap as
// Optimize: a request of 80 against 10 remaining units pins only 10.
func TestClosestFeasible_CapsFixedRequests(t *testing.T) {
	samples := []blend.Sample{
		cpSample("Fish Meal Low", 10, 40),
		cpSample("High", 100, 70),
	}

	got, err := blend.ClosestFeasible(samples, 100,
		map[blend.Nutrient]float64{blend.CP: 70},
		map[string]float64{"F/M": 80})
	require.NoError(t, err)

	// 10 pinned units of CP 40 plus 90 units of CP 70 → 67.
	assert.InDelta(t, 67, got[blend.CP], epsSolve)
}

// TestClosestFeasible_Infeasible surfaces the solver sentinel when not
// even the equalities and capacity bounds admit a blend.
func TestClosestFeasible_Infeasible(t *testing.T) {
	samples := []blend.Sample{cpSample("A", 10, 50)}

	_, err := blend.ClosestFeasible(samples, 100,
		map[blend.Nutrient]float64{blend.CP: 50}, nil)
	assert.ErrorIs(t, err, solver.ErrInfeasible)
}

// TestClosestFeasible_InputValidation covers the sentinel paths.
func TestClosestFeasible_InputValidation(t *testing.T) {
	_, err := blend.ClosestFeasible(nil, 10, nil, nil)
	assert.ErrorIs(t, err, blend.ErrNoSamples)

	samples := []blend.Sample{cpSample("A", 10, 50)}

	_, err = blend.ClosestFeasible(samples, -5, nil, nil)
	assert.ErrorIs(t, err, blend.ErrNegativeQuantity)

	_, err = blend.ClosestFeasible(samples, 10,
		map[blend.Nutrient]float64{"sodium": 1}, nil)
	assert.ErrorIs(t, err, blend.ErrUnknownNutrient)
}

// TestClosestFeasible_ZeroQuantity defines all averages as 0 at a zero
// total instead of dividing by zero.
func TestClosestFeasible_ZeroQuantity(t *testing.T) {
	samples := []blend.Sample{cpSample("A", 10, 50)}

	got, err := blend.ClosestFeasible(samples, 0,
		map[blend.Nutrient]float64{blend.CP: 50}, nil)
	require.NoError(t, err)

	assert.Zero(t, got[blend.CP])
}
