package blend

// Fixed per-nutrient tolerance bands in absolute units. A blend is
// acceptable when each targeted average lies within ±tolerance of its
// target. These values are production constants, not tunables.
var tolerances = map[Nutrient]float64{
	CP:       0.5,
	Fat:      1.0,
	Ash:      1.5,
	FFA:      0.5,
	Moisture: 0.5,
	Fiber:    1.0,
	TVBN:     1.0,
}

// defaultTolerance applies to any nutrient absent from the table.
const defaultTolerance = 0.5

// Tolerance returns the absolute tolerance band half-width for n.
func Tolerance(n Nutrient) float64 {
	if tol, ok := tolerances[n]; ok {
		return tol
	}

	return defaultTolerance
}
