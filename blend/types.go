// Package blend core types: nutrients, samples, requests and results.
package blend

import (
	"errors"
	"math"
	"sort"
)

// Sentinel errors returned by the blend operations.
var (
	// ErrNoSamples indicates an empty sample snapshot; there is nothing to
	// allocate from.
	ErrNoSamples = errors.New("blend: sample snapshot is empty")

	// ErrNegativeQuantity indicates a total quantity below zero. Zero is
	// accepted as a degenerate input (everything allocates to zero);
	// negative totals are always a caller bug.
	ErrNegativeQuantity = errors.New("blend: total quantity must be non-negative")

	// ErrUnknownNutrient indicates a target or range query for a nutrient
	// key outside the recognized set.
	ErrUnknownNutrient = errors.New("blend: unrecognized nutrient key")
)

// Nutrient identifies one measured property of a sample. Keys are the
// short laboratory names; use the exported constants.
type Nutrient string

// Recognized nutrient keys.
const (
	// CP is crude protein, percent.
	CP Nutrient = "cp"
	// Fat is crude fat, percent.
	Fat Nutrient = "fat"
	// TVBN is total volatile basic nitrogen, a fishmeal freshness indicator.
	TVBN Nutrient = "tvbn"
	// Ash is total ash, percent.
	Ash Nutrient = "ash"
	// FFA is free fatty acids, percent.
	FFA Nutrient = "ffa"
	// Moisture is moisture content, percent.
	Moisture Nutrient = "moisture"
	// Fiber is crude fiber, percent.
	Fiber Nutrient = "fiber"
)

// knownNutrients is the closed set of recognized keys.
var knownNutrients = map[Nutrient]struct{}{
	CP: {}, Fat: {}, TVBN: {}, Ash: {}, FFA: {}, Moisture: {}, Fiber: {},
}

// Known reports whether n is a recognized nutrient key.
func Known(n Nutrient) bool {
	_, ok := knownNutrients[n]

	return ok
}

// Sample is an immutable view of one raw-material batch at call time.
//
// Profile maps nutrient → measured value. An absent key means "not
// measured": the sample still participates in the blend, but contributes
// nothing to that nutrient's constraint. Absent and zero are different
// states; never encode missing measurements as 0 unless the lab truly
// measured zero.
//
// Remaining is the maximum number of units usable in the current blend
// (stock available minus usage already committed upstream). Negative
// values are clamped to 0 wherever the package reads them.
type Sample struct {
	Name      string
	Lot       string
	Profile   map[Nutrient]float64
	Remaining float64
}

// Value returns the measured value of n and whether it was measured.
func (s Sample) Value(n Nutrient) (float64, bool) {
	v, ok := s.Profile[n]

	return v, ok
}

// capacity is Remaining clamped at zero.
func (s Sample) capacity() float64 {
	return math.Max(0, s.Remaining)
}

// Request describes one blending order.
type Request struct {
	// TotalQuantity is the number of units to produce; the blend's used
	// quantities always sum to exactly this value.
	TotalQuantity float64

	// Targets maps nutrient → desired average value. May be empty, in
	// which case any feasible allocation is acceptable (the basic mix).
	Targets map[Nutrient]float64

	// Fixed maps a category key → requested quantity for the samples
	// matching that key (see the category rules in category.go). May be
	// empty. Requests above the matching samples' combined remaining
	// stock are capped at what is available.
	Fixed map[string]float64
}

// Usage is one nonzero allocation in a blend result.
type Usage struct {
	// Sample indexes into the snapshot passed to Optimize.
	Sample int
	// Name echoes the sample's name for display.
	Name string
	// Quantity is the units used, rounded to 2 decimals.
	Quantity float64
}

// Result is the outcome of one Optimize call.
//
// When the underlying program is feasible, Usages, Achieved and
// TotalViolation are always populated — even when Success is false
// because some target could not be met within tolerance. When the program
// is infeasible, Success is false, Reason carries the solver diagnostic
// and no allocation is returned.
type Result struct {
	// Success is true only when every targeted nutrient's achieved
	// average lies within its tolerance band (TotalViolation == 0).
	Success bool

	// Usages lists the nonzero allocations, in snapshot order.
	Usages []Usage

	// Achieved maps each targeted nutrient to the blend's weighted
	// average for it, rounded to 2 decimals.
	Achieved map[Nutrient]float64

	// TotalViolation is the summed out-of-tolerance excess across all
	// targets, in quantity·nutrient units; 0 iff every band holds.
	TotalViolation float64

	// Reason is the solver diagnostic when no feasible blend exists.
	Reason string
}

// Variances reports achieved − target per targeted nutrient, rounded to
// 2 decimals. Nutrients missing from Achieved count as 0 achieved.
func (r Result) Variances(targets map[Nutrient]float64) map[Nutrient]float64 {
	out := make(map[Nutrient]float64, len(targets))
	for n, t := range targets {
		out[n] = round2(r.Achieved[n] - t)
	}

	return out
}

// round2 rounds to 2 decimal places; used only at the result boundary.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// sortedNutrients returns the target keys in stable lexical order, so the
// constraint layout never depends on map iteration order.
func sortedNutrients(targets map[Nutrient]float64) []Nutrient {
	keys := make([]Nutrient, 0, len(targets))
	for n := range targets {
		keys = append(keys, n)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	return keys
}

// sortedKeys returns the fixed-allocation keys in stable lexical order.
func sortedKeys(fixed map[string]float64) []string {
	keys := make([]string, 0, len(fixed))
	for k := range fixed {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}
