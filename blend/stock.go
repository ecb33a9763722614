package blend

// Pre-solve stock checks. These are cheap advisory helpers for callers
// that want to reject or annotate a request before running a solve; the
// optimizers themselves never require them (Optimize caps fixed requests
// at available stock on its own).

// Shortfall reports one fixed-allocation category whose matching samples
// cannot cover the requested quantity.
type Shortfall struct {
	// Key is the category key as the caller wrote it.
	Key string
	// Required is the requested quantity.
	Required float64
	// Available is the matching samples' combined remaining capacity.
	Available float64
}

// CheckFixedStock resolves each fixed-allocation key against the
// snapshot and reports the categories whose remaining stock falls short
// of the request. Keys matching no sample are skipped, mirroring the
// constraint builder. An empty result means every request is coverable
// as written. Order follows sorted keys.
func CheckFixedStock(samples []Sample, fixed map[string]float64) []Shortfall {
	var out []Shortfall
	for _, key := range sortedKeys(fixed) {
		idx := matchCategory(samples, key)
		if len(idx) == 0 {
			continue
		}

		var avail float64
		for _, i := range idx {
			avail += samples[i].capacity()
		}
		if avail < fixed[key] {
			out = append(out, Shortfall{Key: key, Required: fixed[key], Available: avail})
		}
	}

	return out
}

// ProfileBounds returns the minimum and maximum measured value of one
// nutrient across the snapshot, ignoring samples that never measured it.
// ok is false when no sample measures the nutrient at all.
//
// This is the cheap sanity bracket: a target outside [min, max] can
// never be blended regardless of stock, so callers may reject it before
// paying for an AchievableRange solve. The converse does not hold —
// a target inside the bracket may still be unreachable once capacities
// bind; AchievableRange gives the exact interval.
func ProfileBounds(samples []Sample, nutrient Nutrient) (min, max float64, ok bool) {
	for _, s := range samples {
		v, measured := s.Value(nutrient)
		if !measured {
			continue
		}
		if !ok || v < min {
			min = v
		}
		if !ok || v > max {
			max = v
		}
		ok = true
	}

	return min, max, ok
}
