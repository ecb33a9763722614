package blend

import "strings"

// categoryRule maps one special-cased category key to the substring
// searched for in sample names. Matching is case-insensitive on both
// sides. Keys absent from this table fall back to matching their own
// uppercased text as a substring.
//
// Kept as an explicit table so the special cases stay auditable and new
// categories are a one-line change, not another string branch.
type categoryRule struct {
	key    string // canonical key, uppercase
	substr string // substring looked up in uppercased sample names
}

var categoryRules = []categoryRule{
	{key: "F/M", substr: "FISH MEAL"},
	{key: "HYPRO", substr: "HYPRO"},
}

// categorySubstring resolves a category key to the substring its samples
// must contain.
func categorySubstring(key string) string {
	upper := strings.ToUpper(key)
	for _, rule := range categoryRules {
		if rule.key == upper {
			return rule.substr
		}
	}

	return upper
}

// matchCategory returns the snapshot indices of samples whose names
// contain the category's substring. An empty result means the key pins
// nothing and contributes no constraint.
func matchCategory(samples []Sample, key string) []int {
	substr := categorySubstring(key)
	var idx []int
	for i, s := range samples {
		if strings.Contains(strings.ToUpper(s.Name), substr) {
			idx = append(idx, i)
		}
	}

	return idx
}
