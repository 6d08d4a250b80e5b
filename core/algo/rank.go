// Package algo has ordering helpers shared by the core commands.
package algo

import (
	"sort"

	"github.com/mariam-attia/dealscore/schema"
)

// RankFactors sorts factors by weighted score in descending order, breaking ties
// by name, and returns the top 'limit' factors. A limit of zero or less, or one
// greater than the number of factors, returns all of them.
func RankFactors(factors []schema.WeightedFactor, limit int) []schema.WeightedFactor {
	sort.SliceStable(factors, func(i, j int) bool {
		if factors[i].WeightedScore != factors[j].WeightedScore {
			return factors[i].WeightedScore > factors[j].WeightedScore
		}
		return factors[i].Name < factors[j].Name
	})
	if limit > 0 && len(factors) > limit {
		return factors[:limit]
	}
	return factors
}

// LimitFactors truncates factors to 'limit' without reordering.
func LimitFactors(factors []schema.WeightedFactor, limit int) []schema.WeightedFactor {
	if limit > 0 && len(factors) > limit {
		return factors[:limit]
	}
	return factors
}
