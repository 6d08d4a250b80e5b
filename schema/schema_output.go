package schema

import "fmt"

// RankedFactor adds presentation data to a WeightedFactor.
type RankedFactor struct {
	Rank int `json:"rank"`
	WeightedFactor
}

// RankFactorRows numbers factors in their current order.
func RankFactorRows(factors []WeightedFactor) []RankedFactor {
	output := make([]RankedFactor, len(factors))
	for i, f := range factors {
		output[i] = RankedFactor{
			Rank:           i + 1,
			WeightedFactor: f,
		}
	}
	return output
}

// TierDefinitions returns the tier table from best to worst.
func TierDefinitions() []TierDefinition {
	moderateMax := HighlyLikelyThreshold
	riskMax := ModerateThreshold
	return []TierDefinition{
		{Key: HighlyLikelyTier.Key(), Tier: HighlyLikelyTier, Color: HighlyLikelyTier.Color(), MinScore: HighlyLikelyThreshold},
		{Key: ModerateTier.Key(), Tier: ModerateTier, Color: ModerateTier.Color(), MinScore: ModerateThreshold, MaxScore: &moderateMax},
		{Key: HighRiskTier.Key(), Tier: HighRiskTier, Color: HighRiskTier.Color(), MinScore: MinRating, MaxScore: &riskMax},
	}
}

// RangeString renders the definition's score range, e.g. "[6.0, 8.0)".
func (d TierDefinition) RangeString() string {
	if d.MaxScore == nil {
		return fmt.Sprintf("[%.1f, %.1f]", d.MinScore, float64(MaxRating))
	}
	return fmt.Sprintf("[%.1f, %.1f)", d.MinScore, *d.MaxScore)
}

// FactorAnalysisTitle returns the heading shown above a weighted factor table.
func FactorAnalysisTitle(weight float64) string {
	return fmt.Sprintf("Success Factor Analysis (Weight: %.1f Impact, %.1f Sustainability)", weight, 1-weight)
}
