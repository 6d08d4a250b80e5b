package schema

import (
	"fmt"
	"math"
)

// SuccessFactor is one row of the success-factor table.
// Scores are percentages in [MinFactorScore, MaxFactorScore].
type SuccessFactor struct {
	Name           string  `json:"name" yaml:"name"`
	Impact         float64 `json:"impact_score" yaml:"impact"`
	Sustainability float64 `json:"sustainability_score" yaml:"sustainability"`
}

// Validate rejects rows without a name or with scores outside the percentage range.
func (f SuccessFactor) Validate() error {
	if f.Name == "" {
		return fmt.Errorf("%w: name cannot be empty", ErrInvalidFactor)
	}
	if math.IsNaN(f.Impact) || f.Impact < MinFactorScore || f.Impact > MaxFactorScore {
		return fmt.Errorf("%w: %s impact must be between %.0f and %.0f (received %g)", ErrFactorScoreOutOfRange, f.Name, MinFactorScore, MaxFactorScore, f.Impact)
	}
	if math.IsNaN(f.Sustainability) || f.Sustainability < MinFactorScore || f.Sustainability > MaxFactorScore {
		return fmt.Errorf("%w: %s sustainability must be between %.0f and %.0f (received %g)", ErrFactorScoreOutOfRange, f.Name, MinFactorScore, MaxFactorScore, f.Sustainability)
	}
	return nil
}

// ValidateSuccessFactors checks every row and rejects a table that repeats a factor name.
func ValidateSuccessFactors(factors []SuccessFactor) error {
	if len(factors) == 0 {
		return fmt.Errorf("%w: no success factors to weight", ErrInvalidFactor)
	}
	seen := make(map[string]struct{}, len(factors))
	for _, f := range factors {
		if err := f.Validate(); err != nil {
			return err
		}
		if _, dup := seen[f.Name]; dup {
			return fmt.Errorf("%w: duplicate factor name %q", ErrInvalidFactor, f.Name)
		}
		seen[f.Name] = struct{}{}
	}
	return nil
}

// WeightedFactor is a success factor with its blended score.
type WeightedFactor struct {
	SuccessFactor
	WeightedScore float64 `json:"weighted_score"`
}

// FactorAnalysis is the weighted view over a success-factor table.
type FactorAnalysis struct {
	Title                string           `json:"title"`
	Weight               float64          `json:"weight"`                // Share given to impact
	SustainabilityWeight float64          `json:"sustainability_weight"` // 1 - Weight
	Factors              []WeightedFactor `json:"factors"`
}

// DefaultSuccessFactors returns the built-in success-factor table.
func DefaultSuccessFactors() []SuccessFactor {
	return []SuccessFactor{
		{Name: "Strategic Alignment", Impact: 92, Sustainability: 85},
		{Name: "Cultural Preservation", Impact: 89, Sustainability: 75},
		{Name: "Financial Structure", Impact: 95, Sustainability: 92},
		{Name: "Leadership Continuity", Impact: 88, Sustainability: 70},
		{Name: "Market Synergies", Impact: 90, Sustainability: 88},
		{Name: "Operational Independence", Impact: 85, Sustainability: 80},
	}
}
