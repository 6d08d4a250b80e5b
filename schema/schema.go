// Package schema has models, constants and shared types for all parts of dealscore.
package schema

import "fmt"

// Ratings holds the six factor ratings of a deal, each in [MinRating, MaxRating].
type Ratings struct {
	CulturalFit          int `json:"cultural_fit"`
	LeadershipRetention  int `json:"leadership_retention"`
	StrategicAlignment   int `json:"strategic_alignment"`
	FinancialStructure   int `json:"financial_structure"`
	OperationalSynergies int `json:"operational_synergies"`
	StakeholderBuyIn     int `json:"stakeholder_buy_in"`
}

// DefaultRatings returns the calculator's starting ratings.
func DefaultRatings() Ratings {
	return Ratings{
		CulturalFit:          8,
		LeadershipRetention:  9,
		StrategicAlignment:   9,
		FinancialStructure:   8,
		OperationalSynergies: 7,
		StakeholderBuyIn:     8,
	}
}

// NewRatings builds Ratings from six values in AllRatingFactors order.
func NewRatings(values ...int) (Ratings, error) {
	var r Ratings
	if len(values) != len(AllRatingFactors) {
		return r, fmt.Errorf("expected %d ratings (received %d)", len(AllRatingFactors), len(values))
	}
	for i, f := range AllRatingFactors {
		r.Set(f, values[i])
	}
	return r, nil
}

// Get returns the rating for a factor. Unknown factors return 0.
func (r Ratings) Get(f RatingFactor) int {
	switch f {
	case CulturalFit:
		return r.CulturalFit
	case LeadershipRetention:
		return r.LeadershipRetention
	case StrategicAlignment:
		return r.StrategicAlignment
	case FinancialStructure:
		return r.FinancialStructure
	case OperationalSynergies:
		return r.OperationalSynergies
	case StakeholderBuyIn:
		return r.StakeholderBuyIn
	default:
		return 0
	}
}

// Set assigns the rating for a factor. Unknown factors are ignored.
func (r *Ratings) Set(f RatingFactor, v int) {
	switch f {
	case CulturalFit:
		r.CulturalFit = v
	case LeadershipRetention:
		r.LeadershipRetention = v
	case StrategicAlignment:
		r.StrategicAlignment = v
	case FinancialStructure:
		r.FinancialStructure = v
	case OperationalSynergies:
		r.OperationalSynergies = v
	case StakeholderBuyIn:
		r.StakeholderBuyIn = v
	}
}

// Values returns the ratings in AllRatingFactors order.
func (r Ratings) Values() []int {
	out := make([]int, len(AllRatingFactors))
	for i, f := range AllRatingFactors {
		out[i] = r.Get(f)
	}
	return out
}

// Validate rejects any rating outside [MinRating, MaxRating].
// The first offending factor is reported.
func (r Ratings) Validate() error {
	for _, f := range AllRatingFactors {
		v := r.Get(f)
		if v < MinRating || v > MaxRating {
			return fmt.Errorf("%w: %s must be between %d and %d (received %d)", ErrRatingOutOfRange, f, MinRating, MaxRating, v)
		}
	}
	return nil
}

// ScoreResult is the display triple produced by the calculator.
type ScoreResult struct {
	Ratings      Ratings   `json:"ratings"`
	Score        float64   `json:"score"`         // Unrounded mean, used for classification
	RoundedScore float64   `json:"rounded_score"` // Mean rounded half-to-even at one decimal
	DisplayScore string    `json:"display_score"` // RoundedScore formatted with one decimal
	Tier         Tier      `json:"tier"`
	Color        TierColor `json:"color"`
}

// TierDefinition describes a tier's score range for display.
type TierDefinition struct {
	Key      string    `json:"key"`
	Tier     Tier      `json:"tier"`
	Color    TierColor `json:"color"`
	MinScore float64   `json:"min_score"`           // Inclusive
	MaxScore *float64  `json:"max_score,omitempty"` // Exclusive, nil for the top tier
}

// CheckResult is the outcome of gating a score against a minimum tier.
type CheckResult struct {
	ScoreResult
	FailBelow Tier `json:"fail_below"`
	Passed    bool `json:"passed"`
}

// FactorRequest describes one weighting of a success-factor table.
type FactorRequest struct {
	Factors []SuccessFactor `json:"factors"`
	Weight  float64         `json:"weight"`
	Sort    bool            `json:"sort"`  // Order by weighted score, best first
	Limit   int             `json:"limit"` // 0 keeps every row
}
