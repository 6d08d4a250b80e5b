package core

import (
	"fmt"
	"math"
	"strconv"

	"github.com/mariam-attia/dealscore/schema"
)

// DisplayPrecision is the number of decimals shown for a success score.
const DisplayPrecision = 1

// MeanRating returns the arithmetic mean of the six ratings.
// It does not validate; callers that accept free-form input go through ComputeSuccessScore.
func MeanRating(r schema.Ratings) float64 {
	sum := 0
	for _, v := range r.Values() {
		sum += v
	}
	return float64(sum) / float64(len(schema.AllRatingFactors))
}

// ClassifyScore maps a score to its tier. Thresholds are inclusive lower bounds,
// so every float lands in exactly one tier.
func ClassifyScore(score float64) schema.Tier {
	switch {
	case score >= schema.HighlyLikelyThreshold:
		return schema.HighlyLikelyTier
	case score >= schema.ModerateThreshold:
		return schema.ModerateTier
	default:
		return schema.HighRiskTier
	}
}

// RoundScore rounds half-to-even at the given number of decimal places.
func RoundScore(score float64, places int) float64 {
	pow := math.Pow10(places)
	return math.RoundToEven(score*pow) / pow
}

// FormatScore renders a score the way it is displayed, e.g. 8.1667 -> "8.2".
func FormatScore(score float64) string {
	return strconv.FormatFloat(RoundScore(score, DisplayPrecision), 'f', DisplayPrecision, 64)
}

// ComputeSuccessScore validates the ratings and produces the display triple.
// Classification uses the unrounded mean.
func ComputeSuccessScore(r schema.Ratings) (schema.ScoreResult, error) {
	if err := r.Validate(); err != nil {
		return schema.ScoreResult{}, err
	}

	mean := MeanRating(r)
	tier := ClassifyScore(mean)
	return schema.ScoreResult{
		Ratings:      r,
		Score:        mean,
		RoundedScore: RoundScore(mean, DisplayPrecision),
		DisplayScore: FormatScore(mean),
		Tier:         tier,
		Color:        tier.Color(),
	}, nil
}

// ValidateWeight rejects weights outside [0, 1].
func ValidateWeight(w float64) error {
	if math.IsNaN(w) || w < schema.MinWeight || w > schema.MaxWeight {
		return fmt.Errorf("%w: weight must be between %.1f and %.1f (received %g)", schema.ErrWeightOutOfRange, schema.MinWeight, schema.MaxWeight, w)
	}
	return nil
}

// BlendScore is the convex combination impact*w + sustainability*(1-w).
func BlendScore(impact, sustainability, w float64) float64 {
	return impact*w + sustainability*(1-w)
}
