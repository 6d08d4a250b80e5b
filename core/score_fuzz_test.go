package core

import (
	"math"
	"testing"

	"github.com/mariam-attia/dealscore/schema"
)

// FuzzComputeSuccessScore fuzzes the calculator with arbitrary ratings.
func FuzzComputeSuccessScore(f *testing.F) {
	f.Add(8, 9, 9, 8, 7, 8)
	f.Add(5, 5, 5, 5, 5, 5)
	f.Add(6, 6, 7, 7, 6, 8)
	f.Add(1, 1, 1, 1, 1, 1)
	f.Add(10, 10, 10, 10, 10, 10)
	f.Add(0, 11, -1, 100, 5, 5)

	f.Fuzz(func(t *testing.T, a, b, c, d, e, g int) {
		r, err := schema.NewRatings(a, b, c, d, e, g)
		if err != nil {
			t.Fatalf("NewRatings failed: %v", err)
		}

		result, err := ComputeSuccessScore(r)
		if r.Validate() != nil {
			if err == nil {
				t.Fatalf("expected rejection for %v", r.Values())
			}
			return
		}
		if err != nil {
			t.Fatalf("unexpected error for %v: %v", r.Values(), err)
		}

		if result.Score < schema.MinRating || result.Score > schema.MaxRating {
			t.Errorf("score %f out of range for %v", result.Score, r.Values())
		}

		// Exactly one tier, consistent with the thresholds
		matches := 0
		if result.Score >= schema.HighlyLikelyThreshold {
			matches++
			if result.Tier != schema.HighlyLikelyTier {
				t.Errorf("score %f: got %s", result.Score, result.Tier)
			}
		}
		if result.Score >= schema.ModerateThreshold && result.Score < schema.HighlyLikelyThreshold {
			matches++
			if result.Tier != schema.ModerateTier {
				t.Errorf("score %f: got %s", result.Score, result.Tier)
			}
		}
		if result.Score < schema.ModerateThreshold {
			matches++
			if result.Tier != schema.HighRiskTier {
				t.Errorf("score %f: got %s", result.Score, result.Tier)
			}
		}
		if matches != 1 {
			t.Errorf("score %f matched %d tiers", result.Score, matches)
		}

		if result.Color != result.Tier.Color() {
			t.Errorf("color %s does not match tier %s", result.Color, result.Tier)
		}
	})
}

// FuzzWeightSuccessFactors fuzzes the weighting with arbitrary weights and scores.
func FuzzWeightSuccessFactors(f *testing.F) {
	f.Add(92.0, 85.0, 0.5)
	f.Add(0.0, 100.0, 0.0)
	f.Add(100.0, 0.0, 1.0)
	f.Add(50.0, 50.0, 1.5)
	f.Add(math.NaN(), 50.0, 0.5)
	f.Add(50.0, math.NaN(), 0.5)

	f.Fuzz(func(t *testing.T, impact, sustainability, w float64) {
		factors := []schema.SuccessFactor{{Name: "fuzz", Impact: impact, Sustainability: sustainability}}
		analysis, err := WeightSuccessFactors(factors, w)
		if err != nil {
			return
		}
		if math.IsNaN(impact) || math.IsNaN(sustainability) || math.IsNaN(w) {
			t.Fatalf("NaN input accepted: impact=%f sustainability=%f w=%f", impact, sustainability, w)
		}

		got := analysis.Factors[0].WeightedScore
		if math.IsNaN(got) {
			t.Fatalf("weighted score is NaN for impact=%f sustainability=%f w=%f", impact, sustainability, w)
		}
		lo, hi := impact, sustainability
		if lo > hi {
			lo, hi = hi, lo
		}
		// Convex combination stays between its endpoints
		if got < lo-1e-9 || got > hi+1e-9 {
			t.Errorf("weighted %f outside [%f, %f] for w=%f", got, lo, hi, w)
		}
	})
}
