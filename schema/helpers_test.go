package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTierColorAndRank(t *testing.T) {
	tests := []struct {
		tier  Tier
		color TierColor
		rank  int
		key   string
	}{
		{HighlyLikelyTier, GreenColor, 3, "highly-likely"},
		{ModerateTier, OrangeColor, 2, "moderate"},
		{HighRiskTier, RedColor, 1, "high-risk"},
	}

	for _, tt := range tests {
		t.Run(string(tt.tier), func(t *testing.T) {
			assert.Equal(t, tt.color, tt.tier.Color())
			assert.Equal(t, tt.rank, tt.tier.Rank())
			assert.Equal(t, tt.key, tt.tier.Key())
			assert.NotEmpty(t, tt.tier.Emoji())
		})
	}
	assert.Equal(t, 0, Tier("bogus").Rank())
}

func TestParseTier(t *testing.T) {
	tests := []struct {
		input    string
		expected Tier
		wantErr  bool
	}{
		{"moderate", ModerateTier, false},
		{"HIGH-RISK", HighRiskTier, false},
		{" highly-likely ", HighlyLikelyTier, false},
		{"Moderate Success Potential", ModerateTier, false},
		{"high risk of failure", HighRiskTier, false},
		{"excellent", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseTier(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrUnknownTier)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestParseRatingFactor(t *testing.T) {
	f, ok := ParseRatingFactor("cultural_fit")
	assert.True(t, ok)
	assert.Equal(t, CulturalFit, f)

	f, ok = ParseRatingFactor("Stakeholder-Buy-In")
	assert.True(t, ok)
	assert.Equal(t, StakeholderBuyIn, f)

	_, ok = ParseRatingFactor("synergy")
	assert.False(t, ok)
}

func TestWeightRange(t *testing.T) {
	assert.Equal(t, "0.0-1.0 in steps of 0.1", WeightRange())
}
