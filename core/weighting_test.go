package core

import (
	"math"
	"testing"

	"github.com/mariam-attia/dealscore/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlendScore(t *testing.T) {
	tests := []struct {
		name           string
		impact         float64
		sustainability float64
		w              float64
		expected       float64
	}{
		{"even split", 92, 85, 0.5, 88.5},
		{"impact only", 92, 85, 1.0, 92},
		{"sustainability only", 92, 85, 0.0, 85},
		{"impact leaning", 88, 70, 0.7, 82.6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, BlendScore(tt.impact, tt.sustainability, tt.w), 1e-9)
		})
	}
}

func TestWeightSuccessFactors(t *testing.T) {
	analysis, err := WeightSuccessFactors(schema.DefaultSuccessFactors(), schema.DefaultWeight)
	require.NoError(t, err)

	assert.Equal(t, "Success Factor Analysis (Weight: 0.5 Impact, 0.5 Sustainability)", analysis.Title)
	assert.InDelta(t, 0.5, analysis.SustainabilityWeight, 1e-9)
	require.Len(t, analysis.Factors, 6)

	// Input order is preserved
	assert.Equal(t, "Strategic Alignment", analysis.Factors[0].Name)
	assert.InDelta(t, 88.5, analysis.Factors[0].WeightedScore, 1e-9)
	assert.Equal(t, "Financial Structure", analysis.Factors[2].Name)
	assert.InDelta(t, 93.5, analysis.Factors[2].WeightedScore, 1e-9)
}

func TestWeightSuccessFactors_Errors(t *testing.T) {
	tests := []struct {
		name    string
		factors []schema.SuccessFactor
		w       float64
		target  error
	}{
		{"weight below zero", schema.DefaultSuccessFactors(), -0.1, schema.ErrWeightOutOfRange},
		{"weight above one", schema.DefaultSuccessFactors(), 1.1, schema.ErrWeightOutOfRange},
		{"score above hundred", []schema.SuccessFactor{{Name: "x", Impact: 120, Sustainability: 50}}, 0.5, schema.ErrFactorScoreOutOfRange},
		{"nan impact", []schema.SuccessFactor{{Name: "x", Impact: math.NaN(), Sustainability: 50}}, 0.5, schema.ErrFactorScoreOutOfRange},
		{"duplicate name", []schema.SuccessFactor{
			{Name: "Cultural Integration", Impact: 80, Sustainability: 70},
			{Name: "Cultural Integration", Impact: 75, Sustainability: 65},
		}, 0.5, schema.ErrInvalidFactor},
		{"empty table", nil, 0.5, schema.ErrInvalidFactor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := WeightSuccessFactors(tt.factors, tt.w)
			require.Error(t, err)
			if tt.target != nil {
				assert.ErrorIs(t, err, tt.target)
			}
		})
	}
}
