package core

import "github.com/mariam-attia/dealscore/schema"

// WeightSuccessFactors blends each factor's impact and sustainability scores
// with the weight w given to impact. Rows keep their input order.
func WeightSuccessFactors(factors []schema.SuccessFactor, w float64) (schema.FactorAnalysis, error) {
	if err := ValidateWeight(w); err != nil {
		return schema.FactorAnalysis{}, err
	}
	if err := schema.ValidateSuccessFactors(factors); err != nil {
		return schema.FactorAnalysis{}, err
	}

	weighted := make([]schema.WeightedFactor, 0, len(factors))
	for _, f := range factors {
		weighted = append(weighted, schema.WeightedFactor{
			SuccessFactor: f,
			WeightedScore: BlendScore(f.Impact, f.Sustainability, w),
		})
	}

	return schema.FactorAnalysis{
		Title:                schema.FactorAnalysisTitle(w),
		Weight:               w,
		SustainabilityWeight: 1 - w,
		Factors:              weighted,
	}, nil
}
