package schema

import "time"

// EvaluationRecord represents a row from the dealscore_evaluations table.
type EvaluationRecord struct {
	EvaluationID string
	EvaluatedAt  time.Time
	Source       Source
	Ratings      Ratings
	MeanScore    float64
	DisplayScore string
	Tier         Tier
}

// FactorAnalysisRecord represents a row from the dealscore_factor_analyses table.
type FactorAnalysisRecord struct {
	AnalysisID          string
	AnalyzedAt          time.Time
	Weight              float64
	FactorName          string
	ImpactScore         float64
	SustainabilityScore float64
	WeightedScore       float64
}
