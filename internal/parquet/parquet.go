// Package parquet provides data structures and functions for exporting dealscore
// evaluations and factor analyses to Parquet files using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/mariam-attia/dealscore/schema"
	"github.com/parquet-go/parquet-go"
)

// Evaluation represents a single recorded success score.
// This struct maps to the dealscore_evaluations database table.
type Evaluation struct {
	EvaluationID string    `parquet:"evaluation_id,snappy"`
	EvaluatedAt  time.Time `parquet:"evaluated_at,snappy"`
	Source       string    `parquet:"source,snappy,dict"`

	CulturalFit          int32 `parquet:"cultural_fit,snappy"`
	LeadershipRetention  int32 `parquet:"leadership_retention,snappy"`
	StrategicAlignment   int32 `parquet:"strategic_alignment,snappy"`
	FinancialStructure   int32 `parquet:"financial_structure,snappy"`
	OperationalSynergies int32 `parquet:"operational_synergies,snappy"`
	StakeholderBuyIn     int32 `parquet:"stakeholder_buy_in,snappy"`

	// MeanScore is the unrounded mean used for classification
	MeanScore    float64 `parquet:"mean_score,snappy"`
	DisplayScore string  `parquet:"display_score,snappy"`
	Tier         string  `parquet:"tier,snappy,dict"`
}

// FactorAnalysisRow represents one weighted success factor of an analysis.
// This struct maps to the dealscore_factor_analyses database table.
type FactorAnalysisRow struct {
	// AnalysisID groups the rows of one analysis; empty when the analysis was not recorded
	AnalysisID          string    `parquet:"analysis_id,snappy"`
	AnalyzedAt          time.Time `parquet:"analyzed_at,snappy"`
	Weight              float64   `parquet:"weight,snappy"`
	FactorName          string    `parquet:"factor_name,snappy,dict"`
	ImpactScore         float64   `parquet:"impact_score,snappy"`
	SustainabilityScore float64   `parquet:"sustainability_score,snappy"`
	WeightedScore       float64   `parquet:"weighted_score,snappy"`
}

// WriteEvaluationsParquet writes a slice of Evaluation structs to a Parquet file.
func WriteEvaluationsParquet(data []Evaluation, outputPath string) error {
	return writeFile(outputPath, func(w io.Writer) error {
		return WriteRows(w, data)
	})
}

// WriteFactorAnalysesParquet writes a slice of FactorAnalysisRow structs to a Parquet file.
func WriteFactorAnalysesParquet(data []FactorAnalysisRow, outputPath string) error {
	return writeFile(outputPath, func(w io.Writer) error {
		return WriteRows(w, data)
	})
}

// WriteRows writes rows to w using a schema inferred from the struct tags of T.
func WriteRows[T any](w io.Writer, data []T) error {
	writer := parquet.NewGenericWriter[T](w)
	if _, err := writer.Write(data); err != nil {
		_ = writer.Close()
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}
	// Close flushes the footer, so its error matters
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finalize parquet file: %w", err)
	}
	return nil
}

func writeFile(outputPath string, fn func(io.Writer) error) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	if err := fn(file); err != nil {
		_ = file.Close()
		return err
	}
	return file.Close()
}

// ConvertEvaluationRecords converts schema.EvaluationRecord to Evaluation for Parquet export.
func ConvertEvaluationRecords(records []schema.EvaluationRecord) []Evaluation {
	result := make([]Evaluation, len(records))
	for i, record := range records {
		r := record.Ratings
		result[i] = Evaluation{
			EvaluationID:         record.EvaluationID,
			EvaluatedAt:          record.EvaluatedAt,
			Source:               string(record.Source),
			CulturalFit:          int32(r.CulturalFit),
			LeadershipRetention:  int32(r.LeadershipRetention),
			StrategicAlignment:   int32(r.StrategicAlignment),
			FinancialStructure:   int32(r.FinancialStructure),
			OperationalSynergies: int32(r.OperationalSynergies),
			StakeholderBuyIn:     int32(r.StakeholderBuyIn),
			MeanScore:            record.MeanScore,
			DisplayScore:         record.DisplayScore,
			Tier:                 string(record.Tier),
		}
	}
	return result
}

// ConvertFactorAnalysisRecords converts schema.FactorAnalysisRecord to FactorAnalysisRow for Parquet export.
func ConvertFactorAnalysisRecords(records []schema.FactorAnalysisRecord) []FactorAnalysisRow {
	result := make([]FactorAnalysisRow, len(records))
	for i, record := range records {
		result[i] = FactorAnalysisRow{
			AnalysisID:          record.AnalysisID,
			AnalyzedAt:          record.AnalyzedAt,
			Weight:              record.Weight,
			FactorName:          record.FactorName,
			ImpactScore:         record.ImpactScore,
			SustainabilityScore: record.SustainabilityScore,
			WeightedScore:       record.WeightedScore,
		}
	}
	return result
}

// ConvertFactorAnalysis flattens a live analysis into Parquet rows.
func ConvertFactorAnalysis(analysis schema.FactorAnalysis, analysisID string, analyzedAt time.Time) []FactorAnalysisRow {
	result := make([]FactorAnalysisRow, len(analysis.Factors))
	for i, f := range analysis.Factors {
		result[i] = FactorAnalysisRow{
			AnalysisID:          analysisID,
			AnalyzedAt:          analyzedAt,
			Weight:              analysis.Weight,
			FactorName:          f.Name,
			ImpactScore:         f.Impact,
			SustainabilityScore: f.Sustainability,
			WeightedScore:       f.WeightedScore,
		}
	}
	return result
}

// SampleEvaluations generates sample Evaluation data for demonstration.
func SampleEvaluations(now time.Time) []Evaluation {
	samples := []struct {
		id      string
		age     time.Duration
		source  schema.Source
		ratings schema.Ratings
		mean    float64
		display string
		tier    schema.Tier
	}{
		{"0b0f5a52-7d4e-4f0c-9d57-0a8c1d3f6e21", 48 * time.Hour, schema.CLISource, schema.DefaultRatings(), 49.0 / 6.0, "8.2", schema.HighlyLikelyTier},
		{"5c1e9b3a-2f6d-4a8b-8e7c-3d2a1b0c9f84", 24 * time.Hour, schema.HTTPSource, schema.Ratings{CulturalFit: 6, LeadershipRetention: 6, StrategicAlignment: 7, FinancialStructure: 7, OperationalSynergies: 6, StakeholderBuyIn: 8}, 40.0 / 6.0, "6.7", schema.ModerateTier},
		{"a7d3c2e1-9b8f-4c6a-b5d4-e3f2a1c0b9d8", 10 * time.Minute, schema.MCPSource, schema.Ratings{CulturalFit: 5, LeadershipRetention: 5, StrategicAlignment: 5, FinancialStructure: 5, OperationalSynergies: 5, StakeholderBuyIn: 5}, 5.0, "5.0", schema.HighRiskTier},
	}

	records := make([]schema.EvaluationRecord, len(samples))
	for i, s := range samples {
		records[i] = schema.EvaluationRecord{
			EvaluationID: s.id,
			EvaluatedAt:  now.Add(-s.age),
			Source:       s.source,
			Ratings:      s.ratings,
			MeanScore:    s.mean,
			DisplayScore: s.display,
			Tier:         s.tier,
		}
	}
	return ConvertEvaluationRecords(records)
}
