// Package contract provides interfaces and shared utilities for the dealscore internal architecture.
package contract

import (
	"time"

	"github.com/mariam-attia/dealscore/schema"
)

// StoreManager defines the interface for managing history stores.
// This allows the history layer to be mocked for testing.
type StoreManager interface {
	GetHistoryStore() HistoryStore
}

// HistoryStore defines the interface for the evaluation audit log.
type HistoryStore interface {
	// RecordEvaluation stores one computed success score and returns its unique ID
	RecordEvaluation(evaluatedAt time.Time, source schema.Source, result schema.ScoreResult) (string, error)

	// RecordFactorAnalysis stores every weighted row of an analysis under one ID
	RecordFactorAnalysis(analyzedAt time.Time, analysis schema.FactorAnalysis) (string, error)

	// GetStatus returns status information about the history store
	GetStatus() (schema.HistoryStatus, error)

	// GetAllEvaluations returns every stored evaluation, oldest first
	GetAllEvaluations() ([]schema.EvaluationRecord, error)

	// GetAllFactorAnalyses returns every stored factor analysis row, oldest first
	GetAllFactorAnalyses() ([]schema.FactorAnalysisRecord, error)

	// Close closes the underlying connection
	Close() error
}
