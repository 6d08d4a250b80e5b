package history

import (
	"time"

	"github.com/mariam-attia/dealscore/internal/contract"
	"github.com/mariam-attia/dealscore/schema"
	"github.com/stretchr/testify/mock"
)

// MockStoreManager is a mock implementation of StoreManager for testing.
type MockStoreManager struct {
	mock.Mock
}

var _ contract.StoreManager = &MockStoreManager{} // Compile-time check

// GetHistoryStore implements the StoreManager interface.
func (m *MockStoreManager) GetHistoryStore() contract.HistoryStore {
	ret := m.Called()
	store, _ := ret.Get(0).(contract.HistoryStore)
	return store
}

// MockHistoryStore is a mock implementation of HistoryStore for testing.
type MockHistoryStore struct {
	mock.Mock
}

var _ contract.HistoryStore = &MockHistoryStore{} // Compile-time check

// RecordEvaluation implements the HistoryStore interface.
func (m *MockHistoryStore) RecordEvaluation(evaluatedAt time.Time, source schema.Source, result schema.ScoreResult) (string, error) {
	args := m.Called(evaluatedAt, source, result)
	return args.String(0), args.Error(1)
}

// RecordFactorAnalysis implements the HistoryStore interface.
func (m *MockHistoryStore) RecordFactorAnalysis(analyzedAt time.Time, analysis schema.FactorAnalysis) (string, error) {
	args := m.Called(analyzedAt, analysis)
	return args.String(0), args.Error(1)
}

// GetStatus implements the HistoryStore interface.
func (m *MockHistoryStore) GetStatus() (schema.HistoryStatus, error) {
	args := m.Called()
	return args.Get(0).(schema.HistoryStatus), args.Error(1)
}

// GetAllEvaluations implements the HistoryStore interface.
func (m *MockHistoryStore) GetAllEvaluations() ([]schema.EvaluationRecord, error) {
	args := m.Called()
	records, _ := args.Get(0).([]schema.EvaluationRecord)
	return records, args.Error(1)
}

// GetAllFactorAnalyses implements the HistoryStore interface.
func (m *MockHistoryStore) GetAllFactorAnalyses() ([]schema.FactorAnalysisRecord, error) {
	args := m.Called()
	records, _ := args.Get(0).([]schema.FactorAnalysisRecord)
	return records, args.Error(1)
}

// Close implements the HistoryStore interface.
func (m *MockHistoryStore) Close() error {
	args := m.Called()
	return args.Error(0)
}
