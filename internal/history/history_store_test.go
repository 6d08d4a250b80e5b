package history

import (
	"testing"
	"time"

	"github.com/mariam-attia/dealscore/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleResult(ratings schema.Ratings, mean float64, display string, tier schema.Tier) schema.ScoreResult {
	return schema.ScoreResult{
		Ratings:      ratings,
		Score:        mean,
		DisplayScore: display,
		Tier:         tier,
		Color:        tier.Color(),
	}
}

func sampleAnalysis() schema.FactorAnalysis {
	return schema.FactorAnalysis{
		Title:                schema.FactorAnalysisTitle(0.5),
		Weight:               0.5,
		SustainabilityWeight: 0.5,
		Factors: []schema.WeightedFactor{
			{SuccessFactor: schema.SuccessFactor{Name: "Strategic Alignment", Impact: 92, Sustainability: 85}, WeightedScore: 88.5},
			{SuccessFactor: schema.SuccessFactor{Name: "Cultural Preservation", Impact: 89, Sustainability: 75}, WeightedScore: 82},
		},
	}
}

func TestHistoryStore_NoneBackend(t *testing.T) {
	store, err := NewHistoryStore(schema.NoneBackend, "")
	require.NoError(t, err)
	require.NotNil(t, store)

	id, err := store.RecordEvaluation(time.Now(), schema.CLISource, sampleResult(schema.DefaultRatings(), 49.0/6.0, "8.2", schema.HighlyLikelyTier))
	assert.NoError(t, err)
	assert.Empty(t, id)

	id, err = store.RecordFactorAnalysis(time.Now(), sampleAnalysis())
	assert.NoError(t, err)
	assert.Empty(t, id)

	status, err := store.GetStatus()
	require.NoError(t, err)
	assert.Equal(t, "none", status.Backend)
	assert.False(t, status.Connected)

	evaluations, err := store.GetAllEvaluations()
	assert.NoError(t, err)
	assert.Empty(t, evaluations)

	assert.NoError(t, store.Close())
}

func TestHistoryStore_UnsupportedBackend(t *testing.T) {
	_, err := NewHistoryStore(schema.DatabaseBackend("redis"), "")
	assert.Error(t, err)
}

func TestHistoryStore_SQLite(t *testing.T) {
	store, err := NewHistoryStore(schema.SQLiteBackend, ":memory:")
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	base := time.Date(2026, 5, 4, 10, 0, 0, 0, time.UTC)
	fives := schema.Ratings{CulturalFit: 5, LeadershipRetention: 5, StrategicAlignment: 5, FinancialStructure: 5, OperationalSynergies: 5, StakeholderBuyIn: 5}

	firstID, err := store.RecordEvaluation(base, schema.CLISource, sampleResult(schema.DefaultRatings(), 49.0/6.0, "8.2", schema.HighlyLikelyTier))
	require.NoError(t, err)
	assert.Len(t, firstID, 36, "evaluation ids are UUIDs")

	lastID, err := store.RecordEvaluation(base.Add(90*time.Second), schema.HTTPSource, sampleResult(fives, 5.0, "5.0", schema.HighRiskTier))
	require.NoError(t, err)
	assert.NotEqual(t, firstID, lastID)

	analysisID, err := store.RecordFactorAnalysis(base.Add(time.Minute), sampleAnalysis())
	require.NoError(t, err)
	assert.NotEmpty(t, analysisID)

	t.Run("status", func(t *testing.T) {
		status, err := store.GetStatus()
		require.NoError(t, err)
		assert.Equal(t, "sqlite", status.Backend)
		assert.True(t, status.Connected)
		assert.Equal(t, 2, status.TotalEvaluations)
		assert.Equal(t, lastID, status.LastEvaluationID)
		assert.True(t, status.LastEvaluationTime.Equal(base.Add(90*time.Second)))
		assert.True(t, status.OldestEvaluationTime.Equal(base))
		assert.Equal(t, 1, status.TotalFactorAnalyses)
		assert.Equal(t, 1, status.TierCounts[schema.HighlyLikelyTier])
		assert.Equal(t, 1, status.TierCounts[schema.HighRiskTier])
		assert.Equal(t, int64(2), status.TableSizes[evaluationsTable])
		assert.Equal(t, int64(2), status.TableSizes[factorAnalysesTable])
	})

	t.Run("evaluations round-trip", func(t *testing.T) {
		records, err := store.GetAllEvaluations()
		require.NoError(t, err)
		require.Len(t, records, 2)

		assert.Equal(t, firstID, records[0].EvaluationID)
		assert.Equal(t, schema.CLISource, records[0].Source)
		assert.Equal(t, schema.DefaultRatings(), records[0].Ratings)
		assert.InDelta(t, 49.0/6.0, records[0].MeanScore, 1e-12)
		assert.Equal(t, "8.2", records[0].DisplayScore)
		assert.Equal(t, schema.HighlyLikelyTier, records[0].Tier)
		assert.True(t, records[0].EvaluatedAt.Equal(base))

		assert.Equal(t, fives, records[1].Ratings)
		assert.Equal(t, schema.HTTPSource, records[1].Source)
	})

	t.Run("factor analyses round-trip", func(t *testing.T) {
		rows, err := store.GetAllFactorAnalyses()
		require.NoError(t, err)
		require.Len(t, rows, 2)
		for _, row := range rows {
			assert.Equal(t, analysisID, row.AnalysisID)
			assert.InDelta(t, 0.5, row.Weight, 1e-12)
		}
		// Ordered by factor name within an analysis
		assert.Equal(t, "Cultural Preservation", rows[0].FactorName)
		assert.InDelta(t, 82.0, rows[0].WeightedScore, 1e-12)
		assert.Equal(t, "Strategic Alignment", rows[1].FactorName)
	})
}

func TestHistoryStore_SQLiteFileReopen(t *testing.T) {
	dbPath := t.TempDir() + "/history.db"

	store, err := NewHistoryStore(schema.SQLiteBackend, dbPath)
	require.NoError(t, err)
	_, err = store.RecordEvaluation(time.Now(), schema.CLISource, sampleResult(schema.DefaultRatings(), 49.0/6.0, "8.2", schema.HighlyLikelyTier))
	require.NoError(t, err)
	require.NoError(t, store.Close())

	// Tables already exist; reopening must not fail and must keep data
	reopened, err := NewHistoryStore(schema.SQLiteBackend, dbPath)
	require.NoError(t, err)
	defer func() { _ = reopened.Close() }()

	status, err := reopened.GetStatus()
	require.NoError(t, err)
	assert.Equal(t, 1, status.TotalEvaluations)
}

func TestParseTime(t *testing.T) {
	want := time.Date(2026, 1, 2, 3, 4, 5, 600000000, time.UTC)

	got, err := parseTime(want.Format(sqliteTimeFormat))
	require.NoError(t, err)
	assert.True(t, want.Equal(got))

	got, err = parseTime([]byte("2026-01-02 03:04:05.6"))
	require.NoError(t, err)
	assert.True(t, want.Equal(got))

	got, err = parseTime(want)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	_, err = parseTime(42)
	assert.Error(t, err)
}

func TestSQLiteTimeFormatSortsChronologically(t *testing.T) {
	earlier := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	later := earlier.Add(100 * time.Millisecond)
	assert.Less(t, formatTime(earlier, schema.SQLiteBackend).(string), formatTime(later, schema.SQLiteBackend).(string))
}

func TestQuoteTableName(t *testing.T) {
	assert.Equal(t, "`dealscore_evaluations`", quoteTableName(evaluationsTable, schema.MySQLBackend))
	assert.Equal(t, `"dealscore_evaluations"`, quoteTableName(evaluationsTable, schema.PostgreSQLBackend))
	assert.Equal(t, `"dealscore_evaluations"`, quoteTableName(evaluationsTable, schema.SQLiteBackend))
}

func TestPlaceholders(t *testing.T) {
	pg := &HistoryStoreImpl{backend: schema.PostgreSQLBackend}
	assert.Equal(t, "$1, $2, $3", pg.placeholders(3))

	my := &HistoryStoreImpl{backend: schema.MySQLBackend}
	assert.Equal(t, "?, ?", my.placeholders(2))
}
