package history

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "github.com/go-sql-driver/mysql" // MySQL driver
	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib" // PostgreSQL driver
	"github.com/mariam-attia/dealscore/internal/contract"
	"github.com/mariam-attia/dealscore/schema"
	_ "modernc.org/sqlite" // SQLite driver
)

// sqliteTimeFormat is fixed-width so that stored text sorts chronologically.
const sqliteTimeFormat = "2006-01-02T15:04:05.000000000Z07:00"

// mysqlTimeFormat is the DATETIME(6) text layout.
const mysqlTimeFormat = "2006-01-02 15:04:05.999999"

// HistoryStoreImpl implements the HistoryStore interface.
type HistoryStoreImpl struct {
	db         *sql.DB
	backend    schema.DatabaseBackend
	driverName string
}

var _ contract.HistoryStore = &HistoryStoreImpl{} // Compile-time check

// NewHistoryStore creates a new HistoryStore with the specified backend.
func NewHistoryStore(backend schema.DatabaseBackend, connStr string) (contract.HistoryStore, error) {
	var db *sql.DB
	var err error
	driverName := driverFor(backend)

	switch backend {
	case schema.SQLiteBackend:
		dbPath := connStr
		if dbPath == "" {
			dbPath = GetDBFilePath()
		}
		db, err = sql.Open(driverName, dbPath)
		if err != nil {
			return nil, fmt.Errorf("failed to open SQLite database at %q: %w. Check that the directory is writable", dbPath, err)
		}
		// Limit SQLite to a single open connection to avoid "database is locked" errors
		db.SetMaxOpenConns(1)

	case schema.MySQLBackend:
		db, err = sql.Open(driverName, connStr)
		if err != nil {
			return nil, fmt.Errorf("failed to open MySQL database: %w. Check connection string format: user:password@tcp(host:port)/dbname?parseTime=true", err)
		}

	case schema.PostgreSQLBackend:
		db, err = sql.Open(driverName, connStr)
		if err != nil {
			return nil, fmt.Errorf("failed to open PostgreSQL database: %w. Check connection string format: host=... port=... user=... dbname=...", err)
		}

	case schema.NoneBackend:
		// Return a no-op store for disabled tracking
		return &HistoryStoreImpl{backend: backend}, nil

	default:
		return nil, fmt.Errorf("unsupported backend: %s", backend)
	}

	// Ping to verify connection
	if err := db.Ping(); err != nil {
		_ = db.Close()
		var connDetail string
		switch backend {
		case schema.MySQLBackend:
			connDetail = "Check that MySQL is running and the connection string is correct. Ensure user/password are valid."
		case schema.PostgreSQLBackend:
			connDetail = "Check that PostgreSQL is running and the connection string is correct. Ensure user/password are valid."
		default:
			connDetail = "Verify the database file is accessible."
		}
		return nil, fmt.Errorf("failed to connect to %s database: %w. %s", backend, err, connDetail)
	}

	if err := createHistoryTables(db, backend); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create history tables: %w", err)
	}

	return &HistoryStoreImpl{
		db:         db,
		backend:    backend,
		driverName: driverName,
	}, nil
}

// createHistoryTables creates the history tables when they do not exist yet.
// The statements match the first migrations, so a later migrate up is a no-op.
func createHistoryTables(db *sql.DB, backend schema.DatabaseBackend) error {
	tables := []struct {
		name  string
		query string
	}{
		{evaluationsTable, getCreateEvaluationsQuery(backend)},
		{factorAnalysesTable, getCreateFactorAnalysesQuery(backend)},
	}

	for _, table := range tables {
		if _, err := db.Exec(table.query); err != nil {
			return fmt.Errorf("failed to create table %s: %w", table.name, err)
		}
	}

	return nil
}

// getCreateEvaluationsQuery returns the CREATE TABLE query for dealscore_evaluations.
func getCreateEvaluationsQuery(backend schema.DatabaseBackend) string {
	quotedTableName := quoteTableName(evaluationsTable, backend)

	switch backend {
	case schema.MySQLBackend:
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				evaluation_id CHAR(36) PRIMARY KEY,
				evaluated_at DATETIME(6) NOT NULL,
				source VARCHAR(16) NOT NULL,
				cultural_fit INT NOT NULL,
				leadership_retention INT NOT NULL,
				strategic_alignment INT NOT NULL,
				financial_structure INT NOT NULL,
				operational_synergies INT NOT NULL,
				stakeholder_buy_in INT NOT NULL,
				mean_score DOUBLE NOT NULL,
				display_score VARCHAR(8) NOT NULL,
				tier VARCHAR(64) NOT NULL
			);
		`, quotedTableName)

	case schema.PostgreSQLBackend:
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				evaluation_id UUID PRIMARY KEY,
				evaluated_at TIMESTAMPTZ NOT NULL,
				source TEXT NOT NULL,
				cultural_fit INT NOT NULL,
				leadership_retention INT NOT NULL,
				strategic_alignment INT NOT NULL,
				financial_structure INT NOT NULL,
				operational_synergies INT NOT NULL,
				stakeholder_buy_in INT NOT NULL,
				mean_score DOUBLE PRECISION NOT NULL,
				display_score TEXT NOT NULL,
				tier TEXT NOT NULL
			);
		`, quotedTableName)

	default: // SQLite
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				evaluation_id TEXT PRIMARY KEY,
				evaluated_at TEXT NOT NULL,
				source TEXT NOT NULL,
				cultural_fit INTEGER NOT NULL,
				leadership_retention INTEGER NOT NULL,
				strategic_alignment INTEGER NOT NULL,
				financial_structure INTEGER NOT NULL,
				operational_synergies INTEGER NOT NULL,
				stakeholder_buy_in INTEGER NOT NULL,
				mean_score REAL NOT NULL,
				display_score TEXT NOT NULL,
				tier TEXT NOT NULL
			);
		`, quotedTableName)
	}
}

// getCreateFactorAnalysesQuery returns the CREATE TABLE query for dealscore_factor_analyses.
func getCreateFactorAnalysesQuery(backend schema.DatabaseBackend) string {
	quotedTableName := quoteTableName(factorAnalysesTable, backend)

	switch backend {
	case schema.MySQLBackend:
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				analysis_id CHAR(36) NOT NULL,
				analyzed_at DATETIME(6) NOT NULL,
				weight DOUBLE NOT NULL,
				factor_name VARCHAR(255) NOT NULL,
				impact_score DOUBLE NOT NULL,
				sustainability_score DOUBLE NOT NULL,
				weighted_score DOUBLE NOT NULL,
				PRIMARY KEY (analysis_id, factor_name)
			);
		`, quotedTableName)

	case schema.PostgreSQLBackend:
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				analysis_id UUID NOT NULL,
				analyzed_at TIMESTAMPTZ NOT NULL,
				weight DOUBLE PRECISION NOT NULL,
				factor_name TEXT NOT NULL,
				impact_score DOUBLE PRECISION NOT NULL,
				sustainability_score DOUBLE PRECISION NOT NULL,
				weighted_score DOUBLE PRECISION NOT NULL,
				PRIMARY KEY (analysis_id, factor_name)
			);
		`, quotedTableName)

	default: // SQLite
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				analysis_id TEXT NOT NULL,
				analyzed_at TEXT NOT NULL,
				weight REAL NOT NULL,
				factor_name TEXT NOT NULL,
				impact_score REAL NOT NULL,
				sustainability_score REAL NOT NULL,
				weighted_score REAL NOT NULL,
				PRIMARY KEY (analysis_id, factor_name)
			);
		`, quotedTableName)
	}
}

// placeholders returns n bind parameters in the backend's style.
func (hs *HistoryStoreImpl) placeholders(n int) string {
	parts := make([]string, n)
	for i := range parts {
		if hs.backend == schema.PostgreSQLBackend {
			parts[i] = fmt.Sprintf("$%d", i+1)
		} else {
			parts[i] = "?"
		}
	}
	return strings.Join(parts, ", ")
}

// RecordEvaluation stores one computed success score and returns its unique ID.
func (hs *HistoryStoreImpl) RecordEvaluation(evaluatedAt time.Time, source schema.Source, result schema.ScoreResult) (string, error) {
	// Skip for NoneBackend
	if hs.backend == schema.NoneBackend || hs.db == nil {
		return "", nil
	}

	evaluationID := uuid.NewString()
	query := fmt.Sprintf(`
		INSERT INTO %s (evaluation_id, evaluated_at, source, cultural_fit, leadership_retention,
		                strategic_alignment, financial_structure, operational_synergies, stakeholder_buy_in,
		                mean_score, display_score, tier)
		VALUES (%s)
	`, quoteTableName(evaluationsTable, hs.backend), hs.placeholders(12))

	r := result.Ratings
	args := []any{
		evaluationID, formatTime(evaluatedAt, hs.backend), string(source),
		r.CulturalFit, r.LeadershipRetention, r.StrategicAlignment,
		r.FinancialStructure, r.OperationalSynergies, r.StakeholderBuyIn,
		result.Score, result.DisplayScore, string(result.Tier),
	}
	if _, err := hs.db.Exec(query, args...); err != nil {
		return "", fmt.Errorf("failed to insert evaluation: %w", err)
	}

	return evaluationID, nil
}

// RecordFactorAnalysis stores every weighted row of an analysis in one transaction.
func (hs *HistoryStoreImpl) RecordFactorAnalysis(analyzedAt time.Time, analysis schema.FactorAnalysis) (string, error) {
	// Skip for NoneBackend
	if hs.backend == schema.NoneBackend || hs.db == nil {
		return "", nil
	}

	analysisID := uuid.NewString()
	query := fmt.Sprintf(`
		INSERT INTO %s (analysis_id, analyzed_at, weight, factor_name, impact_score, sustainability_score, weighted_score)
		VALUES (%s)
	`, quoteTableName(factorAnalysesTable, hs.backend), hs.placeholders(7))

	tx, err := hs.db.Begin()
	if err != nil {
		return "", fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stamp := formatTime(analyzedAt, hs.backend)
	for _, f := range analysis.Factors {
		if _, err := tx.Exec(query, analysisID, stamp, analysis.Weight, f.Name, f.Impact, f.Sustainability, f.WeightedScore); err != nil {
			return "", fmt.Errorf("failed to insert factor %q: %w", f.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("failed to commit factor analysis: %w", err)
	}
	return analysisID, nil
}

// Close closes the underlying connection.
func (hs *HistoryStoreImpl) Close() error {
	if hs.db != nil {
		return hs.db.Close()
	}
	return nil
}

// GetStatus returns status information about the history store.
func (hs *HistoryStoreImpl) GetStatus() (schema.HistoryStatus, error) {
	status := schema.HistoryStatus{
		Backend:    string(hs.backend),
		Connected:  hs.db != nil,
		TierCounts: make(map[schema.Tier]int),
		TableSizes: make(map[string]int64),
	}

	if hs.backend == schema.NoneBackend || hs.db == nil {
		return status, nil
	}

	evaluations := quoteTableName(evaluationsTable, hs.backend)

	// Get total evaluations
	row := hs.db.QueryRow(fmt.Sprintf("SELECT COUNT(*) FROM %s", evaluations))
	if err := row.Scan(&status.TotalEvaluations); err != nil {
		return status, fmt.Errorf("failed to get total evaluations: %w", err)
	}

	if status.TotalEvaluations > 0 {
		// Get last evaluation info
		row = hs.db.QueryRow(fmt.Sprintf("SELECT evaluation_id, evaluated_at FROM %s ORDER BY evaluated_at DESC LIMIT 1", evaluations))
		var lastAt any
		if err := row.Scan(&status.LastEvaluationID, &lastAt); err != nil {
			return status, fmt.Errorf("failed to get last evaluation info: %w", err)
		}
		lastTime, err := parseTime(lastAt)
		if err != nil {
			return status, fmt.Errorf("failed to parse last evaluation time: %w", err)
		}
		status.LastEvaluationTime = lastTime

		// Get oldest evaluation time
		row = hs.db.QueryRow(fmt.Sprintf("SELECT evaluated_at FROM %s ORDER BY evaluated_at ASC LIMIT 1", evaluations))
		var oldestAt any
		if err := row.Scan(&oldestAt); err != nil {
			return status, fmt.Errorf("failed to get oldest evaluation time: %w", err)
		}
		oldestTime, err := parseTime(oldestAt)
		if err != nil {
			return status, fmt.Errorf("failed to parse oldest evaluation time: %w", err)
		}
		status.OldestEvaluationTime = oldestTime

		// Get evaluations per tier
		rows, err := hs.db.Query(fmt.Sprintf("SELECT tier, COUNT(*) FROM %s GROUP BY tier", evaluations))
		if err != nil {
			return status, fmt.Errorf("failed to get tier counts: %w", err)
		}
		for rows.Next() {
			var tier string
			var count int
			if err := rows.Scan(&tier, &count); err != nil {
				_ = rows.Close()
				return status, fmt.Errorf("failed to scan tier count: %w", err)
			}
			status.TierCounts[schema.Tier(tier)] = count
		}
		_ = rows.Close()
		if err := rows.Err(); err != nil {
			return status, fmt.Errorf("error iterating tier counts: %w", err)
		}
	}

	// Get distinct factor analyses
	row = hs.db.QueryRow(fmt.Sprintf("SELECT COUNT(DISTINCT analysis_id) FROM %s", quoteTableName(factorAnalysesTable, hs.backend)))
	if err := row.Scan(&status.TotalFactorAnalyses); err != nil {
		return status, fmt.Errorf("failed to get total factor analyses: %w", err)
	}

	// Get table sizes
	for _, table := range historyTables {
		row = hs.db.QueryRow(fmt.Sprintf("SELECT COUNT(*) FROM %s", quoteTableName(table, hs.backend)))
		var count int64
		if err := row.Scan(&count); err != nil {
			return status, fmt.Errorf("failed to get count for table %s: %w", table, err)
		}
		status.TableSizes[table] = count
	}

	return status, nil
}

// GetAllEvaluations retrieves all evaluations from the store, oldest first.
func (hs *HistoryStoreImpl) GetAllEvaluations() ([]schema.EvaluationRecord, error) {
	// Skip for NoneBackend
	if hs.backend == schema.NoneBackend || hs.db == nil {
		return nil, nil
	}

	query := fmt.Sprintf(`SELECT evaluation_id, evaluated_at, source, cultural_fit, leadership_retention,
		strategic_alignment, financial_structure, operational_synergies, stakeholder_buy_in,
		mean_score, display_score, tier
		FROM %s ORDER BY evaluated_at, evaluation_id`, quoteTableName(evaluationsTable, hs.backend))

	rows, err := hs.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query evaluations: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var results []schema.EvaluationRecord

	for rows.Next() {
		var record schema.EvaluationRecord
		var evaluatedAt any
		var source, tier string
		r := &record.Ratings
		if err := rows.Scan(&record.EvaluationID, &evaluatedAt, &source,
			&r.CulturalFit, &r.LeadershipRetention, &r.StrategicAlignment,
			&r.FinancialStructure, &r.OperationalSynergies, &r.StakeholderBuyIn,
			&record.MeanScore, &record.DisplayScore, &tier); err != nil {
			return nil, fmt.Errorf("failed to scan evaluation: %w", err)
		}
		if record.EvaluatedAt, err = parseTime(evaluatedAt); err != nil {
			return nil, fmt.Errorf("failed to parse evaluated_at: %w", err)
		}
		record.Source = schema.Source(source)
		record.Tier = schema.Tier(tier)
		results = append(results, record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating evaluations: %w", err)
	}

	return results, nil
}

// GetAllFactorAnalyses retrieves all factor analysis rows from the store, oldest first.
func (hs *HistoryStoreImpl) GetAllFactorAnalyses() ([]schema.FactorAnalysisRecord, error) {
	// Skip for NoneBackend
	if hs.backend == schema.NoneBackend || hs.db == nil {
		return nil, nil
	}

	query := fmt.Sprintf(`SELECT analysis_id, analyzed_at, weight, factor_name, impact_score, sustainability_score, weighted_score
		FROM %s ORDER BY analyzed_at, analysis_id, factor_name`, quoteTableName(factorAnalysesTable, hs.backend))

	rows, err := hs.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query factor analyses: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var results []schema.FactorAnalysisRecord

	for rows.Next() {
		var record schema.FactorAnalysisRecord
		var analyzedAt any
		if err := rows.Scan(&record.AnalysisID, &analyzedAt, &record.Weight, &record.FactorName,
			&record.ImpactScore, &record.SustainabilityScore, &record.WeightedScore); err != nil {
			return nil, fmt.Errorf("failed to scan factor analysis: %w", err)
		}
		if record.AnalyzedAt, err = parseTime(analyzedAt); err != nil {
			return nil, fmt.Errorf("failed to parse analyzed_at: %w", err)
		}
		results = append(results, record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating factor analyses: %w", err)
	}

	return results, nil
}

// formatTime converts a time.Time to the appropriate format for the backend.
func formatTime(t time.Time, backend schema.DatabaseBackend) any {
	switch backend {
	case schema.SQLiteBackend:
		return t.UTC().Format(sqliteTimeFormat)
	default:
		return t.UTC()
	}
}

// parseTime accepts what the drivers hand back for a timestamp column:
// SQLite text, MySQL text when parseTime is off, or a native time.Time.
func parseTime(v any) (time.Time, error) {
	switch t := v.(type) {
	case time.Time:
		return t, nil
	case string:
		return parseTimeText(t)
	case []byte:
		return parseTimeText(string(t))
	default:
		return time.Time{}, fmt.Errorf("unexpected timestamp type %T", v)
	}
}

func parseTimeText(s string) (time.Time, error) {
	if t, err := time.Parse(sqliteTimeFormat, s); err == nil {
		return t, nil
	}
	return time.ParseInLocation(mysqlTimeFormat, s, time.UTC)
}
