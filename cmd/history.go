package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/mariam-attia/dealscore/internal/contract"
	"github.com/mariam-attia/dealscore/internal/history"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// resolveHistoryConfig reads and validates the history backend settings from viper.
func resolveHistoryConfig() error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	backend, err := contract.ResolveHistoryBackend(viper.GetString("history-backend"))
	if err != nil {
		return err
	}
	connStr := viper.GetString("history-db-connect")
	if err := contract.ValidateDatabaseConnectionString(backend, connStr); err != nil {
		return err
	}

	cfg.HistoryBackend = backend
	cfg.HistoryDBConnect = connStr
	cfg.OutputFile = viper.GetString("output-file")
	return nil
}

// historySetup loads minimal configuration needed for history operations.
// It skips rating validation so a bad rating in the config file cannot block a clear or export.
func historySetup() error {
	if err := resolveHistoryConfig(); err != nil {
		return err
	}
	if err := history.InitStores(cfg.HistoryBackend, cfg.HistoryDBConnect); err != nil {
		return fmt.Errorf("failed to initialize history: %w", err)
	}
	return nil
}

// historySetupWrapper wraps historySetup to provide PreRunE for history commands.
func historySetupWrapper(_ *cobra.Command, _ []string) error {
	return historySetup()
}

// historyMigrateSetupWrapper resolves the backend without opening the store,
// so migrations can run against a fresh database.
func historyMigrateSetupWrapper(_ *cobra.Command, _ []string) error {
	return resolveHistoryConfig()
}

// historyCmd focused on the evaluation audit log.
//
// Note: history subcommands use minimal initialization instead of the full
// sharedSetup, so they work even when the configured ratings are invalid.
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Manage the evaluation history and its exports",
	Long: `Manage the audit log of computed scores and factor analyses.

When a backend is configured, every successful score and every weighted
factor table is recorded together with its source (cli, http or mcp).

Supported backends: SQLite, MySQL, PostgreSQL, or None (disabled, default)

Subcommands:
  status  - Show history statistics
  export  - Export data to Parquet for analytics
  clear   - Remove all history data
  migrate - Run database schema migrations

Examples:
  # Record into the default SQLite file
  dealscore score --history-backend sqlite

  # Check what has been recorded
  dealscore history status --history-backend sqlite`,
}

// historyStatusCmd shows history status.
var historyStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Display history statistics and connection details",
	Long: `Show the backend, connection state, row counts and the oldest and
latest evaluation timestamps.

Examples:
  dealscore history status --history-backend sqlite`,
	PreRunE: historySetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		store := history.Manager.GetHistoryStore()
		if store == nil {
			contract.LogFatal("Failed to get history status", errors.New("history is disabled. Set --history-backend"))
		}
		status, err := store.GetStatus()
		if err != nil {
			contract.LogFatal("Failed to get history status", err)
		}
		history.PrintHistoryStatus(os.Stdout, status)
	},
}

// historyClearCmd clears the history data.
var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all recorded evaluations and factor analyses",
	Long: `Delete every stored evaluation and factor analysis row.

For SQLite the database file is removed. For MySQL and PostgreSQL the
history tables are dropped.

WARNING: This action cannot be undone. Consider exporting data first.

Examples:
  # Export before clearing
  dealscore history export --history-backend sqlite --output-file backup
  dealscore history clear --history-backend sqlite`,
	PreRunE: historyMigrateSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		dbFilePath := cfg.HistoryDBConnect
		if dbFilePath == "" {
			dbFilePath = history.GetDBFilePath()
		}
		if err := history.ClearHistory(cfg.HistoryBackend, dbFilePath, cfg.HistoryDBConnect); err != nil {
			contract.LogFatal("Failed to clear history data", err)
		}
		fmt.Println("History data cleared successfully.")
	},
}

// historyExportCmd exports history data to Parquet files.
var historyExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export history to Parquet for BI tools and analytics",
	Long: `Export all stored history to two Parquet files:
- <output-file>.evaluations.parquet
- <output-file>.factor_analyses.parquet

Requires: --output-file parameter

Examples:
  dealscore history export --history-backend sqlite --output-file deals
  duckdb -c "SELECT tier, count(*) FROM read_parquet('deals.evaluations.parquet') GROUP BY tier"`,
	PreRunE: historySetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := history.ExecuteHistoryExport(cfg.OutputFile); err != nil {
			contract.LogFatal("Failed to export history data", err)
		}
	},
}

// historyMigrateCmd runs database migrations for the history store.
var historyMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database schema migrations (upgrades/downgrades)",
	Long: `Manage database schema versions for the history store.

By default, migrates to the latest version. Use --target-version for specific versions.

Examples:
  # Migrate to latest version (default)
  dealscore history migrate --history-backend sqlite

  # Rollback to initial state
  dealscore history migrate --history-backend sqlite --target-version 0`,
	PreRunE: historyMigrateSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		targetVersion := viper.GetInt("target-version")
		if err := history.MigrateHistory(cfg.HistoryBackend, cfg.HistoryDBConnect, targetVersion); err != nil {
			contract.LogFatal("Failed to run migrations", err)
		}
	},
}
