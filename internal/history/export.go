package history

import (
	"errors"
	"fmt"

	"github.com/mariam-attia/dealscore/internal/contract"
	"github.com/mariam-attia/dealscore/internal/parquet"
)

// ExecuteHistoryExport exports the global history store to Parquet files.
func ExecuteHistoryExport(outputFile string) error {
	store := Manager.GetHistoryStore()
	if store == nil {
		return errors.New("history is disabled. Set --history-backend to export")
	}
	return exportHistory(store, outputFile)
}

// exportHistory writes <outputFile>.evaluations.parquet and <outputFile>.factor_analyses.parquet.
func exportHistory(store contract.HistoryStore, outputFile string) error {
	if outputFile == "" {
		return errors.New("--output-file is required for export command")
	}

	status, err := store.GetStatus()
	if err != nil {
		return fmt.Errorf("failed to get history status: %w", err)
	}

	if status.TotalEvaluations == 0 && status.TotalFactorAnalyses == 0 {
		return errors.New("no history data found to export")
	}

	fmt.Printf("Exporting data from %s backend...\n", status.Backend)
	fmt.Printf("Total evaluations: %d\n", status.TotalEvaluations)
	fmt.Printf("Total factor rows: %d\n", status.TableSizes[factorAnalysesTable])

	evaluations, err := store.GetAllEvaluations()
	if err != nil {
		return fmt.Errorf("failed to retrieve evaluations: %w", err)
	}
	factorRows, err := store.GetAllFactorAnalyses()
	if err != nil {
		return fmt.Errorf("failed to retrieve factor analyses: %w", err)
	}

	parquetEvaluations := parquet.ConvertEvaluationRecords(evaluations)
	parquetFactorRows := parquet.ConvertFactorAnalysisRecords(factorRows)

	evaluationsFile := outputFile + ".evaluations.parquet"
	if err := parquet.WriteEvaluationsParquet(parquetEvaluations, evaluationsFile); err != nil {
		return fmt.Errorf("failed to write evaluations: %w", err)
	}
	fmt.Printf("Exported %d evaluations to: %s\n", len(parquetEvaluations), evaluationsFile)

	factorsFile := outputFile + ".factor_analyses.parquet"
	if err := parquet.WriteFactorAnalysesParquet(parquetFactorRows, factorsFile); err != nil {
		return fmt.Errorf("failed to write factor analyses: %w", err)
	}
	fmt.Printf("Exported %d factor rows to: %s\n", len(parquetFactorRows), factorsFile)

	fmt.Println("\nExport complete! The Parquet files can be used with:")
	fmt.Println("  - DuckDB")
	fmt.Println("  - Pandas (via pyarrow)")
	fmt.Println("  - Apache Spark")
	fmt.Println("  - Any other Parquet-compatible tool")

	return nil
}
