package history

import (
	"fmt"
	"io"

	"github.com/mariam-attia/dealscore/schema"
)

// PrintHistoryStatus prints history status information.
func PrintHistoryStatus(w io.Writer, status schema.HistoryStatus) {
	_, _ = fmt.Fprintf(w, "History Backend: %s\n", status.Backend)
	_, _ = fmt.Fprintf(w, "Connected: %t\n", status.Connected)
	if !status.Connected {
		return
	}
	_, _ = fmt.Fprintf(w, "Total Evaluations: %d\n", status.TotalEvaluations)
	if status.TotalEvaluations > 0 {
		_, _ = fmt.Fprintf(w, "Last Evaluation ID: %s\n", status.LastEvaluationID)
		_, _ = fmt.Fprintf(w, "Last Evaluation: %s\n", status.LastEvaluationTime.Format("2006-01-02 15:04:05"))
		_, _ = fmt.Fprintf(w, "Oldest Evaluation: %s\n", status.OldestEvaluationTime.Format("2006-01-02 15:04:05"))
		_, _ = fmt.Fprintln(w, "Evaluations by Tier:")
		for _, tier := range schema.AllTiers {
			_, _ = fmt.Fprintf(w, "  %s: %d\n", tier, status.TierCounts[tier])
		}
	}
	_, _ = fmt.Fprintf(w, "Total Factor Analyses: %d\n", status.TotalFactorAnalyses)
	_, _ = fmt.Fprintln(w, "Table Sizes:")
	for _, table := range historyTables {
		if size, ok := status.TableSizes[table]; ok {
			_, _ = fmt.Fprintf(w, "  %s: %d rows\n", table, size)
		}
	}
}
