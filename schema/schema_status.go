package schema

import "time"

// HistoryStatus represents the status of the history store.
type HistoryStatus struct {
	Backend              string           `json:"backend"`
	Connected            bool             `json:"connected"`
	TotalEvaluations     int              `json:"total_evaluations"`
	LastEvaluationID     string           `json:"last_evaluation_id"`
	LastEvaluationTime   time.Time        `json:"last_evaluation_time"`
	OldestEvaluationTime time.Time        `json:"oldest_evaluation_time"`
	TotalFactorAnalyses  int              `json:"total_factor_analyses"`
	TierCounts           map[Tier]int     `json:"tier_counts"`
	TableSizes           map[string]int64 `json:"table_sizes"`
}
