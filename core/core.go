// Package core has core logic for scoring, weighting and ranking.
package core

import (
	"context"
	"fmt"
	"time"

	"github.com/mariam-attia/dealscore/core/algo"
	"github.com/mariam-attia/dealscore/internal/contract"
	"github.com/mariam-attia/dealscore/internal/outwriter"
	"github.com/mariam-attia/dealscore/schema"
)

// ExecutorFunc defines the function signature for executing different commands.
type ExecutorFunc func(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager) error

// ExecuteScore computes the success score for the configured ratings and prints it.
// It serves as the main entry point for the 'score' command.
func ExecuteScore(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager) error {
	result, err := GetScoreResult(ctx, cfg.Ratings, mgr)
	if err != nil {
		return err
	}
	return outwriter.WriteScoreResult(result, cfg)
}

// ExecuteFactors weights the configured success factors and prints the analysis.
// It serves as the main entry point for the 'factors' command.
func ExecuteFactors(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager) error {
	analysis, err := GetFactorAnalysis(ctx, FactorRequestFromConfig(cfg), mgr)
	if err != nil {
		return err
	}
	return outwriter.WriteFactorAnalysis(analysis, cfg)
}

// ExecuteTiers prints the tier definitions. Nothing is recorded.
func ExecuteTiers(_ context.Context, cfg *contract.Config, _ contract.StoreManager) error {
	return outwriter.WriteTierDefinitions(schema.TierDefinitions(), cfg)
}

// GetScoreResult computes a score and records it when history is enabled.
// A failed write to history is logged and does not fail the evaluation.
func GetScoreResult(ctx context.Context, ratings schema.Ratings, mgr contract.StoreManager) (schema.ScoreResult, error) {
	result, err := ComputeSuccessScore(ratings)
	if err != nil {
		return schema.ScoreResult{}, err
	}

	if store := historyStore(mgr); store != nil {
		if _, err := store.RecordEvaluation(time.Now(), SourceFromContext(ctx), result); err != nil {
			contract.LogWarn("Failed to record evaluation", err)
		}
	}
	return result, nil
}

// GetFactorAnalysis weights a factor table, records the full table, then applies sort and limit.
func GetFactorAnalysis(_ context.Context, req schema.FactorRequest, mgr contract.StoreManager) (schema.FactorAnalysis, error) {
	if req.Limit < 0 || req.Limit > contract.MaxResultLimit {
		return schema.FactorAnalysis{}, fmt.Errorf("%w: limit must be between 0 and %d (received %d)", schema.ErrLimitOutOfRange, contract.MaxResultLimit, req.Limit)
	}

	analysis, err := WeightSuccessFactors(req.Factors, req.Weight)
	if err != nil {
		return schema.FactorAnalysis{}, err
	}

	if store := historyStore(mgr); store != nil {
		if _, err := store.RecordFactorAnalysis(time.Now(), analysis); err != nil {
			contract.LogWarn("Failed to record factor analysis", err)
		}
	}

	if req.Sort {
		analysis.Factors = algo.RankFactors(analysis.Factors, req.Limit)
	} else {
		analysis.Factors = algo.LimitFactors(analysis.Factors, req.Limit)
	}
	return analysis, nil
}

// FactorRequestFromConfig builds the weighting request for the CLI surfaces.
func FactorRequestFromConfig(cfg *contract.Config) schema.FactorRequest {
	return schema.FactorRequest{
		Factors: cfg.Factors,
		Weight:  cfg.Weight,
		Sort:    cfg.SortFactors,
		Limit:   cfg.ResultLimit,
	}
}

// historyStore tolerates a nil manager so that callers without history can pass nil.
func historyStore(mgr contract.StoreManager) contract.HistoryStore {
	if mgr == nil {
		return nil
	}
	return mgr.GetHistoryStore()
}
