package core

import (
	"context"
	"fmt"

	"github.com/mariam-attia/dealscore/internal/contract"
	"github.com/mariam-attia/dealscore/internal/outwriter"
	"github.com/mariam-attia/dealscore/schema"
)

// ExecuteCheck runs the check command for scripts and CI gating.
// The result is always printed; a score ranked below cfg.FailBelow returns ErrCheckFailed.
func ExecuteCheck(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager) error {
	result, err := GetScoreResult(ctx, cfg.Ratings, mgr)
	if err != nil {
		return err
	}

	check := EvaluateCheck(result, cfg.FailBelow)
	if err := outwriter.WriteCheckResult(check, cfg); err != nil {
		return err
	}
	if !check.Passed {
		return fmt.Errorf("%w: %q ranks below %q", schema.ErrCheckFailed, check.Tier, check.FailBelow)
	}
	return nil
}

// EvaluateCheck gates a score against the minimum tier. An empty tier means moderate.
func EvaluateCheck(result schema.ScoreResult, failBelow schema.Tier) schema.CheckResult {
	if failBelow == "" {
		failBelow = schema.ModerateTier
	}
	return schema.CheckResult{
		ScoreResult: result,
		FailBelow:   failBelow,
		Passed:      result.Tier.Rank() >= failBelow.Rank(),
	}
}
