package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/mariam-attia/dealscore/core"
	"github.com/mariam-attia/dealscore/internal/contract"
	"github.com/mariam-attia/dealscore/schema"
	"github.com/mark3labs/mcp-go/mcp"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
	mgr     contract.StoreManager
}

// ratingArgName maps a factor key to its tool argument name, e.g. cultural_fit.
func ratingArgName(f schema.RatingFactor) string {
	return strings.ReplaceAll(string(f), "-", "_")
}

func (h *toolHandler) handleComputeSuccessScore(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	ratings := h.baseCfg.Ratings
	args := request.GetArguments()
	for _, f := range schema.AllRatingFactors {
		raw, ok := args[ratingArgName(f)]
		if !ok {
			continue
		}
		v, err := integerArg(raw)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid %s: %v", ratingArgName(f), err)), nil
		}
		ratings.Set(f, v)
	}

	result, err := core.GetScoreResult(core.WithSource(ctx, schema.MCPSource), ratings, h.mgr)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("scoring failed: %v", err)), nil
	}
	return jsonResult(result)
}

func (h *toolHandler) handleWeightSuccessFactors(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	req := schema.FactorRequest{
		Factors: cfg.Factors,
		Weight:  request.GetFloat("weight", cfg.Weight),
		Sort:    request.GetBool("sort", cfg.SortFactors),
		Limit:   cfg.ResultLimit,
	}

	args := request.GetArguments()
	if raw, ok := args["limit"]; ok {
		limit, err := integerArg(raw)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid limit: %v", err)), nil
		}
		req.Limit = limit
	}
	if raw, ok := args["factors"]; ok {
		factors, err := factorsArg(raw)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid factors: %v", err)), nil
		}
		req.Factors = factors
	}

	analysis, err := core.GetFactorAnalysis(core.WithSource(ctx, schema.MCPSource), req, h.mgr)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("weighting failed: %v", err)), nil
	}
	return jsonResult(analysis)
}

func (h *toolHandler) handleGetTierDefinitions(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return jsonResult(schema.TierDefinitions())
}

// integerArg accepts JSON numbers that hold a whole value.
func integerArg(raw any) (int, error) {
	switch v := raw.(type) {
	case float64:
		if v != math.Trunc(v) || math.IsInf(v, 0) {
			return 0, fmt.Errorf("must be an integer (received %v)", v)
		}
		return int(v), nil
	case int:
		return v, nil
	default:
		return 0, fmt.Errorf("must be a number (received %T)", raw)
	}
}

// factorsArg converts the decoded JSON array back into success factors.
func factorsArg(raw any) ([]schema.SuccessFactor, error) {
	data, err := json.Marshal(raw)
	if err != nil {
		return nil, err
	}
	var factors []schema.SuccessFactor
	if err := json.Unmarshal(data, &factors); err != nil {
		return nil, err
	}
	return factors, nil
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	jsonData, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, err
	}
	return mcp.NewToolResultText(string(jsonData)), nil
}
