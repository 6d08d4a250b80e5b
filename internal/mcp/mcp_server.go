// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/mariam-attia/dealscore/internal/contract"
	"github.com/mariam-attia/dealscore/schema"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// NewMCPServer initializes and configures the dealscore MCP server without starting it.
// This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, mgr contract.StoreManager) *server.MCPServer {
	s := server.NewMCPServer(
		"Deal Success Score Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
		mgr:     mgr,
	}

	// --- 1. Tool: compute_success_score ---
	scoreOpts := []mcp.ToolOption{
		mcp.WithDescription("Compute the deal success score (mean of six 1-10 ratings) and its tier. Omitted ratings use the configured defaults."),
	}
	for _, f := range schema.AllRatingFactors {
		scoreOpts = append(scoreOpts, mcp.WithNumber(ratingArgName(f),
			mcp.Description(schema.RatingFactorNames[f]+" rating, an integer from 1 to 10."),
			mcp.Min(schema.MinRating),
			mcp.Max(schema.MaxRating),
		))
	}
	s.AddTool(mcp.NewTool("compute_success_score", scoreOpts...), h.handleComputeSuccessScore)

	// --- 2. Tool: weight_success_factors ---
	s.AddTool(mcp.NewTool("weight_success_factors",
		mcp.WithDescription("Blend impact and sustainability scores of success factors: weighted = impact*weight + sustainability*(1-weight)."),
		mcp.WithNumber("weight", mcp.Description("Share given to impact, "+schema.WeightRange()+". Defaults to 0.5."), mcp.Min(schema.MinWeight), mcp.Max(schema.MaxWeight)),
		mcp.WithArray("factors",
			mcp.Description("Success factors to weight. Defaults to the built-in table."),
			mcp.Items(map[string]any{
				"type": "object",
				"properties": map[string]any{
					"name":                 map[string]any{"type": "string"},
					"impact_score":         map[string]any{"type": "number", "minimum": schema.MinFactorScore, "maximum": schema.MaxFactorScore},
					"sustainability_score": map[string]any{"type": "number", "minimum": schema.MinFactorScore, "maximum": schema.MaxFactorScore},
				},
				"required": []string{"name", "impact_score", "sustainability_score"},
			}),
		),
		mcp.WithBoolean("sort", mcp.Description("Order factors by weighted score, best first.")),
		mcp.WithNumber("limit", mcp.Description("Limit the number of factors returned.")),
	), h.handleWeightSuccessFactors)

	// --- 3. Tool: get_tier_definitions ---
	s.AddTool(mcp.NewTool("get_tier_definitions",
		mcp.WithDescription("List the success tiers with their score ranges and colors."),
	), h.handleGetTierDefinitions)

	return s
}

// StartMCPServer starts the dealscore MCP server on stdio.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, mgr contract.StoreManager) error {
	s := NewMCPServer(baseCfg, mgr)
	return server.ServeStdio(s)
}
