package mcp_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/mariam-attia/dealscore/internal/contract"
	"github.com/mariam-attia/dealscore/internal/history"
	mcp_internal "github.com/mariam-attia/dealscore/internal/mcp"
	"github.com/mariam-attia/dealscore/schema"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newBaseConfig() *contract.Config {
	return &contract.Config{
		Ratings: schema.DefaultRatings(),
		Weight:  schema.DefaultWeight,
		Factors: schema.DefaultSuccessFactors(),
	}
}

func callTool(t *testing.T, s *server.MCPServer, name string, args map[string]any) *mcp.CallToolResult {
	t.Helper()
	tool := s.GetTool(name)
	require.NotNil(t, tool, "tool %s should exist", name)

	req := mcp.CallToolRequest{
		Params: mcp.CallToolParams{Name: name, Arguments: args},
	}
	res, err := tool.Handler(context.Background(), req)
	require.NoError(t, err, "The MCP handler should not return a raw error for tool logic failures")
	require.NotNil(t, res)
	return res
}

func resultText(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	require.NotEmpty(t, res.Content)
	text, ok := res.Content[0].(mcp.TextContent)
	require.True(t, ok)
	return text.Text
}

func TestComputeSuccessScore(t *testing.T) {
	store := &history.MockHistoryStore{}
	store.On("RecordEvaluation", mock.Anything, schema.MCPSource, mock.Anything).Return("eval-1", nil)
	mgr := &history.MockStoreManager{}
	mgr.On("GetHistoryStore").Return(store)
	s := mcp_internal.NewMCPServer(newBaseConfig(), mgr)

	t.Run("defaults", func(t *testing.T) {
		res := callTool(t, s, "compute_success_score", nil)
		assert.False(t, res.IsError)

		var got schema.ScoreResult
		require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &got))
		assert.Equal(t, "8.2", got.DisplayScore)
		assert.Equal(t, schema.HighlyLikelyTier, got.Tier)
	})

	t.Run("overrides", func(t *testing.T) {
		res := callTool(t, s, "compute_success_score", map[string]any{
			"cultural_fit": 6.0, "leadership_retention": 6.0, "strategic_alignment": 7.0,
			"financial_structure": 7.0, "operational_synergies": 6.0, "stakeholder_buy_in": 8.0,
		})
		assert.False(t, res.IsError)

		var got schema.ScoreResult
		require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &got))
		assert.Equal(t, "6.7", got.DisplayScore)
		assert.Equal(t, schema.ModerateTier, got.Tier)
	})

	t.Run("out of range", func(t *testing.T) {
		res := callTool(t, s, "compute_success_score", map[string]any{"cultural_fit": 11.0})
		assert.True(t, res.IsError)
		assert.Contains(t, resultText(t, res), "cultural-fit must be between 1 and 10")
	})

	t.Run("fractional rating", func(t *testing.T) {
		res := callTool(t, s, "compute_success_score", map[string]any{"cultural_fit": 7.5})
		assert.True(t, res.IsError)
		assert.Contains(t, resultText(t, res), "must be an integer")
	})

	store.AssertNumberOfCalls(t, "RecordEvaluation", 2)
}

func TestWeightSuccessFactors_WeightDescription(t *testing.T) {
	s := mcp_internal.NewMCPServer(newBaseConfig(), nil)
	tool := s.GetTool("weight_success_factors")
	require.NotNil(t, tool)

	data, err := json.Marshal(tool.Tool)
	require.NoError(t, err)
	assert.Contains(t, string(data), schema.WeightRange())
	assert.Contains(t, string(data), "in steps of 0.1")
}

func TestWeightSuccessFactors(t *testing.T) {
	s := mcp_internal.NewMCPServer(newBaseConfig(), nil)

	t.Run("defaults", func(t *testing.T) {
		res := callTool(t, s, "weight_success_factors", nil)
		assert.False(t, res.IsError)

		var got schema.FactorAnalysis
		require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &got))
		require.Len(t, got.Factors, 6)
		assert.InDelta(t, 88.5, got.Factors[0].WeightedScore, 1e-9)
	})

	t.Run("custom factors sorted", func(t *testing.T) {
		res := callTool(t, s, "weight_success_factors", map[string]any{
			"weight": 0.7,
			"sort":   true,
			"limit":  1.0,
			"factors": []any{
				map[string]any{"name": "Leadership Continuity", "impact_score": 88.0, "sustainability_score": 70.0},
				map[string]any{"name": "Financial Structure", "impact_score": 95.0, "sustainability_score": 92.0},
			},
		})
		assert.False(t, res.IsError, resultText(t, res))

		var got schema.FactorAnalysis
		require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &got))
		require.Len(t, got.Factors, 1)
		assert.Equal(t, "Financial Structure", got.Factors[0].Name)
		assert.InDelta(t, 94.1, got.Factors[0].WeightedScore, 1e-9)
	})

	t.Run("weight out of range", func(t *testing.T) {
		res := callTool(t, s, "weight_success_factors", map[string]any{"weight": 1.2})
		assert.True(t, res.IsError)
		assert.Contains(t, resultText(t, res), "weight must be between 0.0 and 1.0")
	})

	t.Run("malformed factors", func(t *testing.T) {
		res := callTool(t, s, "weight_success_factors", map[string]any{"factors": "not a list"})
		assert.True(t, res.IsError)
		assert.Contains(t, resultText(t, res), "invalid factors")
	})
}

func TestGetTierDefinitions(t *testing.T) {
	s := mcp_internal.NewMCPServer(newBaseConfig(), nil)
	res := callTool(t, s, "get_tier_definitions", nil)
	assert.False(t, res.IsError)

	var got []schema.TierDefinition
	require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &got))
	require.Len(t, got, 3)
	assert.Equal(t, "highly-likely", got[0].Key)
}
