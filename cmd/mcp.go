package cmd

import (
	"github.com/mariam-attia/dealscore/internal/mcp"
	"github.com/spf13/cobra"
)

// mcpCmd represents the mcp command.
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the dealscore MCP server",
	Long: `Launch an MCP server on stdio so AI agents can score deals via standard tools.

Tools:
- compute_success_score
- weight_success_factors
- get_tier_definitions`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	RunE: func(_ *cobra.Command, _ []string) error {
		return mcp.StartMCPServer(rootCtx, cfg, storeManager)
	},
}
