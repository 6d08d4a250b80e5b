package cmd

import (
	"github.com/mariam-attia/dealscore/core"
	"github.com/mariam-attia/dealscore/internal/contract"
	"github.com/spf13/cobra"
)

// tiersCmd prints the tier table.
var tiersCmd = &cobra.Command{
	Use:   "tiers",
	Short: "Show the score range and color of every tier",
	Long: `List the three outlook tiers with their score ranges and display colors.

Examples:
  dealscore tiers
  dealscore tiers --output json`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteTiers(rootCtx, cfg, storeManager); err != nil {
			contract.LogFatal("Cannot show tier definitions", err)
		}
	},
}
