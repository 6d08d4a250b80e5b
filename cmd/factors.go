package cmd

import (
	"github.com/mariam-attia/dealscore/core"
	"github.com/mariam-attia/dealscore/internal/contract"
	"github.com/spf13/cobra"
)

// factorsCmd shows the weighted success-factor table.
var factorsCmd = &cobra.Command{
	Use:   "factors",
	Short: "Weight the success-factor table by impact and sustainability",
	Long: `Blend each success factor's impact and sustainability percentages into
one weighted score: impact*weight + sustainability*(1-weight).

The built-in table has six factors. Provide your own with --factors-file:

  factors:
    - name: Strategic Alignment
      impact: 92
      sustainability: 85

Rows keep their input order unless --sort is given.

Examples:
  # Equal weighting (default)
  dealscore factors

  # Lean towards impact and rank the rows
  dealscore factors --weight 0.7 --sort

  # Top three factors as CSV
  dealscore factors --sort --limit 3 --output csv`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteFactors(rootCtx, cfg, storeManager); err != nil {
			contract.LogFatal("Cannot weight success factors", err)
		}
	},
}
