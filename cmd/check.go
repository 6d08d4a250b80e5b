package cmd

import (
	"github.com/mariam-attia/dealscore/core"
	"github.com/mariam-attia/dealscore/internal/contract"
	"github.com/spf13/cobra"
)

// checkCmd focused on pipeline gating.
var checkCmd = &cobra.Command{
	Use:   "check [cultural-fit leadership-retention strategic-alignment financial-structure operational-synergies stakeholder-buy-in]",
	Short: "Fail with a non-zero exit code when the tier is below a threshold",
	Long: `Compute the success score and compare its tier against --fail-below.

The command exits with code 1 when the tier ranks below the threshold.
Tier order from best to worst: highly-likely, moderate, high-risk.

Default threshold: moderate

Examples:
  # Pass unless the outlook is High Risk
  dealscore check 8 9 9 8 7 8

  # Require a Highly Likely outlook
  dealscore check --fail-below highly-likely

  # Machine-readable verdict
  dealscore check --output json`,
	Args:    cobra.MaximumNArgs(6),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteCheck(rootCtx, cfg, storeManager); err != nil {
			contract.LogFatal("Success check failed", err)
		}
	},
}
