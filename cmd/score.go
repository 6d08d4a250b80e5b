package cmd

import (
	"github.com/mariam-attia/dealscore/core"
	"github.com/mariam-attia/dealscore/internal/contract"
	"github.com/spf13/cobra"
)

// scoreCmd computes the success score from six ratings.
var scoreCmd = &cobra.Command{
	Use:   "score [cultural-fit leadership-retention strategic-alignment financial-structure operational-synergies stakeholder-buy-in]",
	Short: "Compute the success score and tier from six 1-10 ratings",
	Long: `Average six integer ratings into a success score and classify it into a tier.

Ratings come from positional arguments (all six, in order), then flags,
then DEALSCORE_* environment variables, then the config file, then defaults.

Tiers:
- Highly Likely: score >= 8.0
- Moderate: 6.0 <= score < 8.0
- High Risk: score < 6.0

The score is shown with one decimal, rounded half-to-even. The tier is
decided from the unrounded mean, so 7.96 shows as 8.0 but stays Moderate.

Examples:
  # Score the default ratings
  dealscore score

  # Score six ratings given positionally
  dealscore score 8 9 9 8 7 8

  # Override one rating with a flag
  dealscore score --financial-structure 6

  # Export as JSON
  dealscore score --output json --output-file score.json`,
	Args:    cobra.MaximumNArgs(6),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteScore(rootCtx, cfg, storeManager); err != nil {
			contract.LogFatal("Cannot compute success score", err)
		}
	},
}
