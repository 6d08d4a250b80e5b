// Package outwriter has output and writer logic.
package outwriter

import (
	"fmt"

	"github.com/mariam-attia/dealscore/internal/contract"
	"github.com/mariam-attia/dealscore/schema"
)

// tierLabel returns the tier label, colored only when the config allows it.
func tierLabel(tier schema.Tier, cfg *contract.Config) string {
	if cfg.UseColors {
		return contract.GetColorLabel(tier, cfg.UseEmojis)
	}
	return contract.GetPlainLabel(tier, cfg.UseEmojis)
}

// unsupportedOutput is returned for output modes a result cannot be rendered in.
func unsupportedOutput(mode schema.OutputMode, what string) error {
	return fmt.Errorf("%s output is not supported for %s", mode, what)
}
