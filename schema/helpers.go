package schema

import (
	"fmt"
	"strings"
)

// Color returns the display color keyed to the tier.
func (t Tier) Color() TierColor {
	switch t {
	case HighlyLikelyTier:
		return GreenColor
	case ModerateTier:
		return OrangeColor
	default:
		return RedColor
	}
}

// Key returns the short key for the tier (e.g. "moderate").
func (t Tier) Key() string {
	for k, v := range TierKeys {
		if v == t {
			return k
		}
	}
	return ""
}

// Rank orders tiers so that a higher rank is a better outlook.
func (t Tier) Rank() int {
	switch t {
	case HighlyLikelyTier:
		return 3
	case ModerateTier:
		return 2
	case HighRiskTier:
		return 1
	default:
		return 0
	}
}

// Emoji returns the marker shown next to the tier label.
func (t Tier) Emoji() string {
	switch t {
	case HighlyLikelyTier:
		return "✅"
	case ModerateTier:
		return "⚠️"
	default:
		return "❌"
	}
}

// ParseTier accepts a tier key ("moderate") or a full tier label, case-insensitively.
func ParseTier(s string) (Tier, error) {
	norm := strings.ToLower(strings.TrimSpace(s))
	if t, ok := TierKeys[norm]; ok {
		return t, nil
	}
	for _, t := range AllTiers {
		if strings.ToLower(string(t)) == norm {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w: %q (must be highly-likely, moderate, high-risk)", ErrUnknownTier, s)
}

// ParseRatingFactor accepts a factor key with dashes or underscores.
func ParseRatingFactor(s string) (RatingFactor, bool) {
	norm := RatingFactor(strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "_", "-"))
	if _, ok := RatingFactorNames[norm]; ok {
		return norm, true
	}
	return "", false
}

// WeightRange describes the accepted weight range and the slider step for help text.
func WeightRange() string {
	return fmt.Sprintf("%.1f-%.1f in steps of %.1f", MinWeight, MaxWeight, WeightStep)
}
