package schema

import "errors"

// Validation errors shared by every input surface.
var (
	ErrRatingOutOfRange      = errors.New("rating out of range")
	ErrWeightOutOfRange      = errors.New("weight out of range")
	ErrFactorScoreOutOfRange = errors.New("factor score out of range")
	ErrInvalidFactor         = errors.New("invalid success factor")
	ErrUnknownTier           = errors.New("unknown tier")
	ErrLimitOutOfRange       = errors.New("limit out of range")
)

// ErrCheckFailed is returned when a score ranks below the required tier.
var ErrCheckFailed = errors.New("success check failed")

// IsValidationError reports whether err was caused by bad caller input.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrRatingOutOfRange) ||
		errors.Is(err, ErrWeightOutOfRange) ||
		errors.Is(err, ErrFactorScoreOutOfRange) ||
		errors.Is(err, ErrInvalidFactor) ||
		errors.Is(err, ErrUnknownTier) ||
		errors.Is(err, ErrLimitOutOfRange)
}
