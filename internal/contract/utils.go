package contract

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/mariam-attia/dealscore/schema"
)

// Color variables for console output.
var (
	HighlyLikelyColor = color.New(color.FgGreen, color.Bold) // HighlyLikelyColor represents a healthy outlook.
	ModerateColor     = color.New(color.FgYellow)            // ModerateColor stands in for orange, which ANSI lacks.
	HighRiskColor     = color.New(color.FgRed, color.Bold)   // HighRiskColor represents standard danger.
)

// GetPlainLabel returns the tier label for a score. This is the core logic used for
// CSV, JSON, and table printing.
func GetPlainLabel(tier schema.Tier, useEmojis bool) string {
	if useEmojis {
		return tier.Emoji() + " " + string(tier)
	}
	return string(tier)
}

// GetColorLabel returns a colored tier label for console output (table).
func GetColorLabel(tier schema.Tier, useEmojis bool) string {
	text := GetPlainLabel(tier, useEmojis)

	switch tier {
	case schema.HighlyLikelyTier:
		return HighlyLikelyColor.Sprint(text)
	case schema.ModerateTier:
		return ModerateColor.Sprint(text)
	default:
		return HighRiskColor.Sprint(text)
	}
}

// SelectOutputFile returns the appropriate file handle for output, based on the provided
// file path. It falls back to os.Stdout when no path is given.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Warn %s: %v\n", msg, err)
}

// GetHistoryDBFilePath returns the path to the SQLite DB file for history storage.
func GetHistoryDBFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".dealscore_history.db"
	}
	return filepath.Join(homeDir, ".dealscore_history.db")
}

// TruncateText truncates a string to a maximum width with an ellipsis suffix.
// Requires maxWidth > 3 so that at least one character survives next to the "...".
func TruncateText(s string, maxWidth int) string {
	runes := []rune(s)
	if len(runes) > maxWidth && maxWidth > 3 {
		return string(runes[:maxWidth-3]) + "..."
	}
	return s
}

// ParseBoolString parses a string value into a boolean.
// Accepts "yes", "no", "true", "false", "1", "0" (case-insensitive).
// Returns an error for invalid values.
func ParseBoolString(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "yes", "true", "1":
		return true, nil
	case "no", "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean string: %s (expected yes/no/true/false/1/0)", s)
	}
}
