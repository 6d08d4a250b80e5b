package outwriter

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/mariam-attia/dealscore/schema"
)

// Card colors keyed to tier colors. Orange has no ANSI equivalent, so a hex value is used throughout.
var tierCardColors = map[schema.TierColor]lipgloss.Color{
	schema.GreenColor:  lipgloss.Color("#2E7D32"),
	schema.OrangeColor: lipgloss.Color("#EF6C00"),
	schema.RedColor:    lipgloss.Color("#C62828"),
}

const scoreCardWidth = 34

// cardTextColor is the score text drawn over the tier background.
var cardTextColor = lipgloss.Color("#FFFFFF")

// renderScoreCard draws the success score block: heading, score and tier label.
func renderScoreCard(result schema.ScoreResult, label string, useColors bool) string {
	heading := lipgloss.NewStyle().Faint(useColors).Render("Success Score")
	score := lipgloss.NewStyle().Bold(true).Render(result.DisplayScore)
	body := lipgloss.JoinVertical(lipgloss.Center, heading, score, label)

	card := lipgloss.NewStyle().
		Width(scoreCardWidth).
		Align(lipgloss.Center).
		Padding(1, 2).
		Border(lipgloss.RoundedBorder())
	if useColors {
		c := tierCardColors[result.Color]
		card = card.BorderForeground(c).Background(c).Foreground(cardTextColor)
	}
	return card.Render(body)
}
