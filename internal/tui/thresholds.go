package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/dm/pragati/internal/model"
)

// statusDotColor returns the dot color shown on a vitals card:
// excellent or healthy green, normal cyan, anything else amber.
func statusDotColor(s model.Status) lipgloss.Color {
	switch s {
	case model.StatusExcellent, model.StatusHealthy:
		return colorGreen
	case model.StatusNormal:
		return colorCyan
	default:
		return colorAmber
	}
}

// toneStyle maps an overall tone to the bold style used for its headline.
func toneStyle(t model.Tone) lipgloss.Style {
	switch t {
	case model.TonePositive:
		return StyleGreen.Bold(true)
	case model.ToneWarning:
		return StyleYellow.Bold(true)
	default:
		return StyleRed.Bold(true)
	}
}

// verdict returns the headline and subtitle of the verdict card.
func verdict(t model.Tone) (string, string) {
	switch t {
	case model.TonePositive:
		return "Good Health", "All metrics nominal"
	case model.ToneWarning:
		return "Needs Attention", "Some readings are off baseline"
	default:
		return "See a Doctor", "Readings outside safe ranges"
	}
}

// scoreColor colors the score gauge: >= 85 green, >= 60 yellow, else red.
func scoreColor(score int) lipgloss.Color {
	switch {
	case score >= 85:
		return colorGreen
	case score >= 60:
		return colorYellow
	default:
		return colorRed
	}
}
