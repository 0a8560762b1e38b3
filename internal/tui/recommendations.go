package tui

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/dm/pragati/internal/model"
)

// categoryOrder is the display order of recommendation groups.
var categoryOrder = []model.RecommendationCategory{
	model.CategoryCardiovascular,
	model.CategoryRespiratory,
	model.CategoryBody,
	model.CategoryFollowUp,
	model.CategoryGeneral,
}

// categoryLabel returns the display name for a recommendation category.
func categoryLabel(cat model.RecommendationCategory) string {
	switch cat {
	case model.CategoryGeneral:
		return "General Wellness"
	case model.CategoryCardiovascular:
		return "Heart & Circulation"
	case model.CategoryRespiratory:
		return "Breathing"
	case model.CategoryBody:
		return "Body"
	case model.CategoryFollowUp:
		return "Follow-up"
	default:
		return "Other"
	}
}

// severityBadge returns a colored, fixed-width badge for the given severity.
func severityBadge(sev model.RecommendationSeverity) string {
	switch sev {
	case model.SeverityCritical:
		return StyleRed.Bold(true).Render("[URGENT]")
	case model.SeverityWarning:
		return StyleYellow.Bold(true).Render("[CHECK] ")
	default:
		return StyleGreen.Bold(true).Render("[TIP]   ")
	}
}

// wrapText wraps text at maxWidth rune-columns, breaking at word boundaries.
// Returns the original string unchanged when it fits within maxWidth.
func wrapText(text string, maxWidth int) string {
	if maxWidth <= 0 || utf8.RuneCountInString(text) <= maxWidth {
		return text
	}
	words := strings.Fields(text)
	if len(words) == 0 {
		return text
	}
	var lines []string
	var current strings.Builder
	var currentLen int
	for _, word := range words {
		wordLen := utf8.RuneCountInString(word)
		switch {
		case currentLen == 0:
			current.WriteString(word)
			currentLen = wordLen
		case currentLen+1+wordLen <= maxWidth:
			current.WriteByte(' ')
			current.WriteString(word)
			currentLen += 1 + wordLen
		default:
			lines = append(lines, current.String())
			current.Reset()
			current.WriteString(word)
			currentLen = wordLen
		}
	}
	if currentLen > 0 {
		lines = append(lines, current.String())
	}
	return strings.Join(lines, "\n")
}

// buildRecommendationLines renders recommendations grouped by category.
// Groups keep the severity order the engine produced.
func buildRecommendationLines(recs []model.Recommendation, width int) []string {
	lines := []string{StyleTitle.Render("Recommendations")}
	if len(recs) == 0 {
		return append(lines, "  "+StyleGreen.Bold(true).Render("Nothing to add. Keep it up!"))
	}
	for _, cat := range categoryOrder {
		var catRecs []model.Recommendation
		for _, r := range recs {
			if r.Category == cat {
				catRecs = append(catRecs, r)
			}
		}
		if len(catRecs) == 0 {
			continue
		}
		lines = append(lines, "", "  "+StyleDim.Bold(true).Underline(true).Render(categoryLabel(cat)))
		for _, r := range catRecs {
			lines = append(lines, fmt.Sprintf("  %s %s", severityBadge(r.Severity), r.Title))
			if r.Detail != "" {
				for _, dline := range strings.Split(wrapText(r.Detail, width-6), "\n") {
					lines = append(lines, "    "+dline)
				}
			}
		}
	}
	return lines
}
