package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/dm/pragati/internal/engine"
	"github.com/dm/pragati/internal/format"
)

const (
	brandName    = "Pragati"
	brandTagline = "Next gen health partner"
)

// renderHeader renders the top header bar.
//
// Layout:
//
//	left:   "Pragati  Next gen health partner"
//	center: colored "● PHASE" indicator (with percent while analyzing)
//	right:  "Runs: N  Last: 93" once a run has finished
func renderHeader(app *App) string {
	width := app.width
	if width <= 0 {
		width = 80
	}

	left := StyleTitle.Render(brandName) + "  " + StyleDim.Render(brandTagline)

	run := app.driver.State()
	var center string
	switch run.Phase {
	case engine.PhaseAnalyzing:
		center = StyleStatusCyan.Render("● ANALYZING " + format.FormatWholePercent(run.Progress))
	case engine.PhaseRevealing:
		if run.Revealed {
			center = StyleStatusGreen.Render("● REPORT")
		} else {
			center = StyleStatusPurple.Render("● COMPLETE")
		}
	default:
		center = StyleStatusUnknown.Render("● IDLE")
	}

	right := StyleDim.Render(fmt.Sprintf("Runs: %d", app.history.Len()))
	if last, ok := app.history.Last(); ok {
		right += StyleDim.Render(fmt.Sprintf("  Last: %d", last.Score))
	}

	// StyleHeader has Padding(0, 1) so inner content width = total width - 2.
	innerWidth := width - 2
	spacing := innerWidth - lipgloss.Width(left) - lipgloss.Width(center) - lipgloss.Width(right)
	if spacing < 0 {
		spacing = 0
	}
	leftSpacing := spacing / 2
	rightSpacing := spacing - leftSpacing

	row := left +
		strings.Repeat(" ", leftSpacing) +
		center +
		strings.Repeat(" ", rightSpacing) +
		right

	return StyleHeader.Width(width).MaxWidth(width).Render(row)
}

// renderedHeight is lipgloss.Height except that "" counts as zero lines.
func renderedHeight(s string) int {
	if s == "" {
		return 0
	}
	return lipgloss.Height(s)
}
