package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/dm/pragati/internal/format"
	"github.com/dm/pragati/internal/model"
)

const scoreBarWidth = 16

// renderReportTitle renders the report heading and the trigger time.
func renderReportTitle(rep *model.Report, width int) string {
	title := StyleTitle.Render("♥ Health Report")
	hint := StyleDim.Render("[c: close  n: new]")
	innerWidth := width - 2 // StyleHeader has Padding(0,1) -> 1 char per side
	gap := innerWidth - lipgloss.Width(title) - lipgloss.Width(hint)
	if gap < 1 {
		gap = 1
	}
	bar := StyleHeader.Width(width).MaxWidth(width).Render(title + strings.Repeat(" ", gap) + hint)
	when := StyleDim.Render("Analysis completed on " + format.FormatCompletedAt(rep.TriggeredAt))
	return bar + "\n" + when
}

// renderStatusRow renders the overall status, verdict and score cards.
func renderStatusRow(rep *model.Report, width int) string {
	cardWidth := width / 3
	if cardWidth < 24 {
		cardWidth = 24
	}
	accent := lipgloss.Color(rep.Health.Accent)

	status := StyleCard.
		BorderForeground(accent).
		Width(cardWidth - 2).
		Render(lipgloss.JoinVertical(lipgloss.Left,
			lipgloss.NewStyle().Bold(true).Foreground(accent).Render(rep.Health.Label),
			StyleDim.Render("Overall Health Status"),
			StyleDim.Render(rep.Health.Status),
		))

	headline, sub := verdict(rep.Health.Tone)
	verdictCard := StyleCard.
		Width(cardWidth - 2).
		Render(lipgloss.JoinVertical(lipgloss.Left,
			toneStyle(rep.Health.Tone).Render(headline),
			StyleDim.Render(sub),
		))

	gauge := lipgloss.NewStyle().Foreground(scoreColor(rep.Score)).Render(renderMiniBar(float64(rep.Score), scoreBarWidth))
	score := StyleCard.
		Width(cardWidth - 2).
		Render(lipgloss.JoinVertical(lipgloss.Left,
			StyleDim.Render("Health Score"),
			lipgloss.NewStyle().Bold(true).Render(fmt.Sprintf("%d/100", rep.Score)),
			gauge,
		))

	if width < 72 {
		return lipgloss.JoinVertical(lipgloss.Left, status, verdictCard, score)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, status, verdictCard, score)
}

// renderButtons renders the two dismissal actions.
func renderButtons() string {
	return lipgloss.JoinHorizontal(lipgloss.Top,
		StyleButton.Render("[c] Close"),
		StyleButton.Background(colorGreen).Foreground(colorAlt).Render("[n] New Analysis"),
	)
}

// buildReportLines returns every rendered line of the report body. Shared by
// renderReport and reportMaxOffset so both agree on the content height.
func buildReportLines(rep *model.Report, width int) []string {
	sections := []string{
		renderStatusRow(rep, width),
		renderVitalsRow(rep.Vitals, width),
		renderChartsRow(rep, width),
		strings.Join(buildRecommendationLines(rep.Recommendations, width), "\n"),
		renderButtons(),
	}
	var lines []string
	for i, s := range sections {
		if i > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, strings.Split(s, "\n")...)
	}
	return lines
}

// reportLayout computes the visible content height and the largest valid
// scroll offset for the report at the app's current size.
func reportLayout(app *App, rep *model.Report) (lines []string, contentH, maxOffset int, overflows bool) {
	width := app.width
	if width <= 0 {
		width = 80
	}
	height := app.height
	if height <= 0 {
		height = 24
	}
	headerH := renderedHeight(renderHeader(app))
	titleH := renderedHeight(renderReportTitle(rep, width))
	footerH := renderedHeight(renderFooter(app))
	availH := height - headerH - titleH - footerH
	if availH < 1 {
		availH = 1
	}

	lines = buildReportLines(rep, width)
	overflows = len(lines) > availH
	contentH = availH
	if overflows && contentH > 1 {
		contentH--
	}
	maxOffset = len(lines) - contentH
	if maxOffset < 0 {
		maxOffset = 0
	}
	return lines, contentH, maxOffset, overflows
}

// reportMaxOffset returns the largest valid scrollOffset. Update clamps to it
// after a scroll-down so the stored offset never runs past the content.
func reportMaxOffset(app *App) int {
	rep := app.driver.Report()
	if rep == nil {
		return 0
	}
	_, _, maxOffset, _ := reportLayout(app, rep)
	return maxOffset
}

// renderReport renders the report title followed by the scrollable body.
// The caller renders the header above and the footer below.
func renderReport(app *App) string {
	rep := app.driver.Report()
	if rep == nil {
		return ""
	}
	width := app.width
	if width <= 0 {
		width = 80
	}

	lines, contentH, maxOffset, overflows := reportLayout(app, rep)

	// Read-only clamp; model state is not mutated in View.
	offset := min(app.scrollOffset, maxOffset)
	end := min(offset+contentH, len(lines))
	var visible []string
	if offset < len(lines) {
		visible = append(visible, lines[offset:end]...)
	}
	for len(visible) < contentH {
		visible = append(visible, "")
	}

	if overflows {
		var hint string
		switch {
		case offset == 0:
			hint = StyleDim.Render("  ↓ scroll for more")
		case offset >= maxOffset:
			hint = StyleDim.Render("  ↑ scroll up")
		default:
			hint = StyleDim.Render("  ↑↓ scroll")
		}
		visible = append(visible, hint)
	}

	return renderReportTitle(rep, width) + "\n" + strings.Join(visible, "\n")
}
