package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/dm/pragati/internal/engine"
	"github.com/dm/pragati/internal/format"
	"github.com/dm/pragati/internal/model"
)

// renderChartCard wraps a chart body in a titled rounded card.
func renderChartCard(title, body string, cardWidth int) string {
	const minCardWidth = 24
	if cardWidth < minCardWidth {
		cardWidth = minCardWidth
	}
	return StyleCard.Width(cardWidth - 2).Render(lipgloss.JoinVertical(lipgloss.Left,
		StyleTitle.Render(title),
		body,
	))
}

// renderHeartRateChart renders the hourly heart-rate trend.
//
// Layout:
//
//	Heart Rate Trend (Last 12 Hours)
//	▃▂▁▁▂▃▄▅▆▇█▇        ← min-max scaled sparkline, one cell per hour
//	03:00 AM     02:00 PM
//	min 66 bpm  avg 71.5  max 77 bpm
func renderHeartRateChart(points []model.HeartRatePoint, cardWidth int) string {
	innerWidth := cardWidth - 4
	if innerWidth < 1 {
		innerWidth = 1
	}

	values := make([]float64, len(points))
	lo, hi, sum := 0, 0, 0
	for i, p := range points {
		values[i] = float64(p.Rate)
		if i == 0 || p.Rate < lo {
			lo = p.Rate
		}
		if i == 0 || p.Rate > hi {
			hi = p.Rate
		}
		sum += p.Rate
	}

	// Stretch each hour over several cells when the card is wide enough.
	cell := 1
	if n := len(values); n > 0 && innerWidth/n > 1 {
		cell = innerWidth / n
	}
	stretched := make([]float64, 0, len(values)*cell)
	for _, v := range values {
		for range cell {
			stretched = append(stretched, v)
		}
	}
	spark := RenderSparkline(stretched, len(stretched), colorCyan)

	var axis, stats string
	if len(points) > 0 {
		first, last := points[0].Label, points[len(points)-1].Label
		gap := len(stretched) - lipgloss.Width(first) - lipgloss.Width(last)
		if gap < 1 {
			gap = 1
		}
		axis = StyleDim.Render(first + strings.Repeat(" ", gap) + last)
		avg := float64(sum) / float64(len(points))
		stats = fmt.Sprintf("min %s  avg %.1f  max %s", format.FormatBPM(lo), avg, format.FormatBPM(hi))
	}

	return renderChartCard(fmt.Sprintf("Heart Rate Trend (Last %d Hours)", engine.HeartRatePoints), lipgloss.JoinVertical(lipgloss.Left,
		spark,
		axis,
		StyleDim.Render(stats),
	), cardWidth)
}

// renderBloodPressureChart renders the daily systolic bars and a readings
// table for the last seven days.
func renderBloodPressureChart(points []model.BloodPressurePoint, cardWidth int) string {
	systolic := make([]float64, len(points))
	for i, p := range points {
		systolic[i] = float64(p.Systolic)
	}
	bars := RenderBars(systolic, 4, 3, colorPurple)

	rows := make([][]string, len(points))
	for i, p := range points {
		rows[i] = []string{p.Label, format.FormatPressure(p.Systolic, p.Diastolic)}
	}
	t := table.New().
		Border(lipgloss.HiddenBorder()).
		Headers("Day", "mmHg").
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return StyleTableHeader.Padding(0, 1)
			case row%2 == 0:
				return StyleTableRow.Padding(0, 1)
			default:
				return StyleTableRowAlt.Padding(0, 1)
			}
		})

	body := lipgloss.JoinHorizontal(lipgloss.Top, bars, "  ", t.Render())
	return renderChartCard(fmt.Sprintf("Blood Pressure Trend (Last %d Days)", engine.BloodPressurePoints), body, cardWidth)
}

// renderChartsRow renders the heart-rate and blood-pressure cards.
// Wide terminals (>= 100 cols): side by side. Narrow: stacked.
func renderChartsRow(rep *model.Report, width int) string {
	if width >= 100 {
		half := width / 2
		return lipgloss.JoinHorizontal(lipgloss.Top,
			renderHeartRateChart(rep.HeartRate, half),
			renderBloodPressureChart(rep.BloodPressure, width-half),
		)
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		renderHeartRateChart(rep.HeartRate, width),
		renderBloodPressureChart(rep.BloodPressure, width),
	)
}
