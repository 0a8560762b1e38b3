package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/dm/pragati/internal/format"
	"github.com/dm/pragati/internal/model"
)

// vitalCard is one entry of the vitals row.
type vitalCard struct {
	label  string
	value  string
	unit   string
	status model.Status
}

// vitalCards lists the five report metrics in display order.
func vitalCards(v model.VitalsSnapshot) []vitalCard {
	return []vitalCard{
		{"Heart Rate", v.HeartRate, "bpm", v.HeartRateStatus},
		{"Blood Pressure", v.BloodPressure, "mmHg", v.BloodPressureStatus},
		{"Oxygen Level", v.OxygenLevel, "%", v.OxygenStatus},
		{"Temperature", v.Temperature, "°C", v.TemperatureStatus},
		{"BMI", v.BMI, "kg/m²", v.BMIStatus},
	}
}

// renderVitalCard renders a card with the label, a status dot, the value
// and the status word.
func renderVitalCard(c vitalCard, cardWidth int) string {
	const minCardWidth = 12
	if cardWidth < minCardWidth {
		cardWidth = minCardWidth
	}
	dot := lipgloss.NewStyle().Foreground(statusDotColor(c.status)).Render("●")
	value := lipgloss.NewStyle().Bold(true).Foreground(colorWhite).Render(format.FormatUnit(c.value, c.unit))
	status := StyleDim.Render(format.Capitalize(string(c.status)))

	// Border adds 2 to the rendered width.
	return StyleCard.Width(cardWidth - 2).Render(lipgloss.JoinVertical(lipgloss.Left,
		StyleDim.Render(c.label),
		dot+" "+value,
		status,
	))
}

// renderVitalsRow lays out the five vitals cards.
// Wide terminals (>= 100 cols): a single row of five.
// Narrow terminals: rows of 2 (3 rows: 2+2+1).
func renderVitalsRow(v model.VitalsSnapshot, width int) string {
	cards := vitalCards(v)
	if width >= 100 {
		cardWidth := width / len(cards)
		rendered := make([]string, len(cards))
		for i, c := range cards {
			rendered[i] = renderVitalCard(c, cardWidth)
		}
		return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
	}

	cardWidth := width / 2
	var rows []string
	for i := 0; i < len(cards); i += 2 {
		left := renderVitalCard(cards[i], cardWidth)
		if i+1 < len(cards) {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, left, renderVitalCard(cards[i+1], cardWidth)))
		} else {
			rows = append(rows, left)
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// renderMiniBar renders a mini gauge using Unicode block characters.
// Fills proportionally using "█" (U+2588) for filled and "░" (U+2591) for empty cells.
func renderMiniBar(percent float64, width int) string {
	if width <= 0 {
		return ""
	}
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	filled := int(percent / 100.0 * float64(width))
	if filled > width {
		filled = width
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}
