package tui

import (
	"math"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// sparkBlocks is the 8-level block character set for sparklines and bars.
var sparkBlocks = []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// RenderSparkline converts values into a block sparkline of exactly `width`
// characters, scaled between the series minimum and maximum.
//
// Rules:
//   - Empty values → return width spaces
//   - Flat series → all '▄' (mid level)
//   - Values longer than width → use last width values
//   - Fewer values than width → left-pad with spaces
func RenderSparkline(values []float64, width int, color lipgloss.Color) string {
	if width <= 0 {
		return ""
	}

	if len(values) == 0 {
		return strings.Repeat(" ", width)
	}

	if len(values) > width {
		values = values[len(values)-width:]
	}

	minVal, maxVal := slices.Min(values), slices.Max(values)
	span := maxVal - minVal

	style := lipgloss.NewStyle().Foreground(color)

	var sb strings.Builder
	sb.WriteString(strings.Repeat(" ", width-len(values)))

	for _, v := range values {
		idx := 3
		if span > 0 {
			idx = int(math.Round((v - minVal) / span * 7))
		}
		sb.WriteRune(sparkBlocks[clampLevel(idx, 7)])
	}

	return style.Render(sb.String())
}

// RenderBars draws one vertical bar per value, `height` rows tall and scaled
// from zero to max. Each bar is `barWidth` cells wide with a one-cell gap.
func RenderBars(values []float64, height, barWidth int, color lipgloss.Color) string {
	if height <= 0 || barWidth <= 0 || len(values) == 0 {
		return ""
	}
	maxVal := slices.Max(values)

	// Eighths of a cell per bar.
	levels := make([]int, len(values))
	for i, v := range values {
		if maxVal > 0 && v > 0 {
			levels[i] = int(math.Round(v / maxVal * float64(height*8)))
		}
	}

	style := lipgloss.NewStyle().Foreground(color)
	rows := make([]string, height)
	for r := 0; r < height; r++ {
		floor := (height - 1 - r) * 8
		var sb strings.Builder
		for i, lvl := range levels {
			if i > 0 {
				sb.WriteByte(' ')
			}
			cell := " "
			switch fill := lvl - floor; {
			case fill >= 8:
				cell = "█"
			case fill > 0:
				cell = string(sparkBlocks[fill-1])
			}
			sb.WriteString(strings.Repeat(cell, barWidth))
		}
		rows[r] = style.Render(sb.String())
	}
	return strings.Join(rows, "\n")
}

func clampLevel(idx, top int) int {
	if idx < 0 {
		return 0
	}
	if idx > top {
		return top
	}
	return idx
}
