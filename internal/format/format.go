package format

import (
	"fmt"
	"strings"
	"time"
)

// FormatHourLabel formats a timestamp as a 12-hour clock label.
// Example: 14:00 → "02:00 PM".
func FormatHourLabel(t time.Time) string {
	return t.Format("03:04 PM")
}

// FormatDayLabel formats a date as a short month/day label.
// Example: 2024-01-10 → "Jan 10".
func FormatDayLabel(t time.Time) string {
	return t.Format("Jan 2")
}

// FormatCompletedAt formats the report timestamp line.
// Example: "Wednesday, January 10, 2024 at 02:00 PM".
// The zero time returns "---".
func FormatCompletedAt(t time.Time) string {
	if t.IsZero() {
		return "---"
	}
	return t.Format("Monday, January 2, 2006") + " at " + FormatHourLabel(t)
}

// FormatBPM formats a heart rate. Non-positive values return "---".
func FormatBPM(bpm int) string {
	if bpm <= 0 {
		return "---"
	}
	return fmt.Sprintf("%d bpm", bpm)
}

// FormatPressure formats a systolic/diastolic pair.
// Example: (120, 80) → "120/80 mmHg".
func FormatPressure(systolic, diastolic int) string {
	if systolic <= 0 || diastolic <= 0 {
		return "---"
	}
	return fmt.Sprintf("%d/%d mmHg", systolic, diastolic)
}

// FormatWholePercent formats a percentage truncated to an integer, as shown
// under the progress bar. Values are clamped to [0, 100].
func FormatWholePercent(p float64) string {
	if p < 0 {
		p = 0
	}
	if p > 100 {
		p = 100
	}
	return fmt.Sprintf("%d%%", int(p))
}

// FormatUnit joins a display value and its unit, omitting the separator for
// "%" the way the metric cards show it. Empty values return "---".
func FormatUnit(value, unit string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return "---"
	}
	switch unit {
	case "":
		return value
	case "%":
		return value + "%"
	default:
		return value + " " + unit
	}
}

// FormatDuration formats a duration as a compact string: "13.5s", "45s",
// "2m", "700ms".
func FormatDuration(d time.Duration) string {
	switch {
	case d >= time.Minute && d%time.Minute == 0:
		return fmt.Sprintf("%dm", int(d.Minutes()))
	case d >= time.Second && d%time.Second == 0:
		return fmt.Sprintf("%ds", int(d.Seconds()))
	case d >= time.Second:
		return fmt.Sprintf("%.1fs", d.Seconds())
	default:
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
}

// Capitalize upper-cases the first letter of a status tag: "excellent" → "Excellent".
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
