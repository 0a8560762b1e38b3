package engine

import (
	"math"

	"github.com/dm/pragati/internal/model"
)

// Accent colors for the overall status card.
const (
	AccentPositive = "#10b981"
	AccentWarning  = "#eab308"
	AccentCritical = "#ef4444"
)

// Classify maps an overall status tag to its display framing. excellent and
// good are positive, concerning is a warning, anything else is critical.
func Classify(s model.Status) model.HealthStatus {
	switch s {
	case model.StatusExcellent:
		return model.HealthStatus{Status: "Excellent", Label: "Optimal", Tone: model.TonePositive, Accent: AccentPositive}
	case model.StatusGood:
		return model.HealthStatus{Status: "Good", Label: "Healthy", Tone: model.TonePositive, Accent: AccentPositive}
	case model.StatusConcerning:
		return model.HealthStatus{Status: "Concerning", Label: "Attention Needed", Tone: model.ToneWarning, Accent: AccentWarning}
	default:
		return model.HealthStatus{Status: "Critical", Label: "Seek Medical Help", Tone: model.ToneCritical, Accent: AccentCritical}
	}
}

// statusWeight is the 0-100 contribution of a single field status to the
// overall score.
func statusWeight(s model.Status) float64 {
	switch s {
	case model.StatusExcellent:
		return 100
	case model.StatusHealthy:
		return 95
	case model.StatusGood, model.StatusNormal:
		return 90
	case model.StatusConcerning:
		return 60
	case model.StatusCritical:
		return 30
	default:
		return 50
	}
}

// Score averages the per-field weights into a 0-100 score for the report's
// circular indicator.
func Score(v model.VitalsSnapshot) int {
	fields := v.Fields()
	var sum float64
	for _, s := range fields {
		sum += statusWeight(s)
	}
	return int(math.Round(sum / float64(len(fields))))
}
