package engine

import (
	"fmt"
	"sort"

	"github.com/dm/pragati/internal/model"
)

// metricField ties a snapshot field to how it is named and grouped in
// recommendations.
type metricField struct {
	label    string
	unit     string
	category model.RecommendationCategory
	value    func(model.VitalsSnapshot) string
	status   func(model.VitalsSnapshot) model.Status
}

var metricFields = []metricField{
	{
		label:    "Heart rate",
		unit:     "bpm",
		category: model.CategoryCardiovascular,
		value:    func(v model.VitalsSnapshot) string { return v.HeartRate },
		status:   func(v model.VitalsSnapshot) model.Status { return v.HeartRateStatus },
	},
	{
		label:    "Blood pressure",
		unit:     "mmHg",
		category: model.CategoryCardiovascular,
		value:    func(v model.VitalsSnapshot) string { return v.BloodPressure },
		status:   func(v model.VitalsSnapshot) model.Status { return v.BloodPressureStatus },
	},
	{
		label:    "Oxygen level",
		unit:     "%",
		category: model.CategoryRespiratory,
		value:    func(v model.VitalsSnapshot) string { return v.OxygenLevel },
		status:   func(v model.VitalsSnapshot) model.Status { return v.OxygenStatus },
	},
	{
		label:    "Temperature",
		unit:     "°C",
		category: model.CategoryBody,
		value:    func(v model.VitalsSnapshot) string { return v.Temperature },
		status:   func(v model.VitalsSnapshot) model.Status { return v.TemperatureStatus },
	},
	{
		label:    "BMI",
		unit:     "kg/m²",
		category: model.CategoryBody,
		value:    func(v model.VitalsSnapshot) string { return v.BMI },
		status:   func(v model.VitalsSnapshot) model.Status { return v.BMIStatus },
	},
}

var positiveRecommendations = []model.Recommendation{
	{
		Severity: model.SeverityNormal,
		Category: model.CategoryGeneral,
		Title:    "Keep up your current routine",
		Detail:   "All vitals are within healthy ranges. Aim for at least 150 minutes of moderate activity a week.",
	},
	{
		Severity: model.SeverityNormal,
		Category: model.CategoryBody,
		Title:    "Stay hydrated",
		Detail:   "Drink 2 to 3 litres of water a day, more in hot weather or after exercise.",
	},
	{
		Severity: model.SeverityNormal,
		Category: model.CategoryCardiovascular,
		Title:    "Prioritise sleep",
		Detail:   "7 to 9 hours of sleep a night keeps resting heart rate and blood pressure steady.",
	},
	{
		Severity: model.SeverityNormal,
		Category: model.CategoryFollowUp,
		Title:    "Schedule a routine check-up",
		Detail:   "Book an annual physical even when you feel well.",
	},
}

var warningRecommendations = []model.Recommendation{
	{
		Severity: model.SeverityWarning,
		Category: model.CategoryFollowUp,
		Title:    "Book a follow-up within two weeks",
		Detail:   "Some readings need attention. Share this report with your doctor.",
	},
	{
		Severity: model.SeverityWarning,
		Category: model.CategoryGeneral,
		Title:    "Track your readings daily",
		Detail:   "Measure at the same time each morning so trends are comparable.",
	},
	{
		Severity: model.SeverityWarning,
		Category: model.CategoryCardiovascular,
		Title:    "Reduce salt and caffeine",
		Detail:   "Both raise blood pressure and heart rate in the short term.",
	},
}

var criticalRecommendations = []model.Recommendation{
	{
		Severity: model.SeverityCritical,
		Category: model.CategoryFollowUp,
		Title:    "Seek medical help",
		Detail:   "One or more readings are outside safe limits. Contact a doctor or visit urgent care today.",
	},
	{
		Severity: model.SeverityCritical,
		Category: model.CategoryGeneral,
		Title:    "Avoid strenuous activity",
		Detail:   "Rest until a clinician has reviewed your readings.",
	},
}

// Recommendations returns the recommendation list for a report: one item per
// concerning or critical metric, followed by the list for the overall tone.
// The result is ordered by descending severity and is never nil.
func Recommendations(health model.HealthStatus, v model.VitalsSnapshot) []model.Recommendation {
	result := []model.Recommendation{}

	for _, f := range metricFields {
		var sev model.RecommendationSeverity
		switch f.status(v) {
		case model.StatusConcerning:
			sev = model.SeverityWarning
		case model.StatusCritical:
			sev = model.SeverityCritical
		default:
			continue
		}
		result = append(result, model.Recommendation{
			Severity: sev,
			Category: f.category,
			Title:    fmt.Sprintf("%s is %s", f.label, f.status(v)),
			Detail:   fmt.Sprintf("Measured %s %s. Re-check after resting for five minutes and consult a clinician if it persists.", f.value(v), f.unit),
		})
	}

	switch health.Tone {
	case model.TonePositive:
		result = append(result, positiveRecommendations...)
	case model.ToneWarning:
		result = append(result, warningRecommendations...)
	default:
		result = append(result, criticalRecommendations...)
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Severity > result[j].Severity
	})
	return result
}
