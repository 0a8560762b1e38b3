package model

import (
	"time"

	"github.com/google/uuid"
)

// Report is everything the report screen shows for one run. It is computed
// once when the run starts and never re-randomized afterwards.
type Report struct {
	RunID           uuid.UUID            `json:"run_id"`
	TriggeredAt     time.Time            `json:"triggered_at"`
	BaselineIndex   int                  `json:"baseline_index"`
	Vitals          VitalsSnapshot       `json:"vitals"`
	Health          HealthStatus         `json:"health"`
	Score           int                  `json:"score"`
	HeartRate       []HeartRatePoint     `json:"heart_rate"`
	BloodPressure   []BloodPressurePoint `json:"blood_pressure"`
	Recommendations []Recommendation     `json:"recommendations"`
}

// AvgHeartRate returns the mean of the heart-rate series, or 0 when empty.
func (r *Report) AvgHeartRate() float64 {
	if r == nil || len(r.HeartRate) == 0 {
		return 0
	}
	var sum int
	for _, p := range r.HeartRate {
		sum += p.Rate
	}
	return float64(sum) / float64(len(r.HeartRate))
}
