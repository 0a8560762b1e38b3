package model

import "time"

// HeartRatePoint is one hourly sample of the heart-rate trend.
type HeartRatePoint struct {
	Label string    `json:"label"` // "02:00 PM"
	Hour  int       `json:"hour"`  // 0-23, local
	Rate  int       `json:"rate"`  // bpm
	At    time.Time `json:"at"`    // top of the hour
}

// BloodPressurePoint is one daily sample of the blood-pressure trend.
type BloodPressurePoint struct {
	Label     string    `json:"label"` // "Jan 10"
	Date      time.Time `json:"date"`  // 09:00 local on the sample day
	Systolic  int       `json:"systolic"`
	Diastolic int       `json:"diastolic"`
}

// Tone is the framing used when presenting an overall status.
type Tone int

const (
	TonePositive Tone = iota
	ToneWarning
	ToneCritical
)

// String returns the lowercase tone name.
func (t Tone) String() string {
	switch t {
	case TonePositive:
		return "positive"
	case ToneWarning:
		return "warning"
	default:
		return "critical"
	}
}

// MarshalText encodes the tone by name.
func (t Tone) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// HealthStatus is the display classification of a snapshot's overall status.
type HealthStatus struct {
	Status string `json:"status"` // "Excellent"
	Label  string `json:"label"`  // "Optimal"
	Tone   Tone   `json:"tone"`
	Accent string `json:"accent"` // hex color token, e.g. "#10b981"
}
