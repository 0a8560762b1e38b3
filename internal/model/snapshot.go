package model

import (
	"fmt"
	"strconv"
	"strings"
)

// Status is the qualitative tag attached to a single vital sign or to the
// snapshot as a whole.
type Status string

const (
	StatusNormal     Status = "normal"
	StatusExcellent  Status = "excellent"
	StatusHealthy    Status = "healthy"
	StatusGood       Status = "good"
	StatusConcerning Status = "concerning"
	StatusCritical   Status = "critical"
)

// VitalsSnapshot is the fixed bundle of vital-sign values chosen for one
// analysis run. Values are kept as display strings; numeric baselines are
// parsed on demand by the generator.
type VitalsSnapshot struct {
	HeartRate           string `json:"heart_rate"`            // bpm, e.g. "72"
	HeartRateStatus     Status `json:"heart_rate_status"`
	BloodPressure       string `json:"blood_pressure"`        // "systolic/diastolic", e.g. "120/80"
	BloodPressureStatus Status `json:"blood_pressure_status"`
	OxygenLevel         string `json:"oxygen_level"`          // SpO2 %, e.g. "98"
	OxygenStatus        Status `json:"oxygen_status"`
	Temperature         string `json:"temperature"`           // °C, e.g. "37.2"
	TemperatureStatus   Status `json:"temperature_status"`
	BMI                 string `json:"bmi"`                   // kg/m², e.g. "22.5"
	BMIStatus           Status `json:"bmi_status"`
	Overall             Status `json:"overall"`
}

// HeartRateBPM parses the heart-rate baseline.
func (v VitalsSnapshot) HeartRateBPM() (int, error) {
	bpm, err := strconv.Atoi(strings.TrimSpace(v.HeartRate))
	if err != nil {
		return 0, fmt.Errorf("heart rate %q: %w", v.HeartRate, err)
	}
	if bpm <= 0 {
		return 0, fmt.Errorf("heart rate %q: must be positive", v.HeartRate)
	}
	return bpm, nil
}

// Pressure parses the "systolic/diastolic" blood-pressure baseline.
func (v VitalsSnapshot) Pressure() (systolic, diastolic int, err error) {
	sys, dia, ok := strings.Cut(v.BloodPressure, "/")
	if !ok {
		return 0, 0, fmt.Errorf("blood pressure %q: expected systolic/diastolic", v.BloodPressure)
	}
	systolic, err = strconv.Atoi(strings.TrimSpace(sys))
	if err != nil {
		return 0, 0, fmt.Errorf("blood pressure %q: systolic: %w", v.BloodPressure, err)
	}
	diastolic, err = strconv.Atoi(strings.TrimSpace(dia))
	if err != nil {
		return 0, 0, fmt.Errorf("blood pressure %q: diastolic: %w", v.BloodPressure, err)
	}
	if diastolic <= 0 || systolic <= diastolic {
		return 0, 0, fmt.Errorf("blood pressure %q: systolic must exceed a positive diastolic", v.BloodPressure)
	}
	return systolic, diastolic, nil
}

// Fields returns the per-metric statuses in display order: heart rate, blood
// pressure, oxygen, temperature, BMI.
func (v VitalsSnapshot) Fields() []Status {
	return []Status{
		v.HeartRateStatus,
		v.BloodPressureStatus,
		v.OxygenStatus,
		v.TemperatureStatus,
		v.BMIStatus,
	}
}

// Baselines is the canned catalogue a run picks its snapshot from.
var Baselines = []VitalsSnapshot{
	{
		HeartRate:           "72",
		HeartRateStatus:     StatusNormal,
		BloodPressure:       "120/80",
		BloodPressureStatus: StatusNormal,
		OxygenLevel:         "98",
		OxygenStatus:        StatusExcellent,
		Temperature:         "37.2",
		TemperatureStatus:   StatusNormal,
		BMI:                 "22.5",
		BMIStatus:           StatusHealthy,
		Overall:             StatusExcellent,
	},
	{
		HeartRate:           "68",
		HeartRateStatus:     StatusNormal,
		BloodPressure:       "118/76",
		BloodPressureStatus: StatusNormal,
		OxygenLevel:         "99",
		OxygenStatus:        StatusExcellent,
		Temperature:         "37.0",
		TemperatureStatus:   StatusNormal,
		BMI:                 "23.1",
		BMIStatus:           StatusHealthy,
		Overall:             StatusExcellent,
	},
	{
		HeartRate:           "76",
		HeartRateStatus:     StatusNormal,
		BloodPressure:       "122/82",
		BloodPressureStatus: StatusNormal,
		OxygenLevel:         "97",
		OxygenStatus:        StatusExcellent,
		Temperature:         "37.3",
		TemperatureStatus:   StatusNormal,
		BMI:                 "21.8",
		BMIStatus:           StatusHealthy,
		Overall:             StatusGood,
	},
}
