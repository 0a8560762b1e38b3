package engine

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"

	"github.com/dm/pragati/internal/format"
	"github.com/dm/pragati/internal/model"
)

const (
	HeartRatePoints     = 12 // hourly, trigger hour inclusive
	BloodPressurePoints = 7  // daily, trigger date inclusive

	bpMeasurementHour   = 9   // every blood-pressure sample is pinned to 09:00 local
	circadianAmplitude  = 4.0 // bpm swing either side of the baseline
	circadianTroughHour = 4   // resting heart rate bottoms out around 04:00
	heartRateNoise      = 5.0 // uniform noise bound, bpm
	systolicNoise       = 5.0 // uniform noise bound, mmHg
	diastolicNoiseRatio = 0.6 // diastolic noise bound relative to systolic
)

// Rand is the source of randomness used by the Generator. *rand.Rand from
// math/rand/v2 satisfies it; tests supply scripted sources.
type Rand interface {
	IntN(n int) int
	Float64() float64
}

// NewRand returns a PCG-backed Rand. A zero seed draws the seed from the
// runtime's entropy source.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return rand.New(rand.NewPCG(uint64(seed), uint64(seed)))
}

// Generator synthesizes the mock vitals shown in a report. It is not safe for
// concurrent use.
type Generator struct {
	rng       Rand
	catalogue []model.VitalsSnapshot
}

// NewGenerator validates the catalogue up front so that Generate cannot fail.
func NewGenerator(rng Rand, catalogue []model.VitalsSnapshot) (*Generator, error) {
	if rng == nil {
		return nil, errors.New("generator: nil random source")
	}
	if len(catalogue) == 0 {
		return nil, errors.New("generator: empty baseline catalogue")
	}
	for i, v := range catalogue {
		if _, err := v.HeartRateBPM(); err != nil {
			return nil, fmt.Errorf("generator: baseline %d: %w", i, err)
		}
		if _, _, err := v.Pressure(); err != nil {
			return nil, fmt.Errorf("generator: baseline %d: %w", i, err)
		}
	}
	return &Generator{rng: rng, catalogue: catalogue}, nil
}

// PickBaseline uniformly selects one snapshot from the catalogue.
func (g *Generator) PickBaseline() (int, model.VitalsSnapshot) {
	i := g.rng.IntN(len(g.catalogue))
	return i, g.catalogue[i]
}

// Generate produces a complete report for a run triggered at `at`. Random
// draws happen in a fixed order: baseline pick, 12 heart-rate samples, then
// systolic/diastolic pairs for 7 days.
func (g *Generator) Generate(runID uuid.UUID, at time.Time) *model.Report {
	idx, vitals := g.PickBaseline()
	// Parse errors were ruled out in NewGenerator.
	bpm, _ := vitals.HeartRateBPM()
	sys, dia, _ := vitals.Pressure()

	health := Classify(vitals.Overall)
	return &model.Report{
		RunID:           runID,
		TriggeredAt:     at,
		BaselineIndex:   idx,
		Vitals:          vitals,
		Health:          health,
		Score:           Score(vitals),
		HeartRate:       g.HeartRateSeries(at, bpm),
		BloodPressure:   g.BloodPressureSeries(at, sys, dia),
		Recommendations: Recommendations(health, vitals),
	}
}

// HeartRateSeries returns HeartRatePoints hourly samples ending at the top of
// at's hour. The trigger is truncated in absolute time, not rebuilt from its
// wall clock, so a trigger in a repeated fall-back hour keeps its own offset
// and consecutive points stay exactly one hour apart.
func (g *Generator) HeartRateSeries(at time.Time, baseline int) []model.HeartRatePoint {
	top := at.Add(-(time.Duration(at.Minute())*time.Minute +
		time.Duration(at.Second())*time.Second +
		time.Duration(at.Nanosecond())))
	points := make([]model.HeartRatePoint, 0, HeartRatePoints)
	for i := HeartRatePoints - 1; i >= 0; i-- {
		ts := top.Add(-time.Duration(i) * time.Hour)
		h := ts.Hour()
		rate := float64(baseline) + circadian(h) + g.noise(heartRateNoise)
		points = append(points, model.HeartRatePoint{
			Label: format.FormatHourLabel(ts),
			Hour:  h,
			Rate:  int(math.Round(rate)),
			At:    ts,
		})
	}
	return points
}

// BloodPressureSeries returns BloodPressurePoints daily samples at 09:00
// local, the last on at's calendar date.
func (g *Generator) BloodPressureSeries(at time.Time, systolic, diastolic int) []model.BloodPressurePoint {
	points := make([]model.BloodPressurePoint, 0, BloodPressurePoints)
	for i := BloodPressurePoints - 1; i >= 0; i-- {
		day := time.Date(at.Year(), at.Month(), at.Day()-i, bpMeasurementHour, 0, 0, 0, at.Location())
		sys := float64(systolic) + g.noise(systolicNoise)
		dia := float64(diastolic) + g.noise(systolicNoise*diastolicNoiseRatio)
		points = append(points, model.BloodPressurePoint{
			Label:     format.FormatDayLabel(day),
			Date:      day,
			Systolic:  int(math.Round(sys)),
			Diastolic: int(math.Round(dia)),
		})
	}
	return points
}

// noise returns a uniform value in [-bound, bound).
func (g *Generator) noise(bound float64) float64 {
	return (g.rng.Float64()*2 - 1) * bound
}

// circadian is the time-of-day component of the heart rate: lowest at
// circadianTroughHour, highest twelve hours later.
func circadian(hour int) float64 {
	return -circadianAmplitude * math.Cos(2*math.Pi*float64(hour-circadianTroughHour)/24)
}
