package model

import (
	"time"

	"github.com/google/uuid"
)

const defaultHistoryCap = 20

// RunSummary is the part of a completed run kept for the rest of the session.
type RunSummary struct {
	RunID        uuid.UUID
	TriggeredAt  time.Time
	Score        int
	Overall      Status
	AvgHeartRate float64
}

// SummarizeReport condenses a report into a RunSummary.
func SummarizeReport(r *Report) RunSummary {
	return RunSummary{
		RunID:        r.RunID,
		TriggeredAt:  r.TriggeredAt,
		Score:        r.Score,
		Overall:      r.Vitals.Overall,
		AvgHeartRate: r.AvgHeartRate(),
	}
}

// RunHistory is a fixed-size ring buffer of RunSummaries for the current
// session. When the buffer is full, new pushes overwrite the oldest entry.
type RunHistory struct {
	buf  []RunSummary
	head int // index of the next write position
	size int // number of valid entries
}

// NewRunHistory creates a RunHistory with the given capacity.
// If capacity <= 0, defaultHistoryCap (20) is used.
func NewRunHistory(capacity int) *RunHistory {
	if capacity <= 0 {
		capacity = defaultHistoryCap
	}
	return &RunHistory{
		buf: make([]RunSummary, capacity),
	}
}

// Push appends a summary, overwriting the oldest if full.
func (h *RunHistory) Push(s RunSummary) {
	h.buf[h.head] = s
	h.head = (h.head + 1) % len(h.buf)
	if h.size < len(h.buf) {
		h.size++
	}
}

// Len returns the number of valid entries in the history.
func (h *RunHistory) Len() int {
	return h.size
}

// Last returns the most recent summary, if any.
func (h *RunHistory) Last() (RunSummary, bool) {
	if h.size == 0 {
		return RunSummary{}, false
	}
	return h.buf[(h.head-1+len(h.buf))%len(h.buf)], true
}

// Values returns a slice of float64 for the named field in chronological order
// (oldest first). Valid field names: "score", "avgHeartRate".
func (h *RunHistory) Values(field string) []float64 {
	out := make([]float64, h.size)
	// oldest entry sits at (head - size + cap) % cap
	start := (h.head - h.size + len(h.buf)) % len(h.buf)
	for i := 0; i < h.size; i++ {
		s := h.buf[(start+i)%len(h.buf)]
		switch field {
		case "score":
			out[i] = float64(s.Score)
		case "avgHeartRate":
			out[i] = s.AvgHeartRate
		}
	}
	return out
}
