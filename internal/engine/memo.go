package engine

import (
	"time"

	"github.com/google/uuid"

	"github.com/dm/pragati/internal/model"
)

// Memo caches the generated report for the current run so that re-rendering
// never re-draws the random values. A zero trigger is the pre-run preview:
// it is generated once, at the time of first access.
type Memo struct {
	gen  *Generator
	now  func() time.Time
	id   uuid.UUID
	key  time.Time
	hit  bool
	rep  *model.Report
	gens int
}

// NewMemo returns an empty Memo backed by gen.
func NewMemo(gen *Generator, now func() time.Time) *Memo {
	if now == nil {
		now = time.Now
	}
	return &Memo{gen: gen, now: now}
}

// Get returns the report for (runID, trigger), generating it only when the
// key differs from the cached one.
func (m *Memo) Get(runID uuid.UUID, trigger time.Time) *model.Report {
	if m.hit && m.id == runID && m.key.Equal(trigger) {
		return m.rep
	}
	at := trigger
	if at.IsZero() {
		at = m.now()
	}
	m.rep = m.gen.Generate(runID, at)
	m.id = runID
	m.key = trigger
	m.hit = true
	m.gens++
	return m.rep
}

// generations reports how many times the memo has called the generator.
func (m *Memo) generations() int {
	return m.gens
}
