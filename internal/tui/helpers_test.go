package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/dm/pragati/internal/engine"
	"github.com/dm/pragati/internal/model"
)

var testTrigger = time.Date(2024, 1, 10, 14, 0, 0, 0, time.UTC)

func stripANSI(s string) string { return ansi.Strip(s) }

// newTestApp builds an App over a seeded driver with a frozen clock.
func newTestApp(t *testing.T) *App {
	t.Helper()
	gen, err := engine.NewGenerator(engine.NewRand(7), model.Baselines)
	require.NoError(t, err)
	clock := func() time.Time { return testTrigger }
	d := engine.NewDriver(engine.DefaultTiming(), gen, engine.WithClock(clock))
	app := NewApp(d, engine.NewRand(7), nil)
	app.now = clock
	app.width = 100
	app.height = 40
	return app
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// revealRun drives a full run through to the visible report.
func revealRun(t *testing.T, app *App) uuid.UUID {
	t.Helper()
	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	run := app.driver.State()
	require.Equal(t, engine.PhaseAnalyzing, run.Phase)

	_, cmd = app.Update(TickMsg{RunID: run.ID, At: run.TriggeredAt.Add(app.driver.Timing().Duration)})
	require.NotNil(t, cmd, "completion schedules the reveal")
	app.Update(RevealMsg{RunID: run.ID})
	require.True(t, app.driver.State().ReportVisible())
	return run.ID
}
