package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dm/pragati/internal/engine"
)

func TestApp_InitSchedulesAvatarTimers(t *testing.T) {
	app := newTestApp(t)
	assert.NotNil(t, app.Init())
}

func TestApp_ActivationInputs(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.Msg
	}{
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}},
		{"space", tea.KeyMsg{Type: tea.KeySpace}},
		{"left click", tea.MouseMsg{Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			app := newTestApp(t)
			_, cmd := app.Update(tc.msg)
			require.NotNil(t, cmd)
			run := app.driver.State()
			assert.Equal(t, engine.PhaseAnalyzing, run.Phase)
			assert.Equal(t, testTrigger, run.TriggeredAt)
			assert.Zero(t, run.Progress)
			assert.True(t, run.AvatarVisible())
		})
	}
}

func TestApp_MousePressDoesNotStart(t *testing.T) {
	app := newTestApp(t)
	_, cmd := app.Update(tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	assert.Nil(t, cmd)
	assert.Equal(t, engine.PhaseIdle, app.driver.State().Phase)
}

func TestApp_ActivationIgnoredWhileAnalyzing(t *testing.T) {
	app := newTestApp(t)
	app.Update(tea.KeyMsg{Type: tea.KeyEnter})
	first := app.driver.State().ID

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)
	assert.Equal(t, first, app.driver.State().ID)
}

func TestApp_TickAdvancesProgress(t *testing.T) {
	app := newTestApp(t)
	app.Update(tea.KeyMsg{Type: tea.KeyEnter})
	run := app.driver.State()
	half := app.driver.Timing().Duration / 2

	_, cmd := app.Update(TickMsg{RunID: run.ID, At: run.TriggeredAt.Add(half)})
	require.NotNil(t, cmd, "an unfinished run reschedules its tick")
	assert.InDelta(t, 50.0, app.driver.State().Progress, 1e-9)
	assert.Equal(t, engine.PhaseAnalyzing, app.driver.State().Phase)
}

func TestApp_StaleTickIgnored(t *testing.T) {
	app := newTestApp(t)
	app.Update(tea.KeyMsg{Type: tea.KeyEnter})

	_, cmd := app.Update(TickMsg{RunID: uuid.New(), At: testTrigger.Add(time.Hour)})
	assert.Nil(t, cmd)
	assert.Zero(t, app.driver.State().Progress)
}

func TestApp_FullRunAndClose(t *testing.T) {
	app := newTestApp(t)
	id := revealRun(t, app)

	run := app.driver.State()
	assert.Equal(t, id, run.ID)
	assert.Equal(t, 100.0, run.Progress)
	assert.False(t, run.AvatarVisible())
	assert.Equal(t, 1, app.history.Len())

	last, ok := app.history.Last()
	require.True(t, ok)
	assert.Equal(t, id, last.RunID)

	app.Update(keyRunes("c"))
	assert.Equal(t, engine.Run{}, app.driver.State())
	assert.Equal(t, 1, app.history.Len(), "history survives dismissal")
}

func TestApp_NewAnalysisResetsToIdle(t *testing.T) {
	app := newTestApp(t)
	revealRun(t, app)
	app.scrollOffset = 3

	app.Update(keyRunes("n"))
	assert.Equal(t, engine.PhaseIdle, app.driver.State().Phase)
	assert.Zero(t, app.scrollOffset)

	// A fresh run can start straight away.
	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.NotNil(t, cmd)
}

func TestApp_ActivationIgnoredWhileReportVisible(t *testing.T) {
	app := newTestApp(t)
	id := revealRun(t, app)

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)
	assert.Equal(t, id, app.driver.State().ID)
	assert.True(t, app.driver.State().ReportVisible())
}

func TestApp_DuplicateRevealIgnored(t *testing.T) {
	app := newTestApp(t)
	id := revealRun(t, app)

	app.Update(RevealMsg{RunID: id})
	assert.Equal(t, 1, app.history.Len())
}

func TestApp_QuitStopsDriver(t *testing.T) {
	app := newTestApp(t)
	app.Update(tea.KeyMsg{Type: tea.KeyEnter})
	run := app.driver.State()

	_, cmd := app.Update(keyRunes("q"))
	require.NotNil(t, cmd)
	assert.True(t, app.driver.Stopped())

	// Ticks still in flight after teardown are no-ops.
	_, cmd = app.Update(TickMsg{RunID: run.ID, At: run.TriggeredAt.Add(time.Hour)})
	assert.Nil(t, cmd)
	assert.Zero(t, app.driver.State().Progress)
}

func TestApp_CtrlCQuits(t *testing.T) {
	app := newTestApp(t)
	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.True(t, app.driver.Stopped())
}

func TestApp_HelpToggle(t *testing.T) {
	app := newTestApp(t)
	require.False(t, app.showHelp)

	app.Update(keyRunes("?"))
	assert.True(t, app.showHelp)
	assert.Contains(t, stripANSI(app.View()), "new analysis")

	app.Update(keyRunes("?"))
	assert.False(t, app.showHelp)
}

func TestApp_BlinkCycle(t *testing.T) {
	app := newTestApp(t)

	_, cmd := app.Update(BlinkMsg{Closed: true})
	assert.True(t, app.blinking)
	assert.NotNil(t, cmd)
	assert.Contains(t, stripANSI(app.View()), eyesClosed)

	_, cmd = app.Update(BlinkMsg{Closed: false})
	assert.False(t, app.blinking)
	assert.NotNil(t, cmd)
}

func TestApp_HintRotates(t *testing.T) {
	app := newTestApp(t)
	before := currentHint(app.hintIdx)

	_, cmd := app.Update(HintMsg(testTrigger))
	assert.NotNil(t, cmd)
	assert.NotEqual(t, before, currentHint(app.hintIdx))
	assert.Contains(t, stripANSI(app.View()), currentHint(app.hintIdx))
}

func TestApp_SpinnerOnlyRunsWhileAnalyzing(t *testing.T) {
	app := newTestApp(t)
	_, cmd := app.Update(spinner.TickMsg{})
	assert.Nil(t, cmd, "idle drops spinner ticks")

	app.Update(tea.KeyMsg{Type: tea.KeyEnter})
	_, cmd = app.Update(spinner.TickMsg{})
	assert.NotNil(t, cmd)
}

func TestApp_ScrollClampedToReport(t *testing.T) {
	app := newTestApp(t)
	app.height = 20

	// Scrolling does nothing before the report is up.
	app.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Zero(t, app.scrollOffset)

	revealRun(t, app)
	maxOffset := reportMaxOffset(app)
	require.Positive(t, maxOffset, "a 20-row terminal cannot fit the report")

	for range maxOffset + 10 {
		app.Update(tea.KeyMsg{Type: tea.KeyDown})
	}
	assert.Equal(t, maxOffset, app.scrollOffset)
	assert.Contains(t, stripANSI(app.View()), "↑ scroll up")

	for range maxOffset + 10 {
		app.Update(tea.KeyMsg{Type: tea.KeyUp})
	}
	assert.Zero(t, app.scrollOffset)
	assert.Contains(t, stripANSI(app.View()), "↓ scroll for more")
}

func TestApp_MouseWheelScrolls(t *testing.T) {
	app := newTestApp(t)
	app.height = 20
	revealRun(t, app)

	app.Update(tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown})
	assert.Equal(t, 1, app.scrollOffset)
	app.Update(tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelUp})
	assert.Zero(t, app.scrollOffset)
}

func TestApp_WindowSizeSetsLayout(t *testing.T) {
	app := newTestApp(t)
	app.Update(tea.WindowSizeMsg{Width: 120, Height: 50})
	assert.Equal(t, 120, app.width)
	assert.Equal(t, 50, app.height)
	assert.Equal(t, progressMaxWidth, app.progress.Width)

	app.Update(tea.WindowSizeMsg{Width: 20, Height: 10})
	assert.Equal(t, progressMinWidth, app.progress.Width)
}

func TestApp_ViewByPhase(t *testing.T) {
	app := newTestApp(t)
	app.height = 200

	idle := stripANSI(app.View())
	assert.Contains(t, idle, "Pragati")
	assert.Contains(t, idle, "Click or press enter to start analysis")
	assert.Contains(t, idle, "Takes about 13.5s")
	assert.NotContains(t, idle, "Health Report")

	app.Update(tea.KeyMsg{Type: tea.KeyEnter})
	run := app.driver.State()
	app.Update(TickMsg{RunID: run.ID, At: run.TriggeredAt.Add(app.driver.Timing().Duration / 4)})
	analyzing := stripANSI(app.View())
	assert.Contains(t, analyzing, "Analyzing...")
	assert.Contains(t, analyzing, "Please wait")
	assert.Contains(t, analyzing, "25%")

	app.Update(TickMsg{RunID: run.ID, At: run.TriggeredAt.Add(app.driver.Timing().Duration)})
	revealing := stripANSI(app.View())
	assert.Contains(t, revealing, "Analysis complete")
	assert.Contains(t, revealing, eyesDone)

	app.Update(RevealMsg{RunID: run.ID})
	report := stripANSI(app.View())
	assert.Contains(t, report, "Health Report")
	assert.Contains(t, report, "Analysis completed on Wednesday, January 10, 2024 at 02:00 PM")
	assert.Contains(t, report, "Heart Rate Trend (Last 12 Hours)")
	assert.Contains(t, report, "Blood Pressure Trend (Last 7 Days)")
	assert.Contains(t, report, "Recommendations")
	assert.Contains(t, report, "[n] New Analysis")
	assert.NotContains(t, report, "Click or press enter")
}

func TestApp_ViewFillsTerminalHeight(t *testing.T) {
	app := newTestApp(t)
	app.height = 24
	revealRun(t, app)

	lines := strings.Split(app.View(), "\n")
	assert.Len(t, lines, 24)
}
