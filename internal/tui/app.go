package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/dm/pragati/internal/engine"
	"github.com/dm/pragati/internal/format"
	"github.com/dm/pragati/internal/model"
)

const (
	progressMinWidth = 10
	progressMaxWidth = 60
)

// App is the root Bubble Tea model for pragati.
type App struct {
	driver  *engine.Driver
	log     *zap.Logger
	rng     engine.Rand
	now     func() time.Time
	history *model.RunHistory

	// Widgets
	spinner  spinner.Model
	progress progress.Model
	help     help.Model

	// Avatar state
	hintIdx  int
	blinking bool

	// Layout
	width, height int

	// UI state
	scrollOffset int
	showHelp     bool
}

// NewApp creates an App over an idle driver. rng drives the blink timing.
func NewApp(d *engine.Driver, rng engine.Rand, log *zap.Logger) *App {
	if log == nil {
		log = zap.NewNop()
	}
	return &App{
		driver:  d,
		log:     log,
		rng:     rng,
		now:     time.Now,
		history: model.NewRunHistory(0),
		spinner: spinner.New(
			spinner.WithSpinner(spinner.Dot),
			spinner.WithStyle(StyleCyan),
		),
		progress: progress.New(
			progress.WithGradient(string(colorCyan), string(colorGreen)),
			progress.WithoutPercentage(),
			progress.WithWidth(40),
		),
		help: help.New(),
	}
}

// Init implements tea.Model. Starts the idle hint rotation and blinking.
func (app *App) Init() tea.Cmd {
	return tea.Batch(hintCmd(), blinkCmd(app.rng))
}

// Update implements tea.Model. It is the single state-mutation entry point.
func (app *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		app.width = msg.Width
		app.height = msg.Height
		app.progress.Width = min(max(msg.Width-20, progressMinWidth), progressMaxWidth)
		if app.driver.State().ReportVisible() {
			app.scrollOffset = min(app.scrollOffset, reportMaxOffset(app))
		}

	case TickMsg:
		switch app.driver.Tick(msg.RunID, msg.At) {
		case engine.TickContinue:
			return app, tickCmd(msg.RunID, app.driver.Timing().TickInterval)
		case engine.TickComplete:
			return app, revealCmd(msg.RunID, app.driver.Timing().RevealDelay)
		}

	case RevealMsg:
		if app.driver.Reveal(msg.RunID) {
			app.scrollOffset = 0
			app.history.Push(model.SummarizeReport(app.driver.Report()))
		}

	case spinner.TickMsg:
		if app.driver.State().Phase != engine.PhaseAnalyzing {
			return app, nil
		}
		var cmd tea.Cmd
		app.spinner, cmd = app.spinner.Update(msg)
		return app, cmd

	case HintMsg:
		app.hintIdx++
		return app, hintCmd()

	case BlinkMsg:
		app.blinking = msg.Closed
		if msg.Closed {
			return app, unblinkCmd()
		}
		return app, blinkCmd(app.rng)

	case tea.MouseMsg:
		switch {
		case msg.Action == tea.MouseActionRelease && msg.Button == tea.MouseButtonLeft:
			return app, app.activate()
		case msg.Button == tea.MouseButtonWheelUp:
			app.scroll(-1)
		case msg.Button == tea.MouseButtonWheelDown:
			app.scroll(1)
		}

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			app.shutdown()
			return app, tea.Quit
		case key.Matches(msg, keys.Help):
			app.showHelp = !app.showHelp
		case key.Matches(msg, keys.Start):
			return app, app.activate()
		case key.Matches(msg, keys.Close):
			app.dismiss(engine.DismissClose)
		case key.Matches(msg, keys.NewAnalysis):
			app.dismiss(engine.DismissNewAnalysis)
		case key.Matches(msg, keys.Up):
			app.scroll(-1)
		case key.Matches(msg, keys.Down):
			app.scroll(1)
		}
	}

	return app, nil
}

// activate starts a run when idle. Activation during a run or while the
// report is up is ignored.
func (app *App) activate() tea.Cmd {
	run, ok := app.driver.Start(app.now())
	if !ok {
		return nil
	}
	app.scrollOffset = 0
	return tea.Batch(tickCmd(run.ID, app.driver.Timing().TickInterval), app.spinner.Tick)
}

func (app *App) dismiss(action engine.DismissAction) {
	if app.driver.Dismiss(action) {
		app.scrollOffset = 0
	}
}

func (app *App) scroll(delta int) {
	if !app.driver.State().ReportVisible() {
		return
	}
	app.scrollOffset = min(max(app.scrollOffset+delta, 0), reportMaxOffset(app))
}

// shutdown stops the driver so ticks still in flight become no-ops.
func (app *App) shutdown() {
	if app.driver.Stop() {
		app.log.Info("quit during analysis", zap.Float64("progress", app.driver.State().Progress))
	}
	_ = app.log.Sync()
}

// View implements tea.Model. Renders the full TUI.
func (app *App) View() string {
	parts := []string{renderHeader(app)}
	if app.driver.State().ReportVisible() {
		parts = append(parts, renderReport(app))
	} else {
		parts = append(parts, renderStage(app))
	}
	parts = append(parts, renderFooter(app))
	return strings.Join(parts, "\n")
}

// renderStage renders the avatar screen for the idle, analyzing and
// pre-reveal states.
func renderStage(app *App) string {
	width := app.width
	if width <= 0 {
		width = 80
	}
	run := app.driver.State()

	lines := []string{"", renderAvatar(app), ""}
	switch run.Phase {
	case engine.PhaseAnalyzing:
		lines = append(lines,
			app.spinner.View()+" "+StyleTitle.Render("Analyzing..."),
			StyleDim.Render("Please wait"),
			"",
			app.progress.ViewAs(run.Progress/100)+" "+format.FormatWholePercent(run.Progress),
		)
	case engine.PhaseRevealing:
		lines = append(lines,
			StyleGreen.Bold(true).Render("Analysis complete"),
			StyleDim.Render("Preparing your report"),
			"",
			app.progress.ViewAs(1)+" "+format.FormatWholePercent(100),
		)
	default:
		lines = append(lines,
			StyleDim.Italic(true).Render("“"+currentHint(app.hintIdx)+"”"),
			"",
			StyleCyan.Render("Click or press enter to start analysis"),
			StyleDim.Render("Takes about "+format.FormatDuration(app.driver.Timing().Duration)),
		)
		if app.history.Len() > 0 {
			scores := app.history.Values("score")
			lines = append(lines, "", StyleDim.Render("Session scores ")+RenderSparkline(scores, len(scores), colorGreen))
		}
	}

	centered := make([]string, len(lines))
	for i, l := range lines {
		centered[i] = lipgloss.PlaceHorizontal(width, lipgloss.Center, l)
	}
	return strings.Join(centered, "\n")
}

// tickCmd schedules the next progress tick for run id.
func tickCmd(id uuid.UUID, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return TickMsg{RunID: id, At: t}
	})
}

// revealCmd schedules the report reveal for run id.
func revealCmd(id uuid.UUID, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return RevealMsg{RunID: id}
	})
}
