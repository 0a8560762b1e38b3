package tui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dm/pragati/internal/engine"
)

const (
	hintInterval   = 4 * time.Second
	blinkDuration  = 150 * time.Millisecond
	blinkMinDelay  = 2 * time.Second
	blinkJitter    = 3 * time.Second
	eyeFrameTicks  = 6 // driver ticks per eye frame while analyzing
	avatarMinWidth = 20
)

// idleHints rotate under the avatar while nothing is running.
var idleHints = []string{
	"Hi! I'm your health partner.",
	"Ready when you are.",
	"A quick check keeps you on track.",
	"Let's look at your vitals today.",
	"Remember to stay hydrated!",
}

// eyeFrames are drawn in order while analyzing; the eyes scan left to right.
var eyeFrames = []string{
	"(o  )  (o  )",
	"( o )  ( o )",
	"(  o)  (  o)",
	"( o )  ( o )",
}

const (
	eyesOpen   = "( o )  ( o )"
	eyesClosed = "( - )  ( - )"
	eyesDone   = "( ^ )  ( ^ )"
)

// avatarLines returns the doctor figure with the given eyes.
func avatarLines(eyes string) []string {
	return []string{
		"   .--------------.   ",
		"  /                \\  ",
		" |   " + eyes + "   | ",
		" |       ___        | ",
		"  \\      \\_/       /  ",
		"   '------+-------'   ",
		"       ___|+|___      ",
		"      /   |+|   \\     ",
	}
}

// avatarEyes picks the eye frame for the current state.
func avatarEyes(run engine.Run, blinking bool) string {
	switch run.Phase {
	case engine.PhaseAnalyzing:
		return eyeFrames[(run.Ticks/eyeFrameTicks)%len(eyeFrames)]
	case engine.PhaseRevealing:
		return eyesDone
	}
	if blinking {
		return eyesClosed
	}
	return eyesOpen
}

// renderAvatar renders the centered avatar block.
func renderAvatar(app *App) string {
	width := app.width
	if width < avatarMinWidth {
		width = avatarMinWidth
	}
	figure := StyleAvatar.Render(strings.Join(avatarLines(avatarEyes(app.driver.State(), app.blinking)), "\n"))
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, figure)
}

// currentHint returns the idle hint selected by the rotation counter.
func currentHint(idx int) string {
	if idx < 0 {
		idx = -idx
	}
	return idleHints[idx%len(idleHints)]
}

func hintCmd() tea.Cmd {
	return tea.Tick(hintInterval, func(t time.Time) tea.Msg {
		return HintMsg(t)
	})
}

// blinkCmd schedules the next blink 2-5s from now.
func blinkCmd(rng engine.Rand) tea.Cmd {
	delay := blinkMinDelay + time.Duration(rng.Float64()*float64(blinkJitter))
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return BlinkMsg{Closed: true}
	})
}

func unblinkCmd() tea.Cmd {
	return tea.Tick(blinkDuration, func(time.Time) tea.Msg {
		return BlinkMsg{Closed: false}
	})
}
