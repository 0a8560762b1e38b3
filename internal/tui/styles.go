package tui

import "github.com/charmbracelet/lipgloss"

// Pragati palette.
var (
	colorGreen  = lipgloss.Color("#10b981")
	colorAmber  = lipgloss.Color("#f59e0b")
	colorYellow = lipgloss.Color("#eab308")
	colorRed    = lipgloss.Color("#ef4444")
	colorGray   = lipgloss.Color("#6b7280")
	colorCyan   = lipgloss.Color("#06b6d4")
	colorPurple = lipgloss.Color("#8b5cf6")
	colorWhite  = lipgloss.Color("#f8fafc")
	colorDark   = lipgloss.Color("#1e293b")
	colorAlt    = lipgloss.Color("#0f172a")
)

// Status styles for the phase indicator.
var (
	StyleStatusGreen   = lipgloss.NewStyle().Bold(true).Foreground(colorGreen)
	StyleStatusCyan    = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	StyleStatusPurple  = lipgloss.NewStyle().Bold(true).Foreground(colorPurple)
	StyleStatusUnknown = lipgloss.NewStyle().Foreground(colorGray)
)

// StyleHeader: full-width dark header bar.
var StyleHeader = lipgloss.NewStyle().
	Background(colorDark).
	Foreground(colorWhite).
	Padding(0, 1)

// StyleCard: rounded card used for vitals, charts and status panels.
var StyleCard = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(colorGray).
	Padding(0, 1)

// StyleAvatar: the doctor figure on the idle and analyzing screens.
var StyleAvatar = lipgloss.NewStyle().
	Foreground(colorCyan).
	Bold(true)

// StyleButton: report footer actions.
var StyleButton = lipgloss.NewStyle().
	Background(colorAlt).
	Foreground(colorWhite).
	Padding(0, 2).
	MarginRight(2)

// Table styles.
var (
	StyleTableHeader = lipgloss.NewStyle().
				Bold(true).
				Underline(true).
				Foreground(colorGray)

	StyleTableRow = lipgloss.NewStyle().
			Foreground(colorWhite)

	StyleTableRowAlt = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#cbd5e1"))
)

// Utility styles.
var (
	StyleTitle = lipgloss.NewStyle().Foreground(colorWhite).Bold(true)
	StyleDim   = lipgloss.NewStyle().Foreground(colorGray)
)

// Named color styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(colorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(colorYellow)
	StyleCyan   = lipgloss.NewStyle().Foreground(colorCyan)
	StyleRed    = lipgloss.NewStyle().Foreground(colorRed)
)
