package tui

import (
	"time"

	"github.com/google/uuid"
)

// TickMsg asks the driver to recompute progress for the run that scheduled it.
type TickMsg struct {
	RunID uuid.UUID
	At    time.Time
}

// RevealMsg fires once the grace delay after completion has passed.
type RevealMsg struct{ RunID uuid.UUID }

// HintMsg rotates the idle hint under the avatar.
type HintMsg time.Time

// BlinkMsg closes (Closed=true) or reopens the avatar's eyes.
type BlinkMsg struct{ Closed bool }
