package engine

import (
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/dm/pragati/internal/model"
)

// Phase is the lifecycle phase of the analysis surface.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseAnalyzing
	PhaseRevealing
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseAnalyzing:
		return "analyzing"
	case PhaseRevealing:
		return "revealing"
	default:
		return "unknown"
	}
}

// Timing holds the fixed durations of one run.
type Timing struct {
	Duration     time.Duration // total analysis time
	TickInterval time.Duration // progress polling interval
	RevealDelay  time.Duration // pause between 100% and the report appearing
}

// DefaultTiming returns the durations used when nothing is configured.
func DefaultTiming() Timing {
	return Timing{
		Duration:     13500 * time.Millisecond,
		TickInterval: 50 * time.Millisecond,
		RevealDelay:  700 * time.Millisecond,
	}
}

// Run is the complete state of the surface. The zero value is the idle state.
type Run struct {
	ID          uuid.UUID
	Phase       Phase
	TriggeredAt time.Time
	Progress    float64 // 0-100, non-decreasing within a run
	CompletedAt time.Time
	Revealed    bool // report shown, avatar hidden
	Ticks       int
}

// AvatarVisible reports whether the avatar is on screen.
func (r Run) AvatarVisible() bool { return !r.Revealed }

// ReportVisible reports whether the report is on screen.
func (r Run) ReportVisible() bool { return r.Revealed }

// DismissAction is one of the two report buttons.
type DismissAction int

const (
	DismissClose DismissAction = iota
	DismissNewAnalysis
)

func (a DismissAction) String() string {
	if a == DismissNewAnalysis {
		return "new_analysis"
	}
	return "close"
}

// TickOutcome tells the caller whether to schedule another tick.
type TickOutcome int

const (
	TickIgnored  TickOutcome = iota // stale run, wrong phase, or driver stopped
	TickContinue                    // still analyzing; schedule the next tick
	TickComplete                    // reached 100%; schedule the reveal
)

// Progress converts elapsed time into a percentage of total, clamped to
// [0, 100].
func Progress(elapsed, total time.Duration) float64 {
	if total <= 0 {
		return 100
	}
	p := float64(elapsed) / float64(total) * 100
	switch {
	case p < 0:
		return 0
	case p > 100:
		return 100
	default:
		return p
	}
}

// DriverOption configures a Driver.
type DriverOption func(*Driver)

// WithClock overrides the clock used for preview reports and the headless
// runner.
func WithClock(now func() time.Time) DriverOption {
	return func(d *Driver) { d.now = now }
}

// WithLogger attaches a logger. The default discards everything.
func WithLogger(log *zap.Logger) DriverOption {
	return func(d *Driver) { d.log = log }
}

// Driver is the Idle → Analyzing → Revealing → Idle state machine. Every
// mutation goes through its methods; callers schedule ticks and the reveal
// themselves and pass the run ID back so that callbacks belonging to an
// older run, or arriving after Stop, are ignored. It is not safe for
// concurrent use.
type Driver struct {
	timing  Timing
	memo    *Memo
	now     func() time.Time
	log     *zap.Logger
	run     Run
	stopped bool
}

// NewDriver creates an idle Driver.
func NewDriver(timing Timing, gen *Generator, opts ...DriverOption) *Driver {
	d := &Driver{
		timing: timing,
		now:    time.Now,
		log:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(d)
	}
	d.memo = NewMemo(gen, d.now)
	return d
}

// Timing returns the configured durations.
func (d *Driver) Timing() Timing { return d.timing }

// State returns a copy of the current run record.
func (d *Driver) State() Run { return d.run }

// Stopped reports whether Stop has been called.
func (d *Driver) Stopped() bool { return d.stopped }

// Report returns the memoized report for the current run, or the preview
// report while idle.
func (d *Driver) Report() *model.Report {
	return d.memo.Get(d.run.ID, d.run.TriggeredAt)
}

// Start begins a run at now. Activation is accepted only while idle.
func (d *Driver) Start(now time.Time) (Run, bool) {
	if d.stopped || d.run.Phase != PhaseIdle {
		return d.run, false
	}
	d.run = Run{
		ID:          uuid.New(),
		Phase:       PhaseAnalyzing,
		TriggeredAt: now,
	}
	rep := d.memo.Get(d.run.ID, now)
	d.log.Info("analysis started",
		zap.String("run_id", d.run.ID.String()),
		zap.Time("triggered_at", now),
		zap.Int("baseline", rep.BaselineIndex),
		zap.Duration("duration", d.timing.Duration),
	)
	return d.run, true
}

// Tick recomputes progress from wall-clock time elapsed since the trigger.
func (d *Driver) Tick(id uuid.UUID, now time.Time) TickOutcome {
	if d.stopped || d.run.Phase != PhaseAnalyzing || id != d.run.ID {
		d.log.Debug("tick dropped",
			zap.String("run_id", id.String()),
			zap.Stringer("phase", d.run.Phase),
			zap.Bool("stopped", d.stopped),
		)
		return TickIgnored
	}
	p := Progress(now.Sub(d.run.TriggeredAt), d.timing.Duration)
	if p < d.run.Progress {
		p = d.run.Progress
	}
	d.run.Progress = p
	d.run.Ticks++
	if p < 100 {
		return TickContinue
	}
	d.run.Phase = PhaseRevealing
	d.run.CompletedAt = now
	d.log.Info("analysis complete",
		zap.String("run_id", id.String()),
		zap.Duration("elapsed", now.Sub(d.run.TriggeredAt)),
		zap.Int("ticks", d.run.Ticks),
	)
	return TickComplete
}

// Reveal hides the avatar and shows the report once the grace delay after
// completion has passed.
func (d *Driver) Reveal(id uuid.UUID) bool {
	if d.stopped || d.run.Phase != PhaseRevealing || d.run.Revealed || id != d.run.ID {
		return false
	}
	d.run.Revealed = true
	d.log.Info("report revealed", zap.String("run_id", id.String()))
	return true
}

// Dismiss returns to idle from a visible report. Both actions reset the
// surface identically.
func (d *Driver) Dismiss(action DismissAction) bool {
	if d.stopped || !d.run.Revealed {
		return false
	}
	d.log.Info("report dismissed",
		zap.String("run_id", d.run.ID.String()),
		zap.Stringer("action", action),
	)
	d.run = Run{}
	return true
}

// Stop tears the driver down. Any tick or reveal that arrives afterwards is
// ignored. It reports whether a run was still analyzing.
func (d *Driver) Stop() bool {
	if d.stopped {
		return false
	}
	d.stopped = true
	inFlight := d.run.Phase == PhaseAnalyzing
	d.log.Info("driver stopped",
		zap.Stringer("phase", d.run.Phase),
		zap.Bool("in_flight", inFlight),
	)
	return inFlight
}
