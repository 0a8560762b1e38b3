package engine

import (
	"context"
	"errors"
	"time"

	"github.com/dm/pragati/internal/model"
)

// ErrNotIdle is returned by Run when a run is already in progress or the
// driver has been stopped.
var ErrNotIdle = errors.New("driver is not idle")

// Run drives one complete analysis on its own timers, for use without the
// terminal UI. onProgress, when non-nil, is called after every tick with
// the updated state. The ticker and reveal timer are released on every
// return path; if ctx ends first the driver is stopped and ctx.Err() is
// returned.
func (d *Driver) Run(ctx context.Context, onProgress func(Run)) (*model.Report, error) {
	run, ok := d.Start(d.now())
	if !ok {
		return nil, ErrNotIdle
	}

	if err := d.waitComplete(ctx, run, onProgress); err != nil {
		return nil, err
	}

	reveal := time.NewTimer(d.timing.RevealDelay)
	defer reveal.Stop()
	select {
	case <-ctx.Done():
		d.Stop()
		return nil, ctx.Err()
	case <-reveal.C:
		d.Reveal(run.ID)
	}
	return d.Report(), nil
}

func (d *Driver) waitComplete(ctx context.Context, run Run, onProgress func(Run)) error {
	ticker := time.NewTicker(d.timing.TickInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			d.Stop()
			return ctx.Err()
		case <-ticker.C:
			out := d.Tick(run.ID, d.now())
			if onProgress != nil {
				onProgress(d.State())
			}
			if out != TickContinue {
				return nil
			}
		}
	}
}
