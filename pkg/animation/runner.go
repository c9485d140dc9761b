package animation

import (
	"context"
	"fmt"
	"time"

	"github.com/go-lumen/lumen/pkg/errors"
)

// Runner drives an [AnimableGroup] from a wall clock at a fixed frame
// interval.
//
// The scheduler itself only integrates the times it is handed; Runner is
// the piece that turns wall-clock time into the (absolute, delta) pairs
// [AnimableGroup.Step] consumes. Absolute time starts at zero when Run
// begins.
type Runner struct {
	group    *AnimableGroup
	interval time.Duration
	clock    Clock
}

// NewRunner creates a runner stepping group once per interval.
// Intervals of zero or less fall back to ~60 frames per second.
func NewRunner(group *AnimableGroup, interval time.Duration) *Runner {
	if interval <= 0 {
		interval = time.Second / 60
	}
	return &Runner{
		group:    group,
		interval: interval,
		clock:    SystemClock,
	}
}

// SetClock replaces the runner's time source. Pass nil to restore the
// system clock.
func (r *Runner) SetClock(c Clock) {
	if c == nil {
		c = SystemClock
	}
	r.clock = c
}

// Run steps the group until ctx is cancelled, returning ctx's error.
//
// A panic escaping a lifecycle or update hook is recovered, reported
// through the errors package, and ends the run: the group may have been
// left mid-step, so continuing to drive it would scramble its bookkeeping.
func (r *Runner) Run(ctx context.Context) error {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	start := r.clock.Now()
	last := start
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			now := r.clock.Now()
			if err := r.step(now.Sub(start).Seconds(), now.Sub(last).Seconds()); err != nil {
				return err
			}
			last = now
		}
	}
}

// step runs one frame with panic recovery around user hooks.
func (r *Runner) step(absolute, delta float64) (err error) {
	defer func() {
		if v := recover(); v != nil {
			errors.ReportPanic(&errors.PanicError{
				Op:         "animation.Runner.Run",
				Value:      v,
				StackTrace: errors.Stack(),
				Timestamp:  time.Now(),
			})
			err = fmt.Errorf("animation: panic during step at t=%.3fs: %v", absolute, v)
		}
	}()
	r.group.Step(absolute, delta)
	return nil
}
