package replay

import (
	"context"
	"time"

	"github.com/coder/quartz"
)

// Autoplayer advances a replay cursor on a fixed interval, handing each
// frame to the callback. The clock is injected so tests can drive time
// explicitly.
type Autoplayer struct {
	state    *State
	clock    quartz.Clock
	interval time.Duration
	onFrame  func(Frame)
}

// NewAutoplayer creates an autoplayer over state. onFrame is called for
// the current frame immediately when Run starts and after each tick.
func NewAutoplayer(state *State, clock quartz.Clock, interval time.Duration, onFrame func(Frame)) *Autoplayer {
	return &Autoplayer{
		state:    state,
		clock:    clock,
		interval: interval,
		onFrame:  onFrame,
	}
}

// Run plays the remaining actions, returning nil once the stream is
// exhausted or ctx.Err() when cancelled. The ticker is registered with
// the clock before the first frame is emitted, so a test that has seen
// a frame can safely advance a mock clock.
func (a *Autoplayer) Run(ctx context.Context) error {
	ticker := a.clock.NewTicker(a.interval)
	defer ticker.Stop()

	a.onFrame(a.state.Frame())

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if !a.state.Next() {
				return nil
			}
			a.onFrame(a.state.Frame())
		}
	}
}
