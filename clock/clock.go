// Package clock implements the divider-based fan-out scheduler that
// drives the CPU and PPU at their native 1:3 tick ratio. It is a
// cooperative, single-threaded scheduler: Start runs batches of steps
// and yields to the host between batches so the host can service
// timers, input and presentation without the emulation abandoning
// throughput.
package clock

import (
	"context"
	"time"
)

// DefaultYieldInterval and DefaultYieldDelay are the NES wiring's batch
// parameters: run this many steps, then give the host scheduler this
// long before resuming.
const (
	DefaultYieldInterval = 1000
	DefaultYieldDelay    = time.Millisecond
)

// ClockOffset is the one-time phase offset the NES wiring passes to
// Register for both the PPU and the CPU. It is zero, so the PPU's
// first dot runs on the first step and the CPU's first fetch on the
// third.
const ClockOffset = 0

type tickFunc struct {
	callback  func()
	divider   int
	remaining int
}

// Clock is a registration-order, divider-based scheduler. Each
// registered callback fires when its countdown reaches zero, then the
// countdown reloads to divider-1.
type Clock struct {
	funcs   []*tickFunc
	running bool
}

// New returns an empty Clock; register callbacks with Register before
// calling Start or Step.
func New() *Clock {
	return &Clock{}
}

// Register adds a callback that fires every divider steps, offset by a
// one-time phase shift (0 for no shift). Registration order is
// preserved, and is the firing order within a single Step.
func (c *Clock) Register(divider, offset int, callback func()) {
	c.funcs = append(c.funcs, &tickFunc{
		callback:  callback,
		divider:   divider,
		remaining: divider - 1 - offset,
	})
}

// Step advances every registered callback by one tick, in registration
// order: if a callback's countdown has reached zero it fires, then its
// countdown reloads.
func (c *Clock) Step() {
	for _, t := range c.funcs {
		if t.remaining <= 0 {
			t.callback()
			t.remaining = t.divider - 1
		} else {
			t.remaining--
		}
	}
}

// Start runs batches of yieldInterval steps, yielding for yieldDelay
// between batches, until Stop is called or ctx is done. The batch
// boundary is the only suspension point; nothing yields mid-batch.
func (c *Clock) Start(ctx context.Context, yieldInterval int, yieldDelay time.Duration) {
	c.running = true
	for c.running {
		select {
		case <-ctx.Done():
			return
		default:
		}

		for i := 0; i < yieldInterval; i++ {
			c.Step()
		}

		select {
		case <-ctx.Done():
			return
		case <-time.After(yieldDelay):
		}
	}
}

// Stop requests that Start return at the next batch boundary.
func (c *Clock) Stop() {
	c.running = false
}
