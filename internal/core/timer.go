package core

import "time"

// FixedStep is a scheduler polled from a frame loop. It fires its tick at
// most once per Poll whenever a full interval has accumulated, so ticks run
// on the caller's goroutine.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	armed       bool
	tick        func()

	now func() time.Time
}

// NewFixedStep constructs an unarmed FixedStep using the wall clock.
func NewFixedStep() *FixedStep {
	return &FixedStep{now: time.Now}
}

// Start arms the scheduler. The first tick fires one interval after the next
// Poll.
func (f *FixedStep) Start(interval time.Duration, tick func()) {
	if interval <= 0 {
		interval = time.Second / 60
	}
	f.step = interval
	f.accumulator = 0
	f.last = time.Time{}
	f.tick = tick
	f.armed = true
}

// Stop disarms the scheduler.
func (f *FixedStep) Stop() {
	f.armed = false
	f.tick = nil
	f.accumulator = 0
}

// Armed reports whether Start is in effect.
func (f *FixedStep) Armed() bool { return f.armed }

// Poll advances the clock and runs the tick if it is due. It reports whether
// a tick ran.
func (f *FixedStep) Poll() bool {
	if !f.armed || !f.shouldStep() {
		return false
	}
	tick := f.tick
	tick()
	return true
}

func (f *FixedStep) shouldStep() bool {
	now := f.now()
	if f.last.IsZero() {
		f.last = now
	}
	delta := now.Sub(f.last)
	f.last = now
	f.accumulator += delta
	if f.accumulator >= f.step {
		f.accumulator -= f.step
		// Drop backlog after a stall instead of bursting.
		if f.accumulator > f.step {
			f.accumulator = 0
		}
		return true
	}
	return false
}
