package core

import "time"

// FixedStep paces a polling loop at a steady rate, accumulating real elapsed
// time and releasing one step per period. The terminal frontend uses it to
// decouple redraw cadence from the event loop frequency.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
}

// NewFixedStep constructs a FixedStep releasing rate steps per second.
func NewFixedStep(rate int) *FixedStep {
	if rate <= 0 {
		rate = 30
	}
	fs := &FixedStep{}
	fs.SetRate(rate)
	fs.accumulator = fs.step
	return fs
}

// SetRate changes the steps-per-second rate. Safe to call from the loop that
// polls ShouldStep.
func (f *FixedStep) SetRate(rate int) {
	if rate <= 0 {
		rate = 30
	}
	f.step = time.Second / time.Duration(rate)
}

// ShouldStep reports whether a full period has accumulated since the last
// released step.
func (f *FixedStep) ShouldStep() bool {
	now := time.Now()
	if f.last.IsZero() {
		f.last = now
	}
	delta := now.Sub(f.last)
	f.last = now
	f.accumulator += delta
	if f.accumulator >= f.step {
		f.accumulator -= f.step
		return true
	}
	return false
}
