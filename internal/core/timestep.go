package core

import "time"

// MaxStepsPerFrame caps catch-up after a stalled frame; older debt is dropped.
const MaxStepsPerFrame = 32

// Accumulator converts variable frame times into fixed simulation steps.
// It counts down in microseconds; each time the countdown goes negative a
// step is due and the countdown is replenished by the configured delay.
type Accumulator struct {
	delay     int64 // microseconds
	countdown int64
}

// NewAccumulator creates an accumulator that yields one step per delay.
func NewAccumulator(delay time.Duration) *Accumulator {
	return &Accumulator{delay: max(delay.Microseconds(), 1)}
}

// Advance consumes elapsed wall-clock time and returns how many steps are due.
func (a *Accumulator) Advance(elapsed time.Duration) int {
	a.countdown -= elapsed.Microseconds()

	steps := 0
	for a.countdown < 0 && steps < MaxStepsPerFrame {
		a.countdown += a.delay
		steps++
	}
	if a.countdown < 0 {
		a.countdown = 0
	}
	return steps
}

// Reset clears any pending countdown.
func (a *Accumulator) Reset() {
	a.countdown = 0
}
