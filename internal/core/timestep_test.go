package core

import (
	"testing"
	"time"
)

func TestAccumulatorStepsOnNegativeCountdown(t *testing.T) {
	acc := NewAccumulator(70 * time.Millisecond)

	// Fresh accumulator steps on the first elapsed frame.
	if steps := acc.Advance(time.Millisecond); steps != 1 {
		t.Fatalf("Expected 1 step on the first frame, got %d", steps)
	}

	// Countdown is now 69ms; frames of 16ms step on the 5th.
	for i := 0; i < 4; i++ {
		if steps := acc.Advance(16 * time.Millisecond); steps != 0 {
			t.Fatalf("Expected no step within the delay, got %d at frame %d", steps, i)
		}
	}
	if steps := acc.Advance(16 * time.Millisecond); steps != 1 {
		t.Errorf("Expected a step once the countdown goes negative, got %d", steps)
	}
}

func TestAccumulatorMultipleStepsPerFrame(t *testing.T) {
	acc := NewAccumulator(4 * time.Millisecond)

	// 16ms frame: countdown 0 -> -16000, replenished four times to 0.
	if steps := acc.Advance(16 * time.Millisecond); steps != 4 {
		t.Errorf("Expected 4 steps, got %d", steps)
	}
	// Countdown sits at exactly 0, so nothing is due without elapsed time.
	if steps := acc.Advance(0); steps != 0 {
		t.Errorf("Expected 0 steps, got %d", steps)
	}
}

func TestAccumulatorCapsCatchUp(t *testing.T) {
	acc := NewAccumulator(time.Millisecond)

	if steps := acc.Advance(time.Minute); steps != MaxStepsPerFrame {
		t.Errorf("Expected %d steps after a stall, got %d", MaxStepsPerFrame, steps)
	}
	// Dropped debt must not spill into the next frame.
	if steps := acc.Advance(0); steps != 0 {
		t.Errorf("Expected stall debt to be dropped, got %d steps", steps)
	}
}

func TestAccumulatorZeroElapsed(t *testing.T) {
	acc := NewAccumulator(time.Millisecond)
	if steps := acc.Advance(0); steps != 0 {
		t.Error("No time elapsed should not step a fresh accumulator")
	}
	if acc.delay != time.Millisecond.Microseconds() {
		t.Errorf("delay = %dus, expected 1000us", acc.delay)
	}
}

func TestAccumulatorReset(t *testing.T) {
	acc := NewAccumulator(70 * time.Millisecond)
	acc.Advance(time.Millisecond)

	acc.Reset()
	if steps := acc.Advance(time.Millisecond); steps != 1 {
		t.Errorf("Expected a step right after Reset, got %d", steps)
	}
}
