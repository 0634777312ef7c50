package core

import "testing"

func TestFixedStepReleasesFirstStepImmediately(t *testing.T) {
	// The accumulator is primed with a full period, so the first poll after
	// construction always releases a step.
	fs := NewFixedStep(1)
	if !fs.ShouldStep() {
		t.Fatal("first poll should release a step")
	}
	if fs.ShouldStep() {
		t.Fatal("second poll inside the same period should not release a step")
	}
}

func TestFixedStepRejectsNonPositiveRate(t *testing.T) {
	fs := NewFixedStep(0)
	if fs.step <= 0 {
		t.Fatalf("step = %v after rate 0, want a positive fallback", fs.step)
	}
	fs.SetRate(-5)
	if fs.step <= 0 {
		t.Fatalf("step = %v after SetRate(-5), want a positive fallback", fs.step)
	}
}
