package ui

import (
	"testing"
	"time"

	"github.com/FedExRU/life-the-game/internal/sim"
)

func TestStatusLine(t *testing.T) {
	snap := sim.Snapshot{
		Size:       3,
		Cells:      []uint8{0, 1, 0, 1, 0, 0, 0, 0, 1},
		State:      sim.Running,
		Generation: 42,
		Elapsed:    3 * time.Millisecond,
	}
	want := "running · gen 42 · 3 ms · pop 3"
	if got := StatusLine(snap); got != want {
		t.Fatalf("StatusLine = %q, want %q", got, want)
	}
}

func TestStatusLineIdle(t *testing.T) {
	want := "idle · gen 0 · 0 ms · pop 0"
	if got := StatusLine(sim.Snapshot{}); got != want {
		t.Fatalf("StatusLine = %q, want %q", got, want)
	}
}
