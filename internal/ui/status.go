package ui

import (
	"fmt"

	"github.com/FedExRU/life-the-game/internal/sim"
)

// StatusLine formats the read model for the one-line HUD shared by the GUI
// and terminal frontends, e.g. "running · gen 42 · 3 ms · pop 151".
func StatusLine(snap sim.Snapshot) string {
	pop := 0
	for _, c := range snap.Cells {
		if c != 0 {
			pop++
		}
	}
	return fmt.Sprintf("%s · gen %d · %d ms · pop %d",
		snap.State, snap.Generation, snap.Elapsed.Milliseconds(), pop)
}
