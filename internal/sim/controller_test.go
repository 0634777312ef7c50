package sim

import (
	"bytes"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/FedExRU/life-the-game/internal/core"
)

// newStopped returns a controller with a generated grid, in the Stopped
// phase. The hour-long interval keeps timer ticks out of tests that start
// the controller but need deterministic state.
func newStopped(t *testing.T, size int) *Controller {
	t.Helper()
	c := New(time.Hour, 1)
	if err := c.Generate(size); err != nil {
		t.Fatalf("Generate(%d): %v", size, err)
	}
	return c
}

func TestInitialStateIsIdle(t *testing.T) {
	c := New(0, 1)
	if c.State() != Idle {
		t.Fatalf("state = %v, want idle", c.State())
	}
	if c.Size() != 0 {
		t.Fatalf("Size() = %d before any grid, want 0", c.Size())
	}
}

func TestOperationsRequireAGrid(t *testing.T) {
	c := New(0, 1)
	if err := c.Start(); !errors.Is(err, core.ErrInvalidState) {
		t.Errorf("Start in idle: err = %v, want ErrInvalidState", err)
	}
	if err := c.Step(); !errors.Is(err, core.ErrInvalidState) {
		t.Errorf("Step in idle: err = %v, want ErrInvalidState", err)
	}
	if err := c.Toggle(0, 0); !errors.Is(err, core.ErrInvalidState) {
		t.Errorf("Toggle in idle: err = %v, want ErrInvalidState", err)
	}
	if err := c.Randomize(); !errors.Is(err, core.ErrInvalidState) {
		t.Errorf("Randomize in idle: err = %v, want ErrInvalidState", err)
	}
	if err := c.Reset(); !errors.Is(err, core.ErrInvalidState) {
		t.Errorf("Reset in idle: err = %v, want ErrInvalidState", err)
	}
	// Stop in idle is a no-op, like in stopped.
	c.Stop()
	if c.State() != Idle {
		t.Fatalf("state after Stop in idle = %v, want idle", c.State())
	}
}

func TestGenerateRejectsInvalidSizeAndKeepsPriorGrid(t *testing.T) {
	c := newStopped(t, 4)
	if err := c.Toggle(1, 1); err != nil {
		t.Fatalf("Toggle: %v", err)
	}
	before := c.Snapshot()

	for _, size := range []int{0, -1} {
		if err := c.Generate(size); !errors.Is(err, core.ErrInvalidSize) {
			t.Errorf("Generate(%d): err = %v, want ErrInvalidSize", size, err)
		}
	}

	after := c.Snapshot()
	if after.Size != before.Size || !bytes.Equal(after.Cells, before.Cells) {
		t.Fatal("failed Generate changed the prior grid")
	}
}

func TestGenerateReplacesGrid(t *testing.T) {
	c := newStopped(t, 4)
	c.Toggle(0, 0)
	if err := c.Generate(6); err != nil {
		t.Fatalf("Generate(6): %v", err)
	}
	snap := c.Snapshot()
	if snap.Size != 6 {
		t.Fatalf("size = %d, want 6", snap.Size)
	}
	for i, cell := range snap.Cells {
		if cell != 0 {
			t.Fatalf("cell %d alive in a freshly generated grid", i)
		}
	}
	if snap.Generation != 0 {
		t.Fatalf("generation = %d after Generate, want 0", snap.Generation)
	}
}

func TestStartWhileRunningIsAnError(t *testing.T) {
	c := newStopped(t, 4)
	if err := c.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	defer c.Stop()

	if err := c.Start(); !errors.Is(err, core.ErrAlreadyRunning) {
		t.Fatalf("second Start: err = %v, want ErrAlreadyRunning", err)
	}
	if c.State() != Running {
		t.Fatalf("state = %v after rejected Start, want running", c.State())
	}
}

func TestMutationsRejectedWhileRunning(t *testing.T) {
	c := newStopped(t, 5)
	c.Toggle(2, 2)
	if err := c.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	defer c.Stop()
	before := c.Snapshot()

	if err := c.Toggle(0, 0); !errors.Is(err, core.ErrInvalidState) {
		t.Errorf("Toggle while running: err = %v, want ErrInvalidState", err)
	}
	if err := c.Set(0, 0, true); !errors.Is(err, core.ErrInvalidState) {
		t.Errorf("Set while running: err = %v, want ErrInvalidState", err)
	}
	if err := c.Randomize(); !errors.Is(err, core.ErrInvalidState) {
		t.Errorf("Randomize while running: err = %v, want ErrInvalidState", err)
	}
	if err := c.Reset(); !errors.Is(err, core.ErrInvalidState) {
		t.Errorf("Reset while running: err = %v, want ErrInvalidState", err)
	}
	if err := c.Generate(3); !errors.Is(err, core.ErrInvalidState) {
		t.Errorf("Generate while running: err = %v, want ErrInvalidState", err)
	}

	after := c.Snapshot()
	if !bytes.Equal(after.Cells, before.Cells) {
		t.Fatal("rejected mutation changed the grid")
	}
}

func TestStopJoinsTicker(t *testing.T) {
	c := New(5*time.Millisecond, 1)
	if err := c.Generate(8); err != nil {
		t.Fatalf("Generate: %v", err)
	}
	c.Randomize()
	if err := c.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	time.Sleep(30 * time.Millisecond)
	c.Stop()

	after := c.Snapshot()
	if after.State != Stopped {
		t.Fatalf("state = %v after Stop, want stopped", after.State)
	}
	time.Sleep(30 * time.Millisecond)
	later := c.Snapshot()
	if later.Generation != after.Generation {
		t.Fatalf("generation advanced from %d to %d after Stop returned",
			after.Generation, later.Generation)
	}
	if !bytes.Equal(later.Cells, after.Cells) {
		t.Fatal("grid changed after Stop returned")
	}

	// Stop when already stopped is a no-op.
	c.Stop()
	if c.State() != Stopped {
		t.Fatalf("state = %v after second Stop, want stopped", c.State())
	}
}

func TestStepAdvancesOneGeneration(t *testing.T) {
	c := newStopped(t, 5)
	// Horizontal blinker through the controller's own edit surface.
	for _, cell := range [][2]int{{1, 2}, {2, 2}, {3, 2}} {
		if err := c.Set(cell[0], cell[1], true); err != nil {
			t.Fatalf("Set: %v", err)
		}
	}

	if err := c.Step(); err != nil {
		t.Fatalf("Step: %v", err)
	}
	snap := c.Snapshot()
	if snap.Generation != 1 {
		t.Fatalf("generation = %d after one Step, want 1", snap.Generation)
	}
	vertical := [][2]int{{2, 1}, {2, 2}, {2, 3}}
	want := make([]uint8, 25)
	for _, cell := range vertical {
		want[cell[1]*5+cell[0]] = 1
	}
	if !bytes.Equal(snap.Cells, want) {
		t.Fatal("blinker did not rotate to vertical after Step")
	}

	if err := c.Step(); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if c.Snapshot().Generation != 2 {
		t.Fatal("second Step did not advance the generation counter")
	}
}

func TestStepAllowedWhileRunning(t *testing.T) {
	c := newStopped(t, 4)
	if err := c.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	defer c.Stop()

	if err := c.Step(); err != nil {
		t.Fatalf("Step while running: %v", err)
	}
	if c.Snapshot().Generation != 1 {
		t.Fatal("Step while running did not advance the generation")
	}
}

func TestRandomizeIsDeterministicPerSeed(t *testing.T) {
	a := New(0, 99)
	b := New(0, 99)
	for _, c := range []*Controller{a, b} {
		if err := c.Generate(16); err != nil {
			t.Fatalf("Generate: %v", err)
		}
		if err := c.Randomize(); err != nil {
			t.Fatalf("Randomize: %v", err)
		}
	}
	if !bytes.Equal(a.Snapshot().Cells, b.Snapshot().Cells) {
		t.Fatal("same seed produced different boards")
	}

	other := New(0, 100)
	other.Generate(16)
	other.Randomize()
	if bytes.Equal(a.Snapshot().Cells, other.Snapshot().Cells) {
		t.Fatal("different seeds produced identical 16×16 boards")
	}
}

func TestResetKillsEveryCell(t *testing.T) {
	c := newStopped(t, 6)
	c.Randomize()
	if err := c.Reset(); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	snap := c.Snapshot()
	for i, cell := range snap.Cells {
		if cell != 0 {
			t.Fatalf("cell %d alive after Reset", i)
		}
	}
	if snap.Generation != 0 {
		t.Fatalf("generation = %d after Reset, want 0", snap.Generation)
	}
}

func TestNotifyPublishesChanges(t *testing.T) {
	c := newStopped(t, 4)
	var published atomic.Int32
	var last atomic.Value
	c.SetNotify(func(snap Snapshot) {
		published.Add(1)
		last.Store(snap)
	})

	c.Toggle(1, 1)
	c.Step()

	if got := published.Load(); got != 2 {
		t.Fatalf("published %d snapshots, want 2", got)
	}
	snap := last.Load().(Snapshot)
	if snap.Generation != 1 {
		t.Fatalf("last published generation = %d, want 1", snap.Generation)
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	c := newStopped(t, 3)
	snap := c.Snapshot()
	for i := range snap.Cells {
		snap.Cells[i] = 1
	}
	if c.Snapshot().Cells[0] != 0 {
		t.Fatal("writing a snapshot leaked into the controller grid")
	}
}

func TestStateString(t *testing.T) {
	tests := []struct {
		state State
		want  string
	}{
		{Idle, "idle"},
		{Stopped, "stopped"},
		{Running, "running"},
		{State(42), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.state.String(); got != tt.want {
			t.Errorf("State(%d).String() = %q, want %q", tt.state, got, tt.want)
		}
	}
}
