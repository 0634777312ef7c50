package sim

import (
	"fmt"
	"sync"
	"time"

	"github.com/FedExRU/life-the-game/internal/core"
)

// State identifies the controller lifecycle phase.
type State int

const (
	// Idle means no grid has been generated yet.
	Idle State = iota
	// Stopped means ticking is halted and cells are externally editable.
	Stopped
	// Running means the periodic ticker is driving generations and cells
	// are read-only to collaborators.
	Running
)

// String returns the lifecycle phase name.
func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Stopped:
		return "stopped"
	case Running:
		return "running"
	default:
		return "unknown"
	}
}

// DefaultInterval is the tick period used when none is configured.
const DefaultInterval = time.Second

// Snapshot is the read model published to frontends: an independent copy of
// the cell states plus the observability counters. Frontends never mutate
// the simulation through it.
type Snapshot struct {
	Size       int
	Cells      []uint8
	State      State
	Generation uint64
	Elapsed    time.Duration
}

// Controller owns the grid and its lifecycle. It is the sole mutator while
// Running: external edits are refused in that state, and the single tick
// goroutine serializes generation advances so each one is computed from a
// fully settled predecessor.
type Controller struct {
	mu         sync.Mutex
	state      State
	grid       *core.Grid
	generation uint64
	elapsed    time.Duration
	interval   time.Duration
	rng        *core.RNG
	notify     func(Snapshot)

	stopCh chan struct{}
	doneCh chan struct{}
}

// New constructs an Idle controller ticking at the given interval once
// started. Non-positive intervals fall back to DefaultInterval.
func New(interval time.Duration, seed int64) *Controller {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Controller{interval: interval, rng: core.NewRNG(seed)}
}

// SetNotify registers a callback invoked after every published change:
// generation advances, cell edits, randomize, reset and generate. The
// callback runs outside the controller lock and must not call back into
// mutating operations.
func (c *Controller) SetNotify(fn func(Snapshot)) {
	c.mu.Lock()
	c.notify = fn
	c.mu.Unlock()
}

// SetInterval changes the tick period for subsequent Start calls.
func (c *Controller) SetInterval(d time.Duration) {
	if d <= 0 {
		return
	}
	c.mu.Lock()
	c.interval = d
	c.mu.Unlock()
}

// Reseed replaces the randomize RNG, so a later Randomize reproduces a
// known board.
func (c *Controller) Reseed(seed int64) {
	c.mu.Lock()
	c.rng = core.NewRNG(seed)
	c.mu.Unlock()
}

// State returns the current lifecycle phase.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Generate discards any prior grid and installs a fresh all-dead size×size
// grid, moving the controller to Stopped. Invalid sizes are refused with
// ErrInvalidSize and the prior grid is left untouched. Refused with
// ErrInvalidState while Running.
func (c *Controller) Generate(size int) error {
	c.mu.Lock()
	if c.state == Running {
		c.mu.Unlock()
		return fmt.Errorf("%w: cannot generate while running", core.ErrInvalidState)
	}
	grid, err := core.NewGrid(size)
	if err != nil {
		c.mu.Unlock()
		return err
	}
	c.grid = grid
	c.generation = 0
	c.elapsed = 0
	c.state = Stopped
	c.publishAndUnlock()
	return nil
}

// Toggle flips one cell. Valid only while Stopped.
func (c *Controller) Toggle(x, y int) error {
	c.mu.Lock()
	if err := c.editableLocked(); err != nil {
		c.mu.Unlock()
		return err
	}
	if err := c.grid.Toggle(x, y); err != nil {
		c.mu.Unlock()
		return err
	}
	c.publishAndUnlock()
	return nil
}

// Set assigns one cell's alive flag. Valid only while Stopped.
func (c *Controller) Set(x, y int, alive bool) error {
	c.mu.Lock()
	if err := c.editableLocked(); err != nil {
		c.mu.Unlock()
		return err
	}
	if err := c.grid.Set(x, y, alive); err != nil {
		c.mu.Unlock()
		return err
	}
	c.publishAndUnlock()
	return nil
}

// Randomize sets every cell alive with probability 0.5, independently.
// Valid only while Stopped.
func (c *Controller) Randomize() error {
	c.mu.Lock()
	if err := c.editableLocked(); err != nil {
		c.mu.Unlock()
		return err
	}
	core.FillBinary(c.rng.Source(), c.grid.Cells())
	c.generation = 0
	c.publishAndUnlock()
	return nil
}

// Reset kills every cell. Valid only while Stopped.
func (c *Controller) Reset() error {
	c.mu.Lock()
	if err := c.editableLocked(); err != nil {
		c.mu.Unlock()
		return err
	}
	c.grid.Clear()
	c.generation = 0
	c.elapsed = 0
	c.publishAndUnlock()
	return nil
}

// Start launches the periodic ticker. Returns ErrInvalidState when no grid
// has been generated and ErrAlreadyRunning when already Running; a second
// driver is an error rather than a no-op so the caller bug surfaces.
func (c *Controller) Start() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	switch c.state {
	case Idle:
		return fmt.Errorf("%w: no grid generated", core.ErrInvalidState)
	case Running:
		return core.ErrAlreadyRunning
	}
	c.stopCh = make(chan struct{})
	c.doneCh = make(chan struct{})
	c.state = Running
	go c.run(c.interval, c.stopCh, c.doneCh)
	return nil
}

// Stop halts the ticker and joins its goroutine before returning, so no
// tick can land afterwards. No-op when not Running.
func (c *Controller) Stop() {
	c.mu.Lock()
	if c.state != Running {
		c.mu.Unlock()
		return
	}
	c.state = Stopped
	stopCh, doneCh := c.stopCh, c.doneCh
	c.stopCh, c.doneCh = nil, nil
	c.mu.Unlock()
	close(stopCh)
	<-doneCh
}

// Step advances exactly one generation and publishes the result. Valid in
// Stopped and Running; in the latter it is serialized with the ticker by
// the controller lock.
func (c *Controller) Step() error {
	c.mu.Lock()
	if c.state == Idle {
		c.mu.Unlock()
		return fmt.Errorf("%w: no grid generated", core.ErrInvalidState)
	}
	c.advanceLocked()
	c.publishAndUnlock()
	return nil
}

// Snapshot returns a copy of the current read model.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

// LastElapsed returns the compute time of the most recent advance.
func (c *Controller) LastElapsed() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.elapsed
}

// Size returns the current grid side length, 0 while Idle.
func (c *Controller) Size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.grid == nil {
		return 0
	}
	return c.grid.Size()
}

func (c *Controller) run(interval time.Duration, stopCh, doneCh chan struct{}) {
	defer close(doneCh)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-stopCh:
			return
		case <-ticker.C:
			c.tick()
		}
	}
}

// tick applies one timer-driven generation. A tick that fires while Stop is
// underway finds state != Running and applies nothing.
func (c *Controller) tick() {
	c.mu.Lock()
	if c.state != Running {
		c.mu.Unlock()
		return
	}
	c.advanceLocked()
	c.publishAndUnlock()
}

func (c *Controller) advanceLocked() {
	res := core.Advance(c.grid)
	c.grid = res.Grid
	c.elapsed = res.Elapsed
	c.generation++
}

// editableLocked guards the mutation operations: cells are writable only in
// the Stopped phase.
func (c *Controller) editableLocked() error {
	switch c.state {
	case Running:
		return fmt.Errorf("%w: cells are read-only while running", core.ErrInvalidState)
	case Idle:
		return fmt.Errorf("%w: no grid generated", core.ErrInvalidState)
	}
	return nil
}

func (c *Controller) snapshotLocked() Snapshot {
	snap := Snapshot{
		State:      c.state,
		Generation: c.generation,
		Elapsed:    c.elapsed,
	}
	if c.grid != nil {
		snap.Size = c.grid.Size()
		snap.Cells = make([]uint8, len(c.grid.Cells()))
		copy(snap.Cells, c.grid.Cells())
	}
	return snap
}

// publishAndUnlock releases the lock and fires the notify callback with a
// snapshot taken under it. Callers must hold the lock and must not touch
// controller state afterwards.
func (c *Controller) publishAndUnlock() {
	fn := c.notify
	var snap Snapshot
	if fn != nil {
		snap = c.snapshotLocked()
	}
	c.mu.Unlock()
	if fn != nil {
		fn(snap)
	}
}
