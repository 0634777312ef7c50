package core

import "errors"

// Sentinel errors shared by the grid and the simulation controller. All of
// them are recoverable: the offending call is refused and prior state is left
// intact. Callers match with errors.Is.
var (
	// ErrInvalidSize reports a requested grid size below 1.
	ErrInvalidSize = errors.New("invalid grid size")
	// ErrOutOfBounds reports a coordinate outside [0, size).
	ErrOutOfBounds = errors.New("coordinate out of bounds")
	// ErrInvalidState reports an operation not permitted in the current
	// simulation state, such as toggling a cell while running.
	ErrInvalidState = errors.New("invalid simulation state")
	// ErrAlreadyRunning reports a Start call on a running simulation.
	ErrAlreadyRunning = errors.New("simulation already running")
)
