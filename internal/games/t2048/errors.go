package t2048

import "errors"

var (
	// ErrOutOfBounds is returned when a grid position lies outside [0, size).
	// It indicates a caller bug and never results from a session command.
	ErrOutOfBounds = errors.New("t2048: position out of bounds")

	// ErrInvalidSelection is returned when a swap names a tile that is not on the grid.
	ErrInvalidSelection = errors.New("t2048: tile not on grid")

	// ErrUnavailable is returned when a command is rejected because the session
	// is resolving a move or the relevant budget is exhausted.
	// Rejected commands never change session state.
	ErrUnavailable = errors.New("t2048: command unavailable")

	// ErrInvalidConfig is returned by Config.Validate.
	ErrInvalidConfig = errors.New("t2048: invalid config")
)
