package t2048

import "fmt"

// Config holds the per-session rules parameters.
type Config struct {
	GridSize           int     // Board dimension N (N×N)
	NewTileProbability float64 // Probability a spawned tile is a 2 (otherwise 4)
	MaxUndoMoves       int     // Undos allowed per game
	InitialSwapBudget  int     // Swaps allowed per game
}

// DefaultConfig returns the classic 4×4 rules with 5 undos and 3 swaps.
func DefaultConfig() Config {
	return Config{
		GridSize:           DefaultGridSize,
		NewTileProbability: DefaultNewTileProbability,
		MaxUndoMoves:       5,
		InitialSwapBudget:  3,
	}
}

// Validate checks the config ranges.
func (c Config) Validate() error {
	if c.GridSize < 2 {
		return fmt.Errorf("%w: grid size %d, need at least 2", ErrInvalidConfig, c.GridSize)
	}
	if c.NewTileProbability < 0 || c.NewTileProbability > 1 {
		return fmt.Errorf("%w: new tile probability %v outside [0,1]", ErrInvalidConfig, c.NewTileProbability)
	}
	if c.MaxUndoMoves < 0 {
		return fmt.Errorf("%w: negative undo budget %d", ErrInvalidConfig, c.MaxUndoMoves)
	}
	if c.InitialSwapBudget < 0 {
		return fmt.Errorf("%w: negative swap budget %d", ErrInvalidConfig, c.InitialSwapBudget)
	}
	return nil
}
