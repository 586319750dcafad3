package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/t2048.yaml
var defaultYAML []byte

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return Config{
		Game: GameConfig{
			GridSize:           4,
			NewTileProbability: 0.9,
			MaxUndoMoves:       5,
			SwapBudget:         3,
		},
		Storage: StorageConfig{
			RedisKey: "t2048:best-score",
		},
		Animation: AnimationConfig{
			Enabled:    true,
			Slide:      120 * time.Millisecond,
			SpawnDelay: 50 * time.Millisecond,
		},
	}
}
