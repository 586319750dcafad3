// Package config provides YAML-based configuration loading and rule presets
// for the 2048 game.
package config

import (
	"time"

	"github.com/vovakirdan/swap2048/internal/games/t2048"
)

// Config contains all configuration for a t2048 install.
type Config struct {
	Game      GameConfig      `yaml:"game"`
	Storage   StorageConfig   `yaml:"storage"`
	Animation AnimationConfig `yaml:"animation"`
}

// GameConfig defines the rules parameters of a session.
type GameConfig struct {
	GridSize           int     `yaml:"grid_size"`
	NewTileProbability float64 `yaml:"new_tile_probability"` // Chance a spawned tile is a 2
	MaxUndoMoves       int     `yaml:"max_undo_moves"`
	SwapBudget         int     `yaml:"swap_budget"`
}

// StorageConfig defines where scores and the best score live.
type StorageConfig struct {
	DBPath    string `yaml:"db_path"`    // SQLite file; empty means ~/.t2048/scores.db
	RedisAddr string `yaml:"redis_addr"` // Shared best score; empty disables Redis
	RedisKey  string `yaml:"redis_key"`
}

// AnimationConfig defines the shell's slide and spawn timing.
type AnimationConfig struct {
	Enabled    bool          `yaml:"enabled"`
	Slide      time.Duration `yaml:"slide"`       // Slide animation length
	SpawnDelay time.Duration `yaml:"spawn_delay"` // Pause after the slide before the new tile appears
}

// ToGame converts the game section into session rules.
func (c Config) ToGame() t2048.Config {
	return t2048.Config{
		GridSize:           c.Game.GridSize,
		NewTileProbability: c.Game.NewTileProbability,
		MaxUndoMoves:       c.Game.MaxUndoMoves,
		InitialSwapBudget:  c.Game.SwapBudget,
	}
}

// SettleDelay is the total time between a slide and its spawn.
func (a AnimationConfig) SettleDelay() time.Duration {
	if !a.Enabled {
		return 0
	}
	return a.Slide + a.SpawnDelay
}
