package config

import "fmt"

// Preset represents a named rules variant.
type Preset string

const (
	PresetClassic Preset = "classic"
	PresetRelaxed Preset = "relaxed"
	PresetHard    Preset = "hard"
	PresetBig     Preset = "big"
)

// Presets lists the known presets in display order.
var Presets = []Preset{PresetClassic, PresetRelaxed, PresetHard, PresetBig}

// ApplyPreset modifies the game section based on a preset.
// An empty preset leaves the config untouched.
func ApplyPreset(cfg *Config, preset Preset) error {
	switch preset {
	case "":
		return nil
	case PresetClassic:
		cfg.Game.GridSize = 4
		cfg.Game.NewTileProbability = 0.9
		cfg.Game.MaxUndoMoves = 5
		cfg.Game.SwapBudget = 3
	case PresetRelaxed:
		cfg.Game.GridSize = 4
		cfg.Game.NewTileProbability = 0.95
		cfg.Game.MaxUndoMoves = 20
		cfg.Game.SwapBudget = 10
	case PresetHard:
		cfg.Game.GridSize = 4
		cfg.Game.NewTileProbability = 0.75
		cfg.Game.MaxUndoMoves = 1
		cfg.Game.SwapBudget = 0
	case PresetBig:
		cfg.Game.GridSize = 6
		cfg.Game.NewTileProbability = 0.9
		cfg.Game.MaxUndoMoves = 5
		cfg.Game.SwapBudget = 5
	default:
		return fmt.Errorf("unknown preset %q", preset)
	}
	return nil
}
