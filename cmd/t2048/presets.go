package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/swap2048/internal/config"
)

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List rule presets",
	Long:  `Shows the rule presets accepted by --preset, applied over the loaded config.`,
	Args:  cobra.NoArgs,
	RunE:  runPresets,
}

func runPresets(cmd *cobra.Command, _ []string) error {
	base, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Available presets:")
	fmt.Fprintln(out)
	fmt.Fprintf(out, "  %-8s  %-5s  %-6s  %-5s  %s\n", "Preset", "Board", "Undos", "Swaps", "P(2)")
	fmt.Fprintf(out, "  %-8s  %-5s  %-6s  %-5s  %s\n", "------", "-----", "-----", "-----", "----")

	for _, p := range config.Presets {
		c := base
		if err := config.ApplyPreset(&c, p); err != nil {
			return err
		}
		board := fmt.Sprintf("%dx%d", c.Game.GridSize, c.Game.GridSize)
		fmt.Fprintf(out, "  %-8s  %-5s  %-6d  %-5d  %.2f\n",
			p, board, c.Game.MaxUndoMoves, c.Game.SwapBudget, c.Game.NewTileProbability)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Run 't2048 play --preset <name>' to play one.")
	return nil
}
