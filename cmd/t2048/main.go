// t2048 is the 2048 sliding tile puzzle with undo and tile swaps, played in
// the terminal or over SSH.
//
// Usage:
//
//	t2048 play               - Play a game (preset picker unless --preset)
//	t2048 serve              - Start SSH server for remote play
//	t2048 scores             - Show high scores and recent games
//	t2048 presets            - List rule presets
//	t2048 config             - Print the effective configuration
//
// Global flags:
//
//	--config <path> - Config YAML (default: ~/.t2048/config.yaml, ./configs/t2048.yaml)
//	--db <path>     - Database path (default: ~/.t2048/scores.db)
//	--seed <value>  - RNG seed for reproducible games
//	--fps <rate>    - Animation tick rate (default: 60)
//
// A .env file in the working directory is loaded before flags are applied;
// see config.ApplyEnv for the T2048_* variables it may set.
package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig string
	flagDBPath string
	flagSeed   int64
	flagFPS    int
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "t2048",
	Short: "2048 with undo and tile swaps in your terminal",
	Long: `t2048 is the sliding tile puzzle 2048 with two extra powers:
undo the last move, and swap any two tiles a limited number of times.

Available commands:
  play     - Play a game
  serve    - Start SSH server for remote play
  scores   - View high scores
  presets  - List rule presets
  config   - Print the effective configuration

Examples:
  t2048 play
  t2048 play --preset big
  t2048 serve --ssh :2222
  t2048 scores --limit 20`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("loading .env: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to scores database (default ~/.t2048/scores.db)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Animation tick rate (frames per second)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(presetsCmd)
	rootCmd.AddCommand(configCmd)
}
