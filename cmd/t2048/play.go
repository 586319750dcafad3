package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/swap2048/internal/config"
	"github.com/vovakirdan/swap2048/internal/core"
	"github.com/vovakirdan/swap2048/internal/games/t2048"
	"github.com/vovakirdan/swap2048/internal/platform/tui"
)

var (
	flagPreset  string
	flagLogFile string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start playing 2048.

Without --preset a picker lists the rule presets; after each game you
return to it. With --preset the game starts directly.

Controls:
  Arrows/WASD/HJKL - Slide tiles (move the cursor in swap mode)
  U                - Undo the last move or swap
  X                - Toggle swap mode
  Enter/Space      - Pick the tile under the cursor (swap mode)
  N                - New game
  ?                - Show all keys
  Q/Ctrl+C         - Quit

Examples:
  t2048 play
  t2048 play --preset relaxed
  t2048 play --preset big --seed 42
  t2048 play --config ./my-2048.yaml --log-file /tmp/t2048.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagPreset, "preset", "", "Rule preset: classic, relaxed, hard, big")
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write debug logs to this file")
}

func runPlay(cmd *cobra.Command, _ []string) error {
	logger, logCloser, err := openLogFile(flagLogFile)
	if err != nil {
		return err
	}
	defer logCloser.Close()

	base, err := loadConfig("")
	if err != nil {
		return err
	}

	st := openStores(cmd.Context(), base, logger)
	defer st.Close()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}
	rt := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	opts := tui.Options{
		Runtime:   rt,
		Animation: base.Animation,
		Logger:    logger,
	}
	if st.db != nil {
		opts.Recorder = st.db
	}

	if flagPreset != "" {
		return playOnce(base, config.Preset(flagPreset), st, opts)
	}

	// Menu loop
	for {
		res, err := tui.RunMenu(base, st.bestScore(), opts.Runtime)
		if err != nil {
			return err
		}
		opts.Runtime = res.Config

		if res.Quit {
			return nil
		}

		if res.WantsScoreboard {
			var source tui.ScoreSource
			if st.db != nil {
				source = st.db
			}
			goBack, err := tui.RunScoreboard(source, st.bestScore(), opts.Runtime.ScreenW, opts.Runtime.ScreenH)
			if err != nil {
				return err
			}
			if !goBack {
				return nil
			}
			continue
		}

		if err := playOnce(base, res.Preset, st, opts); err != nil {
			return err
		}
	}
}

// playOnce runs one game session with preset applied over base.
func playOnce(base config.Config, preset config.Preset, st *stores, opts tui.Options) error {
	cfg := base
	if err := config.ApplyPreset(&cfg, preset); err != nil {
		return err
	}
	// Environment overrides win over the preset.
	if err := config.ApplyEnv(&cfg, os.LookupEnv); err != nil {
		return err
	}

	session, err := t2048.NewSession(cfg.ToGame(), st.sessionOptions(opts.Logger)...)
	if err != nil {
		return fmt.Errorf("starting game: %w", err)
	}
	opts.Logger.Info("game started", "id", session.GameID(), "preset", preset, "size", cfg.Game.GridSize)

	return tui.Run(session, opts)
}
