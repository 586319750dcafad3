package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

var flagLimit int

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the top scores, the best score and overall statistics.

The best score includes the shared Redis best score when
storage.redis_addr (or T2048_REDIS_ADDR) is set.

Examples:
  t2048 scores
  t2048 scores --limit 25`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of scores to show")
}

func runScores(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig("")
	if err != nil {
		return err
	}

	logger := newLogger(cmd.ErrOrStderr(), "t2048", defaultLogLevel)
	st := openStores(cmd.Context(), cfg, logger)
	defer st.Close()

	if st.db == nil {
		return fmt.Errorf("no scores database at %s", cfg.Storage.DBPath)
	}

	scores, err := st.db.TopScores(flagLimit)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "High Scores - 2048")
	fmt.Fprintln(out)

	if len(scores) == 0 {
		fmt.Fprintln(out, "No scores recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Play 't2048 play' to set the first high score!")
		return nil
	}

	fmt.Fprintf(out, "  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Fprintf(out, "  %-4s  %-10s  %s\n", "----", "-----", "----")
	for i, entry := range scores {
		fmt.Fprintf(out, "  %-4d  %-10d  %s\n", i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Fprintln(out)
	fmt.Fprintf(out, "Best: %d\n", st.bestScore())
	printStats(out, st)
	return nil
}

func printStats(out io.Writer, st *stores) {
	stats, err := st.db.Stats()
	if err != nil || stats.GamesCount == 0 {
		return
	}
	fmt.Fprintf(out, "Games: %d  Average: %.0f  Moves: %d  Last played: %s\n",
		stats.GamesCount, stats.AvgScore, stats.TotalMoves, stats.LastPlayed.Format("2006-01-02 15:04"))
}
