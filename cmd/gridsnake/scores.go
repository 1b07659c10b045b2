package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gridsnake/internal/registry"
	"github.com/vovakirdan/gridsnake/internal/storage"
)

var (
	flagScoresClear bool
	flagScoresLimit int
)

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show high scores for a ruleset",
	Long: `Display the best runs for the specified ruleset, or a summary of
every ruleset that has recorded runs.

Examples:
  gridsnake scores
  gridsnake scores snake
  gridsnake scores snake --limit 25
  gridsnake scores snake_classic --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all stored runs for the ruleset")
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
}

func runScores(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if len(args) == 0 {
		return printSummary(out, store)
	}

	gameID := args[0]
	game, err := createGame(gameID)
	if err != nil {
		return err
	}

	if flagScoresClear {
		if err := store.ClearScores(gameID); err != nil {
			return err
		}
		fmt.Fprintf(out, "Cleared all runs for %s.\n", game.Title())
		return nil
	}

	runs, err := store.TopScores(gameID, flagScoresLimit)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "High Scores - %s\n", game.Title())
	fmt.Fprintln(out)

	if len(runs) == 0 {
		fmt.Fprintln(out, "No runs recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Play 'gridsnake play %s' to set the first high score!\n", gameID)
		return nil
	}

	fmt.Fprintf(out, "  %-4s  %-6s  %-8s  %-7s  %s\n", "Rank", "Length", "Ticks", "Enemies", "Date")
	fmt.Fprintf(out, "  %-4s  %-6s  %-8s  %-7s  %s\n", "----", "------", "-----", "-------", "----")
	for i, r := range runs {
		fmt.Fprintf(out, "  %-4d  %-6d  %-8d  %-7d  %s\n",
			i+1, r.Score, r.Ticks, r.Enemies, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.GetGameStats(gameID)
	if err != nil {
		return err
	}
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Best: %d  Runs: %d  Average: %.1f\n", stats.HighScore, stats.RunsCount, stats.AvgScore)
	return nil
}

// printSummary lists every ruleset that has recorded runs.
func printSummary(out io.Writer, store *storage.Store) error {
	all, err := store.GetAllGamesStats()
	if err != nil {
		return err
	}
	if len(all) == 0 {
		fmt.Fprintln(out, "No runs recorded yet.")
		return nil
	}

	fmt.Fprintf(out, "  %-14s  %-5s  %-4s  %-7s  %s\n", "Ruleset", "Runs", "Best", "Average", "Last played")
	fmt.Fprintf(out, "  %-14s  %-5s  %-4s  %-7s  %s\n", "-------", "----", "----", "-------", "-----------")
	for _, id := range registry.IDs() {
		stats, ok := all[id]
		if !ok {
			continue
		}
		fmt.Fprintf(out, "  %-14s  %-5d  %-4d  %-7.1f  %s\n",
			id, stats.RunsCount, stats.HighScore, stats.AvgScore, stats.LastPlayed.Format("2006-01-02 15:04"))
	}
	return nil
}
