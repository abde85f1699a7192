package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/glidekit/flaptui/internal/storage"
)

var flagClear bool

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the high score table",
	Long: `Display the top 10 scores and overall statistics.

Examples:
  flap scores
  flap scores --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the whole score history")
}

// openStore opens the scores database from the global --db flag.
func openStore() (*storage.Store, error) {
	return storage.Open(flagDBPath)
}

func runScores(cmd *cobra.Command, args []string) {
	store, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearScores(); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Score history cleared.")
		return
	}

	scores, err := store.TopScores(10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("High Scores")
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'flap play' to set the first one!")
		return
	}

	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")
	for i, entry := range scores {
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	if stats, err := store.GetStats(); err == nil && stats.Runs > 0 {
		fmt.Println()
		fmt.Printf("Best: %d  |  Runs: %d  |  Avg: %.1f\n", stats.Best, stats.Runs, stats.AvgScore)
	}
}
