package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/milyin/tui2048/internal/storage"
)

var flagScoresLimit int

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show top scores and play statistics",
	Long: `Show the best recorded games and aggregate statistics
from the local scores database.

Examples:
  tui2048 scores
  tui2048 scores --limit 25`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of top games to show")
}

func runScores(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening games database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	games, err := store.TopGames(flagScoresLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading scores: %v\n", err)
		os.Exit(1)
	}

	stats, err := store.GetStats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading statistics: %v\n", err)
		os.Exit(1)
	}

	if len(games) == 0 {
		fmt.Println("No games recorded yet. Play one with: tui2048 play")
		return
	}

	fmt.Printf("Top %d games:\n\n", len(games))
	fmt.Printf("  %-4s %-8s %-10s %-7s %-10s %s\n", "#", "Score", "Best tile", "Moves", "Duration", "Date")
	for i, g := range games {
		fmt.Printf("  %-4d %-8d %-10d %-7d %-10s %s\n",
			i+1, g.Score, g.BestTile, g.Moves,
			(time.Duration(g.Duration) * time.Second).String(),
			g.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Printf("\nStatistics:\n")
	fmt.Printf("  Games played: %d\n", stats.GamesCount)
	fmt.Printf("  High score:   %d\n", stats.HighScore)
	fmt.Printf("  Best tile:    %d\n", stats.BestTile)
	fmt.Printf("  Avg score:    %.1f\n", stats.AvgScore)
	if !stats.LastPlayed.IsZero() {
		fmt.Printf("  Last played:  %s\n", stats.LastPlayed.Format("2006-01-02 15:04"))
	}
}
