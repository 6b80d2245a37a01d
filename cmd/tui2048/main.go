// tui2048 is a terminal 2048: swipe tiles, merge powers of two, undo your
// last move, and keep your best games on a local leaderboard.
//
// Usage:
//
//	tui2048 play              - Play in the current terminal
//	tui2048 serve             - Start SSH server for remote play
//	tui2048 scores            - Show best recorded games
//
// Global flags:
//
//	--db <path>     - Set database path (default: ~/.tui2048/games.db)
//	--seed <value>  - Set RNG seed for reproducible games
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tui2048",
	Short: "2048 in your terminal",
	Long: `tui2048 brings the sliding-tile puzzle to the terminal: swipe in four
directions, merge equal tiles, and undo your last move when a swipe goes
wrong.

Available commands:
  play     - Play in the current terminal
  serve    - Start SSH server for remote play
  scores   - View best recorded games

Examples:
  tui2048 play
  tui2048 play --seed 42
  tui2048 serve --ssh :2222
  tui2048 scores`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.tui2048/games.db", "Path to games database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
