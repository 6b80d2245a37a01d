package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/milyin/tui2048/internal/config"
	"github.com/milyin/tui2048/internal/game"
	"github.com/milyin/tui2048/internal/platform/tui"
	"github.com/milyin/tui2048/internal/storage"
)

var flagConfig string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the current terminal",
	Long: `Start a game in the current terminal.

Controls:
  Arrows/WASD/HJKL - Swipe
  U                - Undo last move
  R                - Restart
  ?                - Toggle help
  Q/Ctrl+C         - Quit

Examples:
  tui2048 play
  tui2048 play --seed 42
  tui2048 play --config ./my-game.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
}

func runPlay(_ *cobra.Command, _ []string) {
	logger := log.New(os.Stderr)

	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Refuse terminals the board cannot fit into.
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		minW := cfg.Board.Width*8 + 4
		minH := cfg.Board.Height + 7
		if w < minW || h < minH {
			fmt.Fprintf(os.Stderr, "Terminal %dx%d is too small, need at least %dx%d\n", w, h, minW, minH)
			os.Exit(1)
		}
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open games database, scores will not be saved", "error", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	gameCfg := game.Config{
		Width:        cfg.Board.Width,
		Height:       cfg.Board.Height,
		StartTiles:   cfg.Spawn.StartTiles,
		SpawnPerMove: cfg.Spawn.PerMove,
		Seed:         flagSeed,
	}

	if err := tui.Run(gameCfg, store); err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}
