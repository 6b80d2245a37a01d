// Package config provides YAML-based configuration loading for the game
// shell: board shape and spawn policy.
package config

import "fmt"

// GameConfig contains all configuration for a game session.
type GameConfig struct {
	Board BoardConfig `yaml:"board"`
	Spawn SpawnConfig `yaml:"spawn"`
}

// BoardConfig defines the grid dimensions.
type BoardConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// SpawnConfig defines the tile spawn policy.
type SpawnConfig struct {
	// StartTiles is the number of tiles on a fresh board.
	StartTiles int `yaml:"start_tiles"`
	// PerMove is the number of tiles spawned after each successful swipe.
	PerMove int `yaml:"per_move"`
}

// Validate checks the configuration for values the engine cannot work with.
func (c GameConfig) Validate() error {
	if c.Board.Width < 2 || c.Board.Height < 2 {
		return fmt.Errorf("config: board %dx%d is too small, need at least 2x2", c.Board.Width, c.Board.Height)
	}
	if c.Spawn.StartTiles < 0 || c.Spawn.StartTiles > c.Board.Width*c.Board.Height {
		return fmt.Errorf("config: start_tiles %d does not fit the board", c.Spawn.StartTiles)
	}
	if c.Spawn.PerMove < 0 {
		return fmt.Errorf("config: per_move must not be negative, got %d", c.Spawn.PerMove)
	}
	return nil
}
