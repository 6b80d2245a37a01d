package config

import (
	_ "embed"
)

//go:embed defaults/game.yaml
var defaultGameYAML []byte

// Default returns the default game configuration: a classic 4x4 board with
// two starting tiles and two spawns per move.
func Default() GameConfig {
	return GameConfig{
		Board: BoardConfig{
			Width:  4,
			Height: 4,
		},
		Spawn: SpawnConfig{
			StartTiles: 2,
			PerMove:    2,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultGameYAML
}
