package game

// Snapshot captures the externally visible game state for determinism
// checks and score persistence.
type Snapshot struct {
	Board   [][]uint
	Score   uint
	Moves   int
	MaxTile uint
	Over    bool
	CanUndo bool
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Board:   g.Board(),
		Score:   g.score,
		Moves:   g.moves,
		MaxTile: g.MaxTile(),
		Over:    g.Over(),
		CanUndo: g.CanUndo(),
	}
}
