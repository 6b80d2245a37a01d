// Package game wraps the board engine with score accounting and the spawn
// policy, exposing the surface the terminal shell drives: swipe, undo,
// restart, and read-only queries.
package game

import (
	"math/rand"
	"time"

	"github.com/milyin/tui2048/internal/field"
)

// Config holds the parameters of one game.
type Config struct {
	// Width and Height are the board dimensions.
	Width  int
	Height int

	// StartTiles is how many tiles are spawned on a fresh board.
	StartTiles int

	// SpawnPerMove is how many tiles are spawned after each successful
	// swipe. The original shell spawns two, which is harder than the
	// conventional single spawn; it is kept as the default but stays a
	// shell-level decision, not engine behavior.
	SpawnPerMove int

	// Seed drives the spawn generator. 0 means seed from the clock.
	Seed int64
}

// DefaultConfig returns the classic 4x4 setup.
func DefaultConfig() Config {
	return Config{
		Width:        4,
		Height:       4,
		StartTiles:   2,
		SpawnPerMove: 2,
	}
}

// Game owns a field, the accumulated score, and the spawn generator.
type Game struct {
	cfg   Config
	rng   *rand.Rand
	board *field.Field
	score uint
	moves int
}

// New creates a game with StartTiles spawned.
func New(cfg Config) *Game {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	g := &Game{
		cfg:   cfg,
		rng:   rand.New(rand.NewSource(seed)),
		board: field.New(cfg.Width, cfg.Height),
	}
	for i := 0; i < cfg.StartTiles; i++ {
		g.board.AppendTile(g.rng)
	}
	return g
}

// NewFromField creates a game over an existing board with score zero.
// The board is held as given; useful for replaying fixed positions.
func NewFromField(cfg Config, f *field.Field) *Game {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Game{
		cfg:   cfg,
		rng:   rand.New(rand.NewSource(seed)),
		board: f,
	}
}

// Swipe collapses the board toward the given side, accumulates the merge
// score, and spawns the configured number of tiles. Returns false, leaving
// everything untouched, when the swipe would not change the board.
func (g *Game) Swipe(side field.Side) bool {
	if !g.canSwipe(side) {
		return false
	}

	g.score += g.board.Swipe(side)
	g.moves++
	for i := 0; i < g.cfg.SpawnPerMove; i++ {
		g.board.AppendTile(g.rng)
	}
	return true
}

// CanSwipe reports whether a swipe toward the side would change the board.
func (g *Game) CanSwipe(side field.Side) bool {
	return g.canSwipe(side)
}

// canSwipe evaluates availability against a baseline view of the board.
// A real swipe stamps Hold origins before collapsing, so the provenance
// left over from the previous move must not block a join it would allow.
// HoldAll writes fresh tiles into the clone, leaving the board untouched.
func (g *Game) canSwipe(side field.Side) bool {
	baseline := g.board.Clone()
	baseline.HoldAll()
	return baseline.CanSwipe(side)
}

// CanUndo reports whether the last move can be reverted.
func (g *Game) CanUndo() bool {
	return g.board.CanUndo()
}

// Undo reverts the last move, including its spawns, and gives back the
// score it earned. Returns false when there is nothing to undo.
func (g *Game) Undo() bool {
	if !g.board.CanUndo() {
		return false
	}

	g.score -= g.board.Undo()
	if g.moves > 0 {
		g.moves--
	}
	return true
}

// Score returns the accumulated raw score.
func (g *Game) Score() uint {
	return g.score
}

// Moves returns the number of successful swipes so far.
func (g *Game) Moves() int {
	return g.moves
}

// Field exposes the underlying board for provenance-aware consumers such
// as animating renderers.
func (g *Game) Field() *field.Field {
	return g.board
}

// Board returns the board as a raw value matrix.
func (g *Game) Board() [][]uint {
	return g.board.Matrix()
}

// MaxTile returns the highest raw tile value on the board, 0 when empty.
func (g *Game) MaxTile() uint {
	var max uint
	for _, row := range g.board.Matrix() {
		for _, v := range row {
			if v > max {
				max = v
			}
		}
	}
	return max
}

// Over reports whether no direction has a legal swipe left.
func (g *Game) Over() bool {
	baseline := g.board.Clone()
	baseline.HoldAll()
	for _, side := range field.Sides {
		if baseline.CanSwipe(side) {
			return false
		}
	}
	return true
}

// DisplayValue returns the conventional face value for a tile level. The
// engine stores values as 2^level with level 0 spawnable, so faces run
// 2, 4, 8... while the matrix contract stays in raw power-of-two terms.
func DisplayValue(level uint) uint {
	return 1 << (level + 1)
}

// DisplayScore returns the score in the same doubled terms as the faces.
func (g *Game) DisplayScore() uint {
	return g.score * 2
}
