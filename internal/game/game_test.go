package game

import (
	"reflect"
	"testing"

	"github.com/milyin/tui2048/internal/field"
)

func fixedConfig(seed int64) Config {
	cfg := DefaultConfig()
	cfg.Seed = seed
	return cfg
}

func fieldFrom(t *testing.T, matrix [][]uint) *field.Field {
	t.Helper()
	f, err := field.FromMatrix(matrix)
	if err != nil {
		t.Fatalf("FromMatrix() failed: %v", err)
	}
	return f
}

func occupied(board [][]uint) int {
	n := 0
	for _, row := range board {
		for _, v := range row {
			if v != 0 {
				n++
			}
		}
	}
	return n
}

func TestNewSpawnsStartTiles(t *testing.T) {
	g := New(fixedConfig(42))

	if n := occupied(g.Board()); n != 2 {
		t.Errorf("fresh board has %d tiles, want 2", n)
	}
	if g.Score() != 0 || g.Moves() != 0 {
		t.Errorf("fresh game score/moves = %d/%d, want 0/0", g.Score(), g.Moves())
	}
}

func TestDeterministicSpawns(t *testing.T) {
	a := New(fixedConfig(12345))
	b := New(fixedConfig(12345))

	if !reflect.DeepEqual(a.Board(), b.Board()) {
		t.Errorf("same seed produced different boards:\n%v\n%v", a.Board(), b.Board())
	}
}

func TestSwipeSpawnsPerMove(t *testing.T) {
	cfg := fixedConfig(7)
	g := NewFromField(cfg, fieldFrom(t, [][]uint{
		{0, 2, 4, 4},
		{0, 2, 2, 4},
		{0, 0, 2, 2},
		{2, 0, 0, 2},
	}))

	if !g.Swipe(field.SideUp) {
		t.Fatal("Swipe(Up) = false on a movable board")
	}

	if g.Score() != 20 {
		t.Errorf("Score() = %d, want 20", g.Score())
	}
	if g.Moves() != 1 {
		t.Errorf("Moves() = %d, want 1", g.Moves())
	}
	// The scenario collapses 10 tiles to 6; two spawns land on top.
	if n := occupied(g.Board()); n != 8 {
		t.Errorf("board has %d tiles after swipe, want 8", n)
	}
}

func TestSwipeRejectedWhenNothingMoves(t *testing.T) {
	g := NewFromField(fixedConfig(1), fieldFrom(t, [][]uint{
		{2, 0, 0, 0},
		{4, 0, 0, 0},
		{2, 0, 0, 0},
		{4, 0, 0, 0},
	}))

	if g.Swipe(field.SideLeft) {
		t.Error("Swipe(Left) = true on already collapsed board")
	}
	if g.Score() != 0 || g.Moves() != 0 || occupied(g.Board()) != 4 {
		t.Error("rejected swipe must not change score, moves, or spawn tiles")
	}
}

func TestUndoRestoresScore(t *testing.T) {
	board := [][]uint{
		{0, 2, 4, 4},
		{0, 2, 2, 4},
		{0, 0, 2, 2},
		{2, 0, 0, 2},
	}
	g := NewFromField(fixedConfig(9), fieldFrom(t, board))

	g.Swipe(field.SideUp)
	if !g.Undo() {
		t.Fatal("Undo() = false after a swipe")
	}

	if g.Score() != 0 {
		t.Errorf("Score() = %d after undo, want 0", g.Score())
	}
	if g.Moves() != 0 {
		t.Errorf("Moves() = %d after undo, want 0", g.Moves())
	}
	if !reflect.DeepEqual(g.Board(), board) {
		t.Errorf("Board() after undo = %v, want %v", g.Board(), board)
	}
	if g.Undo() {
		t.Error("Undo() = true twice in a row: undo must not chain")
	}
}

func TestCanSwipeIgnoresLastMoveProvenance(t *testing.T) {
	// Merge the 8s, then drop a spawn next to the merged 16. The merged
	// origin blocks the pair only within the move that produced it; the
	// next swipe re-stamps origins first and must be allowed to merge.
	f := fieldFrom(t, [][]uint{{8, 8}})
	f.Swipe(field.SideLeft)
	f.Put(1, 0, &field.Tile{Level: 4, Origin: field.AppearOrigin()})

	cfg := Config{Width: 2, Height: 1, Seed: 1}
	g := NewFromField(cfg, f)

	if g.Over() {
		t.Fatal("Over() = true while the 16s can still merge")
	}
	if !g.CanSwipe(field.SideLeft) {
		t.Fatal("CanSwipe(Left) = false while the 16s can still merge")
	}
	if !g.Swipe(field.SideLeft) {
		t.Fatal("Swipe(Left) = false while the 16s can still merge")
	}
	if g.Score() != 32 {
		t.Errorf("Score() = %d after merging the 16s, want 32", g.Score())
	}
}

func TestOver(t *testing.T) {
	g := NewFromField(fixedConfig(1), fieldFrom(t, [][]uint{
		{2, 4, 2, 4},
		{4, 2, 4, 2},
		{2, 4, 2, 4},
		{4, 2, 4, 2},
	}))
	if !g.Over() {
		t.Error("Over() = false on a dead board")
	}

	open := New(fixedConfig(2))
	if open.Over() {
		t.Error("Over() = true on a fresh board")
	}
}

func TestMaxTile(t *testing.T) {
	g := NewFromField(fixedConfig(1), fieldFrom(t, [][]uint{
		{2, 0, 64, 4},
		{0, 0, 0, 0},
		{0, 8, 0, 0},
		{0, 0, 0, 2},
	}))
	if g.MaxTile() != 64 {
		t.Errorf("MaxTile() = %d, want 64", g.MaxTile())
	}
}

func TestDisplayValue(t *testing.T) {
	tests := []struct {
		level uint
		want  uint
	}{
		{0, 2},
		{1, 4},
		{10, 2048},
	}
	for _, tt := range tests {
		if got := DisplayValue(tt.level); got != tt.want {
			t.Errorf("DisplayValue(%d) = %d, want %d", tt.level, got, tt.want)
		}
	}
}

func TestSnapshot(t *testing.T) {
	g := New(fixedConfig(42))
	snap := g.Snapshot()

	if snap.Score != 0 || snap.Moves != 0 || snap.Over {
		t.Errorf("fresh snapshot = %+v, want zero score/moves and not over", snap)
	}
	if !reflect.DeepEqual(snap.Board, g.Board()) {
		t.Error("snapshot board differs from game board")
	}
	if !snap.CanUndo {
		// Fresh spawns carry Appear origins, so one undo is available.
		t.Error("fresh snapshot should report CanUndo")
	}
}
