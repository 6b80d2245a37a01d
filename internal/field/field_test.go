package field

import (
	"errors"
	"math/rand"
	"reflect"
	"testing"
)

func mustFromMatrix(t *testing.T, matrix [][]uint) *Field {
	t.Helper()
	f, err := FromMatrix(matrix)
	if err != nil {
		t.Fatalf("FromMatrix() failed: %v", err)
	}
	return f
}

func matrixSum(matrix [][]uint) uint {
	var sum uint
	for _, row := range matrix {
		for _, v := range row {
			sum += v
		}
	}
	return sum
}

// randomField fills a w×h field with a mix of empty cells and small tiles.
func randomField(rng *rand.Rand, w, h int) *Field {
	matrix := make([][]uint, h)
	for y := range matrix {
		matrix[y] = make([]uint, w)
		for x := range matrix[y] {
			if rng.Intn(3) > 0 {
				matrix[y][x] = 1 << uint(1+rng.Intn(4))
			}
		}
	}
	f, _ := FromMatrix(matrix)
	return f
}

func TestMatrixRoundTrip(t *testing.T) {
	matrix := [][]uint{
		{8, 4, 2},
		{4, 2, 1},
		{2, 1, 0},
		{1, 0, 16},
	}

	f := mustFromMatrix(t, matrix)
	if !reflect.DeepEqual(f.Matrix(), matrix) {
		t.Errorf("Matrix() = %v, want %v", f.Matrix(), matrix)
	}

	// Imported tiles carry a Hold origin at their own cell.
	tile := f.Get(2, 3)
	if tile == nil || tile.Level != 4 || tile.Origin != HoldOrigin(2, 3) {
		t.Errorf("Get(2,3) = %v, want level 4 held at (2,3)", tile)
	}
	if f.Get(1, 3) != nil {
		t.Errorf("Get(1,3) = %v, want empty", f.Get(1, 3))
	}
}

func TestFromMatrixInvalidValue(t *testing.T) {
	tests := []struct {
		name   string
		matrix [][]uint
	}{
		{"not a power of two", [][]uint{{0, 3}}},
		{"sum of powers", [][]uint{{2, 4}, {0, 6}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := FromMatrix(tt.matrix); !errors.Is(err, ErrInvalidValue) {
				t.Errorf("FromMatrix() error = %v, want ErrInvalidValue", err)
			}
		})
	}
}

func TestFromMatrixRagged(t *testing.T) {
	if _, err := FromMatrix([][]uint{{0, 2}, {4}}); err == nil {
		t.Error("FromMatrix() accepted a ragged matrix")
	}
}

var swipeScenario = [][]uint{
	{0, 2, 4, 4},
	{0, 2, 2, 4},
	{0, 0, 2, 2},
	{2, 0, 0, 2},
}

func TestSwipeUp(t *testing.T) {
	f := mustFromMatrix(t, swipeScenario)

	score := f.Swipe(SideUp)

	want := [][]uint{
		{2, 4, 4, 8},
		{0, 0, 4, 4},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}
	if !reflect.DeepEqual(f.Matrix(), want) {
		t.Errorf("Swipe(Up) matrix = %v, want %v", f.Matrix(), want)
	}
	if score != 20 {
		t.Errorf("Swipe(Up) score = %d, want 20", score)
	}
}

func TestSwipeUpProvenance(t *testing.T) {
	f := mustFromMatrix(t, [][]uint{
		{0, 2, 4, 4},
		{0, 2, 2, 4},
		{0, 0, 2, 2},
		{0, 0, 0, 2},
	})

	f.Swipe(SideUp)

	wantTiles := map[Cell]Tile{
		C(1, 0): {Level: 2, Origin: MergedOrigin(C(1, 0), C(1, 1))},
		C(2, 0): {Level: 2, Origin: HoldOrigin(2, 0)},
		C(3, 0): {Level: 3, Origin: MergedOrigin(C(3, 0), C(3, 1))},
		C(2, 1): {Level: 2, Origin: MergedOrigin(C(2, 1), C(2, 2))},
		C(3, 1): {Level: 2, Origin: MergedOrigin(C(3, 2), C(3, 3))},
	}

	for y := 0; y < f.Height(); y++ {
		for x := 0; x < f.Width(); x++ {
			got := f.Get(x, y)
			want, occupied := wantTiles[C(x, y)]
			switch {
			case !occupied && got != nil:
				t.Errorf("cell %s = %v, want empty", C(x, y), got)
			case occupied && got == nil:
				t.Errorf("cell %s empty, want %v", C(x, y), want)
			case occupied && *got != want:
				t.Errorf("cell %s = %v, want %v", C(x, y), got, want)
			}
		}
	}
}

func TestSwipeDown(t *testing.T) {
	f := mustFromMatrix(t, swipeScenario)
	f.Swipe(SideDown)

	want := [][]uint{
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 4, 8},
		{2, 4, 4, 4},
	}
	if !reflect.DeepEqual(f.Matrix(), want) {
		t.Errorf("Swipe(Down) matrix = %v, want %v", f.Matrix(), want)
	}
}

func TestSwipeLeft(t *testing.T) {
	f := mustFromMatrix(t, swipeScenario)
	f.Swipe(SideLeft)

	want := [][]uint{
		{2, 8, 0, 0},
		{4, 4, 0, 0},
		{4, 0, 0, 0},
		{4, 0, 0, 0},
	}
	if !reflect.DeepEqual(f.Matrix(), want) {
		t.Errorf("Swipe(Left) matrix = %v, want %v", f.Matrix(), want)
	}
}

func TestSwipeRight(t *testing.T) {
	f := mustFromMatrix(t, [][]uint{
		{0, 2, 4, 4},
		{0, 2, 2, 4},
		{0, 0, 2, 2},
		{0, 0, 0, 2},
	})

	score := f.Swipe(SideRight)

	want := [][]uint{
		{0, 0, 2, 8},
		{0, 0, 4, 4},
		{0, 0, 0, 4},
		{0, 0, 0, 2},
	}
	if !reflect.DeepEqual(f.Matrix(), want) {
		t.Errorf("Swipe(Right) matrix = %v, want %v", f.Matrix(), want)
	}
	if score != 16 {
		t.Errorf("Swipe(Right) score = %d, want 16", score)
	}
}

func TestSwipePreservesValueMass(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 50; i++ {
		base := randomField(rng, 4, 4)
		before := matrixSum(base.Matrix())

		for _, side := range Sides {
			f := base.Clone()
			f.Swipe(side)
			if after := matrixSum(f.Matrix()); after != before {
				t.Fatalf("Swipe(%s) changed value mass: %d -> %d (board %v)",
					side, before, after, base.Matrix())
			}
		}
	}
}

func TestSwipeReachesFixedPoint(t *testing.T) {
	rng := rand.New(rand.NewSource(11))

	for i := 0; i < 50; i++ {
		base := randomField(rng, 4, 4)
		for _, side := range Sides {
			f := base.Clone()
			f.Swipe(side)
			if f.CanSwipe(side) {
				t.Fatalf("CanSwipe(%s) still true after swipe on %v", side, base.Matrix())
			}
		}
	}
}

func TestCanSwipeFalseAfterMergeLeavesEqualNeighbors(t *testing.T) {
	// Swiping left merges the 8s into a 16 right next to the held 16.
	// The new tile carries a Merged origin, so the pair is not joinable
	// and the direction must read as exhausted.
	f := mustFromMatrix(t, [][]uint{
		{2, 0, 16, 2},
		{16, 8, 8, 0},
		{4, 4, 4, 16},
		{2, 0, 2, 16},
	})

	f.Swipe(SideLeft)
	if f.CanSwipe(SideLeft) {
		t.Errorf("CanSwipe(%s) = true right after swipe, matrix %v", SideLeft, f.Matrix())
	}

	// Mutating the field resets the provenance baseline and frees the pair.
	f.HoldAll()
	if !f.CanSwipe(SideLeft) {
		t.Errorf("CanSwipe(%s) = false after HoldAll, the 16s should merge", SideLeft)
	}
}

func TestCanSwipeGameOver(t *testing.T) {
	// Full board, no equal neighbors in any direction.
	blocked := mustFromMatrix(t, [][]uint{
		{2, 4, 2, 4},
		{4, 2, 4, 2},
		{2, 4, 2, 4},
		{4, 2, 4, 2},
	})
	for _, side := range Sides {
		if blocked.CanSwipe(side) {
			t.Errorf("CanSwipe(%s) = true on a dead board", side)
		}
	}

	// One free cell is enough to make every direction viable on this board.
	withHole := blocked.Clone()
	withHole.Put(1, 1, nil)
	for _, side := range Sides {
		if !withHole.CanSwipe(side) {
			t.Errorf("CanSwipe(%s) = false with a free cell", side)
		}
	}

	// A single equal pair unblocks only the directions along its axis.
	withPair := mustFromMatrix(t, [][]uint{
		{2, 2, 4, 8},
		{4, 8, 2, 4},
		{2, 4, 8, 2},
		{4, 2, 4, 8},
	})
	if !withPair.CanSwipe(SideLeft) || !withPair.CanSwipe(SideRight) {
		t.Error("horizontal pair should allow Left and Right swipes")
	}
	if withPair.CanSwipe(SideUp) || withPair.CanSwipe(SideDown) {
		t.Error("horizontal pair should not allow Up or Down swipes")
	}
}

func TestFreeCells(t *testing.T) {
	f := mustFromMatrix(t, [][]uint{
		{2, 0},
		{0, 4},
	})

	want := []Cell{C(0, 1), C(1, 0)}
	if got := f.FreeCells(); !reflect.DeepEqual(got, want) {
		t.Errorf("FreeCells() = %v, want %v", got, want)
	}
}

func TestAppendTile(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	f := New(4, 4)

	if !f.AppendTile(rng) {
		t.Fatal("AppendTile() = false on an empty board")
	}

	var spawned *Tile
	for _, tile := range f.cells {
		if tile == nil {
			continue
		}
		if spawned != nil {
			t.Fatal("AppendTile() spawned more than one tile")
		}
		spawned = tile
	}
	if spawned == nil {
		t.Fatal("AppendTile() spawned nothing")
	}
	if spawned.Origin.Kind != OriginAppear {
		t.Errorf("spawned origin = %s, want Appear", spawned.Origin.Kind)
	}
	if spawned.Level > 1 {
		t.Errorf("spawned level = %d, want 0 or 1", spawned.Level)
	}
}

func TestAppendTileFullBoard(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	f := mustFromMatrix(t, [][]uint{
		{2, 4},
		{8, 16},
	})
	before := f.Matrix()

	if f.AppendTile(rng) {
		t.Error("AppendTile() = true on a full board")
	}
	if !reflect.DeepEqual(f.Matrix(), before) {
		t.Errorf("AppendTile() changed a full board: %v -> %v", before, f.Matrix())
	}
}

func TestAppendTileDeterministic(t *testing.T) {
	a := New(4, 4)
	b := New(4, 4)
	rngA := rand.New(rand.NewSource(99))
	rngB := rand.New(rand.NewSource(99))

	for i := 0; i < 8; i++ {
		a.AppendTile(rngA)
		b.AppendTile(rngB)
	}
	if !reflect.DeepEqual(a.Matrix(), b.Matrix()) {
		t.Errorf("same seed produced different boards:\n%v\n%v", a.Matrix(), b.Matrix())
	}
}

func TestUndoRevertsSwipe(t *testing.T) {
	f := mustFromMatrix(t, swipeScenario)

	if f.CanUndo() {
		t.Error("CanUndo() = true before any move")
	}

	score := f.Swipe(SideUp)
	if !f.CanUndo() {
		t.Fatal("CanUndo() = false after a swipe")
	}

	removed := f.Undo()
	if removed != score {
		t.Errorf("Undo() removed %d, want the swipe score %d", removed, score)
	}
	if !reflect.DeepEqual(f.Matrix(), swipeScenario) {
		t.Errorf("Undo() matrix = %v, want %v", f.Matrix(), swipeScenario)
	}
	if f.CanUndo() {
		t.Error("CanUndo() = true immediately after Undo(): undo must not chain")
	}
}

func TestUndoDropsSpawnedTiles(t *testing.T) {
	f := mustFromMatrix(t, swipeScenario)

	f.Swipe(SideUp)
	rng := rand.New(rand.NewSource(3))
	if !f.AppendTile(rng) {
		t.Fatal("AppendTile() failed on a board with free cells")
	}

	f.Undo()
	if !reflect.DeepEqual(f.Matrix(), swipeScenario) {
		t.Errorf("Undo() after spawn = %v, want the pre-move board %v", f.Matrix(), swipeScenario)
	}
}

func TestCanUndoAfterAppendOnly(t *testing.T) {
	// A spawn alone is undoable state: the Appear tile is not baseline.
	f := New(4, 4)
	rng := rand.New(rand.NewSource(5))
	f.AppendTile(rng)

	if !f.CanUndo() {
		t.Error("CanUndo() = false with an Appear tile on the board")
	}
	f.Undo()
	if len(f.FreeCells()) != 16 {
		t.Error("Undo() did not drop the spawned tile")
	}
}

func TestHoldAll(t *testing.T) {
	f := mustFromMatrix(t, swipeScenario)
	f.Swipe(SideUp)
	f.HoldAll()

	if f.CanUndo() {
		t.Error("CanUndo() = true after HoldAll()")
	}
	for y := 0; y < f.Height(); y++ {
		for x := 0; x < f.Width(); x++ {
			if tile := f.Get(x, y); tile != nil && tile.Origin != HoldOrigin(x, y) {
				t.Errorf("cell %s origin = %s, want Hold at own position", C(x, y), tile.Origin)
			}
		}
	}
}
