package field

import (
	"errors"
	"fmt"
	"math/bits"
	"math/rand"
)

// ErrInvalidValue is returned by FromMatrix when a matrix entry is neither
// zero nor a power of two.
var ErrInvalidValue = errors.New("field: matrix value is not a power of two")

// Field is the grid of optionally-occupied tiles. Cells are stored in
// row-major order: index = y*width + x, nil meaning empty. The field owns
// all tiles; operations that change a cell always write a fresh Tile.
type Field struct {
	width  int
	height int
	cells  []*Tile
}

// New creates an all-empty field with the given dimensions.
func New(width, height int) *Field {
	return &Field{
		width:  width,
		height: height,
		cells:  make([]*Tile, width*height),
	}
}

// FromMatrix builds a field from a height×width matrix of raw values.
// Each entry must be 0 (empty) or a power of two; occupied cells get a
// Hold origin at their own position.
func FromMatrix(matrix [][]uint) (*Field, error) {
	height := len(matrix)
	if height == 0 {
		return New(0, 0), nil
	}
	width := len(matrix[0])

	f := New(width, height)
	for y, row := range matrix {
		if len(row) != width {
			return nil, fmt.Errorf("field: ragged matrix: row %d has %d columns, want %d", y, len(row), width)
		}
		for x, v := range row {
			if v == 0 {
				continue
			}
			if bits.OnesCount(v) != 1 {
				return nil, fmt.Errorf("%w: %d at %s", ErrInvalidValue, v, C(x, y))
			}
			f.Put(x, y, &Tile{
				Level:  uint(bits.TrailingZeros(v)),
				Origin: HoldOrigin(x, y),
			})
		}
	}
	return f, nil
}

// Matrix exports the field as a height×width matrix of raw values: 0 for
// empty cells, 2^level for occupied ones. Round-trips with FromMatrix at
// the value level; provenance is not part of the contract.
func (f *Field) Matrix() [][]uint {
	matrix := make([][]uint, f.height)
	for y := range matrix {
		matrix[y] = make([]uint, f.width)
		for x := range matrix[y] {
			if t := f.Get(x, y); t != nil {
				matrix[y][x] = t.Value()
			}
		}
	}
	return matrix
}

// Width returns the number of columns.
func (f *Field) Width() int {
	return f.width
}

// Height returns the number of rows.
func (f *Field) Height() int {
	return f.height
}

// Get returns the tile at (x, y), or nil if the cell is empty.
// Out-of-range coordinates are a programming error and panic.
func (f *Field) Get(x, y int) *Tile {
	return f.getFromSide(SideUp, x, y)
}

// Put stores a tile at (x, y); nil clears the cell.
// Out-of-range coordinates are a programming error and panic.
func (f *Field) Put(x, y int, t *Tile) {
	f.putFromSide(SideUp, x, y, t)
}

// Clone returns a deep copy of the field.
func (f *Field) Clone() *Field {
	c := New(f.width, f.height)
	copy(c.cells, f.cells)
	return c
}

// HoldAll stamps every occupied cell's origin to Hold at its current
// position, establishing the provenance baseline for the next move and
// clearing whatever the previous move left behind. Swipe calls it first;
// callers that mutate the field directly should call it before swiping.
func (f *Field) HoldAll() {
	for y := 0; y < f.height; y++ {
		for x := 0; x < f.width; x++ {
			if t := f.Get(x, y); t != nil {
				f.Put(x, y, &Tile{Level: t.Level, Origin: HoldOrigin(x, y)})
			}
		}
	}
}

// Swipe collapses the field toward the given side and returns the score
// gained: the sum of the values of all tiles produced by merges.
//
// Each side-local column is scanned top-down, joining adjacent pairs, and
// the scan repeats until it produces no change. The repetition is required
// because a single pass only resolves each adjacency once; tiles freed by
// an earlier join may become newly joinable within the same move. The
// merge-once rule needs no bookkeeping here: a merged tile's origin
// already refuses further merges.
func (f *Field) Swipe(side Side) uint {
	f.HoldAll()

	width := f.widthFromSide(side)
	height := f.heightFromSide(side)

	var score uint
	for x := 0; x < width; x++ {
		for changed := true; changed; {
			changed = false
			for y := 0; y+1 < height; y++ {
				dst, src, res := joinTiles(f.getFromSide(side, x, y), f.getFromSide(side, x, y+1))
				if res == joinNone {
					continue
				}
				f.putFromSide(side, x, y, dst)
				f.putFromSide(side, x, y+1, src)
				if res == joinMerged {
					score += dst.Value()
				}
				changed = true
			}
		}
	}
	return score
}

// CanSwipe reports whether swiping toward the given side would change the
// field: some side-local adjacent pair can slide or merge. Read-only, and
// origin-aware: immediately after Swipe the merged tiles it produced block
// their adjacencies, so CanSwipe(side) is false until the field is mutated
// again. Callers asking about a board carrying stale provenance (say after
// spawns landed) should HoldAll a Clone first, since a real swipe would
// re-stamp origins before collapsing.
func (f *Field) CanSwipe(side Side) bool {
	width := f.widthFromSide(side)
	height := f.heightFromSide(side)

	for x := 0; x < width; x++ {
		for y := 0; y+1 < height; y++ {
			if CanJoinTiles(f.getFromSide(side, x, y), f.getFromSide(side, x, y+1)) {
				return true
			}
		}
	}
	return false
}

// FreeCells returns the positions of all empty cells, scanning columns
// left to right and each column top to bottom.
// The order is only a sampling population for AppendTile.
func (f *Field) FreeCells() []Cell {
	var cells []Cell
	for x := 0; x < f.width; x++ {
		for y := 0; y < f.height; y++ {
			if f.Get(x, y) == nil {
				cells = append(cells, C(x, y))
			}
		}
	}
	return cells
}

// AppendTile spawns one tile with Appear origin in a uniformly chosen free
// cell, at level 0 or 1 (raw value 1 or 2) with equal probability. Returns
// false and leaves the field unchanged if no cell is free. Randomness
// comes only from the passed generator, keeping spawns replayable.
func (f *Field) AppendTile(rng *rand.Rand) bool {
	free := f.FreeCells()
	if len(free) == 0 {
		return false
	}

	c := free[rng.Intn(len(free))]
	level := uint(rng.Intn(2))
	f.Put(c.X, c.Y, &Tile{Level: level, Origin: AppearOrigin()})
	return true
}

// CanUndo reports whether the last move can be inverted: some tile carries
// non-baseline provenance. Undo always restores a pure Hold state, so this
// is false immediately after Undo; undo cannot be chained.
func (f *Field) CanUndo() bool {
	for _, t := range f.cells {
		if t != nil && t.Origin.Kind != OriginHold {
			return true
		}
	}
	return false
}

// Undo inverts the last move by rebuilding the grid cell by cell from the
// tiles' origins: held tiles stay, moved tiles return to their source,
// merged tiles split back into their two sources one level down, and
// tiles spawned this turn are dropped. Returns the total value removed
// from the score (the value of every merged tile).
func (f *Field) Undo() uint {
	var removed uint
	next := make([]*Tile, len(f.cells))

	for y := 0; y < f.height; y++ {
		for x := 0; x < f.width; x++ {
			t := f.Get(x, y)
			if t == nil {
				continue
			}
			switch t.Origin.Kind {
			case OriginHold:
				from := t.Origin.From
				next[from.Y*f.width+from.X] = t
			case OriginMoved:
				from := t.Origin.From
				next[from.Y*f.width+from.X] = &Tile{Level: t.Level, Origin: HoldOrigin(from.X, from.Y)}
			case OriginMerged:
				a, b := t.Origin.From, t.Origin.Second
				next[a.Y*f.width+a.X] = &Tile{Level: t.Level - 1, Origin: HoldOrigin(a.X, a.Y)}
				next[b.Y*f.width+b.X] = &Tile{Level: t.Level - 1, Origin: HoldOrigin(b.X, b.Y)}
				removed += t.Value()
			case OriginAppear:
				// Spawned this turn; undoing the move reverts the spawn too.
			}
		}
	}

	f.cells = next
	return removed
}
