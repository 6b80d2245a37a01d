// Package field implements the sliding-tile merge board: a grid of
// power-of-two tiles, a direction-parameterized collapse-and-merge
// transform, and single-level undo driven by per-tile move provenance.
// It contains no external dependencies (especially no Bubble Tea) to keep
// game logic pure and testable.
package field

import "fmt"

// Cell is a grid position. X is the column, Y is the row.
type Cell struct {
	X int
	Y int
}

// C is a convenience constructor for Cell.
func C(x, y int) Cell {
	return Cell{X: x, Y: y}
}

// String returns a string representation of the cell.
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// OriginKind discriminates the provenance variants.
type OriginKind int

const (
	// OriginAppear marks a tile spawned this turn, with no prior position.
	OriginAppear OriginKind = iota
	// OriginHold marks a tile unchanged since the start of the current move.
	OriginHold
	// OriginMoved marks a tile relocated this move without merging.
	OriginMoved
	// OriginMerged marks a tile produced this move by combining two tiles.
	OriginMerged
)

// String returns a human-readable name for the origin kind.
func (k OriginKind) String() string {
	switch k {
	case OriginAppear:
		return "Appear"
	case OriginHold:
		return "Hold"
	case OriginMoved:
		return "Moved"
	case OriginMerged:
		return "Merged"
	default:
		return "Unknown"
	}
}

// Origin records how a tile arrived at its current cell during the current
// move. Exactly one variant is active, selected by Kind. The coordinates
// always refer to cells of the grid as it stood at the last HoldAll call,
// which is what makes the origins double as the undo log: Undo rebuilds the
// grid by writing tiles back to these positions.
type Origin struct {
	Kind OriginKind
	// From is the tile's own position for Hold, the source position for
	// Moved, and the merge source nearer the gravity target for Merged.
	From Cell
	// Second is the other merge source. Only meaningful for Merged.
	Second Cell
}

// AppearOrigin returns the provenance of a freshly spawned tile.
func AppearOrigin() Origin {
	return Origin{Kind: OriginAppear}
}

// HoldOrigin returns the baseline provenance for a tile at (x, y).
func HoldOrigin(x, y int) Origin {
	return Origin{Kind: OriginHold, From: C(x, y)}
}

// MovedOrigin returns the provenance of a tile that slid from (x, y).
func MovedOrigin(x, y int) Origin {
	return Origin{Kind: OriginMoved, From: C(x, y)}
}

// MergedOrigin returns the provenance of a tile combined from the tiles
// previously at a and b, with a the one nearer the gravity source.
func MergedOrigin(a, b Cell) Origin {
	return Origin{Kind: OriginMerged, From: a, Second: b}
}

// String returns a string representation of the origin.
func (o Origin) String() string {
	switch o.Kind {
	case OriginAppear:
		return "Appear"
	case OriginHold:
		return fmt.Sprintf("Hold%s", o.From)
	case OriginMoved:
		return fmt.Sprintf("Moved%s", o.From)
	case OriginMerged:
		return fmt.Sprintf("Merged(%s,%s)", o.From, o.Second)
	default:
		return "Unknown"
	}
}

// Tile is one occupied cell: its value as a power-of-two exponent, plus the
// provenance tag for the current move. Tiles are treated as immutable; the
// field always writes fresh values instead of mutating stored ones.
type Tile struct {
	Level  uint
	Origin Origin
}

// Value returns the tile's raw value, 2^Level.
func (t Tile) Value() uint {
	return 1 << t.Level
}

// String returns a string representation of the tile.
func (t Tile) String() string {
	return fmt.Sprintf("Tile(%d,%s)", t.Value(), t.Origin)
}
