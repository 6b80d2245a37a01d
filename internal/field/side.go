package field

// Side is a swipe direction. It selects the gravity direction for the
// collapse algorithm via coordinate remapping: the algorithm is written
// once as "gravity pulls toward local row 0" and each side supplies the
// mapping from local (column, row) to physical grid indices.
type Side int

const (
	SideUp Side = iota
	SideDown
	SideLeft
	SideRight
)

// Sides lists all four swipe directions.
var Sides = []Side{SideUp, SideDown, SideLeft, SideRight}

// String returns a human-readable name for the side.
func (s Side) String() string {
	switch s {
	case SideUp:
		return "Up"
	case SideDown:
		return "Down"
	case SideLeft:
		return "Left"
	case SideRight:
		return "Right"
	default:
		return "Unknown"
	}
}

// widthFromSide returns the number of local columns for the side. Left and
// Right swap the grid's physical dimensions: their logical columns run
// along stored rows.
func (f *Field) widthFromSide(side Side) int {
	switch side {
	case SideLeft, SideRight:
		return f.height
	default:
		return f.width
	}
}

// heightFromSide returns the number of local rows for the side.
func (f *Field) heightFromSide(side Side) int {
	switch side {
	case SideLeft, SideRight:
		return f.width
	default:
		return f.height
	}
}

// indexFromSide maps a side-local (x, y) to physical (row, col). Local x
// ranges over widthFromSide(side), local y over heightFromSide(side), and
// local row 0 is the row gravity pulls toward.
func (f *Field) indexFromSide(side Side, x, y int) (row, col int) {
	switch side {
	case SideUp:
		return y, x
	case SideDown:
		return f.height - 1 - y, f.width - 1 - x
	case SideLeft:
		return f.height - 1 - x, y
	default: // SideRight
		return x, f.width - 1 - y
	}
}

// getFromSide reads a cell through the side-local view.
func (f *Field) getFromSide(side Side, x, y int) *Tile {
	row, col := f.indexFromSide(side, x, y)
	return f.cells[row*f.width+col]
}

// putFromSide writes a cell through the side-local view.
func (f *Field) putFromSide(side Side, x, y int, t *Tile) {
	row, col := f.indexFromSide(side, x, y)
	f.cells[row*f.width+col] = t
}
