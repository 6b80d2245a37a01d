package field

// joinResult reports what the pairwise collapse rule did to a slot pair.
type joinResult int

const (
	joinNone joinResult = iota
	joinMoved
	joinMerged
)

// joinTiles applies the pairwise collapse rule to two adjacent slots in
// gravity order: dst is the slot nearer the gravity target, src the one
// below it. Nil means empty. It returns the updated slots and what
// happened.
//
// A tile slides into an empty dst keeping its original hold coordinates,
// so a tile that slides several cells in one move still records where it
// started. A tile with Merged origin slides like any other but never
// merges again, which is what enforces the merge-once-per-move rule.
func joinTiles(dst, src *Tile) (*Tile, *Tile, joinResult) {
	if src == nil {
		return dst, src, joinNone
	}

	if dst == nil {
		switch src.Origin.Kind {
		case OriginHold, OriginMoved:
			from := src.Origin.From
			return &Tile{Level: src.Level, Origin: MovedOrigin(from.X, from.Y)}, nil, joinMoved
		case OriginMerged:
			return &Tile{Level: src.Level, Origin: src.Origin}, nil, joinMoved
		default:
			// Appear tiles only exist outside a move; the collapse never
			// sees them because Swipe stamps Hold origins first.
			return dst, src, joinNone
		}
	}

	dstMergeable := dst.Origin.Kind == OriginHold || dst.Origin.Kind == OriginMoved
	srcMergeable := src.Origin.Kind == OriginHold || src.Origin.Kind == OriginMoved
	if dstMergeable && srcMergeable && dst.Level == src.Level {
		merged := &Tile{
			Level:  dst.Level + 1,
			Origin: MergedOrigin(dst.Origin.From, src.Origin.From),
		}
		return merged, nil, joinMerged
	}

	return dst, src, joinNone
}

// CanJoinTiles reports whether the pair would change under the collapse
// rule: a tile below an empty slot, or two equal mergeable tiles. It is
// the read-only predicate behind CanSwipe and mirrors joinTiles exactly:
// a tile carrying a Merged origin still slides but never merges, so an
// equal-valued pair with a Merged member is not joinable.
func CanJoinTiles(dst, src *Tile) bool {
	if src == nil {
		return false
	}
	if dst == nil {
		return true
	}
	if dst.Origin.Kind == OriginMerged || src.Origin.Kind == OriginMerged {
		return false
	}
	return dst.Level == src.Level
}
