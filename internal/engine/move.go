package engine

// SlideResult describes what a single slide did to a board.
type SlideResult struct {
	Moved      bool
	ScoreDelta int
	// Merged holds every cell that received a merge, in merge order.
	Merged []Coord
	// MaxMerged is the largest value produced by a merge, 0 if none.
	MaxMerged int
}

// FindFarthest walks from cell along v while the next cell is on the board
// and empty. It returns the last empty position reached and the position
// that stopped the walk, which may be off the board or occupied.
func FindFarthest(b Board, cell Coord, v Vector) (farthest, next Coord) {
	next = cell
	for {
		farthest = next
		next = farthest.Add(v)
		if !b.InBounds(next) || b.At(next) != 0 {
			return farthest, next
		}
	}
}

// Slide moves every tile as far as possible in direction dir and merges
// equal neighbours. The input board is left untouched.
// A cell receives at most one merge per slide, so [2,2,2,2] left gives
// [4,4,0,0] and never [8,0,0,0].
func Slide(b Board, dir Direction) (Board, SlideResult) {
	out := b.Clone()
	var res SlideResult
	if !dir.Valid() {
		return out, res
	}

	vec := VectorFor(dir)
	order := BuildTraversals(vec, out.Size())
	merged := make(map[Coord]bool)

	for _, row := range order.Rows {
		for _, col := range order.Cols {
			cell := Coord{Row: row, Col: col}
			tile := out.At(cell)
			if tile == 0 {
				continue
			}

			farthest, next := FindFarthest(out, cell, vec)

			if out.InBounds(next) && out.At(next) == tile && !merged[next] {
				value := tile * 2
				out.Set(next, value)
				out.Set(cell, 0)
				merged[next] = true

				res.Merged = append(res.Merged, next)
				res.ScoreDelta += value
				res.MaxMerged = max(res.MaxMerged, value)
				res.Moved = true
				continue
			}

			if farthest != cell {
				out.Set(farthest, tile)
				out.Set(cell, 0)
				res.Moved = true
			}
		}
	}

	return out, res
}

// CanSlide reports whether sliding in dir would change the board.
func CanSlide(b Board, dir Direction) bool {
	_, res := Slide(b, dir)
	return res.Moved
}
