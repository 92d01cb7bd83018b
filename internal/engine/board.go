// Package engine implements the 2048 board engine: sliding, merging, tile
// spawning, terminal detection and undo history on a square board.
// It has no dependencies outside the standard library and does no I/O.
package engine

import (
	"strconv"
	"strings"
)

// DefaultSize is the classic board dimension.
const DefaultSize = 4

// Coord addresses a cell by row and column.
type Coord struct {
	Row int
	Col int
}

// Add returns the coordinate one step along v.
func (c Coord) Add(v Vector) Coord {
	return Coord{Row: c.Row + v.DRow, Col: c.Col + v.DCol}
}

// Tile is a board cell together with its value.
type Tile struct {
	Coord
	Value int
}

// Board is a square grid of tile values indexed [row][col].
// Zero means empty. Boards share storage like slices do; Clone before
// mutating a board you don't own.
type Board [][]int

// NewBoard returns an empty size×size board.
func NewBoard(size int) Board {
	b := make(Board, size)
	for row := range b {
		b[row] = make([]int, size)
	}
	return b
}

// Size returns the board dimension.
func (b Board) Size() int {
	return len(b)
}

// InBounds reports whether c lies on the board.
func (b Board) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < len(b) && c.Col >= 0 && c.Col < len(b)
}

// At returns the value at c. The caller must check bounds.
func (b Board) At(c Coord) int {
	return b[c.Row][c.Col]
}

// Set stores value at c.
func (b Board) Set(c Coord, value int) {
	b[c.Row][c.Col] = value
}

// Clone returns a deep copy of the board.
func (b Board) Clone() Board {
	out := make(Board, len(b))
	for row := range b {
		out[row] = append([]int(nil), b[row]...)
	}
	return out
}

// Equal reports whether both boards hold the same tiles.
func (b Board) Equal(other Board) bool {
	if len(b) != len(other) {
		return false
	}
	for row := range b {
		if len(b[row]) != len(other[row]) {
			return false
		}
		for col := range b[row] {
			if b[row][col] != other[row][col] {
				return false
			}
		}
	}
	return true
}

// Sum returns the total of all tile values.
func (b Board) Sum() int {
	total := 0
	for _, row := range b {
		for _, v := range row {
			total += v
		}
	}
	return total
}

// String renders the board one row per line, for test failures and logs.
func (b Board) String() string {
	var sb strings.Builder
	for i, row := range b {
		if i > 0 {
			sb.WriteByte('\n')
		}
		for j, v := range row {
			if j > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(strconv.Itoa(v))
		}
	}
	return sb.String()
}

// isSquare reports whether every row has len(b) columns.
func (b Board) isSquare() bool {
	for _, row := range b {
		if len(row) != len(b) {
			return false
		}
	}
	return true
}

// isTileValue reports whether v can appear on a board.
func isTileValue(v int) bool {
	return v == 0 || (v >= 2 && v&(v-1) == 0)
}
