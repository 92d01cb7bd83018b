package engine

// Direction represents a move direction.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Directions lists every direction in a stable order.
var Directions = [...]Direction{DirUp, DirDown, DirLeft, DirRight}

// Valid reports whether d is one of the four directions.
func (d Direction) Valid() bool {
	return d >= DirUp && d <= DirRight
}

// String returns the lower-case direction name.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// Vector is a unit step on the board. Exactly one component is non-zero.
type Vector struct {
	DRow int
	DCol int
}

// VectorFor returns the step tiles take when sliding in direction d.
func VectorFor(d Direction) Vector {
	switch d {
	case DirUp:
		return Vector{DRow: -1}
	case DirDown:
		return Vector{DRow: 1}
	case DirLeft:
		return Vector{DCol: -1}
	case DirRight:
		return Vector{DCol: 1}
	default:
		return Vector{}
	}
}

// Traversals is the order in which cells are visited during a move.
// Rows is the outer loop, Cols the inner one.
type Traversals struct {
	Rows []int
	Cols []int
}

// BuildTraversals returns ascending indices on both axes, reversed on the
// axis the vector points down. Tiles nearest the destination edge are then
// visited first, so nothing is processed after its neighbour has moved past.
func BuildTraversals(v Vector, size int) Traversals {
	t := Traversals{
		Rows: make([]int, size),
		Cols: make([]int, size),
	}
	for i := range size {
		t.Rows[i] = i
		t.Cols[i] = i
	}
	if v.DRow == 1 {
		reverse(t.Rows)
	}
	if v.DCol == 1 {
		reverse(t.Cols)
	}
	return t
}

func reverse(s []int) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
