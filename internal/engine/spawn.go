package engine

// Random is the source of randomness for tile spawning.
// *math/rand.Rand satisfies it.
type Random interface {
	Intn(n int) int
	Float64() float64
}

// DefaultFourProbability is the chance that a spawned tile is a 4.
const DefaultFourProbability = 0.1

// SpawnTile places a 2 or a 4 on a uniformly chosen empty cell of b.
// It returns false and leaves b untouched when the board is full.
func SpawnTile(b Board, rng Random, fourProb float64) (Tile, bool) {
	empty := EmptyCells(b)
	if len(empty) == 0 {
		return Tile{}, false
	}

	cell := empty[rng.Intn(len(empty))]

	value := 2
	if rng.Float64() < fourProb {
		value = 4
	}

	b.Set(cell, value)
	return Tile{Coord: cell, Value: value}, true
}
