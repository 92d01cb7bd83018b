package engine

import (
	"math/rand"
	"testing"
)

func TestSpawnTileFullBoard(t *testing.T) {
	board := Board{
		{2, 4},
		{8, 16},
	}
	before := board.Clone()

	_, ok := SpawnTile(board, rand.New(rand.NewSource(1)), DefaultFourProbability)
	if ok {
		t.Error("spawn on a full board should fail")
	}
	if !board.Equal(before) {
		t.Error("spawn on a full board should not change it")
	}
}

func TestSpawnTileValue(t *testing.T) {
	tests := []struct {
		name  string
		draw  float64
		value int
	}{
		{"low draw gives four", 0.05, 4},
		{"threshold gives two", 0.1, 2},
		{"high draw gives two", 0.9, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := NewBoard(3)
			rng := &scriptedRandom{ints: []int{4}, floats: []float64{tt.draw}}

			tile, ok := SpawnTile(board, rng, 0.1)
			if !ok {
				t.Fatal("spawn failed on an empty board")
			}
			if tile.Value != tt.value {
				t.Errorf("value = %d, want %d", tile.Value, tt.value)
			}
			if tile.Coord != (Coord{Row: 1, Col: 1}) {
				t.Errorf("cell = %+v, want the fifth empty cell (1,1)", tile.Coord)
			}
			if board.At(tile.Coord) != tt.value {
				t.Error("tile not written to the board")
			}
		})
	}
}

func TestSpawnTileOnlyEmptyCells(t *testing.T) {
	board := Board{
		{2, 0, 4},
		{8, 16, 0},
		{0, 32, 64},
	}
	rng := rand.New(rand.NewSource(99))

	for range 3 {
		tile, ok := SpawnTile(board, rng, DefaultFourProbability)
		if !ok {
			t.Fatal("spawn failed while empty cells remain")
		}
		if tile.Value != 2 && tile.Value != 4 {
			t.Errorf("spawned %d", tile.Value)
		}
	}
	if HasEmptyCell(board) {
		t.Error("three spawns should fill the three empty cells")
	}
	if board[0][0] != 2 || board[1][1] != 16 || board[2][2] != 64 {
		t.Error("spawn overwrote an occupied cell")
	}
}

func TestSpawnDistribution(t *testing.T) {
	rng := rand.New(rand.NewSource(2048))
	fours := 0
	const n = 10000

	for range n {
		board := NewBoard(4)
		tile, _ := SpawnTile(board, rng, DefaultFourProbability)
		if tile.Value == 4 {
			fours++
		}
	}

	ratio := float64(fours) / n
	if ratio < 0.08 || ratio > 0.12 {
		t.Errorf("four ratio = %.3f, want about 0.1", ratio)
	}
}
