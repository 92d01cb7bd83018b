package core

import "testing"

func TestTileColor(t *testing.T) {
	tests := []struct {
		value    int
		expected Color
	}{
		{0, ColorEmpty},
		{-2, ColorEmpty},
		{2, ColorTile2},
		{4, ColorTile4},
		{64, ColorTile64},
		{1024, ColorTile1024},
		{2048, ColorTile2048},
		{4096, ColorTileSuper},
		{131072, ColorTileSuper},
	}

	for _, tc := range tests {
		if got := TileColor(tc.value); got != tc.expected {
			t.Errorf("TileColor(%d) = %d, expected %d", tc.value, got, tc.expected)
		}
	}
}

func TestColorIsTile(t *testing.T) {
	for _, c := range TileColors {
		if !c.IsTile() {
			t.Errorf("%d should be a tile colour", c)
		}
	}
	for _, c := range []Color{ColorDefault, ColorText, ColorEmpty, ColorGrid, ColorLose} {
		if c.IsTile() {
			t.Errorf("%d should not be a tile colour", c)
		}
	}
}
