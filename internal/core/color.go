package core

import "math/bits"

// Color is a semantic colour role. Front ends map roles to concrete
// terminal styles through the active theme.
type Color uint8

const (
	ColorDefault Color = iota
	ColorText
	ColorMuted
	ColorAccent
	ColorGrid
	ColorEmpty
	ColorWarning
	ColorWin
	ColorLose

	ColorTile2
	ColorTile4
	ColorTile8
	ColorTile16
	ColorTile32
	ColorTile64
	ColorTile128
	ColorTile256
	ColorTile512
	ColorTile1024
	ColorTile2048
	// ColorTileSuper covers every tile above 2048.
	ColorTileSuper
)

// TileColors lists the tile roles from 2 upwards.
var TileColors = []Color{
	ColorTile2, ColorTile4, ColorTile8, ColorTile16, ColorTile32, ColorTile64,
	ColorTile128, ColorTile256, ColorTile512, ColorTile1024, ColorTile2048,
	ColorTileSuper,
}

// TileColor returns the role for a tile value. Zero is an empty cell.
func TileColor(value int) Color {
	if value <= 0 {
		return ColorEmpty
	}
	exp := bits.Len(uint(value)) - 1
	if exp < 1 {
		return ColorTile2
	}
	if exp > len(TileColors) {
		return ColorTileSuper
	}
	return TileColors[exp-1]
}

// IsTile reports whether c is one of the tile roles.
func (c Color) IsTile() bool {
	return c >= ColorTile2 && c <= ColorTileSuper
}
