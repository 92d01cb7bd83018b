// Package config loads game and server configuration.
// Game settings come from YAML files with an embedded default; server
// settings come from a YAML file or T2048_* environment variables.
package config

import (
	"fmt"

	"github.com/vovakirdan/t2048/internal/engine"
)

// GameConfig holds all configurable parameters of a 2048 game.
type GameConfig struct {
	Board BoardConfig `yaml:"board"`
	Spawn SpawnConfig `yaml:"spawn"`
	Undo  UndoConfig  `yaml:"undo"`
}

// BoardConfig defines board dimensions and the goal.
type BoardConfig struct {
	Size       int `yaml:"size"`
	WinTile    int `yaml:"win_tile"` // 0 disables winning
	StartTiles int `yaml:"start_tiles"`
}

// SpawnConfig defines new tile generation.
type SpawnConfig struct {
	FourProbability float64 `yaml:"four_probability"`
}

// UndoConfig bounds the undo history.
type UndoConfig struct {
	MaxDepth int `yaml:"max_depth"` // 0 = unbounded
}

// Validate reports the first invalid setting.
func (c GameConfig) Validate() error {
	switch {
	case c.Board.Size < 2:
		return fmt.Errorf("config: board.size must be at least 2, got %d", c.Board.Size)
	case c.Board.WinTile != 0 && (c.Board.WinTile < 4 || c.Board.WinTile&(c.Board.WinTile-1) != 0):
		return fmt.Errorf("config: board.win_tile must be 0 or a power of two >= 4, got %d", c.Board.WinTile)
	case c.Board.StartTiles < 0 || c.Board.StartTiles > c.Board.Size*c.Board.Size:
		return fmt.Errorf("config: board.start_tiles must be between 0 and %d, got %d", c.Board.Size*c.Board.Size, c.Board.StartTiles)
	case c.Spawn.FourProbability < 0 || c.Spawn.FourProbability > 1:
		return fmt.Errorf("config: spawn.four_probability must be within [0,1], got %g", c.Spawn.FourProbability)
	case c.Undo.MaxDepth < 0:
		return fmt.Errorf("config: undo.max_depth must not be negative, got %d", c.Undo.MaxDepth)
	}
	return nil
}

// EngineConfig converts the game settings for the engine.
func (c GameConfig) EngineConfig() engine.Config {
	return engine.Config{
		Size:            c.Board.Size,
		WinTile:         c.Board.WinTile,
		StartTiles:      c.Board.StartTiles,
		FourProbability: c.Spawn.FourProbability,
		UndoDepth:       c.Undo.MaxDepth,
	}
}
