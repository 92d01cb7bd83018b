package config

import (
	_ "embed"

	"github.com/vovakirdan/t2048/internal/engine"
)

//go:embed defaults/t2048.yaml
var defaultGameYAML []byte

// DefaultGameConfig returns the classic 4x4 game.
func DefaultGameConfig() GameConfig {
	return GameConfig{
		Board: BoardConfig{
			Size:       engine.DefaultSize,
			WinTile:    engine.DefaultWinTile,
			StartTiles: 2,
		},
		Spawn: SpawnConfig{
			FourProbability: engine.DefaultFourProbability,
		},
	}
}

// DefaultGameYAML returns the embedded default configuration file.
func DefaultGameYAML() []byte {
	return defaultGameYAML
}
