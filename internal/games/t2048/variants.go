package t2048

import (
	"github.com/vovakirdan/t2048/internal/config"
	"github.com/vovakirdan/t2048/internal/registry"
)

// Variant IDs.
const (
	VariantClassic = "classic"
	VariantMini    = "mini"
	VariantBig     = "big"
	VariantEndless = "endless"
)

// DefaultVariant is played when none is named.
const DefaultVariant = VariantClassic

func init() {
	registry.Register(registry.Variant{
		ID:          VariantClassic,
		Title:       "Classic",
		Description: "The board from the config file, 4x4 to 2048 by default",
		Order:       0,
	})
	registry.Register(registry.Variant{
		ID:          VariantMini,
		Title:       "Mini",
		Description: "3x3 board, reach 256",
		Order:       1,
		StatsScope:  VariantMini,
		Configure: func(cfg *config.GameConfig) {
			cfg.Board.Size = 3
			cfg.Board.WinTile = 256
		},
	})
	registry.Register(registry.Variant{
		ID:          VariantBig,
		Title:       "Big",
		Description: "5x5 board, reach 4096",
		Order:       2,
		StatsScope:  VariantBig,
		Configure: func(cfg *config.GameConfig) {
			cfg.Board.Size = 5
			cfg.Board.WinTile = 4096
		},
	})
	registry.Register(registry.Variant{
		ID:          VariantEndless,
		Title:       "Endless",
		Description: "Classic board without a goal, play until stuck",
		Order:       3,
		StatsScope:  VariantEndless,
		Configure: func(cfg *config.GameConfig) {
			cfg.Board.WinTile = 0
		},
	})
}
