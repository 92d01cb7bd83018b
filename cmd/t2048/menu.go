package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/t2048/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a variant interactively",
	Long: `Open the variant picker. Variants with a suspended game are marked
[continue]; tab opens the leaderboard of every variant.`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	base, err := loadGameConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := tuiLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	store, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer store.Close()

	return tui.RunApp(ctx, tui.AppConfig{
		Store:         store,
		Game:          base,
		Player:        flagPlayer,
		Logger:        logger,
		Seed:          flagSeed,
		ScreenshotDir: screenshotDir(),
	}, runtimeConfig())
}
