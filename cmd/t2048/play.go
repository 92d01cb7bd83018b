package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/t2048/internal/config"
	"github.com/vovakirdan/t2048/internal/core"
	"github.com/vovakirdan/t2048/internal/games/t2048"
	"github.com/vovakirdan/t2048/internal/platform/tui"
)

var flagNewGame bool

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a variant",
	Long: `Start playing the given variant (classic by default). A game
suspended on quit is continued unless --new is given.

Controls:
  Arrows/WASD  - Slide tiles
  Z            - Undo
  R            - New game
  T            - Cycle theme
  P            - Pause the clock
  L            - Leaderboard
  H            - Help
  Ctrl+S       - Save a screenshot
  Q/Ctrl+C     - Quit (the game is kept)

Examples:
  t2048 play
  t2048 play mini
  t2048 play --new --seed 42
  t2048 play --config ./six-by-six.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagNewGame, "new", false, "Deal a new game instead of continuing a suspended one")
}

// runtimeConfig sizes the game to the terminal, 80x24 when unknown.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.Seed = flagSeed
	return cfg
}

// screenshotDir returns ~/.t2048/screenshots, empty when home is unusable.
func screenshotDir() string {
	dir, err := config.DataDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "screenshots")
}

// tuiLogger logs to the log file, or nowhere when it cannot be opened.
func tuiLogger() (*log.Logger, func(), error) {
	f, err := openLogFile()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Warning:", err)
		logger, lerr := newLogger(io.Discard)
		return logger, func() {}, lerr
	}
	logger, err := newLogger(f)
	if err != nil {
		f.Close()
		return nil, nil, err
	}
	return logger, func() { f.Close() }, nil
}

func runPlay(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	v, err := variantArg(args)
	if err != nil {
		return err
	}
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

	game, err := t2048.Open(ctx, v, base, store, flagPlayer, logger)
	if err != nil {
		return err
	}

	rt := runtimeConfig()
	if flagNewGame {
		game.Start(ctx, rt)
	} else if _, err := game.Resume(ctx, rt); err != nil {
		logger.Warn("saved game discarded", "variant", v.ID, "error", err)
	}

	return tui.RunGame(ctx, game, rt, logger, screenshotDir())
}
