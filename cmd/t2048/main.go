// t2048 is the 2048 sliding-tile puzzle for the terminal.
//
// Usage:
//
//	t2048 list               - List board variants
//	t2048 play [variant]     - Play a variant, continuing a suspended game
//	t2048 menu               - Pick a variant interactively
//	t2048 scores [variant]   - Show the top scores of a variant
//	t2048 stats [variant]    - Show lifetime statistics of a variant
//	t2048 serve              - Serve games over SSH and WebSocket
//
// Global flags:
//
//	--config <path>     - Game config YAML (board size, win tile, spawn odds)
//	--seed <value>      - Set RNG seed for reproducible deals
//	--store <backend>   - Statistics backend: sqlite, redis or memory
//	--db <path>         - SQLite database path (default: ~/.t2048/t2048.db)
//	--redis <addr>      - Redis address for the redis backend
//	--player <name>     - Keep statistics under this player name
//	--log-level <lvl>   - debug, info, warn or error
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/t2048/internal/config"
	"github.com/vovakirdan/t2048/internal/storage"

	// Register the board variants.
	_ "github.com/vovakirdan/t2048/internal/games/t2048"
)

var (
	// Global flags
	flagConfig    string
	flagSeed      int64
	flagStore     string
	flagDBPath    string
	flagRedisAddr string
	flagPlayer    string
	flagLogLevel  string
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "t2048",
	Short: "2048 - slide and merge tiles in your terminal",
	Long: `t2048 is the 2048 sliding-tile puzzle for the terminal.

Slide the tiles with the arrow keys. Two equal tiles that collide merge
into their sum. Reach 2048 to win, then keep going as long as you can.

Available commands:
  list     - Show the board variants
  play     - Play a variant directly
  menu     - Interactive variant picker
  scores   - View top scores
  stats    - View lifetime statistics
  serve    - Serve games over SSH and WebSocket

Examples:
  t2048 play
  t2048 play big
  t2048 menu
  t2048 scores mini
  t2048 serve --ssh :2222 --ws :8080`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to game config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagStore, "store", storage.BackendSQLite, "Statistics backend: sqlite, redis, memory")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.t2048/t2048.db", "Path to SQLite database")
	rootCmd.PersistentFlags().StringVar(&flagRedisAddr, "redis", "localhost:6379", "Redis address for --store redis")
	rootCmd.PersistentFlags().StringVar(&flagPlayer, "player", "", "Player name for statistics (empty = local profile)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(serveCmd)
}

// newLogger returns a logger writing to w at the --log-level level.
func newLogger(w io.Writer) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level: %w", err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
		Prefix:          "t2048",
		Level:           level,
	}), nil
}

// openLogFile opens ~/.t2048/t2048.log for the full-screen commands,
// which cannot log to the terminal they draw on.
func openLogFile() (*os.File, error) {
	dir, err := config.DataDir()
	if err != nil {
		return nil, err
	}
	f, err := os.OpenFile(filepath.Join(dir, "t2048.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, fmt.Errorf("cannot open log file: %w", err)
	}
	return f, nil
}

// openStore opens the backend named by the global flags.
func openStore(ctx context.Context) (storage.Store, error) {
	return storage.Open(ctx, storage.Config{
		Backend:   flagStore,
		Path:      flagDBPath,
		RedisAddr: flagRedisAddr,
	})
}

// loadGameConfig reads --config or the default search path.
func loadGameConfig() (config.GameConfig, error) {
	return config.LoadGame(flagConfig)
}
