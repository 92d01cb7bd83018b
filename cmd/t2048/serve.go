package main

import (
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/t2048/internal/config"
	"github.com/vovakirdan/t2048/internal/platform/tui"
	"github.com/vovakirdan/t2048/internal/storage"
	"github.com/vovakirdan/t2048/internal/transport/websocket"
)

var (
	flagServerConfig string
	flagSSHAddr      string
	flagHostKey      string
	flagIdleTimeout  time.Duration
	flagWSAddr       string
	flagNoSSH        bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve games over SSH and WebSocket",
	Long: `Start the game servers.

Each SSH connection gets the variant picker; the SSH user name is the
player, so statistics and suspended games follow the user between
connections. The WebSocket endpoint plays one game per connection:

  ws://host:8080/ws?player=alice&variant=classic
  -> {"action":"move","direction":"left"}
  <- {"event":"state","state":{...},"result":{...}}

Settings come from --server-config (YAML) or T2048_* environment
variables; flags given on the command line win.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.t2048/host_key

Examples:
  t2048 serve                          # SSH on :23234
  t2048 serve --ssh :2222 --ws :8080   # SSH and WebSocket
  t2048 serve --no-ssh --ws :8080      # WebSocket only
  t2048 serve --store redis --redis cache:6379

Users can connect with:
  ssh -t localhost -p 23234`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagServerConfig, "server-config", "", "Path to server config YAML")
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().DurationVar(&flagIdleTimeout, "idle-timeout", 30*time.Minute, "Idle timeout before disconnecting")
	serveCmd.Flags().StringVar(&flagWSAddr, "ws", "", "WebSocket server address (host:port), empty to disable")
	serveCmd.Flags().BoolVar(&flagNoSSH, "no-ssh", false, "Disable the SSH server")
}

// serverConfig loads the server settings and applies explicit flags.
func serverConfig(cmd *cobra.Command) (config.ServerConfig, error) {
	cfg, err := config.LoadServer(flagServerConfig)
	if err != nil {
		return config.ServerConfig{}, err
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.LogLevel = flagLogLevel
	}
	if flags.Changed("ssh") {
		cfg.SSH.Address = flagSSHAddr
		cfg.SSH.Enabled = true
	}
	if flags.Changed("no-ssh") {
		cfg.SSH.Enabled = !flagNoSSH
	}
	if flags.Changed("host-key") {
		cfg.SSH.HostKeyPath = flagHostKey
	}
	if flags.Changed("idle-timeout") {
		cfg.SSH.IdleTimeout = flagIdleTimeout
	}
	if flags.Changed("ws") {
		cfg.WebSocket.Address = flagWSAddr
		cfg.WebSocket.Enabled = flagWSAddr != ""
	}
	if flags.Changed("store") {
		cfg.Store.Backend = flagStore
	}
	if flags.Changed("db") {
		cfg.Store.Path = flagDBPath
	}
	if flags.Changed("redis") {
		cfg.Store.RedisAddr = flagRedisAddr
	}
	if flags.Changed("config") {
		cfg.GameConfigPath = flagConfig
	}
	return cfg, nil
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	cfg, err := serverConfig(cmd)
	if err != nil {
		return err
	}
	flagLogLevel = cfg.LogLevel
	logger, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}

	if !cfg.SSH.Enabled && !cfg.WebSocket.Enabled {
		logger.Warn("nothing to serve: SSH and WebSocket are both disabled")
		return nil
	}

	game, err := config.LoadGame(cfg.GameConfigPath)
	if err != nil {
		return err
	}

	store, err := storage.Open(ctx, cfg.Store.Storage())
	if err != nil {
		return err
	}
	defer store.Close()
	logger.Info("statistics store ready", "backend", cfg.Store.Backend)

	g, ctx := errgroup.WithContext(ctx)

	if cfg.SSH.Enabled {
		server, err := tui.NewSSHServer(tui.SSHServerConfig{
			Address:     cfg.SSH.Address,
			HostKeyPath: cfg.SSH.HostKeyPath,
			IdleTimeout: cfg.SSH.IdleTimeout,
			Game:        game,
		}, store, logger)
		if err != nil {
			return err
		}
		g.Go(func() error {
			return server.ListenAndServe(ctx)
		})
	}

	if cfg.WebSocket.Enabled {
		server := websocket.NewServer(store, game, logger)
		g.Go(func() error {
			return server.ListenAndServe(ctx, cfg.WebSocket.Address)
		})
	}

	return g.Wait()
}
