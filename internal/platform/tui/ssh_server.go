package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/vovakirdan/t2048/internal/config"
	"github.com/vovakirdan/t2048/internal/core"
	"github.com/vovakirdan/t2048/internal/storage"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23234").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key is generated at ~/.t2048/host_key.
	HostKeyPath string

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration

	// Game is the game configuration every player gets.
	Game config.GameConfig
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		IdleTimeout: 30 * time.Minute,
		Game:        config.DefaultGameConfig(),
	}
}

type ctxKey string

const activeGameKey ctxKey = "t2048.active"

// SSHServer serves the game over SSH. Each connection gets its own app
// with the SSH user as player; all of them share one store.
type SSHServer struct {
	config SSHServerConfig
	server *ssh.Server
	store  storage.Store
	logger *log.Logger
}

// NewSSHServer creates a new SSH server. The caller keeps ownership of
// store and closes it after Shutdown.
func NewSSHServer(cfg SSHServerConfig, store storage.Store, logger *log.Logger) (*SSHServer, error) {
	if logger == nil {
		logger = log.Default()
	}
	logger = logger.WithPrefix("t2048-ssh")

	srv := &SSHServer{
		config: cfg,
		store:  store,
		logger: logger,
	}

	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		dir, err := config.DataDir()
		if err != nil {
			return nil, fmt.Errorf("tui: cannot locate host key: %w", err)
		}
		hostKeyPath = filepath.Join(dir, "host_key")
	}

	if err := os.MkdirAll(filepath.Dir(hostKeyPath), 0o700); err != nil {
		return nil, fmt.Errorf("tui: cannot create host key directory: %w", err)
	}

	opts := []ssh.Option{
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			srv.suspendMiddleware,
			srv.loggingMiddleware,
		),
	}

	server, err := wish.NewServer(opts...)
	if err != nil {
		return nil, fmt.Errorf("tui: cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// teaHandler creates the app for each SSH session.
func (s *SSHServer) teaHandler(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sess.Pty()
	if !ok {
		s.logger.Warn("no PTY requested", "user", sess.User())
		wish.Fatalln(sess, "t2048 needs an interactive terminal: ssh -t")
		return nil, nil
	}

	runtime := core.RuntimeConfig{
		ScreenW: pty.Window.Width,
		ScreenH: pty.Window.Height,
	}
	app := NewAppModel(sess.Context(), AppConfig{
		Store:  s.store,
		Game:   s.config.Game,
		Player: sess.User(),
		Logger: s.logger,
	}, runtime)
	sess.Context().SetValue(activeGameKey, app)

	return app, []tea.ProgramOption{
		tea.WithAltScreen(),
	}
}

// suspendMiddleware keeps the game of a dropped connection for the next
// login.
func (s *SSHServer) suspendMiddleware(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		next(sess)
		if app, ok := sess.Context().Value(activeGameKey).(AppModel); ok {
			app.SuspendActive()
		}
	}
}

// loggingMiddleware logs SSH session events.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		start := time.Now()
		s.logger.Info("session started",
			"user", sess.User(),
			"remote", sess.RemoteAddr().String(),
		)
		next(sess)
		s.logger.Info("session ended",
			"user", sess.User(),
			"remote", sess.RemoteAddr().String(),
			"duration", time.Since(start).Round(time.Second),
		)
	}
}

// ListenAndServe serves until ctx is cancelled, then shuts down.
func (s *SSHServer) ListenAndServe(ctx context.Context) error {
	s.logger.Info("starting SSH server", "address", s.config.Address)

	errCh := make(chan error, 1)
	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("tui: ssh server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info("shutting down...")
	return s.Shutdown()
}

// Shutdown gracefully stops the server.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return s.server.Shutdown(ctx)
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Address
}
