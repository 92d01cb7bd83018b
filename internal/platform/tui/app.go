package tui

import (
	"context"
	"io"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/t2048/internal/config"
	"github.com/vovakirdan/t2048/internal/core"
	"github.com/vovakirdan/t2048/internal/games/t2048"
	"github.com/vovakirdan/t2048/internal/stats"
	"github.com/vovakirdan/t2048/internal/storage"
)

// AppConfig is what the app needs to open games for one player.
type AppConfig struct {
	Store  storage.Store
	Game   config.GameConfig
	Player string
	Logger *log.Logger
	// Seed makes deals reproducible; 0 seeds from the clock.
	Seed int64
	// ScreenshotDir is where ctrl+s writes; empty disables screenshots.
	ScreenshotDir string
}

// activeGame remembers the game on screen so a program that ends without
// the player quitting (a dropped SSH connection, a signal) can still
// suspend it. Copies of AppModel share one activeGame.
type activeGame struct {
	mu   sync.Mutex
	game *t2048.Game
}

func (a *activeGame) set(g *t2048.Game) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.game = g
}

// suspend stores the game still on screen, if any.
func (a *activeGame) suspend(ctx context.Context, logger *log.Logger) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.game == nil {
		return
	}
	if err := a.game.Suspend(ctx); err != nil {
		logger.Error("cannot suspend game", "player", a.game.Session().Player(), "error", err)
	}
	a.game = nil
}

// AppModel runs the full flow for one player: menu -> game -> menu, with
// the leaderboard reachable from the menu. Local `menu` and every SSH
// connection use it.
type AppModel struct {
	ctx     context.Context
	cfg     AppConfig
	runtime core.RuntimeConfig
	tracker *stats.Tracker
	active  *activeGame

	menu        MenuModel
	leaderboard *LeaderboardModel
	gameModel   *GameModel
	quitting    bool
}

// NewAppModel creates the app starting on the menu.
func NewAppModel(ctx context.Context, cfg AppConfig, runtime core.RuntimeConfig) AppModel {
	if cfg.Logger == nil {
		cfg.Logger = log.New(io.Discard)
	}
	runtime.Seed = cfg.Seed

	m := AppModel{
		ctx:     ctx,
		cfg:     cfg,
		runtime: runtime,
		tracker: stats.NewTracker(cfg.Store, cfg.Player, cfg.Logger),
		active:  &activeGame{},
	}
	m.menu = m.newMenu()
	return m
}

func (m AppModel) newMenu() MenuModel {
	palette := PaletteFor(m.tracker.Theme(m.ctx))
	return NewMenuModel(MenuItemsFor(m.ctx, m.tracker), m.cfg.Player, palette, m.runtime.ScreenW, m.runtime.ScreenH)
}

// Init initializes the app.
func (m AppModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update routes messages to the active screen.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.runtime.ScreenW = wsm.Width
		m.runtime.ScreenH = wsm.Height
	}

	switch {
	case m.gameModel != nil:
		return m.updateGame(msg)
	case m.leaderboard != nil:
		return m.updateLeaderboard(msg)
	default:
		return m.updateMenu(msg)
	}
}

func (m AppModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.menu.Update(msg)
	if menu, ok := next.(MenuModel); ok {
		m.menu = menu
	}

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.menu.WantsLeaderboard() {
		lb := NewLeaderboardModel(PagesForPlayer(m.ctx, m.tracker), m.menu.Cursor(), m.menu.palette, m.runtime.ScreenW, m.runtime.ScreenH)
		m.leaderboard = &lb
		m.menu.openLeaderboard = false
		return m, nil
	}

	if selected := m.menu.Selected(); selected != nil {
		m.menu.selected = nil
		return m.startGame(*selected)
	}

	return m, cmd
}

func (m AppModel) startGame(item MenuItem) (tea.Model, tea.Cmd) {
	logger := m.cfg.Logger
	game, err := t2048.Open(m.ctx, item.Variant, m.cfg.Game, m.cfg.Store, m.cfg.Player, logger)
	if err != nil {
		logger.Error("cannot open game", "variant", item.Variant.ID, "error", err)
		m.menu.SetNotice("Cannot start " + item.Variant.Title + ": invalid configuration")
		return m, nil
	}

	if _, err := game.Resume(m.ctx, m.runtime); err != nil {
		logger.Warn("saved game discarded", "player", m.cfg.Player, "variant", item.Variant.ID, "error", err)
	}

	gm := NewGameModel(m.ctx, game, m.runtime, logger, m.cfg.ScreenshotDir)
	m.gameModel = &gm
	m.active.set(game)
	return m, m.gameModel.Init()
}

func (m AppModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.gameModel.Update(msg)
	if gm, ok := next.(GameModel); ok {
		m.gameModel = &gm
	}

	if m.gameModel.IsQuitting() {
		m.active.set(nil)
		m.quitting = true
		return m, tea.Quit
	}

	if m.gameModel.BackToMenu() {
		m.active.set(nil)
		m.gameModel = nil
		m.menu = m.newMenu()
		return m, m.menu.Init()
	}

	return m, cmd
}

func (m AppModel) updateLeaderboard(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.leaderboard.Update(msg)
	lb, ok := next.(LeaderboardModel)
	if !ok {
		m.leaderboard = nil
		return m, cmd
	}

	if lb.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if lb.IsGoingBack() {
		m.leaderboard = nil
		m.menu = m.newMenu()
		return m, nil
	}

	m.leaderboard = &lb
	return m, cmd
}

// View renders the active screen.
func (m AppModel) View() string {
	if m.quitting {
		return ""
	}
	switch {
	case m.gameModel != nil:
		return m.gameModel.View()
	case m.leaderboard != nil:
		return m.leaderboard.View()
	default:
		return m.menu.View()
	}
}

// InGame reports whether a game is on screen.
func (m AppModel) InGame() bool {
	return m.gameModel != nil
}

// SuspendActive stores the game still on screen. Hosts call it after the
// program has ended.
func (m AppModel) SuspendActive() {
	m.active.suspend(context.WithoutCancel(m.ctx), m.cfg.Logger)
}

// RunApp runs the menu-driven app in the local terminal.
func RunApp(ctx context.Context, cfg AppConfig, runtime core.RuntimeConfig) error {
	model := NewAppModel(ctx, cfg, runtime)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	model.SuspendActive()
	return err
}
