package tui

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/t2048/internal/core"
	"github.com/vovakirdan/t2048/internal/games/t2048"
)

// statusTTL is how long a status line such as "screenshot saved" stays.
const statusTTL = 3 * time.Second

// GameModel is the Bubble Tea model around one running game.
type GameModel struct {
	ctx    context.Context
	game   *t2048.Game
	screen *core.Screen
	logger *log.Logger

	keyMapper *KeyMapper
	help      help.Model
	palette   Palette
	frame     core.InputFrame

	showHelp    bool
	leaderboard *LeaderboardModel

	screenshotDir string
	status        string
	statusUntil   time.Time

	// exitOnBack makes Back quit the program, for the single-game mode
	// where there is no menu to return to.
	exitOnBack bool
	backToMenu bool
	quitting   bool
}

// NewGameModel wraps a started game. screenshotDir may be empty to
// disable screenshots.
func NewGameModel(ctx context.Context, game *t2048.Game, cfg core.RuntimeConfig, logger *log.Logger, screenshotDir string) GameModel {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	h := help.New()
	h.ShowAll = true
	h.Width = cfg.ScreenW

	game.Resize(cfg.ScreenW, cfg.ScreenH)

	return GameModel{
		ctx:           ctx,
		game:          game,
		screen:        core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		logger:        logger,
		keyMapper:     NewKeyMapper(),
		help:          h,
		palette:       PaletteFor(game.Theme()),
		screenshotDir: screenshotDir,
	}
}

// Init starts the play clock.
func (m GameModel) Init() tea.Cmd {
	return tickCmd(clockInterval)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.leaderboard != nil {
			return m.updateLeaderboard(msg)
		}
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keyMapper.MapKey(msg)

	if m.showHelp {
		switch action {
		case core.ActionQuit:
			// handled below
		case core.ActionHelp, core.ActionBack:
			m.showHelp = false
			return m, nil
		default:
			return m, nil
		}
	}

	switch action {
	case core.ActionNone:
		return m, nil

	case core.ActionQuit:
		m.suspend()
		m.quitting = true
		return m, tea.Quit

	case core.ActionBack:
		m.suspend()
		if m.exitOnBack {
			m.quitting = true
			return m, tea.Quit
		}
		m.backToMenu = true
		return m, nil

	case core.ActionHelp:
		m.showHelp = true
		return m, nil

	case core.ActionLeaderboard:
		page := PageForSession(m.ctx, m.game.Title(), m.game.Session())
		lb := NewLeaderboardModel([]LeaderboardPage{page}, 0, m.palette, m.screen.Width(), m.screen.Height())
		m.leaderboard = &lb
		return m, nil

	case core.ActionScreenshot:
		m.saveScreenshot()
		return m, nil
	}

	m.frame.Push(action)
	res := m.game.Step(m.ctx, m.frame)
	m.frame.Clear()

	if action == core.ActionTheme {
		m.palette = PaletteFor(m.game.Theme())
	}
	if res.JustWon {
		m.logger.Info("win tile reached", "player", m.game.Session().Player(), "score", res.State.Score)
	}
	return m, nil
}

func (m GameModel) updateLeaderboard(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.leaderboard.Update(msg)
	lb, ok := next.(LeaderboardModel)
	if !ok {
		m.leaderboard = nil
		return m, cmd
	}
	if lb.IsQuitting() {
		m.suspend()
		m.quitting = true
		return m, tea.Quit
	}
	if lb.IsGoingBack() {
		m.leaderboard = nil
		return m, nil
	}
	m.leaderboard = &lb
	return m, cmd
}

func (m GameModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.screen.Resize(msg.Width, msg.Height)
	m.game.Resize(msg.Width, msg.Height)
	m.help.Width = msg.Width
	if m.leaderboard != nil {
		next, _ := m.leaderboard.Update(msg)
		if lb, ok := next.(LeaderboardModel); ok {
			m.leaderboard = &lb
		}
	}
	return m, nil
}

func (m GameModel) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.quitting {
		return m, nil
	}
	m.game.Session().FlushTime(m.ctx)
	if m.status != "" && now.After(m.statusUntil) {
		m.status = ""
	}
	return m, tickCmd(clockInterval)
}

// suspend stores an unfinished game so the next visit can pick it up.
func (m *GameModel) suspend() {
	if err := m.game.Suspend(m.ctx); err != nil {
		m.logger.Error("cannot suspend game", "player", m.game.Session().Player(), "error", err)
	}
}

// saveScreenshot writes the plain-text board to the screenshot directory.
func (m *GameModel) saveScreenshot() {
	if m.screenshotDir == "" {
		return
	}
	path, err := SaveScreenshot(m.screenshotDir, m.game.ID(), m.renderBuffer(), time.Now())
	if err != nil {
		m.logger.Error("cannot save screenshot", "error", err)
		m.setStatus("screenshot failed")
		return
	}
	m.logger.Info("screenshot saved", "path", path)
	m.setStatus("saved " + filepath.Base(path))
}

func (m *GameModel) setStatus(s string) {
	m.status = s
	m.statusUntil = time.Now().Add(statusTTL)
}

// SaveScreenshot writes screen as text to dir/<id>_<timestamp>.txt.
func SaveScreenshot(dir, id string, screen *core.Screen, now time.Time) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("tui: cannot create screenshot directory: %w", err)
	}
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", id, now.Format("20060102_150405")))
	if err := os.WriteFile(path, []byte(screen.String()+"\n"), 0o600); err != nil {
		return "", fmt.Errorf("tui: cannot write screenshot: %w", err)
	}
	return path, nil
}

// renderBuffer draws the game and the status line into the screen buffer.
func (m GameModel) renderBuffer() *core.Screen {
	m.game.Render(m.screen)
	if m.status != "" {
		m.screen.DrawTextCentered(m.screen.Height()-1, m.status, core.ColorAccent)
	}
	return m.screen
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}
	if m.leaderboard != nil {
		return m.leaderboard.View()
	}
	if m.showHelp {
		return m.helpView()
	}
	return RenderScreen(m.renderBuffer(), m.palette)
}

func (m GameModel) helpView() string {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.palette.Border).
		Padding(1, 2)

	content := lipgloss.JoinVertical(lipgloss.Left,
		m.palette.Title.Render("HOW TO PLAY"),
		"",
		m.palette.Normal.Render("Slide the tiles. Equal tiles merge into their sum."),
		m.palette.Normal.Render(fmt.Sprintf("Reach %s to win, then keep going.", m.winTileText())),
		"",
		m.help.View(m.keyMapper.Keys()),
		"",
		m.palette.Muted.Render("h or esc to close"),
	)
	return lipgloss.Place(m.screen.Width(), m.screen.Height(), lipgloss.Center, lipgloss.Center, box.Render(content))
}

func (m GameModel) winTileText() string {
	win := m.game.Session().Engine().Config().WinTile
	if win == 0 {
		return "no goal"
	}
	return fmt.Sprint(win)
}

// Game returns the wrapped game.
func (m GameModel) Game() *t2048.Game {
	return m.game
}

// IsQuitting returns true if the user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the user requested to go back to the menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// ShowingHelp reports whether the help screen is open.
func (m GameModel) ShowingHelp() bool {
	return m.showHelp
}

// ShowingLeaderboard reports whether the leaderboard is open.
func (m GameModel) ShowingLeaderboard() bool {
	return m.leaderboard != nil
}

// RunGame plays a single started game until the player quits.
func RunGame(ctx context.Context, game *t2048.Game, cfg core.RuntimeConfig, logger *log.Logger, screenshotDir string) error {
	model := NewGameModel(ctx, game, cfg, logger, screenshotDir)
	model.exitOnBack = true

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	final, err := p.Run()
	if gm, ok := final.(GameModel); !ok || !gm.IsQuitting() {
		// Interrupted rather than quit; keep the game for next time.
		if serr := game.Suspend(context.WithoutCancel(ctx)); serr != nil {
			model.logger.Error("cannot suspend game", "error", serr)
		}
	}
	return err
}
