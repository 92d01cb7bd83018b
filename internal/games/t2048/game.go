// Package t2048 is the playable 2048 game: it turns input frames into
// session calls and draws the board, HUD and overlays into a core.Screen.
// Terminal, SSH and WebSocket front ends all drive a Game.
package t2048

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/t2048/internal/config"
	"github.com/vovakirdan/t2048/internal/core"
	"github.com/vovakirdan/t2048/internal/engine"
	"github.com/vovakirdan/t2048/internal/registry"
	"github.com/vovakirdan/t2048/internal/session"
	"github.com/vovakirdan/t2048/internal/stats"
	"github.com/vovakirdan/t2048/internal/storage"
)

// Game wraps one player's session. It is not safe for concurrent use.
type Game struct {
	variant registry.Variant
	session *session.Session

	// seed is the base for reproducible deals, 0 for time-based ones.
	seed  int64
	deals int64

	screenW  int
	screenH  int
	layout   layout
	tooSmall bool

	last    engine.MoveResult
	showWin bool
}

// New wraps an existing session.
func New(variant registry.Variant, s *session.Session) *Game {
	return &Game{
		variant: variant,
		session: s,
	}
}

// Open builds the engine, tracker and session for player on variant and
// wraps them in a Game. base is the loaded game config before the variant
// adjusts it.
func Open(ctx context.Context, variant registry.Variant, base config.GameConfig, store storage.Store, player string, logger *log.Logger, opts ...session.Option) (*Game, error) {
	cfg := variant.Apply(base)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("t2048: variant %s: %w", variant.ID, err)
	}

	tracker := stats.NewTracker(store, player, logger).ForVariant(variant.StatsScope)
	if logger != nil {
		opts = append([]session.Option{session.WithLogger(logger)}, opts...)
	}
	eng := engine.New(cfg.EngineConfig())
	return New(variant, session.New(ctx, eng, tracker, opts...)), nil
}

// ID returns the variant identifier.
func (g *Game) ID() string {
	return g.variant.ID
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.variant.Title == "" {
		return "2048"
	}
	return "2048 " + g.variant.Title
}

// Session exposes the underlying session.
func (g *Game) Session() *session.Session {
	return g.session
}

// Start deals a fresh game. A non-zero cfg.Seed makes this deal and every
// later new game reproducible.
func (g *Game) Start(ctx context.Context, cfg core.RuntimeConfig) {
	g.configure(cfg)
	g.newGame(ctx)
}

// Resume continues the suspended game, or deals a fresh one when there is
// nothing to continue. It reports whether a saved game was restored; the
// error is set when a saved game existed but could not be loaded.
func (g *Game) Resume(ctx context.Context, cfg core.RuntimeConfig) (bool, error) {
	g.configure(cfg)
	err := g.session.Resume(ctx)
	if err == nil {
		g.last = engine.MoveResult{}
		g.showWin = false
		return true, nil
	}
	g.newGame(ctx)
	if errors.Is(err, session.ErrNoSavedGame) {
		return false, nil
	}
	return false, err
}

// Suspend stores the running game for a later Resume.
func (g *Game) Suspend(ctx context.Context) error {
	return g.session.Suspend(ctx)
}

func (g *Game) configure(cfg core.RuntimeConfig) {
	g.seed = cfg.Seed
	g.deals = 0
	if cfg.ScreenW > 0 || cfg.ScreenH > 0 {
		g.Resize(cfg.ScreenW, cfg.ScreenH)
	}
}

func (g *Game) nextSeed() int64 {
	if g.seed == 0 {
		return time.Now().UnixNano()
	}
	s := g.seed + g.deals
	g.deals++
	return s
}

func (g *Game) newGame(ctx context.Context) {
	g.session.NewGame(ctx, g.nextSeed())
	g.last = engine.MoveResult{}
	g.showWin = false
}

// Resize adapts the layout to a new screen size.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	l, ok := pickLayout(g.session.Engine().Config().Size, w, h)
	g.layout = l
	g.tooSmall = !ok
}

// DirectionFor maps a move action to an engine direction.
func DirectionFor(a core.Action) (engine.Direction, bool) {
	switch a {
	case core.ActionUp:
		return engine.DirUp, true
	case core.ActionDown:
		return engine.DirDown, true
	case core.ActionLeft:
		return engine.DirLeft, true
	case core.ActionRight:
		return engine.DirRight, true
	}
	return 0, false
}

// Step applies the frame's actions in order. Moves are ignored while the
// game is paused, over, or the window is too small to show the board.
func (g *Game) Step(ctx context.Context, in core.InputFrame) core.StepResult {
	var res core.StepResult
	for _, a := range in.Actions {
		g.apply(ctx, a, &res)
	}
	res.State = g.State()
	return res
}

func (g *Game) apply(ctx context.Context, a core.Action, res *core.StepResult) {
	g.showWin = false

	if dir, ok := DirectionFor(a); ok {
		if g.tooSmall || g.session.Paused() || g.session.Engine().Over() {
			return
		}
		mr := g.session.Move(ctx, dir)
		if !mr.Moved {
			return
		}
		g.last = mr
		res.Moved = true
		if mr.WonThisMove {
			res.JustWon = true
			g.showWin = true
		}
		if mr.GameOver {
			res.JustLost = true
		}
		return
	}

	switch a {
	case core.ActionUndo:
		if g.session.Undo() {
			g.last = engine.MoveResult{}
		}
	case core.ActionNewGame:
		g.newGame(ctx)
	case core.ActionTheme:
		g.session.CycleTheme(ctx)
	case core.ActionPause:
		g.session.TogglePause()
	}
}

// LastMove returns the result of the most recent committed move, or a
// zero result after undo and new game.
func (g *Game) LastMove() engine.MoveResult {
	return g.last
}

// Theme returns the player's current theme.
func (g *Game) Theme() stats.Theme {
	return g.session.Theme()
}

// State returns the status shown outside the board.
func (g *Game) State() core.GameState {
	eng := g.session.Engine()
	sum := g.session.Summary()
	return core.GameState{
		Score:     eng.Score(),
		BestScore: sum.BestScore,
		Moves:     sum.MovesMade,
		MaxTile:   eng.MaxTile(),
		Won:       eng.Won(),
		GameOver:  eng.Over(),
		Paused:    g.session.Paused() || g.tooSmall,
	}
}
