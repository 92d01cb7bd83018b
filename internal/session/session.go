// Package session runs one player's game: it drives the engine and keeps
// the player's statistics, leaderboard, theme and suspended game in step.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/t2048/internal/engine"
	"github.com/vovakirdan/t2048/internal/stats"
)

// ErrNoSavedGame is returned by Resume when nothing was suspended.
var ErrNoSavedGame = errors.New("session: no saved game")

// Option customizes a Session.
type Option func(*Session)

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Session) {
		s.now = now
	}
}

// WithLogger sets the logger used for swallowed persistence errors.
func WithLogger(l *log.Logger) Option {
	return func(s *Session) {
		s.logger = l
	}
}

// Session is not safe for concurrent use. Each terminal, SSH connection
// or WebSocket connection owns one.
type Session struct {
	engine  *engine.Engine
	tracker *stats.Tracker
	logger  *log.Logger
	now     func() time.Time

	totals stats.Totals
	theme  stats.Theme

	movesMade int

	// Time on the current game is carried (already added to
	// totals.TotalTimePlayed) plus elapsed plus the running segment that
	// began at started.
	carried time.Duration
	elapsed time.Duration
	started time.Time
	running bool
	paused  bool
}

// New creates a session around eng and loads the player's statistics.
// Call NewGame or Resume to put a game on the board.
func New(ctx context.Context, eng *engine.Engine, tracker *stats.Tracker, opts ...Option) *Session {
	s := &Session{
		engine:  eng,
		tracker: tracker,
		logger:  log.New(io.Discard),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.totals = tracker.Totals(ctx)
	s.theme = tracker.Theme(ctx)
	s.startClock()
	return s
}

// Move plays one move. Statistics change only when the board changed.
func (s *Session) Move(ctx context.Context, dir engine.Direction) engine.MoveResult {
	res := s.engine.Move(dir)
	if !res.Moved {
		return res
	}

	s.movesMade++
	s.totals.TotalMoves++
	s.persistInt(ctx, stats.KeyTotalMoves, s.totals.TotalMoves)

	if score := s.engine.Score(); score > s.totals.BestScore {
		s.totals.BestScore = score
		s.persistInt(ctx, stats.KeyBestScore, score)
	}

	if res.GameOver {
		s.finishGame(ctx)
	}
	return res
}

// finishGame records a game that just ran out of moves.
func (s *Session) finishGame(ctx context.Context) {
	s.stopClock()

	s.totals.GamesPlayed++
	s.totals.TotalScore += s.engine.Score()
	s.persistInt(ctx, stats.KeyGamesPlayed, s.totals.GamesPlayed)
	s.persistInt(ctx, stats.KeyTotalScore, s.totals.TotalScore)

	entry := stats.Entry{
		Score:       s.engine.Score(),
		Date:        s.now().Format(stats.DateLayout),
		Moves:       s.movesMade,
		HighestTile: s.engine.MaxTile(),
	}
	if _, err := s.tracker.AddEntry(ctx, entry); err != nil {
		s.logger.Error("cannot save leaderboard", "player", s.tracker.Player(), "error", err)
	}

	s.FlushTime(ctx)
	s.logger.Info("game over", "player", s.tracker.Player(), "score", entry.Score, "moves", entry.Moves, "tile", entry.HighestTile)
}

// Undo reverts the last move. A game that had ended is playable again and
// its clock restarts. Statistics are not rolled back.
func (s *Session) Undo() bool {
	wasOver := s.engine.Over()
	if !s.engine.Undo() {
		return false
	}
	if wasOver && !s.paused {
		s.startClock()
	}
	return true
}

// NewGame abandons the current game and deals a fresh board.
// An unfinished game with at least one move counts as played.
func (s *Session) NewGame(ctx context.Context, seed int64) {
	if !s.engine.Over() && s.movesMade > 0 {
		s.totals.GamesPlayed++
		s.totals.TotalScore += s.engine.Score()
	}

	s.fold()
	s.carried = 0
	s.elapsed = 0
	s.movesMade = 0
	s.paused = false
	s.startClock()

	s.engine.Reset(seed)
	if s.engine.Over() {
		// A locked deal has no time to count.
		s.stopClock()
		s.elapsed = 0
	}

	if err := s.tracker.SaveTotals(ctx, s.totals); err != nil {
		s.logger.Error("cannot save stats", "player", s.tracker.Player(), "error", err)
	}
	if err := s.tracker.ClearSavedGame(ctx); err != nil {
		s.logger.Warn("cannot clear saved game", "player", s.tracker.Player(), "error", err)
	}
}

// FlushTime persists the lifetime play time including the current game.
func (s *Session) FlushTime(ctx context.Context) {
	s.persistInt(ctx, stats.KeyTotalTimePlayed, s.TotalTimePlayed())
}

// TogglePause stops or restarts the game clock. Moves are still accepted
// while paused.
func (s *Session) TogglePause() bool {
	if s.paused {
		s.paused = false
		if !s.engine.Over() {
			s.startClock()
		}
	} else {
		s.paused = true
		s.stopClock()
	}
	return s.paused
}

// Paused reports whether the clock was stopped by TogglePause.
func (s *Session) Paused() bool {
	return s.paused
}

func (s *Session) startClock() {
	if s.running {
		return
	}
	s.started = s.now()
	s.running = true
}

func (s *Session) stopClock() {
	if !s.running {
		return
	}
	s.elapsed += s.now().Sub(s.started)
	s.running = false
}

// unfolded returns the current game time not yet in the lifetime total.
func (s *Session) unfolded() time.Duration {
	d := s.elapsed
	if s.running {
		d += s.now().Sub(s.started)
	}
	return d
}

// fold moves the whole seconds of unfolded time into the lifetime total.
func (s *Session) fold() {
	d := s.unfolded()
	whole := d.Truncate(time.Second)
	s.totals.TotalTimePlayed += int(whole / time.Second)
	s.carried += whole
	s.elapsed = d - whole
	if s.running {
		s.started = s.now()
	}
}

// GameElapsed returns the time spent on the current game.
func (s *Session) GameElapsed() time.Duration {
	return s.carried + s.unfolded()
}

// TotalTimePlayed returns lifetime play time in seconds, current game included.
func (s *Session) TotalTimePlayed() int {
	return s.totals.TotalTimePlayed + int(s.unfolded()/time.Second)
}

// savedGame is the suspended-game payload.
type savedGame struct {
	Game           json.RawMessage `json:"game"`
	MovesMade      int             `json:"movesMade"`
	ElapsedSeconds int             `json:"elapsedSeconds"`
}

// Suspend stores the running game so Resume can pick it up later.
// Finished games are not stored.
func (s *Session) Suspend(ctx context.Context) error {
	s.fold()
	s.FlushTime(ctx)
	if s.engine.Over() {
		return nil
	}

	state, err := s.engine.SerializeState()
	if err != nil {
		return fmt.Errorf("session: cannot suspend: %w", err)
	}
	data, err := json.Marshal(savedGame{
		Game:           state,
		MovesMade:      s.movesMade,
		ElapsedSeconds: int(s.GameElapsed() / time.Second),
	})
	if err != nil {
		return fmt.Errorf("session: cannot suspend: %w", err)
	}
	if err := s.tracker.SaveGame(ctx, data); err != nil {
		return fmt.Errorf("session: cannot suspend: %w", err)
	}
	return nil
}

// Resume restores the suspended game. The saved copy is consumed.
// A saved game that cannot be loaded is discarded.
func (s *Session) Resume(ctx context.Context) error {
	data, ok := s.tracker.SavedGame(ctx)
	if !ok {
		return ErrNoSavedGame
	}

	var saved savedGame
	err := json.Unmarshal(data, &saved)
	if err == nil {
		err = s.engine.LoadState(saved.Game)
	}
	if cerr := s.tracker.ClearSavedGame(ctx); cerr != nil {
		s.logger.Warn("cannot clear saved game", "player", s.tracker.Player(), "error", cerr)
	}
	if err != nil {
		return fmt.Errorf("session: cannot resume: %w", err)
	}

	// The saved game's time was folded into the lifetime total on Suspend.
	s.fold()
	s.carried = time.Duration(max(saved.ElapsedSeconds, 0)) * time.Second
	s.elapsed = 0
	s.movesMade = max(saved.MovesMade, 0)
	s.paused = false
	s.running = false
	if !s.engine.Over() {
		s.startClock()
	}
	return nil
}

// HasSavedGame reports whether Resume has something to restore.
func (s *Session) HasSavedGame(ctx context.Context) bool {
	_, ok := s.tracker.SavedGame(ctx)
	return ok
}

// CycleTheme switches to the next theme and stores the choice.
func (s *Session) CycleTheme(ctx context.Context) stats.Theme {
	s.theme = s.theme.Next()
	if err := s.tracker.SetTheme(ctx, s.theme); err != nil {
		s.logger.Error("cannot save theme", "player", s.tracker.Player(), "error", err)
	}
	return s.theme
}

// Theme returns the current theme.
func (s *Session) Theme() stats.Theme {
	return s.theme
}

// Leaderboard returns the player's best finished games.
func (s *Session) Leaderboard(ctx context.Context) []stats.Entry {
	return s.tracker.Leaderboard(ctx)
}

// Summary is a snapshot of the current game and lifetime statistics.
type Summary struct {
	Score        int
	BestScore    int
	MovesMade    int
	GamesPlayed  int
	TotalMoves   int
	TotalScore   int
	AverageScore int
	// TotalTimePlayed is in seconds and includes the current game.
	TotalTimePlayed int
	GameElapsed     time.Duration
}

// Summary returns the figures shown in the stats panel.
func (s *Session) Summary() Summary {
	return Summary{
		Score:           s.engine.Score(),
		BestScore:       s.totals.BestScore,
		MovesMade:       s.movesMade,
		GamesPlayed:     s.totals.GamesPlayed,
		TotalMoves:      s.totals.TotalMoves,
		TotalScore:      s.totals.TotalScore,
		AverageScore:    s.totals.AverageScore(),
		TotalTimePlayed: s.TotalTimePlayed(),
		GameElapsed:     s.GameElapsed(),
	}
}

// Engine exposes the engine for read-only queries.
func (s *Session) Engine() *engine.Engine {
	return s.engine
}

// MovesMade returns the number of committed moves in the current game.
func (s *Session) MovesMade() int {
	return s.movesMade
}

// Player returns the statistics namespace of this session.
func (s *Session) Player() string {
	return s.tracker.Player()
}

func (s *Session) persistInt(ctx context.Context, key string, n int) {
	if err := s.tracker.SetInt(ctx, key, n); err != nil {
		s.logger.Error("cannot save stat", "player", s.tracker.Player(), "key", key, "error", err)
	}
}
