package engine

import (
	"math/rand"
)

// DefaultWinTile is the tile whose first appearance wins the game.
const DefaultWinTile = 2048

// Config controls board size, win threshold, spawning and undo depth.
type Config struct {
	Size            int
	WinTile         int // 0 disables win detection
	StartTiles      int
	FourProbability float64
	UndoDepth       int // 0 keeps every snapshot
}

// DefaultConfig returns the classic 4x4 game.
func DefaultConfig() Config {
	return Config{
		Size:            DefaultSize,
		WinTile:         DefaultWinTile,
		StartTiles:      2,
		FourProbability: DefaultFourProbability,
	}
}

// MoveResult reports what a call to Move did.
type MoveResult struct {
	Moved       bool
	ScoreDelta  int
	Merged      []Coord
	WonThisMove bool
	Spawned     *Tile
	GameOver    bool // the move ended the game
}

// Option customizes an Engine.
type Option func(*Engine)

// WithRandom makes the engine draw spawns from r regardless of the seed
// passed to Reset.
func WithRandom(r Random) Option {
	return func(e *Engine) {
		e.newRandom = func(int64) Random { return r }
	}
}

// Engine owns a board, its score and the undo history.
// It is not safe for concurrent use; callers serialize moves.
type Engine struct {
	cfg       Config
	newRandom func(seed int64) Random
	rng       Random

	board   Board
	score   int
	won     bool
	over    bool
	history *History
}

// New creates an engine with an empty board. Call Reset to start a game.
func New(cfg Config, opts ...Option) *Engine {
	if cfg.Size < 2 {
		cfg.Size = DefaultSize
	}
	if cfg.StartTiles < 0 {
		cfg.StartTiles = 0
	}

	e := &Engine{
		cfg: cfg,
		newRandom: func(seed int64) Random {
			return rand.New(rand.NewSource(seed))
		},
		board:   NewBoard(cfg.Size),
		history: NewHistory(cfg.UndoDepth),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.rng = e.newRandom(0)
	return e
}

// Config returns the engine configuration.
func (e *Engine) Config() Config {
	return e.cfg
}

// Reset starts a new game: empty board, zero score, cleared flags and
// history, then the configured number of starting tiles.
func (e *Engine) Reset(seed int64) {
	e.rng = e.newRandom(seed)
	e.board = NewBoard(e.cfg.Size)
	e.score = 0
	e.won = false
	e.over = false
	e.history.Clear()

	for range e.cfg.StartTiles {
		SpawnTile(e.board, e.rng, e.cfg.FourProbability)
	}
	// A deal that fills the board can come out locked.
	e.over = !HasMovesAvailable(e.board)
}

// Move slides the board in dir. A move that changes nothing commits
// nothing: no snapshot, no spawn, no score change.
func (e *Engine) Move(dir Direction) MoveResult {
	if e.over || !dir.Valid() {
		return MoveResult{}
	}

	next, slid := Slide(e.board, dir)
	if !slid.Moved {
		return MoveResult{}
	}

	// Slide never touches its input, so the old board can be kept as is.
	e.history.Push(Snapshot{Board: e.board, Score: e.score})
	e.board = next
	e.score += slid.ScoreDelta

	res := MoveResult{
		Moved:      true,
		ScoreDelta: slid.ScoreDelta,
		Merged:     slid.Merged,
	}

	if e.cfg.WinTile > 0 && !e.won && slid.MaxMerged >= e.cfg.WinTile {
		e.won = true
		res.WonThisMove = true
	}

	if tile, ok := SpawnTile(e.board, e.rng, e.cfg.FourProbability); ok {
		res.Spawned = &tile
	}

	if !HasMovesAvailable(e.board) {
		e.over = true
		res.GameOver = true
	}

	return res
}

// HasMovesAvailable reports whether any direction would change the board.
func (e *Engine) HasMovesAvailable() bool {
	return HasMovesAvailable(e.board)
}

// Undo restores the board and score saved before the last committed move
// and clears the game-over flag. The won flag is kept.
// It returns false when there is nothing to undo.
func (e *Engine) Undo() bool {
	snap, ok := e.history.Pop()
	if !ok {
		return false
	}
	e.board = snap.Board
	e.score = snap.Score
	e.over = false
	return true
}

// Board returns a copy of the current board.
func (e *Engine) Board() Board {
	return e.board.Clone()
}

// Score returns the accumulated score.
func (e *Engine) Score() int {
	return e.score
}

// Won reports whether the win tile has been reached in this game.
func (e *Engine) Won() bool {
	return e.won
}

// Over reports whether no move is available.
func (e *Engine) Over() bool {
	return e.over
}

// MaxTile returns the highest tile on the board.
func (e *Engine) MaxTile() int {
	return MaxTile(e.board)
}

// UndoDepth returns how many moves can currently be undone.
func (e *Engine) UndoDepth() int {
	return e.history.Len()
}
