package engine

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrInvalidState is returned when a saved state cannot be loaded.
var ErrInvalidState = errors.New("engine: invalid state")

// State is the serializable form of an engine: board plus score and flags.
type State struct {
	Size  int     `json:"size"`
	Board [][]int `json:"board"`
	Score int     `json:"score"`
	Won   bool    `json:"won"`
	Over  bool    `json:"over"`
}

// State returns a snapshot of the current game.
func (e *Engine) State() State {
	return State{
		Size:  e.cfg.Size,
		Board: e.board.Clone(),
		Score: e.score,
		Won:   e.won,
		Over:  e.over,
	}
}

// SerializeState encodes the current game as JSON.
func (e *Engine) SerializeState() ([]byte, error) {
	data, err := json.Marshal(e.State())
	if err != nil {
		return nil, fmt.Errorf("engine: cannot encode state: %w", err)
	}
	return data, nil
}

// LoadState decodes a game produced by SerializeState and makes it current.
// The undo history is cleared.
func (e *Engine) LoadState(data []byte) error {
	var st State
	if err := json.Unmarshal(data, &st); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidState, err)
	}
	return e.Restore(st)
}

// Restore makes st the current game after validating it.
// The game-over flag is recomputed from the board.
func (e *Engine) Restore(st State) error {
	board := Board(st.Board)

	switch {
	case st.Size != e.cfg.Size:
		return fmt.Errorf("%w: board size %d, engine size %d", ErrInvalidState, st.Size, e.cfg.Size)
	case board.Size() != st.Size || !board.isSquare():
		return fmt.Errorf("%w: board is not %dx%d", ErrInvalidState, st.Size, st.Size)
	case st.Score < 0:
		return fmt.Errorf("%w: negative score %d", ErrInvalidState, st.Score)
	}

	for row := range board {
		for col, v := range board[row] {
			if !isTileValue(v) {
				return fmt.Errorf("%w: tile %d at (%d,%d)", ErrInvalidState, v, row, col)
			}
		}
	}

	e.board = board.Clone()
	e.score = st.Score
	e.won = st.Won
	e.over = !HasMovesAvailable(e.board)
	e.history.Clear()
	return nil
}
