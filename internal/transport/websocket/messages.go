package websocket

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/t2048/internal/core"
	"github.com/vovakirdan/t2048/internal/engine"
	"github.com/vovakirdan/t2048/internal/games/t2048"
)

// Request actions.
const (
	ActionMove  = "move"
	ActionUndo  = "undo"
	ActionNew   = "new"
	ActionPause = "pause"
	ActionTheme = "theme"
	ActionState = "state"
)

// Reply events.
const (
	EventState = "state"
	EventError = "error"
)

// Request is a message from the client.
type Request struct {
	Action    string `json:"action"`
	Direction string `json:"direction,omitempty"`
}

// Cell is a board position, with a value where one applies.
type Cell struct {
	Row   int `json:"row"`
	Col   int `json:"col"`
	Value int `json:"value,omitempty"`
}

// MoveResult describes what a move did.
type MoveResult struct {
	Moved       bool   `json:"moved"`
	ScoreDelta  int    `json:"scoreDelta"`
	Merged      []Cell `json:"merged,omitempty"`
	Spawned     *Cell  `json:"spawned,omitempty"`
	WonThisMove bool   `json:"wonThisMove"`
	GameOver    bool   `json:"gameOver"`
}

// Reply is a message to the client. State is set on every state event.
type Reply struct {
	Event  string          `json:"event"`
	State  *t2048.Snapshot `json:"state,omitempty"`
	Result *MoveResult     `json:"result,omitempty"`
	Error  string          `json:"error,omitempty"`
}

func errorReply(err error) Reply {
	return Reply{Event: EventError, Error: err.Error()}
}

// actionFor translates a request into a game action.
func actionFor(req Request) (core.Action, error) {
	switch strings.ToLower(req.Action) {
	case ActionMove:
		switch strings.ToLower(req.Direction) {
		case "up":
			return core.ActionUp, nil
		case "down":
			return core.ActionDown, nil
		case "left":
			return core.ActionLeft, nil
		case "right":
			return core.ActionRight, nil
		}
		return core.ActionNone, fmt.Errorf("unknown direction %q", req.Direction)
	case ActionUndo:
		return core.ActionUndo, nil
	case ActionNew:
		return core.ActionNewGame, nil
	case ActionPause:
		return core.ActionPause, nil
	case ActionTheme:
		return core.ActionTheme, nil
	case ActionState:
		return core.ActionNone, nil
	}
	return core.ActionNone, fmt.Errorf("unknown action %q", req.Action)
}

func moveResultFrom(mr engine.MoveResult) *MoveResult {
	out := &MoveResult{
		Moved:       mr.Moved,
		ScoreDelta:  mr.ScoreDelta,
		WonThisMove: mr.WonThisMove,
		GameOver:    mr.GameOver,
	}
	for _, c := range mr.Merged {
		out.Merged = append(out.Merged, Cell{Row: c.Row, Col: c.Col})
	}
	if mr.Spawned != nil {
		out.Spawned = &Cell{Row: mr.Spawned.Row, Col: mr.Spawned.Col, Value: mr.Spawned.Value}
	}
	return out
}
