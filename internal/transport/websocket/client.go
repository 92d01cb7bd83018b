package websocket

import (
	"context"
	"encoding/json"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"

	"github.com/vovakirdan/t2048/internal/core"
	"github.com/vovakirdan/t2048/internal/games/t2048"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10

	// Maximum message size allowed from peer.
	maxMessageSize = 512
)

// client is one connection playing one game. Only readPump touches the
// game.
type client struct {
	conn   *websocket.Conn
	game   *t2048.Game
	send   chan []byte
	logger *log.Logger
}

// readPump applies requests until the connection closes, then suspends
// the game.
func (c *client) readPump(ctx context.Context) {
	defer func() {
		if err := c.game.Suspend(context.WithoutCancel(ctx)); err != nil {
			c.logger.Error("cannot suspend game", "error", err)
		}
		close(c.send)
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	c.reply(c.stateReply(nil))

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.logger.Warn("connection error", "error", err)
			}
			return
		}
		c.reply(c.handle(ctx, data))
	}
}

func (c *client) handle(ctx context.Context, data []byte) Reply {
	var req Request
	if err := json.Unmarshal(data, &req); err != nil {
		return errorReply(err)
	}
	action, err := actionFor(req)
	if err != nil {
		return errorReply(err)
	}
	if action == core.ActionNone {
		return c.stateReply(nil)
	}

	res := c.game.Step(ctx, core.NewInputFrame(action))
	if req.Action != ActionMove {
		return c.stateReply(nil)
	}
	if !res.Moved {
		return c.stateReply(&MoveResult{})
	}
	return c.stateReply(moveResultFrom(c.game.LastMove()))
}

func (c *client) stateReply(result *MoveResult) Reply {
	snap := c.game.Snapshot()
	return Reply{Event: EventState, State: &snap, Result: result}
}

func (c *client) reply(r Reply) {
	data, err := json.Marshal(r)
	if err != nil {
		c.logger.Error("cannot encode reply", "error", err)
		return
	}
	select {
	case c.send <- data:
	default:
		// The writer is stuck or gone; dropping the connection ends readPump.
		c.logger.Warn("send buffer full, closing connection")
		c.conn.Close()
	}
}

// writePump sends replies and keeps the connection alive with pings.
func (c *client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
