package ws

import (
	"encoding/json"
	"errors"
	"log/slog"
	"sync"
	"time"

	"rps_game/internal/domain"
	"rps_game/internal/logger"
	"rps_game/internal/service"

	"github.com/gorilla/websocket"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 30 * time.Second
	pingPeriod = 25 * time.Second
)

// Client is one websocket connection playing in one session.
type Client struct {
	SessionID string
	Conn      *websocket.Conn
	Send      chan []byte

	Hub      *Hub
	Sessions *service.SessionService

	log       *slog.Logger
	closeOnce sync.Once
	done      chan struct{}
}

func NewClient(sessionID string, conn *websocket.Conn, hub *Hub, sessions *service.SessionService) *Client {
	return &Client{
		SessionID: sessionID,
		Conn:      conn,
		Send:      make(chan []byte, 64),
		Hub:       hub,
		Sessions:  sessions,
		log:       logger.With("session_id", sessionID),
		done:      make(chan struct{}),
	}
}

// Run registers the client, starts the writer and blocks in the reader
// until the connection drops.
func (c *Client) Run() {
	c.Hub.Register(c)
	go c.writePump()

	strategy := ""
	if sess, err := c.Sessions.Get(c.SessionID); err == nil {
		strategy = string(sess.Strategy())
	}
	c.send(Message{Type: MsgReady, Payload: ReadyPayload{SessionID: c.SessionID, Strategy: strategy}})

	c.readPump()
}

// Close stops the writer; the reader exits once the socket closes.
func (c *Client) Close() {
	c.closeOnce.Do(func() {
		close(c.done)
	})
}

func (c *Client) readPump() {
	defer func() {
		c.Hub.Unregister(c)
		c.Close()
		_ = c.Conn.Close()
	}()

	c.Conn.SetReadLimit(4096)
	_ = c.Conn.SetReadDeadline(time.Now().Add(pongWait))
	c.Conn.SetPongHandler(func(string) error {
		return c.Conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, raw, err := c.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.log.Warn("ws read error", "error", err)
			}
			return
		}
		c.handleMessage(raw)
	}
}

func (c *Client) handleMessage(raw []byte) {
	var msg Message
	if err := json.Unmarshal(raw, &msg); err != nil {
		c.sendError("malformed message")
		return
	}

	switch msg.Type {
	case MsgMove:
		move, err := domain.ParseMove(msg.Move)
		if err != nil {
			c.sendError("invalid move")
			return
		}
		res, err := c.Sessions.Play(c.SessionID, move)
		if err != nil {
			c.sendError(errorText(err))
			return
		}
		c.send(Message{Type: MsgRound, Payload: res})

	case MsgReset:
		sc, err := c.Sessions.Reset(c.SessionID)
		if err != nil {
			c.sendError(errorText(err))
			return
		}
		c.send(Message{Type: MsgScore, Payload: sc})

	case MsgScore:
		sc, err := c.Sessions.Score(c.SessionID)
		if err != nil {
			c.sendError(errorText(err))
			return
		}
		c.send(Message{Type: MsgScore, Payload: sc})

	default:
		c.sendError("unknown message type")
	}
}

func errorText(err error) string {
	if errors.Is(err, service.ErrSessionNotFound) {
		return "session not found"
	}
	return "internal error"
}

func (c *Client) sendError(text string) {
	c.send(Message{Type: MsgError, Payload: ErrorPayload{Message: text}})
}

func (c *Client) send(msg Message) {
	data, err := json.Marshal(msg)
	if err != nil {
		c.log.Error("ws marshal failed", "error", err)
		return
	}

	select {
	case c.Send <- data:
	case <-c.done:
	case <-time.After(2 * time.Second):
		c.log.Warn("ws send timeout", "type", msg.Type)
	}
}

func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.Conn.Close()
	}()

	for {
		select {
		case msg := <-c.Send:
			_ = c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.Conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				c.log.Warn("ws write error", "error", err)
				return
			}

		case <-ticker.C:
			_ = c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}

		case <-c.done:
			_ = c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			_ = c.Conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
			return
		}
	}
}
