package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/gorilla/websocket"

	"github.com/lox/mersenne/mt64"
)

const (
	// Time allowed to write a message to the peer
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait
	pingPeriod = (pongWait * 9) / 10

	// Maximum message size allowed from peer
	maxMessageSize = 64 * 1024
)

var (
	ErrConnectionClosed = websocket.ErrCloseSent
	ErrSendBufferFull   = errors.New("connection send buffer full")
)

// Connection is one websocket client. It owns its generator, which is only
// touched from the read pump.
type Connection struct {
	conn        *websocket.Conn
	send        chan *Message
	gen         *mt64.Generator
	logger      *log.Logger
	clock       quartz.Clock
	idleTimeout time.Duration
	idle        *quartz.Timer
	maxBatch    int
	ctx         context.Context
	cancel      context.CancelFunc
	closeOnce   sync.Once
}

// NewConnection creates a new connection wrapper
func NewConnection(conn *websocket.Conn, cfg Config, logger *log.Logger, clock quartz.Clock) *Connection {
	ctx, cancel := context.WithCancel(context.Background())

	c := &Connection{
		conn:        conn,
		send:        make(chan *Message, 256),
		gen:         mt64.New(),
		logger:      logger.WithPrefix("conn"),
		clock:       clock,
		idleTimeout: cfg.IdleTimeout,
		maxBatch:    cfg.MaxBatch,
		ctx:         ctx,
		cancel:      cancel,
	}
	// The timer exists before the connection is published, so Close never
	// races with its creation.
	if c.idleTimeout > 0 {
		c.idle = clock.AfterFunc(c.idleTimeout, func() {
			c.logger.Info("Closing idle connection", "timeout", c.idleTimeout)
			_ = c.shutdown()
		})
	}
	return c
}

// Start begins handling the connection
func (c *Connection) Start() {
	go c.writePump()
	go c.readPump()
}

// Done is closed once the connection has shut down
func (c *Connection) Done() <-chan struct{} {
	return c.ctx.Done()
}

// Close stops the idle timer and closes the connection
func (c *Connection) Close() error {
	if c.idle != nil {
		c.idle.Stop()
	}
	return c.shutdown()
}

func (c *Connection) shutdown() error {
	var err error
	c.closeOnce.Do(func() {
		c.cancel()
		err = c.conn.Close()
	})
	return err
}

// SendMessage queues a message for the client
func (c *Connection) SendMessage(msg *Message) error {
	select {
	case <-c.ctx.Done():
		return ErrConnectionClosed
	default:
	}

	select {
	case c.send <- msg:
		return nil
	case <-c.ctx.Done():
		return ErrConnectionClosed
	default:
		c.logger.Warn("Connection send buffer full, closing connection")
		_ = c.Close()
		return ErrSendBufferFull
	}
}

// readPump handles incoming messages from the client
func (c *Connection) readPump() {
	defer func() { _ = c.Close() }()

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.logger.Debug("WebSocket read ended", "error", err)
			}
			return
		}

		var msg Message
		if err := json.Unmarshal(data, &msg); err != nil {
			c.logger.Debug("Malformed message", "error", err)
			c.sendError("", ErrCodeInvalidMessage, "Malformed JSON")
			continue
		}

		c.handleMessage(&msg)
	}
}

// writePump handles outgoing messages to the client
func (c *Connection) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.Close()
	}()

	for {
		select {
		case message := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteJSON(message); err != nil {
				c.logger.Debug("Failed to write message", "error", err)
				return
			}

		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}

		case <-c.ctx.Done():
			return
		}
	}
}

// handleMessage processes incoming messages from the client
func (c *Connection) handleMessage(msg *Message) {
	c.logger.Debug("Received message", "type", msg.Type, "requestId", msg.RequestID)
	if c.idle != nil {
		c.idle.Reset(c.idleTimeout)
	}

	switch msg.Type {
	case MessageTypeSeed:
		var data SeedData
		if err := json.Unmarshal(msg.Data, &data); err != nil {
			c.sendError(msg.RequestID, ErrCodeInvalidMessage, "Failed to parse seed data")
			return
		}
		switch {
		case len(data.Key) > 0:
			c.gen.SeedSlice(data.Key)
		case data.Seed != nil:
			c.gen.Seed(*data.Seed)
		default:
			c.sendError(msg.RequestID, ErrCodeInvalidMessage, "seed or key is required")
			return
		}
		c.logger.Debug("Generator seeded", "requestId", msg.RequestID)
		c.sendState(msg.RequestID)

	case MessageTypeNext:
		var data NextData
		if len(msg.Data) > 0 {
			if err := json.Unmarshal(msg.Data, &data); err != nil {
				c.sendError(msg.RequestID, ErrCodeInvalidMessage, "Failed to parse next data")
				return
			}
		}
		c.handleNext(msg.RequestID, data.Count)

	case MessageTypeReset:
		c.gen.Reset()
		c.sendState(msg.RequestID)

	default:
		c.sendError(msg.RequestID, ErrCodeInvalidMessage, fmt.Sprintf("unknown message type %q", msg.Type))
	}
}

func (c *Connection) handleNext(requestID string, count int) {
	if count == 0 {
		count = 1
	}
	if count < 0 {
		c.sendError(requestID, ErrCodeInvalidMessage, "count must be positive")
		return
	}
	if count > c.maxBatch {
		c.sendError(requestID, ErrCodeBatchTooLarge, fmt.Sprintf("count %d exceeds max batch %d", count, c.maxBatch))
		return
	}

	values := make([]uint64, count)
	for i := range values {
		v, err := c.gen.Next()
		if errors.Is(err, mt64.ErrNotSeeded) {
			c.sendError(requestID, ErrCodeNotSeeded, "generator was never seeded")
			return
		}
		values[i] = v
	}

	c.reply(requestID, MessageTypeValues, ValuesData{Values: values, Cursor: c.gen.Cursor()})
}

func (c *Connection) sendState(requestID string) {
	c.reply(requestID, MessageTypeState, StateData{Seeded: c.gen.Seeded(), Cursor: c.gen.Cursor()})
}

func (c *Connection) sendError(requestID, code, message string) {
	c.reply(requestID, MessageTypeError, ErrorData{Code: code, Message: message})
}

func (c *Connection) reply(requestID string, messageType MessageType, data any) {
	msg, err := NewMessage(messageType, data, c.clock.Now())
	if err != nil {
		c.logger.Error("Failed to create message", "type", messageType, "error", err)
		return
	}
	msg.RequestID = requestID

	if err := c.SendMessage(msg); err != nil {
		c.logger.Debug("Failed to queue message", "type", messageType, "error", err)
	}
}
