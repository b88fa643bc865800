// Package wshost carries bridge channels over a websocket connection to the
// host process. Frames are JSON; there are no acks and no retries.
package wshost

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// DefaultQueueSize bounds the outbound frame queue. A full queue drops the
// frame rather than blocking the caller.
const DefaultQueueSize = 64

// Frame is the wire format: one payload on one named channel. Inbound frames
// from the host carry a channel and no payload.
type Frame struct {
	ID      string          `json:"id"`
	Channel string          `json:"channel"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// Conn is a transport.Transport over a single websocket connection. One
// writer goroutine drains the outbound queue, preserving per-call order; one
// reader goroutine dispatches inbound frames to registered handlers.
type Conn struct {
	logger *slog.Logger
	conn   *websocket.Conn
	queue  chan Frame

	mu       sync.RWMutex
	handlers map[string][]func()

	closeOnce sync.Once
	done      chan struct{}
}

// Dial connects to the host process at the given websocket URL and starts
// the read and write pumps.
func Dial(ctx context.Context, url string, log *slog.Logger, queueSize int) (*Conn, error) {
	if log == nil {
		log = slog.Default()
	}
	if queueSize <= 0 {
		queueSize = DefaultQueueSize
	}

	wsConn, _, err := websocket.DefaultDialer.DialContext(ctx, url, nil)
	if err != nil {
		return nil, fmt.Errorf("dial host: %w", err)
	}

	c := &Conn{
		logger:   log.With(slog.String("component", "wshost")),
		conn:     wsConn,
		queue:    make(chan Frame, queueSize),
		handlers: map[string][]func(){},
		done:     make(chan struct{}),
	}
	go c.writePump()
	go c.readPump()
	return c, nil
}

// Send queues one frame for the host. It never blocks: a full queue or a
// closed connection yields an error and the frame is gone.
func (c *Conn) Send(ctx context.Context, channel string, payload any) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal %s payload: %w", channel, err)
	}
	frame := Frame{ID: uuid.NewString(), Channel: channel, Payload: raw}

	select {
	case <-c.done:
		return errors.New("connection closed")
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	select {
	case c.queue <- frame:
		return nil
	default:
		return fmt.Errorf("outbound queue full, dropped %s frame", channel)
	}
}

// OnReceive registers a handler for inbound frames on the channel.
func (c *Conn) OnReceive(channel string, handler func()) {
	if handler == nil {
		return
	}
	c.mu.Lock()
	c.handlers[channel] = append(c.handlers[channel], handler)
	c.mu.Unlock()
}

// Close tears down the connection and stops both pumps.
func (c *Conn) Close() error {
	var err error
	c.closeOnce.Do(func() {
		close(c.done)
		err = c.conn.Close()
	})
	return err
}

func (c *Conn) writePump() {
	for {
		select {
		case <-c.done:
			return
		case frame := <-c.queue:
			if err := c.conn.WriteJSON(frame); err != nil {
				c.logger.Warn("write frame", slog.String("channel", frame.Channel), slog.String("error", err.Error()))
				_ = c.Close()
				return
			}
		}
	}
}

func (c *Conn) readPump() {
	for {
		var frame Frame
		if err := c.conn.ReadJSON(&frame); err != nil {
			select {
			case <-c.done:
			default:
				c.logger.Warn("read frame", slog.String("error", err.Error()))
				_ = c.Close()
			}
			return
		}

		c.mu.RLock()
		handlers := make([]func(), len(c.handlers[frame.Channel]))
		copy(handlers, c.handlers[frame.Channel])
		c.mu.RUnlock()

		for _, handler := range handlers {
			handler()
		}
	}
}
