// Package loopback is an in-process transport: payloads go straight to
// subscribers in the same process. It backs tests and same-process hosts.
package loopback

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// Event is one delivered payload.
type Event struct {
	Channel string
	Payload any
}

// Hub routes sends to per-channel subscribers and inbound notifications to
// registered handlers. Slow subscribers are silently dropped, matching the
// at-most-once contract.
type Hub struct {
	mu       sync.RWMutex
	subs     map[string]map[string]chan Event
	handlers map[string][]func()
}

// NewHub creates an empty Hub.
func NewHub() *Hub {
	return &Hub{
		subs:     map[string]map[string]chan Event{},
		handlers: map[string][]func(){},
	}
}

// Subscribe registers a receiver for the given channel and returns a
// subscription id, the event stream, and a cancel function.
func (h *Hub) Subscribe(channel string) (string, <-chan Event, func()) {
	subID := uuid.NewString()
	ch := make(chan Event, 32)

	h.mu.Lock()
	subs, ok := h.subs[channel]
	if !ok {
		subs = map[string]chan Event{}
		h.subs[channel] = subs
	}
	subs[subID] = ch
	h.mu.Unlock()

	cancel := func() {
		h.mu.Lock()
		subs := h.subs[channel]
		if subs != nil {
			if current, ok := subs[subID]; ok {
				delete(subs, subID)
				close(current)
			}
			if len(subs) == 0 {
				delete(h.subs, channel)
			}
		}
		h.mu.Unlock()
	}

	return subID, ch, cancel
}

// Send delivers the payload to all subscribers of the channel. Subscribers
// with a full buffer are skipped.
func (h *Hub) Send(ctx context.Context, channel string, payload any) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, ch := range h.subs[channel] {
		select {
		case ch <- Event{Channel: channel, Payload: payload}:
		default:
			// Drop if receiver is slow.
		}
	}
	return nil
}

// OnReceive registers a handler for inbound signals on the channel.
func (h *Hub) OnReceive(channel string, handler func()) {
	if handler == nil {
		return
	}
	h.mu.Lock()
	h.handlers[channel] = append(h.handlers[channel], handler)
	h.mu.Unlock()
}

// Notify invokes every handler registered for the channel, synchronously and
// in registration order. It is how a same-process host raises an inbound
// signal.
func (h *Hub) Notify(channel string) {
	h.mu.RLock()
	handlers := make([]func(), len(h.handlers[channel]))
	copy(handlers, h.handlers[channel])
	h.mu.RUnlock()

	for _, handler := range handlers {
		handler()
	}
}
