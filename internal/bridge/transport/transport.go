// Package transport defines the one-way channel primitive the bridge sends
// through: a fire-and-forget Send plus handler registration for inbound
// signals. Delivery is at most once; order is preserved per channel only.
package transport

import (
	"context"
	"errors"
	"fmt"
)

// Transport is the hand-off into the host process's message queue. Send
// returns as soon as the payload is queued; a returned error means the
// payload was not accepted (queue full, connection gone), never that
// delivery failed downstream. OnReceive handlers carry no payload — the only
// inbound signal the bridge knows is "push again".
type Transport interface {
	Send(ctx context.Context, channel string, payload any) error
	OnReceive(channel string, handler func())
}

// Disconnected is the fallback when the host cannot be reached: every send
// fails with the dial error, inbound signals never arrive. Pushing through a
// Disconnected transport keeps the best-effort contract — the failure lands
// in diagnostics instead of blocking startup.
type Disconnected struct {
	Err error
}

// Send fails with the recorded dial error.
func (d Disconnected) Send(context.Context, string, any) error {
	if d.Err != nil {
		return fmt.Errorf("host unreachable: %w", d.Err)
	}
	return errors.New("host unreachable")
}

// OnReceive drops the handler; there is no connection to receive on.
func (d Disconnected) OnReceive(string, func()) {}
