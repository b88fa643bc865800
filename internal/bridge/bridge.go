// Package bridge pushes derived presentation state to the host process over
// four fixed channels. Pushes are best-effort: failures are recorded and
// never surface to callers, because a sync hiccup must not destabilize the
// rendering context.
package bridge

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/traybridge/traybridge/internal/bridge/transport"
	"github.com/traybridge/traybridge/internal/diag"
	"github.com/traybridge/traybridge/internal/directory"
	"github.com/traybridge/traybridge/internal/payload"
)

// The four fixed channel names. Three are outbound; RequestChatList is the
// single inbound signal and triggers a chat-list push.
const (
	ChannelUserChanged     = "user-changed"
	ChannelUnreadCount     = "unread-count"
	ChannelChatList        = "chat-list"
	ChannelRequestChatList = "request-chat-list"
)

// Channel is the bridge's entry point set. One instance per process.
type Channel struct {
	logger    *slog.Logger
	builder   *payload.Builder
	transport transport.Transport
	diags     *diag.Recorder

	registerOnce sync.Once
}

// New wires a Channel to its payload builder, transport, and diagnostics.
func New(log *slog.Logger, builder *payload.Builder, tr transport.Transport, diags *diag.Recorder) *Channel {
	if log == nil {
		log = slog.Default()
	}
	return &Channel{
		logger:    log.With(slog.String("component", "bridge")),
		builder:   builder,
		transport: tr,
		diags:     diags,
	}
}

// PushIdentity sends the current-user identity on user-changed. When the
// identity resolves to nothing reportable the send is suppressed entirely.
func (c *Channel) PushIdentity(ctx context.Context, id directory.Identity, conv *directory.Conversation) {
	p, ok := c.builder.Identity(id, conv)
	if !ok {
		return
	}
	c.send(ctx, ChannelUserChanged, p)
}

// PushUnread sends the unread count on unread-count. There is no suppression
// here: a zero count is still pushed so the host can clear its badge.
func (c *Channel) PushUnread(ctx context.Context, count int) {
	c.send(ctx, ChannelUnreadCount, c.builder.Unread(count))
}

// PushChatList sends the filtered conversation list on chat-list. It is also
// the handler for the inbound request-chat-list signal.
func (c *Channel) PushChatList(ctx context.Context) {
	c.send(ctx, ChannelChatList, c.builder.ChatList())
}

// RegisterRequestListener installs the inbound request-chat-list handler.
// The registration happens at most once per process; repeat calls are
// no-ops, so a host request never triggers more than one push.
func (c *Channel) RegisterRequestListener() {
	c.registerOnce.Do(func() {
		defer c.absorb("register-listener", ChannelRequestChatList)
		c.transport.OnReceive(ChannelRequestChatList, func() {
			c.PushChatList(context.Background())
		})
	})
}

// send transmits on one channel, absorbing every failure into diagnostics.
func (c *Channel) send(ctx context.Context, channel string, body any) {
	defer c.absorb("send", channel)
	if err := c.transport.Send(ctx, channel, body); err != nil {
		c.diags.Note("send", channel, err)
	}
}

// absorb converts a panic into a diagnostic record. Meant to be deferred.
func (c *Channel) absorb(op, channel string) {
	if r := recover(); r != nil {
		c.diags.Note(op, channel, fmt.Errorf("panic: %v", r))
	}
}
