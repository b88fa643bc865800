package transport_test

import (
	"context"
	"errors"
	"testing"

	"github.com/traybridge/traybridge/internal/bridge/transport"
)

func TestDisconnected_SendFailsWithDialError(t *testing.T) {
	t.Parallel()

	dialErr := errors.New("connection refused")
	tr := transport.Disconnected{Err: dialErr}

	err := tr.Send(context.Background(), "chat-list", nil)
	if err == nil {
		t.Fatal("Send = nil, want error")
	}
	if !errors.Is(err, dialErr) {
		t.Fatalf("Send error = %v, want wrapped dial error", err)
	}
}

func TestDisconnected_SendWithoutCause(t *testing.T) {
	t.Parallel()

	if err := (transport.Disconnected{}).Send(context.Background(), "chat-list", nil); err == nil {
		t.Fatal("Send = nil, want error")
	}
}

func TestDisconnected_OnReceiveIsInert(t *testing.T) {
	t.Parallel()

	tr := transport.Disconnected{}
	tr.OnReceive("request-chat-list", func() {
		t.Fatal("handler invoked on disconnected transport")
	})
}
