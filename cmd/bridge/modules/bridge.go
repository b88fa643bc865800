package modules

import (
	"context"
	"log/slog"
	"time"

	"go.uber.org/fx"

	"github.com/traybridge/traybridge/internal/avatar"
	"github.com/traybridge/traybridge/internal/bridge"
	"github.com/traybridge/traybridge/internal/bridge/transport"
	"github.com/traybridge/traybridge/internal/bridge/transport/wshost"
	"github.com/traybridge/traybridge/internal/config"
	"github.com/traybridge/traybridge/internal/diag"
	"github.com/traybridge/traybridge/internal/directory"
	"github.com/traybridge/traybridge/internal/payload"
)

// BridgeModule wires the directory, avatar resolution, payload building, the
// host transport, and the bridge channel itself.
var BridgeModule = fx.Module(
	"bridge",
	fx.Provide(
		fx.Annotate(provideDirectory, fx.As(new(directory.Directory))),
		provideResolver,
		diag.NewRecorder,
		payload.NewBuilder,
		provideTransport,
		bridge.New,
	),
	fx.Invoke(startBridge),
)

func provideDirectory(cfg config.Config) (*directory.Snapshot, error) {
	return directory.LoadSnapshot(cfg.Directory.SnapshotPath)
}

func provideResolver() *avatar.Resolver {
	return avatar.NewResolver(nil)
}

func provideTransport(lc fx.Lifecycle, cfg config.Config, log *slog.Logger, diags *diag.Recorder) transport.Transport {
	dialCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	conn, err := wshost.Dial(dialCtx, cfg.Transport.HostURL, log, cfg.Transport.QueueSize)
	if err != nil {
		// Best-effort bridge: an unreachable host must not block startup.
		// Sends through the fallback land in diagnostics.
		diags.Note("dial", "", err)
		log.Warn("host unreachable, starting disconnected",
			slog.String("url", cfg.Transport.HostURL),
			slog.String("error", err.Error()),
		)
		return transport.Disconnected{Err: err}
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return conn.Close()
		},
	})
	return conn
}

func startBridge(lc fx.Lifecycle, channel *bridge.Channel, dir directory.Directory) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			channel.RegisterRequestListener()

			// Initial sync so the host has state before any model event.
			if self, ok := dir.ByID(dir.SelfID()); ok {
				channel.PushIdentity(ctx, self.Identity(), &self)
			}
			channel.PushUnread(ctx, totalUnread(dir))
			channel.PushChatList(ctx)
			return nil
		},
	})
}

func totalUnread(dir directory.Directory) int {
	total := 0
	for _, conv := range dir.All() {
		if conv.ID == dir.SelfID() {
			continue
		}
		total += conv.UnreadCount
	}
	return total
}
