package modules

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"go.uber.org/fx"

	"github.com/traybridge/traybridge/internal/config"
	"github.com/traybridge/traybridge/internal/handlers"
	"github.com/traybridge/traybridge/internal/server"
)

// ServerModule wires the ops HTTP surface.
var ServerModule = fx.Module(
	"server",
	fx.Provide(
		handlers.NewStatusHandler,
		provideServer,
	),
	fx.Invoke(startServer),
)

func provideServer(log *slog.Logger, cfg config.Config, status *handlers.StatusHandler) *server.Server {
	return server.NewServer(log, cfg.Ops.Addr, status)
}

func startServer(lc fx.Lifecycle, logger *slog.Logger, srv *server.Server, shutdowner fx.Shutdowner) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go func() {
				if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logger.Error("ops server failed", slog.Any("error", err))
					_ = shutdowner.Shutdown()
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			if err := srv.Stop(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("server stop: %w", err)
			}
			return nil
		},
	})
}
