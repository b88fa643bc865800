package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"

	"github.com/traybridge/traybridge/cmd/bridge/modules"
	"github.com/traybridge/traybridge/internal/config"
	"github.com/traybridge/traybridge/internal/logger"
	"github.com/traybridge/traybridge/internal/version"
)

var configPath string

func provideConfig() (config.Config, error) {
	path := configPath
	if path == "" {
		path = os.Getenv("CONFIG_PATH")
	}
	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

func provideLogger(cfg config.Config) *slog.Logger {
	logger.Init(cfg.Log.Level, cfg.Log.Format)
	return logger.L
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "traybridge",
		Short:   "Pushes renderer presentation state to the native host process",
		Version: version.Info(),
		RunE: func(cmd *cobra.Command, args []string) error {
			app := fx.New(
				fx.Provide(
					provideConfig,
					provideLogger,
				),
				modules.BridgeModule,
				modules.ServerModule,
				fx.WithLogger(func(log *slog.Logger) fxevent.Logger {
					return &fxevent.SlogLogger{Logger: log}
				}),
			)
			app.Run()
			return nil
		},
	}
	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "config file path")
	return cmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
