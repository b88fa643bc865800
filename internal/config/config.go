// Package config loads and exposes bridge configuration (TOML).
package config

import (
	"os"

	"github.com/BurntSushi/toml"
)

// Default configuration values used when a field is missing in TOML.
const (
	DefaultConfigPath   = "config.toml"
	DefaultOpsAddr      = ":8099"
	DefaultHostURL      = "ws://127.0.0.1:8098/bridge"
	DefaultQueueSize    = 64
	DefaultSnapshotPath = "directory.toml"
)

// Config is the root bridge configuration loaded from TOML.
type Config struct {
	Log       LogConfig       `toml:"log"`
	Ops       OpsConfig       `toml:"ops"`
	Transport TransportConfig `toml:"transport"`
	Directory DirectoryConfig `toml:"directory"`
}

// LogConfig holds logging level and format (e.g. level=info, format=text).
type LogConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// OpsConfig holds the ops HTTP server listen address.
type OpsConfig struct {
	Addr string `toml:"addr"`
}

// TransportConfig holds the host websocket URL and the outbound queue bound.
type TransportConfig struct {
	HostURL   string `toml:"host_url"`
	QueueSize int    `toml:"queue_size"`
}

// DirectoryConfig holds the conversation directory snapshot path.
type DirectoryConfig struct {
	SnapshotPath string `toml:"snapshot_path"`
}

// Load reads and parses the TOML config file at path and applies default
// values for missing fields. A missing file yields the defaults.
func Load(path string) (Config, error) {
	cfg := Config{
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Ops: OpsConfig{
			Addr: DefaultOpsAddr,
		},
		Transport: TransportConfig{
			HostURL:   DefaultHostURL,
			QueueSize: DefaultQueueSize,
		},
		Directory: DirectoryConfig{
			SnapshotPath: DefaultSnapshotPath,
		},
	}

	if path == "" {
		path = DefaultConfigPath
	}

	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, err
	}

	return cfg, nil
}
