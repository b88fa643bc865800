package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/traybridge/traybridge/internal/config"
)

func TestLoad_MissingFileYieldsDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := config.Load(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Log.Level != "info" || cfg.Log.Format != "text" {
		t.Fatalf("log config = %+v", cfg.Log)
	}
	if cfg.Ops.Addr != config.DefaultOpsAddr {
		t.Fatalf("ops addr = %q, want %q", cfg.Ops.Addr, config.DefaultOpsAddr)
	}
	if cfg.Transport.HostURL != config.DefaultHostURL {
		t.Fatalf("host url = %q, want %q", cfg.Transport.HostURL, config.DefaultHostURL)
	}
	if cfg.Transport.QueueSize != config.DefaultQueueSize {
		t.Fatalf("queue size = %d, want %d", cfg.Transport.QueueSize, config.DefaultQueueSize)
	}
	if cfg.Directory.SnapshotPath != config.DefaultSnapshotPath {
		t.Fatalf("snapshot path = %q, want %q", cfg.Directory.SnapshotPath, config.DefaultSnapshotPath)
	}
}

func TestLoad_File(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[log]
level = "debug"
format = "json"

[transport]
host_url = "ws://127.0.0.1:9000/bridge"
queue_size = 16

[directory]
snapshot_path = "/var/lib/traybridge/directory.toml"
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Log.Level != "debug" || cfg.Log.Format != "json" {
		t.Fatalf("log config = %+v", cfg.Log)
	}
	if cfg.Transport.HostURL != "ws://127.0.0.1:9000/bridge" {
		t.Fatalf("host url = %q", cfg.Transport.HostURL)
	}
	if cfg.Transport.QueueSize != 16 {
		t.Fatalf("queue size = %d, want 16", cfg.Transport.QueueSize)
	}
	// Unset sections keep their defaults.
	if cfg.Ops.Addr != config.DefaultOpsAddr {
		t.Fatalf("ops addr = %q, want default", cfg.Ops.Addr)
	}
}

func TestLoad_InvalidTOML(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("not = [valid"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := config.Load(path); err == nil {
		t.Fatal("Load(invalid) = nil error, want error")
	}
}
