package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_ConfigYAML(t *testing.T) {
	path := filepath.Join("..", "..", "config.yaml")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Storage.Backend == "" {
		t.Fatalf("expected storage.backend to be set")
	}
	if cfg.Redis.Port == 0 {
		t.Fatalf("expected redis.port to be set")
	}
	if cfg.UI.NotificationDelayMS == 0 {
		t.Fatalf("expected ui.notification_delay_ms to be set")
	}
}

func TestLoad_Values(t *testing.T) {
	content := `# test config
storage:
  backend: memory
  path: test.db

redis:
  host: redis.local
  port: 6380
  password: "secret"
  db: 2

logging:
  file: kiosk.log

ui:
  notification_delay_ms: 250
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Storage.Backend != "memory" {
		t.Errorf("Storage.Backend = %q, want %q", cfg.Storage.Backend, "memory")
	}
	if cfg.Storage.Path != "test.db" {
		t.Errorf("Storage.Path = %q, want %q", cfg.Storage.Path, "test.db")
	}
	if got := cfg.RedisAddr(); got != "redis.local:6380" {
		t.Errorf("RedisAddr() = %q, want %q", got, "redis.local:6380")
	}
	if cfg.Redis.Password != "secret" {
		t.Errorf("Redis.Password = %q, want %q", cfg.Redis.Password, "secret")
	}
	if cfg.Redis.DB != 2 {
		t.Errorf("Redis.DB = %d, want 2", cfg.Redis.DB)
	}
	if cfg.Logging.File != "kiosk.log" {
		t.Errorf("Logging.File = %q, want %q", cfg.Logging.File, "kiosk.log")
	}
	if got := cfg.NotificationDelay(); got != 250*time.Millisecond {
		t.Errorf("NotificationDelay() = %v, want %v", got, 250*time.Millisecond)
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name:    "unknown section",
			content: "database:\n  host: localhost\n",
		},
		{
			name:    "unknown storage backend",
			content: "storage:\n  backend: postgres\n",
		},
		{
			name:    "bad redis port",
			content: "redis:\n  port: not-a-number\n",
		},
		{
			name:    "negative notification delay",
			content: "ui:\n  notification_delay_ms: -5\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
				t.Fatalf("failed to write config file: %v", err)
			}
			if _, err := Load(path); err == nil {
				t.Errorf("Load() expected error for %s", tt.name)
			}
		})
	}
}
