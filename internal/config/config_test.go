package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"staffdesk/internal/config"
)

func TestLoadConfigDefaults(t *testing.T) {
	os.Unsetenv("STAFFDESK_ADDR")
	os.Unsetenv("STAFFDESK_JWT_SECRET")
	os.Unsetenv("STAFFDESK_DATABASE_PATH")

	cfg, err := config.LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if cfg.Addr != ":8080" {
		t.Fatalf("default addr: got %q", cfg.Addr)
	}
	if cfg.DatabasePath != "staffdesk.db" {
		t.Fatalf("default database path: got %q", cfg.DatabasePath)
	}
	if cfg.JWTSecret == "" {
		t.Fatalf("expected a default jwt secret")
	}
	if cfg.TokenDuration != time.Hour {
		t.Fatalf("default token duration: got %v", cfg.TokenDuration)
	}
	if cfg.APITimeout != 15*time.Second {
		t.Fatalf("default timeout: got %v", cfg.APITimeout)
	}
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	t.Setenv("STAFFDESK_ADDR", ":9999")
	t.Setenv("STAFFDESK_DATABASE_PATH", "/tmp/test.db")
	t.Setenv("STAFFDESK_JWT_SECRET", "envsecret")

	cfg, err := config.LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if cfg.Addr != ":9999" || cfg.DatabasePath != "/tmp/test.db" || cfg.JWTSecret != "envsecret" {
		t.Fatalf("env overrides not applied: %#v", cfg)
	}
}

func TestLoadConfigYAMLFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := []byte("addr: \":7070\"\njwt_secret: filesecret\ndatabase_path: file.db\ntoken_duration: 2h\ntimeout: 30s\n")
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := config.LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if cfg.Addr != ":7070" || cfg.JWTSecret != "filesecret" || cfg.DatabasePath != "file.db" {
		t.Fatalf("yaml values not applied: %#v", cfg)
	}
	if cfg.TokenDuration != 2*time.Hour || cfg.APITimeout != 30*time.Second {
		t.Fatalf("yaml durations not applied: %#v", cfg)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := config.LoadConfig(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestLoadConfigInvalidYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(path, []byte("addr: [unclosed"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := config.LoadConfig(path); err == nil {
		t.Fatalf("expected error for invalid yaml")
	}
}
