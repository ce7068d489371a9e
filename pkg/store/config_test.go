package store

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/mitchellh/go-homedir"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv(ConfigPathEnv, t.TempDir())
	t.Setenv("MOODLOG_PATH", "")
	t.Setenv("MOODLOG_ALERT_DELAY", "")
	t.Chdir(t.TempDir())

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	want, err := homedir.Expand("~/.moodlog.db")
	if err != nil {
		t.Fatalf("expand: %v", err)
	}
	if cfg.BasePath() != want {
		t.Fatalf("expected default path %q, got %q", want, cfg.BasePath())
	}
	if cfg.AlertDelay() != 3200*time.Millisecond {
		t.Fatalf("expected default alert delay, got %v", cfg.AlertDelay())
	}
	if ConfigFile(cfg) != "" {
		t.Fatalf("expected no config file, got %q", ConfigFile(cfg))
	}
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	data := []byte("path: " + filepath.Join(dir, "db") + "\nalert_delay: 500ms\n")
	if err := os.WriteFile(filepath.Join(dir, ".moodlog.yaml"), data, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv(ConfigPathEnv, dir)
	t.Chdir(t.TempDir())

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.BasePath() != filepath.Join(dir, "db") {
		t.Fatalf("unexpected path %q", cfg.BasePath())
	}
	if cfg.AlertDelay() != 500*time.Millisecond {
		t.Fatalf("unexpected alert delay %v", cfg.AlertDelay())
	}
}

func TestLoadConfigEnvOverride(t *testing.T) {
	t.Setenv(ConfigPathEnv, t.TempDir())
	t.Chdir(t.TempDir())
	t.Setenv("MOODLOG_PATH", "/tmp/elsewhere")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.BasePath() != "/tmp/elsewhere" {
		t.Fatalf("expected env override, got %q", cfg.BasePath())
	}
}
