package cli

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func isolateConfig(t *testing.T) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("CARTESIAN_CONFIG", "")
}

func TestLoadConfigDefaults(t *testing.T) {
	isolateConfig(t)

	cfg, err := loadConfig("")
	if err != nil {
		t.Fatalf("loadConfig() error: %v", err)
	}
	if cfg.Server.Addr != ":8080" {
		t.Errorf("Addr = %q, want :8080", cfg.Server.Addr)
	}
	if cfg.Server.RenderTimeout != 20*time.Second {
		t.Errorf("RenderTimeout = %v, want 20s", cfg.Server.RenderTimeout)
	}
	if cfg.Server.MaxBodyBytes != 4<<20 {
		t.Errorf("MaxBodyBytes = %d, want 4 MiB", cfg.Server.MaxBodyBytes)
	}
	if len(cfg.Render.Formats) != 1 || cfg.Render.Formats[0] != "svg" {
		t.Errorf("Formats = %v, want [svg]", cfg.Render.Formats)
	}
	if cfg.Render.Scale != 2 {
		t.Errorf("Scale = %v, want 2", cfg.Render.Scale)
	}
}

func TestLoadConfigFile(t *testing.T) {
	isolateConfig(t)
	path := filepath.Join(t.TempDir(), "settings.toml")
	settings := `
[server]
addr = "127.0.0.1:9000"
render_timeout = "5s"

[cache]
redis_url = "redis://localhost:6379/0"
prefix = "staging:"

[render]
formats = ["svg", "png"]
`
	if err := os.WriteFile(path, []byte(settings), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig() error: %v", err)
	}
	if cfg.Server.Addr != "127.0.0.1:9000" {
		t.Errorf("Addr = %q", cfg.Server.Addr)
	}
	if cfg.Server.RenderTimeout != 5*time.Second {
		t.Errorf("RenderTimeout = %v, want 5s", cfg.Server.RenderTimeout)
	}
	if cfg.Cache.RedisURL != "redis://localhost:6379/0" || cfg.Cache.Prefix != "staging:" {
		t.Errorf("Cache = %+v", cfg.Cache)
	}
	if len(cfg.Render.Formats) != 2 {
		t.Errorf("Formats = %v, want [svg png]", cfg.Render.Formats)
	}
	if cfg.Server.ReadTimeout != 10*time.Second {
		t.Errorf("ReadTimeout = %v, want default 10s", cfg.Server.ReadTimeout)
	}
}

func TestLoadConfigEnv(t *testing.T) {
	isolateConfig(t)
	t.Setenv("CARTESIAN_SERVER_ADDR", ":7000")
	t.Setenv("CARTESIAN_CACHE_DISABLED", "true")

	cfg, err := loadConfig("")
	if err != nil {
		t.Fatalf("loadConfig() error: %v", err)
	}
	if cfg.Server.Addr != ":7000" {
		t.Errorf("Addr = %q, want :7000 from env", cfg.Server.Addr)
	}
	if !cfg.Cache.Disabled {
		t.Error("Cache.Disabled should come from env")
	}
}

func TestLoadConfigMissingExplicitFile(t *testing.T) {
	isolateConfig(t)
	if _, err := loadConfig(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("loadConfig() with a missing explicit file should fail")
	}
}
