package cli

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.Store.Backend != BackendFile {
		t.Errorf("Backend = %q, want file default", cfg.Store.Backend)
	}
	if cfg.Store.Redis.Addr != "localhost:6379" {
		t.Errorf("Redis.Addr = %q, want default", cfg.Store.Redis.Addr)
	}
}

func TestLoadConfig_ParsesTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[store]
backend = "redis"

[store.redis]
addr = "redis.internal:6380"
db = 2
ttl_hours = 24
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.Store.Backend != BackendRedis {
		t.Errorf("Backend = %q, want redis", cfg.Store.Backend)
	}
	if cfg.Store.Redis.Addr != "redis.internal:6380" {
		t.Errorf("Redis.Addr = %q", cfg.Store.Redis.Addr)
	}
	if cfg.Store.Redis.DB != 2 || cfg.Store.Redis.TTLHours != 24 {
		t.Errorf("Redis = %+v, want db 2 ttl 24", cfg.Store.Redis)
	}
	// Sections absent from the file keep their defaults.
	if cfg.Store.Mongo.URI != "mongodb://localhost:27017" {
		t.Errorf("Mongo.URI = %q, want default", cfg.Store.Mongo.URI)
	}
}

func TestLoadConfig_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[store\nbackend"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Error("LoadConfig accepted malformed TOML")
	}
}
