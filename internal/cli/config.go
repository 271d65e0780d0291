package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Store backend identifiers accepted in the config file.
const (
	BackendFile  = "file"
	BackendRedis = "redis"
	BackendMongo = "mongo"
)

// Config is the on-disk CLI configuration, read from
// ~/.config/shadegraph/config.toml (or $XDG_CONFIG_HOME).
type Config struct {
	Store StoreConfig `toml:"store"`
}

// StoreConfig selects and parameterizes the graph store backend.
type StoreConfig struct {
	// Backend is one of "file", "redis", or "mongo". Empty means file.
	Backend string `toml:"backend"`

	// Dir is the file backend's directory. Empty means the default data dir.
	Dir string `toml:"dir"`

	Redis RedisConfig `toml:"redis"`
	Mongo MongoConfig `toml:"mongo"`
}

// RedisConfig parameterizes the redis backend.
type RedisConfig struct {
	Addr     string `toml:"addr"`
	DB       int    `toml:"db"`
	TTLHours int    `toml:"ttl_hours"`
}

// MongoConfig parameterizes the mongo backend.
type MongoConfig struct {
	URI        string `toml:"uri"`
	Database   string `toml:"database"`
	Collection string `toml:"collection"`
}

// DefaultConfig returns the configuration used when no config file exists.
func DefaultConfig() Config {
	return Config{
		Store: StoreConfig{
			Backend: BackendFile,
			Redis: RedisConfig{
				Addr: "localhost:6379",
			},
			Mongo: MongoConfig{
				URI:        "mongodb://localhost:27017",
				Database:   appName,
				Collection: "graphs",
			},
		},
	}
}

// LoadConfig reads the config file at path, or the default location when
// path is empty. A missing file is not an error; defaults apply.
func LoadConfig(path string) (Config, error) {
	if path == "" {
		var err error
		path, err = defaultConfigPath()
		if err != nil {
			return DefaultConfig(), err
		}
	}

	cfg := DefaultConfig()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

// defaultConfigPath returns the XDG config file location
// (~/.config/shadegraph/config.toml).
func defaultConfigPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}
