package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/linkrank/linkrank/pkg/rank"
)

// Config holds settings loaded from the TOML config file.
//
// Example config (~/.config/linkrank/config.toml):
//
//	[rank]
//	damping = 0.85
//	samples = 10000
//	threshold = 0.001
//
//	[cache]
//	dir = "/var/cache/linkrank"
//
//	[cache.redis]
//	addr = "localhost:6379"
//
//	[serve]
//	addr = ":8080"
type Config struct {
	Rank  RankConfig  `toml:"rank"`
	Cache CacheConfig `toml:"cache"`
	Serve ServeConfig `toml:"serve"`
}

// RankConfig overrides the estimator defaults.
type RankConfig struct {
	Damping   float64 `toml:"damping"`
	Samples   int     `toml:"samples"`
	Threshold float64 `toml:"threshold"`
}

// CacheConfig selects and locates the cache backend. When Redis.Addr is
// set, the Redis backend is used instead of the file cache.
type CacheConfig struct {
	Dir   string      `toml:"dir"`
	Redis RedisConfig `toml:"redis"`
}

// RedisConfig holds Redis connection settings.
type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

// ServeConfig holds HTTP server settings.
type ServeConfig struct {
	Addr string `toml:"addr"`
}

// DefaultConfig returns a config with the estimator defaults filled in.
func DefaultConfig() *Config {
	return &Config{
		Rank: RankConfig{
			Damping:   rank.DefaultDamping,
			Samples:   rank.DefaultSamples,
			Threshold: rank.DefaultThreshold,
		},
		Serve: ServeConfig{Addr: ":8080"},
	}
}

// LoadConfig reads the TOML config at path, falling back to the default
// location when path is empty. A missing file is not an error: defaults
// apply. Values absent from the file keep their defaults.
func LoadConfig(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = defaultConfigPath()
		if path == "" {
			return DefaultConfig(), nil
		}
	}

	cfg := DefaultConfig()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		if os.IsNotExist(err) && !explicit {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}

// defaultConfigPath returns the XDG config location
// (~/.config/linkrank/config.toml), or "" if no home is available.
func defaultConfigPath() string {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", appName, "config.toml")
}

// rankOptions builds estimator options from the config.
func (c *Config) rankOptions() rank.Options {
	opts := rank.DefaultOptions()
	if c.Rank.Damping != 0 {
		opts.Damping = c.Rank.Damping
	}
	if c.Rank.Samples != 0 {
		opts.Samples = c.Rank.Samples
	}
	if c.Rank.Threshold != 0 {
		opts.Threshold = c.Rank.Threshold
	}
	return opts
}
