// Package config loads the server configuration from a YAML file.
package config

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the root configuration for the server.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Data    DataConfig    `yaml:"data"`
	Redis   RedisConfig   `yaml:"redis"`
	Tickers []string      `yaml:"tickers"`
	Quota   QuotaConfig   `yaml:"quota"`
	Session SessionConfig `yaml:"session"`
}

// ServerConfig holds the HTTP listener settings.
type ServerConfig struct {
	Addr string `yaml:"addr"`
}

// DataConfig locates the shard directory and the CSV datasets.
type DataConfig struct {
	ShardDir           string `yaml:"shard_dir"`
	GapFile            string `yaml:"gap_file"`
	EventsFile         string `yaml:"events_file"`
	EconomicEventsFile string `yaml:"economic_events_file"`
	EarningsFile       string `yaml:"earnings_file"`
}

// RedisConfig locates the shared Redis endpoint. An empty Addr means
// "run without Redis"; sessions and quotas then stay in-process.
type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

// LimitConfig is one quota class: at most Max admissions per Window.
type LimitConfig struct {
	Max    int           `yaml:"max"`
	Window time.Duration `yaml:"window"`
}

// UnmarshalYAML accepts the window as a duration string ("12h", "30m").
func (l *LimitConfig) UnmarshalYAML(value *yaml.Node) error {
	var raw struct {
		Max    int    `yaml:"max"`
		Window string `yaml:"window"`
	}
	if err := value.Decode(&raw); err != nil {
		return err
	}
	l.Max = raw.Max
	if raw.Window != "" {
		w, err := time.ParseDuration(raw.Window)
		if err != nil {
			return fmt.Errorf("quota window: %w", err)
		}
		l.Window = w
	}
	return nil
}

// QuotaConfig holds the per-operation-class limits.
type QuotaConfig struct {
	Default  LimitConfig `yaml:"default"`
	Insights LimitConfig `yaml:"insights"`
}

// SessionConfig holds anonymous session settings.
type SessionConfig struct {
	TTL time.Duration `yaml:"ttl"`
}

// UnmarshalYAML accepts the ttl as a duration string ("24h").
func (s *SessionConfig) UnmarshalYAML(value *yaml.Node) error {
	var raw struct {
		TTL string `yaml:"ttl"`
	}
	if err := value.Decode(&raw); err != nil {
		return err
	}
	if raw.TTL != "" {
		ttl, err := time.ParseDuration(raw.TTL)
		if err != nil {
			return fmt.Errorf("session ttl: %w", err)
		}
		s.TTL = ttl
	}
	return nil
}

// defaultTickers is the fixed universe served when the config omits one.
var defaultTickers = []string{"QQQ", "AAPL", "MSFT", "TSLA", "ORCL", "NVDA", "MSTR", "UBER", "PLTR", "META"}

func (c *Config) applyDefaults() {
	if c.Server.Addr == "" {
		c.Server.Addr = ":8080"
	}
	if c.Data.ShardDir == "" {
		c.Data.ShardDir = "data/db"
	}
	if len(c.Tickers) == 0 {
		c.Tickers = append([]string(nil), defaultTickers...)
	}
	if c.Quota.Default.Max == 0 {
		c.Quota.Default.Max = 10
	}
	if c.Quota.Default.Window == 0 {
		c.Quota.Default.Window = 12 * time.Hour
	}
	if c.Quota.Insights.Max == 0 {
		c.Quota.Insights.Max = 3
	}
	if c.Quota.Insights.Window == 0 {
		c.Quota.Insights.Window = 12 * time.Hour
	}
	if c.Session.TTL == 0 {
		c.Session.TTL = 24 * time.Hour
	}
}
