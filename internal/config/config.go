package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config is the saiscope.yaml file.
type Config struct {
	Version  int      `yaml:"version"`
	Database Database `yaml:"database"`
	SpellDB  struct {
		Path string `yaml:"path"`
	} `yaml:"spell_db"`
	Trace struct {
		MaxSteps       int    `yaml:"max_steps"`
		DataScope      string `yaml:"data_scope"`
		MaxRandomRange int    `yaml:"max_random_range"`
	} `yaml:"trace"`
	Comments struct {
		Style             string  `yaml:"style"`
		Workers           int     `yaml:"workers"`
		ResolverTimeoutMS int     `yaml:"resolver_timeout_ms"`
		CacheSize         int     `yaml:"cache_size"`
		ResolverRate      float64 `yaml:"resolver_rate"`
	} `yaml:"comments"`
	API struct {
		Port int `yaml:"port"`
	} `yaml:"api"`
	MQTT struct {
		URL         string `yaml:"url"`
		ClientID    string `yaml:"client_id"`
		TopicPrefix string `yaml:"topic_prefix"`
	} `yaml:"mqtt"`
}

// Database selects and addresses the world database.
type Database struct {
	// Driver is mysql, postgres or sqlite.
	Driver           string `yaml:"driver"`
	Host             string `yaml:"host"`
	Port             int    `yaml:"port"`
	User             string `yaml:"user"`
	Password         string `yaml:"password"`
	Name             string `yaml:"name"`
	Path             string `yaml:"path"`
	ConnectTimeoutMS int    `yaml:"connect_timeout_ms"`
}

// DriverName returns the configured driver, defaulting to mysql.
func (d Database) DriverName() string {
	if d.Driver == "" {
		return "mysql"
	}
	return d.Driver
}

// HostName returns the configured host, defaulting to 127.0.0.1.
func (d Database) HostName() string {
	if d.Host == "" {
		return "127.0.0.1"
	}
	return d.Host
}

// PortNumber returns the configured port or the driver's default.
func (d Database) PortNumber() int {
	if d.Port != 0 {
		return d.Port
	}
	if d.DriverName() == "postgres" {
		return 5432
	}
	return 3306
}

// UserName returns the configured user, defaulting to acore.
func (d Database) UserName() string {
	if d.User == "" {
		return "acore"
	}
	return d.User
}

// DatabaseName returns the configured schema, defaulting to acore_world.
func (d Database) DatabaseName() string {
	if d.Name == "" {
		return "acore_world"
	}
	return d.Name
}

// ConnectTimeout returns the ping timeout used when opening, default 5s.
func (d Database) ConnectTimeout() time.Duration {
	if d.ConnectTimeoutMS <= 0 {
		return 5 * time.Second
	}
	return time.Duration(d.ConnectTimeoutMS) * time.Millisecond
}

// MaxSteps returns the trace step budget, defaulting to 256.
func (c *Config) MaxSteps() int {
	if c.Trace.MaxSteps <= 0 {
		return 256
	}
	return c.Trace.MaxSteps
}

// DataScope returns the SET_DATA listener scope, defaulting to targets.
func (c *Config) DataScope() string {
	if c.Trace.DataScope == "" {
		return "targets"
	}
	return c.Trace.DataScope
}

// MaxRandomRange returns the cap on CALL_RANDOM_RANGE_TIMED_ACTIONLIST
// expansion, defaulting to 32.
func (c *Config) MaxRandomRange() int {
	if c.Trace.MaxRandomRange <= 0 {
		return 32
	}
	return c.Trace.MaxRandomRange
}

// CommentStyle returns canonical or narrated, defaulting to canonical.
func (c *Config) CommentStyle() string {
	if c.Comments.Style == "" {
		return "canonical"
	}
	return c.Comments.Style
}

// Workers returns the comment batch pool size, defaulting to 4.
func (c *Config) Workers() int {
	if c.Comments.Workers <= 0 {
		return 4
	}
	return c.Comments.Workers
}

// ResolverTimeout returns the per-lookup timeout, defaulting to 250ms.
func (c *Config) ResolverTimeout() time.Duration {
	if c.Comments.ResolverTimeoutMS <= 0 {
		return 250 * time.Millisecond
	}
	return time.Duration(c.Comments.ResolverTimeoutMS) * time.Millisecond
}

// CacheSize returns the resolver cache capacity, defaulting to 4096.
func (c *Config) CacheSize() int {
	if c.Comments.CacheSize <= 0 {
		return 4096
	}
	return c.Comments.CacheSize
}

// ResolverRate returns the database lookups allowed per second, default 200.
func (c *Config) ResolverRate() float64 {
	if c.Comments.ResolverRate <= 0 {
		return 200
	}
	return c.Comments.ResolverRate
}

// APIPort returns the configured API port, defaulting to 8080 if not set.
func (c *Config) APIPort() int {
	if c.API.Port == 0 {
		return 8080
	}
	return c.API.Port
}

// TopicPrefix returns the MQTT topic prefix, defaulting to saiscope.
func (c *Config) TopicPrefix() string {
	if c.MQTT.TopicPrefix == "" {
		return "saiscope"
	}
	return c.MQTT.TopicPrefix
}

// Default returns an empty version 1 config; every accessor yields its default.
func Default() *Config {
	return &Config{Version: 1}
}

// Load reads path, or starts from Default when path is empty, then applies
// a .env file in the working directory and environment overrides.
func Load(path string) (*Config, error) {
	// .env is optional
	_ = godotenv.Load()

	cfg := Default()
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		if err := yaml.Unmarshal(b, cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
		if cfg.Version != 1 {
			return nil, fmt.Errorf("unsupported saiscope.yaml version: %d", cfg.Version)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	setString(&c.Database.Driver, "DB_DRIVER")
	setString(&c.Database.Host, "DB_HOST")
	setString(&c.Database.User, "DB_USER")
	setString(&c.Database.Name, "DB_WORLD")
	setString(&c.SpellDB.Path, "SPELL_DB_PATH")
	setString(&c.MQTT.URL, "MQTT_URL")
	if err := setInt(&c.Database.Port, "DB_PORT"); err != nil {
		return err
	}
	if err := setInt(&c.API.Port, "SAISCOPE_PORT"); err != nil {
		return err
	}

	password, err := ResolveSecret("DB_PASSWORD")
	if err != nil {
		return err
	}
	if password != "" {
		c.Database.Password = password
	}
	return nil
}

func setString(dst *string, env string) {
	if v := os.Getenv(env); v != "" {
		*dst = v
	}
}

func setInt(dst *int, env string) error {
	v := os.Getenv(env)
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("invalid %s=%q: %w", env, v, err)
	}
	*dst = n
	return nil
}
