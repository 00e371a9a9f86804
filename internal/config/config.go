package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Redis    RedisConfig    `yaml:"redis"`
	Email    EmailConfig    `yaml:"email"`
	Uploads  UploadsConfig  `yaml:"uploads"`
	Admin    AdminConfig    `yaml:"admin"`
	Env      string         `yaml:"env"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Addr         string        `yaml:"addr"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
	IdleTimeout  time.Duration `yaml:"idle_timeout"`
	StaticDir    string        `yaml:"static_dir"`
}

// DatabaseConfig holds SQLite configuration
type DatabaseConfig struct {
	Path string `yaml:"path"`
}

// DSN returns the SQLite connection string with the pragmas the server
// relies on (WAL, foreign keys, busy timeout).
func (c *DatabaseConfig) DSN() string {
	return c.Path + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(ON)&_pragma=synchronous(NORMAL)"
}

// RedisConfig holds the optional Redis connection used for presence
// tracking. When Addr is empty the server falls back to in-memory tracking.
type RedisConfig struct {
	Addr     string        `yaml:"addr"`
	Password string        `yaml:"password"`
	DB       int           `yaml:"db"`
	TTL      time.Duration `yaml:"ttl"`
}

// EmailConfig holds outbound email configuration
type EmailConfig struct {
	ResendKey string `yaml:"resend_key"`
	From      string `yaml:"from"`
	ReplyTo   string `yaml:"reply_to"`
}

// UploadsConfig holds document upload configuration
type UploadsConfig struct {
	Dir          string `yaml:"dir"`
	MaxSizeBytes int64  `yaml:"max_size_bytes"`
}

// AdminConfig holds the seed admin credentials
type AdminConfig struct {
	Email    string `yaml:"email"`
	Password string `yaml:"password"`
}

// Load reads configuration from a YAML file. A missing file is not an
// error; the defaults plus environment overrides are returned instead.
func Load(path string) (*Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	if err == nil {
		// Expand environment variables
		data = []byte(os.ExpandEnv(string(data)))
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg.applyEnvOverrides()
	cfg.applyDefaults()

	return &cfg, nil
}

// applyEnvOverrides lets environment variables win over the file so the
// server can be configured without one.
func (c *Config) applyEnvOverrides() {
	setIfEnv(&c.Server.Addr, "CLUBDESK_ADDR")
	setIfEnv(&c.Database.Path, "CLUBDESK_DB_PATH")
	setIfEnv(&c.Redis.Addr, "CLUBDESK_REDIS_ADDR")
	setIfEnv(&c.Redis.Password, "CLUBDESK_REDIS_PASSWORD")
	setIfEnv(&c.Email.ResendKey, "CLUBDESK_RESEND_KEY")
	setIfEnv(&c.Email.From, "CLUBDESK_RESEND_FROM")
	setIfEnv(&c.Email.ReplyTo, "CLUBDESK_REPLY_TO")
	setIfEnv(&c.Uploads.Dir, "CLUBDESK_UPLOADS_DIR")
	setIfEnv(&c.Admin.Email, "CLUBDESK_ADMIN_EMAIL")
	setIfEnv(&c.Admin.Password, "CLUBDESK_ADMIN_PASSWORD")
	setIfEnv(&c.Env, "CLUBDESK_ENV")
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	if c.Server.Addr == "" {
		c.Server.Addr = ":8080"
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 5 * time.Second
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 10 * time.Second
	}
	if c.Server.IdleTimeout == 0 {
		c.Server.IdleTimeout = 120 * time.Second
	}
	if c.Server.StaticDir == "" {
		c.Server.StaticDir = "static"
	}
	if c.Database.Path == "" {
		c.Database.Path = "clubdesk.db"
	}
	if c.Redis.TTL == 0 {
		c.Redis.TTL = 90 * time.Second
	}
	if c.Email.From == "" {
		c.Email.From = "Club Desk <noreply@clubdesk.uy>"
	}
	if c.Email.ReplyTo == "" {
		c.Email.ReplyTo = c.Email.From
	}
	if c.Uploads.Dir == "" {
		c.Uploads.Dir = "uploads"
	}
	if c.Uploads.MaxSizeBytes == 0 {
		c.Uploads.MaxSizeBytes = 5 << 20
	}
	if c.Admin.Email == "" {
		c.Admin.Email = "admin@clubdesk.uy"
	}
	if c.Env == "" {
		c.Env = "development"
	}
}

// DefaultConfig returns a configuration with all defaults
func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func setIfEnv(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}
