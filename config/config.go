package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Bounds for the push delivery options.
const (
	DefaultConcurrency = 8
	MaxConcurrency     = 32
	DefaultRetryCount  = 1
	MaxRetryCount      = 3
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Auth     AuthConfig     `mapstructure:"auth"`
	Push     PushConfig     `mapstructure:"push"`
	Log      LogConfig      `mapstructure:"log"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"` // debug, release, test
}

type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxConns        int32         `mapstructure:"max_conns"`
	MinConns        int32         `mapstructure:"min_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// Addr returns the Redis address string.
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

// AuthConfig configures the bearer tokens internal callers use to trigger notifications.
type AuthConfig struct {
	ServiceSecret string        `mapstructure:"service_secret"`
	Issuer        string        `mapstructure:"issuer"`
	TokenExpiry   time.Duration `mapstructure:"token_expiry"`
}

// PushConfig holds VAPID credentials and fan-out tuning.
type PushConfig struct {
	VAPIDSubject    string        `mapstructure:"vapid_subject"`
	VAPIDPublicKey  string        `mapstructure:"vapid_public_key"`
	VAPIDPrivateKey string        `mapstructure:"vapid_private_key"`
	TTL             time.Duration `mapstructure:"ttl"`
	Urgency         string        `mapstructure:"urgency"` // very-low, low, normal, high
	RequestTimeout  time.Duration `mapstructure:"request_timeout"`
	Concurrency     int           `mapstructure:"concurrency"`
	RetryCount      int           `mapstructure:"retry_count"`
	DedupeEnabled   bool          `mapstructure:"dedupe_enabled"`
	CleanupEnabled  bool          `mapstructure:"cleanup_enabled"`
	AppURL          string        `mapstructure:"app_url"` // prefix for notification click-through links
	Icon            string        `mapstructure:"icon"`
}

// Normalize clamps concurrency to [1, MaxConcurrency] and retry count to [0, MaxRetryCount].
// Non-positive concurrency falls back to the default.
func (p PushConfig) Normalize() PushConfig {
	switch {
	case p.Concurrency <= 0:
		p.Concurrency = DefaultConcurrency
	case p.Concurrency > MaxConcurrency:
		p.Concurrency = MaxConcurrency
	}
	switch {
	case p.RetryCount < 0:
		p.RetryCount = 0
	case p.RetryCount > MaxRetryCount:
		p.RetryCount = MaxRetryCount
	}
	return p
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

// Load reads configuration from file and environment variables.
// A .env file in the working directory is loaded first if present; it never
// overrides variables already set in the process environment.
// Environment variables override file values. Prefix: PDE_ (Push Delivery Engine).
// Nested keys use underscore: PDE_DATABASE_HOST, PDE_PUSH_CONCURRENCY, etc.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()

	// Defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.dbname", "pharmacy")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_conns", 20)
	v.SetDefault("database.min_conns", 2)
	v.SetDefault("database.conn_max_lifetime", "30m")
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("auth.service_secret", "")
	v.SetDefault("auth.issuer", "push-delivery-engine")
	v.SetDefault("auth.token_expiry", "1h")
	v.SetDefault("push.vapid_subject", "")
	v.SetDefault("push.vapid_public_key", "")
	v.SetDefault("push.vapid_private_key", "")
	v.SetDefault("push.ttl", "24h")
	v.SetDefault("push.urgency", "normal")
	v.SetDefault("push.request_timeout", "10s")
	v.SetDefault("push.concurrency", DefaultConcurrency)
	v.SetDefault("push.retry_count", DefaultRetryCount)
	v.SetDefault("push.dedupe_enabled", true)
	v.SetDefault("push.cleanup_enabled", true)
	v.SetDefault("push.app_url", "")
	v.SetDefault("push.icon", "/icons/icon-192.png")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)

	// File config
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// Environment variables: PDE_PUSH_RETRY_COUNT -> push.retry_count
	v.SetEnvPrefix("PDE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file (not required; env vars can suffice)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	cfg.Push = cfg.Push.Normalize()

	return &cfg, nil
}
