package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Filter modes.
const (
	FilterModeLocal  = "local"
	FilterModeRemote = "remote"
)

// Config is the root application configuration.
type Config struct {
	Upstream  UpstreamConfig  `yaml:"upstream"`
	Filter    FilterConfig    `yaml:"filter"`
	Catalog   CatalogConfig   `yaml:"catalog"`
	Server    ServerConfig    `yaml:"server"`
	CORS      CORSConfig      `yaml:"cors"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Session   SessionConfig   `yaml:"session"`
	Log       LogConfig       `yaml:"log"`
}

// UpstreamConfig points at the shelter REST API.
type UpstreamConfig struct {
	BaseURL  string        `yaml:"base_url"  env:"UPSTREAM_BASE_URL"  env-default:"http://localhost:8080/api"`
	Timeout  time.Duration `yaml:"timeout"   env:"UPSTREAM_TIMEOUT"   env-default:"10s"`
	RetryMax int           `yaml:"retry_max" env:"UPSTREAM_RETRY_MAX" env-default:"0"`
}

// FilterConfig holds gallery filtering settings.
type FilterConfig struct {
	Debounce time.Duration `yaml:"debounce"  env:"FILTER_DEBOUNCE"  env-default:"300ms"`
	Mode     string        `yaml:"mode"      env:"FILTER_MODE"      env-default:"local"`
	PageSize int           `yaml:"page_size" env:"FILTER_PAGE_SIZE" env-default:"12"`
}

// IsRemote reports whether every evaluation should query the upstream API.
func (c FilterConfig) IsRemote() bool {
	return strings.EqualFold(c.Mode, FilterModeRemote)
}

// CatalogConfig holds the gateway's snapshot settings.
type CatalogConfig struct {
	TTL time.Duration `yaml:"ttl" env:"CATALOG_TTL" env-default:"30s"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8081"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// Addr returns the listen address.
func (c ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Content-Type,X-Request-Id"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"false"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// RateLimitConfig holds the gateway's per-client rate limit.
type RateLimitConfig struct {
	Enabled           bool          `yaml:"enabled"             env:"RATE_LIMIT_ENABLED"  env-default:"true"`
	RequestsPerSecond float64       `yaml:"requests_per_second" env:"RATE_LIMIT_RPS"      env-default:"10"`
	Burst             int           `yaml:"burst"               env:"RATE_LIMIT_BURST"    env-default:"20"`
	CleanupInterval   time.Duration `yaml:"cleanup_interval"    env:"RATE_LIMIT_CLEANUP"  env-default:"1m"`
}

// SessionConfig holds the CLI session store settings.
type SessionConfig struct {
	Path string `yaml:"path" env:"MIAUDOTA_SESSION_PATH"`
}

// ResolvePath returns the session file path, defaulting to
// miaudota/session.json under the user config directory.
func (c SessionConfig) ResolvePath() (string, error) {
	if c.Path != "" {
		return c.Path, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("config: session path: %w", err)
	}
	return filepath.Join(dir, "miaudota", "session.json"), nil
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}
