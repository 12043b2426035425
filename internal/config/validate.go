package config

import (
	"fmt"
	"net/url"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if err := c.Upstream.validate(); err != nil {
		return fmt.Errorf("upstream: %w", err)
	}
	if err := c.Filter.validate(); err != nil {
		return fmt.Errorf("filter: %w", err)
	}
	if c.Catalog.TTL < 0 {
		return fmt.Errorf("catalog: ttl must be >= 0 (got %v)", c.Catalog.TTL)
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server: port must be in 1..65535 (got %d)", c.Server.Port)
	}
	if err := c.RateLimit.validate(); err != nil {
		return fmt.Errorf("rate_limit: %w", err)
	}
	if err := c.Log.validate(); err != nil {
		return fmt.Errorf("log: %w", err)
	}
	return nil
}

func (u *UpstreamConfig) validate() error {
	parsed, err := url.Parse(u.BaseURL)
	if err != nil {
		return fmt.Errorf("base_url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("base_url must be an http(s) URL (got %q)", u.BaseURL)
	}
	if parsed.Host == "" {
		return fmt.Errorf("base_url has no host (got %q)", u.BaseURL)
	}
	u.BaseURL = strings.TrimRight(u.BaseURL, "/")

	if u.Timeout <= 0 {
		return fmt.Errorf("timeout must be > 0 (got %v)", u.Timeout)
	}
	if u.RetryMax < 0 || u.RetryMax > 10 {
		return fmt.Errorf("retry_max must be in 0..10 (got %d)", u.RetryMax)
	}
	return nil
}

func (f *FilterConfig) validate() error {
	if f.Debounce <= 0 {
		return fmt.Errorf("debounce must be > 0 (got %v)", f.Debounce)
	}
	switch strings.ToLower(f.Mode) {
	case FilterModeLocal, FilterModeRemote:
	default:
		return fmt.Errorf("mode must be %q or %q (got %q)", FilterModeLocal, FilterModeRemote, f.Mode)
	}
	if f.PageSize < 1 || f.PageSize > 100 {
		return fmt.Errorf("page_size must be in 1..100 (got %d)", f.PageSize)
	}
	return nil
}

func (r *RateLimitConfig) validate() error {
	if !r.Enabled {
		return nil
	}
	if r.RequestsPerSecond <= 0 {
		return fmt.Errorf("requests_per_second must be > 0 (got %v)", r.RequestsPerSecond)
	}
	if r.Burst < 1 {
		return fmt.Errorf("burst must be >= 1 (got %d)", r.Burst)
	}
	return nil
}

func (l *LogConfig) validate() error {
	switch strings.ToLower(l.Format) {
	case "json", "text":
		return nil
	default:
		return fmt.Errorf("format must be json or text (got %q)", l.Format)
	}
}
