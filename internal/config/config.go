// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New(ctx) initializer to build a Config with defaults.
// - Load layers defaults, an optional YAML file and SKYCARD_ env vars.
// - External errors are wrapped with this package's sentinel kinds.
package config

import (
	"context"
	"time"
)

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// LogFile, when set, also writes logs to a rotated file.
	LogFile string `koanf:"log_file"`

	// LogJSON switches log output to JSON lines.
	LogJSON bool `koanf:"log_json"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// ProfilesKey is forwarded to the profiles API.
	ProfilesKey string `koanf:"profiles_key"`

	// WeightKey is forwarded to the weight API.
	WeightKey string `koanf:"weight_key"`

	// Upstream base URLs.
	DirectoryURL string `koanf:"directory_url"`
	ProfilesURL  string `koanf:"profiles_url"`
	WeightURL    string `koanf:"weight_url"`
	AvatarURL    string `koanf:"avatar_url"`

	// UpstreamTimeoutMS bounds each upstream call. Zero keeps the transport default.
	UpstreamTimeoutMS int `koanf:"upstream_timeout_ms"`

	// ProjectURL is where GET / redirects.
	ProjectURL string `koanf:"project_url"`

	// ForumUserAgent is the exact User-Agent that gets the downscaled card.
	ForumUserAgent string `koanf:"forum_user_agent"`

	// MetricsEnabled switches Prometheus recording on or off.
	MetricsEnabled bool `koanf:"metrics_enabled"`

	// MetricsRefreshMS is how often the system gauges are refreshed.
	MetricsRefreshMS int `koanf:"metrics_refresh_ms"`
}

// New creates a Config with defaults. Secrets have no default.
func New(_ context.Context) *Config {
	return &Config{
		LogLevel:         "info",
		Addr:             ":9080",
		DirectoryURL:     "https://api.mojang.com/users/profiles/minecraft",
		ProfilesURL:      "https://api.altpapier.dev/v1/profiles",
		WeightURL:        "https://lilyweight.antonio32a.workers.dev",
		AvatarURL:        "https://crafthead.net/avatar",
		ProjectURL:       "https://github.com/Antonio32A/skyblock-stats-banner",
		ForumUserAgent:   "XenForo/2.x (https://hypixel.net)",
		MetricsEnabled:   true,
		MetricsRefreshMS: 10000,
	}
}

// UpstreamTimeout returns the configured upstream timeout as a duration.
func (c *Config) UpstreamTimeout() time.Duration {
	if c.UpstreamTimeoutMS <= 0 {
		return 0
	}
	return time.Duration(c.UpstreamTimeoutMS) * time.Millisecond
}

// MetricsRefresh returns the system gauge refresh interval.
func (c *Config) MetricsRefresh() time.Duration {
	return time.Duration(c.MetricsRefreshMS) * time.Millisecond
}
