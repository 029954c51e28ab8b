// Copyright (C) 2026 FedForum Project
//
// This file is part of fedcore-go.
//
// fedcore-go is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// fedcore-go is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with fedcore-go.  If not, see <https://www.gnu.org/licenses/>.

// Package config carries the instance-level settings the federation core
// needs: the local origin, protocol toggles, cache bounds and delivery
// pacing. Capacities and TTLs live here rather than as hard constants so
// tests and small deployments can shrink them.
package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"
)

// Config describes one local instance. Construct with New to get parsing,
// validation and defaults.
type Config struct {
	// BaseURL is the public origin of this instance, scheme included,
	// e.g. "https://forum.example.org" or "https://example.org/forum".
	BaseURL string

	// AllowLoopback permits delivery to inboxes hosted on this instance.
	// Off by default; the usual path for local recipients is direct.
	AllowLoopback bool

	// AllowInsecureHTTP additionally accepts http:// identifiers.
	// Intended for CI and local test rigs only.
	AllowInsecureHTTP bool

	// MaxTitleLength bounds synthesized note titles.
	MaxTitleLength int

	FetchTimeout   time.Duration
	FetchCacheSize int
	FetchCacheTTL  time.Duration

	WebfingerCacheSize int
	WebfingerCacheTTL  time.Duration

	RetryQueueSize int
	RetryQueueTTL  time.Duration

	// MaxDeliveryAttempts is the hard ceiling on per-destination delivery
	// attempts, first attempt included.
	MaxDeliveryAttempts int

	// BackoffBase: attempt n schedules its retry BackoffBase^n seconds out.
	BackoffBase int

	// LookupBatchSize bounds concurrent inbox-field lookups.
	LookupBatchSize int

	// DeliveryBatchSize and DeliveryBatchInterval pace outbound POSTs.
	DeliveryBatchSize     int
	DeliveryBatchInterval time.Duration

	parsed *url.URL
}

// New validates cfg, parses BaseURL and fills zero fields with defaults.
func New(cfg Config) (*Config, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("config: BaseURL is required")
	}
	parsed, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("config: parse BaseURL: %w", err)
	}
	if parsed.Scheme != "https" && !(cfg.AllowInsecureHTTP && parsed.Scheme == "http") {
		return nil, fmt.Errorf("config: BaseURL scheme %q not allowed", parsed.Scheme)
	}
	if parsed.Host == "" {
		return nil, fmt.Errorf("config: BaseURL has no host")
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	cfg.parsed = parsed

	if cfg.MaxTitleLength == 0 {
		cfg.MaxTitleLength = 255
	}
	if cfg.FetchTimeout == 0 {
		cfg.FetchTimeout = 5 * time.Second
	}
	if cfg.FetchCacheSize == 0 {
		cfg.FetchCacheSize = 5000
	}
	if cfg.FetchCacheTTL == 0 {
		cfg.FetchCacheTTL = 5 * time.Minute
	}
	if cfg.WebfingerCacheSize == 0 {
		cfg.WebfingerCacheSize = 5000
	}
	if cfg.WebfingerCacheTTL == 0 {
		cfg.WebfingerCacheTTL = 24 * time.Hour
	}
	if cfg.RetryQueueSize == 0 {
		cfg.RetryQueueSize = 4000
	}
	if cfg.RetryQueueTTL == 0 {
		cfg.RetryQueueTTL = 60 * 24 * time.Hour
	}
	if cfg.MaxDeliveryAttempts == 0 {
		cfg.MaxDeliveryAttempts = 12
	}
	if cfg.BackoffBase == 0 {
		cfg.BackoffBase = 4
	}
	if cfg.LookupBatchSize == 0 {
		cfg.LookupBatchSize = 500
	}
	if cfg.DeliveryBatchSize == 0 {
		cfg.DeliveryBatchSize = 50
	}
	if cfg.DeliveryBatchInterval == 0 {
		cfg.DeliveryBatchInterval = 100 * time.Millisecond
	}
	return &cfg, nil
}

// ParsedURL returns the parsed BaseURL.
func (c *Config) ParsedURL() *url.URL { return c.parsed }

// Host returns the origin host, port included when present.
func (c *Config) Host() string { return c.parsed.Host }

// Hostname returns the origin host without port.
func (c *Config) Hostname() string { return c.parsed.Hostname() }

// RelativePath is the path prefix mounted under the origin ("" for a
// root-mounted instance).
func (c *Config) RelativePath() string {
	return strings.TrimRight(c.parsed.Path, "/")
}

// AcceptedSchemes lists the URI schemes valid for identifiers on this
// instance.
func (c *Config) AcceptedSchemes() []string {
	if c.AllowInsecureHTTP {
		return []string{"https", "http"}
	}
	return []string{"https"}
}
