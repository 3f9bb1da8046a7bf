// Package config builds the server configuration from defaults, then the
// environment (optionally seeded from a .env file), then a JSON file and
// finally command-line flags. Each later source overrides the earlier ones.
package config

import (
	"fmt"
	"time"
)

// Config holds runtime settings for the portal server.
//
// Fields:
//   - EndpointAddrHTTP: bind address of the HTTP API.
//   - EndpointAddrGRPC: bind address of the gRPC health endpoint.
//   - SecretKey: HMAC secret for signing admin session tokens (HS256);
//     empty means a random key generated at start.
//   - SessionTTL: lifetime of an admin session.
//   - BcryptCost: bcrypt work factor for stored passwords.
//   - SeedData: load fixture content at start.
//   - AdminUsername / AdminPasswordHash: seeded administrator; an empty hash
//     seeds the default development password.
//   - LogLevel / LogFormat: slog level name and "json" or "text".
//   - SecureCookie: mark the session cookie Secure (HTTPS only).
type Config struct {
	EndpointAddrHTTP  string
	EndpointAddrGRPC  string
	SecretKey         string
	SessionTTL        time.Duration
	BcryptCost        int
	SeedData          bool
	AdminUsername     string
	AdminPasswordHash string
	LogLevel          string
	LogFormat         string
	SecureCookie      bool
}

// LoadDefaults populates Config with development defaults. SecretKey is left
// empty: the server then signs sessions with a random per-process key.
func (c *Config) LoadDefaults() {
	c.EndpointAddrHTTP = ":3000"
	c.EndpointAddrGRPC = ":50051"
	c.SecretKey = ""
	c.SessionTTL = 24 * time.Hour
	c.BcryptCost = 10
	c.SeedData = true
	c.AdminUsername = "admin"
	c.AdminPasswordHash = ""
	c.LogLevel = "info"
	c.LogFormat = "json"
	c.SecureCookie = false
}

// LoadConfig applies defaults, environment, JSON file and flags in that
// order.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := parseEnv(cfg); err != nil {
		return nil, fmt.Errorf("env config: %w", err)
	}
	if err := parseJson(cfg); err != nil {
		return nil, fmt.Errorf("json config: %w", err)
	}
	if err := parseFlags(cfg); err != nil {
		return nil, fmt.Errorf("flags: %w", err)
	}
	return cfg, nil
}
