// Package config handles configuration for the server,
// including defaults, environment overlay, and command-line flags.
package config

import (
	"fmt"
	"time"
)

// Config holds runtime settings for the postboard server.
//
// Fields:
//   - EndpointAddr: bind address for the HTTP endpoint.
//   - DatabaseHost / DatabasePort / DatabaseUser / DatabasePassword /
//     DatabaseName: PostgreSQL connection parts, composed into a pgx DSN.
//   - SecretKey: HMAC secret for signing JWTs. Do not use test defaults in prod.
//   - Algorithm: JWT signing algorithm name (HMAC family, e.g. "HS256").
//   - AccessTokenValidityDuration: access token lifetime.
type Config struct {
	EndpointAddr                string
	DatabaseHost                string
	DatabasePort                string
	DatabaseUser                string
	DatabasePassword            string
	DatabaseName                string
	SecretKey                   string
	Algorithm                   string
	AccessTokenValidityDuration time.Duration
}

// DatabaseDSN composes the PostgreSQL connection string from its parts.
func (c *Config) DatabaseDSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s",
		c.DatabaseUser, c.DatabasePassword, c.DatabaseHost, c.DatabasePort, c.DatabaseName)
}

// LoadDefaults populates Config with sensible development defaults.
// NOTE: These values are insecure for production and should be overridden.
func (c *Config) LoadDefaults() {
	c.EndpointAddr = ":8000"
	c.DatabaseHost = "localhost"
	c.DatabasePort = "5432"
	c.DatabaseUser = "postgres"
	c.DatabasePassword = "postgres"
	c.DatabaseName = "postboard"
	c.SecretKey = "secretKey"
	c.Algorithm = "HS256"
	c.AccessTokenValidityDuration = 30 * time.Minute
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from the environment (plus an optional .env file) and finally from
// command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
