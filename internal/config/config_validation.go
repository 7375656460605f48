package config

import (
	"time"
)

// Defaults applied by validation when a value is not set by any source.
const (
	defaultHTTPAddress   = ":5000"
	defaultPublicBaseURL = "http://localhost:5000"
	defaultUploadDir     = "uploads"
	defaultTokenIssuer   = "persona-board"
	defaultTokenDuration = time.Hour
	defaultServerURL     = "http://localhost:5000"
	defaultCachePath     = ":memory:"
	defaultClientTimeout = 15 * time.Second
)

// validateServer applies server-side defaults and checks the fields the
// server binary cannot run without.
func (c *StructuredConfig) validateServer() error {
	c.applyDefaults()

	if c.App.TokenSignKey == "" {
		return ErrNoTokenSignKey
	}
	if c.Storage.DB.DSN == "" {
		return ErrNoDatabaseDSN
	}

	return nil
}

// validateClient applies client-side defaults. The client needs no secrets:
// it receives tokens from the server.
func (c *StructuredConfig) validateClient() error {
	c.applyDefaults()
	return nil
}

func (c *StructuredConfig) applyDefaults() {
	if c.Server.HTTPAddress == "" {
		c.Server.HTTPAddress = defaultHTTPAddress
	}
	if c.Server.PublicBaseURL == "" {
		c.Server.PublicBaseURL = defaultPublicBaseURL
	}
	if c.Storage.Files.UploadDir == "" {
		c.Storage.Files.UploadDir = defaultUploadDir
	}
	if c.App.TokenIssuer == "" {
		c.App.TokenIssuer = defaultTokenIssuer
	}
	if c.App.TokenDuration == 0 {
		c.App.TokenDuration = defaultTokenDuration
	}
	if c.Client.ServerURL == "" {
		c.Client.ServerURL = defaultServerURL
	}
	if c.Client.CachePath == "" {
		c.Client.CachePath = defaultCachePath
	}
	if c.Client.Timeout == 0 {
		c.Client.Timeout = defaultClientTimeout
	}
}
