package config

import "errors"

var (
	// ErrNoTokenSignKey is returned when the server is started without a
	// JWT signing key. Tokens cannot be issued or verified without it.
	ErrNoTokenSignKey = errors.New("token sign key is not configured")

	// ErrNoDatabaseDSN is returned when the server is started without a
	// database connection string.
	ErrNoDatabaseDSN = errors.New("database DSN is not configured")
)
