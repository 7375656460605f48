package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestValidateServer_AppliesDefaults verifies that every optional field gets
// its documented default while the caller-supplied values survive.
func TestValidateServer_AppliesDefaults(t *testing.T) {
	cfg := &StructuredConfig{
		App:     App{TokenSignKey: "secret"},
		Storage: Storage{DB: DB{DSN: "postgres://localhost/personas"}},
	}

	require.NoError(t, cfg.validateServer())

	assert.Equal(t, ":5000", cfg.Server.HTTPAddress)
	assert.Equal(t, "http://localhost:5000", cfg.Server.PublicBaseURL)
	assert.Equal(t, "uploads", cfg.Storage.Files.UploadDir)
	assert.Equal(t, "persona-board", cfg.App.TokenIssuer)
	assert.Equal(t, time.Hour, cfg.App.TokenDuration)

	assert.Equal(t, "secret", cfg.App.TokenSignKey)
	assert.Equal(t, "postgres://localhost/personas", cfg.Storage.DB.DSN)
}

// TestValidateServer_KeepsExplicitValues verifies that defaults never
// overwrite values set by a config source.
func TestValidateServer_KeepsExplicitValues(t *testing.T) {
	cfg := &StructuredConfig{
		App: App{
			TokenSignKey:  "secret",
			TokenIssuer:   "custom-issuer",
			TokenDuration: 30 * time.Minute,
		},
		Server: Server{
			HTTPAddress:   ":8080",
			PublicBaseURL: "https://personas.example.com",
		},
		Storage: Storage{
			DB:    DB{DSN: "postgres://localhost/personas"},
			Files: Files{UploadDir: "/srv/uploads"},
		},
	}

	require.NoError(t, cfg.validateServer())

	assert.Equal(t, ":8080", cfg.Server.HTTPAddress)
	assert.Equal(t, "https://personas.example.com", cfg.Server.PublicBaseURL)
	assert.Equal(t, "/srv/uploads", cfg.Storage.Files.UploadDir)
	assert.Equal(t, "custom-issuer", cfg.App.TokenIssuer)
	assert.Equal(t, 30*time.Minute, cfg.App.TokenDuration)
}

func TestValidateServer_MissingTokenSignKey(t *testing.T) {
	cfg := &StructuredConfig{
		Storage: Storage{DB: DB{DSN: "postgres://localhost/personas"}},
	}

	assert.ErrorIs(t, cfg.validateServer(), ErrNoTokenSignKey)
}

func TestValidateServer_MissingDatabaseDSN(t *testing.T) {
	cfg := &StructuredConfig{
		App: App{TokenSignKey: "secret"},
	}

	assert.ErrorIs(t, cfg.validateServer(), ErrNoDatabaseDSN)
}

// TestValidateClient_NeedsNoSecrets verifies that the client passes
// validation with an entirely empty config and still receives its defaults.
func TestValidateClient_NeedsNoSecrets(t *testing.T) {
	cfg := &StructuredConfig{}

	require.NoError(t, cfg.validateClient())

	assert.Equal(t, "http://localhost:5000", cfg.Client.ServerURL)
	assert.Equal(t, ":memory:", cfg.Client.CachePath)
	assert.Equal(t, 15*time.Second, cfg.Client.Timeout)
}
