// Package migrations embeds the persona board SQL schema (users and
// personas tables) and applies it with goose at server startup.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed *.sql
var embedMigrations embed.FS

// Migrate brings the schema up to the latest embedded version. The handle
// must be open against PostgreSQL through the pgx driver.
func Migrate(db *sql.DB) error {
	if db == nil {
		return errors.New("persona schema migration: db is nil")
	}

	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect("pgx"); err != nil {
		return fmt.Errorf("persona schema migration: setting dialect: %w", err)
	}

	if err := goose.Up(db, "."); err != nil {
		return fmt.Errorf("persona schema migration: %w", err)
	}

	return nil
}
