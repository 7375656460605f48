package store

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
	"github.com/personalab/persona-board/internal/logger"
	"github.com/personalab/persona-board/models"
)

const (
	createCacheTable = `CREATE TABLE IF NOT EXISTS persona_cache (
		id           INTEGER PRIMARY KEY,
		user_id      INTEGER NOT NULL,
		name         TEXT    NOT NULL,
		quote        TEXT,
		description  TEXT,
		attitudes    TEXT,
		pain_points  TEXT,
		jobs_needs   TEXT,
		activities   TEXT,
		avatar_url   TEXT,
		created_at   TIMESTAMP,
		last_updated TIMESTAMP
	);`

	clearCache = `DELETE FROM persona_cache;`

	insertCachedPersona = `INSERT INTO persona_cache (
		id, user_id, name, quote, description, attitudes,
		pain_points, jobs_needs, activities, avatar_url,
		created_at, last_updated
	) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?);`

	listCachedPersonas = `SELECT id, user_id, name, quote, description, attitudes,
		pain_points, jobs_needs, activities, avatar_url, created_at, last_updated
	FROM persona_cache
	ORDER BY id;`
)

// PersonaCache is the terminal client's local SQLite snapshot of the server
// persona list. It lets the client render the last known catalogue when the
// server is unreachable. The cache is a plain replica, never a write buffer:
// all mutations go to the server first.
type PersonaCache struct {
	db     *sql.DB
	logger *logger.Logger
}

// NewPersonaCache opens (or creates) the SQLite cache at path. Use
// ":memory:" for a throwaway in-memory cache.
func NewPersonaCache(path string, log *logger.Logger) (*PersonaCache, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("error opening persona cache: %w", err)
	}

	if _, err := db.Exec(createCacheTable); err != nil {
		db.Close()
		return nil, fmt.Errorf("error creating persona cache table: %w", err)
	}

	log.Debug().Str("path", path).Msg("persona cache opened")
	return &PersonaCache{db: db, logger: log}, nil
}

// Replace atomically swaps the cached snapshot for the given persona list.
func (c *PersonaCache) Replace(ctx context.Context, personas []models.Persona) error {
	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("error beginning cache transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, clearCache); err != nil {
		return fmt.Errorf("error clearing persona cache: %w", err)
	}

	for _, p := range personas {
		_, err := tx.ExecContext(ctx, insertCachedPersona,
			p.ID, p.UserID, p.Name, p.Quote, p.Description, p.Attitudes,
			p.PainPoints, p.JobsNeeds, p.Activities, p.AvatarURL,
			p.CreatedAt, p.LastUpdated,
		)
		if err != nil {
			return fmt.Errorf("error caching persona %d: %w", p.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("error committing persona cache: %w", err)
	}

	return nil
}

// List returns the cached persona snapshot in id order.
func (c *PersonaCache) List(ctx context.Context) ([]models.Persona, error) {
	rows, err := c.db.QueryContext(ctx, listCachedPersonas)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var personas []models.Persona
	for rows.Next() {
		var p models.Persona
		if err := scanPersona(rows, &p); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		personas = append(personas, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return personas, nil
}

// Close releases the underlying database handle.
func (c *PersonaCache) Close() error {
	return c.db.Close()
}
