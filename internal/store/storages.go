package store

import (
	"context"
	"fmt"

	"github.com/personalab/persona-board/internal/config"
	"github.com/personalab/persona-board/internal/logger"
)

// Storages bundles every persistence backend the services depend on.
type Storages struct {
	UserRepository    UserRepository
	PersonaRepository PersonaRepository
	FileStorage       FileStorage
}

// NewStorages connects to PostgreSQL, runs pending migrations, prepares the
// upload directory, and returns the assembled repositories.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("error connecting to postgres: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("error migrating database: %w", err)
	}

	files, err := NewFileStorage(cfg.Files.UploadDir, log)
	if err != nil {
		return nil, fmt.Errorf("error creating file storage: %w", err)
	}

	return &Storages{
		UserRepository:    NewUserRepository(db, log),
		PersonaRepository: NewPersonaRepository(db, log),
		FileStorage:       files,
	}, nil
}
