package store

import (
	"context"
	"io"

	"github.com/personalab/persona-board/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mocks.go -package=mock

// UserRepository is the data-access contract for user accounts.
type UserRepository interface {
	// CreateUser persists a new user and returns the stored record with
	// server-assigned fields populated. Returns ErrEmailAlreadyExists when
	// the email is already taken.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail returns the user with the given email or
	// ErrUserNotFound.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)

	// FindUserByID returns the user with the given id or ErrUserNotFound.
	FindUserByID(ctx context.Context, userID int64) (models.User, error)

	// ListUsers returns all user accounts in natural store order.
	ListUsers(ctx context.Context) ([]models.User, error)
}

// PersonaRepository is the data-access contract for persona cards.
type PersonaRepository interface {
	// ListPersonas returns all personas in natural store order.
	ListPersonas(ctx context.Context) ([]models.Persona, error)

	// GetPersona returns the persona with the given id or ErrPersonaNotFound.
	GetPersona(ctx context.Context, id int64) (models.Persona, error)

	// CreatePersona inserts a new persona and returns the stored row with
	// server-assigned fields (ID, CreatedAt, LastUpdated) populated.
	CreatePersona(ctx context.Context, persona models.Persona) (models.Persona, error)

	// UpdatePersona applies a partial update: nil patch fields keep their
	// stored values, LastUpdated is always refreshed. Returns the updated
	// row, or ErrPersonaNotFound when no row matches id.
	UpdatePersona(ctx context.Context, id int64, patch models.PersonaPatch) (models.Persona, error)

	// DeletePersona removes the row with the given id. Deleting a missing
	// id is not an error.
	DeletePersona(ctx context.Context, id int64) error
}

// FileStorage persists uploaded byte streams and hands back the storage key
// they can later be retrieved under.
type FileStorage interface {
	// Save streams r into durable storage under a collision-free key
	// derived from filename. Returns ErrStreamWrite (wrapped) when the
	// destination write fails; a partially written file is removed
	// best-effort.
	Save(ctx context.Context, r io.Reader, filename string) (string, error)
}
