package service

import (
	"context"
	"io"

	"github.com/personalab/persona-board/models"
)

// AuthService covers the credential and session-token lifecycle: account
// creation, credential verification, token issuance and parsing, and the
// user lookups the API surface needs.
type AuthService interface {
	SignUp(ctx context.Context, name, email, password string) (models.User, error)
	Login(ctx context.Context, email, password string) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
	UserByID(ctx context.Context, userID int64) (models.User, error)
	Users(ctx context.Context) ([]models.User, error)
}

// PersonaService exposes CRUD over persona cards. Lookups and updates of a
// missing id return a nil persona and no error: an absent row is a normal
// outcome, not a failure.
type PersonaService interface {
	List(ctx context.Context) ([]models.Persona, error)
	Get(ctx context.Context, id int64) (*models.Persona, error)
	Create(ctx context.Context, persona models.Persona) (models.Persona, error)
	Update(ctx context.Context, id int64, patch models.PersonaPatch) (*models.Persona, error)
	Delete(ctx context.Context, id int64) (bool, error)

	// DeleteAll is declared in the public API contract but intentionally
	// fails with ErrNotImplemented; callers must not rely on it.
	DeleteAll(ctx context.Context) error
}

// UploadService stores uploaded byte streams and composes their public
// retrieval URLs.
type UploadService interface {
	Store(ctx context.Context, r io.Reader, filename string) (models.StoredFile, error)
}
