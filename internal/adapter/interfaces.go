// Package adapter provides transport-layer abstractions for communicating
// with the persona-board server.
//
// The primary abstraction is [ServerAdapter], which decouples the terminal
// client from the underlying protocol. The package ships a GraphQL-over-HTTP
// implementation ([NewHTTPServerAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes and
// GraphQL error messages so that callers can use [errors.Is] for
// transport-agnostic error handling (e.g. [ErrConflict] for a duplicate
// email, [ErrUnauthorized] for rejected credentials).
package adapter

import (
	"context"

	"github.com/personalab/persona-board/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the
// persona-board server. Implementations are responsible for serialisation,
// authentication header management, and mapping transport-level errors to
// the sentinel values defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token that will be attached to all
	// subsequent authenticated requests. It is called automatically after
	// a successful SignUp or Login.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or
	// an empty string if no token has been set yet.
	Token() string

	// SignUp registers a new account and returns the issued session token
	// together with the created user.
	SignUp(ctx context.Context, name, email, password string) (models.AuthPayload, error)

	// Login authenticates with the server. On success the returned token
	// is also stored via SetToken.
	Login(ctx context.Context, email, password string) (models.AuthPayload, error)

	// LoggedInUser returns the account the stored token belongs to.
	// Returns ErrUnauthorized (wrapped) when no valid token is stored.
	LoggedInUser(ctx context.Context) (models.User, error)

	// Personas fetches the full persona catalogue.
	Personas(ctx context.Context) ([]models.Persona, error)

	// Persona fetches a single persona by id. Returns (nil, nil) when the
	// id is unknown to the server.
	Persona(ctx context.Context, id int64) (*models.Persona, error)

	// AddPersona creates a new persona card and returns the stored row.
	AddPersona(ctx context.Context, persona models.Persona) (models.Persona, error)

	// UpdatePersona applies a partial update. Returns (nil, nil) when the
	// id is unknown to the server.
	UpdatePersona(ctx context.Context, id int64, patch models.PersonaPatch) (*models.Persona, error)

	// DeletePersona removes a persona by id, reporting whether a row was
	// actually deleted.
	DeletePersona(ctx context.Context, id int64) (bool, error)
}
