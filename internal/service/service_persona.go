package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/personalab/persona-board/internal/logger"
	"github.com/personalab/persona-board/internal/store"
	"github.com/personalab/persona-board/models"
)

// personaService is the concrete implementation of PersonaService. Every
// operation is a single round-trip to the PersonaRepository; there are no
// transactions spanning multiple statements.
type personaService struct {
	personaRepository store.PersonaRepository
	logger            *logger.Logger
}

// NewPersonaService constructs a PersonaService over the given repository.
func NewPersonaService(personaRepository store.PersonaRepository, logger *logger.Logger) PersonaService {
	return &personaService{
		personaRepository: personaRepository,
		logger:            logger,
	}
}

// List returns all personas.
func (p *personaService) List(ctx context.Context) ([]models.Persona, error) {
	personas, err := p.personaRepository.ListPersonas(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing personas failed: %w", err)
	}

	return personas, nil
}

// Get returns the persona with the given id, or nil when no persona
// matches. An absent persona is not an error.
func (p *personaService) Get(ctx context.Context, id int64) (*models.Persona, error) {
	persona, err := p.personaRepository.GetPersona(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrPersonaNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("persona lookup failed: %w", err)
	}

	return &persona, nil
}

// Create inserts a new persona. UserID and Name are mandatory; every other
// field is optional and stored as NULL when absent. The creating user is
// not verified to exist.
func (p *personaService) Create(ctx context.Context, persona models.Persona) (models.Persona, error) {
	log := logger.FromContext(ctx)

	if persona.UserID == 0 || persona.Name == "" {
		log.Error().Int64("user_id", persona.UserID).Msg("invalid persona data provided")
		return models.Persona{}, ErrInvalidDataProvided
	}

	created, err := p.personaRepository.CreatePersona(ctx, persona)
	if err != nil {
		log.Err(err).Int64("user_id", persona.UserID).Msg("persona creation ended with error")
		return models.Persona{}, fmt.Errorf("persona creation ended with error: %w", err)
	}

	return created, nil
}

// Update applies a partial update: nil patch fields keep their stored
// values, LastUpdated is always refreshed. Updating a missing id is a
// silent no-op that returns nil.
func (p *personaService) Update(ctx context.Context, id int64, patch models.PersonaPatch) (*models.Persona, error) {
	updated, err := p.personaRepository.UpdatePersona(ctx, id, patch)
	if err != nil {
		if errors.Is(err, store.ErrPersonaNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("persona update failed: %w", err)
	}

	return &updated, nil
}

// Delete removes the persona with the given id. The success flag is true
// whenever the statement executed, whether or not a row actually existed.
func (p *personaService) Delete(ctx context.Context, id int64) (bool, error) {
	if err := p.personaRepository.DeletePersona(ctx, id); err != nil {
		return false, fmt.Errorf("persona deletion failed: %w", err)
	}

	return true, nil
}

// DeleteAll always fails with ErrNotImplemented. The operation is part of
// the declared API contract but has never had a backing implementation, so
// an explicit failure is safer than silently accepting the call.
func (p *personaService) DeleteAll(ctx context.Context) error {
	return ErrNotImplemented
}
