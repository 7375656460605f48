package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/personalab/persona-board/internal/logger"
	"github.com/personalab/persona-board/models"
)

// psql builds queries with PostgreSQL-style $N placeholders. Every persona
// query goes through squirrel so that values are always bound as parameters,
// never interpolated.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var personaColumns = []string{
	"id", "user_id", "name", "quote", "description", "attitudes",
	"pain_points", "jobs_needs", "activities", "avatar_url",
	"created_at", "last_updated",
}

// personaRepository is the PostgreSQL-backed implementation of
// [PersonaRepository] over the "personas" table.
type personaRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewPersonaRepository constructs a [PersonaRepository] backed by the
// provided database connection and logger.
func NewPersonaRepository(db *DB, logger *logger.Logger) PersonaRepository {
	logger.Debug().Msg("creating persona repository")
	return &personaRepository{
		db:     db,
		logger: logger,
	}
}

// ListPersonas returns every persona ordered by id.
func (r *personaRepository) ListPersonas(ctx context.Context) ([]models.Persona, error) {
	log := logger.FromContext(ctx)

	query, args, err := psql.Select(personaColumns...).
		From("personas").
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*personaRepository.ListPersonas").Msg("error querying personas")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var personas []models.Persona
	for rows.Next() {
		var p models.Persona
		if err := scanPersona(rows, &p); err != nil {
			log.Err(err).Str("func", "*personaRepository.ListPersonas").Msg("error scanning persona row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		personas = append(personas, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return personas, nil
}

// GetPersona returns the persona with the given id, or [ErrPersonaNotFound]
// when no row matches.
func (r *personaRepository) GetPersona(ctx context.Context, id int64) (models.Persona, error) {
	log := logger.FromContext(ctx)

	query, args, err := psql.Select(personaColumns...).
		From("personas").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return models.Persona{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var p models.Persona
	if err := scanPersona(r.db.QueryRowContext(ctx, query, args...), &p); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Persona{}, ErrPersonaNotFound
		}

		log.Err(err).Str("func", "*personaRepository.GetPersona").Int64("id", id).Msg("error getting persona")
		return models.Persona{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return p, nil
}

// CreatePersona inserts a new persona row and returns it fully populated
// via a RETURNING clause. Optional fields arrive as nil pointers and are
// stored as NULL.
func (r *personaRepository) CreatePersona(ctx context.Context, persona models.Persona) (models.Persona, error) {
	log := logger.FromContext(ctx)

	query, args, err := psql.Insert("personas").
		Columns("user_id", "name", "quote", "description", "attitudes",
			"pain_points", "jobs_needs", "activities", "avatar_url").
		Values(persona.UserID, persona.Name, persona.Quote, persona.Description,
			persona.Attitudes, persona.PainPoints, persona.JobsNeeds,
			persona.Activities, persona.AvatarURL).
		Suffix("RETURNING " + joinColumns(personaColumns)).
		ToSql()
	if err != nil {
		return models.Persona{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var created models.Persona
	if err := scanPersona(r.db.QueryRowContext(ctx, query, args...), &created); err != nil {
		log.Err(err).Str("func", "*personaRepository.CreatePersona").Int64("user_id", persona.UserID).Msg("error creating persona")
		return models.Persona{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return created, nil
}

// UpdatePersona applies coalesce-with-existing-value semantics: every patch
// field is wrapped in COALESCE so a nil value keeps the stored one, and
// last_updated is always set to NOW(). The updated row is returned via
// RETURNING; a missing id yields [ErrPersonaNotFound].
func (r *personaRepository) UpdatePersona(ctx context.Context, id int64, patch models.PersonaPatch) (models.Persona, error) {
	log := logger.FromContext(ctx)

	query, args, err := psql.Update("personas").
		Set("name", sq.Expr("COALESCE(?, name)", patch.Name)).
		Set("quote", sq.Expr("COALESCE(?, quote)", patch.Quote)).
		Set("description", sq.Expr("COALESCE(?, description)", patch.Description)).
		Set("attitudes", sq.Expr("COALESCE(?, attitudes)", patch.Attitudes)).
		Set("pain_points", sq.Expr("COALESCE(?, pain_points)", patch.PainPoints)).
		Set("jobs_needs", sq.Expr("COALESCE(?, jobs_needs)", patch.JobsNeeds)).
		Set("activities", sq.Expr("COALESCE(?, activities)", patch.Activities)).
		Set("avatar_url", sq.Expr("COALESCE(?, avatar_url)", patch.AvatarURL)).
		Set("last_updated", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + joinColumns(personaColumns)).
		ToSql()
	if err != nil {
		return models.Persona{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var updated models.Persona
	if err := scanPersona(r.db.QueryRowContext(ctx, query, args...), &updated); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Persona{}, ErrPersonaNotFound
		}

		log.Err(err).Str("func", "*personaRepository.UpdatePersona").Int64("id", id).Msg("error updating persona")
		return models.Persona{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return updated, nil
}

// DeletePersona removes the persona with the given id. A delete that
// matches no row is a no-op, not an error.
func (r *personaRepository) DeletePersona(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	query, args, err := psql.Delete("personas").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*personaRepository.DeletePersona").Int64("id", id).Msg("error deleting persona")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		log.Debug().Int64("id", id).Msg("delete matched no persona")
	}

	return nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanPersona(row rowScanner, p *models.Persona) error {
	return row.Scan(
		&p.ID, &p.UserID, &p.Name, &p.Quote, &p.Description, &p.Attitudes,
		&p.PainPoints, &p.JobsNeeds, &p.Activities, &p.AvatarURL,
		&p.CreatedAt, &p.LastUpdated,
	)
}

func joinColumns(columns []string) string {
	return strings.Join(columns, ", ")
}
