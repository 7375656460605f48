package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/personalab/persona-board/internal/logger"
	"github.com/personalab/persona-board/internal/mock"
	"github.com/personalab/persona-board/internal/store"
	"github.com/personalab/persona-board/models"
)

func newTestPersonaService(t *testing.T) (PersonaService, *mock.MockPersonaRepository) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockPersonaRepository(ctrl)
	return NewPersonaService(repo, logger.Nop()), repo
}

func TestPersonaGet_AbsentIsNotAnError(t *testing.T) {
	svc, repo := newTestPersonaService(t)
	ctx := context.Background()

	repo.EXPECT().
		GetPersona(gomock.Any(), int64(99)).
		Return(models.Persona{}, store.ErrPersonaNotFound)

	persona, err := svc.Get(ctx, 99)
	require.NoError(t, err)
	assert.Nil(t, persona)
}

func TestPersonaGet_Success(t *testing.T) {
	svc, repo := newTestPersonaService(t)
	ctx := context.Background()

	repo.EXPECT().
		GetPersona(gomock.Any(), int64(1)).
		Return(models.Persona{ID: 1, UserID: 1, Name: "Shopper"}, nil)

	persona, err := svc.Get(ctx, 1)
	require.NoError(t, err)
	require.NotNil(t, persona)
	assert.Equal(t, "Shopper", persona.Name)
}

func TestPersonaCreate_RequiresUserIDAndName(t *testing.T) {
	svc, _ := newTestPersonaService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, models.Persona{Name: "Shopper"})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	_, err = svc.Create(ctx, models.Persona{UserID: 1})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestPersonaCreate_Success(t *testing.T) {
	svc, repo := newTestPersonaService(t)
	ctx := context.Background()

	persona := models.Persona{UserID: 1, Name: "Shopper"}
	repo.EXPECT().
		CreatePersona(gomock.Any(), persona).
		Return(models.Persona{ID: 1, UserID: 1, Name: "Shopper"}, nil)

	created, err := svc.Create(ctx, persona)
	require.NoError(t, err)
	assert.EqualValues(t, 1, created.ID)
}

func TestPersonaUpdate_AbsentIsNotAnError(t *testing.T) {
	svc, repo := newTestPersonaService(t)
	ctx := context.Background()

	repo.EXPECT().
		UpdatePersona(gomock.Any(), int64(404), gomock.Any()).
		Return(models.Persona{}, store.ErrPersonaNotFound)

	updated, err := svc.Update(ctx, 404, models.PersonaPatch{})
	require.NoError(t, err)
	assert.Nil(t, updated)
}

func TestPersonaUpdate_Success(t *testing.T) {
	svc, repo := newTestPersonaService(t)
	ctx := context.Background()

	quote := "Great deals!"
	patch := models.PersonaPatch{Quote: &quote}

	repo.EXPECT().
		UpdatePersona(gomock.Any(), int64(1), patch).
		Return(models.Persona{ID: 1, UserID: 1, Name: "Shopper", Quote: &quote}, nil)

	updated, err := svc.Update(ctx, 1, patch)
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, "Great deals!", *updated.Quote)
}

func TestPersonaDelete_Success(t *testing.T) {
	svc, repo := newTestPersonaService(t)
	ctx := context.Background()

	repo.EXPECT().
		DeletePersona(gomock.Any(), int64(1)).
		Return(nil)

	deleted, err := svc.Delete(ctx, 1)
	require.NoError(t, err)
	assert.True(t, deleted)
}

func TestPersonaDelete_RepositoryError(t *testing.T) {
	svc, repo := newTestPersonaService(t)
	ctx := context.Background()

	repo.EXPECT().
		DeletePersona(gomock.Any(), int64(1)).
		Return(errors.New("db down"))

	deleted, err := svc.Delete(ctx, 1)
	assert.Error(t, err)
	assert.False(t, deleted)
}

func TestPersonaDeleteAll_NotImplemented(t *testing.T) {
	svc, _ := newTestPersonaService(t)

	err := svc.DeleteAll(context.Background())
	assert.ErrorIs(t, err, ErrNotImplemented)
}

func TestPersonaList_WrapsRepositoryError(t *testing.T) {
	svc, repo := newTestPersonaService(t)
	ctx := context.Background()

	repo.EXPECT().
		ListPersonas(gomock.Any()).
		Return(nil, errors.New("db down"))

	_, err := svc.List(ctx)
	assert.Error(t, err)
}
