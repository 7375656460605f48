package tui

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/personalab/persona-board/internal/logger"
	"github.com/personalab/persona-board/internal/mock"
	"github.com/personalab/persona-board/internal/store"
	"github.com/personalab/persona-board/models"
)

func newTestCache(t *testing.T) *store.PersonaCache {
	t.Helper()
	cache, err := store.NewPersonaCache(":memory:", logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = cache.Close() })
	return cache
}

func strPtr(s string) *string { return &s }

func TestLoadPersonas_RefreshesCacheOnSuccess(t *testing.T) {
	ctrl := gomock.NewController(t)
	serverAdapter := mock.NewMockServerAdapter(ctrl)
	cache := newTestCache(t)
	ctx := context.Background()

	fromServer := []models.Persona{
		{ID: 1, UserID: 1, Name: "Shopper", Quote: strPtr("Great deals!")},
		{ID: 2, UserID: 1, Name: "Browser"},
	}
	serverAdapter.EXPECT().Personas(gomock.Any()).Return(fromServer, nil)

	m := newListModel(ctx, serverAdapter, cache, logger.Nop())
	msg := m.cmdLoadPersonas()()

	loaded, ok := msg.(personasLoadedMsg)
	require.True(t, ok, "expected personasLoadedMsg, got %T", msg)
	assert.NoError(t, loaded.err)
	assert.False(t, loaded.fromCache)
	require.Len(t, loaded.personas, 2)

	// a successful fetch replaces the local snapshot
	cached, err := cache.List(ctx)
	require.NoError(t, err)
	require.Len(t, cached, 2)
	assert.Equal(t, "Shopper", cached[0].Name)
	require.NotNil(t, cached[0].Quote)
	assert.Equal(t, "Great deals!", *cached[0].Quote)
}

func TestLoadPersonas_FallsBackToCacheWhenServerDown(t *testing.T) {
	ctrl := gomock.NewController(t)
	serverAdapter := mock.NewMockServerAdapter(ctrl)
	cache := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, cache.Replace(ctx, []models.Persona{
		{ID: 7, UserID: 1, Name: "Cached shopper"},
	}))

	serverAdapter.EXPECT().Personas(gomock.Any()).Return(nil, assert.AnError)

	m := newListModel(ctx, serverAdapter, cache, logger.Nop())
	msg := m.cmdLoadPersonas()()

	loaded, ok := msg.(personasLoadedMsg)
	require.True(t, ok, "expected personasLoadedMsg, got %T", msg)
	assert.True(t, loaded.fromCache)
	assert.Error(t, loaded.err)
	require.Len(t, loaded.personas, 1)
	assert.Equal(t, "Cached shopper", loaded.personas[0].Name)
}

func TestLoadPersonas_EmptyCacheReportsError(t *testing.T) {
	ctrl := gomock.NewController(t)
	serverAdapter := mock.NewMockServerAdapter(ctrl)
	cache := newTestCache(t)

	serverAdapter.EXPECT().Personas(gomock.Any()).Return(nil, assert.AnError)

	m := newListModel(context.Background(), serverAdapter, cache, logger.Nop())
	msg := m.cmdLoadPersonas()()

	loaded, ok := msg.(personasLoadedMsg)
	require.True(t, ok, "expected personasLoadedMsg, got %T", msg)
	assert.Error(t, loaded.err)
	assert.False(t, loaded.fromCache)
	assert.Empty(t, loaded.personas)
}
