package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/personalab/persona-board/internal/logger"
	"github.com/personalab/persona-board/internal/mock"
	"github.com/personalab/persona-board/internal/store"
)

func newTestUploadService(t *testing.T, baseURL string) (UploadService, *mock.MockFileStorage) {
	ctrl := gomock.NewController(t)
	files := mock.NewMockFileStorage(ctrl)
	return NewUploadService(files, baseURL, logger.Nop()), files
}

func TestUploadStore_ComposesPublicURL(t *testing.T) {
	svc, files := newTestUploadService(t, "http://localhost:5000/")

	files.EXPECT().
		Save(gomock.Any(), gomock.Any(), "avatar.png").
		Return("0190abc__avatar.png", nil)

	stored, err := svc.Store(context.Background(), strings.NewReader("bytes"), "avatar.png")
	require.NoError(t, err)
	assert.Equal(t, "0190abc__avatar.png", stored.Key)
	assert.Equal(t, "http://localhost:5000/uploads/0190abc__avatar.png", stored.URL)
}

func TestUploadStore_EscapesKeyInURL(t *testing.T) {
	svc, files := newTestUploadService(t, "http://localhost:5000")

	files.EXPECT().
		Save(gomock.Any(), gomock.Any(), "my avatar.png").
		Return("0190abc__my avatar.png", nil)

	stored, err := svc.Store(context.Background(), strings.NewReader("bytes"), "my avatar.png")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:5000/uploads/0190abc__my%20avatar.png", stored.URL)
}

func TestUploadStore_RequiresFilename(t *testing.T) {
	svc, _ := newTestUploadService(t, "http://localhost:5000")

	_, err := svc.Store(context.Background(), strings.NewReader("bytes"), "")
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestUploadStore_PropagatesWriteFailure(t *testing.T) {
	svc, files := newTestUploadService(t, "http://localhost:5000")

	files.EXPECT().
		Save(gomock.Any(), gomock.Any(), "avatar.png").
		Return("", store.ErrStreamWrite)

	_, err := svc.Store(context.Background(), strings.NewReader("bytes"), "avatar.png")
	assert.ErrorIs(t, err, store.ErrStreamWrite)
}
