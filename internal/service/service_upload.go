package service

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/personalab/persona-board/internal/logger"
	"github.com/personalab/persona-board/internal/store"
	"github.com/personalab/persona-board/models"
)

// uploadService streams uploads into a FileStorage and composes the public
// URL they will be served back from under the /uploads path prefix.
type uploadService struct {
	fileStorage   store.FileStorage
	publicBaseURL string
	logger        *logger.Logger
}

// NewUploadService constructs an UploadService writing through the given
// FileStorage. publicBaseURL is the externally reachable server base URL.
func NewUploadService(fileStorage store.FileStorage, publicBaseURL string, logger *logger.Logger) UploadService {
	return &uploadService{
		fileStorage:   fileStorage,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
		logger:        logger,
	}
}

// Store saves the incoming stream and returns the storage key together with
// the retrieval URL. Success is signalled only after the destination
// reports completion.
func (u *uploadService) Store(ctx context.Context, r io.Reader, filename string) (models.StoredFile, error) {
	log := logger.FromContext(ctx)

	if filename == "" {
		return models.StoredFile{}, ErrInvalidDataProvided
	}

	key, err := u.fileStorage.Save(ctx, r, filename)
	if err != nil {
		log.Err(err).Str("filename", filename).Msg("upload write failed")
		return models.StoredFile{}, fmt.Errorf("upload write failed: %w", err)
	}

	return models.StoredFile{
		Key: key,
		URL: u.publicBaseURL + "/uploads/" + url.PathEscape(key),
	}, nil
}
