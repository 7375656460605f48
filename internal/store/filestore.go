package store

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/personalab/persona-board/internal/logger"
)

// fileStorage is the local-disk implementation of [FileStorage]. Files land
// in a single flat directory under a random key that embeds the sanitized
// original filename, so concurrent uploads of the same name never collide
// and a caller-supplied path can never escape the directory.
type fileStorage struct {
	dir    string
	logger *logger.Logger
}

// NewFileStorage constructs a [FileStorage] rooted at dir, creating the
// directory if it does not exist yet.
func NewFileStorage(dir string, logger *logger.Logger) (FileStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("error creating upload directory %q: %w", dir, err)
	}

	logger.Debug().Str("dir", dir).Msg("creating file storage")
	return &fileStorage{
		dir:    dir,
		logger: logger,
	}, nil
}

// Save streams r to disk and returns the storage key. The destination file
// is removed on any write failure so a failed upload leaves nothing behind.
// Cancelling ctx after the copy has started does not interrupt the write;
// the transport bounds the request lifetime.
func (f *fileStorage) Save(ctx context.Context, r io.Reader, filename string) (string, error) {
	log := logger.FromContext(ctx)

	key := storageKey(filename)
	path := filepath.Join(f.dir, key)

	dst, err := os.Create(path)
	if err != nil {
		log.Err(err).Str("func", "*fileStorage.Save").Str("key", key).Msg("error creating upload file")
		return "", fmt.Errorf("%w: %w", ErrStreamWrite, err)
	}

	if _, err := io.Copy(dst, r); err != nil {
		dst.Close()
		os.Remove(path)
		log.Err(err).Str("func", "*fileStorage.Save").Str("key", key).Msg("error writing upload stream")
		return "", fmt.Errorf("%w: %w", ErrStreamWrite, err)
	}

	if err := dst.Close(); err != nil {
		os.Remove(path)
		log.Err(err).Str("func", "*fileStorage.Save").Str("key", key).Msg("error closing upload file")
		return "", fmt.Errorf("%w: %w", ErrStreamWrite, err)
	}

	return key, nil
}

// storageKey derives a collision-free storage key from a caller-supplied
// filename. Path components are stripped, path separators removed, and a
// random prefix is added; the original name survives only as a suffix.
func storageKey(filename string) string {
	base := filepath.Base(strings.ReplaceAll(filename, "\\", "/"))
	base = strings.Map(func(r rune) rune {
		if r < 0x20 || r == '/' || r == '\\' {
			return -1
		}
		return r
	}, base)

	if base == "" || base == "." || base == ".." {
		base = "file"
	}

	return newUUID() + "__" + base
}

func newUUID() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
