package store

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/personalab/persona-board/internal/logger"
)

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("stream broke")
}

func newTestFileStorage(t *testing.T) (FileStorage, string) {
	t.Helper()
	dir := t.TempDir()
	fs, err := NewFileStorage(dir, logger.Nop())
	if err != nil {
		t.Fatalf("failed to create file storage: %v", err)
	}
	return fs, dir
}

func TestSave_WritesContent(t *testing.T) {
	fs, dir := newTestFileStorage(t)
	ctx := context.Background()

	key, err := fs.Save(ctx, strings.NewReader("avatar bytes"), "avatar.png")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasSuffix(key, "__avatar.png") {
		t.Errorf("expected key to keep the original name as suffix, got %q", key)
	}

	content, err := os.ReadFile(filepath.Join(dir, key))
	if err != nil {
		t.Fatalf("stored file is missing: %v", err)
	}
	if string(content) != "avatar bytes" {
		t.Errorf("stored content mismatch: %q", content)
	}
}

func TestSave_SameNameNeverCollides(t *testing.T) {
	fs, _ := newTestFileStorage(t)
	ctx := context.Background()

	first, err := fs.Save(ctx, strings.NewReader("one"), "avatar.png")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := fs.Save(ctx, strings.NewReader("two"), "avatar.png")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first == second {
		t.Errorf("expected distinct keys for repeated filename, got %q twice", first)
	}
}

func TestSave_StripsPathComponents(t *testing.T) {
	fs, dir := newTestFileStorage(t)
	ctx := context.Background()

	key, err := fs.Save(ctx, strings.NewReader("x"), "../../etc/passwd")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(key, "/") || strings.Contains(key, "..") {
		t.Errorf("expected sanitized key, got %q", key)
	}
	if !strings.HasSuffix(key, "__passwd") {
		t.Errorf("expected base name suffix, got %q", key)
	}

	// nothing may land outside the upload directory
	if _, err := os.Stat(filepath.Join(dir, key)); err != nil {
		t.Fatalf("expected file inside upload dir: %v", err)
	}
}

func TestSave_WindowsSeparatorsAndEmptyName(t *testing.T) {
	fs, _ := newTestFileStorage(t)
	ctx := context.Background()

	key, err := fs.Save(ctx, strings.NewReader("x"), `C:\temp\photo.jpg`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasSuffix(key, "__photo.jpg") {
		t.Errorf("expected backslash path stripped, got %q", key)
	}

	key, err = fs.Save(ctx, strings.NewReader("x"), "..")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasSuffix(key, "__file") {
		t.Errorf("expected fallback name for unusable filename, got %q", key)
	}
}

func TestSave_FailedStreamLeavesNothingBehind(t *testing.T) {
	fs, dir := newTestFileStorage(t)
	ctx := context.Background()

	_, err := fs.Save(ctx, failingReader{}, "avatar.png")
	if !errors.Is(err, ErrStreamWrite) {
		t.Fatalf("expected ErrStreamWrite, got %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("reading upload dir: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("expected no partial files, found %d", len(entries))
	}
}
