package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"ainews-journalist/internal/model"
)

// FileStore writes the document as JSON to a fixed path.
type FileStore struct {
	Path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{Path: path}
}

// Save replaces the file atomically: the JSON goes to a temp file in the same
// directory which is then renamed over Path.
func (s *FileStore) Save(_ context.Context, doc model.NewsDocument) error {
	dir := filepath.Dir(s.Path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("storage: create dir: %w", err)
	}
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(s.Path)+".*")
	if err != nil {
		return fmt.Errorf("storage: create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := model.Encode(tmp, doc); err != nil {
		tmp.Close()
		return fmt.Errorf("storage: encode document: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("storage: close temp file: %w", err)
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return fmt.Errorf("storage: chmod: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.Path); err != nil {
		return fmt.Errorf("storage: replace %s: %w", s.Path, err)
	}
	return nil
}

func (s *FileStore) LatestDocument(context.Context) (model.NewsDocument, error) {
	f, err := os.Open(s.Path)
	if errors.Is(err, os.ErrNotExist) {
		return model.NewsDocument{}, ErrNotFound
	}
	if err != nil {
		return model.NewsDocument{}, err
	}
	defer f.Close()
	doc, err := model.Decode(f)
	if err != nil {
		return model.NewsDocument{}, fmt.Errorf("storage: decode %s: %w", s.Path, err)
	}
	return doc, nil
}
