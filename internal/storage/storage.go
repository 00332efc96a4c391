// Package storage persists the generated NewsDocument.
package storage

import (
	"context"
	"errors"
	"sync"

	"ainews-journalist/internal/model"
)

// ErrNotFound is returned when no document has been stored yet.
var ErrNotFound = errors.New("storage: no document stored")

// Sink receives a finished document. Save overwrites whatever was there.
type Sink interface {
	Save(ctx context.Context, doc model.NewsDocument) error
}

// Reader returns the most recently saved document.
type Reader interface {
	LatestDocument(ctx context.Context) (model.NewsDocument, error)
}

// MemoryStore keeps the latest document in process for the HTTP API.
type MemoryStore struct {
	mu  sync.RWMutex
	doc *model.NewsDocument
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) Save(_ context.Context, doc model.NewsDocument) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.doc = &doc
	return nil
}

func (m *MemoryStore) LatestDocument(context.Context) (model.NewsDocument, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.doc == nil {
		return model.NewsDocument{}, ErrNotFound
	}
	return *m.doc, nil
}
