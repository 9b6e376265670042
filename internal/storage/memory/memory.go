// Package memory is an in-process BlobStore used by tests and dry runs.
package memory

import (
	"context"
	"sync"

	"expenses/internal/storage"
)

// Ensure Store implements storage.BlobStore
var _ storage.BlobStore = (*Store)(nil)

type Store struct {
	mu     sync.Mutex
	data   []byte
	exists bool
	writes int

	// Injected failures, returned by the matching operation when non-nil.
	ExistsErr error
	ReadErr   error
	WriteErr  error
}

// New returns a store whose document does not exist yet.
func New() *Store {
	return &Store{}
}

// NewWithContent returns a store already holding content.
func NewWithContent(content []byte) *Store {
	return &Store{data: clone(content), exists: true}
}

func (s *Store) Exists(_ context.Context) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ExistsErr != nil {
		return false, s.ExistsErr
	}
	return s.exists, nil
}

func (s *Store) ReadAll(_ context.Context) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ReadErr != nil {
		return nil, s.ReadErr
	}
	return clone(s.data), nil
}

// WriteAll replaces the content. A failed write leaves the previous content.
func (s *Store) WriteAll(_ context.Context, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.WriteErr != nil {
		return s.WriteErr
	}
	s.data = clone(data)
	s.exists = true
	s.writes++
	return nil
}

// Content returns a copy of the stored document.
func (s *Store) Content() []byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	return clone(s.data)
}

// Writes returns how many successful writes the store has seen.
func (s *Store) Writes() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writes
}

func clone(b []byte) []byte {
	return append([]byte(nil), b...)
}
