// Package storage provides the movie cache stores.
//
// The cache holds the last complete normalized result set and is reused
// opportunistically across requests. Every store overwrites the full set on
// Save (last-write-wins, no partial invalidation).
package storage

import (
	"context"
	"sync"

	"github.com/lueurxax/movie-night-bot/internal/core/domain"
	"github.com/lueurxax/movie-night-bot/internal/core/errors"
)

// MovieCache is the injected cache store abstraction. Load returns
// errors.ErrCacheNotFound when no set has been saved yet and
// errors.ErrMalformedCache when the persisted set is missing required
// columns; both are treated as a cache miss by the caller.
type MovieCache interface {
	Load(ctx context.Context) ([]domain.Movie, error)
	Save(ctx context.Context, movies []domain.Movie) error
}

// MemoryStore is an in-memory MovieCache, used in tests and as a filesystem-free
// stand-in.
type MemoryStore struct {
	mu     sync.RWMutex
	movies []domain.Movie
	saved  bool
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Load returns the last saved set.
func (s *MemoryStore) Load(_ context.Context) ([]domain.Movie, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.saved {
		return nil, errors.ErrCacheNotFound
	}

	out := make([]domain.Movie, len(s.movies))
	copy(out, s.movies)

	return out, nil
}

// Save overwrites the stored set.
func (s *MemoryStore) Save(_ context.Context, movies []domain.Movie) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.movies = make([]domain.Movie, len(movies))
	copy(s.movies, movies)
	s.saved = true

	return nil
}
