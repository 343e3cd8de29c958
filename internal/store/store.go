// Package store holds games created through the HTTP API in an
// in-memory, concurrency-safe registry keyed by a generated id. This is
// the one place true concurrency is ambient: multiple HTTP requests may
// read and replace a game concurrently, distinct from the single-threaded
// algorithm core itself (§5).
package store

import (
	"sync"

	"github.com/google/uuid"

	"github.com/HelmerNylen/mkbsc/internal/kerrors"
	"github.com/HelmerNylen/mkbsc/internal/kgraph"
)

// Store is a concurrency-safe registry of games keyed by id.
type Store struct {
	mu    sync.RWMutex
	games map[string]*kgraph.Game
}

// New returns an empty Store.
func New() *Store {
	return &Store{games: make(map[string]*kgraph.Game)}
}

// Create registers g under a new id and returns that id.
func (s *Store) Create(g *kgraph.Game) string {
	id := uuid.NewString()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.games[id] = g
	return id
}

// Get returns the game registered under id.
func (s *Store) Get(id string) (*kgraph.Game, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	g, ok := s.games[id]
	if !ok {
		return nil, &kerrors.LookupError{What: "game", Key: id}
	}
	return g, nil
}

// Replace overwrites the game registered under id, e.g. after a KBSC
// iteration. It fails if id was never created.
func (s *Store) Replace(id string, g *kgraph.Game) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.games[id]; !ok {
		return &kerrors.LookupError{What: "game", Key: id}
	}
	s.games[id] = g
	return nil
}
