package server

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/game"
	"github.com/lgbarn/chess-rules-go/internal/player"
)

// entry is a stored game. mu serialises every use of the session.
type entry struct {
	mu       sync.Mutex
	id       string
	session  *game.Session
	computer *player.Random
}

// store holds the games served by the API, keyed by uuid.
type store struct {
	cfg   *config.Config
	mu    sync.RWMutex
	games map[string]*entry
}

// newStore creates an empty store. cfg supplies the game limit and the
// computer player's seed.
func newStore(cfg *config.Config) *store {
	return &store{
		cfg:   cfg,
		games: make(map[string]*entry),
	}
}

// create starts a new game and returns it.
func (s *store) create() (*entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if limit := s.cfg.Server.MaxGames; limit > 0 && len(s.games) >= limit {
		return nil, fmt.Errorf("%d games in progress: %w", len(s.games), errGameLimit)
	}

	e := &entry{
		id:       uuid.New().String(),
		session:  game.NewSession(s.cfg),
		computer: player.NewRandom("", s.cfg.Players.Seed),
	}
	s.games[e.id] = e
	s.cfg.Logf(2, "created game %s", e.id)
	return e, nil
}

// get returns the game with the given id. Ids that are not uuids are
// never found.
func (s *store) get(id string) (*entry, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, errors.ErrGameNotFound
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.games[id]
	if !ok {
		return nil, errors.ErrGameNotFound
	}
	return e, nil
}

// remove drops a game.
func (s *store) remove(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.games[id]; !ok {
		return errors.ErrGameNotFound
	}
	delete(s.games, id)
	s.cfg.Logf(2, "deleted game %s", id)
	return nil
}

// count returns the number of stored games.
func (s *store) count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.games)
}
