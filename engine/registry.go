package engine

import (
	"monopoly/game"
	"sort"
	"sync"

	"github.com/google/uuid"
)

// Registry keeps independent games addressable by ID. It is safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	games   map[uuid.UUID]*Engine
	options []Option
}

// NewRegistry returns an empty registry. options apply to every game it creates.
func NewRegistry(options ...Option) *Registry {
	return &Registry{
		games:   make(map[uuid.UUID]*Engine),
		options: options,
	}
}

func (r *Registry) Create(names []string, deciders []game.Decider, options ...Option) (*Engine, error) {
	opts := append(append([]Option{}, r.options...), options...)
	e, err := New(names, deciders, opts...)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.games[e.ID] = e
	return e, nil
}

func (r *Registry) Get(id uuid.UUID) (*Engine, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.games[id]
	if !ok {
		return nil, game.ErrGameNotFound
	}
	return e, nil
}

// Advance plays one turn of the game with the given ID.
func (r *Registry) Advance(id uuid.UUID) (game.TurnOutcome, error) {
	e, err := r.Get(id)
	if err != nil {
		return game.TurnOutcome{}, err
	}
	return e.AdvanceTurn()
}

func (r *Registry) Remove(id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.games[id]; !ok {
		return game.ErrGameNotFound
	}
	delete(r.games, id)
	return nil
}

// List returns the IDs of every registered game in a stable order.
func (r *Registry) List() []uuid.UUID {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := make([]uuid.UUID, 0, len(r.games))
	for id := range r.games {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		return ids[i].String() < ids[j].String()
	})
	return ids
}
