package session

import (
	"sync"

	"github.com/google/uuid"
)

// Registry maps session ids to their stores. Each store belongs to exactly
// one session and is created empty on first use.
type Registry struct {
	mu     sync.Mutex
	stores map[string]*Store
}

func NewRegistry() *Registry {
	return &Registry{stores: make(map[string]*Store)}
}

// NewSession allocates a fresh session id and its empty store.
func (r *Registry) NewSession() (string, *Store) {
	id := uuid.New().String()
	return id, r.Get(id)
}

// Get returns the store for the given session id, creating it if absent.
func (r *Registry) Get(id string) *Store {
	r.mu.Lock()
	defer r.mu.Unlock()
	store, ok := r.stores[id]
	if !ok {
		store = NewStore()
		r.stores[id] = store
	}
	return store
}
