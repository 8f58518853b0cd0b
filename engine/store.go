package engine

import (
	"sort"
	"sync"

	"github.com/lixenwraith/quad-snap/core"
)

// Store is a generic container for a specific component type T
// Entities are kept sorted so iteration order is deterministic across runs
type Store[T any] struct {
	mu         sync.RWMutex
	components map[core.Entity]T
	entities   []core.Entity
}

// NewStore creates a new component store for type T
func NewStore[T any]() *Store[T] {
	return &Store[T]{
		components: make(map[core.Entity]T),
		entities:   make([]core.Entity, 0, 64),
	}
}

// Set inserts or updates a component for an entity
func (s *Store[T]) Set(e core.Entity, val T) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.components[e]; !exists {
		i := sort.Search(len(s.entities), func(i int) bool { return s.entities[i] >= e })
		s.entities = append(s.entities, 0)
		copy(s.entities[i+1:], s.entities[i:])
		s.entities[i] = e
	}
	s.components[e] = val
}

// Get retrieves a copy of the component for an entity
func (s *Store[T]) Get(e core.Entity) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	val, ok := s.components[e]
	return val, ok
}

// Update applies fn to the entity's component in place; returns false if absent
func (s *Store[T]) Update(e core.Entity, fn func(*T)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	val, ok := s.components[e]
	if !ok {
		return false
	}
	fn(&val)
	s.components[e] = val
	return true
}

// Remove deletes the component from an entity
func (s *Store[T]) Remove(e core.Entity) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.components[e]; !exists {
		return
	}
	delete(s.components, e)
	i := sort.Search(len(s.entities), func(i int) bool { return s.entities[i] >= e })
	if i < len(s.entities) && s.entities[i] == e {
		s.entities = append(s.entities[:i], s.entities[i+1:]...)
	}
}

// Has checks if entity has this component
func (s *Store[T]) Has(e core.Entity) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.components[e]
	return ok
}

// All returns all entities with this component in ascending id order
func (s *Store[T]) All() []core.Entity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]core.Entity, len(s.entities))
	copy(result, s.entities)
	return result
}

// Len returns number of entities with this component
func (s *Store[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entities)
}

// Clear removes all components from this store
func (s *Store[T]) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.components = make(map[core.Entity]T)
	s.entities = s.entities[:0]
}
