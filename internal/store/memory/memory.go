package memory

import (
	"context"
	"sync"

	"github.com/MrSnakeDoc/slatrack/internal/domain"
)

// Store is an in-memory implementation of the registry's Store interface.
// It backs tests and the redis-less dev mode; the mutex gives the same
// all-or-nothing write semantics the redis store gets from transactions.
type Store struct {
	mu       sync.RWMutex
	services map[string]*domain.Service // ID -> Service
	names    map[string]string          // Name -> ID
	order    []string                   // insertion order of IDs
}

// NewStore creates an empty in-memory store.
func NewStore() *Store {
	return &Store{
		services: make(map[string]*domain.Service),
		names:    make(map[string]string),
	}
}

func (s *Store) Create(_ context.Context, svc *domain.Service) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, taken := s.names[svc.Name]; taken {
		return domain.ErrDuplicateName
	}

	s.services[svc.ID] = svc.Clone()
	s.names[svc.Name] = svc.ID
	s.order = append(s.order, svc.ID)
	return nil
}

func (s *Store) Get(_ context.Context, id string) (*domain.Service, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	svc, ok := s.services[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return svc.Clone(), nil
}

func (s *Store) List(_ context.Context) ([]*domain.Service, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	services := make([]*domain.Service, 0, len(s.order))
	for _, id := range s.order {
		if svc, ok := s.services[id]; ok {
			services = append(services, svc.Clone())
		}
	}
	return services, nil
}

func (s *Store) Update(_ context.Context, id string, mutate func(svc *domain.Service) error) (*domain.Service, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.services[id]
	if !ok {
		return nil, domain.ErrNotFound
	}

	// Mutate a clone so a failed mutation leaves the stored document intact.
	next := current.Clone()
	if err := mutate(next); err != nil {
		return nil, err
	}

	if next.Name != current.Name {
		if owner, taken := s.names[next.Name]; taken && owner != id {
			return nil, domain.ErrDuplicateName
		}
		delete(s.names, current.Name)
		s.names[next.Name] = id
	}

	s.services[id] = next
	return next.Clone(), nil
}

func (s *Store) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	svc, ok := s.services[id]
	if !ok {
		return domain.ErrNotFound
	}

	delete(s.services, id)
	delete(s.names, svc.Name)
	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

func (s *Store) Ping(_ context.Context) error { return nil }

// Count returns the number of stored services.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.services)
}
