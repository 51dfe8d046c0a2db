package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/MrSnakeDoc/slatrack/internal/domain"
)

// Store persists services as JSON documents in Redis.
//
// Each service lives at its own key; its status history is embedded in the
// document, so the history is owned by (and cascades with) the service. A
// hash indexes names to IDs for uniqueness checks, and a set tracks all IDs.
// Writes run as WATCH-guarded transactions: the document and the name index
// commit together or not at all.
type Store struct {
	client *redis.Client
}

// NewStore creates a new Redis store
func NewStore(client *redis.Client) *Store {
	return &Store{
		client: client,
	}
}

// Create stores a new service. Fails with domain.ErrDuplicateName if the
// name is already indexed.
func (s *Store) Create(ctx context.Context, svc *domain.Service) error {
	payload, err := json.Marshal(svc)
	if err != nil {
		return fmt.Errorf("failed to marshal service: %w", err)
	}

	err = s.client.Watch(ctx, func(tx *redis.Tx) error {
		taken, err := tx.HExists(ctx, NamesKey(), svc.Name).Result()
		if err != nil {
			return fmt.Errorf("failed to check name index: %w", err)
		}
		if taken {
			return domain.ErrDuplicateName
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, ServiceKey(svc.ID), payload, 0)
			pipe.HSet(ctx, NamesKey(), svc.Name, svc.ID)
			pipe.SAdd(ctx, AllServicesKey(), svc.ID)
			return nil
		})
		return err
	}, NamesKey())
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateName) {
			return err
		}
		return fmt.Errorf("failed to save service: %w", err)
	}
	return nil
}

// Get retrieves a service document by ID.
func (s *Store) Get(ctx context.Context, id string) (*domain.Service, error) {
	return getService(ctx, s.client, id)
}

// getService works against any go-redis command runner (client or tx).
func getService(ctx context.Context, c redis.Cmdable, id string) (*domain.Service, error) {
	data, err := c.Get(ctx, ServiceKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get service: %w", err)
	}

	var svc domain.Service
	if err := json.Unmarshal(data, &svc); err != nil {
		return nil, fmt.Errorf("failed to unmarshal service: %w", err)
	}
	return &svc, nil
}

// List retrieves all services. Set order, so ordering is unspecified.
func (s *Store) List(ctx context.Context) ([]*domain.Service, error) {
	ids, err := s.client.SMembers(ctx, AllServicesKey()).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get service IDs: %w", err)
	}

	services := make([]*domain.Service, 0, len(ids))
	for _, id := range ids {
		svc, err := s.Get(ctx, id)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				// ID set and documents can drift if a delete half-failed.
				continue
			}
			return nil, err
		}
		services = append(services, svc)
	}
	return services, nil
}

// Update loads the service, applies mutate, and writes the result back in
// one transaction. A rename re-points the name index atomically with the
// document write; a mutation error aborts without touching Redis.
func (s *Store) Update(ctx context.Context, id string, mutate func(svc *domain.Service) error) (*domain.Service, error) {
	var updated *domain.Service

	err := s.client.Watch(ctx, func(tx *redis.Tx) error {
		svc, err := getService(ctx, tx, id)
		if err != nil {
			return err
		}
		oldName := svc.Name

		if err := mutate(svc); err != nil {
			return err
		}

		if svc.Name != oldName {
			owner, err := tx.HGet(ctx, NamesKey(), svc.Name).Result()
			if err != nil && !errors.Is(err, redis.Nil) {
				return fmt.Errorf("failed to check name index: %w", err)
			}
			if err == nil && owner != id {
				return domain.ErrDuplicateName
			}
		}

		payload, err := json.Marshal(svc)
		if err != nil {
			return fmt.Errorf("failed to marshal service: %w", err)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, ServiceKey(id), payload, 0)
			if svc.Name != oldName {
				pipe.HDel(ctx, NamesKey(), oldName)
				pipe.HSet(ctx, NamesKey(), svc.Name, id)
			}
			return nil
		})
		if err != nil {
			return err
		}

		updated = svc
		return nil
	}, ServiceKey(id), NamesKey())
	if err != nil {
		if isDomainErr(err) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to update service: %w", err)
	}
	return updated, nil
}

// Delete removes a service document, its name-index entry and its ID-set
// membership. The embedded history goes with the document.
func (s *Store) Delete(ctx context.Context, id string) error {
	err := s.client.Watch(ctx, func(tx *redis.Tx) error {
		svc, err := getService(ctx, tx, id)
		if err != nil {
			return err
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Del(ctx, ServiceKey(id))
			pipe.HDel(ctx, NamesKey(), svc.Name)
			pipe.SRem(ctx, AllServicesKey(), id)
			return nil
		})
		return err
	}, ServiceKey(id))
	if err != nil {
		if isDomainErr(err) {
			return err
		}
		return fmt.Errorf("failed to delete service: %w", err)
	}
	return nil
}

// Ping reports whether the backing Redis is reachable.
func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

func isDomainErr(err error) bool {
	return errors.Is(err, domain.ErrNotFound) ||
		errors.Is(err, domain.ErrDuplicateName) ||
		errors.Is(err, domain.ErrInvalidStatus) ||
		errors.Is(err, domain.ErrStatusUnchanged)
}
