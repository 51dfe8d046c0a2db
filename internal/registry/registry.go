package registry

import (
	"context"
	"time"

	"github.com/MrSnakeDoc/slatrack/internal/domain"
	"github.com/MrSnakeDoc/slatrack/internal/logger"
)

// Store is the persistence boundary for services and their histories.
//
// Create and Update must be atomic: the service document and its name-index
// entry commit together or not at all. Mutations passed to Update run inside
// that transactional boundary; a mutation error aborts the write.
type Store interface {
	Create(ctx context.Context, svc *domain.Service) error
	Get(ctx context.Context, id string) (*domain.Service, error)
	List(ctx context.Context) ([]*domain.Service, error)
	Update(ctx context.Context, id string, mutate func(svc *domain.Service) error) (*domain.Service, error)
	Delete(ctx context.Context, id string) error
	Ping(ctx context.Context) error
}

// Patch carries the optional fields of an update request. Nil means
// "leave unchanged".
type Patch struct {
	Name        *string
	Status      *string
	Description *string
}

// Registry owns service lifecycle: creation with a mandatory initial status,
// field updates, and status transitions appended to the history.
type Registry struct {
	store Store
	log   logger.Logger
	now   func() time.Time
}

// New builds a registry. now supplies timestamps for status records; pass
// time.Now in production, a fixed clock in tests.
func New(store Store, log logger.Logger, now func() time.Time) *Registry {
	return &Registry{
		store: store,
		log:   log,
		now:   now,
	}
}

// Create registers a service with its initial status stamped "now".
// Returns domain.ErrInvalidStatus or domain.ErrDuplicateName on bad input.
func (r *Registry) Create(ctx context.Context, name, status, description string) (*domain.Service, error) {
	st, err := domain.ParseStatus(status)
	if err != nil {
		return nil, err
	}

	svc := domain.NewService(name, st, description, r.now())
	if err := r.store.Create(ctx, svc); err != nil {
		return nil, err
	}

	r.log.Info("service created",
		logger.String("id", svc.ID),
		logger.String("name", svc.Name),
		logger.String("status", string(st)))

	return svc, nil
}

// Get returns a service with its full status history.
func (r *Registry) Get(ctx context.Context, id string) (*domain.Service, error) {
	return r.store.Get(ctx, id)
}

// List returns all services. Ordering is unspecified.
func (r *Registry) List(ctx context.Context) ([]*domain.Service, error) {
	return r.store.List(ctx)
}

// Update applies a partial patch. A status change appends a new history
// entry stamped "now"; re-submitting the current status is rejected with
// domain.ErrStatusUnchanged. Field updates and the history append commit
// atomically.
func (r *Registry) Update(ctx context.Context, id string, p Patch) (*domain.Service, error) {
	now := r.now()

	svc, err := r.store.Update(ctx, id, func(svc *domain.Service) error {
		if p.Status != nil {
			st, err := domain.ParseStatus(*p.Status)
			if err != nil {
				return err
			}
			if svc.CurrentStatus() == st {
				return domain.ErrStatusUnchanged
			}
			svc.Statuses = svc.Statuses.Append(st, now)
		}
		if p.Name != nil {
			svc.Name = *p.Name
		}
		if p.Description != nil {
			svc.Description = *p.Description
		}
		svc.UpdatedAt = now.UTC()
		return nil
	})
	if err != nil {
		return nil, err
	}

	r.log.Info("service updated",
		logger.String("id", svc.ID),
		logger.String("name", svc.Name),
		logger.String("status", string(svc.CurrentStatus())))

	return svc, nil
}

// Delete removes a service and, with it, its entire status history.
func (r *Registry) Delete(ctx context.Context, id string) error {
	if err := r.store.Delete(ctx, id); err != nil {
		return err
	}
	r.log.Info("service deleted", logger.String("id", id))
	return nil
}

// SLA computes the SLA report for one service over [from, to).
// The caller validates from < to.
func (r *Registry) SLA(ctx context.Context, id string, from, to time.Time) (domain.Report, error) {
	svc, err := r.store.Get(ctx, id)
	if err != nil {
		return domain.Report{}, err
	}
	return domain.ComputeSLA(svc.Statuses, from, to), nil
}
