package domain

import (
	"time"

	"github.com/google/uuid"
)

// Service is a tracked service and the owner of its status history.
//
// A Service always carries at least one Status once created: NewService
// records the initial status, and the history only ever grows from there.
// Name is a unique, case-sensitive, human-facing key; uniqueness is enforced
// by the store at write time.
type Service struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Statuses    History   `json:"statuses"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewService builds a service with its mandatory initial status stamped now.
func NewService(name string, status StatusName, description string, now time.Time) *Service {
	now = now.UTC()
	return &Service{
		ID:          uuid.New().String(),
		Name:        name,
		Description: description,
		Statuses:    History{}.Append(status, now),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// CurrentStatus returns the name of the last recorded status.
func (s *Service) CurrentStatus() StatusName {
	last, ok := s.Statuses.Last()
	if !ok {
		return ""
	}
	return last.Name
}

// Clone returns a deep copy. Stores hand out clones so callers can never
// mutate persisted history in place.
func (s *Service) Clone() *Service {
	cp := *s
	cp.Statuses = make(History, len(s.Statuses))
	copy(cp.Statuses, s.Statuses)
	return &cp
}
