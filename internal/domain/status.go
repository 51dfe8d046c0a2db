package domain

import (
	"time"

	"github.com/google/uuid"
)

// StatusName is the operational state of a service.
type StatusName string

const (
	StatusOnline       StatusName = "online"
	StatusUnstable     StatusName = "unstable"
	StatusOutOfService StatusName = "out of service"
)

// ParseStatus validates a raw status string against the known set.
func ParseStatus(s string) (StatusName, error) {
	switch StatusName(s) {
	case StatusOnline, StatusUnstable, StatusOutOfService:
		return StatusName(s), nil
	}
	return "", ErrInvalidStatus
}

// Status is one entry in a service's status history.
//
// A Status is created only as a side effect of a status-changing update to
// its owning Service (including the initial creation). It is never updated
// or deleted on its own.
type Status struct {
	ID        string     `json:"id"`
	Name      StatusName `json:"name"`
	UpdatedAt time.Time  `json:"updated_at"`
}

func newStatus(name StatusName, at time.Time) Status {
	return Status{
		ID:        uuid.New().String(),
		Name:      name,
		UpdatedAt: at.UTC(),
	}
}
