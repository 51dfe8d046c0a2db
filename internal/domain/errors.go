package domain

import "errors"

// Sentinel errors for the registry and store layers. Their messages are
// surfaced verbatim in API error bodies, so keep them human-readable.
var (
	ErrNotFound        = errors.New("service not found")
	ErrDuplicateName   = errors.New("please use a different name")
	ErrInvalidStatus   = errors.New(`status must be one of "out of service", "online", "unstable"`)
	ErrStatusUnchanged = errors.New("status is not changed")
)
