package probe

import "errors"

// Sentinel kinds for probe failures.
var (
	ErrUnhealthy        = errors.New("gateway unhealthy")
	ErrUnexpectedStatus = errors.New("unexpected status")
	ErrMissingKey       = errors.New("missing key")
	ErrBadBody          = errors.New("malformed body")
	ErrChecksFailed     = errors.New("checks failed")
)
