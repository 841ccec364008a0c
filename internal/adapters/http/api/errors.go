package api

import "errors"

// Client-facing error messages. Causes are logged, never returned.
const (
	msgInvalidQuery = "invalid query parameters"
	msgUnavailable  = "upstream service unavailable"
	msgInternal     = "internal server error"
)

// ErrPanic wraps a value recovered from a panicking handler.
var ErrPanic = errors.New("handler panicked")
