package normalize

import "errors"

// Sentinel kinds for normalization failures.
var (
	ErrNormalize    = errors.New("normalize failed")
	ErrMissingField = errors.New("missing field")
	ErrEmptyList    = errors.New("empty list")
)

// Error names the payload field that did not match the expected shape.
type Error struct {
	Field string
	Kind  error
}

func (e *Error) Error() string {
	return ErrNormalize.Error() + ": " + e.Kind.Error() + ": " + e.Field
}

// Unwrap exposes both the package kind and the specific kind.
func (e *Error) Unwrap() []error {
	return []error{ErrNormalize, e.Kind}
}
