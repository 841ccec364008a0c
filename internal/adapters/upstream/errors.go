package upstream

import "errors"

// Sentinel kinds for upstream failures.
var (
	ErrUpstream = errors.New("upstream error")
	ErrTimeout  = errors.New("upstream timeout")
)

// Error wraps a failed upstream call with its kind and cause.
type Error struct {
	Upstream string
	Op       string
	Kind     error
	Err      error
}

func newError(upstream, op string, kind, err error) *Error {
	return &Error{Upstream: upstream, Op: op, Kind: kind, Err: err}
}

func (e *Error) Error() string {
	msg := e.Op + " " + e.Upstream + ": " + e.Kind.Error()
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap exposes both the kind and the cause.
func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}
