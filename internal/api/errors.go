package api

import "errors"

var (
	// ErrMissingSubject is returned when no authenticated subject is in the context.
	ErrMissingSubject = errors.New("missing subject in context")
)
