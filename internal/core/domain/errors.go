package domain

import "errors"

// Shared domain errors. Ownership misses surface as ErrNotFound on purpose:
// a caller probing someone else's resource learns nothing about its existence.
var (
	ErrNotFound     = errors.New("resource not found")
	ErrForbidden    = errors.New("forbidden")
	ErrInvalidInput = errors.New("invalid input")
)
