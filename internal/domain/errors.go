package domain

import "errors"

var (
	ErrInvalidURL          = errors.New("invalid url")
	ErrInvalidCode         = errors.New("invalid short code")
	ErrCodeExists          = errors.New("short code already exists")
	ErrNotFound            = errors.New("link not found")
	ErrAllocationExhausted = errors.New("failed to allocate a unique short code")

	// ErrDuplicateKey is returned by stores when an insert hits an existing
	// short code. The service translates it before it reaches callers.
	ErrDuplicateKey = errors.New("duplicate short code")
)
