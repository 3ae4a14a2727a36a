package utils

import "errors"

var (
	// Pipeline errors, raised at the boundary and terminating the invocation.
	ErrUnauthenticated    = errors.New("unauthenticated")
	ErrRateLimited        = errors.New("rate limit exceeded")
	ErrMissingAPIKey      = errors.New("generation api key not configured")
	ErrGenerationFailed   = errors.New("trip generation failed")
	ErrMalformedItinerary = errors.New("malformed itinerary response")
	ErrInvalidInput       = errors.New("invalid input")

	ErrAccountNotFound    = errors.New("account not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrDatabaseError      = errors.New("database error")
)
