package domain

import "errors"

var (
	// ErrProviderUnavailable is returned when a price provider cannot be
	// constructed or authenticated (missing or rejected credentials)
	ErrProviderUnavailable = errors.New("price provider unavailable")

	// ErrInvalidRequest is returned when request parameters are invalid
	ErrInvalidRequest = errors.New("invalid request parameters")

	// ErrKrogerAPIFailure is returned when a Kroger API request fails
	ErrKrogerAPIFailure = errors.New("Kroger API request failed")
)
