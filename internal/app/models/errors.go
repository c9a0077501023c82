package models

import "errors"

// Domain specific errors for location resolution and party search.
var (
	ErrNotFound                 = errors.New("requested item not found")
	ErrUnauthenticated          = errors.New("authentication required or invalid credentials")
	ErrBadRequest               = errors.New("bad request")
	ErrMissingAPIKey            = errors.New("gemini api key is not configured")
	ErrLocationUnsupported      = errors.New("geolocation not supported")
	ErrLocationPermissionDenied = errors.New("location access denied")
	ErrLocationUnavailable      = errors.New("location unavailable")
	ErrSearchFailed             = errors.New("party search failed")
)
