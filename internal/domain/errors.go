package domain

import "errors"

// Sentinel errors used across layers.
var (
	ErrNotFound            = errors.New("not found")
	ErrInvalidProfile      = errors.New("invalid profile")
	ErrPermissionDenied    = errors.New("permission denied")
	ErrPositionUnavailable = errors.New("position unavailable")
	ErrGeocodeFailed       = errors.New("geocode failed")
	ErrRemoteStatus        = errors.New("remote returned non-success status")
	ErrNotImplemented      = errors.New("not implemented")
)
