package service

import "errors"

// Sentinel errors shared across services. Handlers map these onto HTTP
// status codes; anything not in this list surfaces as a server error.
var (
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrUserExists           = errors.New("user already exists")
	ErrNotFound             = errors.New("not found")
	ErrForbidden            = errors.New("not authorized")
	ErrInvalidTransition    = errors.New("invalid booking status transition")
	ErrEquipmentUnavailable = errors.New("equipment is not available for booking")
	ErrMissingFields        = errors.New("missing required fields")
	ErrWrongPassword        = errors.New("current password is incorrect")
)
