package models

import "errors"

// Error taxonomy shared by services and handlers. Handlers translate
// these into HTTP statuses; everything else surfaces as a generic 500.
var (
	ErrNotFound           = errors.New("not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrDuplicateUsername  = errors.New("username already exists")
	ErrWeakPassword       = errors.New("password must be at least 6 characters")
)
