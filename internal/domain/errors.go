package domain

import "errors"

// Sentinel errors used across layers.
var (
	ErrNotFound        = errors.New("not found")
	ErrAlreadyExists   = errors.New("already exists")
	ErrInvalidServings = errors.New("servings must be positive")
	ErrNoGuests        = errors.New("meal has no portions to serve")
	ErrInvalidPortion  = errors.New("portion must be a positive number")
)
