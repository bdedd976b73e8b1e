package textplay

import "errors"

// Sentinel errors for library operations.
var (
	ErrConversion = errors.New("screenplay conversion failed")

	// Input validation errors.
	ErrInvalidTitle     = errors.New("invalid title")
	ErrConflictingModes = errors.New("tagged output cannot be standalone")

	// Asset loading errors.
	ErrStyleNotFound    = errors.New("style not found")
	ErrInvalidAssetPath = errors.New("invalid asset path")
)
