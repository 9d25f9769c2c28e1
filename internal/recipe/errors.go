package recipe

import "errors"

// Error kinds surfaced by the Repository. Callers match them with errors.Is.
var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrQuotaExceeded = errors.New("storage quota exceeded")
	ErrPersistence   = errors.New("persistence failure")
	ErrNotFound      = errors.New("recipe not found")
	ErrDataCorrupted = errors.New("stored data corrupted")
)
