package domain

import "errors"

// ErrNotFound is returned by repo and service functions when the requested
// tag does not exist in the database.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned by service functions when input fails business
// rule validation (e.g. blank tag name, missing creator).
// Handlers should map this to HTTP 400.
var ErrValidation = errors.New("validation error")

// ErrConflict is returned when a create would overwrite an existing tag.
// Handlers should map this to HTTP 400 ("Unable to create tag").
var ErrConflict = errors.New("already exists")
