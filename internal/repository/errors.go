package repository

import "errors"

// ErrNotFound indicates an entity was not located.
var ErrNotFound = errors.New("repository: not found")

// ErrDuplicateUsername indicates an insert collided with an existing username.
// The translation from the storage engine's duplicate-key signal happens in
// the adapter, so callers never inspect driver error codes.
var ErrDuplicateUsername = errors.New("repository: duplicate username")
