// Package repository defines the MongoDB-backed persistence layer and the
// sentinel errors shared across repositories. Handlers compare against
// these values with errors.Is to pick the HTTP status for a failure
// instead of inspecting driver errors directly.
package repository

import "errors"

// ErrEmailExists is returned when a user insert collides with the unique
// email index. Handlers translate it into HTTP 409.
var ErrEmailExists = errors.New("email already exists")

// ErrUserNotFound is returned when a lookup matches no user document.
// Handlers translate it into HTTP 404.
var ErrUserNotFound = errors.New("user not found")

// ErrTaskNotFound is returned when a lookup matches no task document.
// Handlers translate it into HTTP 404.
var ErrTaskNotFound = errors.New("task not found")
