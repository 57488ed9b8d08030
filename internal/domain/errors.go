package domain

import "errors"

// ErrNotFound is returned when the requested resource does not exist —
// a shared trip id that matches no remote record, for example.
// The HTTP layer maps this to 404 so clients can tell "trip not found"
// apart from a server failure.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned when input fails validation (e.g. a missing
// trip id on fetch/update, or an unreadable request body).
// The HTTP layer maps this to 400.
var ErrValidation = errors.New("validation error")
