package store

import "errors"

// Sentinel errors returned by the stores. Handlers map these to HTTP status
// codes with errors.Is; anything else is treated as an internal fault.
var (
	ErrNotFound       = errors.New("record not found")
	ErrForbidden      = errors.New("not the owner of this resource")
	ErrEmptyUpdate    = errors.New("no fields provided to update")
	ErrDuplicateEmail = errors.New("email already registered")
	ErrDuplicateVote  = errors.New("user already voted on this post")
)
