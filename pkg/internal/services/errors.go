package services

import "errors"

// Every operation surfaces failures as one of these sentinels (usually
// wrapped with context). The HTTP layer maps them onto status codes.
var (
	ErrValidation         = errors.New("validation failed")
	ErrNotFound           = errors.New("record not found")
	ErrNotAuthor          = errors.New("only the author can do this")
	ErrSelfFollow         = errors.New("cannot follow yourself")
	ErrAlreadyFollowing   = errors.New("already following this user")
	ErrInvalidCredentials = errors.New("invalid credentials")
)
