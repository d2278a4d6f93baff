package store

import "errors"

var (
	// ErrNotFound means the requested record does not exist.
	ErrNotFound = errors.New("not found")

	// ErrDuplicateUser means the email is already registered.
	ErrDuplicateUser = errors.New("user already exists")
)
