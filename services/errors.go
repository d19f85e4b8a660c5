package services

import "errors"

var (
	// ErrNotFound means the referenced row does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrForbidden means the row exists but belongs to another user.
	ErrForbidden = errors.New("not the owner")
)
