package model

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidPath is returned when a path cannot be canonicalized.
	ErrInvalidPath = errors.New("invalid path")
	// ErrDuplicatePath is returned when another bookmark already holds the path.
	ErrDuplicatePath = errors.New("path already bookmarked")
	// ErrNotFound is returned when no bookmark has the requested id or path.
	ErrNotFound = errors.New("bookmark not found")
	// ErrStoreIO wraps failures of the underlying database.
	ErrStoreIO = errors.New("storage failure")
)

// DecodeError reports a database row that could not be turned into a Bookmark.
type DecodeError struct {
	Column string
	Err    error
}

func (e *DecodeError) Error() string {
	if e.Column == "" {
		return fmt.Sprintf("decode bookmark: %v", e.Err)
	}
	return fmt.Sprintf("decode bookmark column %q: %v", e.Column, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
