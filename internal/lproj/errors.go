package lproj

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is wrapped by every error caused by malformed caller input.
var ErrInvalidInput = errors.New("invalid input")

// InvalidPathError tells which path could not be used and why.
type InvalidPathError struct {
	Path   string
	Reason string
}

func (e *InvalidPathError) Error() string {
	return fmt.Sprintf("%v: %v", e.Path, e.Reason)
}

func (e *InvalidPathError) Unwrap() error {
	return ErrInvalidInput
}

func invalidPath(path, reason string) *InvalidPathError {
	return &InvalidPathError{
		Path:   path,
		Reason: reason,
	}
}
