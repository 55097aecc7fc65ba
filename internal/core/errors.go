package core

import "errors"

var (
	// ErrNotFound is returned when a path selected for removal does not exist.
	ErrNotFound = errors.New("not found")

	// ErrProtected is returned when a path is on the never-delete list.
	ErrProtected = errors.New("protected system path")

	// ErrUnsupported is returned by operations that only exist on Windows.
	ErrUnsupported = errors.New("not supported on this platform")
)
