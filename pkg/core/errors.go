package core

import "errors"

// Common errors.
var (
	// ErrReadPage wraps failures to read an existing page.
	ErrReadPage = errors.New("failed to read page")
	// ErrWritePage wraps failures to write a page.
	ErrWritePage = errors.New("failed to write page")
	// ErrInvalidRange is returned when the end of a date range is not after its start.
	ErrInvalidRange = errors.New("invalid date range")
	// ErrNotSupported is returned when the repository lacks an optional capability.
	ErrNotSupported = errors.New("operation not supported by repository")
)
