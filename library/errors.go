package library

import "errors"

// Outcomes returned by Catalog status transitions.
var (
	// ErrNotFound is returned when no book carries the requested ID.
	ErrNotFound = errors.New("book not found")

	// ErrAlreadyIssued is returned when issuing a book that is already out.
	ErrAlreadyIssued = errors.New("book already issued")

	// ErrNotIssued is returned when returning a book that was never issued.
	ErrNotIssued = errors.New("book not issued")
)
