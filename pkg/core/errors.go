package core

import "errors"

// Common errors.
var (
	// ErrCorruptData is returned when the data file exists but cannot be decoded.
	ErrCorruptData = errors.New("corrupt data file")

	// ErrInvalidPattern is returned when a search pattern is not a valid glob.
	ErrInvalidPattern = errors.New("invalid search pattern")
)
