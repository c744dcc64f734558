package domain

import "errors"

var (
	// ErrInvalidPuzzle marks a malformed puzzle: wrong size, gaps in the
	// positions, slots that do not match the kind, or references out of range.
	ErrInvalidPuzzle = errors.New("invalid puzzle")
	// ErrInvalidGuess marks a guess that does not cover every position.
	ErrInvalidGuess = errors.New("invalid guess")
	// ErrSessionNotFound is returned for unknown or evicted session ids.
	ErrSessionNotFound = errors.New("session not found")
	// ErrNotConfigured is returned when a service dependency is missing.
	ErrNotConfigured = errors.New("usecase dependency not configured")
)
