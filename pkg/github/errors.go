package github

import "errors"

// Error definitions for GitHub API operations.
var (
	errTokenRequired  = errors.New("a GitHub token is required")
	errInvalidBaseURL = errors.New("invalid GitHub base URL")
	errUnknownCursor  = errors.New("cursor does not belong to a previously returned page")

	// ErrTokenRequired is returned when no GitHub token is available.
	ErrTokenRequired = errTokenRequired
	// ErrInvalidBaseURL is returned when the enterprise base URL cannot be used.
	ErrInvalidBaseURL = errInvalidBaseURL
	// ErrUnknownCursor is returned when a query continues after a run this session never returned.
	ErrUnknownCursor = errUnknownCursor
)
