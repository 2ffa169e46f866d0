package travis

import "errors"

// Error definitions for Travis CI API operations.
var (
	errAuthFailed       = errors.New("travis authentication failed")
	errUnexpectedStatus = errors.New("unexpected travis API status")
	errTokenRequired    = errors.New("a GitHub token is required to authenticate with Travis Pro")

	// ErrAuthFailed is returned when the GitHub token could not be exchanged for a Travis token.
	ErrAuthFailed = errAuthFailed
	// ErrUnexpectedStatus is returned when the API answers with a non-2xx status.
	ErrUnexpectedStatus = errUnexpectedStatus
	// ErrTokenRequired is returned when Authenticate is called without a token.
	ErrTokenRequired = errTokenRequired
)
