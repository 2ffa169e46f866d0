package platform

import "errors"

// Sentinel errors for session creation.
var (
	// ErrUnsupportedProvider is returned for a provider name the factory does not know.
	ErrUnsupportedProvider = errors.New("unsupported provider")
)
