package builds

import "errors"

// Sentinel errors for build retrieval.
var (
	// ErrTransport is returned when a page could not be fetched. The whole fetch is aborted.
	ErrTransport = errors.New("failed to fetch build page")

	// ErrInvalidPageBound is returned when the page bound is not positive.
	ErrInvalidPageBound = errors.New("page bound must be at least 1")
)
