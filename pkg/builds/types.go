// Package builds retrieves the build history of a repository from a CI service.
//
// A [Session] returns one page of builds at a time. The [Fetcher] walks those
// pages sequentially, using the number of the last build of each page as the
// cursor for the next request, and stops at the first empty page or after a
// fixed number of pages.
//
// Usage:
//
//	fetcher := builds.NewFetcher(session, builds.DefaultMaxPages)
//	all, err := fetcher.Fetch(ctx, "owner", "repo")
package builds

import (
	"context"
	"time"
)

// State is the terminal or transient status of a build.
type State string

// Build states reported by the CI services.
const (
	StatePassed   State = "passed"
	StateFailed   State = "failed"
	StateErrored  State = "errored"
	StateCanceled State = "canceled"
	StateStarted  State = "started"
)

// Build is a snapshot of a single CI build.
type Build struct {
	// Number is the opaque ordering token of the build, used as pagination cursor.
	Number string
	State  State
	// Duration in seconds; nil when the service did not report one.
	Duration  *int64
	StartedAt *time.Time
}

// Passed reports whether the build completed successfully.
func (b Build) Passed() bool {
	return b.State == StatePassed
}

// Complete reports whether the fields needed for statistics are present.
func (b Build) Complete() bool {
	return b.State != "" && b.Duration != nil && *b.Duration >= 0
}

// Seconds returns the build duration, or 0 when it is unknown.
func (b Build) Seconds() int64 {
	if b.Duration == nil {
		return 0
	}
	return *b.Duration
}

// Query selects one page of builds.
type Query struct {
	// State filters builds server side. Empty means all states.
	State State
	// After is the exclusive cursor: only builds older than this number are returned.
	// Empty requests the most recent page.
	After string
}

// Session is an authenticated handle on a CI service.
type Session interface {
	// Builds returns one page of builds for owner/repo matching the query,
	// newest first. An empty page means there is nothing left to read.
	Builds(ctx context.Context, owner, repo string, query Query) ([]Build, error)
}

// ProgressReporter receives one notification per page attempt.
// Implementations must not block; they have no influence on the result.
type ProgressReporter interface {
	PageRequested(page int)
	PageReceived(page, count int)
}
