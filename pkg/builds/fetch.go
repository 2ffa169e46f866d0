package builds

import (
	"context"
	"fmt"

	"github.com/sgaunet/bullets"
	"github.com/sgaunet/ci-stats/internal/logger"
)

// DefaultMaxPages bounds the number of page requests per fetch.
const DefaultMaxPages = 30

// Fetcher accumulates pages of passed builds from a [Session].
type Fetcher struct {
	session  Session
	maxPages int
	progress ProgressReporter
	log      *bullets.Logger
}

// Option configures a [Fetcher].
type Option func(*Fetcher)

// WithProgress registers a reporter notified on every page attempt.
func WithProgress(p ProgressReporter) Option {
	return func(f *Fetcher) {
		if p != nil {
			f.progress = p
		}
	}
}

// WithLogger sets the logger used for per-page debug output.
func WithLogger(log *bullets.Logger) Option {
	return func(f *Fetcher) {
		if log != nil {
			f.log = log
		}
	}
}

// NewFetcher creates a fetcher reading at most maxPages pages from session.
func NewFetcher(session Session, maxPages int, opts ...Option) *Fetcher {
	f := &Fetcher{
		session:  session,
		maxPages: maxPages,
		progress: noProgress{},
		log:      logger.NoLogger(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// FetchBuilds reads up to maxPages pages of passed builds for owner/repo.
func FetchBuilds(ctx context.Context, owner, repo string, session Session, maxPages int) ([]Build, error) {
	return NewFetcher(session, maxPages).Fetch(ctx, owner, repo)
}

// Fetch walks the build pages of owner/repo, newest first.
//
// Each request uses the number of the last build of the previous page as its
// exclusive cursor. The walk stops at the first empty page or once maxPages
// requests have been made. Pages are concatenated in fetch order.
// Any failed request aborts the walk and no partial result is returned.
func (f *Fetcher) Fetch(ctx context.Context, owner, repo string) ([]Build, error) {
	if f.maxPages < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidPageBound, f.maxPages)
	}

	var (
		all    []Build
		cursor string
	)

	for page := 1; page <= f.maxPages; page++ {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("%w: page %d: %w", ErrTransport, page, err)
		}

		f.progress.PageRequested(page)
		f.log.Debug(fmt.Sprintf("Requesting build page %d for %s/%s (after %q)", page, owner, repo, cursor))

		batch, err := f.session.Builds(ctx, owner, repo, Query{State: StatePassed, After: cursor})
		if err != nil {
			return nil, fmt.Errorf("%w: page %d: %w", ErrTransport, page, err)
		}
		f.progress.PageReceived(page, len(batch))

		if len(batch) == 0 {
			f.log.Debug(fmt.Sprintf("Build page %d is empty, stopping", page))
			break
		}

		all = append(all, batch...)
		cursor = batch[len(batch)-1].Number
	}

	f.log.Debug(fmt.Sprintf("Fetched %d builds for %s/%s", len(all), owner, repo))
	return all, nil
}

type noProgress struct{}

func (noProgress) PageRequested(int)     {}
func (noProgress) PageReceived(int, int) {}
