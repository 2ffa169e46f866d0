// Package github provides a build session backed by GitHub Actions workflow runs.
package github

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/google/go-github/v69/github"
	"github.com/sgaunet/bullets"
	"github.com/sgaunet/ci-stats/internal/logger"
	"github.com/sgaunet/ci-stats/internal/security"
	"github.com/sgaunet/ci-stats/pkg/builds"
	"golang.org/x/oauth2"
)

// Session lists workflow runs of a repository as builds.
//
// Runs have no "after" parameter, so the continuation cursor (a run ID) is
// translated into a created:<=T filter using the creation time of that run,
// remembered from the page that returned it. Runs whose ID is not lower
// than the cursor are dropped from the page; when that empties a full page
// the following API page is read instead.
type Session struct {
	client  *github.Client
	log     *bullets.Logger
	perPage int

	mu      sync.Mutex
	created map[string]time.Time
}

// Option configures a Session.
type Option func(*Session) error

// WithBaseURL points the session at a GitHub Enterprise API.
func WithBaseURL(baseURL string) Option {
	return func(s *Session) error {
		if baseURL == "" {
			return nil
		}
		client, err := s.client.WithEnterpriseURLs(baseURL, baseURL)
		if err != nil {
			return fmt.Errorf("%w: %w", errInvalidBaseURL, err)
		}
		s.client = client
		return nil
	}
}

// WithLogger sets the logger used for request tracing.
func WithLogger(log *bullets.Logger) Option {
	return func(s *Session) error {
		if log != nil {
			s.log = log
		}
		return nil
	}
}

// WithPerPage overrides the page size.
func WithPerPage(perPage int) Option {
	return func(s *Session) error {
		if perPage > 0 {
			s.perPage = perPage
		}
		return nil
	}
}

// NewSession creates a session authenticated with token.
func NewSession(ctx context.Context, token security.SecureToken, opts ...Option) (*Session, error) {
	if token.IsEmpty() {
		return nil, ErrTokenRequired
	}

	ts := oauth2.StaticTokenSource(
		&oauth2.Token{AccessToken: token.Value()},
	)
	tc := oauth2.NewClient(ctx, ts)

	s := &Session{
		client:  github.NewClient(tc),
		log:     logger.NoLogger(),
		perPage: DefaultPerPage,
		created: make(map[string]time.Time),
	}
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}

	security.DebugAuth(s.log, "GitHub", map[string]string{
		"base_url": s.client.BaseURL.String(),
		"token":    token.String(),
	})
	return s, nil
}

// Builds returns one page of workflow runs of owner/repo, newest first.
func (s *Session) Builds(ctx context.Context, owner, repo string, query builds.Query) ([]builds.Build, error) {
	opts := &github.ListWorkflowRunsOptions{
		ListOptions: github.ListOptions{Page: 1, PerPage: s.perPage},
	}
	if query.State != "" {
		opts.Status = runStatus(query.State)
	}

	var cursor int64
	if query.After != "" {
		createdAt, ok := s.createdAt(query.After)
		if !ok {
			return nil, fmt.Errorf("%w: %s", errUnknownCursor, query.After)
		}
		id, err := strconv.ParseInt(query.After, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", errUnknownCursor, query.After)
		}
		cursor = id
		opts.Created = createdAtOrBefore + createdAt.UTC().Format(time.RFC3339)
	}

	for {
		runs, _, err := s.client.Actions.ListRepositoryWorkflowRuns(ctx, owner, repo, opts)
		if err != nil {
			return nil, fmt.Errorf("failed to list workflow runs: %w", security.SanitizeError(err))
		}

		result := make([]builds.Build, 0, len(runs.WorkflowRuns))
		for _, run := range runs.WorkflowRuns {
			if cursor != 0 && run.GetID() >= cursor {
				continue
			}
			b := toBuild(run)
			s.remember(b.Number, run.GetCreatedAt().Time)
			result = append(result, b)
		}

		s.log.Debug(fmt.Sprintf("Listed %d workflow runs (%d kept, created filter %q, page %d)",
			len(runs.WorkflowRuns), len(result), opts.Created, opts.Page))

		// A full page made only of already returned runs (created in the
		// cursor's second) says nothing about older runs: read on.
		if len(result) > 0 || len(runs.WorkflowRuns) < s.perPage {
			return result, nil
		}
		opts.Page++
	}
}

func (s *Session) remember(number string, createdAt time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.created[number] = createdAt
}

func (s *Session) createdAt(number string) (time.Time, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.created[number]
	return t, ok
}

var _ builds.Session = (*Session)(nil)
