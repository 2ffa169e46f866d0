// Package travis provides a build session backed by the Travis CI v2 API.
package travis

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/sgaunet/bullets"
	"github.com/sgaunet/ci-stats/internal/logger"
	"github.com/sgaunet/ci-stats/internal/security"
	"github.com/sgaunet/ci-stats/pkg/builds"
)

// Client is a Travis CI API client.
type Client struct {
	rest     *resty.Client
	endpoint string
	log      *bullets.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithEndpoint overrides the API endpoint (defaults to PublicEndpoint).
func WithEndpoint(endpoint string) Option {
	return func(c *Client) {
		if endpoint != "" {
			c.endpoint = strings.TrimSuffix(endpoint, "/")
		}
	}
}

// WithLogger sets the logger used for request tracing.
func WithLogger(log *bullets.Logger) Option {
	return func(c *Client) {
		if log != nil {
			c.log = log
		}
	}
}

// WithTimeout overrides the per-request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.rest.SetTimeout(timeout)
		}
	}
}

// NewClient creates an unauthenticated Travis client.
func NewClient(opts ...Option) *Client {
	c := &Client{
		rest:     resty.New(),
		endpoint: PublicEndpoint,
		log:      logger.NoLogger(),
	}
	c.rest.SetTimeout(DefaultTimeout).
		SetHeader(headerAccept, mediaType).
		SetHeader("Content-Type", "application/json").
		SetHeader("User-Agent", userAgent)

	for _, opt := range opts {
		opt(c)
	}
	c.rest.SetBaseURL(c.endpoint)

	return c
}

// Endpoint returns the API endpoint the client talks to.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// Authenticate exchanges a GitHub token for a Travis access token.
// Subsequent requests carry the Travis token.
func (c *Client) Authenticate(ctx context.Context, githubToken security.SecureToken) error {
	if githubToken.IsEmpty() {
		return ErrTokenRequired
	}

	security.DebugAuth(c.log, "Travis", map[string]string{
		"endpoint": c.endpoint,
		"token":    githubToken.String(),
	})

	res, err := c.rest.R().
		SetContext(ctx).
		SetBody(authRequest{GitHubToken: githubToken.Value()}).
		SetResult(&authResponse{}).
		SetError(&apiError{}).
		Post(authPath)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrAuthFailed, security.SanitizeError(err))
	}
	if res.IsError() {
		return fmt.Errorf("%w: %s", ErrAuthFailed, describe(res))
	}

	auth, ok := res.Result().(*authResponse)
	if !ok || auth.AccessToken == "" {
		return fmt.Errorf("%w: empty access token", ErrAuthFailed)
	}

	c.rest.SetHeader("Authorization", authScheme+" "+auth.AccessToken)
	c.log.Debug("Authenticated with " + c.endpoint)
	return nil
}

// Builds returns one page of builds of owner/repo, newest first.
func (c *Client) Builds(ctx context.Context, owner, repo string, query builds.Query) ([]builds.Build, error) {
	req := c.rest.R().
		SetContext(ctx).
		SetPathParams(map[string]string{
			"owner": owner,
			"repo":  repo,
		}).
		SetResult(&buildsResponse{}).
		SetError(&apiError{})
	if query.State != "" {
		req.SetQueryParam(paramState, string(query.State))
	}
	if query.After != "" {
		req.SetQueryParam(paramAfter, query.After)
	}

	res, err := req.Get(buildsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to list builds: %w", security.SanitizeError(err))
	}
	if res.IsError() {
		return nil, fmt.Errorf("%w: %s", ErrUnexpectedStatus, describe(res))
	}

	page, ok := res.Result().(*buildsResponse)
	if !ok {
		return nil, fmt.Errorf("%w: unreadable body", ErrUnexpectedStatus)
	}

	result := make([]builds.Build, 0, len(page.Builds))
	for _, b := range page.Builds {
		result = append(result, b.toBuild())
	}
	return result, nil
}

// describe summarizes an error response for error messages.
func describe(res *resty.Response) string {
	if e, ok := res.Error().(*apiError); ok && e.Error != "" {
		return fmt.Sprintf("%s (%s)", res.Status(), security.SanitizeString(e.Error))
	}
	return res.Status()
}

var _ builds.Session = (*Client)(nil)
