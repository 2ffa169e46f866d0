package platform

import (
	"context"
	"fmt"
	"os"

	"github.com/sgaunet/bullets"
	"github.com/sgaunet/ci-stats/internal/security"
	"github.com/sgaunet/ci-stats/pkg/builds"
	"github.com/sgaunet/ci-stats/pkg/config"
	ghclient "github.com/sgaunet/ci-stats/pkg/github"
	"github.com/sgaunet/ci-stats/pkg/travis"
)

// NewSession creates the session for the configured provider.
//
//nolint:ireturn // Factory function must return interface to enable provider abstraction.
func NewSession(ctx context.Context, cfg *config.Config, prompter Prompter, logger *bullets.Logger) (builds.Session, error) {
	switch cfg.Provider {
	case config.ProviderTravis, "":
		client, err := newTravisSession(ctx, cfg.Travis, prompter, logger)
		if err != nil {
			return nil, err
		}
		return client, nil

	case config.ProviderGitHubActions:
		token, err := githubToken(prompter)
		if err != nil {
			return nil, err
		}
		session, err := ghclient.NewSession(ctx, token,
			ghclient.WithBaseURL(cfg.GitHub.BaseURL),
			ghclient.WithLogger(logger))
		if err != nil {
			return nil, fmt.Errorf("failed to create GitHub Actions session: %w", err)
		}
		return session, nil

	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedProvider, cfg.Provider)
	}
}

func newTravisSession(ctx context.Context, cfg config.TravisConfig, prompter Prompter, logger *bullets.Logger) (*travis.Client, error) {
	pro, err := travisPro(cfg, prompter)
	if err != nil {
		return nil, err
	}

	endpoint := cfg.Endpoint
	if endpoint == "" {
		endpoint = travis.PublicEndpoint
		if pro {
			endpoint = travis.ProEndpoint
		}
	}

	client := travis.NewClient(travis.WithEndpoint(endpoint), travis.WithLogger(logger))
	if !pro {
		return client, nil
	}

	token, err := githubToken(prompter)
	if err != nil {
		return nil, err
	}
	if err := client.Authenticate(ctx, token); err != nil {
		return nil, fmt.Errorf("failed to authenticate with Travis Pro: %w", err)
	}
	return client, nil
}

// travisPro returns the configured answer, asking only when it is unset.
func travisPro(cfg config.TravisConfig, prompter Prompter) (bool, error) {
	if cfg.Pro != nil {
		return *cfg.Pro, nil
	}
	pro, err := prompter.ConfirmPro()
	if err != nil {
		return false, fmt.Errorf("failed to determine repository visibility: %w", err)
	}
	return pro, nil
}

// githubToken reads GITHUB_TOKEN, falling back to a prompt.
func githubToken(prompter Prompter) (security.SecureToken, error) {
	if token := security.NewSecureToken(os.Getenv(TokenEnvVar)); !token.IsEmpty() {
		return token, nil
	}
	token, err := prompter.GitHubToken()
	if err != nil {
		return security.SecureToken{}, fmt.Errorf("failed to get GitHub token: %w", err)
	}
	if token.IsEmpty() {
		return security.SecureToken{}, ghclient.ErrTokenRequired
	}
	return token, nil
}
