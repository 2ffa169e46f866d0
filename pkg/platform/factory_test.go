package platform_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sgaunet/ci-stats/internal/logger"
	"github.com/sgaunet/ci-stats/internal/security"
	"github.com/sgaunet/ci-stats/pkg/builds"
	"github.com/sgaunet/ci-stats/pkg/config"
	ghclient "github.com/sgaunet/ci-stats/pkg/github"
	"github.com/sgaunet/ci-stats/pkg/platform"
	"github.com/sgaunet/ci-stats/pkg/travis"
	"github.com/sgaunet/ci-stats/testing/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func boolPtr(b bool) *bool { return &b }

// travisServer answers the auth handshake and records the Authorization
// header of build requests.
func travisServer(t *testing.T, authStatus int) (*httptest.Server, *string) {
	t.Helper()
	var authorization string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if r.URL.Path == "/auth/github" {
			w.WriteHeader(authStatus)
			_, _ = w.Write([]byte(`{"access_token": "travis-secret"}`))
			return
		}
		authorization = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`{"builds": []}`))
	}))
	t.Cleanup(srv.Close)
	return srv, &authorization
}

func TestNewSession_TravisPublicFromConfig(t *testing.T) {
	t.Setenv(platform.TokenEnvVar, "")
	prompter := mocks.NewPrompter()
	cfg := &config.Config{Provider: config.ProviderTravis, Travis: config.TravisConfig{Pro: boolPtr(false)}}

	session, err := platform.NewSession(context.Background(), cfg, prompter, logger.NoLogger())
	require.NoError(t, err)

	client, ok := session.(*travis.Client)
	require.True(t, ok)
	assert.Equal(t, travis.PublicEndpoint, client.Endpoint())
	assert.Zero(t, prompter.GetCallCount("ConfirmPro"), "config answers the visibility question")
	assert.Zero(t, prompter.GetCallCount("GitHubToken"))
}

func TestNewSession_TravisPromptsForVisibility(t *testing.T) {
	t.Setenv(platform.TokenEnvVar, "")
	prompter := mocks.NewPrompter()

	session, err := platform.NewSession(context.Background(), config.Default(), prompter, logger.NoLogger())
	require.NoError(t, err)
	assert.Equal(t, 1, prompter.GetCallCount("ConfirmPro"))
	assert.Equal(t, travis.PublicEndpoint, session.(*travis.Client).Endpoint())
}

func TestNewSession_TravisProWithEnvToken(t *testing.T) {
	t.Setenv(platform.TokenEnvVar, "ghp_env_token")
	srv, authorization := travisServer(t, http.StatusOK)
	prompter := mocks.NewPrompter()
	prompter.ProAnswer = true
	cfg := &config.Config{Provider: config.ProviderTravis, Travis: config.TravisConfig{Endpoint: srv.URL}}

	session, err := platform.NewSession(context.Background(), cfg, prompter, logger.NoLogger())
	require.NoError(t, err)
	assert.Zero(t, prompter.GetCallCount("GitHubToken"), "GITHUB_TOKEN skips the prompt")

	_, err = session.Builds(context.Background(), "octo", "widget", builds.Query{})
	require.NoError(t, err)
	assert.Equal(t, "token travis-secret", *authorization)
}

func TestNewSession_TravisProPromptsForToken(t *testing.T) {
	t.Setenv(platform.TokenEnvVar, "")
	srv, _ := travisServer(t, http.StatusOK)
	prompter := mocks.NewPrompter()
	prompter.TokenResponse = security.NewSecureToken("ghp_prompted")
	cfg := &config.Config{
		Provider: config.ProviderTravis,
		Travis:   config.TravisConfig{Pro: boolPtr(true), Endpoint: srv.URL},
	}

	_, err := platform.NewSession(context.Background(), cfg, prompter, logger.NoLogger())
	require.NoError(t, err)
	assert.Equal(t, 1, prompter.GetCallCount("GitHubToken"))
}

func TestNewSession_TravisProAuthFailure(t *testing.T) {
	t.Setenv(platform.TokenEnvVar, "ghp_env_token")
	srv, _ := travisServer(t, http.StatusForbidden)
	cfg := &config.Config{
		Provider: config.ProviderTravis,
		Travis:   config.TravisConfig{Pro: boolPtr(true), Endpoint: srv.URL},
	}

	session, err := platform.NewSession(context.Background(), cfg, mocks.NewPrompter(), logger.NoLogger())
	require.ErrorIs(t, err, travis.ErrAuthFailed)
	assert.Nil(t, session)
}

func TestNewSession_PromptErrors(t *testing.T) {
	t.Setenv(platform.TokenEnvVar, "")
	interrupted := errors.New("interrupt")

	t.Run("visibility", func(t *testing.T) {
		prompter := mocks.NewPrompter()
		prompter.ProError = interrupted

		_, err := platform.NewSession(context.Background(), config.Default(), prompter, logger.NoLogger())
		require.ErrorIs(t, err, interrupted)
	})

	t.Run("token", func(t *testing.T) {
		prompter := mocks.NewPrompter()
		prompter.TokenError = interrupted
		cfg := &config.Config{Provider: config.ProviderGitHubActions}

		_, err := platform.NewSession(context.Background(), cfg, prompter, logger.NoLogger())
		require.ErrorIs(t, err, interrupted)
	})

	t.Run("empty token", func(t *testing.T) {
		cfg := &config.Config{Provider: config.ProviderGitHubActions}

		_, err := platform.NewSession(context.Background(), cfg, mocks.NewPrompter(), logger.NoLogger())
		require.ErrorIs(t, err, ghclient.ErrTokenRequired)
	})
}

func TestNewSession_GitHubActions(t *testing.T) {
	t.Setenv(platform.TokenEnvVar, "ghp_env_token")
	var authorization string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authorization = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"total_count": 0, "workflow_runs": []}`))
	}))
	defer srv.Close()

	prompter := mocks.NewPrompter()
	cfg := &config.Config{Provider: config.ProviderGitHubActions, GitHub: config.GitHubConfig{BaseURL: srv.URL + "/"}}

	session, err := platform.NewSession(context.Background(), cfg, prompter, logger.NoLogger())
	require.NoError(t, err)
	assert.IsType(t, &ghclient.Session{}, session)
	assert.Zero(t, prompter.GetCallCount("ConfirmPro"), "visibility only matters for Travis")

	_, err = session.Builds(context.Background(), "octo", "widget", builds.Query{State: builds.StatePassed})
	require.NoError(t, err)
	assert.Equal(t, "Bearer ghp_env_token", authorization)
}

func TestNewSession_UnsupportedProvider(t *testing.T) {
	cfg := &config.Config{Provider: "jenkins"}

	session, err := platform.NewSession(context.Background(), cfg, mocks.NewPrompter(), logger.NoLogger())
	require.ErrorIs(t, err, platform.ErrUnsupportedProvider)
	assert.Nil(t, session)
}
