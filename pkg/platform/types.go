// Package platform builds the [builds.Session] selected by the configuration.
//
// Use [NewSession] to create a Travis CI or GitHub Actions session, running
// the privacy prompt and the authentication handshake as needed:
//
//	session, err := platform.NewSession(ctx, cfg, ui.NewSurveyPrompter(), logger)
//	all, err := builds.FetchBuilds(ctx, owner, repo, session, builds.DefaultMaxPages)
package platform

import "github.com/sgaunet/ci-stats/internal/security"

// TokenEnvVar names the environment variable holding the GitHub token.
const TokenEnvVar = "GITHUB_TOKEN"

// Prompter asks the user the questions needed to build a session.
type Prompter interface {
	// ConfirmPro reports whether the repository is private and hosted on Travis Pro.
	ConfirmPro() (bool, error)

	// GitHubToken asks for a GitHub token.
	GitHubToken() (security.SecureToken, error)
}
