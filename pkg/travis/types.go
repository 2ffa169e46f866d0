package travis

import (
	"time"

	"github.com/sgaunet/ci-stats/pkg/builds"
)

// Endpoints of the Travis CI API.
const (
	PublicEndpoint = "https://api.travis-ci.org"
	ProEndpoint    = "https://api.travis-ci.com"
)

// Constants for Travis API operations.
const (
	// DefaultTimeout applies to every HTTP request made by the client.
	DefaultTimeout = 30 * time.Second

	mediaType    = "application/vnd.travis-ci.2.1+json"
	userAgent    = "ci-stats/1.0"
	buildsPath   = "/repos/{owner}/{repo}/builds"
	authPath     = "/auth/github"
	paramState   = "state"
	paramAfter   = "after_number"
	authScheme   = "token"
	headerAccept = "Accept"
)

// build is a build as returned by the v2 builds endpoint.
type build struct {
	ID         int64      `json:"id"`
	Number     string     `json:"number"`
	State      string     `json:"state"`
	Duration   *int64     `json:"duration"`
	StartedAt  *time.Time `json:"started_at"`
	FinishedAt *time.Time `json:"finished_at"`
}

type buildsResponse struct {
	Builds []build `json:"builds"`
}

type authRequest struct {
	GitHubToken string `json:"github_token"`
}

type authResponse struct {
	AccessToken string `json:"access_token"`
}

type apiError struct {
	Error string `json:"error"`
}

// toBuild converts an API build to the service-independent form.
func (b build) toBuild() builds.Build {
	return builds.Build{
		Number:    b.Number,
		State:     builds.State(b.State),
		Duration:  b.Duration,
		StartedAt: b.StartedAt,
	}
}
