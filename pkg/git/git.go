// Package git reads repository metadata from the local working copy.
package git

import (
	"errors"
	"fmt"

	"github.com/go-git/go-git/v5"
)

// DefaultRemote is the remote whose URL identifies the repository.
const DefaultRemote = "origin"

var errNoRemoteURL = errors.New("no URLs found for remote")

// ErrNoRemoteURL is returned when a remote exists but has no URL configured.
var ErrNoRemoteURL = errNoRemoteURL

// Repository is a local git working copy.
type Repository struct {
	repo *git.Repository
}

// OpenRepository opens the repository containing path, walking up
// parent directories until a .git entry is found.
func OpenRepository(path string) (*Repository, error) {
	repo, err := git.PlainOpenWithOptions(path, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, fmt.Errorf("failed to open git repository: %w", err)
	}

	return &Repository{repo: repo}, nil
}

// GetRemoteURL returns the first URL of the named remote.
func (r *Repository) GetRemoteURL(remoteName string) (string, error) {
	remote, err := r.repo.Remote(remoteName)
	if err != nil {
		return "", fmt.Errorf("failed to get remote %s: %w", remoteName, err)
	}

	urls := remote.Config().URLs
	if len(urls) == 0 {
		return "", fmt.Errorf("%w %s", errNoRemoteURL, remoteName)
	}

	return urls[0], nil
}

// OriginURL returns the URL of the origin remote.
func (r *Repository) OriginURL() (string, error) {
	return r.GetRemoteURL(DefaultRemote)
}
