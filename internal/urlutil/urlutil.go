// Package urlutil extracts the owner and repository name from git remote URLs.
//
// It handles four URL formats:
//   - HTTPS: https://github.com/owner/repo
//   - git protocol: git://github.com/owner/repo
//   - SSH colon: git@github.com:owner/repo
//   - SSH protocol: ssh://git@github.com/owner/repo
//
// A trailing .git suffix and trailing slashes are ignored.
package urlutil

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

const (
	// minColonParts is the minimum number of parts expected when splitting SSH colon format URLs.
	// SSH colon format: git@host:path splits into ["git@host", "path"].
	minColonParts = 2
	// repositoryParts is the number of path components of an owner/repo slug.
	repositoryParts = 2
)

var errRepositoryUnresolved = errors.New("could not resolve owner/repo from remote URL")

// ErrRepositoryUnresolved is returned when a remote URL does not end in owner/repo.
var ErrRepositoryUnresolved = errRepositoryUnresolved

// ExtractPathComponents extracts the last N path components from a git remote URL.
// The caller should trim the .git suffix before calling this function.
// Returns empty string if the URL doesn't contain enough components.
//
// Examples:
//
//	ExtractPathComponents("git@github.com:owner/repo", 2) → "owner/repo"
//	ExtractPathComponents("https://github.com/org/team/repo", 2) → "team/repo"
func ExtractPathComponents(remote string, componentCount int) string {
	if strings.HasPrefix(remote, "git@") {
		// SSH colon format: git@host:path
		parts := strings.Split(remote, ":")
		if len(parts) < minColonParts {
			return ""
		}
		remote = parts[len(parts)-1]
	}

	parts := strings.Split(remote, "/")
	if len(parts) < componentCount {
		return ""
	}
	return strings.Join(parts[len(parts)-componentCount:], "/")
}

// ParseRepository returns the owner and repository name of a remote URL.
// The last two path components are used, so nested groups resolve to their
// innermost namespace.
func ParseRepository(remoteURL string) (string, string, error) {
	path, err := remotePath(strings.TrimSpace(remoteURL))
	if err != nil {
		return "", "", err
	}

	path = strings.Trim(path, "/")
	path = strings.TrimSuffix(path, ".git")
	if strings.Count(path, "/")+1 < repositoryParts {
		return "", "", fmt.Errorf("%w: %q", errRepositoryUnresolved, remoteURL)
	}

	owner, repo, _ := strings.Cut(ExtractPathComponents(path, repositoryParts), "/")
	if owner == "" || repo == "" {
		return "", "", fmt.Errorf("%w: %q", errRepositoryUnresolved, remoteURL)
	}

	return owner, repo, nil
}

// remotePath returns the path part of a URL or SCP-like SSH address.
func remotePath(remoteURL string) (string, error) {
	if strings.HasPrefix(remoteURL, "git@") {
		_, path, ok := strings.Cut(remoteURL, ":")
		if !ok {
			return "", fmt.Errorf("%w: %q", errRepositoryUnresolved, remoteURL)
		}
		return path, nil
	}

	if !strings.Contains(remoteURL, "://") {
		return "", fmt.Errorf("%w: %q", errRepositoryUnresolved, remoteURL)
	}
	u, err := url.Parse(remoteURL)
	if err != nil || u.Host == "" {
		return "", fmt.Errorf("%w: %q", errRepositoryUnresolved, remoteURL)
	}
	return u.Path, nil
}
