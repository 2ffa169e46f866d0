package security

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"sync"
)

var (
	// Token regex patterns compiled once using sync.Once.
	githubTokenRegex       *regexp.Regexp
	githubFineGrainedRegex *regexp.Regexp
	accessTokenFieldRegex  *regexp.Regexp
	bearerTokenRegex       *regexp.Regexp
	authHeaderRegex        *regexp.Regexp
	regexOnce              sync.Once

	// errSanitized is the error type for sanitized errors.
	errSanitized = errors.New("sanitized error")
)

// compileRegexPatterns initializes all regex patterns once.
func compileRegexPatterns() {
	regexOnce.Do(func() {
		// GitHub tokens: ghp_/gho_/ghs_/ghu_ + 20+ chars
		githubTokenRegex = regexp.MustCompile(`gh[opsu]_[a-zA-Z0-9]{20,}`)

		// Fine-grained GitHub personal access tokens
		githubFineGrainedRegex = regexp.MustCompile(`github_pat_[a-zA-Z0-9_]{20,}`)

		// Travis access tokens and GitHub tokens carried in JSON bodies
		accessTokenFieldRegex = regexp.MustCompile(`"(access_token|github_token)"\s*:\s*"[^"]*"`)

		// Generic bearer tokens: long base64-like strings (40-200 chars)
		bearerTokenRegex = regexp.MustCompile(`\b[A-Za-z0-9+/=]{40,200}\b`)

		// Authorization headers with the bearer, basic or Travis "token" scheme
		authHeaderRegex = regexp.MustCompile(`(?i)authorization:\s*(?:bearer|basic|token)\s+[a-zA-Z0-9+/=_-]{10,}`)
	})
}

// SanitizeString removes sensitive tokens from a string.
// It redacts GitHub tokens, Travis access tokens in JSON payloads,
// authorization headers and generic bearer tokens.
//
// Thread Safety: Safe for concurrent use (regex patterns compiled via sync.Once).
func SanitizeString(s string) string {
	compileRegexPatterns()

	s = githubTokenRegex.ReplaceAllString(s, "[github-token-redacted]")
	s = githubFineGrainedRegex.ReplaceAllString(s, "[github-token-redacted]")
	s = accessTokenFieldRegex.ReplaceAllString(s, `"$1":"[redacted]"`)
	s = authHeaderRegex.ReplaceAllString(s, "Authorization: [redacted]")

	// Generic tokens last so the typed markers above stay readable.
	if strings.Contains(s, "[github-token-redacted]") {
		return s
	}
	return bearerTokenRegex.ReplaceAllString(s, "[token-redacted]")
}

// SanitizeError wraps an error with [SanitizeString] applied to its message.
// Returns nil if err is nil. The original error chain is not preserved;
// the returned error wraps an internal errSanitized sentinel.
func SanitizeError(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %s", errSanitized, SanitizeString(err.Error()))
}

// SanitizeMap redacts values whose keys match common sensitive names
// (token, password, secret, api_key, auth, credential, authorization).
// Non-sensitive string values are also passed through [SanitizeString].
// Returns nil if m is nil.
func SanitizeMap(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}

	sensitiveKeys := []string{
		"token", "password", "secret", "api_key", "apikey",
		"auth", "credential", "authorization",
	}

	result := make(map[string]any, len(m))
	for k, v := range m {
		lowerKey := strings.ToLower(k)
		isSensitive := false
		for _, sensitiveKey := range sensitiveKeys {
			if strings.Contains(lowerKey, sensitiveKey) {
				isSensitive = true
				break
			}
		}

		switch {
		case isSensitive:
			result[k] = maskRedacted
		default:
			if str, ok := v.(string); ok {
				result[k] = SanitizeString(str)
			} else {
				result[k] = v
			}
		}
	}

	return result
}
