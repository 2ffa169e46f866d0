package mocks

import (
	"sync"

	"github.com/sgaunet/ci-stats/internal/security"
	"github.com/sgaunet/ci-stats/pkg/platform"
)

// Prompter is a mock implementation of platform.Prompter with call tracking.
type Prompter struct {
	mu    sync.Mutex
	calls []MethodCall

	// Configurable responses
	ProAnswer     bool
	ProError      error
	TokenResponse security.SecureToken
	TokenError    error
}

// NewPrompter creates a mock prompter answering "no" and an empty token.
func NewPrompter() *Prompter {
	return &Prompter{calls: make([]MethodCall, 0)}
}

// ConfirmPro implements platform.Prompter.
func (m *Prompter) ConfirmPro() (bool, error) {
	m.trackCall("ConfirmPro", map[string]any{})
	return m.ProAnswer, m.ProError
}

// GitHubToken implements platform.Prompter.
func (m *Prompter) GitHubToken() (security.SecureToken, error) {
	m.trackCall("GitHubToken", map[string]any{})
	return m.TokenResponse, m.TokenError
}

// GetCallCount returns the number of times the specified method was called.
func (m *Prompter) GetCallCount(method string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	count := 0
	for _, call := range m.calls {
		if call.Method == method {
			count++
		}
	}
	return count
}

func (m *Prompter) trackCall(method string, args map[string]any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, MethodCall{Method: method, Args: args})
}

var _ platform.Prompter = (*Prompter)(nil)
