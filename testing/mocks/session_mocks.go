// Package mocks provides call-tracking test doubles for ci-stats interfaces.
package mocks

import (
	"context"
	"sync"

	"github.com/sgaunet/ci-stats/pkg/builds"
)

// MethodCall represents a tracked method call with its parameters.
type MethodCall struct {
	Method string
	Args   map[string]any
}

// BuildSession is a mock implementation of builds.Session with call tracking.
//
// Pages are served in order, one per call. Once Pages is exhausted the session
// keeps returning RepeatPage when set, and an empty page otherwise.
type BuildSession struct {
	mu    sync.Mutex
	calls []MethodCall

	// Configurable responses
	Pages      [][]builds.Build
	RepeatPage []builds.Build
	// Errors maps a 1-based call index to the error returned by that call.
	Errors map[int]error
}

// NewBuildSession creates a mock session serving the given pages.
func NewBuildSession(pages ...[]builds.Build) *BuildSession {
	return &BuildSession{
		calls:  make([]MethodCall, 0),
		Pages:  pages,
		Errors: make(map[int]error),
	}
}

// Builds implements builds.Session.
func (m *BuildSession) Builds(_ context.Context, owner, repo string, query builds.Query) ([]builds.Build, error) {
	call := m.trackCall("Builds", map[string]any{
		"owner": owner,
		"repo":  repo,
		"state": query.State,
		"after": query.After,
	})

	m.mu.Lock()
	defer m.mu.Unlock()

	if err, ok := m.Errors[call]; ok {
		return nil, err
	}
	if call <= len(m.Pages) {
		return m.Pages[call-1], nil
	}
	return m.RepeatPage, nil
}

// GetCalls returns all tracked method calls.
func (m *BuildSession) GetCalls() []MethodCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]MethodCall{}, m.calls...)
}

// GetCallCount returns the number of times the specified method was called.
func (m *BuildSession) GetCallCount(method string) int {
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

// GetLastCall returns the last call to the specified method, or nil if not called.
func (m *BuildSession) GetLastCall(method string) *MethodCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := len(m.calls) - 1; i >= 0; i-- {
		if m.calls[i].Method == method {
			return &m.calls[i]
		}
	}
	return nil
}

// Cursors returns the "after" argument of every Builds call, in order.
func (m *BuildSession) Cursors() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	cursors := make([]string, 0, len(m.calls))
	for _, call := range m.calls {
		if call.Method == "Builds" {
			after, _ := call.Args["after"].(string)
			cursors = append(cursors, after)
		}
	}
	return cursors
}

// trackCall records a method call and returns its 1-based index among calls to the same method.
func (m *BuildSession) trackCall(method string, args map[string]any) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, MethodCall{
		Method: method,
		Args:   args,
	})
	count := 0
	for _, call := range m.calls {
		if call.Method == method {
			count++
		}
	}
	return count
}

// ProgressRecorder is a builds.ProgressReporter that records notifications.
type ProgressRecorder struct {
	mu        sync.Mutex
	Requested []int
	Received  map[int]int
}

// NewProgressRecorder creates an empty recorder.
func NewProgressRecorder() *ProgressRecorder {
	return &ProgressRecorder{Received: make(map[int]int)}
}

// PageRequested implements builds.ProgressReporter.
func (p *ProgressRecorder) PageRequested(page int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.Requested = append(p.Requested, page)
}

// PageReceived implements builds.ProgressReporter.
func (p *ProgressRecorder) PageReceived(page, count int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.Received[page] = count
}

// Ensure the mocks implement their interfaces.
var (
	_ builds.Session          = (*BuildSession)(nil)
	_ builds.ProgressReporter = (*ProgressRecorder)(nil)
)
