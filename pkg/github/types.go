package github

import (
	"strconv"
	"time"

	"github.com/google/go-github/v69/github"
	"github.com/sgaunet/ci-stats/pkg/builds"
)

// Constants for GitHub API operations.
const (
	// DefaultPerPage is the number of workflow runs requested per page.
	DefaultPerPage = 100

	conclusionSuccess   = "success"
	conclusionFailure   = "failure"
	conclusionCancelled = "cancelled"
	createdAtOrBefore   = "<="
)

// runStatus maps a build state to the status filter of the workflow runs endpoint.
func runStatus(state builds.State) string {
	switch state {
	case builds.StatePassed:
		return conclusionSuccess
	case builds.StateFailed:
		return conclusionFailure
	case builds.StateCanceled:
		return conclusionCancelled
	default:
		return string(state)
	}
}

// runState maps a workflow run conclusion to a build state.
func runState(run *github.WorkflowRun) builds.State {
	switch run.GetConclusion() {
	case conclusionSuccess:
		return builds.StatePassed
	case conclusionFailure:
		return builds.StateFailed
	case conclusionCancelled:
		return builds.StateCanceled
	case "":
		return builds.StateStarted
	default:
		return builds.StateErrored
	}
}

// toBuild converts a workflow run. The duration spans from the run start
// to its last update, which for a completed run is its completion.
func toBuild(run *github.WorkflowRun) builds.Build {
	b := builds.Build{
		Number: strconv.FormatInt(run.GetID(), 10),
		State:  runState(run),
	}

	started := run.GetRunStartedAt().Time
	if started.IsZero() {
		return b
	}
	b.StartedAt = &started

	updated := run.GetUpdatedAt().Time
	if !updated.IsZero() && !updated.Before(started) {
		seconds := int64(updated.Sub(started) / time.Second)
		b.Duration = &seconds
	}
	return b
}
