// Package fixtures provides common test data structures for testing.
package fixtures

import (
	"strconv"
	"time"

	"github.com/sgaunet/ci-stats/pkg/builds"
)

// ReferenceTime is the fixed "now" used by rendering tests.
var ReferenceTime = time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC)

// PassedBuild returns a passed build of the given duration that started an hour
// before [ReferenceTime].
func PassedBuild(number int, seconds int64) builds.Build {
	started := ReferenceTime.Add(-time.Hour)
	return builds.Build{
		Number:    strconv.Itoa(number),
		State:     builds.StatePassed,
		Duration:  &seconds,
		StartedAt: &started,
	}
}

// BuildWithState returns a build in the given state.
func BuildWithState(number int, state builds.State, seconds int64) builds.Build {
	b := PassedBuild(number, seconds)
	b.State = state
	return b
}

// PassedBuilds returns passed builds with the given durations, numbered
// downward from firstNumber in the order given.
func PassedBuilds(firstNumber int, durations ...int64) []builds.Build {
	result := make([]builds.Build, len(durations))
	for i, d := range durations {
		result[i] = PassedBuild(firstNumber-i, d)
	}
	return result
}

// Page returns size passed builds numbered downward from firstNumber.
func Page(firstNumber, size int) []builds.Build {
	durations := make([]int64, size)
	for i := range durations {
		durations[i] = int64(60 * (i + 1))
	}
	return PassedBuilds(firstNumber, durations...)
}

// Pages returns count consecutive pages of the given size, continuing the
// numbering across pages as a CI service would.
func Pages(firstNumber, count, size int) [][]builds.Build {
	pages := make([][]builds.Build, count)
	for i := range pages {
		pages[i] = Page(firstNumber-i*size, size)
	}
	return pages
}
