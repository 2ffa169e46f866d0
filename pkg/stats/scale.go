// Package stats turns a list of builds into a duration chart.
//
// Durations are scaled to one character per [ScaleSeconds] seconds. The chart
// is described with abstract style segments so that the terminal package can
// decide how each style looks.
package stats

import (
	"errors"

	"github.com/sgaunet/ci-stats/pkg/builds"
)

// ScaleSeconds is the number of seconds represented by one chart cell.
const ScaleSeconds = 30

// ErrEmptyResultSet is returned when there is no passed build to chart.
var ErrEmptyResultSet = errors.New("no passed builds to compute statistics from")

// Scale converts a duration in seconds to chart cells, rounding down.
// Negative durations scale to zero.
func Scale(seconds int64) int {
	if seconds <= 0 {
		return 0
	}
	return int(seconds / ScaleSeconds)
}

// Summary holds the scaled extremes and mean of a set of passed builds.
type Summary struct {
	Count int
	Min   int
	Avg   int
	Max   int

	MinSeconds int64
	AvgSeconds int64
	MaxSeconds int64
}

// Width is the number of cells of every bar in the chart.
func (s Summary) Width() int {
	return s.Max + 1
}

// Summarize computes min, floor of the mean, and max of the scaled durations.
// Builds with an unknown duration are ignored.
func Summarize(passed []builds.Build) (Summary, error) {
	var (
		s          Summary
		sumScaled  int
		sumSeconds int64
	)

	for _, b := range passed {
		if b.Duration == nil {
			continue
		}
		seconds := b.Seconds()
		scaled := Scale(seconds)

		if s.Count == 0 || scaled < s.Min {
			s.Min = scaled
			s.MinSeconds = seconds
		}
		if s.Count == 0 || scaled > s.Max {
			s.Max = scaled
			s.MaxSeconds = seconds
		}
		sumScaled += scaled
		sumSeconds += seconds
		s.Count++
	}

	if s.Count == 0 {
		return Summary{}, ErrEmptyResultSet
	}

	s.Avg = sumScaled / s.Count
	s.AvgSeconds = sumSeconds / int64(s.Count)
	return s, nil
}

// Passed keeps the passed builds in their original order.
// Other states are dropped silently. Records without a state, and passed
// builds without a usable duration, are dropped and counted as skipped.
func Passed(all []builds.Build) ([]builds.Build, int) {
	passed := make([]builds.Build, 0, len(all))
	skipped := 0
	for _, b := range all {
		switch {
		case b.State == "":
			skipped++
		case !b.Passed():
		case !b.Complete():
			skipped++
		default:
			passed = append(passed, b)
		}
	}
	return passed, skipped
}
