package builds_test

import (
	"testing"

	"github.com/sgaunet/ci-stats/pkg/builds"
	"github.com/sgaunet/ci-stats/testing/fixtures"
	"github.com/stretchr/testify/assert"
)

func TestBuild_Complete(t *testing.T) {
	negative := int64(-5)

	tests := []struct {
		name  string
		build builds.Build
		want  bool
	}{
		{"passed with duration", fixtures.PassedBuild(1, 60), true},
		{"zero duration", fixtures.PassedBuild(1, 0), true},
		{"failed with duration", fixtures.BuildWithState(1, builds.StateFailed, 60), true},
		{"missing duration", builds.Build{Number: "1", State: builds.StatePassed}, false},
		{"negative duration", builds.Build{Number: "1", State: builds.StatePassed, Duration: &negative}, false},
		{"missing state", builds.Build{Number: "1", Duration: fixtures.PassedBuild(1, 60).Duration}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.build.Complete())
		})
	}
}

func TestBuild_Passed(t *testing.T) {
	assert.True(t, fixtures.PassedBuild(1, 60).Passed())
	for _, state := range []builds.State{builds.StateFailed, builds.StateErrored, builds.StateCanceled, builds.StateStarted, ""} {
		assert.False(t, builds.Build{State: state}.Passed(), "state %q", state)
	}
}

func TestBuild_Seconds(t *testing.T) {
	assert.Equal(t, int64(150), fixtures.PassedBuild(1, 150).Seconds())
	assert.Zero(t, builds.Build{}.Seconds())
}
