package stats_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/sgaunet/ci-stats/pkg/builds"
	"github.com/sgaunet/ci-stats/pkg/stats"
	"github.com/sgaunet/ci-stats/testing/fixtures"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRenderer() *stats.Renderer {
	return stats.NewRenderer(
		stats.WithClock(func() time.Time { return fixtures.ReferenceTime }),
		stats.WithDurationHumanizer(func(d time.Duration) string {
			return fmt.Sprintf("%ds", int64(d/time.Second))
		}),
		stats.WithRelativeTimeHumanizer(func(then, now time.Time) string {
			return fmt.Sprintf("%s ago", now.Sub(then))
		}),
	)
}

func TestRender_EndToEnd(t *testing.T) {
	report, err := newTestRenderer().Render(fixtures.PassedBuilds(3, 30, 90, 150))
	require.NoError(t, err)

	assert.Equal(t, 1, report.Summary.Min)
	assert.Equal(t, 3, report.Summary.Avg)
	assert.Equal(t, 5, report.Summary.Max)

	require.Len(t, report.Lines, 5)
	header, footer := report.Lines[0], report.Lines[4]
	assert.Equal(t, stats.LineBand, header.Kind)
	assert.Equal(t, stats.LineBand, footer.Kind)
	assert.Equal(t, header, footer, "header and footer bands are identical")

	assert.Equal(t, 6, header.Bar.Width())
	assert.Equal(t, 1, header.Bar[0].Width)
	assert.Equal(t, 2, header.Bar[1].Width)
	assert.Equal(t, 3, header.Bar[2].Width)

	rows := report.Rows()
	require.Len(t, rows, 3)
	assert.Equal(t, "30s", rows[0].Duration)
	assert.Equal(t, "90s", rows[1].Duration)
	assert.Equal(t, "150s", rows[2].Duration)
	for _, row := range rows {
		assert.Equal(t, 6, row.Bar.Width())
		assert.Equal(t, "1h0m0s ago", row.Started)
	}
	assert.Equal(t, "3 passed builds · min 30s · avg 90s · max 150s", report.Legend)
}

func TestRender_PreservesFetchOrder(t *testing.T) {
	report, err := newTestRenderer().Render(fixtures.PassedBuilds(30, 90, 30, 600))
	require.NoError(t, err)

	rows := report.Rows()
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"90s", "30s", "600s"}, []string{rows[0].Duration, rows[1].Duration, rows[2].Duration})
	assert.Equal(t, []string{"30", "29", "28"}, []string{rows[0].Number, rows[1].Number, rows[2].Number})

	// The row split point follows each build's own scaled duration.
	assert.Equal(t, 2, rows[0].Bar[1].Width)  // 3 - 1
	assert.Equal(t, 0, rows[1].Bar[1].Width)  // 1 - 1
	assert.Equal(t, 19, rows[2].Bar[1].Width) // 20 - 1
}

func TestRender_EmptyResultSet(t *testing.T) {
	tests := []struct {
		name   string
		builds []builds.Build
	}{
		{"no builds", nil},
		{"no passed builds", []builds.Build{
			fixtures.BuildWithState(2, builds.StateFailed, 60),
			fixtures.BuildWithState(1, builds.StateErrored, 60),
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report, err := newTestRenderer().Render(tt.builds)
			require.ErrorIs(t, err, stats.ErrEmptyResultSet)
			assert.Nil(t, report, "no chart output on an empty set")
		})
	}
}

func TestRender_FiltersNonPassedBuilds(t *testing.T) {
	all := []builds.Build{
		fixtures.PassedBuild(4, 60),
		fixtures.BuildWithState(3, builds.StateFailed, 6000),
		fixtures.PassedBuild(2, 120),
	}

	report, err := newTestRenderer().Render(all)
	require.NoError(t, err)

	assert.Len(t, report.Rows(), 2)
	assert.Equal(t, 4, report.Summary.Max, "failed builds do not stretch the scale")
}

func TestRender_SkipsMalformedRecords(t *testing.T) {
	broken := fixtures.PassedBuild(2, 0)
	broken.Duration = nil

	report, err := newTestRenderer().Render([]builds.Build{fixtures.PassedBuild(3, 60), broken})
	require.NoError(t, err)
	assert.Equal(t, 1, report.Skipped)
	assert.Len(t, report.Rows(), 1)
	assert.Equal(t, "1 passed build · min 60s · avg 60s · max 60s", report.Legend)
}

func TestRender_UnknownStart(t *testing.T) {
	b := fixtures.PassedBuild(1, 60)
	b.StartedAt = nil

	report, err := newTestRenderer().Render([]builds.Build{b})
	require.NoError(t, err)
	assert.Equal(t, "unknown", report.Rows()[0].Started)
}

func TestRender_DefaultHumanizers(t *testing.T) {
	started := fixtures.ReferenceTime.Add(-3 * 24 * time.Hour)
	b := fixtures.PassedBuild(1, 150)
	b.StartedAt = &started

	r := stats.NewRenderer(stats.WithClock(func() time.Time { return fixtures.ReferenceTime }))
	report, err := r.Render([]builds.Build{b})
	require.NoError(t, err)

	row := report.Rows()[0]
	assert.Equal(t, "3 minutes", row.Duration, "150s rounds to the nearest minute")
	assert.Equal(t, "3 days ago", row.Started)
}
