package stats

import (
	"fmt"
	"time"

	"github.com/sgaunet/bullets"
	"github.com/sgaunet/ci-stats/internal/logger"
	"github.com/sgaunet/ci-stats/internal/timeutil"
	"github.com/sgaunet/ci-stats/pkg/builds"
)

// unknownStart is shown for builds that never reported a start time.
const unknownStart = "unknown"

// DurationHumanizer formats a build duration, e.g. "2 minutes".
type DurationHumanizer func(d time.Duration) string

// RelativeTimeHumanizer formats then relative to now, e.g. "3 days ago".
type RelativeTimeHumanizer func(then, now time.Time) string

// LineKind distinguishes the gradient bands from build rows.
type LineKind int

// Line kinds of a [Report].
const (
	LineBand LineKind = iota
	LineBuild
)

// Line is one line of the chart.
type Line struct {
	Kind LineKind
	Bar  Bar
	// Build fields, empty for bands.
	Number   string
	Duration string
	Started  string
}

// Report is the rendered chart: a header band, one row per passed build in
// fetch order, and a footer band.
type Report struct {
	Summary Summary
	Lines   []Line
	Legend  string
	// Skipped counts malformed records left out of the chart.
	Skipped int
}

// Rows returns the build lines of the report.
func (r *Report) Rows() []Line {
	rows := make([]Line, 0, len(r.Lines))
	for _, l := range r.Lines {
		if l.Kind == LineBuild {
			rows = append(rows, l)
		}
	}
	return rows
}

// Renderer builds a [Report] from fetched builds.
type Renderer struct {
	humanizeDuration DurationHumanizer
	humanizeSince    RelativeTimeHumanizer
	now              func() time.Time
	log              *bullets.Logger
}

// Option configures a [Renderer].
type Option func(*Renderer)

// WithDurationHumanizer replaces the duration formatter.
func WithDurationHumanizer(h DurationHumanizer) Option {
	return func(r *Renderer) {
		r.humanizeDuration = h
	}
}

// WithRelativeTimeHumanizer replaces the recency formatter.
func WithRelativeTimeHumanizer(h RelativeTimeHumanizer) Option {
	return func(r *Renderer) {
		r.humanizeSince = h
	}
}

// WithClock sets the source of the current time used for recency.
func WithClock(now func() time.Time) Option {
	return func(r *Renderer) {
		r.now = now
	}
}

// WithLogger sets the logger used to report skipped records.
func WithLogger(log *bullets.Logger) Option {
	return func(r *Renderer) {
		r.log = log
	}
}

// NewRenderer creates a renderer using the timeutil humanizers and the wall clock.
func NewRenderer(opts ...Option) *Renderer {
	r := &Renderer{
		humanizeDuration: timeutil.HumanizeDuration,
		humanizeSince:    timeutil.HumanizeSince,
		now:              time.Now,
		log:              logger.NoLogger(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render charts the passed builds among all.
//
// It returns [ErrEmptyResultSet] and no report when no passed build is left
// after dropping malformed records.
func (r *Renderer) Render(all []builds.Build) (*Report, error) {
	passed, skipped := Passed(all)
	if skipped > 0 {
		r.log.Warn(fmt.Sprintf("Skipped %d malformed build records", skipped))
	}

	summary, err := Summarize(passed)
	if err != nil {
		return nil, err
	}

	now := r.now()
	lines := make([]Line, 0, len(passed)+2)
	lines = append(lines, Line{Kind: LineBand, Bar: summary.Band()})

	for _, b := range passed {
		lines = append(lines, Line{
			Kind:     LineBuild,
			Bar:      summary.Row(Scale(b.Seconds())),
			Number:   b.Number,
			Duration: r.humanizeDuration(time.Duration(b.Seconds()) * time.Second),
			Started:  r.started(b, now),
		})
	}

	lines = append(lines, Line{Kind: LineBand, Bar: summary.Band()})

	return &Report{
		Summary: summary,
		Lines:   lines,
		Legend:  r.legend(summary),
		Skipped: skipped,
	}, nil
}

func (r *Renderer) started(b builds.Build, now time.Time) string {
	if b.StartedAt == nil || b.StartedAt.IsZero() {
		return unknownStart
	}
	return r.humanizeSince(*b.StartedAt, now)
}

func (r *Renderer) legend(s Summary) string {
	noun := "builds"
	if s.Count == 1 {
		noun = "build"
	}
	return fmt.Sprintf("%d passed %s · min %s · avg %s · max %s",
		s.Count, noun,
		r.humanizeDuration(time.Duration(s.MinSeconds)*time.Second),
		r.humanizeDuration(time.Duration(s.AvgSeconds)*time.Second),
		r.humanizeDuration(time.Duration(s.MaxSeconds)*time.Second),
	)
}
