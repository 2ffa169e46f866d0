// Package timeutil provides human-readable duration and recency formatting.
//
// Both helpers share one magnitude table built on go-humanize, so that a
// build lasting "2 minutes" and a build started "2 minutes ago" read alike.
// Values are rounded to the nearest unit, as moment's humanize does.
package timeutil

import (
	"math"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

// Calendar units averaged over the 400-year Gregorian cycle.
const (
	day   = 24 * time.Hour
	month = 146097 * day / 4800
	year  = 12 * month
)

// magnitudes end each bucket where the value rounded to the bucket's unit
// reaches the next threshold: 45 seconds, 45 minutes, 22 hours, 26 days,
// 11 months. Singular buckets end at one and a half units.
var magnitudes = []humanize.RelTimeMagnitude{
	{D: 44*time.Second + 500*time.Millisecond, Format: "a few seconds %s", DivBy: 1},
	{D: 90 * time.Second, Format: "a minute %s", DivBy: 1},
	{D: 44*time.Minute + 30*time.Second, Format: "%d minutes %s", DivBy: time.Minute},
	{D: 90 * time.Minute, Format: "an hour %s", DivBy: 1},
	{D: 21*time.Hour + 30*time.Minute, Format: "%d hours %s", DivBy: time.Hour},
	{D: 36 * time.Hour, Format: "a day %s", DivBy: 1},
	{D: 25*day + 12*time.Hour, Format: "%d days %s", DivBy: day},
	{D: month * 3 / 2, Format: "a month %s", DivBy: 1},
	{D: month * 21 / 2, Format: "%d months %s", DivBy: month},
	{D: year * 3 / 2, Format: "a year %s", DivBy: 1},
	{D: time.Duration(math.MaxInt64), Format: "%d years %s", DivBy: year},
}

// HumanizeDuration formats a duration as an approximate length of time.
//
// Examples:
//   - "a few seconds" for 20s
//   - "a minute" for 75s
//   - "2 minutes" for 90s
//   - "5 minutes" for 4m30s
//   - "2 hours" for 100m
func HumanizeDuration(d time.Duration) string {
	if d < 0 {
		d = -d
	}
	var base time.Time
	return strings.TrimSpace(relTime(base, base.Add(d), "", ""))
}

// HumanizeSince formats then relative to now, e.g. "3 days ago" or "an hour from now".
func HumanizeSince(then, now time.Time) string {
	return relTime(then, now, "ago", "from now")
}

// relTime picks the bucket of the distance between a and b, then lets
// go-humanize format the distance pushed by half a unit so that the
// truncating division rounds to the nearest unit.
func relTime(a, b time.Time, albl, blbl string) string {
	diff := b.Sub(a)
	if diff < 0 {
		diff = -diff
	}

	mag := magnitudes[len(magnitudes)-1]
	for _, m := range magnitudes {
		if diff < m.D {
			mag = m
			break
		}
	}

	half := mag.DivBy / 2
	if a.After(b) {
		a = a.Add(half)
	} else {
		b = b.Add(half)
	}
	single := []humanize.RelTimeMagnitude{{D: time.Duration(math.MaxInt64), Format: mag.Format, DivBy: mag.DivBy}}
	return humanize.CustomRelTime(a, b, albl, blbl, single)
}
