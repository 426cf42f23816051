// Package milestone holds the milestone domain model and report building.
package milestone

import (
	"time"

	"github.com/zjrosen/achievements/internal/interval"
)

// Milestone is a labeled historical instant. Built once from config and
// never mutated during a run.
type Milestone struct {
	Label string
	Date  time.Time
}

// Clock abstracts time.Now so reports can be built deterministically in
// tests.
type Clock interface {
	Now() time.Time
}

// SystemClock implements Clock using the standard time package.
type SystemClock struct{}

// Now returns the current time.
func (SystemClock) Now() time.Time {
	return time.Now()
}

// Line is one milestone's computed report entry. When Err is set the
// interval is zero-valued and the line must not be printed as a count.
type Line struct {
	Label    string
	Interval interval.Interval
	Err      error
}

// Skipped reports whether the line failed the elapsed-time guard.
func (l Line) Skipped() bool {
	return l.Err != nil
}

// Report holds one line per configured milestone, in insertion order.
// Now is the single clock reading every line was computed against.
type Report struct {
	Now   time.Time
	Lines []Line
}

// BuildReport computes a report for the given milestones. The clock is
// read exactly once and the same instant is reused for every line, so
// the printed counts are consistent relative to each other. Milestones
// dated in the future produce a skipped line instead of a negative
// count.
func BuildReport(clock Clock, milestones []Milestone) Report {
	now := clock.Now()

	lines := make([]Line, 0, len(milestones))
	for _, m := range milestones {
		iv, err := interval.Elapsed(m.Date, now)
		lines = append(lines, Line{Label: m.Label, Interval: iv, Err: err})
	}
	return Report{Now: now, Lines: lines}
}
