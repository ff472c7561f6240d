// Package scan implements the year-long search for sun and moon positions.
package scan

import (
	"iter"
	"time"
)

// Scan steps. Accurate trades runtime for granularity; the structure of the
// scan is identical.
const (
	StepNormal   = 15 * time.Minute
	StepAccurate = 2 * time.Minute
)

// Grid is a uniform sequence of UTC instants over the half-open window
// [Start, End). It is cheap to copy and can be iterated any number of times.
type Grid struct {
	Start time.Time
	End   time.Time
	Step  time.Duration
}

// YearGrid covers the whole calendar year: [Jan 1 00:00Z, next Jan 1 00:00Z).
func YearGrid(year int, step time.Duration) Grid {
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	return Grid{Start: start, End: start.AddDate(1, 0, 0), Step: step}
}

// Window covers [start, end) at the given step.
func Window(start, end time.Time, step time.Duration) Grid {
	return Grid{Start: start.UTC(), End: end.UTC(), Step: step}
}

// Len returns the number of instants the grid produces.
func (g Grid) Len() int {
	if g.Step <= 0 || !g.Start.Before(g.End) {
		return 0
	}
	span := g.End.Sub(g.Start)
	n := span / g.Step
	if span%g.Step != 0 {
		n++
	}
	return int(n)
}

// Instants yields the grid's instants in increasing order, starting at
// Start, stepping uniformly, excluding End. The sequence is restartable.
func (g Grid) Instants() iter.Seq[time.Time] {
	return func(yield func(time.Time) bool) {
		if g.Step <= 0 {
			return
		}
		for t := g.Start; t.Before(g.End); t = t.Add(g.Step) {
			if !yield(t) {
				return
			}
		}
	}
}
