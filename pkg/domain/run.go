package domain

import (
	"errors"
	"fmt"
	"time"
)

// DateLayout is the calendar date format used by the upstream feeds and the store
const DateLayout = "2006-01-02"

// DateRange is an inclusive range of calendar dates
type DateRange struct {
	Start time.Time
	End   time.Time
}

// String returns range as "start..end"
func (r DateRange) String() string {
	return fmt.Sprintf("%s..%s", r.Start.Format(DateLayout), r.End.Format(DateLayout))
}

// Days returns number of calendar days in the range, inclusive
func (r DateRange) Days() int {
	return int(r.End.Sub(r.Start).Hours()/24) + 1
}

// Pipeline identifies one of the harvest pipelines
type Pipeline string

const (
	PipelineAPOD Pipeline = "apod"
	PipelineNEO  Pipeline = "neo"
)

// Totals holds row counts of the stored tables
type Totals struct {
	Pictures   int64
	Asteroids  int64
	Approaches int64
}

// RunResult describes the outcome of a single pipeline invocation
type RunResult struct {
	Pipeline   Pipeline
	ColdStart  bool
	Watermark  time.Time // zero on cold start
	Range      DateRange // planned days for apod, fetched window for neo
	Added      int       // new pictures or new asteroids, never approaches
	Skipped    int       // duplicates seen
	Approaches int       // new approach rows, neo only
	Failed     []string  // units that returned no data
	UpToDate   bool      // nothing left to plan, start is in the future
	Aborted    bool      // neo only, the single window failed to fetch
	Totals     Totals
}

// ParseDate parses a calendar date in DateLayout as UTC
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return t, nil
}

// TruncateDay strips the time of day, keeping the calendar date in UTC
func TruncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ErrNoData is matched by fetch failures where upstream answered with a non-success status.
// Such a unit yields zero items and is not fatal for the run.
var ErrNoData = errors.New("no data")
