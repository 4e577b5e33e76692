package harvest

import (
	"time"

	"github.com/umputun/skyharvest/pkg/domain"
)

// DefaultEpoch is where both pipelines start on an empty store, shared to keep datasets aligned
var DefaultEpoch = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

// DefaultWindowDays is the maximum range the near-earth-object feed accepts
const DefaultWindowDays = 7

// PlannerConfig defines planner settings, zero values are replaced by defaults
type PlannerConfig struct {
	Epoch      time.Time
	WindowDays int
	Now        func() time.Time
}

// Planner turns watermarks into the next day or window to fetch.
// It never plans anything after the current date.
type Planner struct {
	epoch      time.Time
	windowDays int
	now        func() time.Time
}

// NewPlanner makes a planner
func NewPlanner(cfg PlannerConfig) *Planner {
	if cfg.Epoch.IsZero() {
		cfg.Epoch = DefaultEpoch
	}
	if cfg.WindowDays <= 0 {
		cfg.WindowDays = DefaultWindowDays
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &Planner{epoch: domain.TruncateDay(cfg.Epoch), windowDays: cfg.WindowDays, now: cfg.Now}
}

// Start returns the first day to fetch. Zero watermark means a cold start from the epoch,
// otherwise it is the day after the watermark.
func (p *Planner) Start(watermark time.Time) (start time.Time, cold bool) {
	if watermark.IsZero() {
		return p.epoch, true
	}
	return domain.TruncateDay(watermark).AddDate(0, 0, 1), false
}

// Today returns the current calendar date
func (p *Planner) Today() time.Time {
	return domain.TruncateDay(p.now())
}

// Future checks if the day is after the current date
func (p *Planner) Future(day time.Time) bool {
	return domain.TruncateDay(day).After(p.Today())
}

// Window returns the inclusive window starting at start. The end is clamped to today.
// Returns false if start itself is in the future and there is nothing to fetch.
func (p *Planner) Window(start time.Time) (domain.DateRange, bool) {
	start = domain.TruncateDay(start)
	if p.Future(start) {
		return domain.DateRange{Start: start, End: start}, false
	}
	end := start.AddDate(0, 0, p.windowDays-1)
	if today := p.Today(); end.After(today) {
		end = today
	}
	return domain.DateRange{Start: start, End: end}, true
}
