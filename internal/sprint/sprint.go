// Package sprint is the pure sprint-boundary calculator. Every sprint
// assignment in the system (sync tagging, reporting) goes through it so
// the answer to "which sprint does this timestamp belong to" is the same
// everywhere. It performs no I/O and is safe for concurrent use.
package sprint

import (
	"fmt"
	"time"
)

// Config defines the sprint grid for one repository.
type Config struct {
	// StartWeekday is the weekday each sprint starts on (Sunday=0).
	StartWeekday time.Weekday
	// DurationWeeks is 1 or 2.
	DurationWeeks int
	// BaseDate anchors sprint number 1. It is snapped backward to the
	// configured weekday at midnight by NewCalculator.
	BaseDate time.Time
}

// Sprint is one numbered period. Numbers are normally >= 1; timestamps
// before the base date produce numbers <= 0 rather than being clamped.
type Sprint struct {
	Number    int
	Period    Period
	IsCurrent bool
}

// Period is an inclusive [Start, End] range: Start is midnight of the
// first day, End is 23:59:59.999 of the last day.
type Period struct {
	Start time.Time
	End   time.Time
}

// Contains is inclusive on both ends.
func (p Period) Contains(t time.Time) bool {
	return !t.Before(p.Start) && !t.After(p.End)
}

// Format renders the period as a short date range, e.g. "1/6(Sat) - 1/12(Fri)".
func (p Period) Format() string {
	return fmt.Sprintf("%s - %s", formatDay(p.Start), formatDay(p.End))
}

func formatDay(t time.Time) string {
	return fmt.Sprintf("%d/%d(%s)", int(t.Month()), t.Day(), t.Format("Mon"))
}

type Calculator struct {
	startWeekday  time.Weekday
	durationWeeks int
	base          time.Time
}

// NewCalculator validates cfg and normalizes the base date to the start
// of the sprint period containing it.
func NewCalculator(cfg Config) (*Calculator, error) {
	if cfg.StartWeekday < time.Sunday || cfg.StartWeekday > time.Saturday {
		return nil, fmt.Errorf("start weekday %d out of range [0,6]", cfg.StartWeekday)
	}
	if cfg.DurationWeeks != 1 && cfg.DurationWeeks != 2 {
		return nil, fmt.Errorf("duration %d weeks not supported, want 1 or 2", cfg.DurationWeeks)
	}
	if cfg.BaseDate.IsZero() {
		return nil, fmt.Errorf("base date is zero")
	}

	return &Calculator{
		startWeekday:  cfg.StartWeekday,
		durationWeeks: cfg.DurationWeeks,
		base:          snapToWeekStart(cfg.BaseDate, cfg.StartWeekday),
	}, nil
}

// Number returns the sprint number containing date. Sprint 1 starts at
// the normalized base date; earlier dates yield numbers <= 0 via floor
// division, not truncation toward zero.
func (c *Calculator) Number(date time.Time) int {
	normalized := snapToWeekStart(date, c.startWeekday)
	days := daysBetween(c.base, normalized)
	return floorDiv(days, c.durationWeeks*7) + 1
}

// Period returns the inclusive date range of sprint n.
func (c *Calculator) Period(n int) Period {
	start := c.base.AddDate(0, 0, (n-1)*c.durationWeeks*7)
	lastDay := start.AddDate(0, 0, c.durationWeeks*7-1)
	end := time.Date(lastDay.Year(), lastDay.Month(), lastDay.Day(),
		23, 59, 59, 999*int(time.Millisecond), lastDay.Location())
	return Period{Start: start, End: end}
}

// Current returns the sprint containing now.
func (c *Calculator) Current(now time.Time) Sprint {
	return c.WithOffset(now, 0)
}

// WithOffset returns the sprint offset periods away from the one
// containing now. IsCurrent is set only for offset 0.
func (c *Calculator) WithOffset(now time.Time, offset int) Sprint {
	n := c.Number(now) + offset
	return Sprint{
		Number:    n,
		Period:    c.Period(n),
		IsCurrent: offset == 0,
	}
}

// snapToWeekStart moves t backward to the most recent occurrence of
// weekday (possibly t itself) and truncates to midnight.
func snapToWeekStart(t time.Time, weekday time.Weekday) time.Time {
	back := (int(t.Weekday()) - int(weekday) + 7) % 7
	d := t.AddDate(0, 0, -back)
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, d.Location())
}

// daysBetween counts calendar days from a to b. Both arguments are
// midnights; the count goes through UTC day numbers so DST transitions
// cannot skew it.
func daysBetween(a, b time.Time) int {
	au := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	bu := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(bu.Sub(au) / (24 * time.Hour))
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
