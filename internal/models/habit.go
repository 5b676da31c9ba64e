package models

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

type RepeatKind string

const (
	RepeatDaily   RepeatKind = "daily"
	RepeatWeekly  RepeatKind = "weekly"
	RepeatMonthly RepeatKind = "monthly"
)

// Repeat is the recurrence rule attached to a habit. Exactly one selector
// set is meaningful for a given kind: Weekdays for weekly rules, MonthDays
// for monthly rules. Daily rules carry no selector.
type Repeat struct {
	Kind      RepeatKind     `json:"kind"`
	Weekdays  []time.Weekday `json:"weekdays,omitempty"`
	MonthDays []int          `json:"month_days,omitempty"`
}

// Habit represents a recurring practice to track.
//
// Completed is a single mutable flag on the record, not per-day history:
// toggling it has no notion of which day it applies to beyond the current
// observation. Dates are stored as YYYY-MM-DD strings; an empty EndDate
// means the habit has no end bound.
type Habit struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	StartDate  string     `json:"start_date"`
	EndDate    string     `json:"end_date,omitempty"`
	Repeat     Repeat     `json:"repeat"`
	Alarm      string     `json:"alarm,omitempty"` // display string, e.g. "AM 9:30"
	Completed  bool       `json:"completed"`
	CreatedAt  time.Time  `json:"created_at"`
	ArchivedAt *time.Time `json:"archived_at,omitempty"`
	DeletedAt  *time.Time `json:"deleted_at,omitempty"`
}

// SelectorCSV encodes the rule's selector set as a comma-joined integer
// list for storage (weekday numbers 0-6 for weekly, day-of-month 1-31 for
// monthly). Daily rules encode to the empty string.
func (r Repeat) SelectorCSV() string {
	var parts []string
	switch r.Kind {
	case RepeatWeekly:
		for _, wd := range r.Weekdays {
			parts = append(parts, strconv.Itoa(int(wd)))
		}
	case RepeatMonthly:
		for _, d := range r.MonthDays {
			parts = append(parts, strconv.Itoa(d))
		}
	}
	return strings.Join(parts, ",")
}

// RepeatFromColumns rebuilds a Repeat from its stored kind and selector
// columns.
func RepeatFromColumns(kind, selectorCSV string) (Repeat, error) {
	r := Repeat{Kind: RepeatKind(kind)}
	switch r.Kind {
	case RepeatDaily:
		return r, nil
	case RepeatWeekly, RepeatMonthly:
	default:
		return Repeat{}, fmt.Errorf("unknown repeat kind %q", kind)
	}

	if selectorCSV == "" {
		return r, nil
	}
	for _, part := range strings.Split(selectorCSV, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return Repeat{}, fmt.Errorf("invalid selector value %q: %w", part, err)
		}
		if r.Kind == RepeatWeekly {
			r.Weekdays = append(r.Weekdays, time.Weekday(n))
		} else {
			r.MonthDays = append(r.MonthDays, n)
		}
	}
	return r, nil
}
