// Package recurrence decides whether a habit is due on a given calendar
// day. It is pure and stateless: every function takes plain values, mutates
// nothing, and is safe to call from any number of goroutines.
package recurrence

import (
	"errors"
	"fmt"
	"time"

	"github.com/haebit/haebit/internal/constants"
	"github.com/haebit/haebit/internal/models"
)

var (
	// ErrInvalidDate indicates a start, end, or reference date that cannot
	// be parsed as a YYYY-MM-DD calendar date.
	ErrInvalidDate = errors.New("invalid date")

	// ErrInvalidSelector indicates a weekday or day-of-month selector
	// outside its allowed domain.
	ErrInvalidSelector = errors.New("invalid selector")

	// ErrEmptySelector indicates a weekly or monthly rule with no selector
	// values. Rules are only allowed to be empty while being composed, not
	// once persisted.
	ErrEmptySelector = errors.New("empty selector set")
)

// DueOn reports whether the habit is due on ref. The habit's start/end
// range is inclusive on both bounds and compared at day granularity; the
// time-of-day component of ref is ignored. Archival, deletion, and the
// completed flag play no part in the result.
//
// A monthly selector that exceeds the day count of ref's month (31 in
// February, say) simply never matches in that month.
func DueOn(habit models.Habit, ref time.Time) (bool, error) {
	day := truncate(ref)

	start, err := parseDate(habit.StartDate)
	if err != nil {
		return false, fmt.Errorf("%w: start date %q", ErrInvalidDate, habit.StartDate)
	}
	if day.Before(start) {
		return false, nil
	}

	if habit.EndDate != "" {
		end, err := parseDate(habit.EndDate)
		if err != nil {
			return false, fmt.Errorf("%w: end date %q", ErrInvalidDate, habit.EndDate)
		}
		if day.After(end) {
			return false, nil
		}
	}

	switch habit.Repeat.Kind {
	case models.RepeatDaily:
		return true, nil
	case models.RepeatWeekly:
		for _, wd := range habit.Repeat.Weekdays {
			if day.Weekday() == wd {
				return true, nil
			}
		}
		return false, nil
	case models.RepeatMonthly:
		for _, d := range habit.Repeat.MonthDays {
			if day.Day() == d {
				return true, nil
			}
		}
		return false, nil
	default:
		return false, fmt.Errorf("unknown repeat kind %q", habit.Repeat.Kind)
	}
}

// ToggleCompletion returns a copy of the habit with Completed negated and
// every other field untouched. Persisting the flipped flag is the caller's
// concern.
func ToggleCompletion(habit models.Habit) models.Habit {
	habit.Completed = !habit.Completed
	return habit
}

// NewRule builds a validated repeat rule. Weekly and monthly rules must
// carry a non-empty, in-domain selector set; selectors are deduplicated
// preserving first-occurrence order.
func NewRule(kind models.RepeatKind, weekdays []time.Weekday, monthDays []int) (models.Repeat, error) {
	switch kind {
	case models.RepeatDaily:
		return models.Repeat{Kind: models.RepeatDaily}, nil
	case models.RepeatWeekly:
		if len(weekdays) == 0 {
			return models.Repeat{}, fmt.Errorf("%w: weekly rule", ErrEmptySelector)
		}
		days, err := dedupeWeekdays(weekdays)
		if err != nil {
			return models.Repeat{}, err
		}
		return models.Repeat{Kind: models.RepeatWeekly, Weekdays: days}, nil
	case models.RepeatMonthly:
		if len(monthDays) == 0 {
			return models.Repeat{}, fmt.Errorf("%w: monthly rule", ErrEmptySelector)
		}
		days, err := dedupeMonthDays(monthDays)
		if err != nil {
			return models.Repeat{}, err
		}
		return models.Repeat{Kind: models.RepeatMonthly, MonthDays: days}, nil
	default:
		return models.Repeat{}, fmt.Errorf("%w: unknown repeat kind %q", ErrInvalidSelector, kind)
	}
}

// ValidateRule checks an already-constructed rule, for records arriving
// from storage or deserialization.
func ValidateRule(r models.Repeat) error {
	_, err := NewRule(r.Kind, r.Weekdays, r.MonthDays)
	return err
}

func dedupeWeekdays(weekdays []time.Weekday) ([]time.Weekday, error) {
	seen := make(map[time.Weekday]bool, len(weekdays))
	var out []time.Weekday
	for _, wd := range weekdays {
		if wd < time.Sunday || wd > time.Saturday {
			return nil, fmt.Errorf("%w: weekday %d", ErrInvalidSelector, int(wd))
		}
		if seen[wd] {
			continue
		}
		seen[wd] = true
		out = append(out, wd)
	}
	return out, nil
}

func dedupeMonthDays(days []int) ([]int, error) {
	seen := make(map[int]bool, len(days))
	var out []int
	for _, d := range days {
		if d < 1 || d > 31 {
			return nil, fmt.Errorf("%w: day of month %d", ErrInvalidSelector, d)
		}
		if seen[d] {
			continue
		}
		seen[d] = true
		out = append(out, d)
	}
	return out, nil
}

func parseDate(s string) (time.Time, error) {
	return time.ParseInLocation(constants.DateFormat, s, time.UTC)
}

func truncate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
