package recurrence

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

var weekdayNames = map[string]time.Weekday{
	"sun":       time.Sunday,
	"sunday":    time.Sunday,
	"mon":       time.Monday,
	"monday":    time.Monday,
	"tue":       time.Tuesday,
	"tuesday":   time.Tuesday,
	"wed":       time.Wednesday,
	"wednesday": time.Wednesday,
	"thu":       time.Thursday,
	"thursday":  time.Thursday,
	"fri":       time.Friday,
	"friday":    time.Friday,
	"sat":       time.Saturday,
	"saturday":  time.Saturday,
}

// SplitSelector breaks raw selector input into parts. Input arrives either
// as a comma-joined string or as pre-split values that callers pass through
// unchanged; blank parts are dropped.
func SplitSelector(s string) []string {
	var parts []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			parts = append(parts, part)
		}
	}
	return parts
}

// NormalizeWeekdays converts raw weekday picks into the canonical weekday
// set: names ("mon", "monday") or numbers (0=Sunday through 6=Saturday)
// are accepted, case-insensitively. The result is deduplicated preserving
// first-occurrence order, so normalizing an already-normalized list is a
// no-op.
func NormalizeWeekdays(parts []string) ([]time.Weekday, error) {
	var weekdays []time.Weekday
	for _, part := range parts {
		part = strings.TrimSpace(strings.ToLower(part))
		if wd, ok := weekdayNames[part]; ok {
			weekdays = append(weekdays, wd)
			continue
		}
		num, err := strconv.Atoi(part)
		if err != nil || num < 0 || num > 6 {
			return nil, fmt.Errorf("%w: weekday %q", ErrInvalidSelector, part)
		}
		weekdays = append(weekdays, time.Weekday(num))
	}
	return dedupeWeekdays(weekdays)
}

// NormalizeMonthDays converts raw day-of-month picks into a validated,
// deduplicated integer set in [1,31].
func NormalizeMonthDays(parts []string) ([]int, error) {
	var days []int
	for _, part := range parts {
		num, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("%w: day of month %q", ErrInvalidSelector, part)
		}
		days = append(days, num)
	}
	return dedupeMonthDays(days)
}
