package utils

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/haebit/haebit/internal/constants"
)

// Today returns the current date string (YYYY-MM-DD) in the system local
// timezone.
func Today() string {
	return time.Now().Format(constants.DateFormat)
}

// ParseDate parses a date string in the standard YYYY-MM-DD format. The
// result is midnight UTC so that comparisons stay at day granularity.
func ParseDate(dateStr string) (time.Time, error) {
	return time.ParseInLocation(constants.DateFormat, dateStr, time.UTC)
}

// ValidateDateFormat checks if the string matches the standard date format.
func ValidateDateFormat(dateStr string) bool {
	_, err := ParseDate(dateStr)
	return err == nil
}

// ValidateAlarm checks an alarm display string of the form "AM 9:30" or
// "PM 12:05": a period, a 12-hour clock hour, and a minute. The alarm is
// opaque to due-date evaluation; this only guards what gets persisted.
func ValidateAlarm(alarm string) error {
	fields := strings.Fields(alarm)
	if len(fields) != 2 {
		return fmt.Errorf("alarm must look like \"AM 9:30\", got %q", alarm)
	}

	period := strings.ToUpper(fields[0])
	if period != "AM" && period != "PM" {
		return fmt.Errorf("alarm period must be AM or PM, got %q", fields[0])
	}

	clock := strings.SplitN(fields[1], ":", 2)
	if len(clock) != 2 {
		return fmt.Errorf("alarm time must look like H:MM, got %q", fields[1])
	}
	hour, err := strconv.Atoi(clock[0])
	if err != nil || hour < 1 || hour > 12 {
		return fmt.Errorf("alarm hour must be 1-12, got %q", clock[0])
	}
	minute, err := strconv.Atoi(clock[1])
	if err != nil || minute < 0 || minute > 59 {
		return fmt.Errorf("alarm minute must be 00-59, got %q", clock[1])
	}

	return nil
}
