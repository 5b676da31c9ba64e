package utils

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	got, err := ParseDate("2024-03-15")
	if err != nil {
		t.Fatalf("ParseDate returned error: %v", err)
	}
	want := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("ParseDate = %v, want %v", got, want)
	}
}

func TestValidateDateFormat(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"2024-01-01", true},
		{"2024-12-31", true},
		{"2024-13-01", false},
		{"01/01/2024", false},
		{"", false},
		{"2024-1-1", false},
	}

	for _, tt := range tests {
		if got := ValidateDateFormat(tt.input); got != tt.want {
			t.Errorf("ValidateDateFormat(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestValidateAlarm(t *testing.T) {
	valid := []string{"AM 9:30", "PM 12:05", "am 1:00", "PM 11:59"}
	for _, alarm := range valid {
		if err := ValidateAlarm(alarm); err != nil {
			t.Errorf("ValidateAlarm(%q) returned error: %v", alarm, err)
		}
	}

	invalid := []string{"9:30", "AM 13:00", "AM 0:30", "PM 9:60", "noon", "AM 9", ""}
	for _, alarm := range invalid {
		if err := ValidateAlarm(alarm); err == nil {
			t.Errorf("ValidateAlarm(%q) accepted invalid alarm", alarm)
		}
	}
}
