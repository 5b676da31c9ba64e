package recurrence

import (
	"errors"
	"reflect"
	"testing"
	"time"
)

func TestNormalizeWeekdays(t *testing.T) {
	tests := []struct {
		name    string
		input   []string
		want    []time.Weekday
		wantErr bool
	}{
		{
			name:  "short names",
			input: []string{"mon", "wed", "fri"},
			want:  []time.Weekday{time.Monday, time.Wednesday, time.Friday},
		},
		{
			name:  "full names mixed case",
			input: []string{"Monday", "SATURDAY"},
			want:  []time.Weekday{time.Monday, time.Saturday},
		},
		{
			name:  "numbers",
			input: []string{"0", "6"},
			want:  []time.Weekday{time.Sunday, time.Saturday},
		},
		{
			name:  "duplicates removed preserving order",
			input: []string{"wed", "mon", "wed", "3"},
			want:  []time.Weekday{time.Wednesday, time.Monday},
		},
		{
			name:    "unknown name",
			input:   []string{"mon", "someday"},
			wantErr: true,
		},
		{
			name:    "number out of range",
			input:   []string{"7"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeWeekdays(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidSelector) {
					t.Errorf("NormalizeWeekdays(%v) error = %v, want ErrInvalidSelector", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("NormalizeWeekdays(%v) returned error: %v", tt.input, err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("NormalizeWeekdays(%v) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeWeekdays_Idempotent(t *testing.T) {
	first, err := NormalizeWeekdays([]string{"fri", "tue", "tue"})
	if err != nil {
		t.Fatalf("NormalizeWeekdays returned error: %v", err)
	}

	var asStrings []string
	for _, wd := range first {
		asStrings = append(asStrings, wd.String())
	}
	second, err := NormalizeWeekdays(asStrings)
	if err != nil {
		t.Fatalf("Re-normalizing returned error: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("Normalization not idempotent: %v != %v", first, second)
	}
}

func TestNormalizeMonthDays(t *testing.T) {
	tests := []struct {
		name    string
		input   []string
		want    []int
		wantErr bool
	}{
		{"valid", []string{"1", "15", "31"}, []int{1, 15, 31}, false},
		{"duplicates removed", []string{"15", "1", "15"}, []int{15, 1}, false},
		{"whitespace tolerated", []string{" 3 ", "12"}, []int{3, 12}, false},
		{"zero rejected", []string{"0"}, nil, true},
		{"over 31 rejected", []string{"32"}, nil, true},
		{"non-numeric rejected", []string{"first"}, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeMonthDays(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidSelector) {
					t.Errorf("NormalizeMonthDays(%v) error = %v, want ErrInvalidSelector", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("NormalizeMonthDays(%v) returned error: %v", tt.input, err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("NormalizeMonthDays(%v) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestSplitSelector(t *testing.T) {
	got := SplitSelector(" mon, wed ,,fri ")
	want := []string{"mon", "wed", "fri"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SplitSelector = %v, want %v", got, want)
	}

	if parts := SplitSelector(""); parts != nil {
		t.Errorf("SplitSelector(\"\") = %v, want nil", parts)
	}
}
