package utils

import (
	"errors"
	"testing"
	"time"
)

func TestParseShiftDate(t *testing.T) {
	got, err := ParseShiftDate("2025-06-15")
	if err != nil {
		t.Fatalf("ParseShiftDate: %v", err)
	}
	if got.Year() != 2025 || got.Month() != time.June || got.Day() != 15 {
		t.Errorf("parsed %v", got)
	}

	if _, err := ParseShiftDate("06/15/2025"); err == nil {
		t.Error("slash dates should be rejected")
	}
}

func TestParseEntryTs(t *testing.T) {
	now := time.Date(2025, 6, 15, 8, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		in      string
		want    time.Time
		wantErr bool
	}{
		{"Empty Defaults To Now", "", now, false},
		{"RFC3339", "2025-06-15T07:30:00Z", time.Date(2025, 6, 15, 7, 30, 0, 0, time.UTC), false},
		{"Legacy Layout", "2025-06-15 07:30:00", time.Date(2025, 6, 15, 7, 30, 0, 0, time.UTC), false},
		{"Garbage", "yesterday", time.Time{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseEntryTs(tt.in, now)
			if tt.wantErr {
				if !errors.Is(err, ErrBadTimestamp) {
					t.Errorf("err = %v, want ErrBadTimestamp", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseEntryTs(%q): %v", tt.in, err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("ParseEntryTs(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
