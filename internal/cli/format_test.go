package cli

import (
	"testing"
	"time"
)

func TestFormatNumber(t *testing.T) {
	tests := map[int64]string{
		0:        "0",
		999:      "999",
		1234:     "1,234",
		-1234567: "-1,234,567",
	}
	for in, want := range tests {
		if got := FormatNumber(in); got != want {
			t.Fatalf("FormatNumber(%d) = %q, want %q", in, got, want)
		}
	}
}

func TestFormatReps(t *testing.T) {
	if got := FormatReps(1); got != "1 rep" {
		t.Fatalf("FormatReps(1) = %q", got)
	}
	if got := FormatReps(1200); got != "1,200 reps" {
		t.Fatalf("FormatReps(1200) = %q", got)
	}
}

func TestFormatDayOfWeek(t *testing.T) {
	if got := FormatDayOfWeek(1); got != "Mon" {
		t.Fatalf("FormatDayOfWeek(1) = %q", got)
	}
	if got := FormatDayOfWeek(9); got != "???" {
		t.Fatalf("FormatDayOfWeek(9) = %q", got)
	}
}

func TestFormatAgo(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	if got := FormatAgo(now.Add(-3*time.Hour), now); got != "3 hours ago" {
		t.Fatalf("FormatAgo(-3h) = %q", got)
	}
	if got := FormatAgo(time.Time{}, now); got != "-" {
		t.Fatalf("FormatAgo(zero) = %q", got)
	}
}
