package ui

import (
	"strings"
	"testing"
	"time"
)

func TestFormatDurationShort(t *testing.T) {
	cases := []struct {
		name     string
		duration time.Duration
		want     string
	}{
		{name: "negative", duration: -time.Minute, want: "0s"},
		{name: "seconds", duration: 45 * time.Second, want: "45s"},
		{name: "minutes", duration: 2*time.Minute + 10*time.Second, want: "2m"},
		{name: "hours", duration: 3*time.Hour + 5*time.Minute, want: "3h"},
		{name: "days", duration: 48 * time.Hour, want: "2d"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := FormatDurationShort(tc.duration)
			if got != tc.want {
				t.Fatalf("expected %s, got %s", tc.want, got)
			}
		})
	}
}

func TestFormatTimeAgo(t *testing.T) {
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	then := now.Add(-2 * time.Minute)

	got := FormatTimeAgo(then, now)
	if got != "2m ago" {
		t.Fatalf("expected 2m ago, got %s", got)
	}

	if got := FormatTimeAgo(time.Time{}, now); got != "-" {
		t.Fatalf("expected - for zero time, got %s", got)
	}
}

func TestFormatTimestamp(t *testing.T) {
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	then := now.Add(-3 * time.Hour)

	got := FormatTimestamp(then, now)
	if !strings.HasPrefix(got, then.Local().Format(TimestampLayout)) {
		t.Fatalf("expected absolute time prefix, got %q", got)
	}
	if !strings.HasSuffix(got, "(3h ago)") {
		t.Fatalf("expected age suffix, got %q", got)
	}
	if FormatTimestamp(time.Time{}, now) != "-" {
		t.Fatal("expected - for zero time")
	}
}

func TestFormatTimeAgeShort(t *testing.T) {
	now := time.Date(2024, 3, 4, 9, 0, 0, 0, time.UTC)

	if got := FormatTimeAgeShort(now.Add(-90*time.Minute), now); got != "1h" {
		t.Errorf("FormatTimeAgeShort = %q, want 1h", got)
	}
	if got := FormatTimeAgeShort(time.Time{}, now); got != "-" {
		t.Errorf("FormatTimeAgeShort(zero) = %q, want -", got)
	}
	if got := FormatTimeAgeShort(now.Add(time.Hour), now); got != "0s" {
		t.Errorf("FormatTimeAgeShort(future) = %q, want 0s", got)
	}
}
