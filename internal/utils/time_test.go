package utils

import (
	"testing"
	"time"
)

func TestToISO(t *testing.T) {
	got, err := ToISO("2026-09-15")
	if err != nil {
		t.Fatalf("ToISO error: %v", err)
	}
	if got != "2026-09-15T00:00:00Z" {
		t.Errorf("ToISO = %s", got)
	}

	if _, err := ToISO("15/09/2026"); err == nil {
		t.Error("ToISO accepted a non-ISO input")
	}
}

func TestIsFutureDate(t *testing.T) {
	now := time.Date(2026, 3, 10, 14, 30, 0, 0, time.UTC)

	cases := []struct {
		date string
		want bool
	}{
		{"2026-03-10", true}, // today counts
		{"2026-03-11", true},
		{"2026-03-09", false},
		{"not-a-date", false},
	}
	for _, tc := range cases {
		if got := IsFutureDate(tc.date, now); got != tc.want {
			t.Errorf("IsFutureDate(%s) = %v, want %v", tc.date, got, tc.want)
		}
	}
}
