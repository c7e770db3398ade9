package models

import "testing"

func TestBadgeForKnownStatuses(t *testing.T) {
	cases := []struct {
		status string
		color  string
	}{
		{"ACCEPTED", BadgeGreen},
		{"REJECTED", BadgeRed},
		{"ASSIGNED", BadgeYellow},
		{"PENDING", BadgeYellow},
		{"CANCELLED", BadgeGray},
	}
	for _, tc := range cases {
		got := BadgeFor(tc.status)
		if got.Color != tc.color {
			t.Errorf("BadgeFor(%s).Color = %s, want %s", tc.status, got.Color, tc.color)
		}
		if got.Label != tc.status {
			t.Errorf("BadgeFor(%s).Label = %s, want %s", tc.status, got.Label, tc.status)
		}
	}
}

func TestBadgeForIsTotal(t *testing.T) {
	for _, status := range []string{"", "UNKNOWN", "accepted", "whatever"} {
		if got := BadgeFor(status); got.Color != BadgeGray {
			t.Errorf("BadgeFor(%q).Color = %s, want gray fallback", status, got.Color)
		}
	}
}

func TestCanSelfService(t *testing.T) {
	cases := []struct {
		status BookingStatus
		want   bool
	}{
		{BookingPending, true},
		{BookingCancelled, true},
		{BookingAssigned, false},
		{BookingAccepted, false},
		{BookingRejected, false},
		{BookingStatus("SOMETHING_NEW"), true},
	}
	for _, tc := range cases {
		if got := tc.status.CanSelfService(); got != tc.want {
			t.Errorf("%s.CanSelfService() = %v, want %v", tc.status, got, tc.want)
		}
	}
}
