package utils

import "testing"

func TestFormatUSD(t *testing.T) {
	cases := []struct {
		amount float64
		want   string
	}{
		{2000, "$2000.00"},
		{0, "$0.00"},
		{499.5, "$499.50"},
		{-12.345, "-$12.35"},
	}
	for _, tc := range cases {
		if got := FormatUSD(tc.amount); got != tc.want {
			t.Errorf("FormatUSD(%v) = %s, want %s", tc.amount, got, tc.want)
		}
	}
}
