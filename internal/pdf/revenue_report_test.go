package pdf

import (
	"bytes"
	"testing"
	"unicode/utf8"

	"tourgate/internal/domain/models"
)

func TestRevenueReportProducesPDF(t *testing.T) {
	data := RevenueReportData{
		Overview: models.RevenueOverview{
			TotalRevenue:        5400,
			TotalBookings:       6,
			AverageBookingValue: 900,
		},
		Packages: []models.PackageRevenue{
			{PackageID: 3, PackageTitle: "Island Hopper", Country: "Indonesia", TotalBookings: 4, TotalRevenue: 3600, AverageBookingValue: 900},
			{PackageID: 4, PackageTitle: "Alpine Trek", Country: "Switzerland", TotalBookings: 2, TotalRevenue: 1800, AverageBookingValue: 900},
		},
		GeneratedAt: "2025-06-01T10:00:00Z",
	}

	out, err := RevenueReport(data)
	if err != nil {
		t.Fatalf("RevenueReport error: %v", err)
	}
	if len(out) == 0 {
		t.Fatal("empty output")
	}
	if !bytes.HasPrefix(out, []byte("%PDF")) {
		t.Errorf("output does not start with %%PDF: %q", out[:8])
	}
}

func TestRevenueReportEmptyTable(t *testing.T) {
	out, err := RevenueReport(RevenueReportData{GeneratedAt: "2025-06-01T10:00:00Z"})
	if err != nil {
		t.Fatalf("RevenueReport error: %v", err)
	}
	if !bytes.HasPrefix(out, []byte("%PDF")) {
		t.Error("empty report is not a PDF")
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("short", 40); got != "short" {
		t.Errorf("truncate(short) = %q", got)
	}
	long := "A very long package title that exceeds the column width"
	got := truncate(long, 20)
	if len(got) != 20 || got[17:] != "..." {
		t.Errorf("truncate = %q", got)
	}
}

func TestTruncateKeepsRunesWhole(t *testing.T) {
	title := "Wüstensafari über die Dünen von Marokko"
	got := truncate(title, 20)
	if !utf8.ValidString(got) {
		t.Fatalf("truncate emitted invalid UTF-8: %q", got)
	}
	if n := utf8.RuneCountInString(got); n != 20 {
		t.Errorf("rune count = %d, want 20", n)
	}
	if got[len(got)-3:] != "..." {
		t.Errorf("truncate = %q, want ... suffix", got)
	}
}
