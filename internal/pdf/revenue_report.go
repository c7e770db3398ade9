package pdf

import (
	"bytes"
	"fmt"

	"github.com/phpdave11/gofpdf"

	"tourgate/internal/domain/models"
	"tourgate/internal/utils"
)

// RevenueReportData is everything the revenue export renders.
type RevenueReportData struct {
	Overview    models.RevenueOverview
	Packages    []models.PackageRevenue
	GeneratedAt string
}

// RevenueReport renders the joined revenue view as an A4 PDF.
func RevenueReport(d RevenueReportData) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Revenue Report", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "REVENUE REPORT")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, "Generated at: "+d.GeneratedAt)
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Overview")
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 11)
	lines := []string{
		fmt.Sprintf("Total revenue           : %s", utils.FormatUSD(d.Overview.TotalRevenue)),
		fmt.Sprintf("Accepted bookings       : %d", d.Overview.TotalBookings),
		fmt.Sprintf("Average booking value   : %s", utils.FormatUSD(d.Overview.AverageBookingValue)),
	}
	for _, line := range lines {
		pdf.Cell(0, 6, line)
		pdf.Ln(6)
	}
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Revenue by package")
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(70, 7, "Package", "1", 0, "L", false, 0, "")
	pdf.CellFormat(30, 7, "Country", "1", 0, "L", false, 0, "")
	pdf.CellFormat(25, 7, "Bookings", "1", 0, "R", false, 0, "")
	pdf.CellFormat(30, 7, "Revenue", "1", 0, "R", false, 0, "")
	pdf.CellFormat(30, 7, "Avg value", "1", 0, "R", false, 0, "")
	pdf.Ln(7)

	pdf.SetFont("Helvetica", "", 10)
	for _, row := range d.Packages {
		pdf.CellFormat(70, 7, truncate(row.PackageTitle, 40), "1", 0, "L", false, 0, "")
		pdf.CellFormat(30, 7, truncate(row.Country, 16), "1", 0, "L", false, 0, "")
		pdf.CellFormat(25, 7, fmt.Sprintf("%d", row.TotalBookings), "1", 0, "R", false, 0, "")
		pdf.CellFormat(30, 7, utils.FormatUSD(row.TotalRevenue), "1", 0, "R", false, 0, "")
		pdf.CellFormat(30, 7, utils.FormatUSD(row.AverageBookingValue), "1", 0, "R", false, 0, "")
		pdf.Ln(7)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// truncate shortens to max runes; byte slicing could split a multibyte rune
// in a title and corrupt the PDF text stream.
func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-3]) + "..."
}
