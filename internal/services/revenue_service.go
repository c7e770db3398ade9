package services

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"tourgate/internal/backend"
	"tourgate/internal/domain/models"
	"tourgate/internal/pdf"
)

// RevenueReport is the joined revenue view: overall analytics plus the
// per-package breakdown.
type RevenueReport struct {
	Overview    models.RevenueOverview  `json:"overview"`
	Packages    []models.PackageRevenue `json:"packages"`
	GeneratedAt string                  `json:"generatedAt"`
}

type RevenueService struct {
	Backend *backend.Client
}

// Report fetches overview and per-package rows in parallel. Coordinated
// join: the view either has both halves or fails whole.
func (s RevenueService) Report(ctx context.Context, token string) (RevenueReport, error) {
	var (
		overview models.RevenueOverview
		packages []models.PackageRevenue
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		overview, err = s.Backend.RevenueOverview(gctx, token)
		return err
	})
	g.Go(func() error {
		var err error
		packages, err = s.Backend.PackageRevenue(gctx, token)
		return err
	})
	if err := g.Wait(); err != nil {
		return RevenueReport{}, err
	}

	return RevenueReport{
		Overview:    overview,
		Packages:    packages,
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
	}, nil
}

// ExportPDF renders the joined report as a downloadable PDF.
func (s RevenueService) ExportPDF(ctx context.Context, token string) ([]byte, error) {
	report, err := s.Report(ctx, token)
	if err != nil {
		return nil, err
	}
	return pdf.RevenueReport(pdf.RevenueReportData{
		Overview:    report.Overview,
		Packages:    report.Packages,
		GeneratedAt: report.GeneratedAt,
	})
}
