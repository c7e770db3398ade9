package backend

import (
	"context"
	"net/http"

	"tourgate/internal/domain/models"
)

// The revenue endpoints wrap their payloads in a data envelope.
type revenueOverviewEnvelope struct {
	Data models.RevenueOverview `json:"data"`
}

type packageRevenueEnvelope struct {
	Data []models.PackageRevenue `json:"data"`
}

// RevenueOverview returns overall revenue analytics.
func (c *Client) RevenueOverview(ctx context.Context, token string) (models.RevenueOverview, error) {
	var out revenueOverviewEnvelope
	if err := c.do(ctx, "revenue.overview", http.MethodGet, "/api/admin/revenue/overview", token, nil, &out); err != nil {
		return models.RevenueOverview{}, err
	}
	return out.Data, nil
}

// PackageRevenue returns per-package revenue rows.
func (c *Client) PackageRevenue(ctx context.Context, token string) ([]models.PackageRevenue, error) {
	var out packageRevenueEnvelope
	if err := c.do(ctx, "revenue.packages", http.MethodGet, "/api/admin/revenue/packages", token, nil, &out); err != nil {
		return nil, err
	}
	return out.Data, nil
}
