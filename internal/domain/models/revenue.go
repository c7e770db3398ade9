package models

import "tourgate/internal/domain"

// RevenueOverview aggregates accepted-booking revenue across all packages.
type RevenueOverview struct {
	TotalRevenue        float64 `json:"totalRevenue"`
	TotalBookings       int     `json:"totalBookings"`
	AverageBookingValue float64 `json:"averageBookingValue"`
}

// PackageRevenue is one per-package row of the revenue report.
type PackageRevenue struct {
	PackageID           domain.ID `json:"packageId"`
	PackageTitle        string    `json:"packageTitle"`
	Country             string    `json:"country"`
	PackageType         string    `json:"packageType"`
	TotalRevenue        float64   `json:"totalRevenue"`
	TotalBookings       int       `json:"totalBookings"`
	AverageBookingValue float64   `json:"averageBookingValue"`
}
