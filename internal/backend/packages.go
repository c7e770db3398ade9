package backend

import (
	"context"
	"fmt"
	"net/http"

	"tourgate/internal/domain"
	"tourgate/internal/domain/models"
)

// ListTourPackages returns all packages with their nested locations and plan
// days.
func (c *Client) ListTourPackages(ctx context.Context, token string) ([]models.TourPackage, error) {
	var out []models.TourPackage
	if err := c.do(ctx, "packages.list", http.MethodGet, "/api/tour-packages/get-tour-packages", token, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetTourPackage returns one package by id. The list endpoint is the only
// package read the backend exposes, so this filters client-side.
func (c *Client) GetTourPackage(ctx context.Context, token string, id domain.ID) (models.TourPackage, error) {
	packages, err := c.ListTourPackages(ctx, token)
	if err != nil {
		return models.TourPackage{}, err
	}
	for _, p := range packages {
		if p.ID == id {
			return p, nil
		}
	}
	return models.TourPackage{}, domain.NotFoundError{Resource: "tour package"}
}

// ListDestinations returns all destinations.
func (c *Client) ListDestinations(ctx context.Context, token string) ([]models.Destination, error) {
	var out []models.Destination
	if err := c.do(ctx, "destinations.list", http.MethodGet, "/api/tour-packages/get-destinations", token, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetDestination returns one destination with its owning package nested.
func (c *Client) GetDestination(ctx context.Context, token string, id domain.ID) (models.Destination, error) {
	path := fmt.Sprintf("/api/tour-packages/get-destinations/%d", id)
	var out models.Destination
	if err := c.do(ctx, "destinations.get", http.MethodGet, path, token, nil, &out); err != nil {
		return models.Destination{}, err
	}
	return out, nil
}

// NewDestination and NewTourPlanDay are the nested authoring rows.
type NewDestination struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

type NewTourPlanDay struct {
	Title       string `json:"title"`
	Activity    string `json:"activity"`
	Description string `json:"description"`
	EndOfTheDay string `json:"endOfTheDay"`
}

// NewTourPackage is the authoring payload forwarded to the backend.
type NewTourPackage struct {
	Title            string           `json:"title"`
	Country          string           `json:"country"`
	PackageType      string           `json:"packageType"`
	Price            float64          `json:"prices"`
	Image            string           `json:"image"`
	Alt              string           `json:"alt"`
	ShortDescription string           `json:"shortDescription"`
	Description      string           `json:"description"`
	Locations        []NewDestination `json:"locations"`
	TourPlanDays     []NewTourPlanDay `json:"tourPlanDays"`
}

// CreateTourPackage creates a package with its nested collections.
func (c *Client) CreateTourPackage(ctx context.Context, token string, pkg NewTourPackage) (models.TourPackage, error) {
	var out models.TourPackage
	if err := c.do(ctx, "packages.create", http.MethodPost, "/api/tour-packages/create-tour-package", token, pkg, &out); err != nil {
		return models.TourPackage{}, err
	}
	return out, nil
}
