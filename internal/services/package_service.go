package services

import (
	"context"

	"tourgate/internal/backend"
	"tourgate/internal/domain"
	"tourgate/internal/domain/models"
	"tourgate/internal/validation"
)

type PackageService struct {
	Backend *backend.Client
	Forms   *validation.Validator
}

// List returns all tour packages.
func (s PackageService) List(ctx context.Context, token string) ([]models.TourPackage, error) {
	return s.Backend.ListTourPackages(ctx, token)
}

// Get returns one package with its nested locations and itinerary.
func (s PackageService) Get(ctx context.Context, token string, id domain.ID) (models.TourPackage, error) {
	return s.Backend.GetTourPackage(ctx, token, id)
}

// Destinations returns all destinations, or one with its package nested.
func (s PackageService) Destinations(ctx context.Context, token string) ([]models.Destination, error) {
	return s.Backend.ListDestinations(ctx, token)
}

func (s PackageService) Destination(ctx context.Context, token string, id domain.ID) (models.Destination, error) {
	return s.Backend.GetDestination(ctx, token, id)
}

// Create validates the authoring form and forwards it. Empty collections are
// rejected with field messages, whatever the form UI allowed.
func (s PackageService) Create(ctx context.Context, token string, form validation.TourPackageForm) (models.TourPackage, error) {
	if err := s.Forms.Struct(form); err != nil {
		return models.TourPackage{}, err
	}

	payload := backend.NewTourPackage{
		Title:            form.Title,
		Country:          form.Country,
		PackageType:      form.PackageType,
		Price:            form.Price,
		Image:            form.Image,
		Alt:              form.Alt,
		ShortDescription: form.ShortDescription,
		Description:      form.Description,
		Locations:        make([]backend.NewDestination, 0, len(form.Locations)),
		TourPlanDays:     make([]backend.NewTourPlanDay, 0, len(form.TourPlanDays)),
	}
	for _, loc := range form.Locations {
		payload.Locations = append(payload.Locations, backend.NewDestination{
			Name:        loc.Name,
			Description: loc.Description,
			Image:       loc.Image,
		})
	}
	for _, day := range form.TourPlanDays {
		payload.TourPlanDays = append(payload.TourPlanDays, backend.NewTourPlanDay{
			Title:       day.Title,
			Activity:    day.Activity,
			Description: day.Description,
			EndOfTheDay: day.EndOfTheDay,
		})
	}
	return s.Backend.CreateTourPackage(ctx, token, payload)
}
