package models

import "tourgate/internal/domain"

// Destination is a named place inside a tour package. The authoritative copy
// lives in the core backend; this is the wire shape the gateway passes around.
type Destination struct {
	ID            domain.ID `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	Image         string    `json:"image"`
	TourPackageID domain.ID `json:"tourPackageId"`
	CreatedAt     string    `json:"createdAt,omitempty"`
	UpdatedAt     string    `json:"updatedAt,omitempty"`
}

// TourPlanDay is one day of a package itinerary. Array order is day order.
type TourPlanDay struct {
	ID            domain.ID `json:"id"`
	Title         string    `json:"title"`
	Activity      string    `json:"activity"`
	Description   string    `json:"description"`
	EndOfTheDay   string    `json:"endOfTheDay"`
	TourPackageID domain.ID `json:"tourPackageId"`
}

// TourPackage is a sellable itinerary product. A bookable package has at
// least one location and one plan day; that invariant is enforced at
// authoring time by validation, not re-checked here.
type TourPackage struct {
	ID               domain.ID     `json:"id"`
	Title            string        `json:"title"`
	Country          string        `json:"country"`
	PackageType      string        `json:"packageType"`
	Price            float64       `json:"prices"`
	Image            string        `json:"image"`
	Alt              string        `json:"alt"`
	ShortDescription string        `json:"shortDescription"`
	Description      string        `json:"description"`
	Locations        []Destination `json:"locations"`
	TourPlanDays     []TourPlanDay `json:"tourPlanDays"`
}
