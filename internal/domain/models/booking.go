package models

import "tourgate/internal/domain"

// BookingStatus values as the core backend emits them.
type BookingStatus string

const (
	BookingPending   BookingStatus = "PENDING"
	BookingAssigned  BookingStatus = "ASSIGNED"
	BookingAccepted  BookingStatus = "ACCEPTED"
	BookingRejected  BookingStatus = "REJECTED"
	BookingCancelled BookingStatus = "CANCELLED"
)

// Booking is a customer's reservation request for a tour package.
type Booking struct {
	ID              domain.ID     `json:"id"`
	UserID          domain.ID     `json:"userId"`
	TourPackageID   domain.ID     `json:"tourPackageId"`
	BookingDate     string        `json:"bookingDate,omitempty"`
	TravelDate      string        `json:"travelDate"`
	Phone           string        `json:"phone,omitempty"`
	Country         string        `json:"country,omitempty"`
	NumberOfPeople  int           `json:"numberOfPeople"`
	TotalAmount     float64       `json:"totalAmount"`
	Status          BookingStatus `json:"status"`
	SpecialRequests string        `json:"specialRequests,omitempty"`
	CreatedAt       string        `json:"createdAt,omitempty"`
	UpdatedAt       string        `json:"updatedAt,omitempty"`

	Customer    *User        `json:"customer,omitempty"`
	TourPackage *TourPackage `json:"tourPackage,omitempty"`
}

// CanSelfService reports whether the owning customer may still modify or
// cancel the booking. Once staff has engaged (assigned, accepted or
// rejected), self-service control is gone.
func (s BookingStatus) CanSelfService() bool {
	switch s {
	case BookingAssigned, BookingAccepted, BookingRejected:
		return false
	default:
		return true
	}
}
