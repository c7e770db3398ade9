package models

import "tourgate/internal/domain"

// AssignmentStatus values for a booking/employee link.
type AssignmentStatus string

const (
	AssignmentAssigned AssignmentStatus = "ASSIGNED"
	AssignmentAccepted AssignmentStatus = "ACCEPTED"
	AssignmentRejected AssignmentStatus = "REJECTED"
)

// Assignment links a booking to the employee handling it. A booking has at
// most one active assignment.
type Assignment struct {
	ID         domain.ID        `json:"id"`
	BookingID  domain.ID        `json:"bookingId"`
	EmployeeID domain.ID        `json:"employeeId"`
	AssignedAt string           `json:"assignedAt"`
	Status     AssignmentStatus `json:"status"`
	Notes      string           `json:"notes,omitempty"`
}

// AssignedBooking is the assignment record with its booking and employee
// expanded, as returned by the admin and employee list endpoints.
type AssignedBooking struct {
	Assignment
	Booking  Booking `json:"booking"`
	Employee User    `json:"employee"`
}
