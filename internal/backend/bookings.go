package backend

import (
	"context"
	"fmt"
	"net/http"

	"tourgate/internal/domain"
	"tourgate/internal/domain/models"
)

// BookingPayload is the create/update body assembled by the booking service.
// TravelDate is ISO-8601; TotalAmount is the gateway-computed price * people,
// the backend re-derives the authoritative value.
type BookingPayload struct {
	TourPackageID   domain.ID `json:"tourPackageId"`
	TravelDate      string    `json:"travelDate"`
	NumberOfPeople  int       `json:"numberOfPeople"`
	Phone           string    `json:"phone"`
	Country         string    `json:"country"`
	SpecialRequests string    `json:"specialRequests,omitempty"`
	TotalAmount     float64   `json:"totalAmount"`
}

// CreateBooking submits a new booking for the session's customer.
func (c *Client) CreateBooking(ctx context.Context, token string, payload BookingPayload) (models.Booking, error) {
	var out models.Booking
	if err := c.do(ctx, "bookings.create", http.MethodPost, "/api/bookings/createbooking", token, payload, &out); err != nil {
		return models.Booking{}, err
	}
	return out, nil
}

// ListMyBookings returns the session customer's own bookings.
func (c *Client) ListMyBookings(ctx context.Context, token string) ([]models.Booking, error) {
	var out []models.Booking
	if err := c.do(ctx, "bookings.list_mine", http.MethodGet, "/api/bookings/get-bookings", token, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetMyBooking returns one of the customer's bookings by id.
func (c *Client) GetMyBooking(ctx context.Context, token string, id domain.ID) (models.Booking, error) {
	path := fmt.Sprintf("/api/bookings/customer/%d", id)
	var out models.Booking
	if err := c.do(ctx, "bookings.get_mine", http.MethodGet, path, token, nil, &out); err != nil {
		return models.Booking{}, err
	}
	return out, nil
}

// UpdateMyBooking updates one of the customer's bookings.
func (c *Client) UpdateMyBooking(ctx context.Context, token string, id domain.ID, payload BookingPayload) (models.Booking, error) {
	path := fmt.Sprintf("/api/bookings/customer/%d", id)
	var out models.Booking
	if err := c.do(ctx, "bookings.update_mine", http.MethodPut, path, token, payload, &out); err != nil {
		return models.Booking{}, err
	}
	return out, nil
}

// CancelMyBooking cancels one of the customer's bookings.
func (c *Client) CancelMyBooking(ctx context.Context, token string, id domain.ID) error {
	path := fmt.Sprintf("/api/bookings/customer/%d", id)
	return c.do(ctx, "bookings.cancel_mine", http.MethodDelete, path, token, nil, nil)
}

// GetBookingDetails returns the detail-tier view of a booking, with nested
// package, location and itinerary data. List payloads are summary-shaped;
// detail views always take this second fetch.
func (c *Client) GetBookingDetails(ctx context.Context, token string, id domain.ID) (models.Booking, error) {
	path := fmt.Sprintf("/api/bookings/%d/details", id)
	var out models.Booking
	if err := c.do(ctx, "bookings.details", http.MethodGet, path, token, nil, &out); err != nil {
		return models.Booking{}, err
	}
	return out, nil
}

// ListUnassignedBookings returns all bookings with no active assignment.
func (c *Client) ListUnassignedBookings(ctx context.Context, token string) ([]models.Booking, error) {
	var out []models.Booking
	if err := c.do(ctx, "bookings.list_unassigned", http.MethodGet, "/api/bookings/get-all-unassigned-bookings", token, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListAssignedBookings returns all assignment records with their bookings and
// employees expanded.
func (c *Client) ListAssignedBookings(ctx context.Context, token string) ([]models.AssignedBooking, error) {
	var out []models.AssignedBooking
	if err := c.do(ctx, "bookings.list_assigned", http.MethodGet, "/api/bookings/get-all-assigned-bookings", token, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// AssignBooking links a booking to an employee.
func (c *Client) AssignBooking(ctx context.Context, token string, bookingID, employeeID domain.ID) error {
	path := fmt.Sprintf("/api/bookings/%d/assign", bookingID)
	body := map[string]domain.ID{"employeeId": employeeID}
	return c.do(ctx, "bookings.assign", http.MethodPost, path, token, body, nil)
}

// RemoveBooking deletes a booking outright (admin, unassigned only).
func (c *Client) RemoveBooking(ctx context.Context, token string, id domain.ID) error {
	path := fmt.Sprintf("/api/bookings/%d", id)
	return c.do(ctx, "bookings.remove", http.MethodDelete, path, token, nil, nil)
}

// ListEmployeeAssignedBookings returns the bookings assigned to the session's
// employee.
func (c *Client) ListEmployeeAssignedBookings(ctx context.Context, token string) ([]models.AssignedBooking, error) {
	var out []models.AssignedBooking
	if err := c.do(ctx, "bookings.employee_assigned", http.MethodGet, "/api/bookings/employee/assigned-bookings", token, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetEmployeeBookingDetails returns the employee-scoped detail view.
func (c *Client) GetEmployeeBookingDetails(ctx context.Context, token string, id domain.ID) (models.AssignedBooking, error) {
	path := fmt.Sprintf("/api/bookings/employee/%d/details", id)
	var out models.AssignedBooking
	if err := c.do(ctx, "bookings.employee_details", http.MethodGet, path, token, nil, &out); err != nil {
		return models.AssignedBooking{}, err
	}
	return out, nil
}

// UpdateAssignmentStatus moves an assigned booking to ACCEPTED or REJECTED.
func (c *Client) UpdateAssignmentStatus(ctx context.Context, token string, bookingID domain.ID, status models.AssignmentStatus, notes string) error {
	path := fmt.Sprintf("/api/bookings/employee/%d/status", bookingID)
	body := map[string]string{"status": string(status)}
	if notes != "" {
		body["notes"] = notes
	}
	return c.do(ctx, "bookings.update_status", http.MethodPut, path, token, body, nil)
}
