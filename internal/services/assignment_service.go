package services

import (
	"context"
	"strings"

	"golang.org/x/sync/errgroup"

	"tourgate/internal/backend"
	"tourgate/internal/domain"
	"tourgate/internal/domain/models"
)

// AssignedView is an assignment row decorated for rendering.
type AssignedView struct {
	models.AssignedBooking
	Badge        models.Badge `json:"badge"`
	EmployeeName string       `json:"employeeName"`
}

func newAssignedView(a models.AssignedBooking) AssignedView {
	return AssignedView{
		AssignedBooking: a,
		Badge:           models.BadgeFor(string(a.Status)),
		EmployeeName:    a.Employee.Name,
	}
}

// BookingPartitions is the super-admin bookings screen: pending work,
// assigned work and the cancelled graveyard, as one consistent snapshot.
type BookingPartitions struct {
	Unassigned []BookingView  `json:"unassigned"`
	Assigned   []AssignedView `json:"assigned"`
	Cancelled  []BookingView  `json:"cancelled"`
}

type AssignmentService struct {
	Backend *backend.Client
}

// Partitions fetches the unassigned and assigned collections in parallel and
// splits cancelled bookings out of the unassigned set. The join is
// all-or-nothing: if either fetch fails the whole view fails.
func (s AssignmentService) Partitions(ctx context.Context, token string) (BookingPartitions, error) {
	var (
		unassigned []models.Booking
		assigned   []models.AssignedBooking
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		unassigned, err = s.Backend.ListUnassignedBookings(gctx, token)
		return err
	})
	g.Go(func() error {
		var err error
		assigned, err = s.Backend.ListAssignedBookings(gctx, token)
		return err
	})
	if err := g.Wait(); err != nil {
		return BookingPartitions{}, err
	}

	out := BookingPartitions{
		Unassigned: make([]BookingView, 0, len(unassigned)),
		Assigned:   make([]AssignedView, 0, len(assigned)),
		Cancelled:  []BookingView{},
	}
	for _, b := range unassigned {
		view := NewBookingView(b)
		if b.Status == models.BookingCancelled {
			out.Cancelled = append(out.Cancelled, view)
			continue
		}
		out.Unassigned = append(out.Unassigned, view)
	}
	for _, a := range assigned {
		out.Assigned = append(out.Assigned, newAssignedView(a))
	}
	return out, nil
}

// Assign links a booking to an employee and answers with freshly re-fetched
// partitions. Both sides of the move are server-confirmed, so there is no
// window where the lists disagree.
func (s AssignmentService) Assign(ctx context.Context, token string, bookingID, employeeID domain.ID) (BookingPartitions, error) {
	if bookingID < 1 {
		return BookingPartitions{}, domain.ValidationError{Field: "bookingId", Msg: "id is required"}
	}
	if employeeID < 1 {
		return BookingPartitions{}, domain.ValidationError{Field: "employeeId", Msg: "an employee must be selected"}
	}
	if err := s.Backend.AssignBooking(ctx, token, bookingID, employeeID); err != nil {
		return BookingPartitions{}, err
	}
	return s.Partitions(ctx, token)
}

// Remove deletes an unassigned booking and answers with refreshed partitions.
func (s AssignmentService) Remove(ctx context.Context, token string, bookingID domain.ID) (BookingPartitions, error) {
	if bookingID < 1 {
		return BookingPartitions{}, domain.ValidationError{Field: "bookingId", Msg: "id is required"}
	}
	if err := s.Backend.RemoveBooking(ctx, token, bookingID); err != nil {
		return BookingPartitions{}, err
	}
	return s.Partitions(ctx, token)
}

// ListAssignedToMe returns the session employee's assigned bookings.
func (s AssignmentService) ListAssignedToMe(ctx context.Context, token string) ([]AssignedView, error) {
	assigned, err := s.Backend.ListEmployeeAssignedBookings(ctx, token)
	if err != nil {
		return nil, err
	}
	views := make([]AssignedView, 0, len(assigned))
	for _, a := range assigned {
		views = append(views, newAssignedView(a))
	}
	return views, nil
}

// EmployeeDetails is the employee-scoped detail fetch.
func (s AssignmentService) EmployeeDetails(ctx context.Context, token string, bookingID domain.ID) (AssignedView, error) {
	a, err := s.Backend.GetEmployeeBookingDetails(ctx, token, bookingID)
	if err != nil {
		return AssignedView{}, err
	}
	return newAssignedView(a), nil
}

// Decide moves an assigned booking to ACCEPTED or REJECTED. Rejection needs
// an explanation; acceptance does not.
func (s AssignmentService) Decide(ctx context.Context, token string, bookingID domain.ID, status models.AssignmentStatus, notes string) error {
	if status != models.AssignmentAccepted && status != models.AssignmentRejected {
		return domain.ValidationError{Field: "status", Msg: "status must be ACCEPTED or REJECTED"}
	}
	notes = strings.TrimSpace(notes)
	if status == models.AssignmentRejected && notes == "" {
		return domain.ValidationError{Field: "notes", Msg: "notes are required when rejecting a booking"}
	}
	return s.Backend.UpdateAssignmentStatus(ctx, token, bookingID, status, notes)
}
