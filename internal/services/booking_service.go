package services

import (
	"context"
	"strings"

	"tourgate/internal/backend"
	"tourgate/internal/domain"
	"tourgate/internal/domain/models"
	"tourgate/internal/utils"
	"tourgate/internal/validation"
)

// ComputeTotal is the booking price rule: package price times head count.
// The backend re-derives the authoritative figure on persistence.
func ComputeTotal(price float64, numberOfPeople int) float64 {
	return price * float64(numberOfPeople)
}

// BookingView is a booking decorated for rendering: status badge and
// self-service flags included so every surface shows the same thing.
type BookingView struct {
	models.Booking
	Badge        models.Badge `json:"badge"`
	CanModify    bool         `json:"canModify"`
	CanDelete    bool         `json:"canDelete"`
	DisplayTotal string       `json:"displayTotal"`
}

// NewBookingView decorates a raw booking.
func NewBookingView(b models.Booking) BookingView {
	selfService := b.Status.CanSelfService()
	return BookingView{
		Booking:      b,
		Badge:        models.BadgeFor(string(b.Status)),
		CanModify:    selfService,
		CanDelete:    selfService,
		DisplayTotal: utils.FormatUSD(b.TotalAmount),
	}
}

// Quote is the reactive total shown while a booking form is being filled.
type Quote struct {
	TourPackageID  domain.ID `json:"tourPackageId"`
	PackageTitle   string    `json:"packageTitle"`
	UnitPrice      float64   `json:"unitPrice"`
	NumberOfPeople int       `json:"numberOfPeople"`
	TotalAmount    float64   `json:"totalAmount"`
	DisplayTotal   string    `json:"displayTotal"`
}

type BookingService struct {
	Backend *backend.Client
	Forms   *validation.Validator
}

// Quote recomputes the running total for a package/head-count pair. Called
// again on every change of either input.
func (s BookingService) Quote(ctx context.Context, token string, packageID domain.ID, numberOfPeople int) (Quote, error) {
	if numberOfPeople < 1 || numberOfPeople > 20 {
		return Quote{}, domain.ValidationError{Field: "numberOfPeople", Msg: "number of people must be between 1 and 20"}
	}
	if packageID < 1 {
		packageID = 1
	}
	pkg, err := s.Backend.GetTourPackage(ctx, token, packageID)
	if err != nil {
		return Quote{}, err
	}
	total := ComputeTotal(pkg.Price, numberOfPeople)
	return Quote{
		TourPackageID:  pkg.ID,
		PackageTitle:   pkg.Title,
		UnitPrice:      pkg.Price,
		NumberOfPeople: numberOfPeople,
		TotalAmount:    total,
		DisplayTotal:   utils.FormatUSD(total),
	}, nil
}

// Create validates the booking form, computes the total from a fresh package
// read and submits it with an ISO travel date.
func (s BookingService) Create(ctx context.Context, token string, form validation.BookingForm) (BookingView, error) {
	if err := s.Forms.Struct(form); err != nil {
		return BookingView{}, err
	}
	payload, err := s.buildPayload(ctx, token, form)
	if err != nil {
		return BookingView{}, err
	}
	created, err := s.Backend.CreateBooking(ctx, token, payload)
	if err != nil {
		return BookingView{}, err
	}
	return NewBookingView(created), nil
}

// Modify updates an existing booking. The self-service rule is re-checked
// here against current server state, so a stale client that still shows an
// enabled button gets rejected instead of trusted.
func (s BookingService) Modify(ctx context.Context, token string, id domain.ID, form validation.BookingForm) (BookingView, error) {
	if err := s.Forms.Struct(form); err != nil {
		return BookingView{}, err
	}
	current, err := s.Backend.GetMyBooking(ctx, token, id)
	if err != nil {
		return BookingView{}, err
	}
	if !current.Status.CanSelfService() {
		return BookingView{}, domain.ConflictError{Resource: "booking", Msg: "booking is already being handled by staff"}
	}
	payload, err := s.buildPayload(ctx, token, form)
	if err != nil {
		return BookingView{}, err
	}
	updated, err := s.Backend.UpdateMyBooking(ctx, token, id, payload)
	if err != nil {
		return BookingView{}, err
	}
	return NewBookingView(updated), nil
}

// Cancel removes the customer's own booking, subject to the same rule as
// Modify.
func (s BookingService) Cancel(ctx context.Context, token string, id domain.ID) error {
	current, err := s.Backend.GetMyBooking(ctx, token, id)
	if err != nil {
		return err
	}
	if !current.Status.CanSelfService() {
		return domain.ConflictError{Resource: "booking", Msg: "booking is already being handled by staff"}
	}
	return s.Backend.CancelMyBooking(ctx, token, id)
}

// ListMine returns the customer's bookings as decorated views.
func (s BookingService) ListMine(ctx context.Context, token string) ([]BookingView, error) {
	bookings, err := s.Backend.ListMyBookings(ctx, token)
	if err != nil {
		return nil, err
	}
	views := make([]BookingView, 0, len(bookings))
	for _, b := range bookings {
		views = append(views, NewBookingView(b))
	}
	return views, nil
}

// Details fetches the detail-tier view of one booking. List rows are
// summary-shaped; this second fetch carries the nested package data.
func (s BookingService) Details(ctx context.Context, token string, id domain.ID) (BookingView, error) {
	b, err := s.Backend.GetBookingDetails(ctx, token, id)
	if err != nil {
		return BookingView{}, err
	}
	return NewBookingView(b), nil
}

func (s BookingService) buildPayload(ctx context.Context, token string, form validation.BookingForm) (backend.BookingPayload, error) {
	pkg, err := s.Backend.GetTourPackage(ctx, token, form.TourPackageID)
	if err != nil {
		return backend.BookingPayload{}, err
	}
	iso, err := utils.ToISO(form.TravelDate)
	if err != nil {
		return backend.BookingPayload{}, domain.ValidationError{Field: "travelDate", Msg: "invalid date", Err: err}
	}
	return backend.BookingPayload{
		TourPackageID:   pkg.ID,
		TravelDate:      iso,
		NumberOfPeople:  form.NumberOfPeople,
		Phone:           strings.TrimSpace(form.Phone),
		Country:         strings.TrimSpace(form.Country),
		SpecialRequests: strings.TrimSpace(form.SpecialRequests),
		TotalAmount:     ComputeTotal(pkg.Price, form.NumberOfPeople),
	}, nil
}
