package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tourgate/internal/domain"
	"tourgate/internal/http/middleware"
	"tourgate/internal/services"
	"tourgate/internal/validation"
)

// BookingHandler covers the customer's own booking workflow.
type BookingHandler struct {
	Bookings services.BookingService
}

// Quote recomputes the displayed total. The UI calls this on every package
// or head-count change.
func (h BookingHandler) Quote(c *gin.Context) {
	var body struct {
		TourPackageID  domain.ID `json:"tourPackageId"`
		NumberOfPeople int       `json:"numberOfPeople"`
	}
	if !BindJSONOrError(c, &body) {
		return
	}
	quote, err := h.Bookings.Quote(c.Request.Context(), middleware.SessionToken(c), body.TourPackageID, body.NumberOfPeople)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, quote)
}

// Create submits a new booking.
func (h BookingHandler) Create(c *gin.Context) {
	var form validation.BookingForm
	if !BindJSONOrError(c, &form) {
		return
	}
	created, err := h.Bookings.Create(c.Request.Context(), middleware.SessionToken(c), form)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// List returns the customer's bookings.
func (h BookingHandler) List(c *gin.Context) {
	views, err := h.Bookings.ListMine(c.Request.Context(), middleware.SessionToken(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, views)
}

// Details is the second-tier fetch backing the in-place detail view.
func (h BookingHandler) Details(c *gin.Context) {
	id, ok := IDParam(c, "id")
	if !ok {
		return
	}
	view, err := h.Bookings.Details(c.Request.Context(), middleware.SessionToken(c), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// Modify updates a booking that staff has not yet engaged with.
func (h BookingHandler) Modify(c *gin.Context) {
	id, ok := IDParam(c, "id")
	if !ok {
		return
	}
	var form validation.BookingForm
	if !BindJSONOrError(c, &form) {
		return
	}
	updated, err := h.Bookings.Modify(c.Request.Context(), middleware.SessionToken(c), id, form)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// Cancel removes a booking under the same rule as Modify.
func (h BookingHandler) Cancel(c *gin.Context) {
	id, ok := IDParam(c, "id")
	if !ok {
		return
	}
	if err := h.Bookings.Cancel(c.Request.Context(), middleware.SessionToken(c), id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
