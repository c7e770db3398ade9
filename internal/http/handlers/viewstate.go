package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tourgate/internal/dashboard"
	"tourgate/internal/domain"
	"tourgate/internal/http/middleware"
)

// ViewStateHandler exposes the per-session dashboard state machine. Every
// transition is an explicit call from the UI; nothing here moves on its own.
type ViewStateHandler struct {
	Store *dashboard.Store
}

type viewStateResponse struct {
	dashboard.ViewState
	Sections []dashboard.Section `json:"sections"`
}

func (h ViewStateHandler) respond(c *gin.Context, role domain.Role, state dashboard.ViewState) {
	c.JSON(http.StatusOK, viewStateResponse{
		ViewState: state,
		Sections:  dashboard.Sections(role),
	})
}

// Get returns the current state, initialized to the role default.
func (h ViewStateHandler) Get(c *gin.Context) {
	user, _ := middleware.SessionUser(c)
	token := middleware.SessionToken(c)
	h.respond(c, user.Role, h.Store.Get(token, user.Role))
}

// Navigate switches the active section. Selections are always cleared;
// coming back to a section re-fetches rather than restoring.
func (h ViewStateHandler) Navigate(c *gin.Context) {
	var body struct {
		Section dashboard.Section `json:"section"`
	}
	if !BindJSONOrError(c, &body) {
		return
	}
	user, _ := middleware.SessionUser(c)
	token := middleware.SessionToken(c)
	h.respond(c, user.Role, h.Store.Navigate(token, user.Role, body.Section))
}

// SelectPackage is the "book now" path: remembers the package and moves to
// the booking section.
func (h ViewStateHandler) SelectPackage(c *gin.Context) {
	var body struct {
		PackageID domain.ID `json:"packageId"`
	}
	if !BindJSONOrError(c, &body) {
		return
	}
	user, _ := middleware.SessionUser(c)
	token := middleware.SessionToken(c)
	h.respond(c, user.Role, h.Store.SelectPackage(token, user.Role, body.PackageID))
}

// SelectBooking opens the in-place detail view for a booking.
func (h ViewStateHandler) SelectBooking(c *gin.Context) {
	var body struct {
		BookingID domain.ID `json:"bookingId"`
	}
	if !BindJSONOrError(c, &body) {
		return
	}
	user, _ := middleware.SessionUser(c)
	token := middleware.SessionToken(c)
	h.respond(c, user.Role, h.Store.SelectBooking(token, user.Role, body.BookingID))
}

// Back discards the detail view and shows the list again.
func (h ViewStateHandler) Back(c *gin.Context) {
	user, _ := middleware.SessionUser(c)
	token := middleware.SessionToken(c)
	h.respond(c, user.Role, h.Store.ClearBooking(token, user.Role))
}
