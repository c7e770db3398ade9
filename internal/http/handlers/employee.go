package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tourgate/internal/domain/models"
	"tourgate/internal/http/middleware"
	"tourgate/internal/services"
)

// EmployeeHandler covers the employee's assigned-bookings workflow.
type EmployeeHandler struct {
	Assignments services.AssignmentService
}

// AssignedBookings lists the bookings assigned to the session employee.
func (h EmployeeHandler) AssignedBookings(c *gin.Context) {
	views, err := h.Assignments.ListAssignedToMe(c.Request.Context(), middleware.SessionToken(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, views)
}

// BookingDetails is the employee-scoped detail fetch.
func (h EmployeeHandler) BookingDetails(c *gin.Context) {
	id, ok := IDParam(c, "id")
	if !ok {
		return
	}
	view, err := h.Assignments.EmployeeDetails(c.Request.Context(), middleware.SessionToken(c), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// UpdateStatus accepts or rejects an assigned booking. Rejections must carry
// notes; the service enforces it.
func (h EmployeeHandler) UpdateStatus(c *gin.Context) {
	id, ok := IDParam(c, "id")
	if !ok {
		return
	}
	var body struct {
		Status models.AssignmentStatus `json:"status"`
		Notes  string                  `json:"notes"`
	}
	if !BindJSONOrError(c, &body) {
		return
	}
	if err := h.Assignments.Decide(c.Request.Context(), middleware.SessionToken(c), id, body.Status, body.Notes); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
