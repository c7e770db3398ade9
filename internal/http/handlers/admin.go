package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"tourgate/internal/domain"
	"tourgate/internal/http/middleware"
	"tourgate/internal/services"
	"tourgate/internal/validation"
)

// AdminHandler covers the super-admin workflows: booking assignment,
// employee management and revenue reporting.
type AdminHandler struct {
	Assignments services.AssignmentService
	Users       services.UserService
	Revenue     services.RevenueService
}

// Bookings returns the three booking partitions as one snapshot.
func (h AdminHandler) Bookings(c *gin.Context) {
	partitions, err := h.Assignments.Partitions(c.Request.Context(), middleware.SessionToken(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, partitions)
}

// Assign links a booking to an employee and returns refreshed partitions so
// both tables change together.
func (h AdminHandler) Assign(c *gin.Context) {
	id, ok := IDParam(c, "id")
	if !ok {
		return
	}
	var body struct {
		EmployeeID domain.ID `json:"employeeId"`
	}
	if !BindJSONOrError(c, &body) {
		return
	}
	partitions, err := h.Assignments.Assign(c.Request.Context(), middleware.SessionToken(c), id, body.EmployeeID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, partitions)
}

// RemoveBooking deletes an unassigned booking and returns refreshed
// partitions.
func (h AdminHandler) RemoveBooking(c *gin.Context) {
	id, ok := IDParam(c, "id")
	if !ok {
		return
	}
	partitions, err := h.Assignments.Remove(c.Request.Context(), middleware.SessionToken(c), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, partitions)
}

// Employees lists staff accounts.
func (h AdminHandler) Employees(c *gin.Context) {
	views, err := h.Users.ListEmployees(c.Request.Context(), middleware.SessionToken(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, views)
}

// CreateEmployee adds a staff account.
func (h AdminHandler) CreateEmployee(c *gin.Context) {
	var form validation.EmployeeForm
	if !BindJSONOrError(c, &form) {
		return
	}
	created, err := h.Users.CreateEmployee(c.Request.Context(), middleware.SessionToken(c), form)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// DeleteEmployee removes a staff account.
func (h AdminHandler) DeleteEmployee(c *gin.Context) {
	id, ok := IDParam(c, "id")
	if !ok {
		return
	}
	if err := h.Users.DeleteEmployee(c.Request.Context(), middleware.SessionToken(c), id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// RevenueReport returns the joined revenue view.
func (h AdminHandler) RevenueReport(c *gin.Context) {
	report, err := h.Revenue.Report(c.Request.Context(), middleware.SessionToken(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// RevenueReportPDF streams the report as a download.
func (h AdminHandler) RevenueReportPDF(c *gin.Context) {
	raw, err := h.Revenue.ExportPDF(c.Request.Context(), middleware.SessionToken(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	filename := fmt.Sprintf("revenue-report-%s.pdf", time.Now().UTC().Format("2006-01-02"))
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", raw)
}
