package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tourgate/internal/http/middleware"
	"tourgate/internal/services"
	"tourgate/internal/validation"
)

type PackageHandler struct {
	Packages services.PackageService
}

// List returns all tour packages for browsing.
func (h PackageHandler) List(c *gin.Context) {
	packages, err := h.Packages.List(c.Request.Context(), middleware.SessionToken(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, packages)
}

// Get returns one package with locations and itinerary.
func (h PackageHandler) Get(c *gin.Context) {
	id, ok := IDParam(c, "id")
	if !ok {
		return
	}
	pkg, err := h.Packages.Get(c.Request.Context(), middleware.SessionToken(c), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, pkg)
}

// Destinations lists all destinations.
func (h PackageHandler) Destinations(c *gin.Context) {
	destinations, err := h.Packages.Destinations(c.Request.Context(), middleware.SessionToken(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, destinations)
}

// Destination returns one destination with its owning package.
func (h PackageHandler) Destination(c *gin.Context) {
	id, ok := IDParam(c, "id")
	if !ok {
		return
	}
	destination, err := h.Packages.Destination(c.Request.Context(), middleware.SessionToken(c), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, destination)
}

// Create is the employee authoring endpoint.
func (h PackageHandler) Create(c *gin.Context) {
	var form validation.TourPackageForm
	if !BindJSONOrError(c, &form) {
		return
	}
	created, err := h.Packages.Create(c.Request.Context(), middleware.SessionToken(c), form)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}
