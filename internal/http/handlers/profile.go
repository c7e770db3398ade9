package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tourgate/internal/http/middleware"
	"tourgate/internal/services"
	"tourgate/internal/validation"
)

// ProfileHandler is shared by every role's profile section.
type ProfileHandler struct {
	Users services.UserService
}

// Get returns the current user's profile.
func (h ProfileHandler) Get(c *gin.Context) {
	user, err := h.Users.Me(c.Request.Context(), middleware.SessionToken(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// Update applies a profile change and surfaces failures as inline text.
func (h ProfileHandler) Update(c *gin.Context) {
	var form validation.ProfileForm
	if !BindJSONOrError(c, &form) {
		return
	}
	updated, err := h.Users.UpdateProfile(c.Request.Context(), middleware.SessionToken(c), form)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// Delete removes the current user's own account.
func (h ProfileHandler) Delete(c *gin.Context) {
	if err := h.Users.DeleteAccount(c.Request.Context(), middleware.SessionToken(c)); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
