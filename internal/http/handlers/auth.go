package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tourgate/internal/http/middleware"
	"tourgate/internal/services"
	"tourgate/internal/validation"
)

type AuthHandler struct {
	Auth services.AuthService
}

// ForgotPassword starts the OTP flow. The step in the answer tells the UI
// whether it advanced; non-2xx upstream answers do not advance it.
func (h AuthHandler) ForgotPassword(c *gin.Context) {
	var form validation.ForgotPasswordForm
	if !BindJSONOrError(c, &form) {
		return
	}
	result, err := h.Auth.SendOTP(c.Request.Context(), form)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// VerifyOTP completes the flow and reports the dashboard to redirect to.
// The backend's Set-Cookie headers are replayed verbatim so the browser holds
// the session before it follows the redirect.
func (h AuthHandler) VerifyOTP(c *gin.Context) {
	var form validation.OTPForm
	if !BindJSONOrError(c, &form) {
		return
	}
	result, err := h.Auth.VerifyOTP(c.Request.Context(), form)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	relaySetCookies(c, result.SetCookies)
	c.JSON(http.StatusOK, result)
}

// Logout clears the session upstream and forgets dashboard state. The
// backend's cookie-expiring headers pass through to the browser.
func (h AuthHandler) Logout(c *gin.Context) {
	token := middleware.SessionToken(c)
	setCookies, err := h.Auth.Logout(c.Request.Context(), token)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	relaySetCookies(c, setCookies)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// relaySetCookies copies upstream Set-Cookie headers onto the response
// unchanged; parsing and re-encoding them could drop attributes.
func relaySetCookies(c *gin.Context, setCookies []string) {
	for _, raw := range setCookies {
		c.Writer.Header().Add("Set-Cookie", raw)
	}
}

// Session reports the guard-verified user, the "who am I" the dashboards
// mount with.
func (h AuthHandler) Session(c *gin.Context) {
	user, ok := middleware.SessionUser(c)
	if !ok {
		RespondError(c, http.StatusUnauthorized, "unauthorized", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"valid": true, "user": user})
}
