package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"tourgate/internal/domain"
	"tourgate/internal/http/middleware"
	"tourgate/internal/validation"
)

// RespondError sends a standard error payload with request_id included.
func RespondError(c *gin.Context, status int, message string, err error) {
	payload := gin.H{
		"message":    message,
		"request_id": middleware.GetRequestID(c),
	}
	if err != nil {
		payload["error"] = err.Error()
	}
	c.JSON(status, payload)
}

// RespondDomainError maps service errors to HTTP responses: form failures
// carry field messages, upstream answers keep their status, transport
// failures read as a bad gateway.
func RespondDomainError(c *gin.Context, err error) {
	var fields validation.FieldErrors
	if errors.As(err, &fields) {
		c.JSON(http.StatusBadRequest, gin.H{
			"message":    "validation failed",
			"fields":     fields,
			"request_id": middleware.GetRequestID(c),
		})
		return
	}

	switch {
	case domain.IsValidation(err):
		RespondError(c, http.StatusBadRequest, err.Error(), nil)
	case domain.IsNotFound(err):
		RespondError(c, http.StatusNotFound, err.Error(), nil)
	case domain.IsConflict(err):
		RespondError(c, http.StatusConflict, err.Error(), nil)
	case domain.IsUnauthorized(err):
		RespondError(c, http.StatusUnauthorized, err.Error(), nil)
	case domain.IsUnavailable(err):
		RespondError(c, http.StatusBadGateway, "booking service is unreachable", err)
	default:
		if up, ok := domain.AsUpstream(err); ok {
			msg := up.Msg
			if msg == "" {
				msg = "booking service rejected the request"
			}
			RespondError(c, up.Status, msg, nil)
			return
		}
		RespondError(c, http.StatusInternalServerError, "something went wrong", nil)
	}
}

// BindJSONOrError ensures the body is present and parsable.
func BindJSONOrError[T any](c *gin.Context, dst *T) bool {
	if c.Request.Body == nil {
		RespondError(c, http.StatusBadRequest, "empty body", nil)
		return false
	}
	if err := c.ShouldBindJSON(dst); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid payload", err)
		return false
	}
	return true
}

// IDParam parses a positive integer path parameter.
func IDParam(c *gin.Context, name string) (domain.ID, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id < 1 {
		RespondError(c, http.StatusBadRequest, "invalid id", nil)
		return 0, false
	}
	return domain.ID(id), true
}
