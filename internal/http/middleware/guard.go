package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tourgate/internal/backend"
	"tourgate/internal/domain"
	"tourgate/internal/logger"
)

const (
	sessionUserKey  = "session_user"
	sessionTokenKey = "session_token"
)

// Guard verifies the opaque session cookie against the core backend and
// attaches the user. It is the only authorization point: handlers behind it
// perform no further checks.
type Guard struct {
	Backend    *backend.Client
	CookieName string
	Log        logger.Logger
}

// Require admits sessions whose verified role is in roles; an empty list
// admits any valid session. Unauthenticated or wrong-role requests get 401
// with the login destination, before any protected handler runs.
func (g Guard) Require(roles ...domain.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(g.CookieName)
		if err != nil || token == "" {
			reject(c)
			return
		}

		result, err := g.Backend.Verify(c.Request.Context(), token)
		if err != nil || !result.Valid || result.User == nil {
			if err != nil {
				g.Log.Warn("session verification failed", "request_id", GetRequestID(c), "error", err)
			}
			reject(c)
			return
		}

		if len(roles) > 0 && !roleAllowed(result.User.Role, roles) {
			reject(c)
			return
		}

		c.Set(sessionUserKey, *result.User)
		c.Set(sessionTokenKey, token)
		c.Next()
	}
}

func roleAllowed(role domain.Role, roles []domain.Role) bool {
	for _, r := range roles {
		if r == role {
			return true
		}
	}
	return false
}

func reject(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"message":  "unauthorized",
		"redirect": "/login",
	})
}

// SessionUser returns the verified user the guard attached.
func SessionUser(c *gin.Context) (domain.SessionUser, bool) {
	v, ok := c.Get(sessionUserKey)
	if !ok {
		return domain.SessionUser{}, false
	}
	user, ok := v.(domain.SessionUser)
	return user, ok
}

// SessionToken returns the raw session cookie value for upstream forwarding.
func SessionToken(c *gin.Context) string {
	if v, ok := c.Get(sessionTokenKey); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
