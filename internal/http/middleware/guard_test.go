package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"tourgate/internal/backend"
	"tourgate/internal/config"
	"tourgate/internal/domain"
	"tourgate/internal/logger"
)

func newGuardedRouter(t *testing.T, verifyBody string, roles ...domain.Role) (*gin.Engine, func()) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/auth/verify" {
			t.Errorf("unexpected upstream path %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(verifyBody))
	}))

	cfg := config.Config{
		BackendBaseURL:  upstream.URL,
		SessionCookie:   "token",
		UpstreamTimeout: 2 * time.Second,
	}
	guard := Guard{
		Backend:    backend.New(cfg, logger.NewNop(), nil),
		CookieName: "token",
		Log:        logger.NewNop(),
	}

	r := gin.New()
	r.GET("/protected", guard.Require(roles...), func(c *gin.Context) {
		user, ok := SessionUser(c)
		if !ok {
			t.Error("guard admitted request without attaching the user")
		}
		c.JSON(http.StatusOK, gin.H{"name": user.Name, "token": SessionToken(c)})
	})
	return r, upstream.Close
}

func doRequest(r *gin.Engine, cookie string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: "token", Value: cookie})
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestGuardRejectsMissingCookie(t *testing.T) {
	r, closeUpstream := newGuardedRouter(t, `{"valid":true,"user":{"id":1,"role":"CUSTOMER"}}`)
	defer closeUpstream()

	w := doRequest(r, "")
	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
	if body := w.Body.String(); body == "" || !containsAll(body, `"redirect":"/login"`) {
		t.Errorf("body = %s, want login redirect", body)
	}
}

func TestGuardRejectsInvalidSession(t *testing.T) {
	r, closeUpstream := newGuardedRouter(t, `{"valid":false}`)
	defer closeUpstream()

	if w := doRequest(r, "expired"); w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
}

func TestGuardRejectsWrongRole(t *testing.T) {
	r, closeUpstream := newGuardedRouter(t,
		`{"valid":true,"user":{"id":1,"name":"Ana","role":"CUSTOMER"}}`,
		domain.RoleSuperAdmin)
	defer closeUpstream()

	if w := doRequest(r, "abc"); w.Code != http.StatusUnauthorized {
		t.Errorf("customer reaching admin route: status = %d, want 401", w.Code)
	}
}

func TestGuardAdmitsMatchingRole(t *testing.T) {
	r, closeUpstream := newGuardedRouter(t,
		`{"valid":true,"user":{"id":1,"name":"Ana","role":"CUSTOMER"}}`,
		domain.RoleCustomer)
	defer closeUpstream()

	w := doRequest(r, "abc")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
	}
	if !containsAll(w.Body.String(), `"name":"Ana"`, `"token":"abc"`) {
		t.Errorf("body = %s", w.Body.String())
	}
}

func TestGuardAnyRoleAdmitsValidSession(t *testing.T) {
	r, closeUpstream := newGuardedRouter(t,
		`{"valid":true,"user":{"id":2,"name":"Budi","role":"EMPLOYEE"}}`)
	defer closeUpstream()

	if w := doRequest(r, "abc"); w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", w.Code)
	}
}

func containsAll(s string, subs ...string) bool {
	for _, sub := range subs {
		if !strings.Contains(s, sub) {
			return false
		}
	}
	return true
}
