package backend

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"tourgate/internal/config"
	"tourgate/internal/domain"
	"tourgate/internal/logger"
)

func newTestClient(srvURL string) *Client {
	cfg := config.Config{
		BackendBaseURL:  srvURL,
		SessionCookie:   "token",
		UpstreamTimeout: 2 * time.Second,
	}
	return New(cfg, logger.NewNop(), nil)
}

func TestClientForwardsSessionCookie(t *testing.T) {
	var gotCookie string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if c, err := r.Cookie("token"); err == nil {
			gotCookie = c.Value
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"valid":true,"user":{"id":1,"name":"Ana","email":"a@x.com","role":"CUSTOMER"}}`))
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	result, err := c.Verify(context.Background(), "abc123")
	if err != nil {
		t.Fatalf("Verify error: %v", err)
	}
	if gotCookie != "abc123" {
		t.Errorf("forwarded cookie = %q, want abc123", gotCookie)
	}
	if !result.Valid || result.User == nil || result.User.Role != domain.RoleCustomer {
		t.Errorf("unexpected verify result: %+v", result)
	}
}

func TestClientEmptyTokenSkipsVerify(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	result, err := c.Verify(context.Background(), "")
	if err != nil {
		t.Fatalf("Verify error: %v", err)
	}
	if result.Valid {
		t.Error("empty token reported valid")
	}
	if called {
		t.Error("verify hit the backend with no token")
	}
}

func TestClientNon2xxBecomesUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"message":"not yours"}`))
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	_, err := c.ListMyBookings(context.Background(), "abc")
	up, ok := domain.AsUpstream(err)
	if !ok {
		t.Fatalf("expected UpstreamError, got %T: %v", err, err)
	}
	if up.Status != http.StatusForbidden || up.Msg != "not yours" {
		t.Errorf("upstream error = %+v", up)
	}
}

func TestClientTransportFailureBecomesUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nothing listening anymore

	c := newTestClient(srv.URL)
	_, err := c.ListMyBookings(context.Background(), "abc")
	if !domain.IsUnavailable(err) {
		t.Fatalf("expected UnavailableError, got %T: %v", err, err)
	}
}

func TestClientHonoursContextCancellation(t *testing.T) {
	blocked := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-blocked
	}))
	defer func() {
		close(blocked)
		srv.Close()
	}()

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()

	c := newTestClient(srv.URL)
	start := time.Now()
	_, err := c.ListMyBookings(ctx, "abc")
	if !domain.IsUnavailable(err) {
		t.Fatalf("expected UnavailableError after cancel, got %T: %v", err, err)
	}
	if time.Since(start) > time.Second {
		t.Error("cancelled request did not abort promptly")
	}
}

func TestGetTourPackageFiltersList(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/tour-packages/get-tour-packages" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"id":3,"title":"Kyushu","prices":500},{"id":4,"title":"Alps","prices":900}]`))
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	pkg, err := c.GetTourPackage(context.Background(), "abc", 3)
	if err != nil {
		t.Fatalf("GetTourPackage error: %v", err)
	}
	if pkg.Title != "Kyushu" || pkg.Price != 500 {
		t.Errorf("package = %+v", pkg)
	}

	_, err = c.GetTourPackage(context.Background(), "abc", 99)
	if !domain.IsNotFound(err) {
		t.Errorf("expected NotFoundError for missing id, got %v", err)
	}
}
