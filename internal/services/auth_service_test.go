package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"tourgate/internal/domain"
	"tourgate/internal/validation"
)

func TestSendOTPAdvancesOnSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/auth/forgot-password" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	svc := AuthService{Backend: newBackend(srv.URL), Forms: validation.New()}
	res, err := svc.SendOTP(context.Background(), validation.ForgotPasswordForm{Email: "ana@example.com"})
	if err != nil {
		t.Fatalf("SendOTP error: %v", err)
	}
	if res.Step != StepOTP {
		t.Errorf("step = %q, want otp", res.Step)
	}
	if res.Email != "ana@example.com" {
		t.Errorf("email = %q", res.Email)
	}
}

func TestSendOTPStaysOnEmailWhenRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message":"No account found with this email"}`))
	}))
	defer srv.Close()

	svc := AuthService{Backend: newBackend(srv.URL), Forms: validation.New()}
	res, err := svc.SendOTP(context.Background(), validation.ForgotPasswordForm{Email: "nobody@example.com"})
	if err != nil {
		t.Fatalf("SendOTP error: %v", err)
	}
	if res.Step != StepEmail {
		t.Errorf("step = %q, want email", res.Step)
	}
	if res.Message != "No account found with this email" {
		t.Errorf("message = %q", res.Message)
	}
}

func TestSendOTPReportsNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	svc := AuthService{Backend: newBackend(srv.URL), Forms: validation.New()}
	res, err := svc.SendOTP(context.Background(), validation.ForgotPasswordForm{Email: "ana@example.com"})
	if err != nil {
		t.Fatalf("SendOTP error: %v", err)
	}
	if res.Step != StepEmail || res.Message != "Network error. Please try again." {
		t.Errorf("result = %+v", res)
	}
}

func TestSendOTPValidatesEmail(t *testing.T) {
	svc := AuthService{Backend: newBackend("http://unused.invalid"), Forms: validation.New()}
	if _, err := svc.SendOTP(context.Background(), validation.ForgotPasswordForm{Email: "not-an-email"}); err == nil {
		t.Error("malformed email passed validation")
	}
}

func TestVerifyOTPRedirectsByRole(t *testing.T) {
	cases := []struct {
		role     domain.Role
		redirect string
	}{
		{domain.RoleCustomer, "/dashboard/customer"},
		{domain.RoleEmployee, "/dashboard/employee"},
		{domain.RoleSuperAdmin, "/dashboard/super-admin"},
	}
	for _, tc := range cases {
		role := tc.role
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/api/auth/verify-otp-login" {
				t.Errorf("unexpected path %s", r.URL.Path)
			}
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"user":{"id":1,"name":"Ana","email":"ana@example.com","role":"` + string(role) + `"}}`))
		}))

		svc := AuthService{Backend: newBackend(srv.URL), Forms: validation.New()}
		res, err := svc.VerifyOTP(context.Background(), validation.OTPForm{Email: "ana@example.com", OTP: "123456"})
		srv.Close()
		if err != nil {
			t.Fatalf("VerifyOTP(%s) error: %v", tc.role, err)
		}
		if res.Step != StepSuccess || res.RedirectTo != tc.redirect {
			t.Errorf("VerifyOTP(%s) = %+v, want redirect %s", tc.role, res, tc.redirect)
		}
	}
}

func TestVerifyOTPStaysOnOTPWhenWrong(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"message":"Invalid or expired OTP"}`))
	}))
	defer srv.Close()

	svc := AuthService{Backend: newBackend(srv.URL), Forms: validation.New()}
	res, err := svc.VerifyOTP(context.Background(), validation.OTPForm{Email: "ana@example.com", OTP: "000000"})
	if err != nil {
		t.Fatalf("VerifyOTP error: %v", err)
	}
	if res.Step != StepOTP || res.Message != "Invalid or expired OTP" {
		t.Errorf("result = %+v", res)
	}
}

func TestVerifyOTPRejectsMalformedCode(t *testing.T) {
	svc := AuthService{Backend: newBackend("http://unused.invalid"), Forms: validation.New()}
	for _, otp := range []string{"12345", "1234567", "12a456"} {
		if _, err := svc.VerifyOTP(context.Background(), validation.OTPForm{Email: "ana@example.com", OTP: otp}); err == nil {
			t.Errorf("OTP %q passed validation", otp)
		}
	}
}
