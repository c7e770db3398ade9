package backend

import (
	"context"
	"net/http"

	"tourgate/internal/domain"
)

// VerifyResult is the session check answer from the core backend.
type VerifyResult struct {
	Valid bool                `json:"valid"`
	User  *domain.SessionUser `json:"user"`
}

// Verify validates the opaque session token. A failed call reports an
// invalid session rather than an error; the guard treats both the same way.
func (c *Client) Verify(ctx context.Context, token string) (VerifyResult, error) {
	if token == "" {
		return VerifyResult{}, nil
	}
	var out VerifyResult
	if err := c.do(ctx, "auth.verify", http.MethodGet, "/api/auth/verify", token, nil, &out); err != nil {
		return VerifyResult{}, err
	}
	return out, nil
}

// Logout clears the session server-side. The returned Set-Cookie headers
// carry the backend's cookie expiry and must reach the browser.
func (c *Client) Logout(ctx context.Context, token string) ([]string, error) {
	return c.doSetCookies(ctx, "auth.logout", http.MethodPost, "/api/auth/logout", token, nil, nil)
}

// ForgotPassword asks the backend to send an OTP to the given email.
func (c *Client) ForgotPassword(ctx context.Context, email string) error {
	body := map[string]string{"email": email}
	return c.do(ctx, "auth.forgot_password", http.MethodPost, "/api/auth/forgot-password", "", body, nil)
}

// OTPLoginResult is the answer to a successful OTP verification. The session
// cookie is minted by the backend; SetCookies carries its Set-Cookie headers
// verbatim so the login actually reaches the browser.
type OTPLoginResult struct {
	User       *domain.SessionUser `json:"user"`
	SetCookies []string            `json:"-"`
}

// VerifyOTPLogin verifies the emailed OTP and logs the user in.
func (c *Client) VerifyOTPLogin(ctx context.Context, email, otp string) (OTPLoginResult, error) {
	body := map[string]string{"email": email, "otp": otp}
	var out OTPLoginResult
	setCookies, err := c.doSetCookies(ctx, "auth.verify_otp", http.MethodPost, "/api/auth/verify-otp-login", "", body, &out)
	if err != nil {
		return OTPLoginResult{}, err
	}
	out.SetCookies = setCookies
	return out, nil
}
