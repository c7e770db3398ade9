package services

import (
	"context"

	"tourgate/internal/backend"
	"tourgate/internal/dashboard"
	"tourgate/internal/domain"
	"tourgate/internal/validation"
)

// Step is the forgot-password flow position.
type Step string

const (
	StepEmail   Step = "email"
	StepOTP     Step = "otp"
	StepSuccess Step = "success"
)

// FlowResult tells the UI which step to show next, with an inline message
// when the step did not advance. This flow is one of the few places upstream
// errors surface as text instead of a silent no-op.
type FlowResult struct {
	Step       Step   `json:"step"`
	Email      string `json:"email,omitempty"`
	Message    string `json:"message,omitempty"`
	RedirectTo string `json:"redirectTo,omitempty"`

	// SetCookies holds the backend's Set-Cookie headers on a successful
	// login; the handler replays them onto the gateway response.
	SetCookies []string `json:"-"`
}

type AuthService struct {
	Backend *backend.Client
	Forms   *validation.Validator
	Views   *dashboard.Store
}

// SendOTP starts the flow. Only a 2xx from the backend advances email→otp; a
// rejected email stays on the email step carrying the server's message, and
// transport failures read as a generic network error.
func (s AuthService) SendOTP(ctx context.Context, form validation.ForgotPasswordForm) (FlowResult, error) {
	if err := s.Forms.Struct(form); err != nil {
		return FlowResult{}, err
	}
	err := s.Backend.ForgotPassword(ctx, form.Email)
	if err == nil {
		return FlowResult{Step: StepOTP, Email: form.Email, Message: "OTP sent successfully. Please check your email."}, nil
	}
	if up, ok := domain.AsUpstream(err); ok {
		msg := up.Msg
		if msg == "" {
			msg = "Failed to send OTP"
		}
		return FlowResult{Step: StepEmail, Email: form.Email, Message: msg}, nil
	}
	if domain.IsUnavailable(err) {
		return FlowResult{Step: StepEmail, Email: form.Email, Message: "Network error. Please try again."}, nil
	}
	return FlowResult{}, err
}

// VerifyOTP completes the flow. On success the backend sets the session
// cookie and the result carries the role-specific dashboard destination.
func (s AuthService) VerifyOTP(ctx context.Context, form validation.OTPForm) (FlowResult, error) {
	if err := s.Forms.Struct(form); err != nil {
		return FlowResult{}, err
	}
	res, err := s.Backend.VerifyOTPLogin(ctx, form.Email, form.OTP)
	if err == nil {
		redirect := "/dashboard"
		if res.User != nil {
			redirect = DashboardPath(res.User.Role)
		}
		return FlowResult{Step: StepSuccess, Email: form.Email, RedirectTo: redirect, SetCookies: res.SetCookies}, nil
	}
	if up, ok := domain.AsUpstream(err); ok {
		msg := up.Msg
		if msg == "" {
			msg = "Invalid OTP"
		}
		return FlowResult{Step: StepOTP, Email: form.Email, Message: msg}, nil
	}
	if domain.IsUnavailable(err) {
		return FlowResult{Step: StepOTP, Email: form.Email, Message: "Network error. Please try again."}, nil
	}
	return FlowResult{}, err
}

// Logout clears the session upstream and drops any dashboard state held for
// the token. The returned Set-Cookie headers expire the browser's cookie.
func (s AuthService) Logout(ctx context.Context, token string) ([]string, error) {
	if s.Views != nil {
		s.Views.Drop(token)
	}
	return s.Backend.Logout(ctx, token)
}

// DashboardPath maps a role to its dashboard route.
func DashboardPath(role domain.Role) string {
	switch role {
	case domain.RoleSuperAdmin:
		return "/dashboard/super-admin"
	case domain.RoleEmployee:
		return "/dashboard/employee"
	default:
		return "/dashboard/customer"
	}
}
