package services

import (
	"context"

	"tourgate/internal/backend"
	"tourgate/internal/domain"
	"tourgate/internal/domain/models"
	"tourgate/internal/validation"
)

// EmployeeView decorates an employee row with its status badge.
type EmployeeView struct {
	models.User
	Badge models.Badge `json:"badge"`
}

type UserService struct {
	Backend *backend.Client
	Forms   *validation.Validator
}

// Me returns the current user's profile.
func (s UserService) Me(ctx context.Context, token string) (models.User, error) {
	return s.Backend.Me(ctx, token)
}

// UpdateProfile validates and applies a profile change. Errors here surface
// as inline text, not a silent no-op.
func (s UserService) UpdateProfile(ctx context.Context, token string, form validation.ProfileForm) (models.User, error) {
	if err := s.Forms.Struct(form); err != nil {
		return models.User{}, err
	}
	return s.Backend.UpdateMe(ctx, token, backend.ProfileUpdate{
		Name:            form.Name,
		Email:           form.Email,
		CurrentPassword: form.CurrentPassword,
		NewPassword:     form.NewPassword,
	})
}

// DeleteAccount removes the current user's own account.
func (s UserService) DeleteAccount(ctx context.Context, token string) error {
	return s.Backend.DeleteMe(ctx, token)
}

// ListEmployees returns all staff accounts as decorated views.
func (s UserService) ListEmployees(ctx context.Context, token string) ([]EmployeeView, error) {
	employees, err := s.Backend.ListEmployees(ctx, token)
	if err != nil {
		return nil, err
	}
	views := make([]EmployeeView, 0, len(employees))
	for _, e := range employees {
		views = append(views, EmployeeView{User: e, Badge: models.BadgeFor(e.Status)})
	}
	return views, nil
}

// CreateEmployee validates and forwards an employee-creation form.
func (s UserService) CreateEmployee(ctx context.Context, token string, form validation.EmployeeForm) (models.User, error) {
	if err := s.Forms.Struct(form); err != nil {
		return models.User{}, err
	}
	return s.Backend.CreateEmployee(ctx, token, backend.NewEmployee{
		Name:     form.Name,
		Email:    form.Email,
		Password: form.Password,
		Role:     form.Role,
	})
}

// DeleteEmployee removes a staff account.
func (s UserService) DeleteEmployee(ctx context.Context, token string, id domain.ID) error {
	if id < 1 {
		return domain.ValidationError{Field: "id", Msg: "id is required"}
	}
	return s.Backend.DeleteEmployee(ctx, token, id)
}
