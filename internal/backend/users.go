package backend

import (
	"context"
	"fmt"
	"net/http"

	"tourgate/internal/domain"
	"tourgate/internal/domain/models"
)

// Me fetches the current user's profile.
func (c *Client) Me(ctx context.Context, token string) (models.User, error) {
	var out models.User
	if err := c.do(ctx, "users.me", http.MethodGet, "/api/users/me", token, nil, &out); err != nil {
		return models.User{}, err
	}
	return out, nil
}

// ProfileUpdate mirrors the profile form the backend expects. NewPassword is
// optional; the current password is always required.
type ProfileUpdate struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword,omitempty"`
}

// UpdateMe updates the current user's own account.
func (c *Client) UpdateMe(ctx context.Context, token string, upd ProfileUpdate) (models.User, error) {
	var out models.User
	if err := c.do(ctx, "users.update_me", http.MethodPut, "/api/users/me", token, upd, &out); err != nil {
		return models.User{}, err
	}
	return out, nil
}

// DeleteMe deletes the current user's own account.
func (c *Client) DeleteMe(ctx context.Context, token string) error {
	return c.do(ctx, "users.delete_me", http.MethodDelete, "/api/users/me", token, nil, nil)
}

// ListEmployees returns all employee accounts.
func (c *Client) ListEmployees(ctx context.Context, token string) ([]models.User, error) {
	var out []models.User
	if err := c.do(ctx, "users.list_employees", http.MethodGet, "/api/users/employees", token, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// NewEmployee is the employee-creation form forwarded to the backend.
type NewEmployee struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// CreateEmployee creates an employee account.
func (c *Client) CreateEmployee(ctx context.Context, token string, emp NewEmployee) (models.User, error) {
	var out models.User
	if err := c.do(ctx, "users.create_employee", http.MethodPost, "/api/users/employees", token, emp, &out); err != nil {
		return models.User{}, err
	}
	return out, nil
}

// DeleteEmployee removes an employee account.
func (c *Client) DeleteEmployee(ctx context.Context, token string, id domain.ID) error {
	path := fmt.Sprintf("/api/users/employees/%d", id)
	return c.do(ctx, "users.delete_employee", http.MethodDelete, path, token, nil, nil)
}
