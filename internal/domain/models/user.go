package models

import "tourgate/internal/domain"

// User is an account as the core backend reports it. Employees and customers
// share this shape; Role tells them apart.
type User struct {
	ID        domain.ID   `json:"id"`
	Name      string      `json:"name"`
	Email     string      `json:"email"`
	Role      domain.Role `json:"role"`
	Status    string      `json:"status,omitempty"`
	CreatedAt string      `json:"createdAt,omitempty"`
	UpdatedAt string      `json:"updatedAt,omitempty"`
}
