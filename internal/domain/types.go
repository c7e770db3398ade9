package domain

// ID is used across domain entities.
type ID int64

// Role is an account role as reported by the core backend.
type Role string

const (
	RoleCustomer   Role = "CUSTOMER"
	RoleEmployee   Role = "EMPLOYEE"
	RoleSuperAdmin Role = "SUPER_ADMIN"
)

// SessionUser is the verified identity attached to a request by the guard.
type SessionUser struct {
	ID    ID     `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}
