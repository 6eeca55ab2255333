package model

// User roles
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User represents a member account
type User struct {
	Base
	Name         string  `json:"name" db:"name"`
	Email        string  `json:"email" db:"email"`
	PasswordHash string  `json:"-" db:"password_hash"`
	Phone        *string `json:"phone,omitempty" db:"phone"`
	Role         string  `json:"role" db:"role"`
}

// IsAdmin reports whether the user holds the admin role
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// UpdateRoleRequest changes an account's role
type UpdateRoleRequest struct {
	Role string `json:"role" binding:"required,oneof=user admin"`
}
