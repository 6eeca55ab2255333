package model

import "github.com/google/uuid"

// Caller identifies the authenticated requester, resolved from the session token
type Caller struct {
	UserID uuid.UUID
	Email  string
	Role   string
}

// IsAdmin reports whether the caller holds the admin role
func (c Caller) IsAdmin() bool {
	return c.Role == RoleAdmin
}

// RegisterRequest creates a new account. Plan optionally purchases a
// membership in the same step (the checkout flow registers first).
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone"`
	Password string `json:"password" binding:"required,min=6"`
	Plan     string `json:"plan"`
}

// LoginRequest authenticates an existing account
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// TokenResponse is returned by register and login
type TokenResponse struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}
