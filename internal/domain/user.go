package domain

import (
	"strings"
	"time"

	"logistics-dashboard-service/internal/apperr"
)

// UserRole represents the dashboard role of a user.
type UserRole string

// List of possible user roles. The role is fixed at creation and drives the
// driver/manager split on the client.
const (
	RoleDriver  UserRole = "driver"
	RoleManager UserRole = "manager"
)

var allowedRoles = [...]UserRole{RoleDriver, RoleManager}

// Valid checks if the UserRole is valid.
func (r UserRole) Valid() bool {
	for _, v := range allowedRoles {
		if r == v {
			return true
		}
	}
	return false
}

// User represents a dashboard account.
type User struct {
	ID             int64      `json:"id"`
	Username       string     `json:"username"`
	Password       *string    `json:"password,omitempty"`
	Email          *string    `json:"email,omitempty"`
	GoogleID       *string    `json:"googleId,omitempty"`
	Name           *string    `json:"name,omitempty"`
	Role           UserRole   `json:"role"`
	ProfilePicture *string    `json:"profilePicture,omitempty"`
	CreatedAt      time.Time  `json:"createdAt"`
	LastLogin      *time.Time `json:"lastLogin,omitempty"`
}

// InsertUser is the subset of User accepted on creation.
type InsertUser struct {
	Username       string   `json:"username"`
	Password       *string  `json:"password,omitempty"`
	Email          *string  `json:"email,omitempty"`
	GoogleID       *string  `json:"googleId,omitempty"`
	Name           *string  `json:"name,omitempty"`
	Role           UserRole `json:"role"`
	ProfilePicture *string  `json:"profilePicture,omitempty"`
}

// Validate checks the insertable payload and defaults an empty role to driver.
func (in *InsertUser) Validate() error {
	var verr apperr.ValidationError
	if strings.TrimSpace(in.Username) == "" {
		verr.Add("username", "required")
	}
	if in.Role == "" {
		in.Role = RoleDriver
	} else if !in.Role.Valid() {
		verr.Add("role", "must be one of: driver, manager")
	}
	if in.Email != nil && !strings.Contains(*in.Email, "@") {
		verr.Add("email", "must be a valid email address")
	}
	return verr.Err()
}
