package domain

import (
	"time"
)

// User represents a dashboard user.
type User struct {
	ID           string
	Email        string
	Name         string
	PasswordHash string
	Role         Role
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Role represents a user's access level.
type Role string

const (
	// RoleAdmin has full access, including deletes.
	RoleAdmin Role = "admin"

	// RoleStaff can create postings and transfers and manage the registry.
	RoleStaff Role = "staff"

	// RoleViewer can only read.
	RoleViewer Role = "viewer"
)

var validRoles = map[Role]bool{
	RoleAdmin:  true,
	RoleStaff:  true,
	RoleViewer: true,
}

// IsValid checks if the role is a valid role.
func (r Role) IsValid() bool {
	return validRoles[r]
}

// CanWrite checks if the role can create or modify records.
func (r Role) CanWrite() bool {
	return r == RoleAdmin || r == RoleStaff
}

// CanDelete checks if the role can delete records.
func (r Role) CanDelete() bool {
	return r == RoleAdmin
}
