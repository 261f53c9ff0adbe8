package models

import (
	"fmt"
	"strings"
)

// Role is the authorization role of an account.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleDriver Role = "driver"
	RoleClient Role = "client"
)

// Is reports whether r names the same role as other, ignoring case.
func (r Role) Is(other Role) bool {
	return strings.EqualFold(string(r), string(other))
}

// UserStatus is the lifecycle state of an account.
type UserStatus string

const (
	UserStatusActive    UserStatus = "active"
	UserStatusInactive  UserStatus = "inactive"
	UserStatusSuspended UserStatus = "suspended"
)

// User represents an account of the bus-scheduling system: administrators,
// drivers and clients.
//
// Password is write-only: it is accepted from forms and sent inside explicit
// request bodies ([RegisterRequest], [LoginRequest]) but never serialized as
// part of a User.
type User struct {
	// ID is assigned by the server. Zero means "not yet persisted".
	ID int64 `json:"id"`

	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
	Phone string `json:"phone,omitempty"`

	Role   Role       `json:"role" validate:"required,oneof=admin driver client"`
	Status UserStatus `json:"status,omitempty" validate:"omitempty,oneof=active inactive suspended"`

	// Password is never marshalled.
	Password string `json:"-"`
}

// String returns "<name> (<email>)", the label used in pickers and tables.
func (u User) String() string {
	return fmt.Sprintf("%s (%s)", u.Name, u.Email)
}

// UserStatuses lists every known status in display order.
var UserStatuses = []UserStatus{UserStatusActive, UserStatusInactive, UserStatusSuspended}

// Roles lists every known role in display order.
var Roles = []Role{RoleAdmin, RoleDriver, RoleClient}
