package models

import (
	"time"
)

// User role levels
const (
	RoleNormal = "normal"
	RoleAdmin  = "admin"
)

// UserDB represents a user record in the database
type UserDB struct {
	UserID       int64      `json:"id" db:"user_id"`                // Primary key
	Username     string     `json:"username" db:"username"`         // Unique login name
	DisplayName  string     `json:"display_name" db:"display_name"` // Name shown to other users
	PasswordHash string     `json:"-" db:"password_hash"`           // bcrypt hash
	IDType       string     `json:"id_type" db:"id_type"`           // Identity document type
	IDNumber     string     `json:"id_number" db:"id_number"`       // Unique identity document number
	Phone        string     `json:"phone" db:"phone"`               // Unique phone number
	Role         string     `json:"role" db:"role"`                 // normal | admin
	Description  *string    `json:"description" db:"description"`   // Optional self description
	CreatedAt    time.Time  `json:"created_at" db:"created_at"`     // Registration timestamp
	UpdatedAt    *time.Time `json:"updated_at" db:"updated_at"`     // Last profile/password update
}

// NewUser holds the validated fields of a registration.
type NewUser struct {
	Username     string
	DisplayName  string
	PasswordHash string
	IDType       string
	IDNumber     string
	Phone        string
	Description  *string
}

// ProfilePatch is a partial profile update; nil fields are left untouched.
type ProfilePatch struct {
	DisplayName *string
	Phone       *string
	Description *string
}

// IsEmpty reports whether the patch changes nothing.
func (p ProfilePatch) IsEmpty() bool {
	return p.DisplayName == nil && p.Phone == nil && p.Description == nil
}

// UserActivity counts what a user has done on the platform.
type UserActivity struct {
	RequestsCount  int `db:"requests_count"`
	ResponsesCount int `db:"responses_count"`
	CompletedCount int `db:"completed_count"`
}

// Actor is the authenticated caller of an operation.
type Actor struct {
	UserID   int64
	Username string
	Role     string
}

// IsAdmin reports whether the actor holds the admin role.
func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}

// UserProfile is a user together with their activity counts.
type UserProfile struct {
	User     UserDB
	Activity UserActivity
}
