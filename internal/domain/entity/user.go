// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// UserStatus represents the lifecycle state of a user account.
// Accounts are never deleted; they are soft-disabled instead.
type UserStatus string

const (
	// UserStatusActive indicates a normal, usable account.
	UserStatusActive UserStatus = "active"
	// UserStatusDisabled indicates an account blocked by an administrator.
	UserStatusDisabled UserStatus = "disabled"
)

// IsValid checks if the UserStatus is a valid value.
func (s UserStatus) IsValid() bool {
	switch s {
	case UserStatusActive, UserStatusDisabled:
		return true
	default:
		return false
	}
}

// User is the core identity entity, representing a customer or an administrator.
type User struct {
	ID            uuid.UUID  // The unique identifier for the user.
	Email         string     // The user's login identifier, unique across the system.
	Name          string     // The user's display name.
	Phone         string     // The user's mobile number, normalized to 10 digits.
	PasswordHash  string     // The bcrypt hash of the user's password. Never serialized.
	Role          Role       // The user's role (customer or admin).
	Status        UserStatus // Soft-disable state; disabled users cannot authenticate.
	EmailVerified bool       // Whether the email address has been verified.
	PhoneVerified bool       // Whether the phone number has been verified via OTP.
	CreatedAt     time.Time  // Timestamp of account creation.
	UpdatedAt     time.Time  // Timestamp of the last modification.
}

// IsActive reports whether the account may authenticate and act.
func (u *User) IsActive() bool {
	return u.Status == UserStatusActive
}
