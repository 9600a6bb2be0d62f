// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Address is a shipping address owned by a user.
// At most one address per user may be flagged as the default; the
// persistence layer clears sibling flags inside the same transaction
// that sets a new default.
type Address struct {
	ID        uuid.UUID // The unique identifier for the address.
	UserID    uuid.UUID // The owning user. All reads and writes are scoped to this ID.
	Label     string    // A user-defined label, e.g., "Home", "Office".
	Line1     string    // First street address line.
	Line2     string    // Optional second street address line.
	City      string    // City name.
	State     string    // State or province name.
	Pincode   string    // Postal code, exactly 6 digits.
	Phone     string    // Contact number for delivery, exactly 10 digits.
	IsDefault bool      // Indicates if this is the user's default shipping address.
	CreatedAt time.Time // Timestamp of when this address was created.
	UpdatedAt time.Time // Timestamp of the last modification.
}
