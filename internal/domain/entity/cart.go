package entity

import (
	"time"

	"github.com/google/uuid"
)

// CartItem is a single product line in a user's cart.
// The (UserID, ProductID) pair is unique; adding a product already in
// the cart bumps the quantity instead of inserting a duplicate row.
type CartItem struct {
	ID        uuid.UUID // The unique identifier for the cart line.
	UserID    uuid.UUID // The owning user.
	ProductID uuid.UUID // The product referenced by this line.
	Quantity  int       // Number of units, always >= 1.
	Product   *Product  // The referenced product, populated on reads for price/stock checks.
	CreatedAt time.Time // Timestamp of when this line was added.
	UpdatedAt time.Time // Timestamp of the last quantity change.
}

// LineTotalMinor returns the line total in minor currency units.
// Returns zero when the product association is not loaded.
func (ci *CartItem) LineTotalMinor() int64 {
	if ci.Product == nil {
		return 0
	}

	return ci.Product.PriceMinor * int64(ci.Quantity)
}
