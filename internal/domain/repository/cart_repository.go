package repository

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/errors"

	"github.com/google/uuid"
)

// ErrCartItemNotFound is returned when a cart line is not found under
// the requesting user.
var ErrCartItemNotFound = errors.New("cart item not found")

// CartRepository defines the interface for cart database operations.
type CartRepository interface {
	// Upsert inserts a cart line or, when the user already has the
	// product in the cart, adds the quantity to the existing line.
	Upsert(ctx context.Context, item *entity.CartItem) error

	// FindByUser retrieves the user's cart lines with products loaded,
	// oldest first.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.CartItem, error)

	// FindByID retrieves a cart line owned by the given user.
	FindByID(ctx context.Context, userID, itemID uuid.UUID) (*entity.CartItem, error)

	// UpdateQuantity sets the quantity of a cart line owned by the user.
	UpdateQuantity(ctx context.Context, userID, itemID uuid.UUID, quantity int) error

	// Delete removes a cart line owned by the user.
	Delete(ctx context.Context, userID, itemID uuid.UUID) error

	// Clear removes all cart lines for a user. Called inside the
	// checkout transaction after the order snapshot is taken.
	Clear(ctx context.Context, userID uuid.UUID) error
}
