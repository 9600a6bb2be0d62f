package repository

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/errors"

	"github.com/google/uuid"
)

// ErrOrderNotFound is returned when an order is not found under the
// requesting scope.
var ErrOrderNotFound = errors.New("order not found")

// OrderRepository defines the interface for order database operations.
type OrderRepository interface {
	// Create persists a new order together with its item snapshot.
	Create(ctx context.Context, order *entity.Order) error

	// FindByID retrieves an order with its items, scoped to the owning
	// user. Pass uuid.Nil as userID for an unscoped (admin) lookup.
	FindByID(ctx context.Context, userID, orderID uuid.UUID) (*entity.Order, error)

	// FindByUser retrieves a user's orders, newest first.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error)

	// List retrieves orders matching the list parameters across all
	// users, newest first, along with the total match count.
	List(ctx context.Context, params ListParams) ([]*entity.Order, int64, error)

	// Update persists changes to an existing order.
	Update(ctx context.Context, order *entity.Order) error
}
