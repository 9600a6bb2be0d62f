package repository

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/errors"

	"github.com/google/uuid"
)

// ErrBulkOrderNotFound is returned when a bulk order request is not found.
var ErrBulkOrderNotFound = errors.New("bulk order request not found")

// BulkOrderRepository defines the interface for bulk order request
// database operations.
type BulkOrderRepository interface {
	// Create persists a new bulk order request.
	Create(ctx context.Context, request *entity.BulkOrderRequest) error

	// FindByID retrieves a request scoped to the owning user.
	// Pass uuid.Nil as userID for an unscoped (admin) lookup.
	FindByID(ctx context.Context, userID, requestID uuid.UUID) (*entity.BulkOrderRequest, error)

	// FindByUser retrieves a user's requests, newest first.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.BulkOrderRequest, error)

	// List retrieves requests matching the list parameters across all
	// users, newest first, along with the total match count.
	List(ctx context.Context, params ListParams) ([]*entity.BulkOrderRequest, int64, error)

	// UpdateStatus sets the request status.
	UpdateStatus(ctx context.Context, requestID uuid.UUID, status entity.BulkOrderStatus) error
}
