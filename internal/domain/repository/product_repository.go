package repository

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for product persistence.
var (
	// ErrProductNotFound is returned when a product is not found.
	ErrProductNotFound = errors.New("product not found")
	// ErrDuplicateSlug is returned when the slug unique constraint is violated.
	ErrDuplicateSlug = errors.New("product slug already exists")
)

// ProductRepository defines the interface for catalog database operations.
type ProductRepository interface {
	// Create persists a new product.
	Create(ctx context.Context, product *entity.Product) error

	// FindByID retrieves a product by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// FindBySlug retrieves a product by its unique slug.
	FindBySlug(ctx context.Context, slug string) (*entity.Product, error)

	// List retrieves products matching the list parameters, newest first,
	// along with the total match count for pagination.
	List(ctx context.Context, params ListParams) ([]*entity.Product, int64, error)

	// Update persists changes to an existing product.
	Update(ctx context.Context, product *entity.Product) error

	// Delete removes a product from the catalog.
	Delete(ctx context.Context, id uuid.UUID) error

	// DecrementStock atomically reduces stock for a product.
	// Returns ErrProductNotFound when the product does not exist or the
	// remaining stock is insufficient.
	DecrementStock(ctx context.Context, id uuid.UUID, qty int) error
}
