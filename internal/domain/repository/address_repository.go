package repository

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/errors"

	"github.com/google/uuid"
)

// ErrAddressNotFound is returned when an address is not found under the
// requesting user.
var ErrAddressNotFound = errors.New("address not found")

// AddressRepository defines the interface for address-related database
// operations. Every lookup is scoped to the owning user.
type AddressRepository interface {
	// Create persists a new address for a user.
	Create(ctx context.Context, address *entity.Address) error

	// FindByID retrieves an address owned by the given user.
	// Returns ErrAddressNotFound when the row does not exist or belongs
	// to a different user.
	FindByID(ctx context.Context, userID, addressID uuid.UUID) (*entity.Address, error)

	// FindByUser retrieves all addresses for a user, default first.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Address, error)

	// Update persists changes to an existing address.
	Update(ctx context.Context, address *entity.Address) error

	// Delete removes an address owned by the given user.
	Delete(ctx context.Context, userID, addressID uuid.UUID) error

	// ClearDefaultExcept unsets IsDefault on all of the user's addresses
	// other than the given one. Called inside the same transaction that
	// sets a new default, keeping the at-most-one-default invariant.
	ClearDefaultExcept(ctx context.Context, userID, addressID uuid.UUID) error

	// SetDefault sets IsDefault on the given address owned by the user.
	// Returns ErrAddressNotFound when no such row exists.
	SetDefault(ctx context.Context, userID, addressID uuid.UUID) error
}
