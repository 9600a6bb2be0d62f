package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateAddressInput defines the data required to add a shipping address.
type CreateAddressInput struct {
	Label     string
	Line1     string
	Line2     string
	City      string
	State     string
	Pincode   string
	Phone     string
	IsDefault bool
}

// UpdateAddressInput carries the editable address fields. Nil pointers
// leave the corresponding field unchanged.
type UpdateAddressInput struct {
	Label   *string
	Line1   *string
	Line2   *string
	City    *string
	State   *string
	Pincode *string
	Phone   *string
}

// AddressUsecase defines the interface for shipping address operations.
// All operations are scoped to the owning user; the at-most-one-default
// invariant is enforced transactionally.
type AddressUsecase interface {
	ListAddresses(ctx context.Context, userID uuid.UUID) ([]*entity.Address, error)
	CreateAddress(ctx context.Context, userID uuid.UUID, input *CreateAddressInput) (*entity.Address, error)
	UpdateAddress(ctx context.Context, userID, addressID uuid.UUID, input *UpdateAddressInput) (*entity.Address, error)
	DeleteAddress(ctx context.Context, userID, addressID uuid.UUID) error

	// SetDefaultAddress makes the given address the user's single
	// default, clearing sibling flags in the same transaction.
	SetDefaultAddress(ctx context.Context, userID, addressID uuid.UUID) error
}
