package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// AddCartItemInput defines the data required to put a product in the cart.
type AddCartItemInput struct {
	ProductID uuid.UUID
	Quantity  int
}

// CartOutput returns the cart lines with the running total.
type CartOutput struct {
	Items         []*entity.CartItem
	SubtotalMinor int64
}

// CartUsecase defines the interface for cart operations, scoped to the
// owning user.
type CartUsecase interface {
	GetCart(ctx context.Context, userID uuid.UUID) (*CartOutput, error)

	// AddItem inserts a line or bumps the quantity of an existing one.
	AddItem(ctx context.Context, userID uuid.UUID, input *AddCartItemInput) (*CartOutput, error)
	UpdateItemQuantity(ctx context.Context, userID, itemID uuid.UUID, quantity int) (*CartOutput, error)
	RemoveItem(ctx context.Context, userID, itemID uuid.UUID) (*CartOutput, error)
}
