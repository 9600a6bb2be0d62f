package impl

import (
	"context"
	"log/slog"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// cartService implements the CartUsecase interface.
type cartService struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
	logger      *slog.Logger
}

// CartServiceParams holds dependencies for cartService, injected by Fx.
type CartServiceParams struct {
	fx.In

	CartRepo    repository.CartRepository
	ProductRepo repository.ProductRepository
	Logger      *slog.Logger
}

// NewCartService is the constructor for cartService.
func NewCartService(params CartServiceParams) usecase.CartUsecase {
	return &cartService{
		cartRepo:    params.CartRepo,
		productRepo: params.ProductRepo,
		logger:      params.Logger,
	}
}

// GetCart returns the user's cart lines with the running subtotal.
func (srv *cartService) GetCart(ctx context.Context, userID uuid.UUID) (*usecase.CartOutput, error) {
	items, err := srv.cartRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load cart")
	}

	return buildCartOutput(items), nil
}

// AddItem puts a product in the cart, bumping the quantity when the
// product is already there.
func (srv *cartService) AddItem(ctx context.Context, userID uuid.UUID, input *usecase.AddCartItemInput) (*usecase.CartOutput, error) {
	if input.Quantity < 1 {
		return nil, domainerrors.ErrInvalidInput.WithMessage("Quantity must be at least 1")
	}

	product, err := srv.productRepo.FindByID(ctx, input.ProductID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrNotFound.WithMessage("Product not found")
		}

		return nil, errors.Wrap(err, "failed to load product for cart")
	}
	if !product.IsActive {
		return nil, domainerrors.ErrNotFound.WithMessage("Product not found")
	}
	if !product.InStock(input.Quantity) {
		return nil, domainerrors.ErrInsufficientStock
	}

	item := &entity.CartItem{
		UserID:    userID,
		ProductID: input.ProductID,
		Quantity:  input.Quantity,
	}
	if err := srv.cartRepo.Upsert(ctx, item); err != nil {
		return nil, errors.Wrap(err, "failed to add cart item")
	}

	return srv.GetCart(ctx, userID)
}

// UpdateItemQuantity sets a cart line to an exact quantity.
func (srv *cartService) UpdateItemQuantity(ctx context.Context, userID, itemID uuid.UUID, quantity int) (*usecase.CartOutput, error) {
	if quantity < 1 {
		return nil, domainerrors.ErrInvalidInput.WithMessage("Quantity must be at least 1")
	}

	item, err := srv.cartRepo.FindByID(ctx, userID, itemID)
	if err != nil {
		if errors.Is(err, repository.ErrCartItemNotFound) {
			return nil, domainerrors.ErrNotFound.WithMessage("Cart item not found")
		}

		return nil, errors.Wrap(err, "failed to load cart item")
	}

	if item.Product != nil && !item.Product.InStock(quantity) {
		return nil, domainerrors.ErrInsufficientStock
	}

	if err := srv.cartRepo.UpdateQuantity(ctx, userID, itemID, quantity); err != nil {
		return nil, errors.Wrap(err, "failed to update cart quantity")
	}

	return srv.GetCart(ctx, userID)
}

// RemoveItem drops a cart line.
func (srv *cartService) RemoveItem(ctx context.Context, userID, itemID uuid.UUID) (*usecase.CartOutput, error) {
	if err := srv.cartRepo.Delete(ctx, userID, itemID); err != nil {
		if errors.Is(err, repository.ErrCartItemNotFound) {
			return nil, domainerrors.ErrNotFound.WithMessage("Cart item not found")
		}

		return nil, errors.Wrap(err, "failed to remove cart item")
	}

	return srv.GetCart(ctx, userID)
}

func buildCartOutput(items []*entity.CartItem) *usecase.CartOutput {
	output := &usecase.CartOutput{Items: items}
	for _, item := range items {
		output.SubtotalMinor += item.LineTotalMinor()
	}

	return output
}
