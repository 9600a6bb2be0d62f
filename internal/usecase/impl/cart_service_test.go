package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// cartServiceFixtures holds all test dependencies for cart service tests.
type cartServiceFixtures struct {
	service     usecase.CartUsecase
	cartRepo    *mockRepo.MockCartRepository
	productRepo *mockRepo.MockProductRepository
}

func createTestCartService(t *testing.T) cartServiceFixtures {
	cartRepo := mockRepo.NewMockCartRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	service := NewCartService(CartServiceParams{
		CartRepo:    cartRepo,
		ProductRepo: productRepo,
		Logger:      newDiscardLogger(),
	})

	return cartServiceFixtures{
		service:     service,
		cartRepo:    cartRepo,
		productRepo: productRepo,
	}
}

func activeProduct(priceMinor int64, stock int) *entity.Product {
	return &entity.Product{
		ID:         uuid.New(),
		Name:       "Organic Green Tea",
		Slug:       "organic-green-tea",
		PriceMinor: priceMinor,
		StockQty:   stock,
		IsActive:   true,
	}
}

func TestCartService_AddItem_Success(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()
	product := activeProduct(25000, 10)

	fx.productRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)
	fx.cartRepo.EXPECT().
		Upsert(ctx, mock.AnythingOfType("*entity.CartItem")).
		Return(nil)
	fx.cartRepo.EXPECT().FindByUser(ctx, userID).Return([]*entity.CartItem{{
		ID:        uuid.New(),
		UserID:    userID,
		ProductID: product.ID,
		Quantity:  2,
		Product:   product,
	}}, nil)

	cart, err := fx.service.AddItem(ctx, userID, &usecase.AddCartItemInput{
		ProductID: product.ID,
		Quantity:  2,
	})

	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, int64(50000), cart.SubtotalMinor)
}

func TestCartService_AddItem_QuantityBelowOne(t *testing.T) {
	fx := createTestCartService(t)

	_, err := fx.service.AddItem(context.Background(), uuid.New(), &usecase.AddCartItemInput{
		ProductID: uuid.New(),
		Quantity:  0,
	})

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidInput))
}

func TestCartService_AddItem_InactiveProduct(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	product := activeProduct(25000, 10)
	product.IsActive = false

	fx.productRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)

	_, err := fx.service.AddItem(ctx, uuid.New(), &usecase.AddCartItemInput{
		ProductID: product.ID,
		Quantity:  1,
	})

	assert.Error(t, err)
	// An inactive product is indistinguishable from a missing one.
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}

func TestCartService_AddItem_InsufficientStock(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	product := activeProduct(25000, 2)

	fx.productRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)

	_, err := fx.service.AddItem(ctx, uuid.New(), &usecase.AddCartItemInput{
		ProductID: product.ID,
		Quantity:  5,
	})

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInsufficientStock))
}

func TestCartService_AddItem_ProductNotFound(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	productID := uuid.New()

	fx.productRepo.EXPECT().FindByID(ctx, productID).Return(nil, repository.ErrProductNotFound)

	_, err := fx.service.AddItem(ctx, uuid.New(), &usecase.AddCartItemInput{
		ProductID: productID,
		Quantity:  1,
	})

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}

func TestCartService_UpdateItemQuantity_StockRecheck(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()
	product := activeProduct(25000, 3)
	item := &entity.CartItem{
		ID:        uuid.New(),
		UserID:    userID,
		ProductID: product.ID,
		Quantity:  1,
		Product:   product,
	}

	fx.cartRepo.EXPECT().FindByID(ctx, userID, item.ID).Return(item, nil)

	_, err := fx.service.UpdateItemQuantity(ctx, userID, item.ID, 10)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInsufficientStock))
}

func TestCartService_UpdateItemQuantity_Success(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()
	product := activeProduct(25000, 10)
	item := &entity.CartItem{
		ID:        uuid.New(),
		UserID:    userID,
		ProductID: product.ID,
		Quantity:  1,
		Product:   product,
	}

	fx.cartRepo.EXPECT().FindByID(ctx, userID, item.ID).Return(item, nil)
	fx.cartRepo.EXPECT().UpdateQuantity(ctx, userID, item.ID, 3).Return(nil)
	fx.cartRepo.EXPECT().FindByUser(ctx, userID).Return([]*entity.CartItem{{
		ID:        item.ID,
		UserID:    userID,
		ProductID: product.ID,
		Quantity:  3,
		Product:   product,
	}}, nil)

	cart, err := fx.service.UpdateItemQuantity(ctx, userID, item.ID, 3)

	require.NoError(t, err)
	assert.Equal(t, int64(75000), cart.SubtotalMinor)
}

func TestCartService_RemoveItem_NotFound(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()
	itemID := uuid.New()

	fx.cartRepo.EXPECT().Delete(ctx, userID, itemID).Return(repository.ErrCartItemNotFound)

	_, err := fx.service.RemoveItem(ctx, userID, itemID)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}

func TestCartService_GetCart_Empty(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.cartRepo.EXPECT().FindByUser(ctx, userID).Return(nil, nil)

	cart, err := fx.service.GetCart(ctx, userID)

	require.NoError(t, err)
	assert.Empty(t, cart.Items)
	assert.Zero(t, cart.SubtotalMinor)
}
