package impl

import (
	"context"
	"testing"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	mockRepo "storefront/internal/mocks/repository"
	mockService "storefront/internal/mocks/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// orderServiceFixtures holds all test dependencies for order service tests.
type orderServiceFixtures struct {
	t            *testing.T
	service      usecase.OrderUsecase
	txManager    *mockRepo.MockTransactionManager
	orderRepo    *mockRepo.MockOrderRepository
	settingsRepo *mockRepo.MockSettingsRepository
	gateway      *mockService.MockPaymentGateway
}

func createTestOrderService(t *testing.T) orderServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	orderRepo := mockRepo.NewMockOrderRepository(t)
	settingsRepo := mockRepo.NewMockSettingsRepository(t)
	gateway := mockService.NewMockPaymentGateway(t)
	service := NewOrderService(OrderServiceParams{
		TxManager:    txManager,
		OrderRepo:    orderRepo,
		SettingsRepo: settingsRepo,
		Gateway:      gateway,
		Config:       newTestConfig(),
		Logger:       newDiscardLogger(),
	})

	return orderServiceFixtures{
		t:            t,
		service:      service,
		txManager:    txManager,
		orderRepo:    orderRepo,
		settingsRepo: settingsRepo,
		gateway:      gateway,
	}
}

// onExecute stubs the transaction manager: the transaction function runs
// against a factory prepared by setup, and Execute returns result.
func (f orderServiceFixtures) onExecute(ctx context.Context, result error, setup func(factory *mockRepo.MockRepositoryFactory)) {
	f.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			factory := mockRepo.NewMockRepositoryFactory(f.t)
			setup(factory)
			_ = fn(factory)
		}).
		Return(result)
}

func activePaymentSettings() *entity.PaymentSettings {
	return &entity.PaymentSettings{
		KeyID:     "key_live",
		KeySecret: "secret_live",
		Currency:  "INR",
		IsActive:  true,
	}
}

func cartWithOneProduct(userID uuid.UUID, priceMinor int64, qty int) []*entity.CartItem {
	product := &entity.Product{
		ID:         uuid.New(),
		Name:       "Organic Green Tea",
		Slug:       "organic-green-tea",
		PriceMinor: priceMinor,
		StockQty:   50,
		IsActive:   true,
	}

	return []*entity.CartItem{{
		ID:        uuid.New(),
		UserID:    userID,
		ProductID: product.ID,
		Quantity:  qty,
		Product:   product,
	}}
}

func TestOrderService_Checkout_Success(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	userID := uuid.New()
	addressID := uuid.New()
	items := cartWithOneProduct(userID, 25000, 2)

	fx.settingsRepo.EXPECT().GetPaymentSettings(ctx).Return(activePaymentSettings(), nil)
	fx.gateway.EXPECT().
		CreateOrder(ctx, int64(46000), "INR", mock.AnythingOfType("string")).
		Return(&service.GatewayOrder{ID: "order_gw_1", AmountMinor: 46000, Currency: "INR"}, nil)

	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		cartRepo := mockRepo.NewMockCartRepository(t)
		addressRepo := mockRepo.NewMockAddressRepository(t)
		productRepo := mockRepo.NewMockProductRepository(t)
		couponRepo := mockRepo.NewMockCouponRepository(t)
		orderRepo := mockRepo.NewMockOrderRepository(t)

		factory.EXPECT().CartRepo().Return(cartRepo)
		factory.EXPECT().AddressRepo().Return(addressRepo)
		factory.EXPECT().ProductRepo().Return(productRepo)
		factory.EXPECT().CouponRepo().Return(couponRepo)
		factory.EXPECT().OrderRepo().Return(orderRepo)

		cartRepo.EXPECT().FindByUser(ctx, userID).Return(items, nil)
		addressRepo.EXPECT().FindByID(ctx, userID, addressID).Return(&entity.Address{ID: addressID, UserID: userID}, nil)
		productRepo.EXPECT().DecrementStock(ctx, items[0].ProductID, 2).Return(nil)
		couponRepo.EXPECT().FindByCode(ctx, "SAVE10").Return(&entity.Coupon{
			ID:               uuid.New(),
			Code:             "SAVE10",
			Type:             entity.CouponTypePercentage,
			Value:            10,
			MaxDiscountMinor: 4000,
			ValidFrom:        time.Now().Add(-time.Hour),
			ValidTo:          time.Now().Add(time.Hour),
			IsActive:         true,
		}, nil)
		orderRepo.EXPECT().
			Create(ctx, mock.AnythingOfType("*entity.Order")).
			Run(func(ctx context.Context, order *entity.Order) {
				order.ID = uuid.New()
			}).
			Return(nil)
		cartRepo.EXPECT().Clear(ctx, userID).Return(nil)
	})

	output, err := fx.service.Checkout(ctx, userID, &usecase.CheckoutInput{
		AddressID:  addressID,
		CouponCode: "SAVE10",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(50000), output.Order.SubtotalMinor)
	assert.Equal(t, int64(4000), output.Order.DiscountMinor)
	assert.Equal(t, int64(46000), output.AmountMinor)
	assert.Equal(t, "INR", output.Currency)
	assert.Equal(t, "order_gw_1", output.GatewayOrderID)
	assert.Equal(t, entity.OrderStatusCreated, output.Order.Status)
	assert.Equal(t, entity.PaymentStatusPending, output.Order.PaymentStatus)
	require.Len(t, output.Order.Items, 1)
	assert.Equal(t, "Organic Green Tea", output.Order.Items[0].Name)
	assert.Equal(t, int64(25000), output.Order.Items[0].PriceMinor)
}

func TestOrderService_Checkout_EmptyCart(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.settingsRepo.EXPECT().GetPaymentSettings(ctx).Return(activePaymentSettings(), nil)

	fx.onExecute(ctx, domainerrors.ErrEmptyCart, func(factory *mockRepo.MockRepositoryFactory) {
		cartRepo := mockRepo.NewMockCartRepository(t)
		factory.EXPECT().CartRepo().Return(cartRepo)
		cartRepo.EXPECT().FindByUser(ctx, userID).Return(nil, nil)
	})

	_, err := fx.service.Checkout(ctx, userID, &usecase.CheckoutInput{AddressID: uuid.New()})

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrEmptyCart))
}

func TestOrderService_Checkout_PaymentsDisabled(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	settings := activePaymentSettings()
	settings.IsActive = false

	fx.settingsRepo.EXPECT().GetPaymentSettings(ctx).Return(settings, nil)

	_, err := fx.service.Checkout(ctx, uuid.New(), &usecase.CheckoutInput{AddressID: uuid.New()})

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrConflict))
}

func TestOrderService_Checkout_NoSettingsRow_FallsBackToConfig(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	userID := uuid.New()
	addressID := uuid.New()
	items := cartWithOneProduct(userID, 10000, 1)

	fx.settingsRepo.EXPECT().GetPaymentSettings(ctx).Return(nil, repository.ErrSettingsNotFound)
	fx.gateway.EXPECT().
		CreateOrder(ctx, int64(10000), "INR", mock.AnythingOfType("string")).
		Return(&service.GatewayOrder{ID: "order_gw_2", AmountMinor: 10000, Currency: "INR"}, nil)

	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		cartRepo := mockRepo.NewMockCartRepository(t)
		addressRepo := mockRepo.NewMockAddressRepository(t)
		productRepo := mockRepo.NewMockProductRepository(t)
		orderRepo := mockRepo.NewMockOrderRepository(t)

		factory.EXPECT().CartRepo().Return(cartRepo)
		factory.EXPECT().AddressRepo().Return(addressRepo)
		factory.EXPECT().ProductRepo().Return(productRepo)
		factory.EXPECT().OrderRepo().Return(orderRepo)

		cartRepo.EXPECT().FindByUser(ctx, userID).Return(items, nil)
		addressRepo.EXPECT().FindByID(ctx, userID, addressID).Return(&entity.Address{ID: addressID, UserID: userID}, nil)
		productRepo.EXPECT().DecrementStock(ctx, items[0].ProductID, 1).Return(nil)
		orderRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Order")).Return(nil)
		cartRepo.EXPECT().Clear(ctx, userID).Return(nil)
	})

	output, err := fx.service.Checkout(ctx, userID, &usecase.CheckoutInput{AddressID: addressID})

	require.NoError(t, err)
	assert.Equal(t, "INR", output.Currency)
}

func TestOrderService_Checkout_InsufficientStock(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	userID := uuid.New()
	addressID := uuid.New()
	items := cartWithOneProduct(userID, 10000, 3)

	fx.settingsRepo.EXPECT().GetPaymentSettings(ctx).Return(activePaymentSettings(), nil)

	fx.onExecute(ctx, domainerrors.ErrInsufficientStock, func(factory *mockRepo.MockRepositoryFactory) {
		cartRepo := mockRepo.NewMockCartRepository(t)
		addressRepo := mockRepo.NewMockAddressRepository(t)
		productRepo := mockRepo.NewMockProductRepository(t)

		factory.EXPECT().CartRepo().Return(cartRepo)
		factory.EXPECT().AddressRepo().Return(addressRepo)
		factory.EXPECT().ProductRepo().Return(productRepo)

		cartRepo.EXPECT().FindByUser(ctx, userID).Return(items, nil)
		addressRepo.EXPECT().FindByID(ctx, userID, addressID).Return(&entity.Address{ID: addressID, UserID: userID}, nil)
		// The conditional decrement matches no row when stock is short.
		productRepo.EXPECT().DecrementStock(ctx, items[0].ProductID, 3).Return(repository.ErrProductNotFound)
	})

	_, err := fx.service.Checkout(ctx, userID, &usecase.CheckoutInput{AddressID: addressID})

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInsufficientStock))
	assert.Contains(t, err.Error(), "Organic Green Tea")
}

func TestOrderService_Checkout_GatewayFailure_RollsBack(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	userID := uuid.New()
	addressID := uuid.New()
	items := cartWithOneProduct(userID, 10000, 1)

	fx.settingsRepo.EXPECT().GetPaymentSettings(ctx).Return(activePaymentSettings(), nil)
	fx.gateway.EXPECT().
		CreateOrder(ctx, int64(10000), "INR", mock.AnythingOfType("string")).
		Return(nil, errors.New("gateway timeout"))

	fx.onExecute(ctx, domainerrors.ErrUpstreamFailure, func(factory *mockRepo.MockRepositoryFactory) {
		cartRepo := mockRepo.NewMockCartRepository(t)
		addressRepo := mockRepo.NewMockAddressRepository(t)
		productRepo := mockRepo.NewMockProductRepository(t)

		factory.EXPECT().CartRepo().Return(cartRepo)
		factory.EXPECT().AddressRepo().Return(addressRepo)
		factory.EXPECT().ProductRepo().Return(productRepo)

		cartRepo.EXPECT().FindByUser(ctx, userID).Return(items, nil)
		addressRepo.EXPECT().FindByID(ctx, userID, addressID).Return(&entity.Address{ID: addressID, UserID: userID}, nil)
		productRepo.EXPECT().DecrementStock(ctx, items[0].ProductID, 1).Return(nil)
		// No OrderRepo or Clear expectations: the order is never persisted.
	})

	_, err := fx.service.Checkout(ctx, userID, &usecase.CheckoutInput{AddressID: addressID})

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUpstreamFailure))
}

func pendingOrder(userID uuid.UUID, couponID *uuid.UUID) *entity.Order {
	return &entity.Order{
		ID:             uuid.New(),
		UserID:         userID,
		TotalMinor:     46000,
		CouponID:       couponID,
		Status:         entity.OrderStatusCreated,
		PaymentStatus:  entity.PaymentStatusPending,
		GatewayOrderID: "order_gw_1",
	}
}

func TestOrderService_VerifyPayment_Match_ConfirmsAndRedeemsCoupon(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	userID := uuid.New()
	couponID := uuid.New()
	order := pendingOrder(userID, &couponID)

	fx.gateway.EXPECT().VerifySignature("order_gw_1", "pay_1", "sig").Return(true)

	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		orderRepo := mockRepo.NewMockOrderRepository(t)
		couponRepo := mockRepo.NewMockCouponRepository(t)
		factory.EXPECT().OrderRepo().Return(orderRepo)
		factory.EXPECT().CouponRepo().Return(couponRepo)

		orderRepo.EXPECT().FindByID(ctx, userID, order.ID).Return(order, nil)
		orderRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Order")).Return(nil)
		couponRepo.EXPECT().IncrementUsedCount(ctx, couponID).Return(nil)
	})

	updated, err := fx.service.VerifyPayment(ctx, userID, order.ID, &usecase.VerifyPaymentInput{
		GatewayPaymentID: "pay_1",
		Signature:        "sig",
	})

	require.NoError(t, err)
	assert.Equal(t, entity.PaymentStatusPaid, updated.PaymentStatus)
	assert.Equal(t, entity.OrderStatusConfirmed, updated.Status)
	assert.Equal(t, "pay_1", updated.GatewayPaymentID)
}

func TestOrderService_VerifyPayment_Mismatch_PersistsFailure(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	userID := uuid.New()
	order := pendingOrder(userID, nil)

	fx.gateway.EXPECT().VerifySignature("order_gw_1", "pay_1", "tampered").Return(false)

	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		orderRepo := mockRepo.NewMockOrderRepository(t)
		factory.EXPECT().OrderRepo().Return(orderRepo)

		orderRepo.EXPECT().FindByID(ctx, userID, order.ID).Return(order, nil)
		// The failed state is written and committed, not rolled back.
		orderRepo.EXPECT().
			Update(ctx, mock.AnythingOfType("*entity.Order")).
			Run(func(ctx context.Context, o *entity.Order) {
				assert.Equal(t, entity.PaymentStatusFailed, o.PaymentStatus)
				assert.Equal(t, entity.OrderStatusCreated, o.Status)
				assert.Equal(t, "pay_1", o.GatewayPaymentID)
			}).
			Return(nil)
	})

	_, err := fx.service.VerifyPayment(ctx, userID, order.ID, &usecase.VerifyPaymentInput{
		GatewayPaymentID: "pay_1",
		Signature:        "tampered",
	})

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrPaymentVerificationFailed))
}

func TestOrderService_VerifyPayment_AlreadySettled(t *testing.T) {
	tests := []struct {
		name   string
		status entity.PaymentStatus
	}{
		{name: "already paid", status: entity.PaymentStatusPaid},
		{name: "already failed", status: entity.PaymentStatusFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestOrderService(t)

			ctx := context.Background()
			userID := uuid.New()
			order := pendingOrder(userID, nil)
			order.PaymentStatus = tt.status

			fx.onExecute(ctx, domainerrors.ErrPaymentNotPending, func(factory *mockRepo.MockRepositoryFactory) {
				orderRepo := mockRepo.NewMockOrderRepository(t)
				factory.EXPECT().OrderRepo().Return(orderRepo)
				orderRepo.EXPECT().FindByID(ctx, userID, order.ID).Return(order, nil)
			})

			_, err := fx.service.VerifyPayment(ctx, userID, order.ID, &usecase.VerifyPaymentInput{
				GatewayPaymentID: "pay_2",
				Signature:        "sig",
			})

			assert.Error(t, err)
			assert.True(t, errors.Is(err, domainerrors.ErrPaymentNotPending))
		})
	}
}

func TestOrderService_VerifyPayment_OrderNotFound(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	userID := uuid.New()
	orderID := uuid.New()

	fx.onExecute(ctx, domainerrors.ErrNotFound, func(factory *mockRepo.MockRepositoryFactory) {
		orderRepo := mockRepo.NewMockOrderRepository(t)
		factory.EXPECT().OrderRepo().Return(orderRepo)
		orderRepo.EXPECT().FindByID(ctx, userID, orderID).Return(nil, repository.ErrOrderNotFound)
	})

	_, err := fx.service.VerifyPayment(ctx, userID, orderID, &usecase.VerifyPaymentInput{
		GatewayPaymentID: "pay_1",
		Signature:        "sig",
	})

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}

func TestOrderService_UpdateOrderStatus_Idempotent(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	order := pendingOrder(uuid.New(), nil)
	order.Status = entity.OrderStatusShipped

	fx.orderRepo.EXPECT().FindByID(ctx, uuid.Nil, order.ID).Return(order, nil)
	// No Update expectation: re-submitting the current value is a no-op.

	updated, err := fx.service.UpdateOrderStatus(ctx, order.ID, entity.OrderStatusShipped)

	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusShipped, updated.Status)
}

func TestOrderService_UpdateOrderStatus_UnknownStatus(t *testing.T) {
	fx := createTestOrderService(t)

	_, err := fx.service.UpdateOrderStatus(context.Background(), uuid.New(), entity.OrderStatus("teleported"))

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidInput))
}

func TestOrderService_GetOrder_NotFound(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	userID := uuid.New()
	orderID := uuid.New()

	fx.orderRepo.EXPECT().FindByID(ctx, userID, orderID).Return(nil, repository.ErrOrderNotFound)

	_, err := fx.service.GetOrder(ctx, userID, orderID)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}
