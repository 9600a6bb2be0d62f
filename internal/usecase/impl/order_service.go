package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"storefront/config"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultCurrency = "INR"

// orderService implements the OrderUsecase interface.
type orderService struct {
	txManager    repository.TransactionManager
	orderRepo    repository.OrderRepository
	settingsRepo repository.SettingsRepository
	gateway      service.PaymentGateway
	currency     string
	logger       *slog.Logger
	now          func() time.Time
}

// OrderServiceParams holds dependencies for orderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	OrderRepo    repository.OrderRepository
	SettingsRepo repository.SettingsRepository
	Gateway      service.PaymentGateway
	Config       *config.Config
	Logger       *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	currency := defaultCurrency
	if params.Config.Payment != nil && params.Config.Payment.Currency != "" {
		currency = params.Config.Payment.Currency
	}

	return &orderService{
		txManager:    params.TxManager,
		orderRepo:    params.OrderRepo,
		settingsRepo: params.SettingsRepo,
		gateway:      params.Gateway,
		currency:     currency,
		logger:       params.Logger,
		now:          time.Now,
	}
}

// Checkout snapshots the cart into an order, applies an optional coupon,
// registers the payment order with the gateway and clears the cart. Any
// failure, including the gateway call, rolls the whole transaction back.
func (srv *orderService) Checkout(ctx context.Context, userID uuid.UUID, input *usecase.CheckoutInput) (*usecase.CheckoutOutput, error) {
	currency, err := srv.checkoutCurrency(ctx)
	if err != nil {
		return nil, err
	}

	var order *entity.Order
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		cartRepo := repoFactory.CartRepo()

		items, err := cartRepo.FindByUser(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to load cart for checkout")
		}
		if len(items) == 0 {
			return domainerrors.ErrEmptyCart
		}

		if _, err := repoFactory.AddressRepo().FindByID(ctx, userID, input.AddressID); err != nil {
			if errors.Is(err, repository.ErrAddressNotFound) {
				return domainerrors.ErrNotFound.WithMessage("Shipping address not found")
			}

			return errors.Wrap(err, "failed to load shipping address")
		}

		orderItems, subtotal, err := srv.snapshotCart(ctx, repoFactory.ProductRepo(), items)
		if err != nil {
			return err
		}

		var discount int64
		var couponID *uuid.UUID
		if input.CouponCode != "" {
			coupon, couponDiscount, err := resolveAndEvaluateCoupon(
				ctx, repoFactory.CouponRepo(), input.CouponCode, subtotal, srv.now())
			if err != nil {
				return err
			}
			discount = couponDiscount
			couponID = &coupon.ID
		}

		total := subtotal - discount

		gatewayOrder, err := srv.gateway.CreateOrder(ctx, total, currency, uuid.NewString())
		if err != nil {
			srv.logger.Error("Gateway order creation failed", slog.Any("error", err))

			return domainerrors.ErrUpstreamFailure.WrapMessage("payment gateway order creation failed")
		}

		order = &entity.Order{
			UserID:         userID,
			Items:          orderItems,
			SubtotalMinor:  subtotal,
			DiscountMinor:  discount,
			TotalMinor:     total,
			CouponID:       couponID,
			AddressID:      input.AddressID,
			Status:         entity.OrderStatusCreated,
			PaymentStatus:  entity.PaymentStatusPending,
			GatewayOrderID: gatewayOrder.ID,
		}
		if err := repoFactory.OrderRepo().Create(ctx, order); err != nil {
			return errors.Wrap(err, "failed to persist order")
		}

		return cartRepo.Clear(ctx, userID)
	})
	if err != nil {
		return nil, err
	}

	srv.logger.Info("Order placed",
		slog.Any("orderID", order.ID),
		slog.Any("userID", userID),
		slog.Int64("totalMinor", order.TotalMinor))

	return &usecase.CheckoutOutput{
		Order:          order,
		GatewayOrderID: order.GatewayOrderID,
		AmountMinor:    order.TotalMinor,
		Currency:       currency,
	}, nil
}

// snapshotCart freezes product name and price into order items and
// reserves stock line by line.
func (srv *orderService) snapshotCart(ctx context.Context, productRepo repository.ProductRepository, items []*entity.CartItem) ([]entity.OrderItem, int64, error) {
	orderItems := make([]entity.OrderItem, 0, len(items))
	var subtotal int64

	for _, item := range items {
		product := item.Product
		if product == nil || !product.IsActive {
			return nil, 0, domainerrors.ErrInvalidInput.WithMessage("A product in the cart is no longer available")
		}

		if err := productRepo.DecrementStock(ctx, product.ID, item.Quantity); err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				return nil, 0, domainerrors.ErrInsufficientStock.WithMessage(
					fmt.Sprintf("Not enough stock for %s", product.Name))
			}

			return nil, 0, errors.Wrap(err, "failed to reserve stock")
		}

		orderItems = append(orderItems, entity.OrderItem{
			ProductID:  product.ID,
			Name:       product.Name,
			PriceMinor: product.PriceMinor,
			Quantity:   item.Quantity,
		})
		subtotal += product.PriceMinor * int64(item.Quantity)
	}

	return orderItems, subtotal, nil
}

// checkoutCurrency resolves the currency from the payment settings row,
// falling back to the static configuration before the first admin write.
func (srv *orderService) checkoutCurrency(ctx context.Context) (string, error) {
	settings, err := srv.settingsRepo.GetPaymentSettings(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrSettingsNotFound) {
			return srv.currency, nil
		}

		return "", errors.Wrap(err, "failed to load payment settings")
	}
	if !settings.IsActive {
		return "", domainerrors.ErrConflict.WithMessage("Online payment is currently disabled")
	}
	if settings.Currency == "" {
		return srv.currency, nil
	}

	return settings.Currency, nil
}

// ListOrders returns the user's orders, newest first.
func (srv *orderService) ListOrders(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error) {
	orders, err := srv.orderRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return orders, nil
}

// GetOrder returns a single order scoped to the owning user.
func (srv *orderService) GetOrder(ctx context.Context, userID, orderID uuid.UUID) (*entity.Order, error) {
	order, err := srv.orderRepo.FindByID(ctx, userID, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrNotFound.WithMessage("Order not found")
		}

		return nil, errors.Wrap(err, "failed to load order")
	}

	return order, nil
}

// VerifyPayment settles a pending payment. Signature match and mismatch
// both persist a terminal state inside one transaction; only a match
// confirms the order and records the coupon redemption.
func (srv *orderService) VerifyPayment(ctx context.Context, userID, orderID uuid.UUID, input *usecase.VerifyPaymentInput) (*entity.Order, error) {
	var order *entity.Order
	var verified bool

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		orderRepo := repoFactory.OrderRepo()

		var err error
		order, err = orderRepo.FindByID(ctx, userID, orderID)
		if err != nil {
			if errors.Is(err, repository.ErrOrderNotFound) {
				return domainerrors.ErrNotFound.WithMessage("Order not found")
			}

			return errors.Wrap(err, "failed to load order for payment verification")
		}

		if order.PaymentStatus.IsTerminal() {
			return domainerrors.ErrPaymentNotPending
		}

		verified = srv.gateway.VerifySignature(order.GatewayOrderID, input.GatewayPaymentID, input.Signature)

		// The supplied payment id is persisted in both outcomes for audit.
		order.GatewayPaymentID = input.GatewayPaymentID
		if verified {
			order.PaymentStatus = entity.PaymentStatusPaid
			order.Status = entity.OrderStatusConfirmed
		} else {
			order.PaymentStatus = entity.PaymentStatusFailed
		}

		if err := orderRepo.Update(ctx, order); err != nil {
			return errors.Wrap(err, "failed to persist payment state")
		}

		if verified && order.CouponID != nil {
			if err := repoFactory.CouponRepo().IncrementUsedCount(ctx, *order.CouponID); err != nil {
				return errors.Wrap(err, "failed to record coupon redemption")
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	if !verified {
		srv.logger.Warn("Payment signature mismatch",
			slog.Any("orderID", orderID),
			slog.String("gatewayPaymentID", input.GatewayPaymentID))

		return nil, domainerrors.ErrPaymentVerificationFailed
	}

	srv.logger.Info("Payment verified", slog.Any("orderID", orderID))

	return order, nil
}

// AdminListOrders returns a page of orders across all users.
func (srv *orderService) AdminListOrders(ctx context.Context, query usecase.ListQuery) (*usecase.ListOrdersOutput, error) {
	params := query.ToParams()

	orders, total, err := srv.orderRepo.List(ctx, params)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return &usecase.ListOrdersOutput{
		Orders:     orders,
		Pagination: usecase.Pagination{Page: params.Page, Limit: params.Limit, Total: total},
	}, nil
}

// UpdateOrderStatus sets the fulfilment status. Re-submitting the
// current value succeeds without a write.
func (srv *orderService) UpdateOrderStatus(ctx context.Context, orderID uuid.UUID, status entity.OrderStatus) (*entity.Order, error) {
	if !status.IsValid() {
		return nil, domainerrors.ErrInvalidInput.WithMessage("Unknown order status")
	}

	order, err := srv.orderRepo.FindByID(ctx, uuid.Nil, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrNotFound.WithMessage("Order not found")
		}

		return nil, errors.Wrap(err, "failed to load order for status change")
	}

	if order.Status == status {
		return order, nil
	}

	order.Status = status
	if err := srv.orderRepo.Update(ctx, order); err != nil {
		return nil, errors.Wrap(err, "failed to update order status")
	}

	srv.logger.Info("Order status changed", slog.Any("orderID", orderID), slog.String("status", string(status)))

	return order, nil
}
