package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// CheckoutInput defines the data required to place an order from the
// current cart.
type CheckoutInput struct {
	AddressID  uuid.UUID
	CouponCode string
}

// CheckoutOutput returns the created order and the gateway order id the
// client completes the payment against.
type CheckoutOutput struct {
	Order          *entity.Order
	GatewayOrderID string
	AmountMinor    int64
	Currency       string
}

// VerifyPaymentInput carries the gateway's payment confirmation.
type VerifyPaymentInput struct {
	GatewayPaymentID string
	Signature        string
}

// ListOrdersOutput returns a page of orders.
type ListOrdersOutput struct {
	Orders     []*entity.Order
	Pagination Pagination
}

// OrderUsecase defines the interface for checkout, payment verification
// and order management.
type OrderUsecase interface {
	// Checkout snapshots the cart into an order, applies an optional
	// coupon, registers the payment order with the gateway and clears
	// the cart, all or nothing.
	Checkout(ctx context.Context, userID uuid.UUID, input *CheckoutInput) (*CheckoutOutput, error)

	ListOrders(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error)
	GetOrder(ctx context.Context, userID, orderID uuid.UUID) (*entity.Order, error)

	// VerifyPayment settles a pending payment. A signature match marks
	// the order paid and confirmed; a mismatch marks it failed and keeps
	// the supplied payment id for audit. Both outcomes are terminal.
	VerifyPayment(ctx context.Context, userID, orderID uuid.UUID, input *VerifyPaymentInput) (*entity.Order, error)

	// Admin operations.
	AdminListOrders(ctx context.Context, query ListQuery) (*ListOrdersOutput, error)

	// UpdateOrderStatus sets the fulfilment status. Setting the current
	// value again is a no-op success.
	UpdateOrderStatus(ctx context.Context, orderID uuid.UUID, status entity.OrderStatus) (*entity.Order, error)
}
