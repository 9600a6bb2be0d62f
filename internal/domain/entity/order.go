package entity

import (
	"time"

	"github.com/google/uuid"
)

// OrderStatus represents the fulfilment state of an order.
type OrderStatus string

const (
	// OrderStatusCreated indicates an order awaiting payment.
	OrderStatusCreated OrderStatus = "created"
	// OrderStatusConfirmed indicates a paid order accepted for fulfilment.
	OrderStatusConfirmed OrderStatus = "confirmed"
	// OrderStatusShipped indicates an order handed to the carrier.
	OrderStatusShipped OrderStatus = "shipped"
	// OrderStatusDelivered indicates an order received by the customer.
	OrderStatusDelivered OrderStatus = "delivered"
	// OrderStatusCancelled indicates an order that will not be fulfilled.
	OrderStatusCancelled OrderStatus = "cancelled"
)

// IsValid checks if the OrderStatus is a valid value.
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusCreated, OrderStatusConfirmed, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCancelled:
		return true
	default:
		return false
	}
}

// PaymentStatus represents the payment state of an order.
// Transitions only leave the pending state; paid and failed are
// terminal for the gateway order attached to the order.
type PaymentStatus string

const (
	// PaymentStatusPending indicates payment has not been verified yet.
	PaymentStatusPending PaymentStatus = "pending"
	// PaymentStatusPaid indicates a successfully verified payment.
	PaymentStatusPaid PaymentStatus = "paid"
	// PaymentStatusFailed indicates a verification failure; the supplied
	// payment id is kept for audit.
	PaymentStatusFailed PaymentStatus = "failed"
)

// IsTerminal reports whether the payment state can no longer change.
func (s PaymentStatus) IsTerminal() bool {
	return s == PaymentStatusPaid || s == PaymentStatusFailed
}

// Order is a placed order with an immutable snapshot of its lines.
type Order struct {
	ID               uuid.UUID     // The unique identifier for the order.
	UserID           uuid.UUID     // The owning user.
	Items            []OrderItem   // Snapshot of the purchased lines.
	SubtotalMinor    int64         // Sum of line totals before discount, in minor units.
	DiscountMinor    int64         // Discount applied at checkout, in minor units.
	TotalMinor       int64         // Amount charged, SubtotalMinor - DiscountMinor.
	CouponID         *uuid.UUID    // The coupon redeemed at checkout, if any.
	AddressID        uuid.UUID     // The shipping address chosen at checkout.
	Status           OrderStatus   // Fulfilment state.
	PaymentStatus    PaymentStatus // Payment state.
	GatewayOrderID   string        // The payment gateway's order identifier.
	GatewayPaymentID string        // The gateway payment id, recorded at verification for audit.
	CreatedAt        time.Time     // Timestamp of when this order was placed.
	UpdatedAt        time.Time     // Timestamp of the last modification.
}

// OrderItem is a single purchased line with name and price snapshotted
// at checkout time, so later catalog edits do not rewrite history.
type OrderItem struct {
	ID         uuid.UUID // The unique identifier for the line.
	OrderID    uuid.UUID // The owning order.
	ProductID  uuid.UUID // The product purchased.
	Name       string    // Product name at checkout time.
	PriceMinor int64     // Unit price at checkout time, in minor units.
	Quantity   int       // Number of units purchased.
}
