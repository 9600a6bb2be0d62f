package service

import "context"

// GatewayOrder is the gateway's record of a payment order created for checkout.
type GatewayOrder struct {
	ID          string // The gateway's order identifier.
	AmountMinor int64  // Amount in minor currency units.
	Currency    string // ISO 4217 currency code.
	Status      string // Gateway-side order status.
}

// PaymentGateway defines the boundary to the external payment processor.
// The pipeline consumes it; it is never reimplemented here.
type PaymentGateway interface {
	// CreateOrder registers a payment order with the gateway and returns
	// its identifier for the client-side payment flow.
	CreateOrder(ctx context.Context, amountMinor int64, currency, receipt string) (*GatewayOrder, error)

	// VerifySignature recomputes the HMAC-SHA256 signature over
	// "orderID|paymentID" with the shared secret and compares it to the
	// caller-supplied signature in constant time.
	VerifySignature(orderID, paymentID, signature string) bool
}
