package service

import "context"

// SMSSender defines the boundary to the external SMS provider.
type SMSSender interface {
	// SendOTP delivers a one-time password message to a phone number.
	SendOTP(ctx context.Context, phone, message string) error

	// Balance returns the remaining message credits on the provider account.
	Balance(ctx context.Context) (int64, error)
}
