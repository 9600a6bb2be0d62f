package repository

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/errors"
)

// ErrSettingsNotFound is returned when a singleton config row has not
// been created yet.
var ErrSettingsNotFound = errors.New("settings not found")

// SettingsRepository defines the interface for the singleton
// configuration rows. Upserts find the single existing row and update
// it in place instead of inserting a duplicate.
type SettingsRepository interface {
	// GetPaymentSettings retrieves the payment gateway configuration.
	GetPaymentSettings(ctx context.Context) (*entity.PaymentSettings, error)

	// UpsertPaymentSettings writes the payment gateway configuration,
	// updating the existing row when one exists.
	UpsertPaymentSettings(ctx context.Context, settings *entity.PaymentSettings) error

	// GetSMSSettings retrieves the SMS provider configuration.
	GetSMSSettings(ctx context.Context) (*entity.SMSSettings, error)

	// UpsertSMSSettings writes the SMS provider configuration, updating
	// the existing row when one exists.
	UpsertSMSSettings(ctx context.Context, settings *entity.SMSSettings) error
}
