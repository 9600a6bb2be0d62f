package usecase

import "context"

// PaymentSettingsInput carries the payment gateway configuration write.
type PaymentSettingsInput struct {
	KeyID     string
	KeySecret string
	Currency  string
	IsActive  bool
}

// PaymentSettingsOutput is the masked read form of the payment config.
type PaymentSettingsOutput struct {
	KeyID     string
	KeySecret string // Masked to the last four characters.
	Currency  string
	IsActive  bool
}

// SMSSettingsInput carries the SMS provider configuration write.
type SMSSettingsInput struct {
	ProviderURL string
	APIKey      string
	SenderID    string
	IsActive    bool
}

// SMSSettingsOutput is the masked read form of the SMS config.
type SMSSettingsOutput struct {
	ProviderURL string
	APIKey      string // Masked to the last four characters.
	SenderID    string
	IsActive    bool
}

// SettingsUsecase defines the interface for the admin-managed singleton
// configurations. Reads mask secrets; writes upsert the single row.
type SettingsUsecase interface {
	GetPaymentSettings(ctx context.Context) (*PaymentSettingsOutput, error)
	UpdatePaymentSettings(ctx context.Context, input *PaymentSettingsInput) (*PaymentSettingsOutput, error)

	GetSMSSettings(ctx context.Context) (*SMSSettingsOutput, error)
	UpdateSMSSettings(ctx context.Context, input *SMSSettingsInput) (*SMSSettingsOutput, error)

	// SMSBalance proxies the provider's remaining credit lookup.
	SMSBalance(ctx context.Context) (int64, error)
}
