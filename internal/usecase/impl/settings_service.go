package impl

import (
	"context"
	"log/slog"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// settingsService implements the SettingsUsecase interface.
type settingsService struct {
	settingsRepo repository.SettingsRepository
	smsSender    service.SMSSender
	logger       *slog.Logger
}

// SettingsServiceParams holds dependencies for settingsService, injected by Fx.
type SettingsServiceParams struct {
	fx.In

	SettingsRepo repository.SettingsRepository
	SMSSender    service.SMSSender
	Logger       *slog.Logger
}

// NewSettingsService is the constructor for settingsService.
func NewSettingsService(params SettingsServiceParams) usecase.SettingsUsecase {
	return &settingsService{
		settingsRepo: params.SettingsRepo,
		smsSender:    params.SMSSender,
		logger:       params.Logger,
	}
}

// GetPaymentSettings returns the payment configuration with the secret
// masked to its last four characters.
func (srv *settingsService) GetPaymentSettings(ctx context.Context) (*usecase.PaymentSettingsOutput, error) {
	settings, err := srv.settingsRepo.GetPaymentSettings(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrSettingsNotFound) {
			return nil, domainerrors.ErrNotFound.WithMessage("Payment settings have not been configured")
		}

		return nil, errors.Wrap(err, "failed to load payment settings")
	}

	return maskPaymentSettings(settings), nil
}

// UpdatePaymentSettings upserts the single payment configuration row.
func (srv *settingsService) UpdatePaymentSettings(ctx context.Context, input *usecase.PaymentSettingsInput) (*usecase.PaymentSettingsOutput, error) {
	if input.KeyID == "" || input.KeySecret == "" {
		return nil, domainerrors.ErrInvalidInput.WithMessage("Key id and key secret are required")
	}
	if len(input.Currency) != 3 {
		return nil, domainerrors.ErrInvalidInput.WithMessage("Currency must be a three letter ISO code")
	}

	settings := &entity.PaymentSettings{
		KeyID:     input.KeyID,
		KeySecret: input.KeySecret,
		Currency:  input.Currency,
		IsActive:  input.IsActive,
	}
	if err := srv.settingsRepo.UpsertPaymentSettings(ctx, settings); err != nil {
		return nil, errors.Wrap(err, "failed to save payment settings")
	}

	srv.logger.Info("Payment settings updated", slog.Bool("active", settings.IsActive))

	return maskPaymentSettings(settings), nil
}

// GetSMSSettings returns the SMS configuration with the API key masked.
func (srv *settingsService) GetSMSSettings(ctx context.Context) (*usecase.SMSSettingsOutput, error) {
	settings, err := srv.settingsRepo.GetSMSSettings(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrSettingsNotFound) {
			return nil, domainerrors.ErrNotFound.WithMessage("SMS settings have not been configured")
		}

		return nil, errors.Wrap(err, "failed to load SMS settings")
	}

	return maskSMSSettings(settings), nil
}

// UpdateSMSSettings upserts the single SMS configuration row.
func (srv *settingsService) UpdateSMSSettings(ctx context.Context, input *usecase.SMSSettingsInput) (*usecase.SMSSettingsOutput, error) {
	if input.ProviderURL == "" || input.APIKey == "" {
		return nil, domainerrors.ErrInvalidInput.WithMessage("Provider URL and API key are required")
	}

	settings := &entity.SMSSettings{
		ProviderURL: input.ProviderURL,
		APIKey:      input.APIKey,
		SenderID:    input.SenderID,
		IsActive:    input.IsActive,
	}
	if err := srv.settingsRepo.UpsertSMSSettings(ctx, settings); err != nil {
		return nil, errors.Wrap(err, "failed to save SMS settings")
	}

	srv.logger.Info("SMS settings updated", slog.Bool("active", settings.IsActive))

	return maskSMSSettings(settings), nil
}

// SMSBalance proxies the provider's remaining credit lookup.
func (srv *settingsService) SMSBalance(ctx context.Context) (int64, error) {
	credits, err := srv.smsSender.Balance(ctx)
	if err != nil {
		srv.logger.Error("SMS balance lookup failed", slog.Any("error", err))

		return 0, domainerrors.ErrUpstreamFailure.WrapMessage("SMS balance lookup failed")
	}

	return credits, nil
}

func maskPaymentSettings(settings *entity.PaymentSettings) *usecase.PaymentSettingsOutput {
	return &usecase.PaymentSettingsOutput{
		KeyID:     settings.KeyID,
		KeySecret: entity.MaskSecret(settings.KeySecret),
		Currency:  settings.Currency,
		IsActive:  settings.IsActive,
	}
}

func maskSMSSettings(settings *entity.SMSSettings) *usecase.SMSSettingsOutput {
	return &usecase.SMSSettingsOutput{
		ProviderURL: settings.ProviderURL,
		APIKey:      entity.MaskSecret(settings.APIKey),
		SenderID:    settings.SenderID,
		IsActive:    settings.IsActive,
	}
}
