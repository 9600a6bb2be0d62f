package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"
	mockService "storefront/internal/mocks/service"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// settingsServiceFixtures holds all test dependencies for settings service tests.
type settingsServiceFixtures struct {
	service      usecase.SettingsUsecase
	settingsRepo *mockRepo.MockSettingsRepository
	smsSender    *mockService.MockSMSSender
}

func createTestSettingsService(t *testing.T) settingsServiceFixtures {
	settingsRepo := mockRepo.NewMockSettingsRepository(t)
	smsSender := mockService.NewMockSMSSender(t)
	service := NewSettingsService(SettingsServiceParams{
		SettingsRepo: settingsRepo,
		SMSSender:    smsSender,
		Logger:       newDiscardLogger(),
	})

	return settingsServiceFixtures{
		service:      service,
		settingsRepo: settingsRepo,
		smsSender:    smsSender,
	}
}

func TestSettingsService_GetPaymentSettings_MasksSecret(t *testing.T) {
	fx := createTestSettingsService(t)

	ctx := context.Background()

	fx.settingsRepo.EXPECT().GetPaymentSettings(ctx).Return(&entity.PaymentSettings{
		KeyID:     "key_live_123",
		KeySecret: "supersecret9876",
		Currency:  "INR",
		IsActive:  true,
	}, nil)

	output, err := fx.service.GetPaymentSettings(ctx)

	require.NoError(t, err)
	assert.Equal(t, "key_live_123", output.KeyID)
	assert.NotContains(t, output.KeySecret, "supersecret")
	assert.Equal(t, "9876", output.KeySecret[len(output.KeySecret)-4:])
}

func TestSettingsService_GetPaymentSettings_Unconfigured(t *testing.T) {
	fx := createTestSettingsService(t)

	ctx := context.Background()

	fx.settingsRepo.EXPECT().GetPaymentSettings(ctx).Return(nil, repository.ErrSettingsNotFound)

	_, err := fx.service.GetPaymentSettings(ctx)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}

func TestSettingsService_UpdatePaymentSettings_ReturnsMasked(t *testing.T) {
	fx := createTestSettingsService(t)

	ctx := context.Background()

	fx.settingsRepo.EXPECT().
		UpsertPaymentSettings(ctx, mock.AnythingOfType("*entity.PaymentSettings")).
		Run(func(ctx context.Context, settings *entity.PaymentSettings) {
			// The repository sees the cleartext secret.
			assert.Equal(t, "supersecret9876", settings.KeySecret)
		}).
		Return(nil)

	output, err := fx.service.UpdatePaymentSettings(ctx, &usecase.PaymentSettingsInput{
		KeyID:     "key_live_123",
		KeySecret: "supersecret9876",
		Currency:  "INR",
		IsActive:  true,
	})

	require.NoError(t, err)
	assert.NotContains(t, output.KeySecret, "supersecret")
}

func TestSettingsService_UpdatePaymentSettings_MissingCredentials(t *testing.T) {
	fx := createTestSettingsService(t)

	_, err := fx.service.UpdatePaymentSettings(context.Background(), &usecase.PaymentSettingsInput{
		KeyID:    "key_live_123",
		Currency: "INR",
	})

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidInput))
}

func TestSettingsService_UpdatePaymentSettings_BadCurrency(t *testing.T) {
	fx := createTestSettingsService(t)

	_, err := fx.service.UpdatePaymentSettings(context.Background(), &usecase.PaymentSettingsInput{
		KeyID:     "key_live_123",
		KeySecret: "supersecret9876",
		Currency:  "RUPEES",
	})

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidInput))
}

func TestSettingsService_UpdateSMSSettings_ReturnsMasked(t *testing.T) {
	fx := createTestSettingsService(t)

	ctx := context.Background()

	fx.settingsRepo.EXPECT().
		UpsertSMSSettings(ctx, mock.AnythingOfType("*entity.SMSSettings")).
		Return(nil)

	output, err := fx.service.UpdateSMSSettings(ctx, &usecase.SMSSettingsInput{
		ProviderURL: "https://sms.test",
		APIKey:      "apikey-0042",
		SenderID:    "STRFNT",
		IsActive:    true,
	})

	require.NoError(t, err)
	assert.NotEqual(t, "apikey-0042", output.APIKey)
	assert.Equal(t, "0042", output.APIKey[len(output.APIKey)-4:])
}

func TestSettingsService_SMSBalance_Success(t *testing.T) {
	fx := createTestSettingsService(t)

	ctx := context.Background()

	fx.smsSender.EXPECT().Balance(ctx).Return(int64(1250), nil)

	credits, err := fx.service.SMSBalance(ctx)

	require.NoError(t, err)
	assert.Equal(t, int64(1250), credits)
}

func TestSettingsService_SMSBalance_ProviderDown(t *testing.T) {
	fx := createTestSettingsService(t)

	ctx := context.Background()

	fx.smsSender.EXPECT().Balance(ctx).Return(int64(0), errors.New("connection refused"))

	_, err := fx.service.SMSBalance(ctx)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUpstreamFailure))
}
