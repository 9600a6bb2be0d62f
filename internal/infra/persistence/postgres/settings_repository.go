package postgres

import (
	"context"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// settingsRepository implements the repository.SettingsRepository
// interface over the two single-row configuration tables.
type settingsRepository struct {
	db *gorm.DB
}

// NewSettingsRepository is the constructor for settingsRepository.
func NewSettingsRepository(db *gorm.DB) repository.SettingsRepository {
	return &settingsRepository{db: db}
}

// GetPaymentSettings retrieves the payment gateway configuration.
func (repo *settingsRepository) GetPaymentSettings(ctx context.Context) (*entity.PaymentSettings, error) {
	var settingsM model.PaymentSettingsModel

	if err := repo.db.WithContext(ctx).First(&settingsM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSettingsNotFound
		}

		return nil, errors.Wrap(err, "failed to load payment settings")
	}

	return toPaymentSettingsDomain(&settingsM), nil
}

// UpsertPaymentSettings writes the payment gateway configuration,
// updating the existing row in place when one exists.
func (repo *settingsRepository) UpsertPaymentSettings(ctx context.Context, settings *entity.PaymentSettings) error {
	var existing model.PaymentSettingsModel

	err := repo.db.WithContext(ctx).First(&existing).Error
	switch {
	case err == nil:
		settings.ID = existing.ID
	case errors.Is(err, gorm.ErrRecordNotFound):
		// First write creates the row.
	default:
		return errors.Wrap(err, "failed to load payment settings for upsert")
	}

	settingsM := fromPaymentSettingsDomain(settings)
	if err := repo.db.WithContext(ctx).Save(settingsM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to save payment settings")
	}

	settings.ID = settingsM.ID
	settings.UpdatedAt = settingsM.UpdatedAt

	return nil
}

// GetSMSSettings retrieves the SMS provider configuration.
func (repo *settingsRepository) GetSMSSettings(ctx context.Context) (*entity.SMSSettings, error) {
	var settingsM model.SMSSettingsModel

	if err := repo.db.WithContext(ctx).First(&settingsM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSettingsNotFound
		}

		return nil, errors.Wrap(err, "failed to load SMS settings")
	}

	return toSMSSettingsDomain(&settingsM), nil
}

// UpsertSMSSettings writes the SMS provider configuration, updating the
// existing row in place when one exists.
func (repo *settingsRepository) UpsertSMSSettings(ctx context.Context, settings *entity.SMSSettings) error {
	var existing model.SMSSettingsModel

	err := repo.db.WithContext(ctx).First(&existing).Error
	switch {
	case err == nil:
		settings.ID = existing.ID
	case errors.Is(err, gorm.ErrRecordNotFound):
		// First write creates the row.
	default:
		return errors.Wrap(err, "failed to load SMS settings for upsert")
	}

	settingsM := fromSMSSettingsDomain(settings)
	if err := repo.db.WithContext(ctx).Save(settingsM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to save SMS settings")
	}

	settings.ID = settingsM.ID
	settings.UpdatedAt = settingsM.UpdatedAt

	return nil
}

// --- Mapper Functions ---

// toPaymentSettingsDomain converts a GORM model to a domain entity.
func toPaymentSettingsDomain(data *model.PaymentSettingsModel) *entity.PaymentSettings {
	if data == nil {
		return nil
	}

	return &entity.PaymentSettings{
		ID:        data.ID,
		KeyID:     data.KeyID,
		KeySecret: data.KeySecret,
		Currency:  data.Currency,
		IsActive:  data.IsActive,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromPaymentSettingsDomain converts a domain entity to a GORM model.
func fromPaymentSettingsDomain(data *entity.PaymentSettings) *model.PaymentSettingsModel {
	if data == nil {
		return nil
	}

	return &model.PaymentSettingsModel{
		ID:        data.ID,
		KeyID:     data.KeyID,
		KeySecret: data.KeySecret,
		Currency:  data.Currency,
		IsActive:  data.IsActive,
	}
}

// toSMSSettingsDomain converts a GORM model to a domain entity.
func toSMSSettingsDomain(data *model.SMSSettingsModel) *entity.SMSSettings {
	if data == nil {
		return nil
	}

	return &entity.SMSSettings{
		ID:          data.ID,
		ProviderURL: data.ProviderURL,
		APIKey:      data.APIKey,
		SenderID:    data.SenderID,
		IsActive:    data.IsActive,
		UpdatedAt:   data.UpdatedAt,
	}
}

// fromSMSSettingsDomain converts a domain entity to a GORM model.
func fromSMSSettingsDomain(data *entity.SMSSettings) *model.SMSSettingsModel {
	if data == nil {
		return nil
	}

	return &model.SMSSettingsModel{
		ID:          data.ID,
		ProviderURL: data.ProviderURL,
		APIKey:      data.APIKey,
		SenderID:    data.SenderID,
		IsActive:    data.IsActive,
	}
}
