package model

import (
	"time"

	"github.com/google/uuid"
)

// PaymentSettingsModel mirrors the 'payment_settings' table. The table
// holds a single row; upserts update it in place.
type PaymentSettingsModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	KeyID     string    `gorm:"type:varchar(255);not null"`
	KeySecret string    `gorm:"type:varchar(255);not null"`
	Currency  string    `gorm:"type:varchar(3);not null;default:'INR'"`
	IsActive  bool      `gorm:"not null;default:true"`
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (PaymentSettingsModel) TableName() string {
	return "payment_settings"
}

// SMSSettingsModel mirrors the 'sms_settings' table, also single-row.
type SMSSettingsModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ProviderURL string    `gorm:"type:varchar(512);not null"`
	APIKey      string    `gorm:"type:varchar(255);not null"`
	SenderID    string    `gorm:"type:varchar(20);not null"`
	IsActive    bool      `gorm:"not null;default:true"`
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (SMSSettingsModel) TableName() string {
	return "sms_settings"
}
