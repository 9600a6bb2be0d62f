package model

import (
	"time"

	"github.com/google/uuid"
)

// AddressModel is the GORM-specific struct for the 'addresses' table.
// A partial unique index on (user_id) WHERE is_default guards the
// at-most-one-default invariant at the storage level as well.
type AddressModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index:idx_addresses_on_user"`
	Label     string    `gorm:"type:varchar(100);not null"`
	Line1     string    `gorm:"type:varchar(255);not null"`
	Line2     string    `gorm:"type:varchar(255)"`
	City      string    `gorm:"type:varchar(100);not null"`
	State     string    `gorm:"type:varchar(100);not null"`
	Pincode   string    `gorm:"type:varchar(6);not null"`
	Phone     string    `gorm:"type:varchar(10);not null"`
	IsDefault bool      `gorm:"not null;default:false"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (AddressModel) TableName() string {
	return "addresses"
}
