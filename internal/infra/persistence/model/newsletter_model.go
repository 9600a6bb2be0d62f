package model

import (
	"time"

	"github.com/google/uuid"
)

// SubscriberModel mirrors the 'subscribers' table.
type SubscriberModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Email          string    `gorm:"type:varchar(255);unique;not null"`
	IsActive       bool      `gorm:"not null;default:true"`
	SubscribedAt   time.Time `gorm:"not null"`
	UnsubscribedAt *time.Time
}

// TableName explicitly sets the table name for GORM.
func (SubscriberModel) TableName() string {
	return "subscribers"
}
