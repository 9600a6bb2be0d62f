// Package model contains the GORM-specific table structs. They are kept
// separate from the domain entities so persistence concerns never leak
// into the domain layer.
package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table.
type UserModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Email         string    `gorm:"type:varchar(255);unique;not null"`
	Name          string    `gorm:"type:varchar(100);not null"`
	Phone         string    `gorm:"type:varchar(10);index"`
	PasswordHash  string    `gorm:"type:varchar(255);not null"`
	Role          string    `gorm:"type:varchar(20);not null;default:'customer'"`
	Status        string    `gorm:"type:varchar(20);not null;default:'active'"`
	EmailVerified bool      `gorm:"not null;default:false"`
	PhoneVerified bool      `gorm:"not null;default:false"`
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Addresses []AddressModel `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
