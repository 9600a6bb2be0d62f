package model

import (
	"time"

	"github.com/google/uuid"
)

// OrderModel mirrors the 'orders' table.
type OrderModel struct {
	ID               uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID           uuid.UUID  `gorm:"type:uuid;not null;index"`
	SubtotalMinor    int64      `gorm:"not null"`
	DiscountMinor    int64      `gorm:"not null;default:0"`
	TotalMinor       int64      `gorm:"not null"`
	CouponID         *uuid.UUID `gorm:"type:uuid"`
	AddressID        uuid.UUID  `gorm:"type:uuid;not null"`
	Status           string     `gorm:"type:varchar(20);not null;default:'created'"`
	PaymentStatus    string     `gorm:"type:varchar(20);not null;default:'pending'"`
	GatewayOrderID   string     `gorm:"type:varchar(100);uniqueIndex"`
	GatewayPaymentID string     `gorm:"type:varchar(100)"`
	CreatedAt        time.Time
	UpdatedAt        time.Time

	Items []OrderItemModel `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// OrderItemModel mirrors the 'order_items' table, a checkout-time
// snapshot of product name and price.
type OrderItemModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OrderID    uuid.UUID `gorm:"type:uuid;not null;index"`
	ProductID  uuid.UUID `gorm:"type:uuid;not null"`
	Name       string    `gorm:"type:varchar(255);not null"`
	PriceMinor int64     `gorm:"not null"`
	Quantity   int       `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (OrderItemModel) TableName() string {
	return "order_items"
}
