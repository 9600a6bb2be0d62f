package model

import (
	"time"

	"github.com/google/uuid"
)

// ProductModel mirrors the 'products' table.
type ProductModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name        string    `gorm:"type:varchar(255);not null"`
	Slug        string    `gorm:"type:varchar(255);unique;not null"`
	Description string    `gorm:"type:text"`
	PriceMinor  int64     `gorm:"not null"`
	StockQty    int       `gorm:"not null;default:0"`
	ImageURL    string    `gorm:"type:varchar(512)"`
	IsActive    bool      `gorm:"not null;default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}

// CartItemModel mirrors the 'cart_items' table. The composite unique
// index keeps one line per (user, product) pair.
type CartItemModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_cart_user_product"`
	ProductID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_cart_user_product"`
	Quantity  int       `gorm:"not null;default:1"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Product *ProductModel `gorm:"foreignKey:ProductID"`
}

// TableName explicitly sets the table name for GORM.
func (CartItemModel) TableName() string {
	return "cart_items"
}

// CouponModel mirrors the 'coupons' table. Codes are stored upper-cased.
type CouponModel struct {
	ID               uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Code             string    `gorm:"type:varchar(50);unique;not null"`
	Type             string    `gorm:"type:varchar(20);not null"`
	Value            int64     `gorm:"not null"`
	MaxDiscountMinor int64     `gorm:"not null;default:0"`
	MinOrderMinor    int64     `gorm:"not null;default:0"`
	ValidFrom        time.Time `gorm:"not null"`
	ValidTo          time.Time `gorm:"not null"`
	UsageLimit       int       `gorm:"not null;default:0"`
	UsedCount        int       `gorm:"not null;default:0"`
	IsActive         bool      `gorm:"not null;default:true"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TableName explicitly sets the table name for GORM.
func (CouponModel) TableName() string {
	return "coupons"
}
