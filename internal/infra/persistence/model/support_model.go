package model

import (
	"time"

	"github.com/google/uuid"
)

// SupportTicketModel mirrors the 'support_tickets' table.
type SupportTicketModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Subject   string    `gorm:"type:varchar(255);not null"`
	Status    string    `gorm:"type:varchar(20);not null;default:'open'"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Messages []TicketMessageModel `gorm:"foreignKey:TicketID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (SupportTicketModel) TableName() string {
	return "support_tickets"
}

// TicketMessageModel mirrors the 'ticket_messages' table.
type TicketMessageModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	TicketID      uuid.UUID `gorm:"type:uuid;not null;index"`
	SenderID      uuid.UUID `gorm:"type:uuid;not null"`
	Body          string    `gorm:"type:text;not null"`
	AttachmentURL string    `gorm:"type:varchar(512)"`
	CreatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (TicketMessageModel) TableName() string {
	return "ticket_messages"
}

// BulkOrderRequestModel mirrors the 'bulk_order_requests' table.
type BulkOrderRequestModel struct {
	ID               uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID           uuid.UUID `gorm:"type:uuid;not null;index"`
	CompanyName      string    `gorm:"type:varchar(255);not null"`
	ContactPhone     string    `gorm:"type:varchar(10);not null"`
	Details          string    `gorm:"type:text;not null"`
	QuantityEstimate int       `gorm:"not null;default:0"`
	Status           string    `gorm:"type:varchar(20);not null;default:'received'"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TableName explicitly sets the table name for GORM.
func (BulkOrderRequestModel) TableName() string {
	return "bulk_order_requests"
}
