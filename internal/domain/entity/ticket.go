package entity

import (
	"time"

	"github.com/google/uuid"
)

// TicketStatus represents the handling state of a support ticket.
type TicketStatus string

const (
	// TicketStatusOpen indicates a ticket awaiting a first response.
	TicketStatusOpen TicketStatus = "open"
	// TicketStatusPending indicates a ticket waiting on the customer.
	TicketStatusPending TicketStatus = "pending"
	// TicketStatusResolved indicates a ticket with an accepted resolution.
	TicketStatusResolved TicketStatus = "resolved"
	// TicketStatusClosed indicates a ticket no longer accepting messages.
	TicketStatusClosed TicketStatus = "closed"
)

// IsValid checks if the TicketStatus is a valid value.
func (s TicketStatus) IsValid() bool {
	switch s {
	case TicketStatusOpen, TicketStatusPending, TicketStatusResolved, TicketStatusClosed:
		return true
	default:
		return false
	}
}

// SupportTicket is a customer support conversation. A ticket never
// exists without its seed message; both are inserted in one
// transaction at creation time.
type SupportTicket struct {
	ID        uuid.UUID       // The unique identifier for the ticket.
	UserID    uuid.UUID       // The customer who opened the ticket.
	Subject   string          // Short summary of the issue.
	Status    TicketStatus    // Handling state.
	Messages  []TicketMessage // Ordered conversation, oldest first.
	CreatedAt time.Time       // Timestamp of when this ticket was opened.
	UpdatedAt time.Time       // Timestamp of the last modification.
}

// TicketMessage is a single message in a ticket conversation.
type TicketMessage struct {
	ID            uuid.UUID // The unique identifier for the message.
	TicketID      uuid.UUID // The owning ticket.
	SenderID      uuid.UUID // The user (customer or admin) who wrote the message.
	Body          string    // Message text.
	AttachmentURL string    // Optional URL of an uploaded attachment.
	CreatedAt     time.Time // Timestamp of when this message was sent.
}
