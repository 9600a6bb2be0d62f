package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateTicketInput defines the data required to open a support ticket.
// The seed message is inserted atomically with the ticket.
type CreateTicketInput struct {
	Subject       string
	Message       string
	AttachmentURL string
}

// AddTicketMessageInput defines the data required to append a message.
type AddTicketMessageInput struct {
	Body          string
	AttachmentURL string
}

// ListTicketsOutput returns a page of tickets.
type ListTicketsOutput struct {
	Tickets    []*entity.SupportTicket
	Pagination Pagination
}

// TicketUsecase defines the interface for support ticket operations.
// Customer operations are scoped to the owning user; admin variants
// pass uuid.Nil to read across users.
type TicketUsecase interface {
	CreateTicket(ctx context.Context, userID uuid.UUID, input *CreateTicketInput) (*entity.SupportTicket, error)
	ListTickets(ctx context.Context, userID uuid.UUID) ([]*entity.SupportTicket, error)
	GetTicket(ctx context.Context, userID, ticketID uuid.UUID) (*entity.SupportTicket, error)

	// AddMessage appends a message as the given sender. Customers may
	// only write to their own tickets; admins (scoped uuid.Nil) to any.
	AddMessage(ctx context.Context, scopeUserID, senderID, ticketID uuid.UUID, input *AddTicketMessageInput) (*entity.TicketMessage, error)

	// Admin operations.
	AdminListTickets(ctx context.Context, query ListQuery) (*ListTicketsOutput, error)
	UpdateTicketStatus(ctx context.Context, ticketID uuid.UUID, status entity.TicketStatus) error
}
