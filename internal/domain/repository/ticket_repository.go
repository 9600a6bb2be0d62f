package repository

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/errors"

	"github.com/google/uuid"
)

// ErrTicketNotFound is returned when a ticket is not found under the
// requesting scope.
var ErrTicketNotFound = errors.New("ticket not found")

// TicketRepository defines the interface for support ticket database
// operations. Creating a ticket and its seed message are separate calls
// so the use case can place both inside one transaction.
type TicketRepository interface {
	// CreateTicket persists a new ticket without messages.
	CreateTicket(ctx context.Context, ticket *entity.SupportTicket) error

	// CreateMessage persists a message under an existing ticket.
	CreateMessage(ctx context.Context, message *entity.TicketMessage) error

	// FindByID retrieves a ticket with its messages ordered oldest
	// first, scoped to the owning user. Pass uuid.Nil as userID for an
	// unscoped (admin) lookup.
	FindByID(ctx context.Context, userID, ticketID uuid.UUID) (*entity.SupportTicket, error)

	// FindByUser retrieves a user's tickets, newest first, without messages.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.SupportTicket, error)

	// List retrieves tickets matching the list parameters across all
	// users, newest first, along with the total match count.
	List(ctx context.Context, params ListParams) ([]*entity.SupportTicket, int64, error)

	// UpdateStatus sets the ticket status.
	UpdateStatus(ctx context.Context, ticketID uuid.UUID, status entity.TicketStatus) error
}
