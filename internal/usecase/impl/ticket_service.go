package impl

import (
	"context"
	"log/slog"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// ticketService implements the TicketUsecase interface.
type ticketService struct {
	txManager  repository.TransactionManager
	ticketRepo repository.TicketRepository
	logger     *slog.Logger
}

// TicketServiceParams holds dependencies for ticketService, injected by Fx.
type TicketServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	TicketRepo repository.TicketRepository
	Logger     *slog.Logger
}

// NewTicketService is the constructor for ticketService.
func NewTicketService(params TicketServiceParams) usecase.TicketUsecase {
	return &ticketService{
		txManager:  params.TxManager,
		ticketRepo: params.TicketRepo,
		logger:     params.Logger,
	}
}

// CreateTicket opens a ticket with its seed message in one transaction.
// A message insert failure leaves no orphaned ticket behind.
func (srv *ticketService) CreateTicket(ctx context.Context, userID uuid.UUID, input *usecase.CreateTicketInput) (*entity.SupportTicket, error) {
	ticket := &entity.SupportTicket{
		UserID:  userID,
		Subject: input.Subject,
		Status:  entity.TicketStatusOpen,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		ticketRepo := repoFactory.TicketRepo()

		if err := ticketRepo.CreateTicket(ctx, ticket); err != nil {
			return errors.Wrap(err, "failed to create ticket")
		}

		seed := &entity.TicketMessage{
			TicketID:      ticket.ID,
			SenderID:      userID,
			Body:          input.Message,
			AttachmentURL: input.AttachmentURL,
		}
		if err := ticketRepo.CreateMessage(ctx, seed); err != nil {
			return errors.Wrap(err, "failed to create seed message")
		}

		ticket.Messages = []entity.TicketMessage{*seed}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute ticket creation transaction")
	}

	srv.logger.Info("Ticket opened", slog.Any("ticketID", ticket.ID), slog.Any("userID", userID))

	return ticket, nil
}

// ListTickets returns the user's tickets, newest first.
func (srv *ticketService) ListTickets(ctx context.Context, userID uuid.UUID) ([]*entity.SupportTicket, error) {
	tickets, err := srv.ticketRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list tickets")
	}

	return tickets, nil
}

// GetTicket returns a ticket with its conversation, scoped to the user
// unless userID is uuid.Nil.
func (srv *ticketService) GetTicket(ctx context.Context, userID, ticketID uuid.UUID) (*entity.SupportTicket, error) {
	ticket, err := srv.ticketRepo.FindByID(ctx, userID, ticketID)
	if err != nil {
		if errors.Is(err, repository.ErrTicketNotFound) {
			return nil, domainerrors.ErrNotFound.WithMessage("Ticket not found")
		}

		return nil, errors.Wrap(err, "failed to load ticket")
	}

	return ticket, nil
}

// AddMessage appends a message to a ticket the scope can see. Closed
// tickets accept no further messages.
func (srv *ticketService) AddMessage(ctx context.Context, scopeUserID, senderID, ticketID uuid.UUID, input *usecase.AddTicketMessageInput) (*entity.TicketMessage, error) {
	ticket, err := srv.GetTicket(ctx, scopeUserID, ticketID)
	if err != nil {
		return nil, err
	}
	if ticket.Status == entity.TicketStatusClosed {
		return nil, domainerrors.ErrConflict.WithMessage("This ticket is closed")
	}

	message := &entity.TicketMessage{
		TicketID:      ticketID,
		SenderID:      senderID,
		Body:          input.Body,
		AttachmentURL: input.AttachmentURL,
	}
	if err := srv.ticketRepo.CreateMessage(ctx, message); err != nil {
		return nil, errors.Wrap(err, "failed to append ticket message")
	}

	return message, nil
}

// AdminListTickets returns a page of tickets across all users.
func (srv *ticketService) AdminListTickets(ctx context.Context, query usecase.ListQuery) (*usecase.ListTicketsOutput, error) {
	params := query.ToParams()

	tickets, total, err := srv.ticketRepo.List(ctx, params)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list tickets")
	}

	return &usecase.ListTicketsOutput{
		Tickets:    tickets,
		Pagination: usecase.Pagination{Page: params.Page, Limit: params.Limit, Total: total},
	}, nil
}

// UpdateTicketStatus sets the handling state of a ticket.
func (srv *ticketService) UpdateTicketStatus(ctx context.Context, ticketID uuid.UUID, status entity.TicketStatus) error {
	if !status.IsValid() {
		return domainerrors.ErrInvalidInput.WithMessage("Unknown ticket status")
	}

	if err := srv.ticketRepo.UpdateStatus(ctx, ticketID, status); err != nil {
		if errors.Is(err, repository.ErrTicketNotFound) {
			return domainerrors.ErrNotFound.WithMessage("Ticket not found")
		}

		return errors.Wrap(err, "failed to update ticket status")
	}

	return nil
}
