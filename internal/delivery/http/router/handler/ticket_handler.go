package handler

import (
	"net/http"

	"storefront/internal/delivery/http/response"
	"storefront/internal/domain/entity"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// TicketHandler holds dependencies for support ticket handlers.
type TicketHandler struct {
	uc usecase.TicketUsecase
}

// NewTicketHandler is the constructor for TicketHandler, injected by Fx.
func NewTicketHandler(uc usecase.TicketUsecase) *TicketHandler {
	return &TicketHandler{uc: uc}
}

type createTicketRequest struct {
	Subject       string `json:"subject" validate:"required,max=200"`
	Message       string `json:"message" validate:"required"`
	AttachmentURL string `json:"attachmentUrl"`
}

// CreateTicket opens a ticket with its seed message in one transaction.
func (h *TicketHandler) CreateTicket(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Invalid user ID in token")
	}

	var req createTicketRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid ticket input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	ticket, err := h.uc.CreateTicket(c.Request().Context(), userID, &usecase.CreateTicketInput{
		Subject:       req.Subject,
		Message:       req.Message,
		AttachmentURL: req.AttachmentURL,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, ticket, "Ticket created successfully")
}

// ListTickets returns the caller's tickets.
func (h *TicketHandler) ListTickets(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Invalid user ID in token")
	}

	tickets, err := h.uc.ListTickets(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, tickets, "Tickets retrieved successfully")
}

// GetTicket returns one of the caller's tickets with its messages.
func (h *TicketHandler) GetTicket(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Invalid user ID in token")
	}

	ticketID, err := pathID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	ticket, err := h.uc.GetTicket(c.Request().Context(), userID, ticketID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, ticket, "Ticket retrieved successfully")
}

type addTicketMessageRequest struct {
	Body          string `json:"body" validate:"required"`
	AttachmentURL string `json:"attachmentUrl"`
}

// AddMessage appends a message to one of the caller's tickets.
func (h *TicketHandler) AddMessage(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Invalid user ID in token")
	}

	return h.appendMessage(c, userID, userID)
}

// AdminAddMessage appends a message to any ticket as the admin caller.
func (h *TicketHandler) AdminAddMessage(c echo.Context) error {
	adminID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Invalid user ID in token")
	}

	// uuid.Nil scope reads across users.
	return h.appendMessage(c, uuid.Nil, adminID)
}

func (h *TicketHandler) appendMessage(c echo.Context, scopeUserID, senderID uuid.UUID) error {
	ticketID, err := pathID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	var req addTicketMessageRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid message input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	message, err := h.uc.AddMessage(c.Request().Context(), scopeUserID, senderID, ticketID, &usecase.AddTicketMessageInput{
		Body:          req.Body,
		AttachmentURL: req.AttachmentURL,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, message, "Message added successfully")
}

// AdminListTickets returns the back-office ticket page across all users.
func (h *TicketHandler) AdminListTickets(c echo.Context) error {
	output, err := h.uc.AdminListTickets(c.Request().Context(), bindListQuery(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, echo.Map{
		"tickets":    output.Tickets,
		"pagination": newPageView(output.Pagination),
	}, "Tickets retrieved successfully")
}

type updateTicketStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=open pending resolved closed"`
}

// AdminUpdateTicketStatus moves a ticket through its lifecycle.
func (h *TicketHandler) AdminUpdateTicketStatus(c echo.Context) error {
	ticketID, err := pathID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	var req updateTicketStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.UpdateTicketStatus(c.Request().Context(), ticketID, entity.TicketStatus(req.Status)); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Ticket status updated")
}
