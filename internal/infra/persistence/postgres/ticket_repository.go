package postgres

import (
	"context"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// ticketRepository implements the repository.TicketRepository interface.
type ticketRepository struct {
	db *gorm.DB
}

// NewTicketRepository is the constructor for ticketRepository.
func NewTicketRepository(db *gorm.DB) repository.TicketRepository {
	return &ticketRepository{db: db}
}

// CreateTicket persists a new ticket without messages.
func (repo *ticketRepository) CreateTicket(ctx context.Context, ticket *entity.SupportTicket) error {
	ticketM := fromTicketDomain(ticket)
	ticketM.Messages = nil

	if err := repo.db.WithContext(ctx).Create(ticketM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrInvalidInput.WrapMessage("ticket references a missing user")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create ticket")
	}

	ticket.ID = ticketM.ID
	ticket.CreatedAt = ticketM.CreatedAt
	ticket.UpdatedAt = ticketM.UpdatedAt

	return nil
}

// CreateMessage persists a message under an existing ticket.
func (repo *ticketRepository) CreateMessage(ctx context.Context, message *entity.TicketMessage) error {
	messageM := fromTicketMessageDomain(message)

	if err := repo.db.WithContext(ctx).Create(messageM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrTicketNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create ticket message")
	}

	message.ID = messageM.ID
	message.CreatedAt = messageM.CreatedAt

	return nil
}

// FindByID retrieves a ticket with its messages ordered oldest first,
// scoped to the owning user unless userID is uuid.Nil.
func (repo *ticketRepository) FindByID(ctx context.Context, userID, ticketID uuid.UUID) (*entity.SupportTicket, error) {
	var ticketM model.SupportTicketModel

	query := repo.db.WithContext(ctx).
		Preload("Messages", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		}).
		Where("id = ?", ticketID)
	if userID != uuid.Nil {
		query = query.Where("user_id = ?", userID)
	}

	if err := query.First(&ticketM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTicketNotFound
		}

		return nil, errors.Wrap(err, "failed to find ticket by ID")
	}

	return toTicketDomain(&ticketM), nil
}

// FindByUser retrieves a user's tickets, newest first, without messages.
func (repo *ticketRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.SupportTicket, error) {
	var ticketModels []*model.SupportTicketModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&ticketModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list tickets for user")
	}

	tickets := make([]*entity.SupportTicket, 0, len(ticketModels))
	for _, ticketM := range ticketModels {
		tickets = append(tickets, toTicketDomain(ticketM))
	}

	return tickets, nil
}

// List retrieves tickets matching the list parameters across all users,
// newest first.
func (repo *ticketRepository) List(ctx context.Context, params repository.ListParams) ([]*entity.SupportTicket, int64, error) {
	params = params.Normalize()

	query := repo.db.WithContext(ctx).Model(&model.SupportTicketModel{})
	if params.Status != "" {
		query = query.Where("status = ?", params.Status)
	}
	if params.Search != "" {
		query = query.Where("subject ILIKE ?", "%"+params.Search+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count tickets")
	}

	var ticketModels []*model.SupportTicketModel
	if err := query.
		Order("created_at DESC").
		Limit(params.Limit).
		Offset(params.Offset()).
		Find(&ticketModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list tickets")
	}

	tickets := make([]*entity.SupportTicket, 0, len(ticketModels))
	for _, ticketM := range ticketModels {
		tickets = append(tickets, toTicketDomain(ticketM))
	}

	return tickets, total, nil
}

// UpdateStatus sets the ticket status.
func (repo *ticketRepository) UpdateStatus(ctx context.Context, ticketID uuid.UUID, status entity.TicketStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.SupportTicketModel{}).
		Where("id = ?", ticketID).
		Update("status", string(status))

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update ticket status")
	}

	if result.RowsAffected == 0 {
		return repository.ErrTicketNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toTicketDomain converts a GORM SupportTicketModel to a domain entity.
func toTicketDomain(data *model.SupportTicketModel) *entity.SupportTicket {
	if data == nil {
		return nil
	}

	messages := make([]entity.TicketMessage, 0, len(data.Messages))
	for _, messageM := range data.Messages {
		messages = append(messages, *toTicketMessageDomain(&messageM))
	}

	return &entity.SupportTicket{
		ID:        data.ID,
		UserID:    data.UserID,
		Subject:   data.Subject,
		Status:    entity.TicketStatus(data.Status),
		Messages:  messages,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// toTicketMessageDomain converts a GORM TicketMessageModel to a domain entity.
func toTicketMessageDomain(data *model.TicketMessageModel) *entity.TicketMessage {
	if data == nil {
		return nil
	}

	return &entity.TicketMessage{
		ID:            data.ID,
		TicketID:      data.TicketID,
		SenderID:      data.SenderID,
		Body:          data.Body,
		AttachmentURL: data.AttachmentURL,
		CreatedAt:     data.CreatedAt,
	}
}

// fromTicketDomain converts a domain SupportTicket to a GORM model.
func fromTicketDomain(data *entity.SupportTicket) *model.SupportTicketModel {
	if data == nil {
		return nil
	}

	messages := make([]model.TicketMessageModel, 0, len(data.Messages))
	for _, message := range data.Messages {
		messages = append(messages, *fromTicketMessageDomain(&message))
	}

	return &model.SupportTicketModel{
		ID:       data.ID,
		UserID:   data.UserID,
		Subject:  data.Subject,
		Status:   string(data.Status),
		Messages: messages,
	}
}

// fromTicketMessageDomain converts a domain TicketMessage to a GORM model.
func fromTicketMessageDomain(data *entity.TicketMessage) *model.TicketMessageModel {
	if data == nil {
		return nil
	}

	return &model.TicketMessageModel{
		ID:            data.ID,
		TicketID:      data.TicketID,
		SenderID:      data.SenderID,
		Body:          data.Body,
		AttachmentURL: data.AttachmentURL,
	}
}
