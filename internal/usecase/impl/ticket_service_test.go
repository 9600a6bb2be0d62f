package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// ticketServiceFixtures holds all test dependencies for ticket service tests.
type ticketServiceFixtures struct {
	t          *testing.T
	service    usecase.TicketUsecase
	txManager  *mockRepo.MockTransactionManager
	ticketRepo *mockRepo.MockTicketRepository
}

func createTestTicketService(t *testing.T) ticketServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	ticketRepo := mockRepo.NewMockTicketRepository(t)
	service := NewTicketService(TicketServiceParams{
		TxManager:  txManager,
		TicketRepo: ticketRepo,
		Logger:     newDiscardLogger(),
	})

	return ticketServiceFixtures{
		t:          t,
		service:    service,
		txManager:  txManager,
		ticketRepo: ticketRepo,
	}
}

// onExecute stubs the transaction manager: the transaction function runs
// against a factory prepared by setup, and Execute returns result.
func (f ticketServiceFixtures) onExecute(ctx context.Context, result error, setup func(factory *mockRepo.MockRepositoryFactory)) {
	f.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			factory := mockRepo.NewMockRepositoryFactory(f.t)
			setup(factory)
			_ = fn(factory)
		}).
		Return(result)
}

func TestTicketService_CreateTicket_SeedsFirstMessage(t *testing.T) {
	fx := createTestTicketService(t)

	ctx := context.Background()
	userID := uuid.New()
	input := &usecase.CreateTicketInput{
		Subject: "Order arrived damaged",
		Message: "The box was crushed on one side.",
	}

	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		ticketRepo := mockRepo.NewMockTicketRepository(t)
		factory.EXPECT().TicketRepo().Return(ticketRepo)
		ticketRepo.EXPECT().
			CreateTicket(ctx, mock.AnythingOfType("*entity.SupportTicket")).
			Run(func(ctx context.Context, ticket *entity.SupportTicket) {
				ticket.ID = uuid.New()
			}).
			Return(nil)
		ticketRepo.EXPECT().
			CreateMessage(ctx, mock.AnythingOfType("*entity.TicketMessage")).
			Run(func(ctx context.Context, message *entity.TicketMessage) {
				assert.Equal(t, userID, message.SenderID)
				assert.Equal(t, "The box was crushed on one side.", message.Body)
			}).
			Return(nil)
	})

	ticket, err := fx.service.CreateTicket(ctx, userID, input)

	require.NoError(t, err)
	assert.Equal(t, entity.TicketStatusOpen, ticket.Status)
	require.Len(t, ticket.Messages, 1)
	assert.Equal(t, ticket.ID, ticket.Messages[0].TicketID)
}

func TestTicketService_CreateTicket_SeedFailure_NoOrphanTicket(t *testing.T) {
	fx := createTestTicketService(t)

	ctx := context.Background()
	userID := uuid.New()

	// Execute surfaces the seed failure, which the manager turns into a
	// rollback, so the created ticket row never survives.
	fx.onExecute(ctx, errors.New("db error"), func(factory *mockRepo.MockRepositoryFactory) {
		ticketRepo := mockRepo.NewMockTicketRepository(t)
		factory.EXPECT().TicketRepo().Return(ticketRepo)
		ticketRepo.EXPECT().CreateTicket(ctx, mock.AnythingOfType("*entity.SupportTicket")).Return(nil)
		ticketRepo.EXPECT().CreateMessage(ctx, mock.AnythingOfType("*entity.TicketMessage")).Return(errors.New("db error"))
	})

	_, err := fx.service.CreateTicket(ctx, userID, &usecase.CreateTicketInput{
		Subject: "Order arrived damaged",
		Message: "The box was crushed on one side.",
	})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "db error")
}

func TestTicketService_AddMessage_Success(t *testing.T) {
	fx := createTestTicketService(t)

	ctx := context.Background()
	userID := uuid.New()
	ticketID := uuid.New()

	fx.ticketRepo.EXPECT().FindByID(ctx, userID, ticketID).Return(&entity.SupportTicket{
		ID:     ticketID,
		UserID: userID,
		Status: entity.TicketStatusOpen,
	}, nil)
	fx.ticketRepo.EXPECT().CreateMessage(ctx, mock.AnythingOfType("*entity.TicketMessage")).Return(nil)

	message, err := fx.service.AddMessage(ctx, userID, userID, ticketID, &usecase.AddTicketMessageInput{
		Body: "Any update on this?",
	})

	require.NoError(t, err)
	assert.Equal(t, ticketID, message.TicketID)
	assert.Equal(t, userID, message.SenderID)
}

func TestTicketService_AddMessage_ClosedTicket(t *testing.T) {
	fx := createTestTicketService(t)

	ctx := context.Background()
	userID := uuid.New()
	ticketID := uuid.New()

	fx.ticketRepo.EXPECT().FindByID(ctx, userID, ticketID).Return(&entity.SupportTicket{
		ID:     ticketID,
		UserID: userID,
		Status: entity.TicketStatusClosed,
	}, nil)

	_, err := fx.service.AddMessage(ctx, userID, userID, ticketID, &usecase.AddTicketMessageInput{
		Body: "One more thing",
	})

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrConflict))
}

func TestTicketService_AddMessage_ForeignTicket(t *testing.T) {
	fx := createTestTicketService(t)

	ctx := context.Background()
	userID := uuid.New()
	ticketID := uuid.New()

	// Another user's ticket is invisible to this scope.
	fx.ticketRepo.EXPECT().FindByID(ctx, userID, ticketID).Return(nil, repository.ErrTicketNotFound)

	_, err := fx.service.AddMessage(ctx, userID, userID, ticketID, &usecase.AddTicketMessageInput{
		Body: "Hello?",
	})

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}

func TestTicketService_AdminAddMessage_UnscopedAccess(t *testing.T) {
	fx := createTestTicketService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	adminID := uuid.New()
	ticketID := uuid.New()

	fx.ticketRepo.EXPECT().FindByID(ctx, uuid.Nil, ticketID).Return(&entity.SupportTicket{
		ID:     ticketID,
		UserID: ownerID,
		Status: entity.TicketStatusPending,
	}, nil)
	fx.ticketRepo.EXPECT().CreateMessage(ctx, mock.AnythingOfType("*entity.TicketMessage")).Return(nil)

	message, err := fx.service.AddMessage(ctx, uuid.Nil, adminID, ticketID, &usecase.AddTicketMessageInput{
		Body: "We have shipped a replacement.",
	})

	require.NoError(t, err)
	assert.Equal(t, adminID, message.SenderID)
}

func TestTicketService_UpdateTicketStatus_Unknown(t *testing.T) {
	fx := createTestTicketService(t)

	err := fx.service.UpdateTicketStatus(context.Background(), uuid.New(), entity.TicketStatus("archived"))

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidInput))
}

func TestTicketService_UpdateTicketStatus_NotFound(t *testing.T) {
	fx := createTestTicketService(t)

	ctx := context.Background()
	ticketID := uuid.New()

	fx.ticketRepo.EXPECT().UpdateStatus(ctx, ticketID, entity.TicketStatusClosed).Return(repository.ErrTicketNotFound)

	err := fx.service.UpdateTicketStatus(ctx, ticketID, entity.TicketStatusClosed)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}
