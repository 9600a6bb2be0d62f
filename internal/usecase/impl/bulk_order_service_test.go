package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	mockRepo "storefront/internal/mocks/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// bulkOrderServiceFixtures holds all test dependencies for bulk order service tests.
type bulkOrderServiceFixtures struct {
	service       usecase.BulkOrderUsecase
	bulkOrderRepo *mockRepo.MockBulkOrderRepository
}

func createTestBulkOrderService(t *testing.T) bulkOrderServiceFixtures {
	bulkOrderRepo := mockRepo.NewMockBulkOrderRepository(t)
	service := NewBulkOrderService(BulkOrderServiceParams{
		BulkOrderRepo: bulkOrderRepo,
		Logger:        newDiscardLogger(),
	})

	return bulkOrderServiceFixtures{
		service:       service,
		bulkOrderRepo: bulkOrderRepo,
	}
}

func TestBulkOrderService_CreateRequest_Success(t *testing.T) {
	fx := createTestBulkOrderService(t)

	ctx := context.Background()
	userID := uuid.New()
	input := &usecase.CreateBulkOrderInput{
		CompanyName:      "Chai Point Pvt Ltd",
		ContactPhone:     "9876543210",
		Details:          "Monthly supply for 12 outlets",
		QuantityEstimate: 500,
	}

	fx.bulkOrderRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.BulkOrderRequest")).
		Run(func(ctx context.Context, request *entity.BulkOrderRequest) {
			request.ID = uuid.New()
		}).
		Return(nil)

	request, err := fx.service.CreateRequest(ctx, userID, input)

	require.NoError(t, err)
	assert.Equal(t, entity.BulkOrderStatusReceived, request.Status)
	assert.Equal(t, userID, request.UserID)
}

func TestBulkOrderService_CreateRequest_NegativeEstimate(t *testing.T) {
	fx := createTestBulkOrderService(t)

	_, err := fx.service.CreateRequest(context.Background(), uuid.New(), &usecase.CreateBulkOrderInput{
		CompanyName:      "Chai Point Pvt Ltd",
		QuantityEstimate: -1,
	})

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidInput))
}

func TestBulkOrderService_UpdateRequestStatus_Unknown(t *testing.T) {
	fx := createTestBulkOrderService(t)

	err := fx.service.UpdateRequestStatus(context.Background(), uuid.New(), entity.BulkOrderStatus("ghosted"))

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidInput))
}
