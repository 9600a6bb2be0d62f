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

// bulkOrderService implements the BulkOrderUsecase interface.
type bulkOrderService struct {
	bulkOrderRepo repository.BulkOrderRepository
	logger        *slog.Logger
}

// BulkOrderServiceParams holds dependencies for bulkOrderService, injected by Fx.
type BulkOrderServiceParams struct {
	fx.In

	BulkOrderRepo repository.BulkOrderRepository
	Logger        *slog.Logger
}

// NewBulkOrderService is the constructor for bulkOrderService.
func NewBulkOrderService(params BulkOrderServiceParams) usecase.BulkOrderUsecase {
	return &bulkOrderService{
		bulkOrderRepo: params.BulkOrderRepo,
		logger:        params.Logger,
	}
}

// CreateRequest submits a wholesale enquiry.
func (srv *bulkOrderService) CreateRequest(ctx context.Context, userID uuid.UUID, input *usecase.CreateBulkOrderInput) (*entity.BulkOrderRequest, error) {
	if input.QuantityEstimate < 0 {
		return nil, domainerrors.ErrInvalidInput.WithMessage("Quantity estimate cannot be negative")
	}

	request := &entity.BulkOrderRequest{
		UserID:           userID,
		CompanyName:      input.CompanyName,
		ContactPhone:     input.ContactPhone,
		Details:          input.Details,
		QuantityEstimate: input.QuantityEstimate,
		Status:           entity.BulkOrderStatusReceived,
	}

	if err := srv.bulkOrderRepo.Create(ctx, request); err != nil {
		return nil, errors.Wrap(err, "failed to create bulk order request")
	}

	srv.logger.Info("Bulk order request received", slog.Any("requestID", request.ID))

	return request, nil
}

// ListRequests returns the user's enquiries, newest first.
func (srv *bulkOrderService) ListRequests(ctx context.Context, userID uuid.UUID) ([]*entity.BulkOrderRequest, error) {
	requests, err := srv.bulkOrderRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list bulk order requests")
	}

	return requests, nil
}

// AdminListRequests returns a page of enquiries across all users.
func (srv *bulkOrderService) AdminListRequests(ctx context.Context, query usecase.ListQuery) (*usecase.ListBulkOrdersOutput, error) {
	params := query.ToParams()

	requests, total, err := srv.bulkOrderRepo.List(ctx, params)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list bulk order requests")
	}

	return &usecase.ListBulkOrdersOutput{
		Requests:   requests,
		Pagination: usecase.Pagination{Page: params.Page, Limit: params.Limit, Total: total},
	}, nil
}

// UpdateRequestStatus sets the review state of an enquiry.
func (srv *bulkOrderService) UpdateRequestStatus(ctx context.Context, requestID uuid.UUID, status entity.BulkOrderStatus) error {
	if !status.IsValid() {
		return domainerrors.ErrInvalidInput.WithMessage("Unknown request status")
	}

	if err := srv.bulkOrderRepo.UpdateStatus(ctx, requestID, status); err != nil {
		if errors.Is(err, repository.ErrBulkOrderNotFound) {
			return domainerrors.ErrNotFound.WithMessage("Bulk order request not found")
		}

		return errors.Wrap(err, "failed to update bulk order request status")
	}

	return nil
}
