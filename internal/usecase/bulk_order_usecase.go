package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateBulkOrderInput defines the data of a wholesale enquiry.
type CreateBulkOrderInput struct {
	CompanyName      string
	ContactPhone     string
	Details          string
	QuantityEstimate int
}

// ListBulkOrdersOutput returns a page of bulk order requests.
type ListBulkOrdersOutput struct {
	Requests   []*entity.BulkOrderRequest
	Pagination Pagination
}

// BulkOrderUsecase defines the interface for bulk order request operations.
type BulkOrderUsecase interface {
	CreateRequest(ctx context.Context, userID uuid.UUID, input *CreateBulkOrderInput) (*entity.BulkOrderRequest, error)
	ListRequests(ctx context.Context, userID uuid.UUID) ([]*entity.BulkOrderRequest, error)

	// Admin operations.
	AdminListRequests(ctx context.Context, query ListQuery) (*ListBulkOrdersOutput, error)
	UpdateRequestStatus(ctx context.Context, requestID uuid.UUID, status entity.BulkOrderStatus) error
}
