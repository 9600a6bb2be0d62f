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

// bulkOrderRepository implements the repository.BulkOrderRepository interface.
type bulkOrderRepository struct {
	db *gorm.DB
}

// NewBulkOrderRepository is the constructor for bulkOrderRepository.
func NewBulkOrderRepository(db *gorm.DB) repository.BulkOrderRepository {
	return &bulkOrderRepository{db: db}
}

// Create persists a new bulk order request.
func (repo *bulkOrderRepository) Create(ctx context.Context, request *entity.BulkOrderRequest) error {
	requestM := fromBulkOrderDomain(request)

	if err := repo.db.WithContext(ctx).Create(requestM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrInvalidInput.WrapMessage("request references a missing user")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create bulk order request")
	}

	request.ID = requestM.ID
	request.CreatedAt = requestM.CreatedAt
	request.UpdatedAt = requestM.UpdatedAt

	return nil
}

// FindByID retrieves a request scoped to the owning user unless userID
// is uuid.Nil.
func (repo *bulkOrderRepository) FindByID(ctx context.Context, userID, requestID uuid.UUID) (*entity.BulkOrderRequest, error) {
	var requestM model.BulkOrderRequestModel

	query := repo.db.WithContext(ctx).Where("id = ?", requestID)
	if userID != uuid.Nil {
		query = query.Where("user_id = ?", userID)
	}

	if err := query.First(&requestM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBulkOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find bulk order request by ID")
	}

	return toBulkOrderDomain(&requestM), nil
}

// FindByUser retrieves a user's requests, newest first.
func (repo *bulkOrderRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.BulkOrderRequest, error) {
	var requestModels []*model.BulkOrderRequestModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&requestModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list bulk order requests for user")
	}

	requests := make([]*entity.BulkOrderRequest, 0, len(requestModels))
	for _, requestM := range requestModels {
		requests = append(requests, toBulkOrderDomain(requestM))
	}

	return requests, nil
}

// List retrieves requests matching the list parameters across all
// users, newest first.
func (repo *bulkOrderRepository) List(ctx context.Context, params repository.ListParams) ([]*entity.BulkOrderRequest, int64, error) {
	params = params.Normalize()

	query := repo.db.WithContext(ctx).Model(&model.BulkOrderRequestModel{})
	if params.Status != "" {
		query = query.Where("status = ?", params.Status)
	}
	if params.Search != "" {
		query = query.Where("company_name ILIKE ?", "%"+params.Search+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count bulk order requests")
	}

	var requestModels []*model.BulkOrderRequestModel
	if err := query.
		Order("created_at DESC").
		Limit(params.Limit).
		Offset(params.Offset()).
		Find(&requestModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list bulk order requests")
	}

	requests := make([]*entity.BulkOrderRequest, 0, len(requestModels))
	for _, requestM := range requestModels {
		requests = append(requests, toBulkOrderDomain(requestM))
	}

	return requests, total, nil
}

// UpdateStatus sets the request status.
func (repo *bulkOrderRepository) UpdateStatus(ctx context.Context, requestID uuid.UUID, status entity.BulkOrderStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.BulkOrderRequestModel{}).
		Where("id = ?", requestID).
		Update("status", string(status))

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update bulk order request status")
	}

	if result.RowsAffected == 0 {
		return repository.ErrBulkOrderNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toBulkOrderDomain converts a GORM BulkOrderRequestModel to a domain entity.
func toBulkOrderDomain(data *model.BulkOrderRequestModel) *entity.BulkOrderRequest {
	if data == nil {
		return nil
	}

	return &entity.BulkOrderRequest{
		ID:               data.ID,
		UserID:           data.UserID,
		CompanyName:      data.CompanyName,
		ContactPhone:     data.ContactPhone,
		Details:          data.Details,
		QuantityEstimate: data.QuantityEstimate,
		Status:           entity.BulkOrderStatus(data.Status),
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}
}

// fromBulkOrderDomain converts a domain BulkOrderRequest to a GORM model.
func fromBulkOrderDomain(data *entity.BulkOrderRequest) *model.BulkOrderRequestModel {
	if data == nil {
		return nil
	}

	return &model.BulkOrderRequestModel{
		ID:               data.ID,
		UserID:           data.UserID,
		CompanyName:      data.CompanyName,
		ContactPhone:     data.ContactPhone,
		Details:          data.Details,
		QuantityEstimate: data.QuantityEstimate,
		Status:           string(data.Status),
	}
}
