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

// couponRepository implements the repository.CouponRepository interface.
type couponRepository struct {
	db *gorm.DB
}

// NewCouponRepository is the constructor for couponRepository.
func NewCouponRepository(db *gorm.DB) repository.CouponRepository {
	return &couponRepository{db: db}
}

// Create persists a new coupon.
func (repo *couponRepository) Create(ctx context.Context, coupon *entity.Coupon) error {
	couponM := fromCouponDomain(coupon)

	if err := repo.db.WithContext(ctx).Create(couponM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateCouponCode
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrInvalidInput.WrapMessage("missing required coupon information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create coupon")
	}

	coupon.ID = couponM.ID
	coupon.CreatedAt = couponM.CreatedAt
	coupon.UpdatedAt = couponM.UpdatedAt

	return nil
}

// FindByID retrieves a coupon by its unique ID.
func (repo *couponRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Coupon, error) {
	var couponM model.CouponModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&couponM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCouponNotFound
		}

		return nil, errors.Wrap(err, "failed to find coupon by ID")
	}

	return toCouponDomain(&couponM), nil
}

// FindByCode retrieves a coupon by its normalized code.
func (repo *couponRepository) FindByCode(ctx context.Context, code string) (*entity.Coupon, error) {
	var couponM model.CouponModel

	if err := repo.db.WithContext(ctx).
		Where("code = ?", entity.NormalizeCouponCode(code)).
		First(&couponM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCouponNotFound
		}

		return nil, errors.Wrap(err, "failed to find coupon by code")
	}

	return toCouponDomain(&couponM), nil
}

// List retrieves coupons matching the list parameters, newest first.
func (repo *couponRepository) List(ctx context.Context, params repository.ListParams) ([]*entity.Coupon, int64, error) {
	params = params.Normalize()

	query := repo.db.WithContext(ctx).Model(&model.CouponModel{})
	if params.Search != "" {
		query = query.Where("code ILIKE ?", "%"+params.Search+"%")
	}
	switch params.Status {
	case "active":
		query = query.Where("is_active")
	case "inactive":
		query = query.Where("NOT is_active")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count coupons")
	}

	var couponModels []*model.CouponModel
	if err := query.
		Order("created_at DESC").
		Limit(params.Limit).
		Offset(params.Offset()).
		Find(&couponModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list coupons")
	}

	coupons := make([]*entity.Coupon, 0, len(couponModels))
	for _, couponM := range couponModels {
		coupons = append(coupons, toCouponDomain(couponM))
	}

	return coupons, total, nil
}

// Update persists changes to an existing coupon.
func (repo *couponRepository) Update(ctx context.Context, coupon *entity.Coupon) error {
	couponM := fromCouponDomain(coupon)

	if err := repo.db.WithContext(ctx).Save(couponM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateCouponCode
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update coupon")
	}

	coupon.UpdatedAt = couponM.UpdatedAt

	return nil
}

// Delete removes a coupon.
func (repo *couponRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.CouponModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete coupon")
	}

	if result.RowsAffected == 0 {
		return repository.ErrCouponNotFound
	}

	return nil
}

// IncrementUsedCount atomically bumps the redemption counter.
func (repo *couponRepository) IncrementUsedCount(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CouponModel{}).
		Where("id = ?", id).
		Update("used_count", gorm.Expr("used_count + 1"))

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to increment coupon used count")
	}

	if result.RowsAffected == 0 {
		return repository.ErrCouponNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toCouponDomain converts a GORM CouponModel to a domain Coupon entity.
func toCouponDomain(data *model.CouponModel) *entity.Coupon {
	if data == nil {
		return nil
	}

	return &entity.Coupon{
		ID:               data.ID,
		Code:             data.Code,
		Type:             entity.CouponType(data.Type),
		Value:            data.Value,
		MaxDiscountMinor: data.MaxDiscountMinor,
		MinOrderMinor:    data.MinOrderMinor,
		ValidFrom:        data.ValidFrom,
		ValidTo:          data.ValidTo,
		UsageLimit:       data.UsageLimit,
		UsedCount:        data.UsedCount,
		IsActive:         data.IsActive,
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}
}

// fromCouponDomain converts a domain Coupon entity to a GORM CouponModel.
func fromCouponDomain(data *entity.Coupon) *model.CouponModel {
	if data == nil {
		return nil
	}

	return &model.CouponModel{
		ID:               data.ID,
		Code:             entity.NormalizeCouponCode(data.Code),
		Type:             string(data.Type),
		Value:            data.Value,
		MaxDiscountMinor: data.MaxDiscountMinor,
		MinOrderMinor:    data.MinOrderMinor,
		ValidFrom:        data.ValidFrom,
		ValidTo:          data.ValidTo,
		UsageLimit:       data.UsageLimit,
		UsedCount:        data.UsedCount,
		IsActive:         data.IsActive,
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}
}
