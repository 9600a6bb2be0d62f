package impl

import (
	"context"
	"log/slog"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// couponService implements the CouponUsecase interface.
type couponService struct {
	couponRepo repository.CouponRepository
	logger     *slog.Logger
	now        func() time.Time
}

// CouponServiceParams holds dependencies for couponService, injected by Fx.
type CouponServiceParams struct {
	fx.In

	CouponRepo repository.CouponRepository
	Logger     *slog.Logger
}

// NewCouponService is the constructor for couponService.
func NewCouponService(params CouponServiceParams) usecase.CouponUsecase {
	return &couponService{
		couponRepo: params.CouponRepo,
		logger:     params.Logger,
		now:        time.Now,
	}
}

// Evaluate performs a dry-run coupon check against an order amount.
// The rejection message reflects the first failing check.
func (srv *couponService) Evaluate(ctx context.Context, input *usecase.EvaluateCouponInput) (*usecase.EvaluateCouponOutput, error) {
	if input.OrderAmountMinor <= 0 {
		return nil, domainerrors.ErrInvalidInput.WithMessage("Order amount must be positive")
	}

	coupon, discount, err := srv.evaluateCode(ctx, input.Code, input.OrderAmountMinor)
	if err != nil {
		return nil, err
	}

	return &usecase.EvaluateCouponOutput{
		Code:          coupon.Code,
		DiscountMinor: discount,
		FinalMinor:    input.OrderAmountMinor - discount,
	}, nil
}

// evaluateCode resolves and evaluates a coupon, mapping every rejection
// to a typed CouponRejected error.
func (srv *couponService) evaluateCode(ctx context.Context, code string, orderAmountMinor int64) (*entity.Coupon, int64, error) {
	return resolveAndEvaluateCoupon(ctx, srv.couponRepo, code, orderAmountMinor, srv.now())
}

// resolveAndEvaluateCoupon loads a coupon by code and evaluates it
// against an order amount. Shared between the dry-run endpoint and the
// checkout pipeline, which passes its transaction-scoped repository.
func resolveAndEvaluateCoupon(ctx context.Context, couponRepo repository.CouponRepository, code string, orderAmountMinor int64, now time.Time) (*entity.Coupon, int64, error) {
	coupon, err := couponRepo.FindByCode(ctx, code)
	if err != nil {
		if errors.Is(err, repository.ErrCouponNotFound) {
			return nil, 0, domainerrors.ErrCouponRejected.WithMessage("Coupon code not found")
		}

		return nil, 0, errors.Wrap(err, "failed to load coupon")
	}

	discount, err := coupon.Evaluate(orderAmountMinor, now)
	if err != nil {
		return nil, 0, domainerrors.ErrCouponRejected.WithMessage(rejectionMessage(err))
	}

	return coupon, discount, nil
}

// rejectionMessage fixes the user-facing text per failing check.
func rejectionMessage(err error) string {
	switch {
	case errors.Is(err, entity.ErrCouponInactive):
		return "This coupon is no longer active"
	case errors.Is(err, entity.ErrCouponNotStarted):
		return "This coupon is not valid yet"
	case errors.Is(err, entity.ErrCouponExpired):
		return "This coupon has expired"
	case errors.Is(err, entity.ErrCouponMinOrder):
		return "Order amount is below the coupon minimum"
	case errors.Is(err, entity.ErrCouponExhausted):
		return "This coupon has reached its usage limit"
	default:
		return "Coupon cannot be applied"
	}
}

// ListCoupons returns a page of coupons for the back office.
func (srv *couponService) ListCoupons(ctx context.Context, query usecase.ListQuery) (*usecase.ListCouponsOutput, error) {
	params := query.ToParams()

	coupons, total, err := srv.couponRepo.List(ctx, params)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list coupons")
	}

	return &usecase.ListCouponsOutput{
		Coupons:    coupons,
		Pagination: usecase.Pagination{Page: params.Page, Limit: params.Limit, Total: total},
	}, nil
}

// CreateCoupon adds a coupon after validating its value rules.
func (srv *couponService) CreateCoupon(ctx context.Context, input *usecase.CreateCouponInput) (*entity.Coupon, error) {
	if err := validateCouponValue(input.Type, input.Value); err != nil {
		return nil, err
	}
	if !input.ValidTo.IsZero() && !input.ValidFrom.IsZero() && input.ValidTo.Before(input.ValidFrom) {
		return nil, domainerrors.ErrInvalidInput.WithMessage("Coupon validity window ends before it starts")
	}
	if input.MaxDiscountMinor < 0 || input.MinOrderMinor < 0 || input.UsageLimit < 0 {
		return nil, domainerrors.ErrInvalidInput.WithMessage("Coupon limits cannot be negative")
	}

	coupon := &entity.Coupon{
		Code:             entity.NormalizeCouponCode(input.Code),
		Type:             input.Type,
		Value:            input.Value,
		MaxDiscountMinor: input.MaxDiscountMinor,
		MinOrderMinor:    input.MinOrderMinor,
		ValidFrom:        input.ValidFrom,
		ValidTo:          input.ValidTo,
		UsageLimit:       input.UsageLimit,
		IsActive:         input.IsActive,
	}

	if err := srv.couponRepo.Create(ctx, coupon); err != nil {
		if errors.Is(err, repository.ErrDuplicateCouponCode) {
			return nil, domainerrors.ErrCouponCodeExists
		}

		return nil, errors.Wrap(err, "failed to create coupon")
	}

	srv.logger.Info("Coupon created", slog.Any("couponID", coupon.ID), slog.String("code", coupon.Code))

	return coupon, nil
}

// UpdateCoupon applies the supplied fields and leaves the rest alone.
func (srv *couponService) UpdateCoupon(ctx context.Context, couponID uuid.UUID, input *usecase.UpdateCouponInput) (*entity.Coupon, error) {
	coupon, err := srv.couponRepo.FindByID(ctx, couponID)
	if err != nil {
		if errors.Is(err, repository.ErrCouponNotFound) {
			return nil, domainerrors.ErrNotFound.WithMessage("Coupon not found")
		}

		return nil, errors.Wrap(err, "failed to load coupon")
	}

	if input.Value != nil {
		if err := validateCouponValue(coupon.Type, *input.Value); err != nil {
			return nil, err
		}
		coupon.Value = *input.Value
	}
	if input.MaxDiscountMinor != nil {
		coupon.MaxDiscountMinor = *input.MaxDiscountMinor
	}
	if input.MinOrderMinor != nil {
		coupon.MinOrderMinor = *input.MinOrderMinor
	}
	if input.ValidFrom != nil {
		coupon.ValidFrom = *input.ValidFrom
	}
	if input.ValidTo != nil {
		coupon.ValidTo = *input.ValidTo
	}
	if input.UsageLimit != nil {
		coupon.UsageLimit = *input.UsageLimit
	}
	if input.IsActive != nil {
		coupon.IsActive = *input.IsActive
	}

	if !coupon.ValidTo.IsZero() && !coupon.ValidFrom.IsZero() && coupon.ValidTo.Before(coupon.ValidFrom) {
		return nil, domainerrors.ErrInvalidInput.WithMessage("Coupon validity window ends before it starts")
	}

	if err := srv.couponRepo.Update(ctx, coupon); err != nil {
		return nil, errors.Wrap(err, "failed to update coupon")
	}

	return coupon, nil
}

// DeleteCoupon removes a coupon.
func (srv *couponService) DeleteCoupon(ctx context.Context, couponID uuid.UUID) error {
	if err := srv.couponRepo.Delete(ctx, couponID); err != nil {
		if errors.Is(err, repository.ErrCouponNotFound) {
			return domainerrors.ErrNotFound.WithMessage("Coupon not found")
		}

		return errors.Wrap(err, "failed to delete coupon")
	}

	return nil
}

func validateCouponValue(couponType entity.CouponType, value int64) error {
	if !couponType.IsValid() {
		return domainerrors.ErrInvalidInput.WithMessage("Unknown coupon type")
	}
	if value <= 0 {
		return domainerrors.ErrInvalidInput.WithMessage("Coupon value must be positive")
	}
	if couponType == entity.CouponTypePercentage && value > 100 {
		return domainerrors.ErrInvalidInput.WithMessage("Percentage value cannot exceed 100")
	}

	return nil
}
