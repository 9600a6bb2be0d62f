package usecase

import (
	"context"
	"time"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// EvaluateCouponInput carries a dry-run coupon check against an order amount.
type EvaluateCouponInput struct {
	Code             string
	OrderAmountMinor int64
}

// EvaluateCouponOutput returns the discount a valid coupon would yield.
type EvaluateCouponOutput struct {
	Code          string
	DiscountMinor int64
	FinalMinor    int64
}

// CreateCouponInput defines the data required to create a coupon.
type CreateCouponInput struct {
	Code             string
	Type             entity.CouponType
	Value            int64
	MaxDiscountMinor int64
	MinOrderMinor    int64
	ValidFrom        time.Time
	ValidTo          time.Time
	UsageLimit       int
	IsActive         bool
}

// UpdateCouponInput carries the editable coupon fields. Nil pointers
// leave the corresponding field unchanged. Code and Type are fixed at
// creation.
type UpdateCouponInput struct {
	Value            *int64
	MaxDiscountMinor *int64
	MinOrderMinor    *int64
	ValidFrom        *time.Time
	ValidTo          *time.Time
	UsageLimit       *int
	IsActive         *bool
}

// ListCouponsOutput returns a page of coupons.
type ListCouponsOutput struct {
	Coupons    []*entity.Coupon
	Pagination Pagination
}

// CouponUsecase defines the interface for coupon operations. Evaluate
// never mutates usage counters; redemption is recorded by the order
// pipeline at payment confirmation.
type CouponUsecase interface {
	Evaluate(ctx context.Context, input *EvaluateCouponInput) (*EvaluateCouponOutput, error)

	// Admin operations.
	ListCoupons(ctx context.Context, query ListQuery) (*ListCouponsOutput, error)
	CreateCoupon(ctx context.Context, input *CreateCouponInput) (*entity.Coupon, error)
	UpdateCoupon(ctx context.Context, couponID uuid.UUID, input *UpdateCouponInput) (*entity.Coupon, error)
	DeleteCoupon(ctx context.Context, couponID uuid.UUID) error
}
