package impl

import (
	"context"
	"testing"
	"time"

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

// couponServiceFixtures holds all test dependencies for coupon service tests.
type couponServiceFixtures struct {
	service    usecase.CouponUsecase
	couponRepo *mockRepo.MockCouponRepository
}

func createTestCouponService(t *testing.T, now time.Time) couponServiceFixtures {
	couponRepo := mockRepo.NewMockCouponRepository(t)
	service := NewCouponService(CouponServiceParams{
		CouponRepo: couponRepo,
		Logger:     newDiscardLogger(),
	})
	service.(*couponService).now = func() time.Time { return now }

	return couponServiceFixtures{
		service:    service,
		couponRepo: couponRepo,
	}
}

var couponTestNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func validPercentageCoupon() *entity.Coupon {
	return &entity.Coupon{
		ID:               uuid.New(),
		Code:             "SAVE10",
		Type:             entity.CouponTypePercentage,
		Value:            10,
		MaxDiscountMinor: 4000,
		MinOrderMinor:    20000,
		ValidFrom:        couponTestNow.Add(-24 * time.Hour),
		ValidTo:          couponTestNow.Add(24 * time.Hour),
		UsageLimit:       100,
		UsedCount:        3,
		IsActive:         true,
	}
}

func TestCouponService_Evaluate_PercentageCapped(t *testing.T) {
	fx := createTestCouponService(t, couponTestNow)

	ctx := context.Background()
	coupon := validPercentageCoupon()

	fx.couponRepo.EXPECT().FindByCode(ctx, "SAVE10").Return(coupon, nil)

	// 10% of 50000 is 5000, capped at 4000.
	output, err := fx.service.Evaluate(ctx, &usecase.EvaluateCouponInput{
		Code:             "SAVE10",
		OrderAmountMinor: 50000,
	})

	require.NoError(t, err)
	assert.Equal(t, "SAVE10", output.Code)
	assert.Equal(t, int64(4000), output.DiscountMinor)
	assert.Equal(t, int64(46000), output.FinalMinor)
}

func TestCouponService_Evaluate_PercentageUncapped(t *testing.T) {
	fx := createTestCouponService(t, couponTestNow)

	ctx := context.Background()
	coupon := validPercentageCoupon()
	coupon.MaxDiscountMinor = 0

	fx.couponRepo.EXPECT().FindByCode(ctx, "SAVE10").Return(coupon, nil)

	output, err := fx.service.Evaluate(ctx, &usecase.EvaluateCouponInput{
		Code:             "SAVE10",
		OrderAmountMinor: 50000,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(5000), output.DiscountMinor)
}

func TestCouponService_Evaluate_FixedDiscount(t *testing.T) {
	fx := createTestCouponService(t, couponTestNow)

	ctx := context.Background()
	coupon := validPercentageCoupon()
	coupon.Code = "FLAT150"
	coupon.Type = entity.CouponTypeFixed
	coupon.Value = 15000

	fx.couponRepo.EXPECT().FindByCode(ctx, "FLAT150").Return(coupon, nil)

	output, err := fx.service.Evaluate(ctx, &usecase.EvaluateCouponInput{
		Code:             "FLAT150",
		OrderAmountMinor: 30000,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(15000), output.DiscountMinor)
	assert.Equal(t, int64(15000), output.FinalMinor)
}

func TestCouponService_Evaluate_UnknownCode(t *testing.T) {
	fx := createTestCouponService(t, couponTestNow)

	ctx := context.Background()

	fx.couponRepo.EXPECT().FindByCode(ctx, "NOPE").Return(nil, repository.ErrCouponNotFound)

	_, err := fx.service.Evaluate(ctx, &usecase.EvaluateCouponInput{
		Code:             "NOPE",
		OrderAmountMinor: 30000,
	})

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrCouponRejected))
	assert.Contains(t, err.Error(), "not found")
}

func TestCouponService_Evaluate_NonPositiveAmount(t *testing.T) {
	fx := createTestCouponService(t, couponTestNow)

	_, err := fx.service.Evaluate(context.Background(), &usecase.EvaluateCouponInput{
		Code:             "SAVE10",
		OrderAmountMinor: 0,
	})

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidInput))
}

func TestCouponService_Evaluate_RejectionOrder(t *testing.T) {
	// The first failing check wins, so a coupon that is both inactive
	// and expired reports inactive.
	tests := []struct {
		name     string
		mutate   func(c *entity.Coupon)
		contains string
	}{
		{
			name: "inactive beats expired",
			mutate: func(c *entity.Coupon) {
				c.IsActive = false
				c.ValidTo = couponTestNow.Add(-time.Hour)
			},
			contains: "no longer active",
		},
		{
			name: "not started beats minimum",
			mutate: func(c *entity.Coupon) {
				c.ValidFrom = couponTestNow.Add(time.Hour)
				c.MinOrderMinor = 1000000
			},
			contains: "not valid yet",
		},
		{
			name: "expired",
			mutate: func(c *entity.Coupon) {
				c.ValidTo = couponTestNow.Add(-time.Hour)
			},
			contains: "expired",
		},
		{
			name: "below minimum order",
			mutate: func(c *entity.Coupon) {
				c.MinOrderMinor = 100000
			},
			contains: "below the coupon minimum",
		},
		{
			name: "usage limit reached",
			mutate: func(c *entity.Coupon) {
				c.UsageLimit = 3
				c.UsedCount = 3
			},
			contains: "usage limit",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestCouponService(t, couponTestNow)

			ctx := context.Background()
			coupon := validPercentageCoupon()
			tt.mutate(coupon)

			fx.couponRepo.EXPECT().FindByCode(ctx, "SAVE10").Return(coupon, nil)

			_, err := fx.service.Evaluate(ctx, &usecase.EvaluateCouponInput{
				Code:             "SAVE10",
				OrderAmountMinor: 50000,
			})

			assert.Error(t, err)
			assert.True(t, errors.Is(err, domainerrors.ErrCouponRejected))
			assert.Contains(t, err.Error(), tt.contains)
		})
	}
}

func TestCouponService_CreateCoupon_NormalizesCode(t *testing.T) {
	fx := createTestCouponService(t, couponTestNow)

	ctx := context.Background()
	input := &usecase.CreateCouponInput{
		Code:      "  save10 ",
		Type:      entity.CouponTypePercentage,
		Value:     10,
		ValidFrom: couponTestNow,
		ValidTo:   couponTestNow.Add(24 * time.Hour),
		IsActive:  true,
	}

	fx.couponRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Coupon")).
		Run(func(ctx context.Context, coupon *entity.Coupon) {
			assert.Equal(t, "SAVE10", coupon.Code)
		}).
		Return(nil)

	coupon, err := fx.service.CreateCoupon(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "SAVE10", coupon.Code)
}

func TestCouponService_CreateCoupon_PercentageOverHundred(t *testing.T) {
	fx := createTestCouponService(t, couponTestNow)

	_, err := fx.service.CreateCoupon(context.Background(), &usecase.CreateCouponInput{
		Code:  "BROKEN",
		Type:  entity.CouponTypePercentage,
		Value: 150,
	})

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidInput))
}

func TestCouponService_CreateCoupon_WindowEndsBeforeStart(t *testing.T) {
	fx := createTestCouponService(t, couponTestNow)

	_, err := fx.service.CreateCoupon(context.Background(), &usecase.CreateCouponInput{
		Code:      "BACKWARDS",
		Type:      entity.CouponTypeFixed,
		Value:     1000,
		ValidFrom: couponTestNow,
		ValidTo:   couponTestNow.Add(-time.Hour),
	})

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidInput))
}

func TestCouponService_CreateCoupon_DuplicateCode(t *testing.T) {
	fx := createTestCouponService(t, couponTestNow)

	ctx := context.Background()

	fx.couponRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Coupon")).
		Return(repository.ErrDuplicateCouponCode)

	_, err := fx.service.CreateCoupon(ctx, &usecase.CreateCouponInput{
		Code:      "SAVE10",
		Type:      entity.CouponTypePercentage,
		Value:     10,
		ValidFrom: couponTestNow,
		ValidTo:   couponTestNow.Add(24 * time.Hour),
	})

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrCouponCodeExists))
}

func TestCouponService_UpdateCoupon_ValueValidatedAgainstType(t *testing.T) {
	fx := createTestCouponService(t, couponTestNow)

	ctx := context.Background()
	coupon := validPercentageCoupon()
	over := int64(120)

	fx.couponRepo.EXPECT().FindByID(ctx, coupon.ID).Return(coupon, nil)

	_, err := fx.service.UpdateCoupon(ctx, coupon.ID, &usecase.UpdateCouponInput{Value: &over})

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidInput))
}

func TestCouponService_DeleteCoupon_NotFound(t *testing.T) {
	fx := createTestCouponService(t, couponTestNow)

	ctx := context.Background()
	couponID := uuid.New()

	fx.couponRepo.EXPECT().Delete(ctx, couponID).Return(repository.ErrCouponNotFound)

	err := fx.service.DeleteCoupon(ctx, couponID)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}
