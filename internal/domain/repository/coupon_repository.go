package repository

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for coupon persistence.
var (
	// ErrCouponNotFound is returned when no coupon matches the code or ID.
	ErrCouponNotFound = errors.New("coupon not found")
	// ErrDuplicateCouponCode is returned when the code unique constraint is violated.
	ErrDuplicateCouponCode = errors.New("coupon code already exists")
)

// CouponRepository defines the interface for coupon database operations.
type CouponRepository interface {
	// Create persists a new coupon.
	Create(ctx context.Context, coupon *entity.Coupon) error

	// FindByID retrieves a coupon by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Coupon, error)

	// FindByCode retrieves a coupon by its normalized code.
	FindByCode(ctx context.Context, code string) (*entity.Coupon, error)

	// List retrieves coupons matching the list parameters, newest first,
	// along with the total match count for pagination.
	List(ctx context.Context, params ListParams) ([]*entity.Coupon, int64, error)

	// Update persists changes to an existing coupon.
	Update(ctx context.Context, coupon *entity.Coupon) error

	// Delete removes a coupon.
	Delete(ctx context.Context, id uuid.UUID) error

	// IncrementUsedCount atomically bumps the redemption counter.
	// Called inside the payment-confirmation transaction of the order
	// that redeemed the coupon.
	IncrementUsedCount(ctx context.Context, id uuid.UUID) error
}
