package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"storefront/internal/errors"
)

// CouponType represents how a coupon's value is applied to an order.
type CouponType string

const (
	// CouponTypePercentage applies Value as a percentage of the order amount.
	CouponTypePercentage CouponType = "percentage"
	// CouponTypeFixed applies Value as a flat amount in minor currency units.
	CouponTypeFixed CouponType = "fixed"
)

// IsValid checks if the CouponType is a valid value.
func (t CouponType) IsValid() bool {
	switch t {
	case CouponTypePercentage, CouponTypeFixed:
		return true
	default:
		return false
	}
}

// Rejection reasons produced by Coupon.Evaluate, in checked order.
// The first failing check determines the rejection surfaced to the caller.
var (
	// ErrCouponInactive is returned when the coupon has been disabled.
	ErrCouponInactive = errors.New("coupon is not active")
	// ErrCouponNotStarted is returned when the coupon's validity window has not opened yet.
	ErrCouponNotStarted = errors.New("coupon is not valid yet")
	// ErrCouponExpired is returned when the coupon's validity window has closed.
	ErrCouponExpired = errors.New("coupon has expired")
	// ErrCouponMinOrder is returned when the order amount is below the coupon's minimum.
	ErrCouponMinOrder = errors.New("order amount is below the coupon minimum")
	// ErrCouponExhausted is returned when the coupon's usage limit has been reached.
	ErrCouponExhausted = errors.New("coupon usage limit reached")
)

// Coupon is a discount code applied at checkout.
// Evaluate is a pure predicate; UsedCount is only incremented inside
// the payment-confirmation transaction of the order that redeemed it.
type Coupon struct {
	ID               uuid.UUID  // The unique identifier for the coupon.
	Code             string     // Unique redemption code, stored upper-cased.
	Type             CouponType // Percentage or fixed discount.
	Value            int64      // Percent (0-100] for percentage type, minor units for fixed type.
	MaxDiscountMinor int64      // Cap on a percentage discount; zero means uncapped.
	MinOrderMinor    int64      // Minimum order amount required for eligibility; zero means none.
	ValidFrom        time.Time  // Start of the validity window, inclusive.
	ValidTo          time.Time  // End of the validity window, inclusive.
	UsageLimit       int        // Maximum total redemptions; zero means unlimited.
	UsedCount        int        // Redemptions so far.
	IsActive         bool       // Administrative kill switch.
	CreatedAt        time.Time  // Timestamp of when this coupon was created.
	UpdatedAt        time.Time  // Timestamp of the last modification.
}

// NormalizeCouponCode upper-cases and trims a raw coupon code for
// case-insensitive matching.
func NormalizeCouponCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// Evaluate checks eligibility against the order amount at the given
// instant and returns the discount in minor currency units. Checks run
// fail-fast in a fixed order: active, validity window open, validity
// window not closed, minimum order amount, usage limit.
func (c *Coupon) Evaluate(orderAmountMinor int64, now time.Time) (int64, error) {
	if !c.IsActive {
		return 0, ErrCouponInactive
	}
	if now.Before(c.ValidFrom) {
		return 0, ErrCouponNotStarted
	}
	if now.After(c.ValidTo) {
		return 0, ErrCouponExpired
	}
	if c.MinOrderMinor > 0 && orderAmountMinor < c.MinOrderMinor {
		return 0, ErrCouponMinOrder
	}
	if c.UsageLimit > 0 && c.UsedCount >= c.UsageLimit {
		return 0, ErrCouponExhausted
	}

	return c.discount(orderAmountMinor), nil
}

// discount computes the discount amount for an eligible coupon.
// A fixed discount applies in full; only MinOrderMinor gates it.
func (c *Coupon) discount(orderAmountMinor int64) int64 {
	switch c.Type {
	case CouponTypePercentage:
		d := orderAmountMinor * c.Value / 100
		if c.MaxDiscountMinor > 0 && d > c.MaxDiscountMinor {
			d = c.MaxDiscountMinor
		}

		return d
	case CouponTypeFixed:
		return c.Value
	default:
		return 0
	}
}
