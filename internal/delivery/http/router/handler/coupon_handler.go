package handler

import (
	"net/http"
	"time"

	"storefront/internal/delivery/http/response"
	"storefront/internal/domain/entity"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CouponHandler holds dependencies for coupon handlers.
type CouponHandler struct {
	uc usecase.CouponUsecase
}

// NewCouponHandler is the constructor for CouponHandler, injected by Fx.
func NewCouponHandler(uc usecase.CouponUsecase) *CouponHandler {
	return &CouponHandler{uc: uc}
}

type evaluateCouponRequest struct {
	Code        string `json:"code" validate:"required"`
	OrderAmount int64  `json:"orderAmount" validate:"required,gt=0"`
}

// Evaluate dry-runs a coupon against an order amount. Usage counters
// are never touched here.
func (h *CouponHandler) Evaluate(c echo.Context) error {
	var req evaluateCouponRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid coupon input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Evaluate(c.Request().Context(), &usecase.EvaluateCouponInput{
		Code:             req.Code,
		OrderAmountMinor: req.OrderAmount,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Coupon is applicable")
}

// AdminListCoupons returns the back-office coupon page.
func (h *CouponHandler) AdminListCoupons(c echo.Context) error {
	output, err := h.uc.ListCoupons(c.Request().Context(), bindListQuery(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, echo.Map{
		"coupons":    output.Coupons,
		"pagination": newPageView(output.Pagination),
	}, "Coupons retrieved successfully")
}

type createCouponRequest struct {
	Code             string    `json:"code" validate:"required,max=40"`
	Type             string    `json:"type" validate:"required,oneof=percentage fixed"`
	Value            int64     `json:"value" validate:"required,gt=0"`
	MaxDiscountMinor int64     `json:"maxDiscountMinor" validate:"gte=0"`
	MinOrderMinor    int64     `json:"minOrderMinor" validate:"gte=0"`
	ValidFrom        time.Time `json:"validFrom" validate:"required"`
	ValidTo          time.Time `json:"validTo" validate:"required"`
	UsageLimit       int       `json:"usageLimit" validate:"gte=0"`
	IsActive         bool      `json:"isActive"`
}

// CreateCoupon adds a coupon.
func (h *CouponHandler) CreateCoupon(c echo.Context) error {
	var req createCouponRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid coupon input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	coupon, err := h.uc.CreateCoupon(c.Request().Context(), &usecase.CreateCouponInput{
		Code:             req.Code,
		Type:             entity.CouponType(req.Type),
		Value:            req.Value,
		MaxDiscountMinor: req.MaxDiscountMinor,
		MinOrderMinor:    req.MinOrderMinor,
		ValidFrom:        req.ValidFrom,
		ValidTo:          req.ValidTo,
		UsageLimit:       req.UsageLimit,
		IsActive:         req.IsActive,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, coupon, "Coupon created successfully")
}

type updateCouponRequest struct {
	Value            *int64     `json:"value" validate:"omitempty,gt=0"`
	MaxDiscountMinor *int64     `json:"maxDiscountMinor" validate:"omitempty,gte=0"`
	MinOrderMinor    *int64     `json:"minOrderMinor" validate:"omitempty,gte=0"`
	ValidFrom        *time.Time `json:"validFrom"`
	ValidTo          *time.Time `json:"validTo"`
	UsageLimit       *int       `json:"usageLimit" validate:"omitempty,gte=0"`
	IsActive         *bool      `json:"isActive"`
}

// UpdateCoupon applies a partial update. Code and type are fixed at
// creation.
func (h *CouponHandler) UpdateCoupon(c echo.Context) error {
	couponID, err := pathID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	var req updateCouponRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid coupon input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	coupon, err := h.uc.UpdateCoupon(c.Request().Context(), couponID, &usecase.UpdateCouponInput{
		Value:            req.Value,
		MaxDiscountMinor: req.MaxDiscountMinor,
		MinOrderMinor:    req.MinOrderMinor,
		ValidFrom:        req.ValidFrom,
		ValidTo:          req.ValidTo,
		UsageLimit:       req.UsageLimit,
		IsActive:         req.IsActive,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, coupon, "Coupon updated successfully")
}

// DeleteCoupon removes a coupon.
func (h *CouponHandler) DeleteCoupon(c echo.Context) error {
	couponID, err := pathID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.DeleteCoupon(c.Request().Context(), couponID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Coupon deleted successfully")
}
