package handler

import (
	"net/http"

	"storefront/internal/delivery/http/response"
	"storefront/internal/domain/entity"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// BulkOrderHandler holds dependencies for wholesale enquiry handlers.
type BulkOrderHandler struct {
	uc usecase.BulkOrderUsecase
}

// NewBulkOrderHandler is the constructor for BulkOrderHandler, injected by Fx.
func NewBulkOrderHandler(uc usecase.BulkOrderUsecase) *BulkOrderHandler {
	return &BulkOrderHandler{uc: uc}
}

type createBulkOrderRequest struct {
	CompanyName      string `json:"companyName" validate:"required,max=200"`
	ContactPhone     string `json:"contactPhone" validate:"required,phone10"`
	Details          string `json:"details" validate:"required"`
	QuantityEstimate int    `json:"quantityEstimate" validate:"required,gt=0"`
}

// CreateRequest files a wholesale enquiry for the caller.
func (h *BulkOrderHandler) CreateRequest(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Invalid user ID in token")
	}

	var req createBulkOrderRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid bulk order input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	request, err := h.uc.CreateRequest(c.Request().Context(), userID, &usecase.CreateBulkOrderInput{
		CompanyName:      req.CompanyName,
		ContactPhone:     req.ContactPhone,
		Details:          req.Details,
		QuantityEstimate: req.QuantityEstimate,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, request, "Bulk order request submitted")
}

// ListRequests returns the caller's enquiries.
func (h *BulkOrderHandler) ListRequests(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Invalid user ID in token")
	}

	requests, err := h.uc.ListRequests(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, requests, "Bulk order requests retrieved successfully")
}

// AdminListRequests returns the back-office enquiry page across all users.
func (h *BulkOrderHandler) AdminListRequests(c echo.Context) error {
	output, err := h.uc.AdminListRequests(c.Request().Context(), bindListQuery(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, echo.Map{
		"requests":   output.Requests,
		"pagination": newPageView(output.Pagination),
	}, "Bulk order requests retrieved successfully")
}

type updateBulkOrderStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=received reviewing quoted closed"`
}

// AdminUpdateRequestStatus moves an enquiry through its lifecycle.
func (h *BulkOrderHandler) AdminUpdateRequestStatus(c echo.Context) error {
	requestID, err := pathID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	var req updateBulkOrderStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.UpdateRequestStatus(c.Request().Context(), requestID, entity.BulkOrderStatus(req.Status)); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Bulk order status updated")
}
