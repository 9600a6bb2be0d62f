package handler

import (
	"net/http"

	"storefront/internal/delivery/http/response"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SettingsHandler holds dependencies for the admin settings handlers.
// Reads always return masked secrets.
type SettingsHandler struct {
	uc usecase.SettingsUsecase
}

// NewSettingsHandler is the constructor for SettingsHandler, injected by Fx.
func NewSettingsHandler(uc usecase.SettingsUsecase) *SettingsHandler {
	return &SettingsHandler{uc: uc}
}

// GetPaymentSettings returns the payment gateway configuration.
func (h *SettingsHandler) GetPaymentSettings(c echo.Context) error {
	output, err := h.uc.GetPaymentSettings(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Payment settings retrieved successfully")
}

type paymentSettingsRequest struct {
	KeyID     string `json:"keyId" validate:"required"`
	KeySecret string `json:"keySecret" validate:"required"`
	Currency  string `json:"currency" validate:"required,len=3"`
	IsActive  bool   `json:"isActive"`
}

// UpdatePaymentSettings upserts the singleton payment configuration.
func (h *SettingsHandler) UpdatePaymentSettings(c echo.Context) error {
	var req paymentSettingsRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid payment settings input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.UpdatePaymentSettings(c.Request().Context(), &usecase.PaymentSettingsInput{
		KeyID:     req.KeyID,
		KeySecret: req.KeySecret,
		Currency:  req.Currency,
		IsActive:  req.IsActive,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Payment settings updated")
}

// GetSMSSettings returns the SMS provider configuration.
func (h *SettingsHandler) GetSMSSettings(c echo.Context) error {
	output, err := h.uc.GetSMSSettings(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "SMS settings retrieved successfully")
}

type smsSettingsRequest struct {
	ProviderURL string `json:"providerUrl" validate:"required,url"`
	APIKey      string `json:"apiKey" validate:"required"`
	SenderID    string `json:"senderId"`
	IsActive    bool   `json:"isActive"`
}

// UpdateSMSSettings upserts the singleton SMS configuration.
func (h *SettingsHandler) UpdateSMSSettings(c echo.Context) error {
	var req smsSettingsRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid SMS settings input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.UpdateSMSSettings(c.Request().Context(), &usecase.SMSSettingsInput{
		ProviderURL: req.ProviderURL,
		APIKey:      req.APIKey,
		SenderID:    req.SenderID,
		IsActive:    req.IsActive,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "SMS settings updated")
}

// GetSMSBalance proxies the SMS provider's remaining credit lookup.
func (h *SettingsHandler) GetSMSBalance(c echo.Context) error {
	balance, err := h.uc.SMSBalance(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]int64{"balance": balance}, "SMS balance retrieved successfully")
}
