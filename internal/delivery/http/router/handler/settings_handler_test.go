package handler

import (
	"net/http"
	"testing"

	mockUsecase "storefront/internal/mocks/usecase"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newSettingsHandlerEcho(t *testing.T) (*mockUsecase.MockSettingsUsecase, *echo.Echo) {
	t.Helper()

	uc := mockUsecase.NewMockSettingsUsecase(t)
	h := NewSettingsHandler(uc)

	e := newTestEcho()
	e.GET("/admin/settings/payment", h.GetPaymentSettings)
	e.PUT("/admin/settings/sms", h.UpdateSMSSettings)
	e.GET("/admin/settings/sms/balance", h.GetSMSBalance)

	return uc, e
}

func TestSettingsHandler_GetPaymentSettings_Masked(t *testing.T) {
	uc, e := newSettingsHandlerEcho(t)

	uc.EXPECT().
		GetPaymentSettings(mock.Anything).
		Return(&usecase.PaymentSettingsOutput{
			KeyID:     "rzp_key_id",
			KeySecret: "************9876",
			Currency:  "INR",
			IsActive:  true,
		}, nil)

	rec := doJSON(e, http.MethodGet, "/admin/settings/payment", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "************9876")
	assert.NotContains(t, rec.Body.String(), "sk_live")
}

func TestSettingsHandler_UpdateSMSSettings_BadURL(t *testing.T) {
	_, e := newSettingsHandlerEcho(t)

	rec := doJSON(e, http.MethodPut, "/admin/settings/sms",
		`{"providerUrl":"not a url","apiKey":"key-1234"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.Equal(t, "INVALID_INPUT", env.Error.Code)
}

func TestSettingsHandler_GetSMSBalance(t *testing.T) {
	uc, e := newSettingsHandlerEcho(t)

	uc.EXPECT().
		SMSBalance(mock.Anything).
		Return(int64(420), nil)

	rec := doJSON(e, http.MethodGet, "/admin/settings/sms/balance", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"balance":420`)
}
