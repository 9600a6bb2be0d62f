package handler

import (
	"net/http"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	mockUsecase "storefront/internal/mocks/usecase"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newOrderHandlerEcho(t *testing.T, userID uuid.UUID) (*mockUsecase.MockOrderUsecase, *echo.Echo) {
	t.Helper()

	uc := mockUsecase.NewMockOrderUsecase(t)
	h := NewOrderHandler(uc)

	e := newTestEcho()
	authed := e.Group("", asUser(userID, entity.RoleCustomer.String()))
	authed.POST("/orders", h.Checkout)
	authed.GET("/orders", h.ListOrders)
	authed.POST("/orders/:id/verify-payment", h.VerifyPayment)

	return uc, e
}

func TestOrderHandler_Checkout_Success(t *testing.T) {
	userID := uuid.New()
	addressID := uuid.New()
	uc, e := newOrderHandlerEcho(t, userID)

	uc.EXPECT().
		Checkout(mock.Anything, userID, &usecase.CheckoutInput{
			AddressID:  addressID,
			CouponCode: "SAVE10",
		}).
		Return(&usecase.CheckoutOutput{
			Order:          &entity.Order{ID: uuid.New(), UserID: userID},
			GatewayOrderID: "order_gw_123",
			AmountMinor:    46000,
			Currency:       "INR",
		}, nil)

	rec := doJSON(e, http.MethodPost, "/orders",
		`{"addressId":"`+addressID.String()+`","couponCode":"SAVE10"}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.True(t, env.Success)
	assert.Contains(t, string(env.Data), "order_gw_123")
}

func TestOrderHandler_Checkout_EmptyCart(t *testing.T) {
	userID := uuid.New()
	uc, e := newOrderHandlerEcho(t, userID)

	uc.EXPECT().
		Checkout(mock.Anything, userID, mock.AnythingOfType("*usecase.CheckoutInput")).
		Return(nil, domainerrors.ErrEmptyCart)

	rec := doJSON(e, http.MethodPost, "/orders",
		`{"addressId":"`+uuid.NewString()+`"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.Equal(t, "EMPTY_CART", env.Error.Code)
}

func TestOrderHandler_VerifyPayment_SignatureMismatch(t *testing.T) {
	userID := uuid.New()
	orderID := uuid.New()
	uc, e := newOrderHandlerEcho(t, userID)

	uc.EXPECT().
		VerifyPayment(mock.Anything, userID, orderID, &usecase.VerifyPaymentInput{
			GatewayPaymentID: "pay_123",
			Signature:        "bad-signature",
		}).
		Return(nil, domainerrors.ErrPaymentVerificationFailed)

	rec := doJSON(e, http.MethodPost, "/orders/"+orderID.String()+"/verify-payment",
		`{"gatewayPaymentId":"pay_123","signature":"bad-signature"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.Equal(t, "PAYMENT_VERIFICATION_FAILED", env.Error.Code)
}

func TestOrderHandler_VerifyPayment_MissingSignature(t *testing.T) {
	userID := uuid.New()
	_, e := newOrderHandlerEcho(t, userID)

	rec := doJSON(e, http.MethodPost, "/orders/"+uuid.NewString()+"/verify-payment",
		`{"gatewayPaymentId":"pay_123"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.Equal(t, "signature is required", env.Message)
}
