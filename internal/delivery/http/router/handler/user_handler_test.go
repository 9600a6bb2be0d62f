package handler

import (
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	mockUsecase "storefront/internal/mocks/usecase"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newUserHandlerEcho(t *testing.T) (*mockUsecase.MockUserUsecase, *echo.Echo) {
	t.Helper()

	uc := mockUsecase.NewMockUserUsecase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := NewUserHandler(uc, logger)

	e := newTestEcho()
	e.POST("/auth/register", h.Register)
	e.POST("/auth/login", h.Login)
	e.POST("/auth/forgot-password", h.ForgotPassword)
	e.POST("/auth/reset-password", h.ResetPassword)
	e.PATCH("/admin/users/:id/status", h.AdminSetUserStatus)

	return uc, e
}

func TestUserHandler_Register_Success(t *testing.T) {
	uc, e := newUserHandlerEcho(t)

	user := &entity.User{
		ID:        uuid.New(),
		Email:     "jane@example.com",
		Name:      "Jane",
		Phone:     "9876543210",
		Role:      entity.RoleCustomer,
		Status:    entity.UserStatusActive,
		CreatedAt: time.Now(),
	}
	uc.EXPECT().
		Register(mock.Anything, &usecase.RegisterInput{
			Name:     "Jane",
			Email:    "jane@example.com",
			Phone:    "9876543210",
			Password: "s3cret-pass",
		}).
		Return(&usecase.RegisterOutput{User: user}, nil)

	rec := doJSON(e, http.MethodPost, "/auth/register",
		`{"name":"Jane","email":"jane@example.com","phone":"9876543210","password":"s3cret-pass"}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.True(t, env.Success)
	assert.Contains(t, string(env.Data), "jane@example.com")
	// The password hash never appears in the response shape.
	assert.NotContains(t, rec.Body.String(), "PasswordHash")
}

func TestUserHandler_Register_InvalidEmail(t *testing.T) {
	_, e := newUserHandlerEcho(t)

	rec := doJSON(e, http.MethodPost, "/auth/register",
		`{"name":"Jane","email":"not-an-email","phone":"9876543210","password":"s3cret-pass"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.False(t, env.Success)
	assert.Equal(t, "INVALID_INPUT", env.Error.Code)
	assert.Equal(t, "email must be a valid email address", env.Message)
}

func TestUserHandler_Register_ShortPhone(t *testing.T) {
	_, e := newUserHandlerEcho(t)

	rec := doJSON(e, http.MethodPost, "/auth/register",
		`{"name":"Jane","email":"jane@example.com","phone":"12345","password":"s3cret-pass"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.Equal(t, "phone must be a 10-digit phone number", env.Message)
}

func TestUserHandler_Login_InvalidCredentials(t *testing.T) {
	uc, e := newUserHandlerEcho(t)

	uc.EXPECT().
		Login(mock.Anything, mock.AnythingOfType("*usecase.LoginInput")).
		Return(nil, domainerrors.ErrInvalidCredentials)

	rec := doJSON(e, http.MethodPost, "/auth/login",
		`{"email":"jane@example.com","password":"wrong-pass"}`)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.False(t, env.Success)
	assert.Equal(t, "INVALID_CREDENTIALS", env.Error.Code)
}

func TestUserHandler_ForgotPassword_AlwaysGeneric(t *testing.T) {
	uc, e := newUserHandlerEcho(t)

	uc.EXPECT().
		ForgotPassword(mock.Anything, &usecase.ForgotPasswordInput{Email: "ghost@example.com"}).
		Return(nil)

	rec := doJSON(e, http.MethodPost, "/auth/forgot-password",
		`{"email":"ghost@example.com"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.True(t, env.Success)
	assert.Equal(t, "If the account exists, a reset email has been sent", env.Message)
}

func TestUserHandler_ResetPassword_Success(t *testing.T) {
	uc, e := newUserHandlerEcho(t)

	uc.EXPECT().
		ResetPassword(mock.Anything, &usecase.ResetPasswordInput{
			Token:       "emailed-token",
			NewPassword: "brand-new-pass",
		}).
		Return(nil)

	rec := doJSON(e, http.MethodPost, "/auth/reset-password",
		`{"token":"emailed-token","newPassword":"brand-new-pass"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.True(t, env.Success)
	assert.Equal(t, "Password has been reset", env.Message)
}

func TestUserHandler_ResetPassword_ShortPassword(t *testing.T) {
	_, e := newUserHandlerEcho(t)

	rec := doJSON(e, http.MethodPost, "/auth/reset-password",
		`{"token":"emailed-token","newPassword":"short"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "newPassword must be at least 8")
}

func TestUserHandler_ResetPassword_StaleToken(t *testing.T) {
	uc, e := newUserHandlerEcho(t)

	uc.EXPECT().
		ResetPassword(mock.Anything, mock.Anything).
		Return(domainerrors.ErrUnauthenticated.WithDetails("invalid reset token"))

	rec := doJSON(e, http.MethodPost, "/auth/reset-password",
		`{"token":"stale","newPassword":"brand-new-pass"}`)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "UNAUTHENTICATED")
}

func TestUserHandler_AdminSetUserStatus_UnknownStatus(t *testing.T) {
	_, e := newUserHandlerEcho(t)

	rec := doJSON(e, http.MethodPatch, "/admin/users/"+uuid.NewString()+"/status",
		`{"status":"banned"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.Equal(t, "INVALID_INPUT", env.Error.Code)
}

func TestUserHandler_AdminSetUserStatus_BadID(t *testing.T) {
	_, e := newUserHandlerEcho(t)

	rec := doJSON(e, http.MethodPatch, "/admin/users/not-a-uuid/status",
		`{"status":"disabled"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.Equal(t, "id must be a valid UUID", env.Message)
}
