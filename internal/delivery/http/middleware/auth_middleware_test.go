package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"storefront/config"
	"storefront/internal/domain/entity"
	"storefront/internal/infra/auth"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAuthMiddleware(t *testing.T) (*AuthMiddleware, *config.Config) {
	t.Helper()

	cfg := &config.Config{}
	cfg.SecretKey.Access = "access-secret"
	cfg.SecretKey.Refresh = "refresh-secret"

	tokenSvc, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	return NewAuthMiddleware(tokenSvc, cfg), cfg
}

func callAuthenticated(m *AuthMiddleware, header string) (*httptest.ResponseRecorder, echo.Context, bool) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/profile", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	nextCalled := false
	_ = m.Authenticate(func(c echo.Context) error {
		nextCalled = true

		return c.NoContent(http.StatusOK)
	})(c)

	return rec, c, nextCalled
}

func TestAuthMiddleware_Authenticate_MissingHeader(t *testing.T) {
	m, _ := newTestAuthMiddleware(t)

	rec, _, nextCalled := callAuthenticated(m, "")

	assert.False(t, nextCalled)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "UNAUTHENTICATED")
}

func TestAuthMiddleware_Authenticate_NotBearer(t *testing.T) {
	m, _ := newTestAuthMiddleware(t)

	rec, _, nextCalled := callAuthenticated(m, "Basic dXNlcjpwYXNz")

	assert.False(t, nextCalled)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_Authenticate_GarbageToken(t *testing.T) {
	m, _ := newTestAuthMiddleware(t)

	rec, _, nextCalled := callAuthenticated(m, "Bearer not.a.jwt")

	assert.False(t, nextCalled)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_Authenticate_ValidToken_SetsIdentity(t *testing.T) {
	m, cfg := newTestAuthMiddleware(t)

	tokenSvc, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	userID := uuid.New()
	accessToken, _, err := tokenSvc.GenerateTokens(userID, []string{entity.RoleCustomer.String()})
	require.NoError(t, err)

	_, c, nextCalled := callAuthenticated(m, "Bearer "+accessToken)

	assert.True(t, nextCalled)
	assert.Equal(t, userID, c.Get(ContextKeyUserID))
	assert.Equal(t, []string{"customer"}, c.Get(ContextKeyRoles))
}

func TestAuthMiddleware_Authenticate_RefreshTokenRejected(t *testing.T) {
	m, cfg := newTestAuthMiddleware(t)

	tokenSvc, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	// A refresh token is signed with the refresh secret and typed
	// "refresh"; neither lets it through the access gate.
	_, refreshToken, err := tokenSvc.GenerateTokens(uuid.New(), []string{"customer"})
	require.NoError(t, err)

	rec, _, nextCalled := callAuthenticated(m, "Bearer "+refreshToken)

	assert.False(t, nextCalled)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_Authenticate_ResetTokenRejected(t *testing.T) {
	m, cfg := newTestAuthMiddleware(t)

	tokenSvc, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	// A reset token shares the access secret, so only its "reset" type
	// keeps a password-reset email from granting an API session.
	resetToken, err := tokenSvc.GenerateResetToken(uuid.New())
	require.NoError(t, err)

	rec, _, nextCalled := callAuthenticated(m, "Bearer "+resetToken)

	assert.False(t, nextCalled)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "UNAUTHENTICATED")
}

func TestAuthMiddleware_RequireRole_Forbidden(t *testing.T) {
	m, _ := newTestAuthMiddleware(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/admin/orders", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(ContextKeyRoles, []string{"customer"})

	nextCalled := false
	_ = m.RequireRole("admin")(func(c echo.Context) error {
		nextCalled = true

		return c.NoContent(http.StatusOK)
	})(c)

	assert.False(t, nextCalled)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "FORBIDDEN")
}

func TestAuthMiddleware_RequireRole_Allowed(t *testing.T) {
	m, _ := newTestAuthMiddleware(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/admin/orders", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(ContextKeyRoles, []string{"customer", "admin"})

	nextCalled := false
	_ = m.RequireRole("admin")(func(c echo.Context) error {
		nextCalled = true

		return c.NoContent(http.StatusOK)
	})(c)

	assert.True(t, nextCalled)
}

func TestAuthMiddleware_RequireRole_MissingRoles(t *testing.T) {
	m, _ := newTestAuthMiddleware(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/admin/orders", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	nextCalled := false
	_ = m.RequireRole("admin")(func(c echo.Context) error {
		nextCalled = true

		return c.NoContent(http.StatusOK)
	})(c)

	assert.False(t, nextCalled)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
