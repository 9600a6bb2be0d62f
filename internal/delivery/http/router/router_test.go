package router

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"storefront/config"
	"storefront/internal/delivery/http/middleware"
	"storefront/internal/delivery/http/router/handler"
	"storefront/internal/delivery/http/validator"
	"storefront/internal/domain/entity"
	"storefront/internal/infra/auth"
	mockUsecase "storefront/internal/mocks/usecase"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type routerFixtures struct {
	e       *echo.Echo
	cfg     *config.Config
	orderUC *mockUsecase.MockOrderUsecase
}

// createTestRouter assembles the full route table against mocked use
// cases and a real JWT token service.
func createTestRouter(t *testing.T) routerFixtures {
	t.Helper()

	cfg := &config.Config{}
	cfg.SecretKey.Access = "access-secret"
	cfg.SecretKey.Refresh = "refresh-secret"

	tokenSvc, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	orderUC := mockUsecase.NewMockOrderUsecase(t)

	params := RouterParams{
		UserHandler:       handler.NewUserHandler(mockUsecase.NewMockUserUsecase(t), logger),
		ProfileHandler:    handler.NewProfileHandler(mockUsecase.NewMockProfileUsecase(t)),
		AddressHandler:    handler.NewAddressHandler(mockUsecase.NewMockAddressUsecase(t)),
		ProductHandler:    handler.NewProductHandler(mockUsecase.NewMockProductUsecase(t)),
		CartHandler:       handler.NewCartHandler(mockUsecase.NewMockCartUsecase(t)),
		CouponHandler:     handler.NewCouponHandler(mockUsecase.NewMockCouponUsecase(t)),
		OrderHandler:      handler.NewOrderHandler(orderUC),
		TicketHandler:     handler.NewTicketHandler(mockUsecase.NewMockTicketUsecase(t)),
		BulkOrderHandler:  handler.NewBulkOrderHandler(mockUsecase.NewMockBulkOrderUsecase(t)),
		NewsletterHandler: handler.NewNewsletterHandler(mockUsecase.NewMockNewsletterUsecase(t)),
		SettingsHandler:   handler.NewSettingsHandler(mockUsecase.NewMockSettingsUsecase(t)),
		AuthMiddleware:    middleware.NewAuthMiddleware(tokenSvc, cfg),
	}

	e := echo.New()
	e.HideBanner = true
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError

	NewRouter(params).RegisterRoutes(e)

	return routerFixtures{e: e, cfg: cfg, orderUC: orderUC}
}

func (f routerFixtures) tokenFor(t *testing.T, role entity.Role) string {
	t.Helper()

	tokenSvc, err := auth.NewJWTService(f.cfg)
	require.NoError(t, err)

	accessToken, _, err := tokenSvc.GenerateTokens(uuid.New(), []string{role.String()})
	require.NoError(t, err)

	return accessToken
}

func (f routerFixtures) get(path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	f.e.ServeHTTP(rec, req)

	return rec
}

func TestRouter_HealthCheck_Public(t *testing.T) {
	fx := createTestRouter(t)

	rec := fx.get("/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}

func TestRouter_Profile_RequiresToken(t *testing.T) {
	fx := createTestRouter(t)

	rec := fx.get("/profile", "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "UNAUTHENTICATED")
}

func TestRouter_AdminRoute_CustomerForbidden(t *testing.T) {
	fx := createTestRouter(t)

	rec := fx.get("/admin/orders", fx.tokenFor(t, entity.RoleCustomer))

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "FORBIDDEN")
}

func TestRouter_AdminRoute_AdminAllowed(t *testing.T) {
	fx := createTestRouter(t)

	fx.orderUC.EXPECT().
		AdminListOrders(mock.Anything, mock.AnythingOfType("usecase.ListQuery")).
		Return(&usecase.ListOrdersOutput{
			Orders:     []*entity.Order{},
			Pagination: usecase.Pagination{Page: 1, Limit: 20},
		}, nil)

	rec := fx.get("/admin/orders", fx.tokenFor(t, entity.RoleAdmin))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":true`)
}
