// Package handler contains the HTTP handlers for the application.
package handler

import (
	"net/http"
	"strconv"
	"time"

	"storefront/internal/delivery/http/middleware"
	"storefront/internal/delivery/http/response"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// currentUserID reads the authenticated user's id set by the auth
// middleware. The second return is false on unauthenticated requests.
func currentUserID(c echo.Context) (uuid.UUID, bool) {
	userID, ok := c.Get(middleware.ContextKeyUserID).(uuid.UUID)

	return userID, ok
}

// pathID parses a uuid path parameter, mapping parse failures to a
// typed invalid-input error.
func pathID(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, domainerrors.ErrInvalidInput.WithMessage(name + " must be a valid UUID")
	}

	return id, nil
}

// bindListQuery reads the shared pagination and filter query params.
// Out-of-range values are normalized downstream.
func bindListQuery(c echo.Context) usecase.ListQuery {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	return usecase.ListQuery{
		Page:   page,
		Limit:  limit,
		Search: c.QueryParam("search"),
		Status: c.QueryParam("status"),
	}
}

// pageView is the serialized form of a list window.
type pageView struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
}

func newPageView(p usecase.Pagination) pageView {
	return pageView{Page: p.Page, Limit: p.Limit, Total: p.Total}
}

// userView is the serialized form of a user account. The password hash
// never leaves the domain layer.
type userView struct {
	ID            uuid.UUID `json:"id"`
	Email         string    `json:"email"`
	Name          string    `json:"name"`
	Phone         string    `json:"phone"`
	Role          string    `json:"role"`
	Status        string    `json:"status"`
	EmailVerified bool      `json:"emailVerified"`
	PhoneVerified bool      `json:"phoneVerified"`
	CreatedAt     time.Time `json:"createdAt"`
}

func newUserView(u *entity.User) userView {
	return userView{
		ID:            u.ID,
		Email:         u.Email,
		Name:          u.Name,
		Phone:         u.Phone,
		Role:          u.Role.String(),
		Status:        string(u.Status),
		EmailVerified: u.EmailVerified,
		PhoneVerified: u.PhoneVerified,
		CreatedAt:     u.CreatedAt,
	}
}

func newUserViews(users []*entity.User) []userView {
	views := make([]userView, len(users))
	for i, u := range users {
		views[i] = newUserView(u)
	}

	return views
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
