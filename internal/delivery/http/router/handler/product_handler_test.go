package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
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

func newProductHandlerEcho(t *testing.T) (*mockUsecase.MockProductUsecase, *echo.Echo) {
	t.Helper()

	uc := mockUsecase.NewMockProductUsecase(t)
	h := NewProductHandler(uc)

	e := newTestEcho()
	e.GET("/products", h.ListProducts)
	e.GET("/products/:slug", h.GetProductBySlug)
	e.POST("/admin/products", h.CreateProduct)
	e.POST("/admin/products/:id/image", h.UploadImage)

	return uc, e
}

func TestProductHandler_ListProducts_PassesQueryParams(t *testing.T) {
	uc, e := newProductHandlerEcho(t)

	uc.EXPECT().
		ListProducts(mock.Anything, usecase.ListQuery{
			Page:   2,
			Limit:  5,
			Search: "tea",
		}).
		Return(&usecase.ListProductsOutput{
			Products:   []*entity.Product{},
			Pagination: usecase.Pagination{Page: 2, Limit: 5, Total: 0},
		}, nil)

	rec := doJSON(e, http.MethodGet, "/products?page=2&limit=5&search=tea", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.True(t, env.Success)
	assert.Contains(t, string(env.Data), `"total":0`)
}

func TestProductHandler_GetProductBySlug_NotFound(t *testing.T) {
	uc, e := newProductHandlerEcho(t)

	uc.EXPECT().
		GetProductBySlug(mock.Anything, "missing-slug").
		Return(nil, domainerrors.ErrNotFound.WithMessage("Product not found"))

	rec := doJSON(e, http.MethodGet, "/products/missing-slug", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.Equal(t, "NOT_FOUND", env.Error.Code)
	assert.Equal(t, "Product not found", env.Message)
}

func TestProductHandler_CreateProduct_NonPositivePrice(t *testing.T) {
	_, e := newProductHandlerEcho(t)

	rec := doJSON(e, http.MethodPost, "/admin/products",
		`{"name":"Green Tea","slug":"green-tea","priceMinor":0,"stockQty":10}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.Equal(t, "INVALID_INPUT", env.Error.Code)
}

func TestProductHandler_UploadImage_MissingFile(t *testing.T) {
	_, e := newProductHandlerEcho(t)

	req := httptest.NewRequest(http.MethodPost, "/admin/products/"+uuid.NewString()+"/image",
		strings.NewReader(""))
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.Equal(t, "An image file is required", env.Message)
}
