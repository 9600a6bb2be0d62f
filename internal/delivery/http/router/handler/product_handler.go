package handler

import (
	"net/http"

	"storefront/internal/delivery/http/response"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ProductHandler holds dependencies for catalog handlers.
type ProductHandler struct {
	uc usecase.ProductUsecase
}

// NewProductHandler is the constructor for ProductHandler, injected by Fx.
func NewProductHandler(uc usecase.ProductUsecase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// ListProducts returns the public catalog page. Only active products
// are visible regardless of the status filter supplied.
func (h *ProductHandler) ListProducts(c echo.Context) error {
	output, err := h.uc.ListProducts(c.Request().Context(), bindListQuery(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, echo.Map{
		"products":   output.Products,
		"pagination": newPageView(output.Pagination),
	}, "Products retrieved successfully")
}

// GetProductBySlug returns a single active product.
func (h *ProductHandler) GetProductBySlug(c echo.Context) error {
	product, err := h.uc.GetProductBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, product, "Product retrieved successfully")
}

// AdminListProducts returns the back-office catalog page, inactive
// products included.
func (h *ProductHandler) AdminListProducts(c echo.Context) error {
	output, err := h.uc.AdminListProducts(c.Request().Context(), bindListQuery(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, echo.Map{
		"products":   output.Products,
		"pagination": newPageView(output.Pagination),
	}, "Products retrieved successfully")
}

type createProductRequest struct {
	Name        string `json:"name" validate:"required,max=200"`
	Slug        string `json:"slug" validate:"required,max=200"`
	Description string `json:"description"`
	PriceMinor  int64  `json:"priceMinor" validate:"required,gt=0"`
	StockQty    int    `json:"stockQty" validate:"gte=0"`
	IsActive    bool   `json:"isActive"`
}

// CreateProduct adds a catalog item.
func (h *ProductHandler) CreateProduct(c echo.Context) error {
	var req createProductRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	product, err := h.uc.CreateProduct(c.Request().Context(), &usecase.CreateProductInput{
		Name:        req.Name,
		Slug:        req.Slug,
		Description: req.Description,
		PriceMinor:  req.PriceMinor,
		StockQty:    req.StockQty,
		IsActive:    req.IsActive,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, product, "Product created successfully")
}

type updateProductRequest struct {
	Name        *string `json:"name" validate:"omitempty,max=200"`
	Slug        *string `json:"slug" validate:"omitempty,max=200"`
	Description *string `json:"description"`
	PriceMinor  *int64  `json:"priceMinor" validate:"omitempty,gt=0"`
	StockQty    *int    `json:"stockQty" validate:"omitempty,gte=0"`
	IsActive    *bool   `json:"isActive"`
}

// UpdateProduct applies a partial update to a catalog item.
func (h *ProductHandler) UpdateProduct(c echo.Context) error {
	productID, err := pathID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	var req updateProductRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	product, err := h.uc.UpdateProduct(c.Request().Context(), productID, &usecase.UpdateProductInput{
		Name:        req.Name,
		Slug:        req.Slug,
		Description: req.Description,
		PriceMinor:  req.PriceMinor,
		StockQty:    req.StockQty,
		IsActive:    req.IsActive,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, product, "Product updated successfully")
}

// DeleteProduct removes a catalog item.
func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	productID, err := pathID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.DeleteProduct(c.Request().Context(), productID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Product deleted successfully")
}

// UploadImage stores a product image and attaches its URL.
func (h *ProductHandler) UploadImage(c echo.Context) error {
	productID, err := pathID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "An image file is required")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return errors.Wrap(err, "failed to open uploaded file")
	}
	defer file.Close()

	product, err := h.uc.AttachImage(c.Request().Context(), productID, service.Upload{
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Size:        fileHeader.Size,
		Body:        file,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, product, "Product image uploaded successfully")
}
