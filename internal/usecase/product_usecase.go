package usecase

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"

	"github.com/google/uuid"
)

// CreateProductInput defines the data required to add a catalog item.
type CreateProductInput struct {
	Name        string
	Slug        string
	Description string
	PriceMinor  int64
	StockQty    int
	IsActive    bool
}

// UpdateProductInput carries the editable product fields. Nil pointers
// leave the corresponding field unchanged.
type UpdateProductInput struct {
	Name        *string
	Slug        *string
	Description *string
	PriceMinor  *int64
	StockQty    *int
	IsActive    *bool
}

// ListProductsOutput returns a page of catalog items.
type ListProductsOutput struct {
	Products   []*entity.Product
	Pagination Pagination
}

// ProductUsecase defines the interface for catalog operations. The
// storefront reads only active products; admin operations see all.
type ProductUsecase interface {
	ListProducts(ctx context.Context, query ListQuery) (*ListProductsOutput, error)
	GetProductBySlug(ctx context.Context, slug string) (*entity.Product, error)

	// Admin operations.
	AdminListProducts(ctx context.Context, query ListQuery) (*ListProductsOutput, error)
	CreateProduct(ctx context.Context, input *CreateProductInput) (*entity.Product, error)
	UpdateProduct(ctx context.Context, productID uuid.UUID, input *UpdateProductInput) (*entity.Product, error)
	DeleteProduct(ctx context.Context, productID uuid.UUID) error

	// AttachImage stores the upload and sets the product's image URL.
	AttachImage(ctx context.Context, productID uuid.UUID, upload service.Upload) (*entity.Product, error)
}
