package impl

import (
	"context"
	"log/slog"
	"regexp"
	"strings"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// productService implements the ProductUsecase interface.
type productService struct {
	productRepo repository.ProductRepository
	fileStorage service.FileStorage
	logger      *slog.Logger
}

// ProductServiceParams holds dependencies for productService, injected by Fx.
type ProductServiceParams struct {
	fx.In

	ProductRepo repository.ProductRepository
	FileStorage service.FileStorage
	Logger      *slog.Logger
}

// NewProductService is the constructor for productService.
func NewProductService(params ProductServiceParams) usecase.ProductUsecase {
	return &productService{
		productRepo: params.ProductRepo,
		fileStorage: params.FileStorage,
		logger:      params.Logger,
	}
}

// ListProducts returns the storefront listing. Only active products are
// visible regardless of the requested status filter.
func (srv *productService) ListProducts(ctx context.Context, query usecase.ListQuery) (*usecase.ListProductsOutput, error) {
	query.Status = "active"

	return srv.list(ctx, query)
}

// GetProductBySlug returns a single active product for the storefront.
func (srv *productService) GetProductBySlug(ctx context.Context, slug string) (*entity.Product, error) {
	product, err := srv.productRepo.FindBySlug(ctx, strings.ToLower(slug))
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrNotFound.WithMessage("Product not found")
		}

		return nil, errors.Wrap(err, "failed to load product")
	}
	if !product.IsActive {
		return nil, domainerrors.ErrNotFound.WithMessage("Product not found")
	}

	return product, nil
}

// AdminListProducts returns the unfiltered catalog for the back office.
func (srv *productService) AdminListProducts(ctx context.Context, query usecase.ListQuery) (*usecase.ListProductsOutput, error) {
	return srv.list(ctx, query)
}

func (srv *productService) list(ctx context.Context, query usecase.ListQuery) (*usecase.ListProductsOutput, error) {
	params := query.ToParams()

	products, total, err := srv.productRepo.List(ctx, params)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return &usecase.ListProductsOutput{
		Products:   products,
		Pagination: usecase.Pagination{Page: params.Page, Limit: params.Limit, Total: total},
	}, nil
}

// CreateProduct adds a catalog item.
func (srv *productService) CreateProduct(ctx context.Context, input *usecase.CreateProductInput) (*entity.Product, error) {
	slug := strings.ToLower(strings.TrimSpace(input.Slug))
	if !slugPattern.MatchString(slug) {
		return nil, domainerrors.ErrInvalidInput.WithMessage("Slug must contain only lowercase letters, digits and hyphens")
	}
	if input.PriceMinor <= 0 {
		return nil, domainerrors.ErrInvalidInput.WithMessage("Price must be positive")
	}
	if input.StockQty < 0 {
		return nil, domainerrors.ErrInvalidInput.WithMessage("Stock cannot be negative")
	}

	product := &entity.Product{
		Name:        input.Name,
		Slug:        slug,
		Description: input.Description,
		PriceMinor:  input.PriceMinor,
		StockQty:    input.StockQty,
		IsActive:    input.IsActive,
	}

	if err := srv.productRepo.Create(ctx, product); err != nil {
		if errors.Is(err, repository.ErrDuplicateSlug) {
			return nil, domainerrors.ErrConflict.WithMessage("A product with this slug already exists")
		}

		return nil, errors.Wrap(err, "failed to create product")
	}

	srv.logger.Info("Product created", slog.Any("productID", product.ID), slog.String("slug", slug))

	return product, nil
}

// UpdateProduct applies the supplied fields and leaves the rest alone.
func (srv *productService) UpdateProduct(ctx context.Context, productID uuid.UUID, input *usecase.UpdateProductInput) (*entity.Product, error) {
	product, err := srv.findProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		product.Name = *input.Name
	}
	if input.Slug != nil {
		slug := strings.ToLower(strings.TrimSpace(*input.Slug))
		if !slugPattern.MatchString(slug) {
			return nil, domainerrors.ErrInvalidInput.WithMessage("Slug must contain only lowercase letters, digits and hyphens")
		}
		product.Slug = slug
	}
	if input.Description != nil {
		product.Description = *input.Description
	}
	if input.PriceMinor != nil {
		if *input.PriceMinor <= 0 {
			return nil, domainerrors.ErrInvalidInput.WithMessage("Price must be positive")
		}
		product.PriceMinor = *input.PriceMinor
	}
	if input.StockQty != nil {
		if *input.StockQty < 0 {
			return nil, domainerrors.ErrInvalidInput.WithMessage("Stock cannot be negative")
		}
		product.StockQty = *input.StockQty
	}
	if input.IsActive != nil {
		product.IsActive = *input.IsActive
	}

	if err := srv.productRepo.Update(ctx, product); err != nil {
		if errors.Is(err, repository.ErrDuplicateSlug) {
			return nil, domainerrors.ErrConflict.WithMessage("A product with this slug already exists")
		}

		return nil, errors.Wrap(err, "failed to update product")
	}

	return product, nil
}

// DeleteProduct removes a catalog item.
func (srv *productService) DeleteProduct(ctx context.Context, productID uuid.UUID) error {
	if err := srv.productRepo.Delete(ctx, productID); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return domainerrors.ErrNotFound.WithMessage("Product not found")
		}

		return errors.Wrap(err, "failed to delete product")
	}

	return nil
}

// AttachImage stores the upload and points the product at it.
func (srv *productService) AttachImage(ctx context.Context, productID uuid.UUID, upload service.Upload) (*entity.Product, error) {
	product, err := srv.findProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	stored, err := srv.fileStorage.Store(ctx, upload)
	if err != nil {
		if errors.Is(err, service.ErrUnsupportedFileType) {
			return nil, domainerrors.ErrInvalidInput.WithMessage("Unsupported image type")
		}
		if errors.Is(err, service.ErrFileTooLarge) {
			return nil, domainerrors.ErrInvalidInput.WithMessage("Image exceeds the maximum allowed size")
		}

		return nil, errors.Wrap(err, "failed to store product image")
	}

	product.ImageURL = stored.URL
	if err := srv.productRepo.Update(ctx, product); err != nil {
		return nil, errors.Wrap(err, "failed to attach product image")
	}

	return product, nil
}

func (srv *productService) findProduct(ctx context.Context, productID uuid.UUID) (*entity.Product, error) {
	product, err := srv.productRepo.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrNotFound.WithMessage("Product not found")
		}

		return nil, errors.Wrap(err, "failed to load product")
	}

	return product, nil
}
