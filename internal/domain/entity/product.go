package entity

import (
	"time"

	"github.com/google/uuid"
)

// Product is a catalog item available for purchase.
// Prices are stored in minor currency units (paise/cents) to avoid
// floating point drift in totals.
type Product struct {
	ID          uuid.UUID // The unique identifier for the product.
	Name        string    // Display name.
	Slug        string    // URL-friendly unique identifier, e.g., "organic-green-tea".
	Description string    // Long-form product description.
	PriceMinor  int64     // Unit price in minor currency units.
	StockQty    int       // Units currently available for sale.
	ImageURL    string    // Public URL of the primary product image.
	IsActive    bool      // Inactive products are hidden from the storefront listing.
	CreatedAt   time.Time // Timestamp of when this product was created.
	UpdatedAt   time.Time // Timestamp of the last modification.
}

// InStock reports whether the requested quantity can currently be fulfilled.
func (p *Product) InStock(qty int) bool {
	return p.StockQty >= qty
}
