package models

import "gorm.io/gorm"

// Product represents a single inventory item owned by a tenant.
type Product struct {
	ID           string `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	UserID       string `json:"userID" gorm:"index;type:varchar(36)" validate:"required"`
	Name         string `json:"name" validate:"required,min=1,max=100"`
	Manufacturer string `json:"manufacturer" validate:"required,min=1,max=100"`
	Description  string `json:"description" validate:"omitempty,max=500"`
	Stock        int    `json:"stock" validate:"gte=0"`
	// Quantity at or below which the product is flagged as low on stock.
	LowStockThreshold int `json:"lowStockThreshold" validate:"gte=1"`
	gorm.Model            // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}

// DefaultLowStockThreshold is applied when a product is created without one.
const DefaultLowStockThreshold = 10

// StockStatus is the derived availability bucket of a product. It is computed
// on every read and never persisted, so it cannot drift from the stored stock.
type StockStatus string

const (
	StatusNoStock  StockStatus = "No Stock"
	StatusLowStock StockStatus = "Low Stock"
	StatusInStock  StockStatus = "In Stock"
)

// ClassifyStock buckets a stock level against a low-stock threshold.
// Zero stock wins over the threshold comparison; the threshold is inclusive.
func ClassifyStock(stock, lowStockThreshold int) StockStatus {
	if stock == 0 {
		return StatusNoStock
	}
	if stock <= lowStockThreshold {
		return StatusLowStock
	}
	return StatusInStock
}

// ProductWithStatus is the listing projection of a Product: the stored record
// plus its stock status computed at serialization time.
type ProductWithStatus struct {
	Product
	StockStatus StockStatus `json:"stockStatus"`
}

// WithStatus annotates a product with its current stock status.
func (p Product) WithStatus() ProductWithStatus {
	return ProductWithStatus{
		Product:     p,
		StockStatus: ClassifyStock(p.Stock, p.LowStockThreshold),
	}
}
