package repositories

import (
	"gudang/internal/models"
)

// SaleRepository defines the interface for sale data access.
type SaleRepository interface {
	Create(sale *models.Sale) error
	GetAllByUser(userID string) ([]models.Sale, error)
	TotalAmountByUser(userID string) (float64, error)
	// DeleteByProductID removes every sale referencing the product and
	// returns how many were removed.
	DeleteByProductID(productID string) (int64, error)
}
