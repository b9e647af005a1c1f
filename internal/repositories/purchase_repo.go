package repositories

import (
	"gudang/internal/models"
)

// PurchaseRepository defines the interface for purchase data access.
type PurchaseRepository interface {
	Create(purchase *models.Purchase) error
	GetAllByUser(userID string) ([]models.Purchase, error)
	TotalAmountByUser(userID string) (float64, error)
	// DeleteByProductID removes every purchase referencing the product and
	// returns how many were removed.
	DeleteByProductID(productID string) (int64, error)
}
