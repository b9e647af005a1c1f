package repositories

import (
	"gudang/internal/models"
)

// ProductRepository defines the interface for product data access.
// All listing and search queries are scoped to the owning user.
type ProductRepository interface {
	Create(product *models.Product) error
	GetAllByUser(userID string) ([]models.Product, error)
	GetByID(id string) (*models.Product, error)
	Update(product *models.Product) error
	SearchByName(userID, term string) ([]models.Product, error)
	// Delete reports whether a record was actually removed. Deleting a
	// nonexistent ID is not an error.
	Delete(id string) (bool, error)
}
