package repositories

import (
	"gudang/internal/models"
)

// StoreRepository defines the interface for store/lab data access.
type StoreRepository interface {
	Create(store *models.Store) error
	GetAllByUser(userID string) ([]models.Store, error)
	GetByID(id string) (*models.Store, error)
	Update(store *models.Store) error
}
