package repositories

import (
	"errors"
	"fmt"

	"gudang/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMStoreRepository is a GORM implementation of StoreRepository.
type GORMStoreRepository struct {
	db *gorm.DB
}

// NewGORMStoreRepository creates a new instance of GORMStoreRepository.
func NewGORMStoreRepository(db *gorm.DB) *GORMStoreRepository {
	return &GORMStoreRepository{
		db: db,
	}
}

// Create inserts a new store, generating an ID when none is set.
func (r *GORMStoreRepository) Create(store *models.Store) error {
	if store.ID == "" {
		store.ID = uuid.New().String()
	}
	if err := r.db.Create(store).Error; err != nil {
		return fmt.Errorf("failed to create store: %w", err)
	}
	return nil
}

// GetAllByUser retrieves a tenant's stores, most recently created first.
func (r *GORMStoreRepository) GetAllByUser(userID string) ([]models.Store, error) {
	var stores []models.Store
	if err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&stores).Error; err != nil {
		return nil, fmt.Errorf("failed to get stores for user %s: %w", userID, err)
	}
	return stores, nil
}

// GetByID retrieves a single store by its ID.
func (r *GORMStoreRepository) GetByID(id string) (*models.Store, error) {
	var store models.Store
	if err := r.db.First(&store, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("store %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get store by ID %s: %w", id, err)
	}
	return &store, nil
}

// Update saves all fields of an existing store.
func (r *GORMStoreRepository) Update(store *models.Store) error {
	res := r.db.Save(store)
	if res.Error != nil {
		return fmt.Errorf("failed to update store: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("store %s: %w", store.ID, ErrNotFound)
	}
	return nil
}
