package repositories

import (
	"errors"
	"fmt"

	"gudang/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMProductRepository is a GORM implementation of ProductRepository.
type GORMProductRepository struct {
	db *gorm.DB
}

// NewGORMProductRepository creates a new instance of GORMProductRepository.
func NewGORMProductRepository(db *gorm.DB) *GORMProductRepository {
	return &GORMProductRepository{
		db: db,
	}
}

// Create inserts a new product, generating an ID when none is set.
func (r *GORMProductRepository) Create(product *models.Product) error {
	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	if err := r.db.Create(product).Error; err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

// GetAllByUser retrieves a tenant's products, most recently created first.
func (r *GORMProductRepository) GetAllByUser(userID string) ([]models.Product, error) {
	var products []models.Product
	if err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to get products for user %s: %w", userID, err)
	}
	return products, nil
}

// GetByID retrieves a single product by its ID.
func (r *GORMProductRepository) GetByID(id string) (*models.Product, error) {
	var product models.Product
	if err := r.db.First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("product %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get product by ID %s: %w", id, err)
	}
	return &product, nil
}

// Update saves all fields of an existing product.
func (r *GORMProductRepository) Update(product *models.Product) error {
	res := r.db.Save(product) // Save updates all fields, including zero values
	if res.Error != nil {
		return fmt.Errorf("failed to update product: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		// GORM's Save doesn't return ErrRecordNotFound when no rows were
		// touched, so check RowsAffected.
		return fmt.Errorf("product %s: %w", product.ID, ErrNotFound)
	}
	return nil
}

// SearchByName matches products whose name contains the term, case-insensitively.
// An empty userID leaves the search unscoped.
func (r *GORMProductRepository) SearchByName(userID, term string) ([]models.Product, error) {
	var products []models.Product
	query := r.db.Where("LOWER(name) LIKE LOWER(?)", "%"+term+"%")
	if userID != "" {
		query = query.Where("user_id = ?", userID)
	}
	if err := query.Order("created_at DESC").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to search products for %q: %w", term, err)
	}
	return products, nil
}

// Delete removes a product by its ID and reports whether a row was removed.
func (r *GORMProductRepository) Delete(id string) (bool, error) {
	res := r.db.Delete(&models.Product{}, "id = ?", id)
	if res.Error != nil {
		return false, fmt.Errorf("failed to delete product %s: %w", id, res.Error)
	}
	return res.RowsAffected > 0, nil
}
