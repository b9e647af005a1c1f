package repositories

import (
	"fmt"

	"gudang/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMPurchaseRepository is a GORM implementation of PurchaseRepository.
type GORMPurchaseRepository struct {
	db *gorm.DB
}

// NewGORMPurchaseRepository creates a new instance of GORMPurchaseRepository.
func NewGORMPurchaseRepository(db *gorm.DB) *GORMPurchaseRepository {
	return &GORMPurchaseRepository{
		db: db,
	}
}

// Create inserts a new purchase, generating an ID when none is set.
func (r *GORMPurchaseRepository) Create(purchase *models.Purchase) error {
	if purchase.ID == "" {
		purchase.ID = uuid.New().String()
	}
	if err := r.db.Create(purchase).Error; err != nil {
		return fmt.Errorf("failed to create purchase: %w", err)
	}
	return nil
}

// GetAllByUser retrieves a tenant's purchases, most recent first.
func (r *GORMPurchaseRepository) GetAllByUser(userID string) ([]models.Purchase, error) {
	var purchases []models.Purchase
	if err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&purchases).Error; err != nil {
		return nil, fmt.Errorf("failed to get purchases for user %s: %w", userID, err)
	}
	return purchases, nil
}

// TotalAmountByUser sums a tenant's purchase amounts.
func (r *GORMPurchaseRepository) TotalAmountByUser(userID string) (float64, error) {
	var total float64
	err := r.db.Model(&models.Purchase{}).
		Where("user_id = ?", userID).
		Select("COALESCE(SUM(total_purchase_amount), 0)").
		Scan(&total).Error
	if err != nil {
		return 0, fmt.Errorf("failed to total purchases for user %s: %w", userID, err)
	}
	return total, nil
}

// DeleteByProductID removes all purchases for a product.
func (r *GORMPurchaseRepository) DeleteByProductID(productID string) (int64, error) {
	res := r.db.Delete(&models.Purchase{}, "product_id = ?", productID)
	if res.Error != nil {
		return 0, fmt.Errorf("failed to delete purchases for product %s: %w", productID, res.Error)
	}
	return res.RowsAffected, nil
}
