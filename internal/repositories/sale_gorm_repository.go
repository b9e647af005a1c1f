package repositories

import (
	"fmt"

	"gudang/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMSaleRepository is a GORM implementation of SaleRepository.
type GORMSaleRepository struct {
	db *gorm.DB
}

// NewGORMSaleRepository creates a new instance of GORMSaleRepository.
func NewGORMSaleRepository(db *gorm.DB) *GORMSaleRepository {
	return &GORMSaleRepository{
		db: db,
	}
}

// Create inserts a new sale, generating an ID when none is set.
func (r *GORMSaleRepository) Create(sale *models.Sale) error {
	if sale.ID == "" {
		sale.ID = uuid.New().String()
	}
	if err := r.db.Create(sale).Error; err != nil {
		return fmt.Errorf("failed to create sale: %w", err)
	}
	return nil
}

// GetAllByUser retrieves a tenant's sales, most recent first.
func (r *GORMSaleRepository) GetAllByUser(userID string) ([]models.Sale, error) {
	var sales []models.Sale
	if err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&sales).Error; err != nil {
		return nil, fmt.Errorf("failed to get sales for user %s: %w", userID, err)
	}
	return sales, nil
}

// TotalAmountByUser sums a tenant's sale amounts.
func (r *GORMSaleRepository) TotalAmountByUser(userID string) (float64, error) {
	var total float64
	err := r.db.Model(&models.Sale{}).
		Where("user_id = ?", userID).
		Select("COALESCE(SUM(total_sale_amount), 0)").
		Scan(&total).Error
	if err != nil {
		return 0, fmt.Errorf("failed to total sales for user %s: %w", userID, err)
	}
	return total, nil
}

// DeleteByProductID removes all sales for a product.
func (r *GORMSaleRepository) DeleteByProductID(productID string) (int64, error) {
	res := r.db.Delete(&models.Sale{}, "product_id = ?", productID)
	if res.Error != nil {
		return 0, fmt.Errorf("failed to delete sales for product %s: %w", productID, res.Error)
	}
	return res.RowsAffected, nil
}
