package services

import (
	"fmt"
	"time"

	"gudang/internal/models"
	"gudang/internal/repositories"
)

// SaleService handles business logic related to sales. Outbound stock from a
// sale goes through the inventory service's stock choke point, so a sale
// exceeding the available stock is rejected.
type SaleService struct {
	saleRepo  repositories.SaleRepository
	inventory *InventoryService
}

// NewSaleService creates a new SaleService.
func NewSaleService(saleRepo repositories.SaleRepository, inventory *InventoryService) *SaleService {
	return &SaleService{
		saleRepo:  saleRepo,
		inventory: inventory,
	}
}

// CreateSale records a sale and subtracts the sold quantity from the
// product's stock. Selling more than is available fails with ErrInvalidStock
// and leaves both collections untouched.
func (s *SaleService) CreateSale(sale *models.Sale) (*models.Sale, error) {
	if sale.UserID == "" {
		return nil, fmt.Errorf("userID is required: %w", ErrValidation)
	}
	if sale.ProductID == "" {
		return nil, fmt.Errorf("productID is required: %w", ErrValidation)
	}
	if sale.StockSold <= 0 {
		return nil, fmt.Errorf("stockSold must be positive: %w", ErrValidation)
	}
	if sale.TotalSaleAmount < 0 {
		return nil, fmt.Errorf("totalSaleAmount cannot be negative: %w", ErrValidation)
	}
	if sale.SaleDate.IsZero() {
		sale.SaleDate = time.Now()
	}

	if _, err := s.inventory.AdjustStock(sale.ProductID, -sale.StockSold); err != nil {
		return nil, err
	}

	if err := s.saleRepo.Create(sale); err != nil {
		return nil, fmt.Errorf("failed to record sale: %w", err)
	}
	return sale, nil
}

// GetAllSales retrieves a tenant's sales, most recent first.
func (s *SaleService) GetAllSales(userID string) ([]models.Sale, error) {
	return s.saleRepo.GetAllByUser(userID)
}

// TotalSaleAmount sums a tenant's sale amounts.
func (s *SaleService) TotalSaleAmount(userID string) (float64, error) {
	return s.saleRepo.TotalAmountByUser(userID)
}
