package services

import (
	"fmt"
	"time"

	"gudang/internal/models"
	"gudang/internal/repositories"
)

// PurchaseService handles business logic related to purchases. Inbound stock
// from a purchase goes through the inventory service's stock choke point.
type PurchaseService struct {
	purchaseRepo repositories.PurchaseRepository
	inventory    *InventoryService
}

// NewPurchaseService creates a new PurchaseService.
func NewPurchaseService(purchaseRepo repositories.PurchaseRepository, inventory *InventoryService) *PurchaseService {
	return &PurchaseService{
		purchaseRepo: purchaseRepo,
		inventory:    inventory,
	}
}

// CreatePurchase records a purchase and adds the purchased quantity to the
// product's stock. The stock adjustment happens first; if recording the
// purchase then fails the stock is not rolled back (best-effort, mirroring
// the cascade deletion semantics).
func (s *PurchaseService) CreatePurchase(purchase *models.Purchase) (*models.Purchase, error) {
	if purchase.UserID == "" {
		return nil, fmt.Errorf("userID is required: %w", ErrValidation)
	}
	if purchase.ProductID == "" {
		return nil, fmt.Errorf("productID is required: %w", ErrValidation)
	}
	if purchase.QuantityPurchased <= 0 {
		return nil, fmt.Errorf("quantityPurchased must be positive: %w", ErrValidation)
	}
	if purchase.TotalPurchaseAmount < 0 {
		return nil, fmt.Errorf("totalPurchaseAmount cannot be negative: %w", ErrValidation)
	}
	if purchase.PurchaseDate.IsZero() {
		purchase.PurchaseDate = time.Now()
	}

	if _, err := s.inventory.AdjustStock(purchase.ProductID, purchase.QuantityPurchased); err != nil {
		return nil, err
	}

	if err := s.purchaseRepo.Create(purchase); err != nil {
		return nil, fmt.Errorf("failed to record purchase: %w", err)
	}
	return purchase, nil
}

// GetAllPurchases retrieves a tenant's purchases, most recent first.
func (s *PurchaseService) GetAllPurchases(userID string) ([]models.Purchase, error) {
	return s.purchaseRepo.GetAllByUser(userID)
}

// TotalPurchaseAmount sums a tenant's purchase amounts.
func (s *PurchaseService) TotalPurchaseAmount(userID string) (float64, error) {
	return s.purchaseRepo.TotalAmountByUser(userID)
}
