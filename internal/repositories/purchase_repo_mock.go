package repositories

import (
	"sync"

	"gudang/internal/models"

	"github.com/google/uuid"
)

// MockPurchaseRepository is an in-memory implementation of PurchaseRepository.
type MockPurchaseRepository struct {
	purchases []models.Purchase
	mu        sync.RWMutex
}

// NewMockPurchaseRepository creates a new instance of MockPurchaseRepository.
func NewMockPurchaseRepository() *MockPurchaseRepository {
	return &MockPurchaseRepository{}
}

// Create adds a new purchase.
func (r *MockPurchaseRepository) Create(purchase *models.Purchase) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if purchase.ID == "" {
		purchase.ID = uuid.New().String()
	}
	r.purchases = append(r.purchases, *purchase)
	return nil
}

// GetAllByUser returns a tenant's purchases in reverse insertion order.
func (r *MockPurchaseRepository) GetAllByUser(userID string) ([]models.Purchase, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	purchaseList := make([]models.Purchase, 0, len(r.purchases))
	for i := len(r.purchases) - 1; i >= 0; i-- {
		if r.purchases[i].UserID == userID {
			purchaseList = append(purchaseList, r.purchases[i])
		}
	}
	return purchaseList, nil
}

// TotalAmountByUser sums a tenant's purchase amounts.
func (r *MockPurchaseRepository) TotalAmountByUser(userID string) (float64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var total float64
	for _, p := range r.purchases {
		if p.UserID == userID {
			total += p.TotalPurchaseAmount
		}
	}
	return total, nil
}

// DeleteByProductID removes all purchases for a product.
func (r *MockPurchaseRepository) DeleteByProductID(productID string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	kept := r.purchases[:0]
	var removed int64
	for _, p := range r.purchases {
		if p.ProductID == productID {
			removed++
			continue
		}
		kept = append(kept, p)
	}
	r.purchases = kept
	return removed, nil
}
