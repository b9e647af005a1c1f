package repositories

import (
	"sync"

	"gudang/internal/models"

	"github.com/google/uuid"
)

// MockSaleRepository is an in-memory implementation of SaleRepository.
type MockSaleRepository struct {
	sales []models.Sale
	mu    sync.RWMutex
}

// NewMockSaleRepository creates a new instance of MockSaleRepository.
func NewMockSaleRepository() *MockSaleRepository {
	return &MockSaleRepository{}
}

// Create adds a new sale.
func (r *MockSaleRepository) Create(sale *models.Sale) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if sale.ID == "" {
		sale.ID = uuid.New().String()
	}
	r.sales = append(r.sales, *sale)
	return nil
}

// GetAllByUser returns a tenant's sales in reverse insertion order.
func (r *MockSaleRepository) GetAllByUser(userID string) ([]models.Sale, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	saleList := make([]models.Sale, 0, len(r.sales))
	for i := len(r.sales) - 1; i >= 0; i-- {
		if r.sales[i].UserID == userID {
			saleList = append(saleList, r.sales[i])
		}
	}
	return saleList, nil
}

// TotalAmountByUser sums a tenant's sale amounts.
func (r *MockSaleRepository) TotalAmountByUser(userID string) (float64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var total float64
	for _, s := range r.sales {
		if s.UserID == userID {
			total += s.TotalSaleAmount
		}
	}
	return total, nil
}

// DeleteByProductID removes all sales for a product.
func (r *MockSaleRepository) DeleteByProductID(productID string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	kept := r.sales[:0]
	var removed int64
	for _, s := range r.sales {
		if s.ProductID == productID {
			removed++
			continue
		}
		kept = append(kept, s)
	}
	r.sales = kept
	return removed, nil
}
