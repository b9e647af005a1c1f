package repositories

import (
	"fmt"
	"strings"
	"sync"

	"gudang/internal/models"

	"github.com/google/uuid"
)

// MockProductRepository is an in-memory implementation of ProductRepository.
// Insertion order is retained so listings can be returned newest-first.
type MockProductRepository struct {
	products []models.Product
	mu       sync.RWMutex
}

// NewMockProductRepository creates a new instance of MockProductRepository.
func NewMockProductRepository() *MockProductRepository {
	return &MockProductRepository{}
}

// Create adds a new product.
func (r *MockProductRepository) Create(product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	r.products = append(r.products, *product)
	return nil
}

// GetAllByUser returns a tenant's products in reverse insertion order.
func (r *MockProductRepository) GetAllByUser(userID string) ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	productList := make([]models.Product, 0, len(r.products))
	for i := len(r.products) - 1; i >= 0; i-- {
		if r.products[i].UserID == userID {
			productList = append(productList, r.products[i])
		}
	}
	return productList, nil
}

// GetByID returns a product by its ID.
func (r *MockProductRepository) GetByID(id string) (*models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.products {
		if p.ID == id {
			product := p
			return &product, nil
		}
	}
	return nil, fmt.Errorf("product %s: %w", id, ErrNotFound)
}

// Update modifies an existing product.
func (r *MockProductRepository) Update(product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.products {
		if r.products[i].ID == product.ID {
			r.products[i] = *product
			return nil
		}
	}
	return fmt.Errorf("product %s: %w", product.ID, ErrNotFound)
}

// SearchByName matches on a case-insensitive name substring.
func (r *MockProductRepository) SearchByName(userID, term string) ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	lowered := strings.ToLower(term)
	matches := make([]models.Product, 0)
	for i := len(r.products) - 1; i >= 0; i-- {
		p := r.products[i]
		if userID != "" && p.UserID != userID {
			continue
		}
		if strings.Contains(strings.ToLower(p.Name), lowered) {
			matches = append(matches, p)
		}
	}
	return matches, nil
}

// Delete removes a product by its ID, reporting whether one existed.
func (r *MockProductRepository) Delete(id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.products {
		if r.products[i].ID == id {
			r.products = append(r.products[:i], r.products[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}
