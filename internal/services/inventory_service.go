package services

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"gudang/internal/models"
	"gudang/internal/repositories"
	"gudang/pkg/rabbitmq"
)

// StockAlertPublisher publishes low/no stock events after stock mutations.
// *rabbitmq.Client satisfies it; tests substitute a mock.
type StockAlertPublisher interface {
	PublishStockAlert(alert rabbitmq.StockAlert) error
}

// InventoryService owns the product lifecycle. Every stock mutation, no
// matter which endpoint triggered it, passes through validateStock here so
// the non-negative invariant cannot diverge between entry points.
type InventoryService struct {
	productRepo  repositories.ProductRepository
	purchaseRepo repositories.PurchaseRepository
	saleRepo     repositories.SaleRepository
	alerts       StockAlertPublisher // may be nil
}

// NewInventoryService creates a new InventoryService. The alert publisher
// is optional; pass nil to disable stock alerts.
func NewInventoryService(
	productRepo repositories.ProductRepository,
	purchaseRepo repositories.PurchaseRepository,
	saleRepo repositories.SaleRepository,
	alerts StockAlertPublisher,
) *InventoryService {
	return &InventoryService{
		productRepo:  productRepo,
		purchaseRepo: purchaseRepo,
		saleRepo:     saleRepo,
		alerts:       alerts,
	}
}

// validateStock is the single negativity check shared by every stock-mutating
// path: create, general update, dedicated stock update and purchase/sale
// adjustments.
func validateStock(stock int) error {
	if stock < 0 {
		return ErrInvalidStock
	}
	return nil
}

// CreateProductInput carries the fields accepted on product creation.
// Stock and LowStockThreshold are optional; nil selects the defaults
// (0 and models.DefaultLowStockThreshold).
type CreateProductInput struct {
	UserID            string
	Name              string
	Manufacturer      string
	Description       string
	Stock             *int
	LowStockThreshold *int
}

// CreateProduct validates the input, applies defaults and stores the product.
func (s *InventoryService) CreateProduct(input CreateProductInput) (*models.Product, error) {
	name := strings.TrimSpace(input.Name)
	manufacturer := strings.TrimSpace(input.Manufacturer)

	if input.UserID == "" {
		return nil, fmt.Errorf("userID is required: %w", ErrValidation)
	}
	if name == "" {
		return nil, fmt.Errorf("name is required: %w", ErrValidation)
	}
	if manufacturer == "" {
		return nil, fmt.Errorf("manufacturer is required: %w", ErrValidation)
	}

	stock := 0
	if input.Stock != nil {
		if err := validateStock(*input.Stock); err != nil {
			return nil, err
		}
		stock = *input.Stock
	}

	threshold := models.DefaultLowStockThreshold
	if input.LowStockThreshold != nil && *input.LowStockThreshold != 0 {
		if *input.LowStockThreshold < 1 {
			return nil, fmt.Errorf("lowStockThreshold must be at least 1: %w", ErrValidation)
		}
		threshold = *input.LowStockThreshold
	}

	product := &models.Product{
		UserID:            input.UserID,
		Name:              name,
		Manufacturer:      manufacturer,
		Description:       strings.TrimSpace(input.Description),
		Stock:             stock,
		LowStockThreshold: threshold,
	}
	if err := s.productRepo.Create(product); err != nil {
		return nil, err
	}
	return product, nil
}

// ListProducts returns a tenant's products newest-first, each annotated with
// its stock status. The status is computed here on every read, never stored.
func (s *InventoryService) ListProducts(userID string) ([]models.ProductWithStatus, error) {
	products, err := s.productRepo.GetAllByUser(userID)
	if err != nil {
		return nil, err
	}

	annotated := make([]models.ProductWithStatus, 0, len(products))
	for _, p := range products {
		annotated = append(annotated, p.WithStatus())
	}
	return annotated, nil
}

// GetProduct retrieves a single product by its ID.
func (s *InventoryService) GetProduct(id string) (*models.Product, error) {
	return s.productRepo.GetByID(id)
}

// UpdateProductInput carries the general update fields. Nil pointers leave
// the stored value untouched.
type UpdateProductInput struct {
	ProductID         string
	Name              *string
	Manufacturer      *string
	Description       *string
	Stock             *int
	LowStockThreshold *int
}

// UpdateProduct applies only the provided fields. A stock change goes through
// the same validateStock rule as the dedicated stock endpoint.
func (s *InventoryService) UpdateProduct(input UpdateProductInput) (*models.Product, error) {
	if input.ProductID == "" {
		return nil, fmt.Errorf("productID is required: %w", ErrValidation)
	}

	product, err := s.productRepo.GetByID(input.ProductID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, fmt.Errorf("name cannot be empty: %w", ErrValidation)
		}
		product.Name = name
	}
	if input.Manufacturer != nil {
		manufacturer := strings.TrimSpace(*input.Manufacturer)
		if manufacturer == "" {
			return nil, fmt.Errorf("manufacturer cannot be empty: %w", ErrValidation)
		}
		product.Manufacturer = manufacturer
	}
	if input.Description != nil {
		product.Description = strings.TrimSpace(*input.Description)
	}
	if input.LowStockThreshold != nil {
		if *input.LowStockThreshold < 1 {
			return nil, fmt.Errorf("lowStockThreshold must be at least 1: %w", ErrValidation)
		}
		product.LowStockThreshold = *input.LowStockThreshold
	}

	stockChanged := false
	if input.Stock != nil {
		if err := validateStock(*input.Stock); err != nil {
			return nil, err
		}
		stockChanged = *input.Stock != product.Stock
		product.Stock = *input.Stock
	}

	if err := s.productRepo.Update(product); err != nil {
		return nil, err
	}
	if stockChanged {
		s.maybeAlert(product)
	}
	return product, nil
}

// SetStock replaces a product's stock level. A negative value is rejected
// before the record is touched.
func (s *InventoryService) SetStock(productID string, newStock int) (*models.Product, error) {
	if err := validateStock(newStock); err != nil {
		return nil, err
	}

	product, err := s.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}

	product.Stock = newStock
	if err := s.productRepo.Update(product); err != nil {
		return nil, err
	}

	s.maybeAlert(product)
	return product, nil
}

// AdjustStock shifts a product's stock by a signed delta. Purchases add,
// sales subtract; a delta that would leave stock negative is rejected.
func (s *InventoryService) AdjustStock(productID string, delta int) (*models.Product, error) {
	product, err := s.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	return s.SetStock(productID, product.Stock+delta)
}

// SearchProducts matches on a case-insensitive name substring, scoped to the
// tenant when a userID is given.
func (s *InventoryService) SearchProducts(userID, term string) ([]models.Product, error) {
	return s.productRepo.SearchByName(userID, term)
}

// CascadeResult summarizes what a cascade deletion removed from each of the
// three collections.
type CascadeResult struct {
	DeleteProduct         int64 `json:"deleteProduct"`
	DeletePurchaseProduct int64 `json:"deletePurchaseProduct"`
	DeleteSaleProduct     int64 `json:"deleteSaleProduct"`
}

// DeleteProductCascade removes a product and every purchase and sale that
// references it. All three deletions are attempted even if the product was
// already absent or an earlier step failed; completed deletions are not
// rolled back. Deleting nothing is not an error.
func (s *InventoryService) DeleteProductCascade(productID string) (CascadeResult, error) {
	var result CascadeResult
	var errs []error

	removed, err := s.productRepo.Delete(productID)
	if err != nil {
		errs = append(errs, err)
	} else if removed {
		result.DeleteProduct = 1
	}

	if count, err := s.purchaseRepo.DeleteByProductID(productID); err != nil {
		errs = append(errs, err)
	} else {
		result.DeletePurchaseProduct = count
	}

	if count, err := s.saleRepo.DeleteByProductID(productID); err != nil {
		errs = append(errs, err)
	} else {
		result.DeleteSaleProduct = count
	}

	return result, errors.Join(errs...)
}

// maybeAlert publishes a stock alert when the product sits at or below its
// threshold. Publishing is best-effort and never fails the mutation.
func (s *InventoryService) maybeAlert(product *models.Product) {
	if s.alerts == nil {
		return
	}

	status := models.ClassifyStock(product.Stock, product.LowStockThreshold)
	if status == models.StatusInStock {
		return
	}

	alert := rabbitmq.StockAlert{
		ProductID:   product.ID,
		ProductName: product.Name,
		UserID:      product.UserID,
		Stock:       product.Stock,
		Threshold:   product.LowStockThreshold,
		Status:      string(status),
	}
	if err := s.alerts.PublishStockAlert(alert); err != nil {
		log.Printf("Warning: Failed to publish stock alert for product %s: %v", product.ID, err)
	}
}
