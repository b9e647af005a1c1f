package services

import (
	"fmt"
	"strings"

	"gudang/internal/models"
	"gudang/internal/repositories"
)

// StoreService handles business logic for stores and labs.
type StoreService struct {
	storeRepo repositories.StoreRepository
}

// NewStoreService creates a new StoreService.
func NewStoreService(storeRepo repositories.StoreRepository) *StoreService {
	return &StoreService{
		storeRepo: storeRepo,
	}
}

// CreateStore validates and stores a new store record.
func (s *StoreService) CreateStore(store *models.Store) (*models.Store, error) {
	store.Name = strings.TrimSpace(store.Name)
	if store.UserID == "" {
		return nil, fmt.Errorf("userID is required: %w", ErrValidation)
	}
	if store.Name == "" {
		return nil, fmt.Errorf("name is required: %w", ErrValidation)
	}

	if err := s.storeRepo.Create(store); err != nil {
		return nil, err
	}
	return store, nil
}

// GetAllStores retrieves a tenant's stores, most recently created first.
func (s *StoreService) GetAllStores(userID string) ([]models.Store, error) {
	return s.storeRepo.GetAllByUser(userID)
}

// UpdateStoreInput carries the updatable store fields. Nil pointers leave
// the stored value untouched.
type UpdateStoreInput struct {
	StoreID     string
	Name        *string
	Category    *string
	Address     *string
	City        *string
	Image       *string
	Status      *string
	ManagerName *string
}

// UpdateStore applies only the provided fields.
func (s *StoreService) UpdateStore(input UpdateStoreInput) (*models.Store, error) {
	if input.StoreID == "" {
		return nil, fmt.Errorf("storeID is required: %w", ErrValidation)
	}

	store, err := s.storeRepo.GetByID(input.StoreID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, fmt.Errorf("name cannot be empty: %w", ErrValidation)
		}
		store.Name = name
	}
	if input.Category != nil {
		store.Category = *input.Category
	}
	if input.Address != nil {
		store.Address = *input.Address
	}
	if input.City != nil {
		store.City = *input.City
	}
	if input.Image != nil {
		store.Image = *input.Image
	}
	if input.Status != nil {
		store.Status = *input.Status
	}
	if input.ManagerName != nil {
		store.ManagerName = *input.ManagerName
	}

	if err := s.storeRepo.Update(store); err != nil {
		return nil, err
	}
	return store, nil
}
