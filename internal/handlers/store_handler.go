package handlers

import (
	"errors"
	"fmt"
	"log"

	"gudang/internal/models"
	"gudang/internal/repositories"
	"gudang/internal/services"

	"github.com/gofiber/fiber/v2"
)

// StoreHandler handles HTTP requests for stores and labs. Both route
// prefixes serve the same records; labs are stores with a lab category.
type StoreHandler struct {
	service *services.StoreService
}

// NewStoreHandler creates a new StoreHandler.
func NewStoreHandler(service *services.StoreService) *StoreHandler {
	return &StoreHandler{
		service: service,
	}
}

// RegisterRoutes registers the store and lab routes with the Fiber app.
func (h *StoreHandler) RegisterRoutes(router fiber.Router) {
	for _, prefix := range []string{"/store", "/lab"} {
		routes := router.Group(prefix)
		routes.Post("/add", h.HandleAddStore)
		routes.Get("/get/:userId", h.HandleGetAllStores)
		routes.Post("/update/:id", h.HandleUpdateStore)
	}
}

// HandleAddStore creates a new store record.
func (h *StoreHandler) HandleAddStore(c *fiber.Ctx) error {
	var store models.Store
	if err := c.BodyParser(&store); err != nil {
		log.Printf("Error parsing add store request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	created, err := h.service.CreateStore(&store)
	if err != nil {
		log.Printf("Error creating store: %v", err)
		if errors.Is(err, services.ErrValidation) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Validation failed",
				"error":   err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not create store",
			"error":   err.Error(),
		})
	}

	return c.JSON(created)
}

// HandleGetAllStores lists a tenant's stores.
func (h *StoreHandler) HandleGetAllStores(c *fiber.Ctx) error {
	userID := c.Params("userId")
	stores, err := h.service.GetAllStores(userID)
	if err != nil {
		log.Printf("Error getting stores for user %s: %v", userID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve stores",
			"error":   err.Error(),
		})
	}
	return c.JSON(stores)
}

// UpdateStoreRequest is the request body for store updates. Absent fields
// leave the stored values untouched.
type UpdateStoreRequest struct {
	Name        *string `json:"name"`
	Category    *string `json:"category"`
	Address     *string `json:"address"`
	City        *string `json:"city"`
	Image       *string `json:"image"`
	Status      *string `json:"status"`
	ManagerName *string `json:"managerName"`
}

// HandleUpdateStore applies a partial update to a store.
func (h *StoreHandler) HandleUpdateStore(c *fiber.Ctx) error {
	storeID := c.Params("id")

	var req UpdateStoreRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing update store request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	store, err := h.service.UpdateStore(services.UpdateStoreInput{
		StoreID:     storeID,
		Name:        req.Name,
		Category:    req.Category,
		Address:     req.Address,
		City:        req.City,
		Image:       req.Image,
		Status:      req.Status,
		ManagerName: req.ManagerName,
	})
	if err != nil {
		log.Printf("Error updating store %s: %v", storeID, err)
		switch {
		case errors.Is(err, services.ErrValidation):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Validation failed",
				"error":   err.Error(),
			})
		case errors.Is(err, repositories.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": fmt.Sprintf("Store with ID %s not found", storeID),
			})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "Could not update store",
				"error":   err.Error(),
			})
		}
	}

	return c.JSON(store)
}
