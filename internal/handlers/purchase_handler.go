package handlers

import (
	"errors"
	"log"

	"gudang/internal/models"
	"gudang/internal/repositories"
	"gudang/internal/services"

	"github.com/gofiber/fiber/v2"
)

// PurchaseHandler handles HTTP requests for purchases.
type PurchaseHandler struct {
	service *services.PurchaseService
}

// NewPurchaseHandler creates a new PurchaseHandler.
func NewPurchaseHandler(service *services.PurchaseService) *PurchaseHandler {
	return &PurchaseHandler{
		service: service,
	}
}

// RegisterRoutes registers the purchase routes with the Fiber app.
func (h *PurchaseHandler) RegisterRoutes(router fiber.Router) {
	purchaseRoutes := router.Group("/purchase")
	purchaseRoutes.Post("/add", h.HandleAddPurchase)
	purchaseRoutes.Get("/get/:userId", h.HandleGetAllPurchases)
	purchaseRoutes.Get("/get/:userId/totalpurchaseamount", h.HandleTotalPurchaseAmount)
}

// HandleAddPurchase records a purchase and tops up the product's stock.
func (h *PurchaseHandler) HandleAddPurchase(c *fiber.Ctx) error {
	var purchase models.Purchase
	if err := c.BodyParser(&purchase); err != nil {
		log.Printf("Error parsing add purchase request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	created, err := h.service.CreatePurchase(&purchase)
	if err != nil {
		log.Printf("Error creating purchase: %v", err)
		switch {
		case errors.Is(err, services.ErrValidation):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Validation failed",
				"error":   err.Error(),
			})
		case errors.Is(err, repositories.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Product not found",
				"error":   err.Error(),
			})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "Could not create purchase",
				"error":   err.Error(),
			})
		}
	}

	return c.JSON(created)
}

// HandleGetAllPurchases lists a tenant's purchases.
func (h *PurchaseHandler) HandleGetAllPurchases(c *fiber.Ctx) error {
	userID := c.Params("userId")
	purchases, err := h.service.GetAllPurchases(userID)
	if err != nil {
		log.Printf("Error getting purchases for user %s: %v", userID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve purchases",
			"error":   err.Error(),
		})
	}
	return c.JSON(purchases)
}

// HandleTotalPurchaseAmount returns a tenant's summed purchase amount,
// feeding the dashboard.
func (h *PurchaseHandler) HandleTotalPurchaseAmount(c *fiber.Ctx) error {
	userID := c.Params("userId")
	total, err := h.service.TotalPurchaseAmount(userID)
	if err != nil {
		log.Printf("Error totaling purchases for user %s: %v", userID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not total purchases",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"totalPurchaseAmount": total,
	})
}
