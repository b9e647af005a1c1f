package handlers

import (
	"errors"
	"log"

	"gudang/internal/models"
	"gudang/internal/repositories"
	"gudang/internal/services"

	"github.com/gofiber/fiber/v2"
)

// SaleHandler handles HTTP requests for sales.
type SaleHandler struct {
	service *services.SaleService
}

// NewSaleHandler creates a new SaleHandler.
func NewSaleHandler(service *services.SaleService) *SaleHandler {
	return &SaleHandler{
		service: service,
	}
}

// RegisterRoutes registers the sale routes with the Fiber app.
func (h *SaleHandler) RegisterRoutes(router fiber.Router) {
	saleRoutes := router.Group("/sales")
	saleRoutes.Post("/add", h.HandleAddSale)
	saleRoutes.Get("/get/:userId", h.HandleGetAllSales)
	saleRoutes.Get("/get/:userId/totalsaleamount", h.HandleTotalSaleAmount)
}

// HandleAddSale records a sale and draws the sold quantity from the
// product's stock. Selling more than is available answers with 400.
func (h *SaleHandler) HandleAddSale(c *fiber.Ctx) error {
	var sale models.Sale
	if err := c.BodyParser(&sale); err != nil {
		log.Printf("Error parsing add sale request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	created, err := h.service.CreateSale(&sale)
	if err != nil {
		log.Printf("Error creating sale: %v", err)
		switch {
		case errors.Is(err, services.ErrInvalidStock):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Sale exceeds available stock",
				"error":   err.Error(),
			})
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
				"message": "Could not create sale",
				"error":   err.Error(),
			})
		}
	}

	return c.JSON(created)
}

// HandleGetAllSales lists a tenant's sales.
func (h *SaleHandler) HandleGetAllSales(c *fiber.Ctx) error {
	userID := c.Params("userId")
	sales, err := h.service.GetAllSales(userID)
	if err != nil {
		log.Printf("Error getting sales for user %s: %v", userID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve sales",
			"error":   err.Error(),
		})
	}
	return c.JSON(sales)
}

// HandleTotalSaleAmount returns a tenant's summed sale amount, feeding the
// dashboard.
func (h *SaleHandler) HandleTotalSaleAmount(c *fiber.Ctx) error {
	userID := c.Params("userId")
	total, err := h.service.TotalSaleAmount(userID)
	if err != nil {
		log.Printf("Error totaling sales for user %s: %v", userID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not total sales",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"totalSaleAmount": total,
	})
}
