package handlers

import (
	"errors"
	"fmt"
	"log"

	"gudang/internal/repositories"
	"gudang/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// ProductHandler handles HTTP requests for products and stock.
type ProductHandler struct {
	service  *services.InventoryService
	validate *validator.Validate
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(service *services.InventoryService) *ProductHandler {
	return &ProductHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the product routes with the Fiber app.
func (h *ProductHandler) RegisterRoutes(router fiber.Router) {
	productRoutes := router.Group("/product")
	productRoutes.Post("/add", h.HandleAddProduct)
	productRoutes.Get("/get/:userId", h.HandleGetAllProducts)
	productRoutes.Put("/update", h.HandleUpdateProduct)
	productRoutes.Post("/stock/update", h.HandleUpdateStock)
	productRoutes.Get("/search", h.HandleSearchProducts)
	productRoutes.Delete("/:id", h.HandleDeleteProduct)
}

// AddProductRequest is the request body for product creation. Stock and
// lowStockThreshold are optional and default to 0 and 10.
type AddProductRequest struct {
	UserID            string `json:"userId" validate:"required"`
	Name              string `json:"name" validate:"required"`
	Manufacturer      string `json:"manufacturer" validate:"required"`
	Description       string `json:"description"`
	Stock             *int   `json:"stock"`
	LowStockThreshold *int   `json:"lowStockThreshold"`
}

// HandleAddProduct creates a new product. Validation failures answer with
// 402, matching the contract the frontend was built against.
func (h *ProductHandler) HandleAddProduct(c *fiber.Ctx) error {
	var req AddProductRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing add product request body: %v", err)
		return c.Status(fiber.StatusPaymentRequired).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(req); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		errorMessages := make(map[string]string)
		for _, e := range validationErrors {
			errorMessages[e.Field()] = fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
		}
		return c.Status(fiber.StatusPaymentRequired).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  errorMessages,
		})
	}

	product, err := h.service.CreateProduct(services.CreateProductInput{
		UserID:            req.UserID,
		Name:              req.Name,
		Manufacturer:      req.Manufacturer,
		Description:       req.Description,
		Stock:             req.Stock,
		LowStockThreshold: req.LowStockThreshold,
	})
	if err != nil {
		log.Printf("Error creating product: %v", err)
		if errors.Is(err, services.ErrValidation) || errors.Is(err, services.ErrInvalidStock) {
			return c.Status(fiber.StatusPaymentRequired).JSON(fiber.Map{
				"message": "Validation failed",
				"error":   err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not create product",
			"error":   err.Error(),
		})
	}

	return c.JSON(product)
}

// HandleGetAllProducts lists a tenant's products, each annotated with its
// stock status.
func (h *ProductHandler) HandleGetAllProducts(c *fiber.Ctx) error {
	userID := c.Params("userId")
	products, err := h.service.ListProducts(userID)
	if err != nil {
		log.Printf("Error getting products for user %s: %v", userID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve products",
			"error":   err.Error(),
		})
	}
	return c.JSON(products)
}

// UpdateProductRequest is the request body for the general update endpoint.
// Absent fields leave the stored values untouched.
type UpdateProductRequest struct {
	ProductID         string  `json:"productID" validate:"required"`
	Name              *string `json:"name"`
	Manufacturer      *string `json:"manufacturer"`
	Description       *string `json:"description"`
	Stock             *int    `json:"stock"`
	LowStockThreshold *int    `json:"lowStockThreshold"`
}

// HandleUpdateProduct applies a partial update to a product. A stock change
// here obeys the same negativity rule as the dedicated stock endpoint.
func (h *ProductHandler) HandleUpdateProduct(c *fiber.Ctx) error {
	var req UpdateProductRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing update product request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	product, err := h.service.UpdateProduct(services.UpdateProductInput{
		ProductID:         req.ProductID,
		Name:              req.Name,
		Manufacturer:      req.Manufacturer,
		Description:       req.Description,
		Stock:             req.Stock,
		LowStockThreshold: req.LowStockThreshold,
	})
	if err != nil {
		log.Printf("Error updating product %s: %v", req.ProductID, err)
		switch {
		case errors.Is(err, services.ErrInvalidStock), errors.Is(err, services.ErrValidation):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Validation failed",
				"error":   err.Error(),
			})
		case errors.Is(err, repositories.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": fmt.Sprintf("Product with ID %s not found", req.ProductID),
			})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "Could not update product",
				"error":   err.Error(),
			})
		}
	}

	return c.JSON(product)
}

// UpdateStockRequest is the request body for the dedicated stock endpoint.
type UpdateStockRequest struct {
	ProductID string `json:"productID" validate:"required"`
	Stock     int    `json:"stock"`
}

// HandleUpdateStock replaces a product's stock level. Negative stock answers
// with 400 before anything is written.
func (h *ProductHandler) HandleUpdateStock(c *fiber.Ctx) error {
	var req UpdateStockRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing stock update request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	product, err := h.service.SetStock(req.ProductID, req.Stock)
	if err != nil {
		log.Printf("Error updating stock for product %s: %v", req.ProductID, err)
		switch {
		case errors.Is(err, services.ErrInvalidStock):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Stock cannot be negative",
			})
		case errors.Is(err, repositories.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": fmt.Sprintf("Product with ID %s not found", req.ProductID),
			})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "Could not update stock",
				"error":   err.Error(),
			})
		}
	}

	return c.JSON(product)
}

// HandleSearchProducts matches products by a case-insensitive name
// substring, scoped to the tenant when userId is supplied.
func (h *ProductHandler) HandleSearchProducts(c *fiber.Ctx) error {
	term := c.Query("searchTerm")
	userID := c.Query("userId")

	products, err := h.service.SearchProducts(userID, term)
	if err != nil {
		log.Printf("Error searching products for %q: %v", term, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not search products",
			"error":   err.Error(),
		})
	}
	return c.JSON(products)
}

// HandleDeleteProduct removes a product together with every purchase and
// sale that references it, and echoes per-collection deletion counts.
// Deleting a nonexistent product reports zero counts, not an error.
func (h *ProductHandler) HandleDeleteProduct(c *fiber.Ctx) error {
	productID := c.Params("id")

	result, err := h.service.DeleteProductCascade(productID)
	if err != nil {
		log.Printf("Error cascade-deleting product %s: %v", productID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not delete product",
			"error":   err.Error(),
			"partial": result,
		})
	}
	return c.JSON(result)
}
