package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"gudang/internal/handlers"
	"gudang/internal/middleware"
	"gudang/internal/models"
	"gudang/internal/repositories"
	"gudang/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupApp builds a Fiber app backed by in-memory SQLite with all handlers
// and services wired, mirroring main.go without the broker.
func setupApp() (*fiber.App, error) {
	viper.SetDefault("JWT_SECRET", "test_jwt_secret")
	viper.AutomaticEnv()
	jwtSecret := viper.GetString("JWT_SECRET")

	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to in-memory database: %w", err)
	}

	err = db.AutoMigrate(
		&models.Product{},
		&models.Purchase{},
		&models.Sale{},
		&models.Store{},
		&models.User{},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to auto-migrate database: %w", err)
	}

	productRepo := repositories.NewGORMProductRepository(db)
	purchaseRepo := repositories.NewGORMPurchaseRepository(db)
	saleRepo := repositories.NewGORMSaleRepository(db)
	storeRepo := repositories.NewGORMStoreRepository(db)
	userRepo := repositories.NewGORMUserRepository(db)

	inventoryService := services.NewInventoryService(productRepo, purchaseRepo, saleRepo, nil)
	purchaseService := services.NewPurchaseService(purchaseRepo, inventoryService)
	saleService := services.NewSaleService(saleRepo, inventoryService)
	storeService := services.NewStoreService(storeRepo)
	authService := services.NewAuthService(userRepo, jwtSecret)

	app := fiber.New()
	api := app.Group("/api")

	handlers.NewAuthHandler(authService).RegisterRoutes(api)

	protected := api.Group("", middleware.AuthRequired(authService))
	handlers.NewProductHandler(inventoryService).RegisterRoutes(protected)
	handlers.NewPurchaseHandler(purchaseService).RegisterRoutes(protected)
	handlers.NewSaleHandler(saleService).RegisterRoutes(protected)
	handlers.NewStoreHandler(storeService).RegisterRoutes(protected)

	return app, nil
}

// TestMain silences logging for cleaner test output.
func TestMain(m *testing.M) {
	log.SetOutput(io.Discard)
	os.Exit(m.Run())
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body interface{}) (*http.Response, map[string]interface{}) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		assert.NoError(t, err)
		reader = bytes.NewReader(jsonBody)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	assert.NoError(t, err)

	var decoded map[string]interface{}
	raw, err := io.ReadAll(resp.Body)
	assert.NoError(t, err)
	resp.Body.Close()
	if len(raw) > 0 {
		// Some endpoints return arrays; those callers decode raw themselves.
		_ = json.Unmarshal(raw, &decoded)
	}
	return resp, decoded
}

func doJSONArray(t *testing.T, app *fiber.App, path, token string) (*http.Response, []map[string]interface{}) {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req, -1)
	assert.NoError(t, err)

	var decoded []map[string]interface{}
	err = json.NewDecoder(resp.Body).Decode(&decoded)
	assert.NoError(t, err)
	resp.Body.Close()
	return resp, decoded
}

// registerAndLogin creates a fresh tenant and returns its userID and token.
func registerAndLogin(t *testing.T, app *fiber.App) (string, string) {
	t.Helper()

	username := "user-" + uuid.New().String()[:8]
	resp, body := doJSON(t, app, http.MethodPost, "/api/auth/register", "", map[string]string{
		"username": username,
		"email":    username + "@example.com",
		"password": "password123",
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	user := body["user"].(map[string]interface{})
	userID := user["id"].(string)

	resp, body = doJSON(t, app, http.MethodPost, "/api/auth/login", "", map[string]string{
		"username": username,
		"password": "password123",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	token := body["token"].(string)
	assert.NotEmpty(t, token)

	return userID, token
}

func TestProductEndpointsRequireAuth(t *testing.T) {
	app, err := setupApp()
	assert.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/product/get/someone", nil)
	resp, err := app.Test(req, -1)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()
}

func TestAddProductDefaultsAndValidation(t *testing.T) {
	app, err := setupApp()
	assert.NoError(t, err)
	userID, token := registerAndLogin(t, app)

	// Stock and threshold omitted: defaults 0 and 10.
	resp, body := doJSON(t, app, http.MethodPost, "/api/product/add", token, map[string]interface{}{
		"userId":       userID,
		"name":         "Resistor 10k",
		"manufacturer": "Yageo",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(0), body["stock"])
	assert.Equal(t, float64(10), body["lowStockThreshold"])
	assert.NotEmpty(t, body["id"])

	// Missing name answers with 402.
	resp, _ = doJSON(t, app, http.MethodPost, "/api/product/add", token, map[string]interface{}{
		"userId":       userID,
		"manufacturer": "Yageo",
	})
	assert.Equal(t, http.StatusPaymentRequired, resp.StatusCode)
}

func TestStockLifecycleOverHTTP(t *testing.T) {
	app, err := setupApp()
	assert.NoError(t, err)
	userID, token := registerAndLogin(t, app)

	resp, created := doJSON(t, app, http.MethodPost, "/api/product/add", token, map[string]interface{}{
		"userId":            userID,
		"name":              "470uF Cap",
		"manufacturer":      "Murata",
		"stock":             120,
		"lowStockThreshold": 50,
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	productID := created["id"].(string)

	resp, listed := doJSONArray(t, app, "/api/product/get/"+userID, token)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, listed, 1)
	assert.Equal(t, "In Stock", listed[0]["stockStatus"])

	// Drop to 40: low stock.
	resp, _ = doJSON(t, app, http.MethodPost, "/api/product/stock/update", token, map[string]interface{}{
		"productID": productID,
		"stock":     40,
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	_, listed = doJSONArray(t, app, "/api/product/get/"+userID, token)
	assert.Equal(t, "Low Stock", listed[0]["stockStatus"])

	// Drop to 0: no stock.
	resp, _ = doJSON(t, app, http.MethodPost, "/api/product/stock/update", token, map[string]interface{}{
		"productID": productID,
		"stock":     0,
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	_, listed = doJSONArray(t, app, "/api/product/get/"+userID, token)
	assert.Equal(t, "No Stock", listed[0]["stockStatus"])

	// Negative stock is rejected and the stored value stays put.
	resp, _ = doJSON(t, app, http.MethodPost, "/api/product/stock/update", token, map[string]interface{}{
		"productID": productID,
		"stock":     -5,
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	_, listed = doJSONArray(t, app, "/api/product/get/"+userID, token)
	assert.Equal(t, float64(0), listed[0]["stock"])
	assert.Equal(t, "No Stock", listed[0]["stockStatus"])
}

func TestUpdateProductPartialAndStockRule(t *testing.T) {
	app, err := setupApp()
	assert.NoError(t, err)
	userID, token := registerAndLogin(t, app)

	_, created := doJSON(t, app, http.MethodPost, "/api/product/add", token, map[string]interface{}{
		"userId":       userID,
		"name":         "Cap",
		"manufacturer": "Murata",
		"stock":        20,
	})
	productID := created["id"].(string)

	resp, updated := doJSON(t, app, http.MethodPut, "/api/product/update", token, map[string]interface{}{
		"productID": productID,
		"name":      "470uF Capacitor",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "470uF Capacitor", updated["name"])
	assert.Equal(t, "Murata", updated["manufacturer"])
	assert.Equal(t, float64(20), updated["stock"])

	// The general update path enforces the same negativity rule.
	resp, _ = doJSON(t, app, http.MethodPut, "/api/product/update", token, map[string]interface{}{
		"productID": productID,
		"stock":     -1,
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, _ = doJSON(t, app, http.MethodPut, "/api/product/update", token, map[string]interface{}{
		"productID": uuid.New().String(),
		"name":      "Ghost",
	})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestSearchProducts(t *testing.T) {
	app, err := setupApp()
	assert.NoError(t, err)
	userID, token := registerAndLogin(t, app)

	for _, name := range []string{"470uF Capacitor", "Resistor 10k"} {
		resp, _ := doJSON(t, app, http.MethodPost, "/api/product/add", token, map[string]interface{}{
			"userId":       userID,
			"name":         name,
			"manufacturer": "Acme",
		})
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	}

	resp, matches := doJSONArray(t, app, "/api/product/search?searchTerm=cap&userId="+userID, token)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, matches, 1)
	assert.Equal(t, "470uF Capacitor", matches[0]["name"])

	resp, matches = doJSONArray(t, app, "/api/product/search?searchTerm=zzz&userId="+userID, token)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, matches)
}

func TestPurchaseAndSaleFlow(t *testing.T) {
	app, err := setupApp()
	assert.NoError(t, err)
	userID, token := registerAndLogin(t, app)

	_, created := doJSON(t, app, http.MethodPost, "/api/product/add", token, map[string]interface{}{
		"userId":       userID,
		"name":         "Cap",
		"manufacturer": "Murata",
		"stock":        10,
	})
	productID := created["id"].(string)

	// Purchase 30 units: stock rises to 40.
	resp, _ := doJSON(t, app, http.MethodPost, "/api/purchase/add", token, map[string]interface{}{
		"userID":              userID,
		"productID":           productID,
		"quantityPurchased":   30,
		"totalPurchaseAmount": 150.0,
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	_, listed := doJSONArray(t, app, "/api/product/get/"+userID, token)
	assert.Equal(t, float64(40), listed[0]["stock"])

	// Sell 15 units: stock drops to 25.
	resp, _ = doJSON(t, app, http.MethodPost, "/api/sales/add", token, map[string]interface{}{
		"userID":          userID,
		"productID":       productID,
		"stockSold":       15,
		"totalSaleAmount": 300.0,
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	_, listed = doJSONArray(t, app, "/api/product/get/"+userID, token)
	assert.Equal(t, float64(25), listed[0]["stock"])

	// Overselling is rejected.
	resp, _ = doJSON(t, app, http.MethodPost, "/api/sales/add", token, map[string]interface{}{
		"userID":    userID,
		"productID": productID,
		"stockSold": 26,
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// Dashboard totals.
	resp, body := doJSON(t, app, http.MethodGet, "/api/purchase/get/"+userID+"/totalpurchaseamount", token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(150), body["totalPurchaseAmount"])

	resp, body = doJSON(t, app, http.MethodGet, "/api/sales/get/"+userID+"/totalsaleamount", token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(300), body["totalSaleAmount"])
}

func TestDeleteProductCascades(t *testing.T) {
	app, err := setupApp()
	assert.NoError(t, err)
	userID, token := registerAndLogin(t, app)

	_, created := doJSON(t, app, http.MethodPost, "/api/product/add", token, map[string]interface{}{
		"userId":       userID,
		"name":         "Cap",
		"manufacturer": "Murata",
		"stock":        100,
	})
	productID := created["id"].(string)

	resp, _ := doJSON(t, app, http.MethodPost, "/api/purchase/add", token, map[string]interface{}{
		"userID":            userID,
		"productID":         productID,
		"quantityPurchased": 10,
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = doJSON(t, app, http.MethodPost, "/api/sales/add", token, map[string]interface{}{
		"userID":    userID,
		"productID": productID,
		"stockSold": 5,
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, summary := doJSON(t, app, http.MethodDelete, "/api/product/"+productID, token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(1), summary["deleteProduct"])
	assert.Equal(t, float64(1), summary["deletePurchaseProduct"])
	assert.Equal(t, float64(1), summary["deleteSaleProduct"])

	_, listed := doJSONArray(t, app, "/api/product/get/"+userID, token)
	assert.Empty(t, listed)

	// Deleting again reports zero counts, not an error.
	resp, summary = doJSON(t, app, http.MethodDelete, "/api/product/"+productID, token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(0), summary["deleteProduct"])
	assert.Equal(t, float64(0), summary["deletePurchaseProduct"])
	assert.Equal(t, float64(0), summary["deleteSaleProduct"])
}

func TestStoreAndLabRoutes(t *testing.T) {
	app, err := setupApp()
	assert.NoError(t, err)
	userID, token := registerAndLogin(t, app)

	resp, created := doJSON(t, app, http.MethodPost, "/api/lab/add", token, map[string]interface{}{
		"userID":      userID,
		"name":        "Component Storage Lab",
		"category":    "Lab",
		"city":        "Jakarta",
		"status":      "Active",
		"managerName": "Dewi",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	storeID := created["id"].(string)

	// The same records are visible through both prefixes.
	resp, stores := doJSONArray(t, app, "/api/store/get/"+userID, token)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, stores, 1)

	resp, updated := doJSON(t, app, http.MethodPost, "/api/lab/update/"+storeID, token, map[string]interface{}{
		"city": "Bandung",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Bandung", updated["city"])
	assert.Equal(t, "Component Storage Lab", updated["name"])

	// Missing name on create is rejected.
	resp, _ = doJSON(t, app, http.MethodPost, "/api/store/add", token, map[string]interface{}{
		"userID": userID,
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
