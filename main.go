package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/spf13/viper"
	"github.com/streadway/amqp"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"gudang/internal/handlers"
	"gudang/internal/middleware"
	"gudang/internal/models"
	"gudang/internal/repositories"
	"gudang/internal/services"
	"gudang/pkg/rabbitmq"
)

func main() {
	// --- Configuration ---
	viper.SetDefault("APP_PORT", ":4000")
	viper.SetDefault("SQLITE_PATH", "gudang.db")
	viper.SetDefault("JWT_SECRET", "change_me_in_production")
	viper.AutomaticEnv()

	appPort := viper.GetString("APP_PORT")
	databaseURL := viper.GetString("DATABASE_URL")
	rabbitMQURL := viper.GetString("RABBITMQ_URL")
	jwtSecret := viper.GetString("JWT_SECRET")

	// --- Database ---
	// Postgres when DATABASE_URL is set, local SQLite otherwise.
	var dialector gorm.Dialector
	if databaseURL != "" {
		dialector = postgres.Open(databaseURL)
	} else {
		dialector = sqlite.Open(viper.GetString("SQLITE_PATH"))
	}
	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := db.AutoMigrate(
		&models.Product{},
		&models.Purchase{},
		&models.Sale{},
		&models.Store{},
		&models.User{},
	); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	// --- RabbitMQ (optional) ---
	// Stock alerts are best-effort; without a broker the app runs without them.
	var mqClient *rabbitmq.Client
	if rabbitMQURL != "" {
		mqClient, err = rabbitmq.NewClient(rabbitmq.Config{URL: rabbitMQURL})
		if err != nil {
			log.Fatalf("Failed to initialize RabbitMQ client: %v", err)
		}
		defer mqClient.Close()
	} else {
		log.Println("RABBITMQ_URL not set, stock alerts disabled")
	}

	// --- Repositories ---
	productRepo := repositories.NewGORMProductRepository(db)
	purchaseRepo := repositories.NewGORMPurchaseRepository(db)
	saleRepo := repositories.NewGORMSaleRepository(db)
	storeRepo := repositories.NewGORMStoreRepository(db)
	userRepo := repositories.NewGORMUserRepository(db)

	// --- Services ---
	// A nil interface value must stay nil, hence the indirection.
	var alerts services.StockAlertPublisher
	if mqClient != nil {
		alerts = mqClient
	}
	inventoryService := services.NewInventoryService(productRepo, purchaseRepo, saleRepo, alerts)
	purchaseService := services.NewPurchaseService(purchaseRepo, inventoryService)
	saleService := services.NewSaleService(saleRepo, inventoryService)
	storeService := services.NewStoreService(storeRepo)
	authService := services.NewAuthService(userRepo, jwtSecret)

	// --- Handlers ---
	productHandler := handlers.NewProductHandler(inventoryService)
	purchaseHandler := handlers.NewPurchaseHandler(purchaseService)
	saleHandler := handlers.NewSaleHandler(saleService)
	storeHandler := handlers.NewStoreHandler(storeService)
	authHandler := handlers.NewAuthHandler(authService)

	// --- Fiber app ---
	app := fiber.New()
	app.Use(logger.New())

	api := app.Group("/api")

	// Authentication routes (public)
	authHandler.RegisterRoutes(api)

	// Inventory routes (JWT-protected)
	protected := api.Group("", middleware.AuthRequired(authService))
	productHandler.RegisterRoutes(protected)
	purchaseHandler.RegisterRoutes(protected)
	saleHandler.RegisterRoutes(protected)
	storeHandler.RegisterRoutes(protected)

	// --- Health check ---
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "healthy",
		})
	})

	// --- Stock alert consumer ---
	// A simple in-process worker; a real deployment would run a dedicated
	// consumer that notifies the tenant.
	if mqClient != nil {
		go func() {
			log.Println("Starting stock alert consumer...")
			handler := func(msg amqp.Delivery) error {
				log.Printf("Stock alert (Tag: %d): %s", msg.DeliveryTag, string(msg.Body))
				return nil
			}
			if consumerErr := mqClient.ConsumeStockAlerts(handler); consumerErr != nil {
				log.Printf("Failed to start stock alert consumer: %v", consumerErr)
			}
		}()
	}

	// --- Start HTTP server with graceful shutdown ---
	log.Printf("Starting server on port %s", appPort)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(appPort); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	<-quit
	log.Println("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		log.Printf("Error during Fiber shutdown: %v", err)
	}

	log.Println("Server gracefully stopped")
}
