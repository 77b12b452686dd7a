package main

import (
	"log"
	"time"

	"nursery_manager/internal/auth"
	"nursery_manager/internal/billing"
	"nursery_manager/internal/config"
	"nursery_manager/internal/database"
	"nursery_manager/internal/handlers"
	"nursery_manager/internal/localstore"
	"nursery_manager/internal/migrations"
	"nursery_manager/internal/redis"
	"nursery_manager/internal/repository"
	"nursery_manager/internal/services"
	"nursery_manager/pkg/assistant"
	"nursery_manager/pkg/whatsapp"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// sessionBackend is what both the Redis client and the embedded store
// provide: login sessions plus assistant chat history.
type sessionBackend interface {
	auth.SessionStore
	services.ChatStore
	Close() error
}

func main() {
	decimal.MarshalJSONWithoutQuotes = true

	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseDriver, cfg.DatabaseURL, cfg.DBLogLevel)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if err := migrations.RunMigrations(db, cfg.AdminPassword); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Sessions live in Redis when configured, otherwise in an embedded store
	var store sessionBackend
	if cfg.RedisURL != "" {
		store, err = redis.Initialize(cfg.RedisURL)
		if err != nil {
			log.Fatal("Failed to connect to Redis:", err)
		}
	} else {
		log.Printf("REDIS_URL not set, keeping sessions in %s", cfg.BadgerPath)
		store, err = localstore.Open(cfg.BadgerPath)
		if err != nil {
			log.Fatal("Failed to open session store:", err)
		}
	}
	defer store.Close()

	currency, err := billing.NewCurrencyFormatter(cfg.Shop.CurrencyLocale, cfg.Shop.CurrencySymbol)
	if err != nil {
		log.Printf("Warning: %v, falling back to INR formatting", err)
		currency = billing.DefaultCurrency()
	}

	var messenger services.Messenger
	if cfg.WhatsAppEnabled() {
		messenger = whatsapp.NewClient(cfg.WhatsAppAPIURL, cfg.WhatsAppUsername, cfg.WhatsAppPassword, cfg.WhatsAppPath)
	} else {
		log.Println("WhatsApp is not configured, notifications are disabled")
	}
	assistantClient := assistant.NewClient(cfg.AssistantAPIURL, cfg.AssistantAPIKey, cfg.AssistantModel)
	issuer := auth.NewTokenIssuer(cfg.JWTSecret)

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	plantRepo := repository.NewPlantRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	billRepo := repository.NewBillRepository(db)
	quotationRepo := repository.NewQuotationRepository(db)

	// Initialize services
	whatsappService := services.NewWhatsAppService(messenger, cfg.AlertWhatsAppNumber, cfg.Shop.Name, currency)
	userService := services.NewUserService(userRepo, store, issuer, cfg.TokenTTL, time.Now)
	plantService := services.NewPlantService(plantRepo, whatsappService)
	customerService := services.NewCustomerService(customerRepo)
	billService := services.NewBillService(billRepo, plantRepo, customerRepo, whatsappService, cfg.BillPrefix, time.Now)
	quotationService := services.NewQuotationService(quotationRepo, plantRepo, customerRepo, whatsappService, cfg.QuotationPrefix, cfg.BillPrefix, time.Now)
	dashboardService := services.NewDashboardService(billRepo, plantRepo, currency)
	chatService := services.NewChatService(store, assistantClient, cfg.ChatHistoryTTL, time.Now)

	// Initialize handlers
	apiHandler := handlers.NewAPIHandler(plantService, customerService, billService, quotationService, dashboardService, currency, cfg.Shop)
	authHandler := handlers.NewAuthHandler(userService, cfg.AdminPassword)
	chatHandler := handlers.NewChatHandler(chatService)

	// Setup routes
	router := gin.Default()
	router.Use(cors.New(corsConfig(cfg.CORSOrigins)))
	handlers.RegisterRoutes(router, apiHandler, authHandler, chatHandler, issuer, store)

	// Start server
	log.Printf("Server starting on port %s", cfg.ServerPort)
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}

func corsConfig(origins []string) cors.Config {
	c := cors.DefaultConfig()
	c.AllowHeaders = append(c.AllowHeaders, "Authorization")
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		c.AllowAllOrigins = true
		return c
	}
	c.AllowOrigins = origins
	c.AllowCredentials = true
	return c
}
