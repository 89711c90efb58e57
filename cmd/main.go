package main

import (
	"context"
	"log"
	"time"

	"golang-coffee-backend/configs"
	"golang-coffee-backend/internal/handlers"
	"golang-coffee-backend/internal/middleware"
	"golang-coffee-backend/internal/models"
	"golang-coffee-backend/internal/pricing"
	"golang-coffee-backend/internal/repositories"
	"golang-coffee-backend/internal/services"
	"golang-coffee-backend/pkg/auth"
	"golang-coffee-backend/pkg/cache"
	"golang-coffee-backend/pkg/database"
	"golang-coffee-backend/pkg/messaging"
	"golang-coffee-backend/pkg/payment"

	"github.com/gin-gonic/gin"
)

// Cart sessions outlive an app restart but not an idle week.
const cartSessionTTL = time.Hour * 24 * 7

func main() {
	// Load configuration
	config := configs.LoadConfig()

	// Set Gin mode
	gin.SetMode(config.Server.Mode)

	// Initialize database connections
	db, err := database.NewDatabase(config.Database.PostgresURL, config.Database.MongoURL, config.Database.MongoDBName)
	if err != nil {
		log.Fatal("Failed to connect to databases:", err)
	}
	defer db.Close()

	// Auto-migrate PostgreSQL tables
	if err := autoMigratePostgres(db); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Initialize Redis cache
	redisCache := cache.NewRedisCache(config.Redis.URL, config.Redis.Password, config.Redis.DB)
	if redisCache == nil {
		log.Fatal("Failed to connect to Redis")
	}
	defer redisCache.Close()

	// Initialize Kafka
	kafkaProducer := messaging.NewKafkaProducer(config.Kafka.Brokers)
	defer kafkaProducer.Close()

	// Initialize JWT manager (access: configured hours, refresh: 30 days)
	jwtManager := auth.NewJWTManager(config.JWT.SecretKey, config.JWT.ExpiryHours, 30)

	// Stripe payment-intent client
	stripeClient := payment.NewStripeClient(config.Stripe.SecretKey, config.Stripe.Currency)

	// PostgreSQL repositories
	userRepo := repositories.NewUserRepository(db.Postgres)
	addressRepo := repositories.NewAddressRepository(db.Postgres)
	orderRepo := repositories.NewOrderRepository(db.Postgres)
	paymentRepo := repositories.NewPaymentRepository(db.Postgres)
	voucherRepo := repositories.NewVoucherRepository(db.Postgres)
	favouriteRepo := repositories.NewFavouriteRepository(db.Postgres)
	loyaltyRepo := repositories.NewLoyaltyRepository(db.Postgres)

	// MongoDB repositories
	productRepo := repositories.NewProductRepository(db.MongoDB)
	categoryRepo := repositories.NewProductCategoryRepository(db.MongoDB)

	// Seed the catalog and the voucher table, then snapshot the voucher
	// rules for the pricing engine.
	seedCtx, cancel := context.WithTimeout(context.Background(), time.Second*30)
	defer cancel()

	if err := services.SeedCatalog(seedCtx, productRepo, categoryRepo); err != nil {
		log.Printf("Catalog seed failed: %v", err)
	}

	voucherService := services.NewVoucherService(voucherRepo)
	if err := voucherService.Seed(seedCtx); err != nil {
		log.Printf("Voucher seed failed: %v", err)
	}
	voucherCatalog := voucherService.Catalog(seedCtx)

	engine := pricing.NewEngine(config.Pricing.DeliveryFee)
	sessionStore := services.NewRedisSessionStore(redisCache, cartSessionTTL)

	// Initialize services
	authService := services.NewAuthService(userRepo, jwtManager, redisCache)
	productService := services.NewProductService(productRepo, categoryRepo, redisCache)
	addressService := services.NewAddressService(addressRepo, userRepo)
	favoriteService := services.NewFavoriteService(favouriteRepo, productRepo)
	loyaltyService := services.NewLoyaltyService(loyaltyRepo, config.Pricing.LoyaltyRewardGoal)
	cartService := services.NewCartService(sessionStore, productRepo, engine, voucherCatalog)
	checkoutService := services.NewCheckoutService(cartService, orderRepo, paymentRepo, loyaltyService, stripeClient, kafkaProducer)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtManager)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	productHandler := handlers.NewProductHandler(productService)
	cartHandler := handlers.NewCartHandler(cartService)
	orderHandler := handlers.NewOrderHandler(checkoutService)
	addressHandler := handlers.NewAddressHandler(addressService)
	favoriteHandler := handlers.NewFavoriteHandler(favoriteService)
	loyaltyHandler := handlers.NewLoyaltyHandler(loyaltyService)
	voucherHandler := handlers.NewVoucherHandler(voucherService)

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(middleware.RecoveryMiddleware())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.RequestIDMiddleware())

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"service": "golang-coffee-backend",
		})
	})

	// API routes
	api := router.Group("/api/v1")

	authHandler.RegisterRoutes(api, authMiddleware)
	productHandler.RegisterRoutes(api, authMiddleware)
	cartHandler.RegisterRoutes(api, authMiddleware)
	orderHandler.RegisterRoutes(api, authMiddleware)
	addressHandler.RegisterRoutes(api, authMiddleware)
	favoriteHandler.RegisterRoutes(api, authMiddleware)
	loyaltyHandler.RegisterRoutes(api, authMiddleware)
	voucherHandler.RegisterRoutes(api, authMiddleware)

	log.Printf("Server starting on port %s", config.Server.Port)
	log.Fatal(router.Run(":" + config.Server.Port))
}

func autoMigratePostgres(db *database.Database) error {
	return db.Postgres.AutoMigrate(
		&models.User{},
		&models.Address{},
		&models.Order{},
		&models.Payment{},
		&models.Voucher{},
		&models.Favourite{},
		&models.LoyaltyCard{},
	)
}
