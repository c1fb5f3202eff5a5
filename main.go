package main

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/lamsa-beauty/lamsa-api/config"
	"github.com/lamsa-beauty/lamsa-api/controllers"
	"github.com/lamsa-beauty/lamsa-api/middleware"
	"github.com/lamsa-beauty/lamsa-api/models"
	"github.com/lamsa-beauty/lamsa-api/services"
)

func main() {
	log.Println("Starting Lamsa storefront API server...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Connect to database
	if err := config.ConnectDatabase(); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Auto-migrate database models
	db := config.GetDB()
	if err := db.AutoMigrate(
		&models.Category{},
		&models.Product{},
		&models.User{},
		&models.Order{},
		&models.OrderItem{},
		&models.Cart{},
		&models.CartItem{},
		&models.HomepageProduct{},
		&models.HomepageSettings{},
		&models.Offer{},
		&models.HeroSlide{},
		&models.Admin{},
	); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	log.Println("Database migration completed successfully")

	// Image storage is optional in development
	if cfg.AWSS3Bucket != "" {
		if _, err := services.InitS3Service(); err != nil {
			log.Fatalf("Failed to initialize S3 service: %v", err)
		}
	} else {
		log.Println("AWS_S3_BUCKET not set, image uploads disabled")
	}

	router := setupRouter(cfg)

	// Start server
	port := ":" + cfg.Port
	log.Printf("Server is running on http://localhost%s", port)
	if err := router.Run(port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// setupRouter builds the Gin engine with all routes registered
func setupRouter(cfg *config.Config) *gin.Engine {
	router := gin.Default()

	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	admin := middleware.RequireAdmin(cfg)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", healthCheck)
		v1.GET("/database/status", databaseStatus)

		// Auth
		v1.POST("/auth/login", controllers.Login)
		v1.POST("/auth/seed", controllers.SeedAdmin)

		// Catalog (public reads, admin writes)
		v1.GET("/categories", controllers.ListCategories)
		v1.GET("/categories/:id", controllers.GetCategory)
		v1.POST("/categories", admin, controllers.CreateCategory)
		v1.PUT("/categories/:id", admin, controllers.UpdateCategory)
		v1.DELETE("/categories/:id", admin, controllers.DeleteCategory)

		v1.GET("/products", controllers.ListProducts)
		v1.GET("/products/best-sellers", controllers.GetBestSellers)
		v1.GET("/products/:id", controllers.GetProduct)
		v1.POST("/products/rate", controllers.RateProduct)
		v1.POST("/products", admin, controllers.CreateProduct)
		v1.PUT("/products/:id", admin, controllers.UpdateProduct)
		v1.DELETE("/products/:id", admin, controllers.DeleteProduct)

		// Cart
		v1.GET("/cart/:key", controllers.GetCart)
		v1.PUT("/cart/:key", controllers.RestoreCart)
		v1.DELETE("/cart/:key", controllers.ClearCart)
		v1.POST("/cart/:key/items", controllers.AddCartItem)
		v1.PUT("/cart/:key/items/:productId", controllers.SetCartItemQuantity)
		v1.DELETE("/cart/:key/items/:productId", controllers.RemoveCartItem)

		// Checkout
		v1.POST("/checkout", controllers.Checkout)

		// Orders (admin)
		v1.GET("/orders", admin, controllers.ListOrders)
		v1.GET("/orders/:id", admin, controllers.GetOrder)
		v1.PUT("/orders/:id", admin, controllers.UpdateOrder)
		v1.DELETE("/orders/:id", admin, controllers.DeleteOrder)

		// Customers (admin)
		v1.GET("/customers", admin, controllers.ListCustomers)
		v1.GET("/customers/:id", admin, controllers.GetCustomer)
		v1.PUT("/customers/:id", admin, controllers.UpdateCustomer)
		v1.DELETE("/customers/:id", admin, controllers.DeleteCustomer)

		// Homepage curation
		v1.GET("/homepage-products", controllers.ListHomepageProducts)
		v1.POST("/homepage-products", admin, controllers.CreateHomepageProduct)
		v1.PUT("/homepage-products/:id", admin, controllers.UpdateHomepageProduct)
		v1.DELETE("/homepage-products/:id", admin, controllers.DeleteHomepageProduct)
		v1.GET("/homepage-settings", controllers.GetHomepageSettings)
		v1.PUT("/homepage-settings", admin, controllers.UpdateHomepageSettings)

		// Offers
		v1.GET("/offers", controllers.ListOffers)
		v1.POST("/offers", admin, controllers.CreateOffer)
		v1.DELETE("/offers/clear", admin, controllers.ClearOffers)
		v1.PUT("/offers/:id", admin, controllers.UpdateOffer)
		v1.DELETE("/offers/:id", admin, controllers.DeleteOffer)

		// Hero slides
		v1.GET("/hero-slides", controllers.ListHeroSlides)
		v1.POST("/hero-slides", admin, controllers.CreateHeroSlide)
		v1.DELETE("/hero-slides/clear", admin, controllers.ClearHeroSlides)
		v1.PUT("/hero-slides/:id", admin, controllers.UpdateHeroSlide)
		v1.DELETE("/hero-slides/:id", admin, controllers.DeleteHeroSlide)

		// Contact / notification links
		v1.POST("/contact", controllers.Contact)
		v1.POST("/send-whatsapp", controllers.SendWhatsApp)

		// Uploads (admin)
		v1.POST("/uploads", admin, controllers.UploadImage)
		v1.GET("/uploads/presign", admin, controllers.PresignImage)
	}

	return router
}

// healthCheck handles the health check endpoint
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Lamsa API is running",
	})
}

// databaseStatus checks database connectivity and returns table information
func databaseStatus(c *gin.Context) {
	db := config.GetDB()

	sqlDB, err := db.DB()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to get database instance",
			},
		})
		return
	}

	if err := sqlDB.Ping(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_CONNECTION_ERROR",
				"message": "Database connection failed",
			},
		})
		return
	}

	var tables []string
	if err := db.Raw("SELECT tablename FROM pg_tables WHERE schemaname = 'public'").Scan(&tables).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_QUERY_ERROR",
				"message": "Failed to query tables",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Database connected",
		"tables":  tables,
	})
}
