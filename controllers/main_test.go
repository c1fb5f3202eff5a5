package controllers

import (
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lamsa-beauty/lamsa-api/config"
	"github.com/lamsa-beauty/lamsa-api/models"
	"github.com/lamsa-beauty/lamsa-api/tests/testutil"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Setenv("GO_ENV", "test")

	config.SetConfig(&config.Config{
		Port:               "8080",
		GoEnv:              "test",
		JWTSecret:          "test-secret",
		SessionTTL:         time.Hour,
		StoreWhatsAppPhone: "+966 50 000 0000",
		AllowedOrigins:     []string{"*"},
	})

	os.Exit(m.Run())
}

// setupTestDB creates a fresh in-memory database with the full schema and
// installs it as the active connection
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	testutil.RequireTestEnvironment(t)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}

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
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	config.SetDB(db)
	return db
}

// createTestCategory inserts a category for tests that need one
func createTestCategory(t *testing.T, db *gorm.DB, name string) models.Category {
	t.Helper()

	category := models.Category{Name: name}
	if err := db.Create(&category).Error; err != nil {
		t.Fatalf("Failed to create test category: %v", err)
	}
	return category
}

// createTestProduct inserts a product with the given price and stock
func createTestProduct(t *testing.T, db *gorm.DB, name string, categoryID uint, price float64, stock int) models.Product {
	t.Helper()

	product := models.Product{
		Name:       name,
		Price:      price,
		CategoryID: categoryID,
		Stock:      stock,
		IsActive:   true,
	}
	if err := db.Create(&product).Error; err != nil {
		t.Fatalf("Failed to create test product: %v", err)
	}
	return product
}
