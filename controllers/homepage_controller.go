package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lamsa-beauty/lamsa-api/config"
	"github.com/lamsa-beauty/lamsa-api/models"
	"gorm.io/gorm"
)

// CreateHomepageProductRequest pins a product into a homepage section
type CreateHomepageProductRequest struct {
	ProductID uint   `json:"product_id" binding:"required"`
	Section   string `json:"section" binding:"required"`
	SortOrder int    `json:"sort_order"`
	IsActive  *bool  `json:"is_active"`
}

// UpdateHomepageProductRequest represents the request body for updating a pin
type UpdateHomepageProductRequest struct {
	Section   *string `json:"section"`
	SortOrder *int    `json:"sort_order"`
	IsActive  *bool   `json:"is_active"`
}

// UpdateHomepageSettingsRequest represents the request body for updating the
// singleton homepage settings row
type UpdateHomepageSettingsRequest struct {
	ShowHeroSlides     *bool `json:"show_hero_slides"`
	ShowOffers         *bool `json:"show_offers"`
	ShowBestSellers    *bool `json:"show_best_sellers"`
	ShowNewProducts    *bool `json:"show_new_products"`
	ShowCategories     *bool `json:"show_categories"`
	BestSellersCount   *int  `json:"best_sellers_count"`
	NewProductsCount   *int  `json:"new_products_count"`
	FeaturedCategoryID *uint `json:"featured_category_id"`
}

// ListHomepageProducts handles GET /api/v1/homepage-products
// Supports ?section= filtering; entries are returned in sort order.
func ListHomepageProducts(c *gin.Context) {
	db := config.GetDB()
	query := db.Preload("Product").Order("sort_order, id")

	if section := c.Query("section"); section != "" {
		query = query.Where("section = ?", section)
	}

	var entries []models.HomepageProduct
	if err := query.Find(&entries).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to load homepage products",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    entries,
	})
}

// CreateHomepageProduct handles POST /api/v1/homepage-products (admin)
// A product can appear at most once per section.
func CreateHomepageProduct(c *gin.Context) {
	var req CreateHomepageProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "VALIDATION_ERROR",
				"message": "Invalid request data",
				"details": err.Error(),
			},
		})
		return
	}

	db := config.GetDB()

	var product models.Product
	if err := db.First(&product, req.ProductID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "PRODUCT_NOT_FOUND",
				"message": "Product not found",
			},
		})
		return
	}

	var existing models.HomepageProduct
	err := db.Where("product_id = ? AND section = ?", req.ProductID, req.Section).First(&existing).Error
	if err == nil {
		c.JSON(http.StatusConflict, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "HOMEPAGE_PRODUCT_EXISTS",
				"message": "Product is already pinned to this section",
			},
		})
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to check existing homepage products",
			},
		})
		return
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	entry := models.HomepageProduct{
		ProductID: req.ProductID,
		Section:   req.Section,
		SortOrder: req.SortOrder,
		IsActive:  isActive,
	}

	if err := db.Create(&entry).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to pin product",
			},
		})
		return
	}

	if err := db.Preload("Product").First(&entry, entry.ID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to load homepage product",
			},
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    entry,
	})
}

// UpdateHomepageProduct handles PUT /api/v1/homepage-products/:id (admin)
func UpdateHomepageProduct(c *gin.Context) {
	db := config.GetDB()

	var entry models.HomepageProduct
	if err := db.First(&entry, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "HOMEPAGE_PRODUCT_NOT_FOUND",
				"message": "Homepage product not found",
			},
		})
		return
	}

	var req UpdateHomepageProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "VALIDATION_ERROR",
				"message": "Invalid request data",
				"details": err.Error(),
			},
		})
		return
	}

	updates := make(map[string]interface{})
	if req.Section != nil {
		// Moving to another section must not duplicate the (product, section) pair
		var existing models.HomepageProduct
		err := db.Where("product_id = ? AND section = ? AND id <> ?", entry.ProductID, *req.Section, entry.ID).
			First(&existing).Error
		if err == nil {
			c.JSON(http.StatusConflict, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "HOMEPAGE_PRODUCT_EXISTS",
					"message": "Product is already pinned to this section",
				},
			})
			return
		}
		updates["section"] = *req.Section
	}
	if req.SortOrder != nil {
		updates["sort_order"] = *req.SortOrder
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}

	if len(updates) > 0 {
		if err := db.Model(&entry).Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "DATABASE_ERROR",
					"message": "Failed to update homepage product",
				},
			})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    entry,
	})
}

// DeleteHomepageProduct handles DELETE /api/v1/homepage-products/:id (admin)
func DeleteHomepageProduct(c *gin.Context) {
	db := config.GetDB()

	var entry models.HomepageProduct
	if err := db.First(&entry, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "HOMEPAGE_PRODUCT_NOT_FOUND",
				"message": "Homepage product not found",
			},
		})
		return
	}

	if err := db.Delete(&entry).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to delete homepage product",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Homepage product removed",
	})
}

// GetHomepageSettings handles GET /api/v1/homepage-settings
// The singleton row is created with defaults on first read.
func GetHomepageSettings(c *gin.Context) {
	db := config.GetDB()

	settings, err := loadOrInitSettings(db)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to load homepage settings",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    settings,
	})
}

// UpdateHomepageSettings handles PUT /api/v1/homepage-settings (admin)
func UpdateHomepageSettings(c *gin.Context) {
	var req UpdateHomepageSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "VALIDATION_ERROR",
				"message": "Invalid request data",
				"details": err.Error(),
			},
		})
		return
	}

	db := config.GetDB()

	settings, err := loadOrInitSettings(db)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to load homepage settings",
			},
		})
		return
	}

	updates := make(map[string]interface{})
	if req.ShowHeroSlides != nil {
		updates["show_hero_slides"] = *req.ShowHeroSlides
	}
	if req.ShowOffers != nil {
		updates["show_offers"] = *req.ShowOffers
	}
	if req.ShowBestSellers != nil {
		updates["show_best_sellers"] = *req.ShowBestSellers
	}
	if req.ShowNewProducts != nil {
		updates["show_new_products"] = *req.ShowNewProducts
	}
	if req.ShowCategories != nil {
		updates["show_categories"] = *req.ShowCategories
	}
	if req.BestSellersCount != nil {
		updates["best_sellers_count"] = *req.BestSellersCount
	}
	if req.NewProductsCount != nil {
		updates["new_products_count"] = *req.NewProductsCount
	}
	if req.FeaturedCategoryID != nil {
		updates["featured_category_id"] = *req.FeaturedCategoryID
	}

	if len(updates) > 0 {
		if err := db.Model(settings).Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "DATABASE_ERROR",
					"message": "Failed to update homepage settings",
				},
			})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    settings,
	})
}

func loadOrInitSettings(db *gorm.DB) (*models.HomepageSettings, error) {
	var settings models.HomepageSettings
	err := db.First(&settings, models.HomepageSettingsID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		settings = models.HomepageSettings{
			ID:               models.HomepageSettingsID,
			ShowHeroSlides:   true,
			ShowOffers:       true,
			ShowBestSellers:  true,
			ShowNewProducts:  true,
			ShowCategories:   true,
			BestSellersCount: 8,
			NewProductsCount: 8,
		}
		if err := db.Create(&settings).Error; err != nil {
			return nil, err
		}
		return &settings, nil
	}
	if err != nil {
		return nil, err
	}
	return &settings, nil
}
