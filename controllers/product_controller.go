package controllers

import (
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lamsa-beauty/lamsa-api/config"
	"github.com/lamsa-beauty/lamsa-api/models"
	"github.com/lamsa-beauty/lamsa-api/utils"
)

// CreateProductRequest represents the request body for creating a product
type CreateProductRequest struct {
	Name          string   `json:"name" binding:"required"`
	Description   string   `json:"description"`
	Price         float64  `json:"price" binding:"required,gt=0"`
	OriginalPrice *float64 `json:"original_price"`
	Image         string   `json:"image"`
	Images        string   `json:"images"`
	CategoryID    uint     `json:"category_id" binding:"required"`
	Stock         int      `json:"stock" binding:"gte=0"`
	IsNew         bool     `json:"is_new"`
	IsBestSeller  bool     `json:"is_best_seller"`
	IsActive      *bool    `json:"is_active"`
	Brand         *string  `json:"brand"`
	SKU           *string  `json:"sku"`
	Weight        *string  `json:"weight"`
	Ingredients   *string  `json:"ingredients"`
	Usage         *string  `json:"usage"`
	Benefits      *string  `json:"benefits"`
}

// UpdateProductRequest represents the request body for updating a product
type UpdateProductRequest struct {
	Name          *string  `json:"name"`
	Description   *string  `json:"description"`
	Price         *float64 `json:"price"`
	OriginalPrice *float64 `json:"original_price"`
	Image         *string  `json:"image"`
	Images        *string  `json:"images"`
	CategoryID    *uint    `json:"category_id"`
	Stock         *int     `json:"stock"`
	IsNew         *bool    `json:"is_new"`
	IsBestSeller  *bool    `json:"is_best_seller"`
	IsActive      *bool    `json:"is_active"`
	Brand         *string  `json:"brand"`
	SKU           *string  `json:"sku"`
	Weight        *string  `json:"weight"`
	Ingredients   *string  `json:"ingredients"`
	Usage         *string  `json:"usage"`
	Benefits      *string  `json:"benefits"`
}

// RateProductRequest represents the request body for rating a product
type RateProductRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
	Rating    int  `json:"rating" binding:"required,gte=1,lte=5"`
}

// ListProducts handles GET /api/v1/products
// Supported filters: ?category= (fuzzy-resolved name or id), ?new=, ?active=, ?limit=
func ListProducts(c *gin.Context) {
	db := config.GetDB()
	query := db.Preload("Category").Order("id")

	if raw := c.Query("category"); raw != "" {
		category, err := utils.ResolveCategory(db, raw)
		if err != nil {
			// Unresolvable filter yields an empty listing, not an error
			c.JSON(http.StatusOK, gin.H{
				"success": true,
				"data":    []models.Product{},
			})
			return
		}
		query = query.Where("category_id = ?", category.ID)
	}

	if raw := c.Query("new"); raw != "" {
		isNew, err := strconv.ParseBool(raw)
		if err == nil {
			query = query.Where("is_new = ?", isNew)
		}
	}

	if raw := c.Query("active"); raw != "" {
		isActive, err := strconv.ParseBool(raw)
		if err == nil {
			query = query.Where("is_active = ?", isActive)
		}
	}

	if raw := c.Query("limit"); raw != "" {
		if limit, err := strconv.Atoi(raw); err == nil && limit > 0 {
			query = query.Limit(limit)
		}
	}

	var products []models.Product
	if err := query.Find(&products).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to load products",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    products,
	})
}

// GetProduct handles GET /api/v1/products/:id
func GetProduct(c *gin.Context) {
	db := config.GetDB()

	var product models.Product
	if err := db.Preload("Category").First(&product, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "PRODUCT_NOT_FOUND",
				"message": "Product not found",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    product,
	})
}

// GetBestSellers handles GET /api/v1/products/best-sellers?limit=
// Products are ranked by the number of order items on DELIVERED orders.
// Products with no delivered orders are excluded.
func GetBestSellers(c *gin.Context) {
	limit := 10
	if raw := c.Query("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	db := config.GetDB()

	var products []models.Product
	err := db.Model(&models.Product{}).
		Select("products.*, COUNT(order_items.id) AS delivered_count").
		Joins("JOIN order_items ON order_items.product_id = products.id").
		Joins("JOIN orders ON orders.id = order_items.order_id AND orders.status = ? AND orders.deleted_at IS NULL", models.OrderStatusDelivered).
		Where("products.stock > 0 AND products.is_active = ?", true).
		Group("products.id").
		Order("delivered_count DESC, products.id ASC").
		Limit(limit).
		Find(&products).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to load best sellers",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    products,
	})
}

// RateProduct handles POST /api/v1/products/rate
// Recomputes the running rating average:
// newAverage = (oldAverage*oldCount + newRating) / (oldCount+1), one decimal.
func RateProduct(c *gin.Context) {
	var req RateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "VALIDATION_ERROR",
				"message": "Rating must be between 1 and 5",
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

	newCount := product.ReviewCount + 1
	newAverage := (product.Rating*float64(product.ReviewCount) + float64(req.Rating)) / float64(newCount)
	newAverage = math.Round(newAverage*10) / 10

	if err := db.Model(&product).Updates(map[string]interface{}{
		"rating":       newAverage,
		"review_count": newCount,
	}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to save rating",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"product_id":   product.ID,
			"rating":       newAverage,
			"review_count": newCount,
		},
	})
}

// CreateProduct handles POST /api/v1/products (admin)
func CreateProduct(c *gin.Context) {
	var req CreateProductRequest
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

	// The category must exist before a product can reference it
	var category models.Category
	if err := db.First(&category, req.CategoryID).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "CATEGORY_NOT_FOUND",
				"message": "Referenced category does not exist",
			},
		})
		return
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	product := models.Product{
		Name:          req.Name,
		Description:   req.Description,
		Price:         req.Price,
		OriginalPrice: req.OriginalPrice,
		Image:         req.Image,
		Images:        req.Images,
		CategoryID:    req.CategoryID,
		Stock:         req.Stock,
		IsNew:         req.IsNew,
		IsBestSeller:  req.IsBestSeller,
		IsActive:      isActive,
		Brand:         req.Brand,
		SKU:           req.SKU,
		Weight:        req.Weight,
		Ingredients:   req.Ingredients,
		Usage:         req.Usage,
		Benefits:      req.Benefits,
	}

	if err := db.Create(&product).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to create product",
			},
		})
		return
	}

	if err := db.Preload("Category").First(&product, product.ID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to load product details",
			},
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    product,
	})
}

// UpdateProduct handles PUT /api/v1/products/:id (admin)
func UpdateProduct(c *gin.Context) {
	db := config.GetDB()

	var product models.Product
	if err := db.First(&product, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "PRODUCT_NOT_FOUND",
				"message": "Product not found",
			},
		})
		return
	}

	var req UpdateProductRequest
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
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Price != nil {
		if *req.Price <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "VALIDATION_ERROR",
					"message": "Price must be greater than zero",
				},
			})
			return
		}
		updates["price"] = *req.Price
	}
	if req.OriginalPrice != nil {
		updates["original_price"] = *req.OriginalPrice
	}
	if req.Image != nil {
		updates["image"] = *req.Image
	}
	if req.Images != nil {
		updates["images"] = *req.Images
	}
	if req.CategoryID != nil {
		var category models.Category
		if err := db.First(&category, *req.CategoryID).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "CATEGORY_NOT_FOUND",
					"message": "Referenced category does not exist",
				},
			})
			return
		}
		updates["category_id"] = *req.CategoryID
	}
	if req.Stock != nil {
		if *req.Stock < 0 {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "VALIDATION_ERROR",
					"message": "Stock must not be negative",
				},
			})
			return
		}
		updates["stock"] = *req.Stock
	}
	if req.IsNew != nil {
		updates["is_new"] = *req.IsNew
	}
	if req.IsBestSeller != nil {
		updates["is_best_seller"] = *req.IsBestSeller
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}
	if req.Brand != nil {
		updates["brand"] = *req.Brand
	}
	if req.SKU != nil {
		updates["sku"] = *req.SKU
	}
	if req.Weight != nil {
		updates["weight"] = *req.Weight
	}
	if req.Ingredients != nil {
		updates["ingredients"] = *req.Ingredients
	}
	if req.Usage != nil {
		updates["usage"] = *req.Usage
	}
	if req.Benefits != nil {
		updates["benefits"] = *req.Benefits
	}

	if len(updates) > 0 {
		if err := db.Model(&product).Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "DATABASE_ERROR",
					"message": "Failed to update product",
				},
			})
			return
		}
	}

	if err := db.Preload("Category").First(&product, product.ID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to load product details",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    product,
	})
}

// DeleteProduct handles DELETE /api/v1/products/:id (admin)
func DeleteProduct(c *gin.Context) {
	db := config.GetDB()

	var product models.Product
	if err := db.First(&product, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "PRODUCT_NOT_FOUND",
				"message": "Product not found",
			},
		})
		return
	}

	if err := db.Delete(&product).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to delete product",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Product deleted",
	})
}
