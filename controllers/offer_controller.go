package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lamsa-beauty/lamsa-api/config"
	"github.com/lamsa-beauty/lamsa-api/models"
)

// CreateOfferRequest represents the request body for creating an offer
type CreateOfferRequest struct {
	Title              string     `json:"title" binding:"required"`
	Description        string     `json:"description"`
	DiscountPercentage float64    `json:"discount_percentage" binding:"required,gt=0,lte=100"`
	OriginalPrice      float64    `json:"original_price"`
	DiscountedPrice    float64    `json:"discounted_price"`
	CategoryID         *uint      `json:"category_id"`
	Image              string     `json:"image"`
	IsActive           *bool      `json:"is_active"`
	SortOrder          int        `json:"sort_order"`
	ExpiresAt          *time.Time `json:"expires_at"`
}

// UpdateOfferRequest represents the request body for updating an offer
type UpdateOfferRequest struct {
	Title              *string    `json:"title"`
	Description        *string    `json:"description"`
	DiscountPercentage *float64   `json:"discount_percentage"`
	OriginalPrice      *float64   `json:"original_price"`
	DiscountedPrice    *float64   `json:"discounted_price"`
	CategoryID         *uint      `json:"category_id"`
	Image              *string    `json:"image"`
	IsActive           *bool      `json:"is_active"`
	SortOrder          *int       `json:"sort_order"`
	ExpiresAt          *time.Time `json:"expires_at"`
}

// ListOffers handles GET /api/v1/offers
// ?active=true restricts to active, unexpired offers.
func ListOffers(c *gin.Context) {
	db := config.GetDB()
	query := db.Preload("Category").Order("sort_order, id")

	if raw := c.Query("active"); raw != "" {
		if active, err := strconv.ParseBool(raw); err == nil && active {
			query = query.Where("is_active = ?", true).
				Where("expires_at IS NULL OR expires_at > ?", time.Now())
		}
	}

	var offers []models.Offer
	if err := query.Find(&offers).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to load offers",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    offers,
	})
}

// CreateOffer handles POST /api/v1/offers (admin)
func CreateOffer(c *gin.Context) {
	var req CreateOfferRequest
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
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	offer := models.Offer{
		Title:              req.Title,
		Description:        req.Description,
		DiscountPercentage: req.DiscountPercentage,
		OriginalPrice:      req.OriginalPrice,
		DiscountedPrice:    req.DiscountedPrice,
		CategoryID:         req.CategoryID,
		Image:              req.Image,
		IsActive:           isActive,
		SortOrder:          req.SortOrder,
		ExpiresAt:          req.ExpiresAt,
	}

	if err := db.Create(&offer).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to create offer",
			},
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    offer,
	})
}

// UpdateOffer handles PUT /api/v1/offers/:id (admin)
func UpdateOffer(c *gin.Context) {
	db := config.GetDB()

	var offer models.Offer
	if err := db.First(&offer, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "OFFER_NOT_FOUND",
				"message": "Offer not found",
			},
		})
		return
	}

	var req UpdateOfferRequest
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
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.DiscountPercentage != nil {
		if *req.DiscountPercentage <= 0 || *req.DiscountPercentage > 100 {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "VALIDATION_ERROR",
					"message": "Discount percentage must be between 0 and 100",
				},
			})
			return
		}
		updates["discount_percentage"] = *req.DiscountPercentage
	}
	if req.OriginalPrice != nil {
		updates["original_price"] = *req.OriginalPrice
	}
	if req.DiscountedPrice != nil {
		updates["discounted_price"] = *req.DiscountedPrice
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
	if req.Image != nil {
		updates["image"] = *req.Image
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}
	if req.SortOrder != nil {
		updates["sort_order"] = *req.SortOrder
	}
	if req.ExpiresAt != nil {
		updates["expires_at"] = *req.ExpiresAt
	}

	if len(updates) > 0 {
		if err := db.Model(&offer).Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "DATABASE_ERROR",
					"message": "Failed to update offer",
				},
			})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    offer,
	})
}

// DeleteOffer handles DELETE /api/v1/offers/:id (admin)
func DeleteOffer(c *gin.Context) {
	db := config.GetDB()

	var offer models.Offer
	if err := db.First(&offer, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "OFFER_NOT_FOUND",
				"message": "Offer not found",
			},
		})
		return
	}

	if err := db.Delete(&offer).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to delete offer",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Offer deleted",
	})
}

// ClearOffers handles DELETE /api/v1/offers/clear (admin) - removes every offer
func ClearOffers(c *gin.Context) {
	db := config.GetDB()

	if err := db.Where("1 = 1").Delete(&models.Offer{}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to clear offers",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "All offers cleared",
	})
}
