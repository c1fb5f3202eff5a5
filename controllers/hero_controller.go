package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lamsa-beauty/lamsa-api/config"
	"github.com/lamsa-beauty/lamsa-api/models"
)

// CreateHeroSlideRequest represents the request body for creating a hero slide
type CreateHeroSlideRequest struct {
	Title       string `json:"title" binding:"required"`
	Subtitle    string `json:"subtitle"`
	Description string `json:"description"`
	Image       string `json:"image"`
	CTAText     string `json:"cta_text"`
	CTALink     string `json:"cta_link"`
	Gradient    string `json:"gradient"`
	IsActive    *bool  `json:"is_active"`
	SortOrder   int    `json:"sort_order"`
}

// UpdateHeroSlideRequest represents the request body for updating a hero slide
type UpdateHeroSlideRequest struct {
	Title       *string `json:"title"`
	Subtitle    *string `json:"subtitle"`
	Description *string `json:"description"`
	Image       *string `json:"image"`
	CTAText     *string `json:"cta_text"`
	CTALink     *string `json:"cta_link"`
	Gradient    *string `json:"gradient"`
	IsActive    *bool   `json:"is_active"`
	SortOrder   *int    `json:"sort_order"`
}

// ListHeroSlides handles GET /api/v1/hero-slides
// ?active=true restricts to active slides; ordered for the carousel.
func ListHeroSlides(c *gin.Context) {
	db := config.GetDB()
	query := db.Order("sort_order, id")

	if raw := c.Query("active"); raw != "" {
		if active, err := strconv.ParseBool(raw); err == nil && active {
			query = query.Where("is_active = ?", true)
		}
	}

	var slides []models.HeroSlide
	if err := query.Find(&slides).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to load hero slides",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    slides,
	})
}

// CreateHeroSlide handles POST /api/v1/hero-slides (admin)
func CreateHeroSlide(c *gin.Context) {
	var req CreateHeroSlideRequest
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

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	slide := models.HeroSlide{
		Title:       req.Title,
		Subtitle:    req.Subtitle,
		Description: req.Description,
		Image:       req.Image,
		CTAText:     req.CTAText,
		CTALink:     req.CTALink,
		Gradient:    req.Gradient,
		IsActive:    isActive,
		SortOrder:   req.SortOrder,
	}

	db := config.GetDB()
	if err := db.Create(&slide).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to create hero slide",
			},
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    slide,
	})
}

// UpdateHeroSlide handles PUT /api/v1/hero-slides/:id (admin)
func UpdateHeroSlide(c *gin.Context) {
	db := config.GetDB()

	var slide models.HeroSlide
	if err := db.First(&slide, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "HERO_SLIDE_NOT_FOUND",
				"message": "Hero slide not found",
			},
		})
		return
	}

	var req UpdateHeroSlideRequest
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
	if req.Subtitle != nil {
		updates["subtitle"] = *req.Subtitle
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Image != nil {
		updates["image"] = *req.Image
	}
	if req.CTAText != nil {
		updates["cta_text"] = *req.CTAText
	}
	if req.CTALink != nil {
		updates["cta_link"] = *req.CTALink
	}
	if req.Gradient != nil {
		updates["gradient"] = *req.Gradient
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}
	if req.SortOrder != nil {
		updates["sort_order"] = *req.SortOrder
	}

	if len(updates) > 0 {
		if err := db.Model(&slide).Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "DATABASE_ERROR",
					"message": "Failed to update hero slide",
				},
			})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    slide,
	})
}

// DeleteHeroSlide handles DELETE /api/v1/hero-slides/:id (admin)
func DeleteHeroSlide(c *gin.Context) {
	db := config.GetDB()

	var slide models.HeroSlide
	if err := db.First(&slide, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "HERO_SLIDE_NOT_FOUND",
				"message": "Hero slide not found",
			},
		})
		return
	}

	if err := db.Delete(&slide).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to delete hero slide",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Hero slide deleted",
	})
}

// ClearHeroSlides handles DELETE /api/v1/hero-slides/clear (admin)
func ClearHeroSlides(c *gin.Context) {
	db := config.GetDB()

	if err := db.Where("1 = 1").Delete(&models.HeroSlide{}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to clear hero slides",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "All hero slides cleared",
	})
}
