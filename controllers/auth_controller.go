package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lamsa-beauty/lamsa-api/config"
	"github.com/lamsa-beauty/lamsa-api/middleware"
	"github.com/lamsa-beauty/lamsa-api/models"
	"gorm.io/gorm"
)

// LoginRequest represents the request body for admin login
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Default credentials created by the seed endpoint. The password must be
// changed after first login.
const (
	seedAdminUsername = "admin"
	seedAdminPassword = "admin123"
)

// Login handles POST /api/v1/auth/login
// Returns the admin record (password omitted) and an expiring session token.
func Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "VALIDATION_ERROR",
				"message": "Username and password are required",
				"details": err.Error(),
			},
		})
		return
	}

	db := config.GetDB()

	var admin models.Admin
	if err := db.Where("username = ?", req.Username).First(&admin).Error; err != nil {
		// Same response for unknown username and wrong password
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INVALID_CREDENTIALS",
				"message": "Invalid username or password",
			},
		})
		return
	}

	if !admin.IsActive || !admin.ValidatePassword(req.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INVALID_CREDENTIALS",
				"message": "Invalid username or password",
			},
		})
		return
	}

	cfg := config.GetConfig()
	token, err := middleware.GenerateAdminToken(cfg, admin.ID, admin.Username, admin.Role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "TOKEN_ERROR",
				"message": "Failed to create session token",
			},
		})
		return
	}

	now := time.Now()
	if err := db.Model(&admin).Update("last_login", now).Error; err != nil {
		// Login still succeeds if the timestamp write fails
		admin.LastLogin = &now
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"admin": admin,
			"token": token,
		},
	})
}

// SeedAdmin handles POST /api/v1/auth/seed
// Creates the default admin account if no admin exists yet.
func SeedAdmin(c *gin.Context) {
	db := config.GetDB()

	var existing models.Admin
	err := db.First(&existing).Error
	if err == nil {
		c.JSON(http.StatusConflict, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "ADMIN_EXISTS",
				"message": "An admin account already exists",
			},
		})
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to check existing admins",
			},
		})
		return
	}

	admin := models.Admin{
		Username: seedAdminUsername,
		Role:     "admin",
		IsActive: true,
	}
	if err := admin.SetPassword(seedAdminPassword); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "HASH_ERROR",
				"message": "Failed to hash default password",
			},
		})
		return
	}

	if err := db.Create(&admin).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to create default admin",
			},
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    admin,
		"message": "Default admin created",
	})
}
