package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lamsa-beauty/lamsa-api/config"
	"github.com/lamsa-beauty/lamsa-api/services"
)

// ContactRequest represents the request body for the contact form
type ContactRequest struct {
	Name    string  `json:"name" binding:"required"`
	Email   *string `json:"email" binding:"omitempty,email"`
	Message string  `json:"message" binding:"required"`
}

// SendWhatsAppRequest represents the request body for building a raw
// WhatsApp link
type SendWhatsAppRequest struct {
	Message string `json:"message" binding:"required"`
	Phone   string `json:"phone"`
}

// Contact handles POST /api/v1/contact
// Formats the contact form into a message and returns a deep link to the
// store's WhatsApp number. Nothing is delivered server-side.
func Contact(c *gin.Context) {
	var req ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "VALIDATION_ERROR",
				"message": "Name and message are required",
				"details": err.Error(),
			},
		})
		return
	}

	cfg := config.GetConfig()
	if cfg == nil || cfg.StoreWhatsAppPhone == "" {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "NOT_CONFIGURED",
				"message": "Store contact number is not configured",
			},
		})
		return
	}

	message := fmt.Sprintf("Contact from %s", req.Name)
	if req.Email != nil && *req.Email != "" {
		message += fmt.Sprintf(" (%s)", *req.Email)
	}
	message += "\n\n" + req.Message

	link, err := services.GetNotificationService().BuildLink(cfg.StoreWhatsAppPhone, message)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "LINK_ERROR",
				"message": "Failed to build contact link",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"whatsapp_link": link,
		},
	})
}

// SendWhatsApp handles POST /api/v1/send-whatsapp
// Builds a pre-filled deep link for an arbitrary message. The destination
// defaults to the store's number when no phone is given.
func SendWhatsApp(c *gin.Context) {
	var req SendWhatsAppRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "VALIDATION_ERROR",
				"message": "Message is required",
				"details": err.Error(),
			},
		})
		return
	}

	phone := req.Phone
	if phone == "" {
		if cfg := config.GetConfig(); cfg != nil {
			phone = cfg.StoreWhatsAppPhone
		}
	}
	if phone == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "VALIDATION_ERROR",
				"message": "A destination phone number is required",
			},
		})
		return
	}

	link, err := services.GetNotificationService().BuildLink(phone, req.Message)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INVALID_PHONE",
				"message": "Failed to build WhatsApp link",
				"details": err.Error(),
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"whatsapp_link": link,
		},
	})
}
