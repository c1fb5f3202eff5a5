package controllers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/lamsa-beauty/lamsa-api/config"
	"github.com/lamsa-beauty/lamsa-api/models"
	"github.com/lamsa-beauty/lamsa-api/services"
	"gorm.io/gorm"
)

// CheckoutRequest represents the request body for placing an order.
// Unit prices are deliberately absent: the server prices every line from the
// live product record, never from client input.
type CheckoutRequest struct {
	CustomerName    string              `json:"customer_name" binding:"required"`
	Phone           string              `json:"phone" binding:"required"`
	ShippingAddress string              `json:"shipping_address" binding:"required"`
	Email           *string             `json:"email"`
	Notes           *string             `json:"notes"`
	Items           []CheckoutLineInput `json:"items" binding:"required,min=1,dive"`
}

// CheckoutLineInput is one requested order line
type CheckoutLineInput struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required,gt=0"`
}

// checkoutError carries an HTTP status and error code out of the transaction
type checkoutError struct {
	Status  int
	Code    string
	Message string
}

func (e *checkoutError) Error() string {
	return e.Message
}

// Checkout handles POST /api/v1/checkout
//
// The whole flow runs in one database transaction: the customer upsert, every
// stock decrement and the order creation commit together or not at all, so a
// failure on the third of five lines cannot leave the first two decremented.
// Stock is taken with a guarded UPDATE (stock >= requested), which also stops
// two concurrent checkouts from overselling the last unit.
func Checkout(c *gin.Context) {
	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "VALIDATION_ERROR",
				"message": "Name, phone, shipping address and at least one item are required",
				"details": err.Error(),
			},
		})
		return
	}

	db := config.GetDB()

	var order models.Order
	err := db.Transaction(func(tx *gorm.DB) error {
		customer, err := upsertCustomer(tx, &req)
		if err != nil {
			return err
		}

		var total float64
		var orderItems []models.OrderItem
		for _, line := range req.Items {
			var product models.Product
			if err := tx.First(&product, line.ProductID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return &checkoutError{
						Status:  http.StatusNotFound,
						Code:    "PRODUCT_NOT_FOUND",
						Message: fmt.Sprintf("Product %d not found", line.ProductID),
					}
				}
				return err
			}

			if product.Stock < line.Quantity {
				return &checkoutError{
					Status:  http.StatusBadRequest,
					Code:    "INSUFFICIENT_STOCK",
					Message: fmt.Sprintf("Insufficient stock for %s: %d requested, %d available", product.Name, line.Quantity, product.Stock),
				}
			}

			// Guarded decrement: refuses to go below zero even if another
			// checkout took stock between the read above and this update.
			res := tx.Model(&models.Product{}).
				Where("id = ? AND stock >= ?", product.ID, line.Quantity).
				UpdateColumn("stock", gorm.Expr("stock - ?", line.Quantity))
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return &checkoutError{
					Status:  http.StatusBadRequest,
					Code:    "INSUFFICIENT_STOCK",
					Message: fmt.Sprintf("Insufficient stock for %s", product.Name),
				}
			}

			total += product.Price * float64(line.Quantity)
			orderItems = append(orderItems, models.OrderItem{
				ProductID: product.ID,
				Quantity:  line.Quantity,
				UnitPrice: product.Price,
			})
		}

		order = models.Order{
			Reference:       newOrderReference(),
			CustomerID:      customer.ID,
			Status:          models.OrderStatusPending,
			TotalAmount:     total,
			ShippingAddress: req.ShippingAddress,
			Phone:           req.Phone,
			Notes:           req.Notes,
			Items:           orderItems,
		}
		return tx.Create(&order).Error
	})
	if err != nil {
		var ce *checkoutError
		if errors.As(err, &ce) {
			c.JSON(ce.Status, gin.H{
				"success": false,
				"error": gin.H{
					"code":    ce.Code,
					"message": ce.Message,
				},
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to place order",
			},
		})
		return
	}

	if err := db.Preload("Customer").Preload("Items.Product").First(&order, order.ID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to load order details",
			},
		})
		return
	}

	// The notification link is best effort: a failure is logged and the
	// order still succeeds.
	whatsappLink := ""
	cfg := config.GetConfig()
	if cfg != nil && cfg.StoreWhatsAppPhone != "" {
		link, err := services.GetNotificationService().BuildLink(cfg.StoreWhatsAppPhone, buildOrderSummary(&order))
		if err != nil {
			log.Printf("Failed to build WhatsApp link for order %s: %v", order.Reference, err)
		} else {
			whatsappLink = link
		}
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data": gin.H{
			"order":         order,
			"whatsapp_link": whatsappLink,
		},
	})
}

// upsertCustomer finds a customer by phone and updates their details from the
// submitted form, or creates one. Last writer wins.
func upsertCustomer(tx *gorm.DB, req *CheckoutRequest) (*models.User, error) {
	var customer models.User
	err := tx.Where("phone = ?", req.Phone).First(&customer).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		customer = models.User{
			Name:    req.CustomerName,
			Phone:   req.Phone,
			Email:   req.Email,
			Address: &req.ShippingAddress,
			Role:    "customer",
		}
		if err := tx.Create(&customer).Error; err != nil {
			if isUniqueViolation(err) {
				return nil, &checkoutError{
					Status:  http.StatusBadRequest,
					Code:    "EMAIL_EXISTS",
					Message: "A customer with this email already exists",
				}
			}
			return nil, err
		}
		return &customer, nil
	case err != nil:
		return nil, err
	}

	updates := map[string]interface{}{
		"name":    req.CustomerName,
		"address": req.ShippingAddress,
	}
	if req.Email != nil {
		updates["email"] = *req.Email
	}
	if err := tx.Model(&customer).Updates(updates).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, &checkoutError{
				Status:  http.StatusBadRequest,
				Code:    "EMAIL_EXISTS",
				Message: "A customer with this email already exists",
			}
		}
		return nil, err
	}
	return &customer, nil
}

// newOrderReference generates a unique order reference, e.g.
// 20250901130500-8f14e45f-...
func newOrderReference() string {
	return time.Now().Format("20060102150405") + "-" + uuid.NewString()
}

// buildOrderSummary formats the human-readable order message sent to the
// store's WhatsApp number
func buildOrderSummary(order *models.Order) string {
	var b strings.Builder
	fmt.Fprintf(&b, "New order %s\n", order.Reference)
	fmt.Fprintf(&b, "Customer: %s (%s)\n", order.Customer.Name, order.Phone)
	fmt.Fprintf(&b, "Address: %s\n\n", order.ShippingAddress)
	for _, item := range order.Items {
		name := item.Product.Name
		if name == "" {
			name = fmt.Sprintf("product #%d", item.ProductID)
		}
		fmt.Fprintf(&b, "- %s x%d @ %.2f\n", name, item.Quantity, item.UnitPrice)
	}
	fmt.Fprintf(&b, "\nTotal: %.2f", order.TotalAmount)
	if order.Notes != nil && *order.Notes != "" {
		fmt.Fprintf(&b, "\nNotes: %s", *order.Notes)
	}
	return b.String()
}
