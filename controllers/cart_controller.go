package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lamsa-beauty/lamsa-api/config"
	"github.com/lamsa-beauty/lamsa-api/models"
	"gorm.io/gorm"
)

// AddCartItemRequest represents the request body for adding a product to a cart
type AddCartItemRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
}

// SetCartQuantityRequest represents the request body for setting a line quantity
type SetCartQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// RestoreCartRequest replaces the whole cart with a stored snapshot
type RestoreCartRequest struct {
	Items []RestoreCartItem `json:"items"`
}

// RestoreCartItem is one line of a restored cart snapshot
type RestoreCartItem struct {
	ProductID uint `json:"product_id"`
	Quantity  int  `json:"quantity"`
}

// cartView is the cart response shape with totals recomputed from the lines
type cartView struct {
	CartKey   string            `json:"cart_key"`
	Items     []models.CartItem `json:"items"`
	Total     float64           `json:"total"`
	ItemCount int               `json:"item_count"`
}

func buildCartView(key string, items []models.CartItem) cartView {
	view := cartView{CartKey: key, Items: items}
	if view.Items == nil {
		view.Items = []models.CartItem{}
	}
	for _, item := range items {
		view.Total += item.Subtotal()
		view.ItemCount += item.Quantity
	}
	return view
}

func findCart(db *gorm.DB, key string) (*models.Cart, error) {
	var cart models.Cart
	if err := db.Preload("Items").Where("cart_key = ?", key).First(&cart).Error; err != nil {
		return nil, err
	}
	return &cart, nil
}

func findOrCreateCart(db *gorm.DB, key string) (*models.Cart, error) {
	cart, err := findCart(db, key)
	if err == nil {
		return cart, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	created := models.Cart{CartKey: key}
	if err := db.Create(&created).Error; err != nil {
		return nil, err
	}
	return &created, nil
}

// GetCart handles GET /api/v1/cart/:key
// A missing or never-seen key yields an empty cart, never an error.
func GetCart(c *gin.Context) {
	db := config.GetDB()
	key := c.Param("key")

	cart, err := findCart(db, key)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusOK, gin.H{
				"success": true,
				"data":    buildCartView(key, nil),
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to load cart",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    buildCartView(key, cart.Items),
	})
}

// AddCartItem handles POST /api/v1/cart/:key/items
// Adding a product already in the cart increments its quantity by one.
func AddCartItem(c *gin.Context) {
	var req AddCartItemRequest
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

	cart, err := findOrCreateCart(db, c.Param("key"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to load cart",
			},
		})
		return
	}

	var item models.CartItem
	err = db.Where("cart_id = ? AND product_id = ?", cart.ID, product.ID).First(&item).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		item = models.CartItem{
			CartID:       cart.ID,
			ProductID:    product.ID,
			ProductName:  product.Name,
			ProductImage: product.Image,
			UnitPrice:    product.Price,
			Quantity:     1,
			AddedAt:      time.Now(),
		}
		if err := db.Create(&item).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "DATABASE_ERROR",
					"message": "Failed to add item to cart",
				},
			})
			return
		}
	case err == nil:
		item.Quantity++
		if err := db.Save(&item).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "DATABASE_ERROR",
					"message": "Failed to update cart item",
				},
			})
			return
		}
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to load cart item",
			},
		})
		return
	}

	respondWithCart(c, db, cart.CartKey)
}

// SetCartItemQuantity handles PUT /api/v1/cart/:key/items/:productId
// Quantity is clamped at zero; a zero quantity removes the line.
func SetCartItemQuantity(c *gin.Context) {
	var req SetCartQuantityRequest
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

	cart, err := findCart(db, c.Param("key"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "CART_NOT_FOUND",
				"message": "Cart not found",
			},
		})
		return
	}

	var item models.CartItem
	if err := db.Where("cart_id = ? AND product_id = ?", cart.ID, c.Param("productId")).First(&item).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "CART_ITEM_NOT_FOUND",
				"message": "Product is not in the cart",
			},
		})
		return
	}

	quantity := req.Quantity
	if quantity < 0 {
		quantity = 0
	}

	if quantity == 0 {
		if err := db.Delete(&item).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "DATABASE_ERROR",
					"message": "Failed to remove cart item",
				},
			})
			return
		}
	} else {
		item.Quantity = quantity
		if err := db.Save(&item).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "DATABASE_ERROR",
					"message": "Failed to update cart item",
				},
			})
			return
		}
	}

	respondWithCart(c, db, cart.CartKey)
}

// RemoveCartItem handles DELETE /api/v1/cart/:key/items/:productId
func RemoveCartItem(c *gin.Context) {
	db := config.GetDB()

	cart, err := findCart(db, c.Param("key"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "CART_NOT_FOUND",
				"message": "Cart not found",
			},
		})
		return
	}

	if err := db.Where("cart_id = ? AND product_id = ?", cart.ID, c.Param("productId")).
		Delete(&models.CartItem{}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to remove cart item",
			},
		})
		return
	}

	respondWithCart(c, db, cart.CartKey)
}

// ClearCart handles DELETE /api/v1/cart/:key
func ClearCart(c *gin.Context) {
	db := config.GetDB()
	key := c.Param("key")

	cart, err := findCart(db, key)
	if err != nil {
		// Clearing a cart that never existed is a no-op
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"data":    buildCartView(key, nil),
		})
		return
	}

	if err := db.Where("cart_id = ?", cart.ID).Delete(&models.CartItem{}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to clear cart",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    buildCartView(key, nil),
	})
}

// RestoreCart handles PUT /api/v1/cart/:key - replaces the whole cart with a
// client-stored snapshot. Lines referencing unknown products or carrying
// non-positive quantities are dropped silently, so a corrupt snapshot
// restores to an empty cart rather than failing.
func RestoreCart(c *gin.Context) {
	var req RestoreCartRequest
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

	cart, err := findOrCreateCart(db, c.Param("key"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to load cart",
			},
		})
		return
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("cart_id = ?", cart.ID).Delete(&models.CartItem{}).Error; err != nil {
			return err
		}
		for _, line := range req.Items {
			if line.Quantity <= 0 {
				continue
			}
			var product models.Product
			if err := tx.First(&product, line.ProductID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					continue
				}
				return err
			}
			item := models.CartItem{
				CartID:       cart.ID,
				ProductID:    product.ID,
				ProductName:  product.Name,
				ProductImage: product.Image,
				UnitPrice:    product.Price,
				Quantity:     line.Quantity,
				AddedAt:      time.Now(),
			}
			if err := tx.Create(&item).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to restore cart",
			},
		})
		return
	}

	respondWithCart(c, db, cart.CartKey)
}

func respondWithCart(c *gin.Context, db *gorm.DB, key string) {
	cart, err := findCart(db, key)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to load cart",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    buildCartView(key, cart.Items),
	})
}
