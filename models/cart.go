package models

import "time"

// Cart is a server-held shopping cart keyed by a client-generated key, so
// a browser can restore its cart across page reloads. One cart per key.
type Cart struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	CartKey   string     `gorm:"uniqueIndex;not null" json:"cart_key"`
	Items     []CartItem `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE" json:"items"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// TableName specifies the table name for the Cart model
func (Cart) TableName() string {
	return "carts"
}

// CartItem is one product line in a cart with a snapshot of the product
// fields the storefront renders without re-fetching the product.
type CartItem struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	CartID       uint      `gorm:"not null;index" json:"cart_id"`
	ProductID    uint      `gorm:"not null;index" json:"product_id"`
	ProductName  string    `json:"product_name"`
	ProductImage string    `json:"product_image"`
	UnitPrice    float64   `json:"unit_price"`
	Quantity     int       `gorm:"not null" json:"quantity"`
	AddedAt      time.Time `json:"added_at"`
}

// TableName specifies the table name for the CartItem model
func (CartItem) TableName() string {
	return "cart_items"
}

// Subtotal returns the line total for the item
func (i CartItem) Subtotal() float64 {
	return i.UnitPrice * float64(i.Quantity)
}
