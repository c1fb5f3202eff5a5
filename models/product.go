package models

import (
	"time"

	"gorm.io/gorm"
)

// Product represents a sellable item in the catalog
type Product struct {
	ID            uint           `gorm:"primaryKey" json:"id"`
	Name          string         `gorm:"not null" json:"name"`
	Description   string         `gorm:"type:text" json:"description"`
	Price         float64        `gorm:"not null" json:"price"`
	OriginalPrice *float64       `json:"original_price,omitempty"` // pre-discount price, shown struck through
	Image         string         `json:"image"`
	Images        string         `gorm:"type:text" json:"images"` // JSON-encoded gallery URLs
	CategoryID    uint           `gorm:"not null;index" json:"category_id"`
	Category      Category       `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Stock         int            `gorm:"not null;default:0;check:stock >= 0" json:"stock"`
	Rating        float64        `gorm:"default:0" json:"rating"` // running average, one decimal
	ReviewCount   int            `gorm:"default:0" json:"review_count"`
	IsNew         bool           `gorm:"default:false" json:"is_new"`
	IsBestSeller  bool           `gorm:"default:false" json:"is_best_seller"`
	IsActive      bool           `gorm:"default:true" json:"is_active"`
	Brand         *string        `json:"brand,omitempty"`
	SKU           *string        `json:"sku,omitempty"`
	Weight        *string        `json:"weight,omitempty"`
	Ingredients   *string        `gorm:"type:text" json:"ingredients,omitempty"`
	Usage         *string        `gorm:"type:text" json:"usage,omitempty"`
	Benefits      *string        `gorm:"type:text" json:"benefits,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName specifies the table name for the Product model
func (Product) TableName() string {
	return "products"
}
