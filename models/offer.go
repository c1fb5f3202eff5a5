package models

import (
	"time"

	"gorm.io/gorm"
)

// Offer is a time-boxed discount promotion, optionally scoped to a category
type Offer struct {
	ID                 uint           `gorm:"primaryKey" json:"id"`
	Title              string         `gorm:"not null" json:"title"`
	Description        string         `gorm:"type:text" json:"description"`
	DiscountPercentage float64        `gorm:"not null" json:"discount_percentage"`
	OriginalPrice      float64        `json:"original_price"`
	DiscountedPrice    float64        `json:"discounted_price"`
	CategoryID         *uint          `gorm:"index" json:"category_id,omitempty"`
	Category           *Category      `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Image              string         `json:"image"`
	IsActive           bool           `gorm:"default:true" json:"is_active"`
	SortOrder          int            `gorm:"not null;default:0" json:"sort_order"`
	ExpiresAt          *time.Time     `json:"expires_at,omitempty"`
	CreatedAt          time.Time      `json:"created_at"`
	UpdatedAt          time.Time      `json:"updated_at"`
	DeletedAt          gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName specifies the table name for the Offer model
func (Offer) TableName() string {
	return "offers"
}

// Expired reports whether the offer has passed its expiry time
func (o Offer) Expired(now time.Time) bool {
	return o.ExpiresAt != nil && o.ExpiresAt.Before(now)
}
