package models

import (
	"time"

	"gorm.io/gorm"
)

// Homepage section names
const (
	SectionBestSellers = "best-sellers"
	SectionNewProducts = "new-products"
)

// HomepageProduct pins a product into a named homepage section.
// A product appears at most once per section, checked at write time.
type HomepageProduct struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	ProductID uint           `gorm:"not null;index" json:"product_id"`
	Product   Product        `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	Section   string         `gorm:"not null;index" json:"section"`
	SortOrder int            `gorm:"not null;default:0" json:"sort_order"`
	IsActive  bool           `gorm:"default:true" json:"is_active"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName specifies the table name for the HomepageProduct model
func (HomepageProduct) TableName() string {
	return "homepage_products"
}

// HomepageSettingsID is the fixed primary key of the singleton settings row
const HomepageSettingsID uint = 1

// HomepageSettings is a singleton row of storefront display toggles
type HomepageSettings struct {
	ID                   uint      `gorm:"primaryKey" json:"id"`
	ShowHeroSlides       bool      `gorm:"default:true" json:"show_hero_slides"`
	ShowOffers           bool      `gorm:"default:true" json:"show_offers"`
	ShowBestSellers      bool      `gorm:"default:true" json:"show_best_sellers"`
	ShowNewProducts      bool      `gorm:"default:true" json:"show_new_products"`
	ShowCategories       bool      `gorm:"default:true" json:"show_categories"`
	BestSellersCount     int       `gorm:"default:8" json:"best_sellers_count"`
	NewProductsCount     int       `gorm:"default:8" json:"new_products_count"`
	FeaturedCategoryID   *uint     `json:"featured_category_id,omitempty"`
	UpdatedAt            time.Time `json:"updated_at"`
}

// TableName specifies the table name for the HomepageSettings model
func (HomepageSettings) TableName() string {
	return "homepage_settings"
}
